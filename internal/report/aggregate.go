// Package report computes teaching-hour (JP) aggregates over schedule
// records and writes the monthly rekap workbook.
package report

import (
	"time"

	"github.com/mghazyfawazh/jadwalku/internal/models"
)

// WeeklyRow is one teacher's line in the exported rekap sheet. Weeks holds
// period counts for weeks 1-5 counted from the range start; TotalJP also
// counts periods that fall outside that five-week window.
type WeeklyRow struct {
	No      int
	NIK     string
	Name    string
	Classes []string
	Weeks   [5]int
	TotalJP int
}

// RekapDetail is one (class, period count) pair inside a teacher's rekap.
type RekapDetail struct {
	ClassName string `json:"class_name"`
	JumlahJP  int    `json:"jumlah_jp"`
}

type TeacherRekap struct {
	TeacherNIK  string        `json:"teacher_nik"`
	TeacherName string        `json:"teacher_name"`
	TotalJP     int           `json:"total_jp"`
	TotalKelas  int           `json:"total_kelas"`
	Detail      []RekapDetail `json:"detail"`
}

// BuildWeeklyRekap groups records by teacher in first-seen order. The week
// index is floor(days since start / 7) + 1, with start itself in week 1;
// only weeks 1-5 get a bucket.
func BuildWeeklyRekap(start time.Time, records []models.Schedule) []WeeklyRow {
	type agg struct {
		row        *WeeklyRow
		classesSet map[string]struct{}
	}
	byNIK := map[string]*agg{}
	var order []string

	for _, s := range records {
		a, ok := byNIK[s.TeacherNIK]
		if !ok {
			a = &agg{
				row:        &WeeklyRow{NIK: s.TeacherNIK, Name: s.TeacherName},
				classesSet: map[string]struct{}{},
			}
			byNIK[s.TeacherNIK] = a
			order = append(order, s.TeacherNIK)
		}

		if _, seen := a.classesSet[s.ClassName]; !seen {
			a.classesSet[s.ClassName] = struct{}{}
			a.row.Classes = append(a.row.Classes, s.ClassName)
		}

		if d, err := time.Parse("2006-01-02", s.Date); err == nil {
			diffDays := int(d.Sub(start).Hours() / 24)
			week := diffDays/7 + 1
			if week >= 1 && week <= 5 {
				a.row.Weeks[week-1]++
			}
		}
		a.row.TotalJP++
	}

	out := make([]WeeklyRow, 0, len(order))
	for i, nik := range order {
		row := byNIK[nik].row
		row.No = i + 1
		out = append(out, *row)
	}
	return out
}

// BuildRekapJP groups records by teacher, then by class name within each
// teacher, both in first-seen order.
func BuildRekapJP(records []models.Schedule) []TeacherRekap {
	type agg struct {
		rekap      *TeacherRekap
		classCount map[string]int
		classOrder []string
	}
	byNIK := map[string]*agg{}
	var order []string

	for _, s := range records {
		a, ok := byNIK[s.TeacherNIK]
		if !ok {
			a = &agg{
				rekap:      &TeacherRekap{TeacherNIK: s.TeacherNIK, TeacherName: s.TeacherName},
				classCount: map[string]int{},
			}
			byNIK[s.TeacherNIK] = a
			order = append(order, s.TeacherNIK)
		}

		a.rekap.TotalJP++
		if _, seen := a.classCount[s.ClassName]; !seen {
			a.classOrder = append(a.classOrder, s.ClassName)
		}
		a.classCount[s.ClassName]++
	}

	out := make([]TeacherRekap, 0, len(order))
	for _, nik := range order {
		a := byNIK[nik]
		a.rekap.TotalKelas = len(a.classOrder)
		a.rekap.Detail = make([]RekapDetail, 0, len(a.classOrder))
		for _, cn := range a.classOrder {
			a.rekap.Detail = append(a.rekap.Detail, RekapDetail{ClassName: cn, JumlahJP: a.classCount[cn]})
		}
		out = append(out, *a.rekap)
	}
	return out
}
