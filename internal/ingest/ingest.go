// Package ingest reads an uploaded schedule workbook and turns it into
// persisted Schedule records. Rows that are incomplete or unparseable are
// skipped one by one; only workbook-level problems abort an import.
package ingest

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/mghazyfawazh/jadwalku/internal/models"
)

// ErrBadWorkbook wraps any failure to open or read the sheet itself,
// as opposed to per-row problems.
var ErrBadWorkbook = errors.New("unreadable workbook")

// errIncompleteRow marks a row with a required column missing or empty.
// Such rows are skipped without logging.
var errIncompleteRow = errors.New("incomplete row")

var requiredColumns = []string{
	"Kode Kelas",
	"Nama Kelas",
	"Kode Mapel",
	"NIK Guru",
	"Nama Guru",
	"Tanggal",
	"Jam Ke",
	"Mulai",
	"Selesai",
}

// Store is the part of the repository the pipeline needs.
type Store interface {
	InsertMany([]*models.Schedule) error
}

type Pipeline struct {
	Store Store
}

func NewPipeline(store Store) *Pipeline {
	return &Pipeline{Store: store}
}

// ImportFile parses the first sheet of the workbook at path, maps every row,
// and bulk-persists the survivors. The returned slice is exactly what was
// persisted, in sheet order.
func (p *Pipeline) ImportFile(path string) ([]*models.Schedule, error) {
	records, err := ParseFile(path)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for _, s := range records {
		s.UUID = uuid.New().String()
		s.CreatedAt = now
		s.UpdatedAt = now
	}

	if err := p.Store.InsertMany(records); err != nil {
		return nil, err
	}
	return records, nil
}

// ParseFile reads the first sheet only and returns one draft record per
// surviving row. Skipped rows never fail the parse.
func ParseFile(path string) ([]*models.Schedule, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadWorkbook, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: no sheets", ErrBadWorkbook)
	}

	// Raw values keep date/time serials numeric and NIK leading zeros intact.
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadWorkbook, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = canonicalKey(h)
	}

	var out []*models.Schedule
	for _, cells := range rows[1:] {
		raw := map[string]string{}
		for i, v := range cells {
			if i < len(headers) {
				raw[headers[i]] = v
			}
		}
		s, err := MapRow(raw)
		if err != nil {
			if !errors.Is(err, errIncompleteRow) {
				log.Printf("ingest: row skipped: %v (row=%v)", err, raw)
			}
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

// canonicalKey strips surrounding whitespace and the non-breaking spaces that
// spreadsheet exports like to inject into header cells.
func canonicalKey(k string) string {
	return strings.TrimSpace(strings.ReplaceAll(k, " ", ""))
}

// MapRow validates one header-keyed row and projects it into a Schedule
// draft. Identity and timestamps are left for the pipeline to fill in.
func MapRow(raw map[string]string) (*models.Schedule, error) {
	for _, col := range requiredColumns {
		if strings.TrimSpace(raw[col]) == "" {
			return nil, errIncompleteRow
		}
	}

	date, err := NormalizeDate(raw["Tanggal"])
	if err != nil {
		return nil, err
	}

	jamKe, err := strconv.ParseFloat(strings.TrimSpace(raw["Jam Ke"]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid jam_ke %q", raw["Jam Ke"])
	}

	return &models.Schedule{
		ClassCode:   strings.TrimSpace(raw["Kode Kelas"]),
		ClassName:   strings.TrimSpace(raw["Nama Kelas"]),
		SubjectCode: strings.TrimSpace(raw["Kode Mapel"]),
		TeacherNIK:  strings.TrimSpace(raw["NIK Guru"]),
		TeacherName: strings.TrimSpace(raw["Nama Guru"]),
		Date:        date,
		JamKe:       int(jamKe),
		TimeStart:   NormalizeTime(raw["Mulai"]),
		TimeEnd:     NormalizeTime(raw["Selesai"]),
	}, nil
}
