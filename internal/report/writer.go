package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Rekap JP"

// FileName is the deterministic report name for the month start falls in.
// Two exports for the same month overwrite the same file.
func FileName(start time.Time) string {
	return fmt.Sprintf("rekap_%02d%d.xlsx", int(start.Month()), start.Year())
}

// WriteWeeklyRekap writes the weekly rekap rows into reportsDir (created if
// absent) and returns the file name.
func WriteWeeklyRekap(reportsDir string, start time.Time, rows []WeeklyRow) (string, error) {
	if err := os.MkdirAll(reportsDir, 0o755); err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", sheetName)

	f.SetCellValue(sheetName, "A1", "No")
	f.SetCellValue(sheetName, "B1", "NIK")
	f.SetCellValue(sheetName, "C1", "Nama Pengajar")
	f.SetCellValue(sheetName, "D1", "Kelas yg Diajar")

	f.MergeCell(sheetName, "E1", "I1")
	f.SetCellValue(sheetName, "E1", "Total Jam Pelajaran Per Pekan")

	f.SetCellValue(sheetName, "J1", "Total JP")

	f.SetCellValue(sheetName, "E2", "Pekan 1")
	f.SetCellValue(sheetName, "F2", "Pekan 2")
	f.SetCellValue(sheetName, "G2", "Pekan 3")
	f.SetCellValue(sheetName, "H2", "Pekan 4")
	f.SetCellValue(sheetName, "I2", "Pekan 5")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#FFFF00"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	f.SetCellStyle(sheetName, "A1", "D1", headerStyle)
	f.SetCellStyle(sheetName, "E1", "E1", headerStyle)
	f.SetCellStyle(sheetName, "J1", "J1", headerStyle)
	f.SetCellStyle(sheetName, "A2", "J2", headerStyle)

	rowIndex := 3
	for _, row := range rows {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowIndex), row.No)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowIndex), row.NIK)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowIndex), row.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowIndex), strings.Join(row.Classes, ", "))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowIndex), row.Weeks[0])
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", rowIndex), row.Weeks[1])
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", rowIndex), row.Weeks[2])
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", rowIndex), row.Weeks[3])
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", rowIndex), row.Weeks[4])
		f.SetCellValue(sheetName, fmt.Sprintf("J%d", rowIndex), row.TotalJP)
		rowIndex++
	}

	for col := 1; col <= 10; col++ {
		colName, _ := excelize.ColumnNumberToName(col)
		f.SetColWidth(sheetName, colName, colName, 18)
	}

	name := FileName(start)
	if err := f.SaveAs(filepath.Join(reportsDir, name)); err != nil {
		return "", err
	}
	return name, nil
}
