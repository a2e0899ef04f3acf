package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestFileName(t *testing.T) {
	assert.Equal(t, "rekap_012024.xlsx", FileName(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "rekap_112025.xlsx", FileName(time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)))
}

func TestWriteWeeklyRekap(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	rows := []WeeklyRow{
		{No: 1, NIK: "001234", Name: "Budi", Classes: []string{"A", "B"}, Weeks: [5]int{2, 2, 1, 0, 0}, TotalJP: 5},
		{No: 2, NIK: "005678", Name: "Siti", Classes: []string{"C"}, Weeks: [5]int{1, 0, 0, 0, 0}, TotalJP: 1},
	}

	name, err := WriteWeeklyRekap(dir, start, rows)
	assert.NoError(t, err)
	assert.Equal(t, "rekap_012024.xlsx", name)

	path := filepath.Join(dir, name)
	_, err = os.Stat(path)
	assert.NoError(t, err)

	f, err := excelize.OpenFile(path)
	assert.NoError(t, err)
	defer f.Close()

	get := func(cell string) string {
		v, err := f.GetCellValue("Rekap JP", cell)
		assert.NoError(t, err)
		return v
	}
	assert.Equal(t, "No", get("A1"))
	assert.Equal(t, "Total Jam Pelajaran Per Pekan", get("E1"))
	assert.Equal(t, "Pekan 5", get("I2"))
	assert.Equal(t, "001234", get("B3"))
	assert.Equal(t, "A, B", get("D3"))
	assert.Equal(t, "5", get("J3"))
	assert.Equal(t, "Siti", get("C4"))
}

func TestWriteWeeklyRekapOverwritesSameMonth(t *testing.T) {
	dir := t.TempDir()
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := WriteWeeklyRekap(dir, start, []WeeklyRow{{No: 1, NIK: "1", Name: "Budi", TotalJP: 1}})
	assert.NoError(t, err)

	// Same month, different start day: same file, new contents.
	name, err := WriteWeeklyRekap(dir, start.AddDate(0, 0, 14), []WeeklyRow{{No: 1, NIK: "2", Name: "Siti", TotalJP: 2}})
	assert.NoError(t, err)
	assert.Equal(t, "rekap_032024.xlsx", name)

	f, err := excelize.OpenFile(filepath.Join(dir, name))
	assert.NoError(t, err)
	defer f.Close()
	v, err := f.GetCellValue("Rekap JP", "C3")
	assert.NoError(t, err)
	assert.Equal(t, "Siti", v)

	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
}
