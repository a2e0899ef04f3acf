package ingest

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

var (
	ErrInvalidDate            = errors.New("invalid date serial")
	ErrUnrecognizedDateFormat = errors.New("unrecognized date format")
)

// Layouts accepted for textual dates. Anything else is rejected rather than
// guessed at.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02-01-2006",
	time.RFC3339,
}

// NormalizeTime turns a raw cell value into "HH:MM:SS". Numeric cells are
// fraction-of-day serials (0.5 = noon). Anything else is left-padded with
// zeros to 8 characters; already-formatted times pass through untouched.
func NormalizeTime(raw string) string {
	if v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
		total := int(math.Round(v * 86400))
		h := total / 3600
		m := (total % 3600) / 60
		s := total % 60
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return padTime(raw)
}

func padTime(s string) string {
	for len(s) < 8 {
		s = "0" + s
	}
	return s
}

// NormalizeDate turns a raw cell value into "YYYY-MM-DD". Numeric cells are
// decoded as 1900-system date serials (day 0 = 1899-12-30); textual cells are
// tried against dateLayouts and formatted in UTC.
func NormalizeDate(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		t, err := excelize.ExcelDateToTime(v, false)
		if err != nil {
			return "", ErrInvalidDate
		}
		return t.Format("2006-01-02"), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.UTC().Format("2006-01-02"), nil
		}
	}
	return "", ErrUnrecognizedDateFormat
}
