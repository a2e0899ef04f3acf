package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTimeSerial(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "00:00:00"},
		{"0.5", "12:00:00"},
		{"0.75", "18:00:00"},
		{"0.2916666666666667", "07:00:00"},
		{"0.9999884259259259", "23:59:59"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeTime(tc.in), "input %q", tc.in)
	}
}

func TestNormalizeTimeString(t *testing.T) {
	// Already-formatted values pass through, short ones are zero-padded.
	assert.Equal(t, "07:00:00", NormalizeTime("07:00:00"))
	assert.Equal(t, "00007:00", NormalizeTime("7:00"))
	assert.Equal(t, "0morning", NormalizeTime("morning"))
}

func TestNormalizeDateSerial(t *testing.T) {
	// 45306 is the 1900-system serial for 2024-01-15.
	got, err := NormalizeDate("45306")
	assert.NoError(t, err)
	assert.Equal(t, "2024-01-15", got)

	got, err = NormalizeDate("45292")
	assert.NoError(t, err)
	assert.Equal(t, "2024-01-01", got)
}

func TestNormalizeDateSerialInvalid(t *testing.T) {
	_, err := NormalizeDate("-1")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestNormalizeDateString(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2024-01-15", "2024-01-15"},
		{"2024/01/15", "2024-01-15"},
		{" 2024-01-15 ", "2024-01-15"},
		{"2024-01-15T00:00:00Z", "2024-01-15"},
	}
	for _, tc := range cases {
		got, err := NormalizeDate(tc.in)
		assert.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestNormalizeDateUnrecognized(t *testing.T) {
	_, err := NormalizeDate("next tuesday")
	assert.ErrorIs(t, err, ErrUnrecognizedDateFormat)
}
