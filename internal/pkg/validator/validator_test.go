package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidMonth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid january", "2025-01", true},
		{"valid december", "2024-12", true},
		{"month out of range", "2025-13", false},
		{"month zero", "2025-00", false},
		{"missing zero padding", "2025-1", false},
		{"full date", "2025-01-15", false},
		{"empty", "", false},
		{"garbage", "not-a-month", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidMonth(tt.input))
		})
	}
}

func TestPreviousMonth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"mid-year", "2025-07", "2025-06"},
		{"march to february", "2025-03", "2025-02"},
		{"year boundary", "2025-01", "2024-12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PreviousMonth(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := PreviousMonth("2025-1")
	assert.Error(t, err)
}

func TestMonthBounds(t *testing.T) {
	start, end, err := MonthBounds("2024-12")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), end)

	_, _, err = MonthBounds("12-2024")
	assert.Error(t, err)
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "is required"},
		{Field: "shift", Message: "must be 'Day' or 'Night'"},
	}

	assert.Equal(t, "name: is required; shift: must be 'Day' or 'Night'", errs.Error())
	assert.Equal(t, map[string]string{
		"name":  "is required",
		"shift": "must be 'Day' or 'Night'",
	}, errs.ToMap())
}
