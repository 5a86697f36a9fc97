package docview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"1970-01-01T01:00:10.000+01:00", time.Unix(10, 0)},
		{"2022-01-02T00:00:00.000+01:00", time.Date(2022, 1, 1, 23, 0, 0, 0, time.UTC)},
		{"2023-06-01T00:00:00Z", time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"2023-06-01T12:30:00.250", time.Date(2023, 6, 1, 12, 30, 0, 250_000_000, time.UTC)},
		{"2023-01-01", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, in := range []string{"", "yesterday", "2023-13-01", "01.02.2023"} {
		_, err := ParseDate(in)
		assert.Error(t, err, in)
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2023, 1, 1, 1, 0, 0, 0, time.FixedZone("CET", 3600))
	assert.Equal(t, "2023-01-01T00:00:00Z", FormatDate(ts))
}
