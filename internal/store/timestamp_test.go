package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_Scan(t *testing.T) {
	want := time.Date(2024, 1, 15, 10, 30, 45, 123456000, time.UTC)

	tests := []struct {
		name    string
		input   interface{}
		want    time.Time
		wantErr bool
	}{
		{
			name:  "time value",
			input: want,
			want:  want,
		},
		{
			name:  "time value in other zone",
			input: want.In(time.FixedZone("EST", -5*3600)),
			want:  want,
		},
		{
			name:  "sqlite text",
			input: "2024-01-15 10:30:45.123456",
			want:  want,
		},
		{
			name:  "bytes",
			input: []byte("2024-01-15 10:30:45.123456"),
			want:  want,
		},
		{
			name:  "rfc3339",
			input: "2024-01-15T10:30:45.123456Z",
			want:  want,
		},
		{
			name:  "whole seconds",
			input: "2024-01-15 10:30:45",
			want:  time.Date(2024, 1, 15, 10, 30, 45, 0, time.UTC),
		},
		{
			name:    "garbage",
			input:   "yesterday",
			wantErr: true,
		},
		{
			name:    "null",
			input:   nil,
			wantErr: true,
		},
		{
			name:    "unsupported type",
			input:   42,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			err := ts.Scan(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(ts.Time), "got %v", ts.Time)
			assert.Equal(t, time.UTC, ts.Time.Location())
		})
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{
			name:     "utc",
			input:    time.Date(2024, 1, 15, 10, 30, 45, 0, time.UTC),
			expected: "2024-01-15 10:30:45.000000",
		},
		{
			name:     "converted to utc",
			input:    time.Date(2024, 6, 15, 14, 30, 0, 0, time.FixedZone("EST", -5*3600)),
			expected: "2024-06-15 19:30:00.000000",
		},
		{
			name:     "truncated to microseconds",
			input:    time.Date(2024, 3, 10, 9, 15, 30, 123456789, time.UTC),
			expected: "2024-03-10 09:15:30.123456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatted := FormatTime(tt.input)
			assert.Equal(t, tt.expected, formatted)

			parsed, err := ParseTime(formatted)
			require.NoError(t, err)
			assert.Equal(t, tt.input.UTC().Truncate(time.Microsecond), parsed)
		})
	}
}
