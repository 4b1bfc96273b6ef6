package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"4096", 4096, false},
		{"50MB", 50_000_000, false},
		{"50MiB", 50 * 1024 * 1024, false},
		{" 1 GiB ", 1 << 30, false},
		{"", 0, true},
		{"lots", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSize(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "1.0 KiB", FormatSize(1024))
	assert.Equal(t, "0 B", FormatSize(0))
	assert.Equal(t, "-2.0 KiB", FormatSize(-2048))
	assert.Equal(t, "-1 B", FormatSize(-1))
	assert.Equal(t, "-8.0 EiB", FormatSize(math.MinInt64))
	assert.Equal(t, "8.0 EiB", FormatSize(math.MaxInt64))
}
