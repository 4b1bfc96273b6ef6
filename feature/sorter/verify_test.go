package sorter

import (
	"context"
	"io/fs"
	"path/filepath"
	"testing"

	"file-sorter/core/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	dir := t.TempDir()

	t.Run("Sorted", func(t *testing.T) {
		path := writeFile(t, dir, "sorted.txt", "1. apple", "", "5. apple", "5. apple", "5. banana")
		report, err := Verify(context.Background(), path, 16)
		require.NoError(t, err)
		assert.True(t, report.Sorted)
		assert.Equal(t, 4, report.Records)
		assert.Nil(t, report.Violation)
	})

	t.Run("Unsorted", func(t *testing.T) {
		path := writeFile(t, dir, "unsorted.txt", "1. apple", "5. banana", "5. apple")
		report, err := Verify(context.Background(), path, 16)
		require.NoError(t, err)
		assert.False(t, report.Sorted)
		require.NotNil(t, report.Violation)
		assert.Equal(t, 3, report.Violation.Line)
		assert.Equal(t, "5. banana", report.Violation.Previous)
		assert.Equal(t, "5. apple", report.Violation.Current)
	})

	t.Run("Empty", func(t *testing.T) {
		report, err := Verify(context.Background(), writeFile(t, dir, "empty.txt"), 16)
		require.NoError(t, err)
		assert.True(t, report.Sorted)
		assert.Zero(t, report.Records)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := Verify(context.Background(), writeFile(t, dir, "bad.txt", "x. y"), 16)
		assert.ErrorIs(t, err, record.ErrFormat)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := Verify(context.Background(), filepath.Join(dir, "missing.txt"), 16)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
}
