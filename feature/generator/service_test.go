package generator

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"file-sorter/core/processing"
	"file-sorter/core/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(seed uint64) *Service {
	return NewService(Config{Seed: seed, FlushBytes: 512}, zap.NewNop())
}

func TestGenerate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	res, err := newTestService(7).Generate(context.Background(), path, 10_000)
	require.NoError(t, err)
	assert.Equal(t, processing.StatusSuccess, res.Status())
	assert.Empty(t, res.Source())
	assert.Equal(t, path, res.Target())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(data), 10_000)

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	last := len(lines[len(lines)-1]) + 1
	assert.Less(t, len(data)-last, 10_000, "generation stops as soon as the size is reached")

	for _, l := range lines {
		rec, err := record.Parse(l)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, rec.Number, int32(1))
		assert.Less(t, rec.Number, int32(maxNumber))
		assert.NotEmpty(t, rec.Text)
	}
}

func TestGenerate_Seeded(t *testing.T) {
	dir := t.TempDir()
	a, b := filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")

	_, err := newTestService(99).Generate(context.Background(), a, 4096)
	require.NoError(t, err)
	_, err = newTestService(99).Generate(context.Background(), b, 4096)
	require.NoError(t, err)

	da, _ := os.ReadFile(a)
	db, _ := os.ReadFile(b)
	assert.Equal(t, da, db)
}

func TestGenerate_ReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("x", 50_000)), 0o644))

	_, err := newTestService(1).Generate(context.Background(), path, 100)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(1000))
}

func TestGenerate_Progress(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	var calls []int64
	_, err := newTestService(3).GenerateWithProgress(context.Background(), path, 5000, func(n int64) {
		calls = append(calls, n)
	})
	require.NoError(t, err)

	require.NotEmpty(t, calls)
	assert.IsNonDecreasing(t, calls)
	info, _ := os.Stat(path)
	assert.Equal(t, info.Size(), calls[len(calls)-1])
}

func TestGenerate_InvalidArguments(t *testing.T) {
	svc := newTestService(1)

	_, err := svc.Generate(context.Background(), "", 100)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	res, err := svc.Generate(context.Background(), filepath.Join(t.TempDir(), "x.txt"), 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, processing.StatusError, res.Status())
}

func TestGenerate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestService(1).Generate(ctx, filepath.Join(t.TempDir(), "x.txt"), 1<<20)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConfig_SizeBytes(t *testing.T) {
	n, err := Config{Size: "50MB"}.SizeBytes()
	require.NoError(t, err)
	assert.Equal(t, int64(50_000_000), n)

	_, err = Config{Size: "lots"}.SizeBytes()
	assert.Error(t, err)
}
