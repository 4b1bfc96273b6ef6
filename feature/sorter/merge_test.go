package sorter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"file-sorter/core/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func sortedInputs(t *testing.T, cfg Config, n, lines int) ([]string, []string) {
	t.Helper()
	var files, all []string
	for i := range n {
		src := randomLines(int64(100+i), lines)
		all = append(all, src...)
		files = append(files, writeFile(t, cfg.WorkDir, fmt.Sprintf("in_%d.txt", i), sortedCanonical(t, src)...))
	}
	return files, all
}

func TestLowest(t *testing.T) {
	active := func(recs ...record.Record) *shardQueue {
		return &shardQueue{buf: recs, state: queueActive}
	}

	queues := []*shardQueue{
		active(record.New(5, "b")),
		{state: queueRetired},
		active(record.New(1, "a")),
		active(record.New(1, "a")),
	}
	assert.Equal(t, 2, lowest(queues))

	queues[2].state = queueRetired
	assert.Equal(t, 3, lowest(queues))

	assert.Equal(t, -1, lowest([]*shardQueue{{state: queueRetired}}))
	assert.Equal(t, -1, lowest(nil))
}

func TestShardQueue_RefillAndRetire(t *testing.T) {
	cfg := testConfig(t)
	path := writeFile(t, cfg.WorkDir, "in.txt", "1. a", "2. a", "", "3. a", "4. a", "5. a")

	q, err := openQueue(path, 2, cfg.ReadChunkBytes)
	require.NoError(t, err)

	var got []int32
	state := q.state
	for state == queueActive {
		got = append(got, q.peek().Number)
		state, err = q.pop()
		require.NoError(t, err)
	}

	assert.Equal(t, []int32{1, 2, 3, 4, 5}, got)
	assert.Equal(t, queueRetired, q.state)
	assert.Nil(t, q.file)
}

func TestShardQueue_EmptyInput(t *testing.T) {
	cfg := testConfig(t)
	q, err := openQueue(writeFile(t, cfg.WorkDir, "empty.txt"), 2, cfg.ReadChunkBytes)
	require.NoError(t, err)
	assert.Equal(t, queueRetired, q.state)
}

func TestMerge_MultipleRounds(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	cfg := testConfig(t)
	files, all := sortedInputs(t, cfg, 11, 40)

	out, err := NewMerger(cfg, zap.NewNop()).Merge(context.Background(), files)
	require.NoError(t, err)
	assert.Equal(t, cfg.MergePath(), filepath.Dir(out))
	assert.Equal(t, sortedCanonical(t, all), readLines(t, out))

	// 11 inputs at fan-in 3: 4, then 2, then 1 output.
	entries, err := os.ReadDir(cfg.MergePath())
	require.NoError(t, err)
	assert.Len(t, entries, 7)
}

func TestMerge_Deterministic(t *testing.T) {
	cfg := testConfig(t)
	files, _ := sortedInputs(t, cfg, 5, 30)
	m := NewMerger(cfg, zap.NewNop())

	first, err := m.Merge(context.Background(), files)
	require.NoError(t, err)
	second, err := m.Merge(context.Background(), files)
	require.NoError(t, err)

	a, _ := os.ReadFile(first)
	b, _ := os.ReadFile(second)
	assert.NotEqual(t, first, second)
	assert.Equal(t, a, b)
}

func TestMerge_SingleInput(t *testing.T) {
	cfg := testConfig(t)
	files, all := sortedInputs(t, cfg, 1, 25)

	out, err := NewMerger(cfg, zap.NewNop()).Merge(context.Background(), files)
	require.NoError(t, err)
	assert.NotEqual(t, files[0], out)
	assert.Equal(t, sortedCanonical(t, all), readLines(t, out))
}

func TestMerge_NoInputs(t *testing.T) {
	cfg := testConfig(t)

	out, err := NewMerger(cfg, zap.NewNop()).Merge(context.Background(), nil)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestMerge_Collision(t *testing.T) {
	cfg := testConfig(t)
	files, _ := sortedInputs(t, cfg, 2, 5)
	require.NoError(t, os.MkdirAll(cfg.MergePath(), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.MergePath(), "taken.txt"), nil, 0o644))

	m := NewMerger(cfg, zap.NewNop())
	m.name = func() string { return "taken.txt" }

	_, err := m.Merge(context.Background(), files)
	assert.ErrorIs(t, err, ErrMergeCollision)
}

func TestMerge_ReleasesReadersOnFailure(t *testing.T) {
	fds, err := os.ReadDir("/proc/self/fd")
	if err != nil {
		t.Skip("open file descriptors are not observable on this platform")
	}
	before := len(fds)

	cfg := testConfig(t)
	cfg.QueueBatch = 1
	files, _ := sortedInputs(t, cfg, 3, 5)
	files = append(files, writeFile(t, cfg.WorkDir, "bad.txt", "1. a", "oops"))

	_, err = NewMerger(cfg, zap.NewNop()).Merge(context.Background(), files)
	assert.ErrorIs(t, err, record.ErrFormat)

	fds, err = os.ReadDir("/proc/self/fd")
	require.NoError(t, err)
	assert.Equal(t, before, len(fds))
}

func TestMerge_Cancelled(t *testing.T) {
	cfg := testConfig(t)
	files, _ := sortedInputs(t, cfg, 4, 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMerger(cfg, zap.NewNop()).Merge(ctx, files)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPartition(t *testing.T) {
	assert.Equal(t, [][]string{nil}, partition(nil, 3))
	assert.Equal(t, [][]string{{"a", "b"}}, partition([]string{"a", "b"}, 3))
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}, {"e"}}, partition([]string{"a", "b", "c", "d", "e"}, 2))
}
