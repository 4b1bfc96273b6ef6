package sorter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"file-sorter/core/workers"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Merger merges sorted files in rounds of bounded fan-in.
type Merger struct {
	cfg    Config
	pool   *workers.Pool
	logger *zap.Logger

	// name generates merge output file names.
	name func() string
}

// NewMerger creates a merger running at most cfg.MergeWorkers groups at once.
func NewMerger(cfg Config, logger *zap.Logger) *Merger {
	return &Merger{
		cfg:    cfg,
		pool:   workers.New(cfg.MergeWorkers),
		logger: logger,
		name:   func() string { return uuid.NewString() + ".txt" },
	}
}

// Merge merges files until one remains and returns its path.
// At least one round runs, so the result always lives in the merge directory.
func (m *Merger) Merge(ctx context.Context, files []string) (string, error) {
	if err := os.MkdirAll(m.cfg.MergePath(), 0o755); err != nil {
		return "", fmt.Errorf("create merge dir: %w", err)
	}

	current := files
	for round := 1; ; round++ {
		groups := partition(current, m.cfg.MergeFanIn)
		outputs := make([]string, len(groups))

		err := m.pool.Run(ctx, len(groups), func(ctx context.Context, i int) error {
			out, err := m.mergeGroup(ctx, groups[i])
			outputs[i] = out
			return err
		})
		if err != nil {
			return "", fmt.Errorf("merge round %d: %w", round, err)
		}

		m.logger.Debug("Merge round finished",
			zap.Int("round", round),
			zap.Int("inputs", len(current)),
			zap.Int("outputs", len(outputs)),
		)

		current = outputs
		if len(current) == 1 {
			return current[0], nil
		}
	}
}

// partition splits files into consecutive groups of at most size.
// No files yield a single empty group.
func partition(files []string, size int) [][]string {
	if len(files) == 0 {
		return [][]string{nil}
	}
	groups := make([][]string, 0, (len(files)+size-1)/size)
	for start := 0; start < len(files); start += size {
		end := min(start+size, len(files))
		groups = append(groups, files[start:end])
	}
	return groups
}

// mergeGroup streams the inputs into one new sorted output file.
func (m *Merger) mergeGroup(ctx context.Context, inputs []string) (path string, err error) {
	path = filepath.Join(m.cfg.MergePath(), m.name())

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return "", fmt.Errorf("%w: %s", ErrMergeCollision, path)
	}
	if err != nil {
		return "", fmt.Errorf("create merge output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close merge output: %w", cerr)
		}
	}()

	queues := make([]*shardQueue, 0, len(inputs))
	defer func() {
		for _, q := range queues {
			q.close()
		}
	}()

	for _, in := range inputs {
		q, err := openQueue(in, m.cfg.QueueBatch, m.cfg.ReadChunkBytes)
		if err != nil {
			return "", err
		}
		queues = append(queues, q)
	}

	w := newRecordWriter(f, m.cfg.FlushBytes)
	for n := 0; ; n++ {
		if n%m.cfg.QueueBatch == 0 && ctx.Err() != nil {
			return "", ctx.Err()
		}

		i := lowest(queues)
		if i < 0 {
			break
		}
		if err := w.write(queues[i].peek()); err != nil {
			return "", fmt.Errorf("write merge output: %w", err)
		}
		if _, err := queues[i].pop(); err != nil {
			return "", err
		}
	}

	if err := w.flush(); err != nil {
		return "", fmt.Errorf("flush merge output: %w", err)
	}
	return path, nil
}
