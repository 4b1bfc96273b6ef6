package sorter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"file-sorter/core/record"
	"file-sorter/core/workers"

	"go.uber.org/zap"
)

// ShardSorter sorts shard files in place.
type ShardSorter struct {
	cfg    Config
	pool   *workers.Pool
	logger *zap.Logger
}

// NewShardSorter creates a sorter running at most cfg.SortWorkers shards at once.
func NewShardSorter(cfg Config, logger *zap.Logger) *ShardSorter {
	return &ShardSorter{cfg: cfg, pool: workers.New(cfg.SortWorkers), logger: logger}
}

// SortAll sorts every shard. The first failure cancels the remaining shards.
func (s *ShardSorter) SortAll(ctx context.Context, shards []Shard) error {
	return s.pool.Run(ctx, len(shards), func(ctx context.Context, i int) error {
		return s.SortShard(ctx, shards[i])
	})
}

// SortShard loads one shard, sorts its records and rewrites the file.
// A malformed line fails the shard. An empty shard is left untouched.
func (s *ShardSorter) SortShard(ctx context.Context, shard Shard) error {
	records, err := s.load(ctx, shard)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		s.logger.Warn("Shard has no records", zap.Int("shard", shard.Index), zap.String("path", shard.Path))
		return nil
	}

	slices.SortFunc(records, record.Compare)

	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store(shard, records)
}

func (s *ShardSorter) load(ctx context.Context, shard Shard) ([]record.Record, error) {
	f, err := os.Open(shard.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrShardMissing, shard.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("open shard %d: %w", shard.Index, err)
	}
	defer f.Close()

	lr := newLineReader(f, fmt.Sprintf("shard %d", shard.Index), s.cfg.ReadChunkBytes)
	var records []record.Record
	for {
		rec, ok, err := lr.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return records, nil
		}
		records = append(records, rec)

		if len(records)%4096 == 0 && ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}
}

func (s *ShardSorter) store(shard Shard, records []record.Record) (err error) {
	f, err := os.Create(shard.Path)
	if err != nil {
		return fmt.Errorf("rewrite shard %d: %w", shard.Index, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close shard %d: %w", shard.Index, cerr)
		}
	}()

	w := newRecordWriter(f, s.cfg.FlushBytes)
	for _, rec := range records {
		if err := w.write(rec); err != nil {
			return fmt.Errorf("write shard %d: %w", shard.Index, err)
		}
	}
	if err := w.flush(); err != nil {
		return fmt.Errorf("flush shard %d: %w", shard.Index, err)
	}
	return nil
}
