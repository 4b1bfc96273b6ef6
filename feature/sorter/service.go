package sorter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"file-sorter/core/processing"

	"go.uber.org/zap"
)

// Service runs the split, sort and merge pipeline.
type Service struct {
	cfg      Config
	splitter *Splitter
	sorter   *ShardSorter
	merger   *Merger
	recorder processing.Recorder
	logger   *zap.Logger

	// mu serializes runs; they share the shard file names.
	mu sync.Mutex
}

// NewService creates a pipeline. The configuration is validated once here.
func NewService(cfg Config, logger *zap.Logger) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Service{
		cfg:      cfg,
		splitter: NewSplitter(cfg, logger),
		sorter:   NewShardSorter(cfg, logger),
		merger:   NewMerger(cfg, logger),
		recorder: processing.NopRecorder{},
		logger:   logger,
	}, nil
}

// WithRecorder sets the recorder notified after every run.
func (s *Service) WithRecorder(r processing.Recorder) *Service {
	if r != nil {
		s.recorder = r
	}
	return s
}

// Sort sorts source into a new file and returns its location.
// The source is left untouched; shard and merge files are not cleaned up.
// Concurrent calls run one after another.
func (s *Service) Sort(ctx context.Context, source string) (processing.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	res, err := s.sort(ctx, source)
	s.recorder.Record(ctx, processing.KindSort, res, err, time.Since(start))
	return res, err
}

func (s *Service) sort(ctx context.Context, source string) (processing.Result, error) {
	failed := processing.NewResult(source, "", processing.StatusError)

	if _, err := os.Stat(source); err != nil {
		return failed, fmt.Errorf("source: %w", err)
	}

	shards, err := s.splitter.Split(ctx, source)
	if err != nil {
		return failed, fmt.Errorf("split: %w", err)
	}
	s.logger.Info("Source split", zap.String("source", source), zap.Int("shards", len(shards)))

	if err := s.sorter.SortAll(ctx, shards); err != nil {
		return failed, fmt.Errorf("sort shards: %w", err)
	}

	files := make([]string, len(shards))
	for i, sh := range shards {
		files[i] = sh.Path
	}

	out, err := s.merger.Merge(ctx, files)
	if err != nil {
		return failed, fmt.Errorf("merge: %w", err)
	}

	if abs, err := filepath.Abs(out); err == nil {
		out = abs
	}
	s.logger.Info("Source sorted", zap.String("source", source), zap.String("target", out))
	return processing.NewResult(source, out, processing.StatusSuccess), nil
}
