package generator

import (
	"bufio"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"file-sorter/core/processing"
	"file-sorter/core/record"

	"go.uber.org/zap"
)

// ErrInvalidArgument is returned for an empty path or a non-positive size.
var ErrInvalidArgument = errors.New("invalid generator argument")

// maxNumber bounds the generated numbers to [1, maxNumber).
const maxNumber = 1_000_000

//go:embed words.txt
var wordList string

// Progress is called after every flushed batch with the bytes written so far.
type Progress func(written int64)

// Service writes files of random records.
type Service struct {
	cfg      Config
	words    []string
	recorder processing.Recorder
	logger   *zap.Logger
}

// NewService creates a generator using the embedded word list.
func NewService(cfg Config, logger *zap.Logger) *Service {
	if cfg.FlushBytes < 1 {
		cfg.FlushBytes = 30_000
	}
	return &Service{
		cfg:      cfg,
		words:    strings.Fields(wordList),
		recorder: processing.NopRecorder{},
		logger:   logger,
	}
}

// WithRecorder sets the recorder notified after every run.
func (s *Service) WithRecorder(r processing.Recorder) *Service {
	if r != nil {
		s.recorder = r
	}
	return s
}

// Generate writes random records to path until it holds at least maxBytes.
func (s *Service) Generate(ctx context.Context, path string, maxBytes int64) (processing.Result, error) {
	return s.GenerateWithProgress(ctx, path, maxBytes, nil)
}

// GenerateWithProgress is Generate reporting every flushed batch to progress.
func (s *Service) GenerateWithProgress(ctx context.Context, path string, maxBytes int64, progress Progress) (processing.Result, error) {
	start := time.Now()
	res, err := s.generate(ctx, path, maxBytes, progress)
	s.recorder.Record(ctx, processing.KindGenerate, res, err, time.Since(start))
	return res, err
}

func (s *Service) generate(ctx context.Context, path string, maxBytes int64, progress Progress) (res processing.Result, err error) {
	failed := processing.NewResult("", path, processing.StatusError)

	if strings.TrimSpace(path) == "" {
		return failed, fmt.Errorf("%w: path is empty", ErrInvalidArgument)
	}
	if maxBytes < 1 {
		return failed, fmt.Errorf("%w: size must be positive, got %d", ErrInvalidArgument, maxBytes)
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return failed, fmt.Errorf("remove existing file: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return failed, fmt.Errorf("create: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			res, err = failed, fmt.Errorf("close: %w", cerr)
		}
	}()

	rng := s.newRand()
	w := bufio.NewWriterSize(f, s.cfg.FlushBytes)
	var (
		line    []byte
		written int64
		pending int
	)

	for written+int64(pending) < maxBytes {
		rec := record.New(int32(1+rng.IntN(maxNumber-1)), s.words[rng.IntN(len(s.words))])
		line = append(rec.AppendTo(line[:0]), '\n')
		pending += len(line)
		if _, err := w.Write(line); err != nil {
			return failed, fmt.Errorf("write: %w", err)
		}

		if pending >= s.cfg.FlushBytes {
			if err := w.Flush(); err != nil {
				return failed, fmt.Errorf("write: %w", err)
			}
			written += int64(pending)
			pending = 0
			if progress != nil {
				progress(written)
			}
			if err := ctx.Err(); err != nil {
				return failed, err
			}
		}
	}

	if err := w.Flush(); err != nil {
		return failed, fmt.Errorf("write: %w", err)
	}
	written += int64(pending)
	if progress != nil && pending > 0 {
		progress(written)
	}

	target := path
	if abs, err := filepath.Abs(path); err == nil {
		target = abs
	}
	s.logger.Info("File generated", zap.String("target", target), zap.Int64("bytes", written))
	return processing.NewResult("", target, processing.StatusSuccess), nil
}

func (s *Service) newRand() *rand.Rand {
	seed := s.cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}
