package sorter

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Shard is one line-aligned fragment of the source file.
type Shard struct {
	// Index is the position of the shard in split order.
	Index int
	// Path is the shard file.
	Path string
	// Size is the number of bytes written to the shard.
	Size int64
}

// Splitter cuts a source file into shards of roughly ShardSizeBytes.
type Splitter struct {
	cfg    Config
	logger *zap.Logger
}

// NewSplitter creates a splitter.
func NewSplitter(cfg Config, logger *zap.Logger) *Splitter {
	return &Splitter{cfg: cfg, logger: logger}
}

// Split reads source in fixed chunks and writes a new shard every time the
// buffer grows past the threshold. A shard always ends on a line break, except
// the last one when the source does not end with one.
func (s *Splitter) Split(ctx context.Context, source string) ([]Shard, error) {
	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer f.Close()

	dir := s.cfg.ShardPath()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create shard dir: %w", err)
	}

	r := bufio.NewReaderSize(f, s.cfg.ReadChunkBytes)
	chunk := make([]byte, s.cfg.ReadChunkBytes)
	var (
		buf    bytes.Buffer
		shards []Shard
	)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n, rerr := r.Read(chunk)
		buf.Write(chunk[:n])

		if int64(buf.Len()) > s.cfg.ShardSizeBytes {
			if !bytes.HasSuffix(buf.Bytes(), []byte{'\n'}) {
				rest, err := r.ReadBytes('\n')
				if err != nil && !errors.Is(err, io.EOF) {
					return nil, fmt.Errorf("read source: %w", err)
				}
				buf.Write(rest)
			}
			shard, err := s.writeShard(dir, len(shards), buf.Bytes())
			if err != nil {
				return nil, err
			}
			shards = append(shards, shard)
			buf.Reset()
		}

		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			return nil, fmt.Errorf("read source: %w", rerr)
		}
	}

	if buf.Len() > 0 {
		shard, err := s.writeShard(dir, len(shards), buf.Bytes())
		if err != nil {
			return nil, err
		}
		shards = append(shards, shard)
	}

	s.logger.Debug("Source split", zap.String("source", source), zap.Int("shards", len(shards)))
	return shards, nil
}

func (s *Splitter) writeShard(dir string, index int, data []byte) (Shard, error) {
	path := filepath.Join(dir, fmt.Sprintf("Shard_%d.txt", index))

	// A shard left over from an earlier run is replaced, never appended to.
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Shard{}, fmt.Errorf("remove stale shard: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return Shard{}, fmt.Errorf("write shard %d: %w", index, err)
	}

	return Shard{Index: index, Path: path, Size: int64(len(data))}, nil
}
