package sorter

import (
	"errors"
	"fmt"
	"path/filepath"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid sorter config")

// Config holds the thresholds and concurrency caps of one sort run.
type Config struct {
	// WorkDir is the root the shard and merge directories are created under.
	WorkDir string `mapstructure:"work_dir" default:"."`
	// ShardDir is the shard directory, relative to WorkDir.
	ShardDir string `mapstructure:"shard_dir" default:"Shards"`
	// MergeDir is the merge output directory, relative to WorkDir.
	MergeDir string `mapstructure:"merge_dir" default:"MergeFolder"`
	// ShardSizeBytes is the size after which a shard is closed at the next line break.
	ShardSizeBytes int64 `mapstructure:"shard_size_bytes" default:"5000000"`
	// ReadChunkBytes is the fixed read size used while splitting.
	ReadChunkBytes int `mapstructure:"read_chunk_bytes" default:"4096"`
	// SortWorkers caps how many shards are sorted at once.
	SortWorkers int `mapstructure:"sort_workers" default:"7"`
	// MergeFanIn is the number of files merged by one group.
	MergeFanIn int `mapstructure:"merge_fan_in" default:"20"`
	// MergeWorkers caps how many groups of a round are merged at once.
	MergeWorkers int `mapstructure:"merge_workers" default:"5"`
	// QueueBatch is the read-ahead record count per merge input.
	QueueBatch int `mapstructure:"queue_batch" default:"1000"`
	// FlushBytes is the write buffer size for rewritten shards and merge outputs.
	FlushBytes int `mapstructure:"flush_bytes" default:"30000"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		WorkDir:        ".",
		ShardDir:       "Shards",
		MergeDir:       "MergeFolder",
		ShardSizeBytes: 5_000_000,
		ReadChunkBytes: 4096,
		SortWorkers:    7,
		MergeFanIn:     20,
		MergeWorkers:   5,
		QueueBatch:     1000,
		FlushBytes:     30_000,
	}
}

// Validate rejects values no run could work with.
func (c Config) Validate() error {
	positive := []struct {
		name  string
		value int64
	}{
		{"shard_size_bytes", c.ShardSizeBytes},
		{"read_chunk_bytes", int64(c.ReadChunkBytes)},
		{"sort_workers", int64(c.SortWorkers)},
		{"merge_workers", int64(c.MergeWorkers)},
		{"queue_batch", int64(c.QueueBatch)},
		{"flush_bytes", int64(c.FlushBytes)},
	}
	for _, p := range positive {
		if p.value < 1 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, p.name, p.value)
		}
	}
	if c.MergeFanIn < 2 {
		return fmt.Errorf("%w: merge_fan_in must be at least 2, got %d", ErrInvalidConfig, c.MergeFanIn)
	}
	if c.ShardDir == "" || c.MergeDir == "" {
		return fmt.Errorf("%w: shard_dir and merge_dir are required", ErrInvalidConfig)
	}
	return nil
}

// ShardPath returns the directory shards are written to.
func (c Config) ShardPath() string {
	return filepath.Join(c.WorkDir, c.ShardDir)
}

// MergePath returns the directory merge outputs are written to.
func (c Config) MergePath() string {
	return filepath.Join(c.WorkDir, c.MergeDir)
}
