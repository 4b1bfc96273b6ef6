package generator

import "file-sorter/core/utils"

// Config holds configuration for the test data generator.
type Config struct {
	// Path is the file written when no path is given explicitly.
	Path string `mapstructure:"path" default:"50mb.txt"`
	// Size is the target file size, in human readable form ("50MB", "10GiB").
	Size string `mapstructure:"size" default:"50MB"`
	// Seed makes the output reproducible. Zero picks a random seed.
	Seed uint64 `mapstructure:"seed" default:"0"`
	// FlushBytes is the write batch size.
	FlushBytes int `mapstructure:"flush_bytes" default:"30000"`
}

// SizeBytes parses Size.
func (c Config) SizeBytes() (int64, error) {
	return utils.ParseSize(c.Size)
}
