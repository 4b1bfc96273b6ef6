package sorter

import "errors"

var (
	// ErrShardMissing is returned when a shard file vanished between split and sort.
	ErrShardMissing = errors.New("shard file missing")
	// ErrMergeCollision is returned when a merge output path already exists.
	ErrMergeCollision = errors.New("merge output already exists")
)
