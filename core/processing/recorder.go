package processing

import (
	"context"
	"time"
)

// Kind names the operation a Result came from.
type Kind string

const (
	// KindSort is a full split, sort and merge run.
	KindSort Kind = "sort"
	// KindGenerate is a test data generation run.
	KindGenerate Kind = "generate"
)

// Recorder is notified when an operation finishes, successfully or not.
type Recorder interface {
	Record(ctx context.Context, kind Kind, result Result, err error, elapsed time.Duration)
}

// NopRecorder discards every notification.
type NopRecorder struct{}

// Record implements Recorder.
func (NopRecorder) Record(context.Context, Kind, Result, error, time.Duration) {}
