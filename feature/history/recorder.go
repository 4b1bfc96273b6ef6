package history

import (
	"context"
	"time"

	"file-sorter/core/processing"

	"go.uber.org/zap"
)

// Recorder writes every finished operation to the repository.
// A failed write is logged and never affects the operation itself.
type Recorder struct {
	repo   *Repository
	logger *zap.Logger
}

// NewRecorder creates a recorder.
func NewRecorder(repo *Repository, logger *zap.Logger) *Recorder {
	return &Recorder{repo: repo, logger: logger}
}

// Record implements processing.Recorder.
func (r *Recorder) Record(ctx context.Context, kind processing.Kind, res processing.Result, err error, elapsed time.Duration) {
	run := NewRun(kind, res, err, elapsed)

	// The run may have ended because ctx was cancelled; the entry is still written.
	if serr := r.repo.Save(context.WithoutCancel(ctx), &run); serr != nil {
		r.logger.Warn("Failed to record run", zap.String("kind", run.Kind), zap.Error(serr))
		return
	}
	r.logger.Debug("Run recorded", zap.String("id", run.ID.String()), zap.String("status", run.Status))
}
