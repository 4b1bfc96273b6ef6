package history

import (
	"time"

	"file-sorter/core/processing"

	"github.com/google/uuid"
)

// Run is one finished sort or generate operation.
type Run struct {
	ID             uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Kind           string    `gorm:"size:16;index" json:"kind"`
	Source         string    `gorm:"size:1024" json:"source,omitempty"`
	Target         string    `gorm:"size:1024" json:"target,omitempty"`
	Status         string    `gorm:"size:16" json:"status"`
	Error          string    `gorm:"type:text" json:"error,omitempty"`
	DurationMillis int64     `json:"duration_ms"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
}

// TableName overrides the table name used by Run.
func (Run) TableName() string {
	return "runs"
}

// NewRun builds the ledger entry of a finished operation.
func NewRun(kind processing.Kind, res processing.Result, err error, elapsed time.Duration) Run {
	run := Run{
		ID:             uuid.New(),
		Kind:           string(kind),
		Source:         res.Source(),
		Target:         res.Target(),
		Status:         res.Status().String(),
		DurationMillis: elapsed.Milliseconds(),
		CreatedAt:      time.Now().UTC(),
	}
	if err != nil {
		run.Error = err.Error()
		run.Status = processing.StatusError.String()
	}
	return run
}
