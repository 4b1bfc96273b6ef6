package sorter

import (
	"context"
	"fmt"
	"os"

	"file-sorter/core/record"
)

// Violation is the first adjacent pair found out of order.
type Violation struct {
	Line     int    `json:"line"`
	Previous string `json:"previous"`
	Current  string `json:"current"`
}

// VerifyReport describes a sortedness check.
type VerifyReport struct {
	Path      string     `json:"path"`
	Records   int        `json:"records"`
	Sorted    bool       `json:"sorted"`
	Violation *Violation `json:"violation,omitempty"`
}

// Verify streams path and checks every adjacent pair is in non-decreasing order.
// It stops at the first violation. A malformed line is an error.
func Verify(ctx context.Context, path string, readBytes int) (VerifyReport, error) {
	report := VerifyReport{Path: path}

	f, err := os.Open(path)
	if err != nil {
		return report, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	lr := newLineReader(f, path, readBytes)
	prev := record.Min()
	for {
		if report.Records%4096 == 0 && ctx.Err() != nil {
			return report, ctx.Err()
		}

		rec, ok, err := lr.next()
		if err != nil {
			return report, err
		}
		if !ok {
			break
		}

		if record.Less(rec, prev) {
			report.Violation = &Violation{Line: lr.line, Previous: prev.String(), Current: rec.String()}
			return report, nil
		}
		report.Records++
		prev = rec
	}

	report.Sorted = true
	return report, nil
}
