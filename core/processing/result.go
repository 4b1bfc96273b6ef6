package processing

import (
	"encoding/json"
	"fmt"
)

// Status describes how a file operation ended.
type Status int

const (
	// StatusUnknown marks a result that was never initialised.
	StatusUnknown Status = iota
	// StatusSuccess marks a completed operation.
	StatusSuccess
	// StatusError marks a failed operation.
	StatusError
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name.
func (s *Status) UnmarshalText(b []byte) error {
	switch string(b) {
	case "success":
		*s = StatusSuccess
	case "error":
		*s = StatusError
	case "unknown", "":
		*s = StatusUnknown
	default:
		return fmt.Errorf("unknown status %q", string(b))
	}
	return nil
}

// Result is the outcome of processing a file.
type Result struct {
	source string
	target string
	status Status
}

// NewResult creates a result. Source may be empty for operations without an input file.
func NewResult(source, target string, status Status) Result {
	return Result{source: source, target: target, status: status}
}

// Source is the file that was processed.
func (r Result) Source() string { return r.source }

// Target is the file that was produced.
func (r Result) Target() string { return r.target }

// Status is how the operation ended.
func (r Result) Status() Status { return r.status }

type resultJSON struct {
	Source string `json:"source,omitempty"`
	Target string `json:"target"`
	Status Status `json:"status"`
}

// MarshalJSON implements json.Marshaler.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{Source: r.source, Target: r.target, Status: r.status})
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Result) UnmarshalJSON(b []byte) error {
	var v resultJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*r = NewResult(v.Source, v.Target, v.Status)
	return nil
}
