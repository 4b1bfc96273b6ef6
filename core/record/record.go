package record

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Separator splits the number from the text in the canonical form.
const Separator = ". "

// ErrFormat is returned when a line does not match "<integer>. <text>".
var ErrFormat = errors.New("malformed record")

// Record is a number with an attached text.
type Record struct {
	// Number is the numeric part, used as the secondary sort key.
	Number int32
	// Text is the text part, used as the primary sort key.
	Text string

	// bound is -1 for Min, +1 for Max and 0 for every real record.
	bound int8
}

// New creates a record from its two fields.
func New(number int32, text string) Record {
	return Record{Number: number, Text: text}
}

// Min returns a value that compares below every real record.
func Min() Record {
	return Record{Number: math.MinInt32, bound: -1}
}

// Max returns a value that compares above every real record.
func Max() Record {
	return Record{Number: math.MaxInt32, Text: strings.Repeat("\xff", 100), bound: 1}
}

// IsSentinel reports whether r is Min or Max.
func (r Record) IsSentinel() bool {
	return r.bound != 0
}

// Parse parses a line in canonical form. The line is split on the first separator,
// so the text may itself contain ". ".
func Parse(line string) (Record, error) {
	idx := strings.Index(line, Separator)
	if idx < 0 {
		return Record{}, fmt.Errorf("%w: missing %q separator in %q", ErrFormat, Separator, line)
	}

	n, err := strconv.ParseInt(line[:idx], 10, 32)
	if err != nil {
		return Record{}, fmt.Errorf("%w: invalid number %q", ErrFormat, line[:idx])
	}

	return Record{Number: int32(n), Text: line[idx+len(Separator):]}, nil
}

// String returns the canonical form.
func (r Record) String() string {
	return string(r.AppendTo(nil))
}

// AppendTo appends the canonical form of r (without a line break) to b.
func (r Record) AppendTo(b []byte) []byte {
	b = strconv.AppendInt(b, int64(r.Number), 10)
	b = append(b, Separator...)
	return append(b, r.Text...)
}

// Compare returns -1 if a sorts before b, +1 if after and 0 if they are equal.
func Compare(a, b Record) int {
	if a.bound != b.bound {
		return cmp.Compare(a.bound, b.bound)
	}
	if c := strings.Compare(a.Text, b.Text); c != 0 {
		return c
	}
	return cmp.Compare(a.Number, b.Number)
}

// Less reports whether a sorts strictly before b.
func Less(a, b Record) bool {
	return Compare(a, b) < 0
}
