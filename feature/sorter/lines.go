package sorter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"file-sorter/core/record"
)

// lineReader yields the records of a line file, skipping blank lines.
type lineReader struct {
	r    *bufio.Reader
	name string
	line int
	eof  bool
}

func newLineReader(r io.Reader, name string, size int) *lineReader {
	return &lineReader{r: bufio.NewReaderSize(r, size), name: name}
}

// next returns the next record. ok is false once the input is exhausted.
func (lr *lineReader) next() (rec record.Record, ok bool, err error) {
	for !lr.eof {
		raw, err := lr.r.ReadString('\n')
		if errors.Is(err, io.EOF) {
			lr.eof = true
		} else if err != nil {
			return record.Record{}, false, fmt.Errorf("read %s: %w", lr.name, err)
		}

		lr.line++
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		// Trimming eats the separator's space, so "12." and "12. " both read as {12, ""}.
		if strings.HasSuffix(text, ".") && !strings.Contains(text, record.Separator) {
			text += " "
		}

		rec, err := record.Parse(text)
		if err != nil {
			return record.Record{}, false, fmt.Errorf("%s line %d: %w", lr.name, lr.line, err)
		}
		return rec, true, nil
	}
	return record.Record{}, false, nil
}

// recordWriter writes canonical lines and flushes once its buffer fills up.
type recordWriter struct {
	w       *bufio.Writer
	scratch []byte
}

func newRecordWriter(w io.Writer, flushBytes int) *recordWriter {
	return &recordWriter{w: bufio.NewWriterSize(w, flushBytes)}
}

func (rw *recordWriter) write(rec record.Record) error {
	rw.scratch = rec.AppendTo(rw.scratch[:0])
	rw.scratch = append(rw.scratch, '\n')
	_, err := rw.w.Write(rw.scratch)
	return err
}

func (rw *recordWriter) flush() error {
	return rw.w.Flush()
}
