package sorter

import (
	"fmt"
	"os"

	"file-sorter/core/record"
)

type queueState int

const (
	queueActive queueState = iota
	queueRetired
)

// shardQueue is the read-ahead buffer of one merge input.
type shardQueue struct {
	file   *os.File
	reader *lineReader
	buf    []record.Record
	head   int
	batch  int
	state  queueState
}

// openQueue opens path and loads its first batch. An empty input comes back retired.
func openQueue(path string, batch, readBytes int) (*shardQueue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open merge input: %w", err)
	}

	q := &shardQueue{
		file:   f,
		reader: newLineReader(f, path, readBytes),
		buf:    make([]record.Record, 0, batch),
		batch:  batch,
	}
	if _, err := q.refill(); err != nil {
		q.close()
		return nil, err
	}
	return q, nil
}

// refill replaces the drained buffer with up to batch records.
// The queue retires, and releases its file, when nothing is left to read.
func (q *shardQueue) refill() (queueState, error) {
	q.buf = q.buf[:0]
	q.head = 0

	for len(q.buf) < q.batch {
		rec, ok, err := q.reader.next()
		if err != nil {
			return q.state, err
		}
		if !ok {
			break
		}
		q.buf = append(q.buf, rec)
	}

	if len(q.buf) == 0 {
		q.state = queueRetired
		q.close()
	}
	return q.state, nil
}

// peek returns the head record. Only valid on an active queue.
func (q *shardQueue) peek() record.Record {
	return q.buf[q.head]
}

// pop drops the head record and refills once the buffer is drained.
func (q *shardQueue) pop() (queueState, error) {
	q.head++
	if q.head < len(q.buf) {
		return queueActive, nil
	}
	return q.refill()
}

func (q *shardQueue) close() {
	if q.file != nil {
		q.file.Close()
		q.file = nil
	}
}

// lowest returns the index of the active queue with the smallest head, or -1
// when every queue is retired. Equal heads resolve to the lowest index.
func lowest(queues []*shardQueue) int {
	best := -1
	smallest := record.Max()
	for i, q := range queues {
		if q.state != queueActive {
			continue
		}
		if head := q.peek(); record.Less(head, smallest) {
			best, smallest = i, head
		}
	}
	return best
}
