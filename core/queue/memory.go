package queue

import (
	"context"
	"sync"
)

// Memory is an in-process Broker. Every topic is an append-only log; ReadOne
// consumes from the earliest message not read yet.
type Memory struct {
	mu     sync.Mutex
	topics map[string]*memoryTopic
	closed bool
	done   chan struct{}
}

type memoryTopic struct {
	messages []string
	next     int
	// notify is closed and replaced whenever a message is appended.
	notify chan struct{}
}

// NewMemory creates an empty in-memory broker.
func NewMemory() *Memory {
	return &Memory{
		topics: make(map[string]*memoryTopic),
		done:   make(chan struct{}),
	}
}

func (m *Memory) topic(name string) *memoryTopic {
	t, ok := m.topics[name]
	if !ok {
		t = &memoryTopic{notify: make(chan struct{})}
		m.topics[name] = t
	}
	return t
}

// Send appends message to topic.
func (m *Memory) Send(ctx context.Context, topic, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	t := m.topic(topic)
	t.messages = append(t.messages, message)
	close(t.notify)
	t.notify = make(chan struct{})
	return nil
}

// ReadOne returns the next non-empty message of topic, waiting for one if needed.
func (m *Memory) ReadOne(ctx context.Context, topic string) (string, error) {
	for {
		m.mu.Lock()
		if m.closed {
			m.mu.Unlock()
			return "", ErrClosed
		}
		t := m.topic(topic)
		for t.next < len(t.messages) {
			msg := t.messages[t.next]
			t.next++
			if msg != "" {
				m.mu.Unlock()
				return msg, nil
			}
		}
		wait := t.notify
		m.mu.Unlock()

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-m.done:
			return "", ErrClosed
		case <-wait:
		}
	}
}

// Close wakes up blocked readers and rejects further use.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.closed {
		m.closed = true
		close(m.done)
	}
	return nil
}
