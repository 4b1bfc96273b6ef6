package queue

import (
	"context"
	"errors"
)

// ErrClosed is returned by a broker after Close.
var ErrClosed = errors.New("broker closed")

// Broker publishes and consumes string messages on named topics.
type Broker interface {
	// Send publishes message to topic.
	Send(ctx context.Context, topic, message string) error
	// ReadOne blocks until one non-empty message is delivered from topic or ctx is done.
	ReadOne(ctx context.Context, topic string) (string, error)
	// Close releases the broker's resources.
	Close() error
}

var (
	_ Broker = (*Redis)(nil)
	_ Broker = (*Memory)(nil)
)
