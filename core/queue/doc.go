// Package queue provides the messaging collaborator that hands file paths from
// the producer to the consumer.
//
// # Broker Interface
//
// The Broker interface is deliberately small:
//   - Send: fire-and-forget publish of a UTF-8 payload to a named topic.
//   - ReadOne: blocking pull of exactly one non-empty message from a topic.
//
// # Implementations
//
//   - Redis: Redis Streams. Send is an XADD; ReadOne reads through a consumer
//     group created at offset 0, so a fresh consumer starts from the earliest
//     message still in the stream, and acknowledges the entry after delivery.
//   - Memory: an in-process broker with the same contract, used by the
//     standalone mode and by tests.
//
// # Usage
//
//	b, err := queue.NewRedis(cfg.Queue)
//	if err != nil {
//	    return err
//	}
//	defer b.Close()
//	path, err := b.ReadOne(ctx, cfg.Queue.Topic)
package queue
