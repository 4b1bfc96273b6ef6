package queue

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// payloadField is the stream entry field carrying the message.
const payloadField = "payload"

// Redis is a Broker backed by Redis Streams.
type Redis struct {
	client   *redis.Client
	group    string
	consumer string
	block    time.Duration
	timeout  time.Duration
}

// NewRedis connects to Redis and verifies the connection with a ping.
func NewRedis(cfg Config) (*Redis, error) {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	block := time.Duration(cfg.BlockSeconds) * time.Second
	if block <= 0 {
		block = 3 * time.Second
	}

	consumer := cfg.Consumer
	if consumer == "" {
		consumer, _ = os.Hostname()
	}
	if consumer == "" {
		consumer = "file-sorter"
	}

	group := cfg.Group
	if group == "" {
		group = "file-sorter"
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.Database,
		DialTimeout:  timeout,
		WriteTimeout: timeout,
		// Blocking reads must outlive the BLOCK interval.
		ReadTimeout: block + timeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Redis{
		client:   client,
		group:    group,
		consumer: consumer,
		block:    block,
		timeout:  timeout,
	}, nil
}

// Send appends message to the topic stream.
func (b *Redis) Send(ctx context.Context, topic, message string) error {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	err := b.client.XAdd(ctx, &redis.XAddArgs{
		Stream: topic,
		Values: map[string]any{payloadField: message},
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}
	return nil
}

// ReadOne reads the next undelivered entry of the topic for the consumer group.
// Entries with an empty payload are acknowledged and skipped.
func (b *Redis) ReadOne(ctx context.Context, topic string) (string, error) {
	if err := b.ensureGroup(ctx, topic); err != nil {
		return "", err
	}

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		streams, err := b.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    b.group,
			Consumer: b.consumer,
			Streams:  []string{topic, ">"},
			Count:    1,
			Block:    b.block,
		}).Result()
		if errors.Is(err, redis.Nil) {
			// Block interval elapsed with nothing new.
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			return "", fmt.Errorf("failed to read from %s: %w", topic, err)
		}

		for _, stream := range streams {
			for _, msg := range stream.Messages {
				if err := b.client.XAck(ctx, topic, b.group, msg.ID).Err(); err != nil {
					return "", fmt.Errorf("failed to ack %s on %s: %w", msg.ID, topic, err)
				}
				payload, _ := msg.Values[payloadField].(string)
				if payload != "" {
					return payload, nil
				}
			}
		}
	}
}

// ensureGroup creates the consumer group at offset 0 (earliest) if it does not exist yet.
func (b *Redis) ensureGroup(ctx context.Context, topic string) error {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	err := b.client.XGroupCreateMkStream(ctx, topic, b.group, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("failed to create consumer group %s on %s: %w", b.group, topic, err)
	}
	return nil
}

// Close closes the Redis client.
func (b *Redis) Close() error {
	return b.client.Close()
}
