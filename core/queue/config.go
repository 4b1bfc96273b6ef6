package queue

// Config holds configuration for the message broker.
type Config struct {
	// Address is the Redis server address.
	Address string `mapstructure:"address" default:"localhost:6379"`
	// Password for Redis authentication (optional).
	Password string `mapstructure:"password" default:""`
	// Database is the Redis database number.
	Database int `mapstructure:"database" default:"0"`
	// Topic is the stream that carries file paths between producer and consumer.
	Topic string `mapstructure:"topic" default:"quickstart-events"`
	// Group is the consumer group used by ReadOne.
	Group string `mapstructure:"group" default:"file-sorter"`
	// Consumer is the consumer name inside the group. Defaults to the hostname.
	Consumer string `mapstructure:"consumer" default:""`
	// BlockSeconds is how long a single stream read waits before polling again.
	BlockSeconds int `mapstructure:"block_seconds" default:"3"`
	// TimeoutSeconds is the timeout for connection setup and non-blocking commands.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"5"`
}
