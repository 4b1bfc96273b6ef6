// Package config provides configuration management for the file sorter.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, timeouts)
//   - Sorter: shard size, fan-in, concurrency caps and buffer sizes of the pipeline
//   - Generator: output path, target size and seed of the test data generator
//   - Queue: Redis address, topic and consumer group
//   - Storage: S3/MinIO credentials and bucket settings for archived results
//   - Database: run history ledger connection
//   - Log: Logging level and format
//
// Every field declares its default in a `default` struct tag, and every key can be
// overridden by an environment variable named after its path (SORTER_MERGE_FAN_IN).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Sorter.ShardSizeBytes)
package config
