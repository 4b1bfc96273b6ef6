// Package database handles database connections.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to configure
// MySQL or SQLite connections based on the application's configuration. The
// file sorter uses the connection for its run history ledger only; sorting
// itself never touches the database.
//
// # Connect
//
// Connect opens the configured driver, applies pool settings and pings the
// database before returning it. SQLite is limited to a single open connection.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("History disabled", zap.Error(err))
//	}
package database
