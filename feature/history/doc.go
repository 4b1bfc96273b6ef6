// Package history keeps a ledger of finished runs in a SQL database.
//
// The Recorder implements processing.Recorder, so the sorter and generator services
// report every run to it without knowing about the database. Runs are stored in
// the "runs" table (sqlite by default, mysql when configured) and are exposed at:
//
//   - GET /history?limit=N: most recent runs, newest first
//   - GET /history/:id: one run
//
// Without a database the feature is disabled and services fall back to
// processing.NopRecorder.
package history
