// Package workers provides the bounded-concurrency runner used by the sort and
// merge stages.
//
// A Pool admits at most Limit tasks at a time. As soon as one task finishes the
// next one is admitted, until every task has been scheduled and all in-flight
// tasks have drained.
//
// # Failure Handling
//
// The runner is fail-fast. The first task error cancels the context handed to
// every task, no further tasks are admitted, and Run returns that first error
// once the tasks already in flight have returned. Cancellation is cooperative:
// tasks must watch their context to stop early.
//
// # Usage
//
//	pool := workers.New(7)
//	err := pool.Run(ctx, len(shards), func(ctx context.Context, i int) error {
//	    return sortShard(ctx, shards[i])
//	})
package workers
