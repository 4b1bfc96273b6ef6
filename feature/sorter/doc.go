// Package sorter implements the external merge sort of record files.
//
// A run goes through three sequential stages, each configured from one Config value:
//
//  1. Split: the Splitter reads the source in fixed chunks and writes line-aligned
//     shards of roughly ShardSizeBytes to Shards/Shard_<index>.txt.
//  2. Sort: the ShardSorter loads each shard, sorts it with record.Compare and
//     rewrites it in place. At most SortWorkers shards are in memory at once.
//  3. Merge: the Merger merges groups of MergeFanIn files into MergeFolder/<uuid>.txt,
//     MergeWorkers groups at a time, and repeats until one file is left.
//
// # Merging
//
// Every merge input is read through a queue holding up to QueueBatch records.
// The group repeatedly writes the smallest head among the active queues; equal
// heads are taken from the earliest input. A queue whose refill comes back empty
// is retired and its file is closed. A round ends only after all its groups have
// finished, and its outputs in group order are the inputs of the next round.
//
// # Failures
//
// A malformed line fails its shard, and the first failing shard or group cancels
// its siblings through the shared context. Shard and merge files of a failed run
// are left on disk.
//
// # HTTP
//
//   - POST /sort: sort a file, body {"path": "..."}
//   - GET /sort/verify?path=...: check a file is sorted
package sorter
