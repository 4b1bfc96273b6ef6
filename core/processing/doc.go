// Package processing holds the outcome type shared by every file operation.
//
// Both the sort pipeline and the generator report a Result: the file they read,
// the file they produced, and whether the operation succeeded. A Result is
// immutable once constructed; its fields are only reachable through accessors.
package processing
