// Package utils provides common utility functions for the file-sorter application.
// It includes helpers for converting human readable byte sizes used by flags and
// configuration, and other shared logic that doesn't fit into domain-specific packages.
package utils
