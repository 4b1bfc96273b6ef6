// Package archive uploads sorted files to S3-compatible object storage.
//
// Files are stored under "<prefix>/<basename>" with a text/plain content type.
// The bucket is created on first use, and every upload is confirmed with a
// stat of the stored object.
package archive
