// Package sink provides output targets for emitted documents.
//
// A json writer only ever appends to its sink, so anything satisfying
// io.Writer works. This package adds the targets callers usually want
// around that: in-memory buffering, transparent compression (gzip, lz4),
// and an all-or-nothing ObjectSink that uploads the finished document to
// S3-compatible object storage only when the whole write succeeded.
// Emission failures leave truncated, non-parseable text, so remote targets
// must buffer and commit.
package sink
