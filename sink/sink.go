package sink

import "bytes"

// Sink is a sequential append target. Writers never seek or rewind; Flush
// pushes buffered bytes toward the final destination without finalizing it.
type Sink interface {
	Write(p []byte) (int, error)
	Flush() error
}

// BufferSink accumulates output in memory. The zero value is ready to use.
type BufferSink struct {
	buf bytes.Buffer
}

var _ Sink = (*BufferSink)(nil)

// Write appends p to the buffer.
func (s *BufferSink) Write(p []byte) (int, error) { return s.buf.Write(p) }

// Flush is a no-op; the buffer is always current.
func (s *BufferSink) Flush() error { return nil }

// Bytes returns the accumulated output. The slice is owned by the sink.
func (s *BufferSink) Bytes() []byte { return s.buf.Bytes() }

// String returns the accumulated output as a string.
func (s *BufferSink) String() string { return s.buf.String() }

// Len returns the number of buffered bytes.
func (s *BufferSink) Len() int { return s.buf.Len() }

// Reset discards the accumulated output so the sink can serve a new
// session.
func (s *BufferSink) Reset() { s.buf.Reset() }
