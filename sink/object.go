package sink

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/minio/minio-go/v7"
)

// ErrAlreadyCommitted is returned when Commit or Write is called after a
// successful Commit.
var ErrAlreadyCommitted = errors.New("sink: object already committed")

// ObjectPutter uploads one finished object. *minio.Client satisfies it, as
// does any S3-compatible client with the same PutObject shape.
type ObjectPutter interface {
	PutObject(ctx context.Context, bucket, name string, r io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// ObjectSink buffers a whole document in memory and uploads it in a single
// put on Commit. Nothing reaches the store before Commit, so a failed or
// abandoned session leaves no partial object behind.
type ObjectSink struct {
	client      ObjectPutter
	bucket      string
	key         string
	contentType string
	logger      *slog.Logger

	buf       bytes.Buffer
	committed bool
}

var _ Sink = (*ObjectSink)(nil)

// ObjectOption configures an ObjectSink.
type ObjectOption func(*ObjectSink)

// WithContentType sets the uploaded object's content type. The default is
// "application/json".
func WithContentType(ct string) ObjectOption {
	return func(s *ObjectSink) {
		if ct != "" {
			s.contentType = ct
		}
	}
}

// WithLogger sets the structured logger for commit outcomes. By default
// commits are silent.
func WithLogger(l *slog.Logger) ObjectOption {
	return func(s *ObjectSink) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewObjectSink creates a sink uploading to bucket/key through client.
func NewObjectSink(client ObjectPutter, bucket, key string, opts ...ObjectOption) *ObjectSink {
	s := &ObjectSink{
		client:      client,
		bucket:      bucket,
		key:         key,
		contentType: "application/json",
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, fn := range opts {
		fn(s)
	}
	return s
}

// Write appends p to the in-memory document.
func (s *ObjectSink) Write(p []byte) (int, error) {
	if s.committed {
		return 0, ErrAlreadyCommitted
	}
	return s.buf.Write(p)
}

// Flush is a no-op; bytes move to the store only on Commit.
func (s *ObjectSink) Flush() error { return nil }

// Len returns the number of buffered bytes.
func (s *ObjectSink) Len() int { return s.buf.Len() }

// Discard drops the buffered document, readying the sink for a new session.
func (s *ObjectSink) Discard() {
	s.buf.Reset()
	s.committed = false
}

// Commit uploads the buffered document. On failure the buffer is kept
// intact so the caller may retry or discard.
func (s *ObjectSink) Commit(ctx context.Context) error {
	if s.committed {
		return ErrAlreadyCommitted
	}
	size := int64(s.buf.Len())
	_, err := s.client.PutObject(ctx, s.bucket, s.key, bytes.NewReader(s.buf.Bytes()), size, minio.PutObjectOptions{
		ContentType: s.contentType,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "object commit failed",
			"bucket", s.bucket,
			"key", s.key,
			"size", size,
			"error", err,
		)
		return err
	}
	s.committed = true
	s.logger.DebugContext(ctx, "object committed",
		"bucket", s.bucket,
		"key", s.key,
		"size", size,
	)
	return nil
}
