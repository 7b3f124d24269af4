package sink

import (
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/pierrec/lz4/v4"
)

// Compressor wraps a destination with a compressing writer. The returned
// writer must be closed to flush the final frame.
type Compressor func(w io.Writer) io.WriteCloser

// Gzip compresses with the default gzip level.
func Gzip(w io.Writer) io.WriteCloser { return gzip.NewWriter(w) }

// LZ4 compresses as an lz4 frame.
func LZ4(w io.Writer) io.WriteCloser { return lz4.NewWriter(w) }

// None passes bytes through unchanged; Close only marks the end of use.
func None(w io.Writer) io.WriteCloser { return nopCloser{w} }

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// ByName returns a built-in compressor by its stable name ("gzip", "lz4" or
// "none"). Stable names let callers record the compression of persisted
// documents next to the bytes.
func ByName(name string) (Compressor, bool) {
	switch name {
	case "gzip":
		return Gzip, true
	case "lz4":
		return LZ4, true
	case "none":
		return None, true
	default:
		return nil, false
	}
}
