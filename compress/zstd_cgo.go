//go:build cgo

package compress

import (
	"io"

	"github.com/valyala/gozstd"
)

func zstdGozstdLevel(level Level) int {
	switch level {
	case LevelFast:
		return 1
	case LevelMaximum:
		return 19
	default:
		return 3
	}
}

func (zstdCodec) Compress(data []byte, level Level) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, zstdGozstdLevel(level)), nil
}

func (zstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}

// zstdCgoStreamWriter adapts gozstd's Writer, which does not expose the
// stdlib io.WriteCloser shape directly, into one.
type zstdCgoStreamWriter struct {
	w *gozstd.Writer
}

func newZstdStreamWriter(dst io.Writer, level Level) (io.WriteCloser, error) {
	w := gozstd.NewWriterLevel(dst, zstdGozstdLevel(level))
	return &zstdCgoStreamWriter{w: w}, nil
}

func (s *zstdCgoStreamWriter) Write(p []byte) (int, error) { return s.w.Write(p) }
func (s *zstdCgoStreamWriter) Close() error                { return s.w.Close() }

func newZstdStreamReader(src io.Reader) (io.ReadCloser, error) {
	r := gozstd.NewReader(src)
	return io.NopCloser(bufioReaderAdapter{r}), nil
}

// bufioReaderAdapter exists only because gozstd.Reader implements Read
// directly; this keeps the call site identical to the pure-Go build.
type bufioReaderAdapter struct {
	r *gozstd.Reader
}

func (b bufioReaderAdapter) Read(p []byte) (int, error) { return b.r.Read(p) }
