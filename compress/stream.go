package compress

import (
	"fmt"
	"io"

	"github.com/hexdraft/zdoc/errs"
)

// StreamCompressor writes compressed chunks to an underlying io.Writer as
// bytes are written to it, without requiring the whole buffer to be
// materialised up front (§4.5 streaming API).
type StreamCompressor struct {
	algo Algorithm
	wc   io.WriteCloser
}

// NewStreamCompressor wraps dst so writes to the returned StreamCompressor
// are compressed with algo at level before reaching dst. The caller must
// call Close to flush trailing state.
func NewStreamCompressor(dst io.Writer, algo Algorithm, level Level) (*StreamCompressor, error) {
	var wc io.WriteCloser
	var err error

	switch algo {
	case AlgorithmLZ4:
		wc, err = newLZ4StreamWriter(dst, level)
	case AlgorithmZstd:
		wc, err = newZstdStreamWriter(dst, level)
	case AlgorithmS2:
		wc = newS2StreamWriter(dst, level)
	case AlgorithmNone:
		wc = newNoopStreamWriter(dst)
	default:
		err = fmt.Errorf("unsupported algorithm %s", algo)
	}
	if err != nil {
		return nil, &errs.CompressionError{Msg: err.Error()}
	}

	return &StreamCompressor{algo: algo, wc: wc}, nil
}

func (s *StreamCompressor) Write(p []byte) (int, error) {
	n, err := s.wc.Write(p)
	if err != nil {
		return n, &errs.CompressionError{Msg: err.Error()}
	}

	return n, nil
}

// Close flushes and finalizes the compressed stream.
func (s *StreamCompressor) Close() error {
	if err := s.wc.Close(); err != nil {
		return &errs.CompressionError{Msg: err.Error()}
	}

	return nil
}

// StreamDecompressor reads compressed bytes from an underlying io.Reader
// and yields decompressed bytes on Read, in bounded chunks.
type StreamDecompressor struct {
	r io.Reader
	c io.Closer
}

// NewStreamDecompressor wraps src, which must contain data produced by a
// StreamCompressor using the given algorithm. One-shot LZ4 and S2 output
// is in block form, which these stream readers do not accept.
func NewStreamDecompressor(src io.Reader, algo Algorithm) (*StreamDecompressor, error) {
	switch algo {
	case AlgorithmLZ4:
		return &StreamDecompressor{r: newLZ4StreamReader(src)}, nil
	case AlgorithmZstd:
		rc, err := newZstdStreamReader(src)
		if err != nil {
			return nil, &errs.DecompressionError{Msg: err.Error()}
		}

		return &StreamDecompressor{r: rc, c: rc}, nil
	case AlgorithmS2:
		return &StreamDecompressor{r: newS2StreamReader(src)}, nil
	case AlgorithmNone:
		return &StreamDecompressor{r: newNoopStreamReader(src)}, nil
	default:
		return nil, &errs.DecompressionError{Msg: fmt.Sprintf("unsupported algorithm %s", algo)}
	}
}

func (s *StreamDecompressor) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if err != nil && err != io.EOF {
		return n, &errs.DecompressionError{Msg: err.Error()}
	}

	return n, err
}

// Close releases any resources held by the underlying decoder, if it has
// any (LZ4 and S2 readers in this package do not).
func (s *StreamDecompressor) Close() error {
	if s.c != nil {
		return s.c.Close()
	}

	return nil
}
