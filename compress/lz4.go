package compress

import (
	"errors"
	"io"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4FastPool pools fast-mode lz4.Compressor instances; it maintains
// internal state (a hash table) that benefits from reuse across calls.
var lz4FastPool = sync.Pool{
	New: func() any { return &lz4.Compressor{} },
}

// lz4HCPool pools high-compression lz4.CompressorHC instances used for
// LevelBalanced and LevelMaximum.
var lz4HCPool = sync.Pool{
	New: func() any { return &lz4.CompressorHC{} },
}

type lz4Codec struct{}

var _ Codec = lz4Codec{}

func lz4HCLevel(level Level) lz4.CompressionLevel {
	switch level {
	case LevelMaximum:
		return lz4.Level9
	case LevelBalanced:
		return lz4.Level6
	default:
		return lz4.Level1
	}
}

// Compress compresses data with LZ4. LevelFast uses the fast block
// compressor; LevelBalanced and LevelMaximum use the high-compression
// variant at increasing effort.
func (lz4Codec) Compress(data []byte, level Level) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	var n int
	var err error
	if level == LevelFast {
		c, _ := lz4FastPool.Get().(*lz4.Compressor)
		defer lz4FastPool.Put(c)
		n, err = c.CompressBlock(data, dst)
	} else {
		hc, _ := lz4HCPool.Get().(*lz4.CompressorHC)
		defer lz4HCPool.Put(hc)
		hc.Level = lz4HCLevel(level)
		n, err = hc.CompressBlock(data, dst)
	}
	if err != nil {
		return nil, err
	}

	// Incompressible input: CompressBlock returns n == 0 without error.
	if n == 0 {
		return append([]byte{0}, data...), nil
	}

	return append([]byte{1}, dst[:n]...), nil
}

// Decompress reverses Compress. The adaptive buffer-growth loop handles
// the fact that the LZ4 block format does not self-describe its
// decompressed size.
func (lz4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	stored, payload := data[0], data[1:]
	if stored == 0 {
		out := make([]byte, len(payload))
		copy(out, payload)
		return out, nil
	}

	bufSize := len(payload) * 4
	if bufSize == 0 {
		bufSize = 64
	}
	const maxSize = 128 * 1024 * 1024

	for bufSize <= maxSize {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(payload, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxSize {
				bufSize *= 2
				continue
			}

			return nil, err
		}

		return buf[:n], nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}

// lz4StreamWriter wraps lz4.Writer to satisfy the streaming Compressor
// surface used by StreamCompressor (§4.5: "no requirement to
// materialise the whole buffer").
type lz4StreamWriter struct {
	w *lz4.Writer
}

func newLZ4StreamWriter(dst io.Writer, level Level) (io.WriteCloser, error) {
	w := lz4.NewWriter(dst)
	if err := w.Apply(lz4.CompressionLevelOption(lz4HCLevel(level))); err != nil {
		return nil, err
	}

	return &lz4StreamWriter{w: w}, nil
}

func (s *lz4StreamWriter) Write(p []byte) (int, error) { return s.w.Write(p) }
func (s *lz4StreamWriter) Close() error                { return s.w.Close() }

func newLZ4StreamReader(src io.Reader) io.Reader {
	return lz4.NewReader(src)
}
