package compress

import (
	"io"

	"github.com/klauspost/compress/s2"
)

// s2Codec is backed by github.com/klauspost/compress/s2, a Snappy-family
// codec tuned for speed; it is the cheapest non-trivial option, cheaper
// than LevelFast LZ4 on most inputs.
type s2Codec struct{}

var _ Codec = s2Codec{}

func (s2Codec) Compress(data []byte, level Level) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	if level == LevelMaximum {
		return s2.EncodeBetter(nil, data), nil
	}

	return s2.Encode(nil, data), nil
}

func (s2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}

func newS2StreamWriter(dst io.Writer, level Level) io.WriteCloser {
	opts := []s2.WriterOption{}
	if level == LevelMaximum {
		opts = append(opts, s2.WriterBetterCompression())
	} else if level == LevelFast {
		opts = append(opts, s2.WriterConcurrency(1))
	}

	return s2.NewWriter(dst, opts...)
}

func newS2StreamReader(src io.Reader) io.Reader {
	return s2.NewReader(src)
}
