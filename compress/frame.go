package compress

import (
	"fmt"

	"github.com/hexdraft/zdoc/errs"
)

// Codec is a leveled one-shot compressor/decompressor. Compress never
// panics on valid input; on invalid input (including attempting to
// decompress data the codec did not produce) it returns a typed error.
type Codec interface {
	Compress(data []byte, level Level) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// CompressedBuffer is the opaque output of [Compress]: the compressed
// payload plus enough metadata to decompress it and to compute a savings
// ratio without decompressing.
type CompressedBuffer struct {
	Algorithm    Algorithm
	OriginalSize int
	Data         []byte
}

// CompressedSize returns the length of the compressed payload.
func (b *CompressedBuffer) CompressedSize() int {
	return len(b.Data)
}

// Ratio returns compressed/original size (< 1.0 indicates a size
// reduction). Returns 0 if OriginalSize is 0.
func (b *CompressedBuffer) Ratio() float64 {
	if b.OriginalSize == 0 {
		return 0
	}

	return float64(len(b.Data)) / float64(b.OriginalSize)
}

// SavingsPercent returns the space saved as a percentage (0-100).
func (b *CompressedBuffer) SavingsPercent() float64 {
	return (1.0 - b.Ratio()) * 100.0
}

// Compress compresses bytes with the spec's named codec (LZ4) at the given
// level. Use [CompressWith] to select a different algorithm.
func Compress(data []byte, level Level) (*CompressedBuffer, error) {
	return CompressWith(AlgorithmLZ4, data, level)
}

// CompressWith compresses data with the given algorithm and level.
func CompressWith(algo Algorithm, data []byte, level Level) (*CompressedBuffer, error) {
	codec, err := CodecFor(algo)
	if err != nil {
		return nil, &errs.CompressionError{Msg: err.Error()}
	}

	compressed, err := codec.Compress(data, level)
	if err != nil {
		return nil, &errs.CompressionError{Msg: fmt.Sprintf("%s: %v", algo, err)}
	}

	return &CompressedBuffer{
		Algorithm:    algo,
		OriginalSize: len(data),
		Data:         compressed,
	}, nil
}

// Decompress reverses [Compress] / [CompressWith], returning exactly the
// bytes originally given to it.
func Decompress(buf *CompressedBuffer) ([]byte, error) {
	codec, err := CodecFor(buf.Algorithm)
	if err != nil {
		return nil, &errs.DecompressionError{Msg: err.Error()}
	}

	out, err := codec.Decompress(buf.Data)
	if err != nil {
		return nil, &errs.DecompressionError{Msg: fmt.Sprintf("%s: %v", buf.Algorithm, err)}
	}

	return out, nil
}
