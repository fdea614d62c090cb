package compress

import "fmt"

// Level selects the effort/ratio tradeoff for a compression operation. The
// exact mapping onto an underlying codec's own level knob is
// algorithm-specific; see each codec's Compress implementation.
type Level uint8

const (
	// LevelFast favors throughput over ratio.
	LevelFast Level = iota
	// LevelBalanced is the default: a reasonable ratio at moderate cost.
	LevelBalanced
	// LevelMaximum favors ratio over throughput.
	LevelMaximum
)

func (l Level) String() string {
	switch l {
	case LevelFast:
		return "Fast"
	case LevelBalanced:
		return "Balanced"
	case LevelMaximum:
		return "Maximum"
	default:
		return "Unknown"
	}
}

// Algorithm identifies which compression codec produced or should decode a
// CompressedBuffer or stream.
type Algorithm uint8

const (
	// AlgorithmLZ4 is the spec's named codec (§4.5), backed by
	// github.com/pierrec/lz4/v4.
	AlgorithmLZ4 Algorithm = iota
	// AlgorithmZstd is backed by github.com/klauspost/compress/zstd (pure
	// Go) or github.com/valyala/gozstd (cgo build), selected by build tag.
	AlgorithmZstd
	// AlgorithmS2 is backed by github.com/klauspost/compress/s2, a
	// Snappy-compatible, faster-than-LZ4 codec.
	AlgorithmS2
	// AlgorithmNone bypasses compression; useful for testing and for data
	// already known to be incompressible.
	AlgorithmNone
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmLZ4:
		return "LZ4"
	case AlgorithmZstd:
		return "Zstd"
	case AlgorithmS2:
		return "S2"
	case AlgorithmNone:
		return "None"
	default:
		return "Unknown"
	}
}

var builtinCodecs = map[Algorithm]Codec{
	AlgorithmLZ4:  lz4Codec{},
	AlgorithmZstd: zstdCodec{},
	AlgorithmS2:   s2Codec{},
	AlgorithmNone: noopCodec{},
}

// CodecFor returns the built-in Codec for the given algorithm.
func CodecFor(algo Algorithm) (Codec, error) {
	if c, ok := builtinCodecs[algo]; ok {
		return c, nil
	}

	return nil, fmt.Errorf("compress: unsupported algorithm %s", algo)
}
