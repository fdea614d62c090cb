// Package compress implements the compression frame that wraps an entire
// serialized zdoc buffer (LLM text, Human text, or Machine binary) for
// storage or transport.
//
// Compression is orthogonal to the three codecs and to the machine binary
// layout: a [CompressedBuffer] is produced from already-serialized bytes and, once
// decompressed, yields back exactly those bytes. The frame records the
// original size alongside the compressed payload so a caller can compute a
// savings ratio without decompressing (§4.5 of the design).
//
// Four algorithms are available ([AlgorithmLZ4] is the spec's named codec;
// [AlgorithmZstd], [AlgorithmS2], and [AlgorithmNone] are additional frame
// codecs a caller may select explicitly). Each algorithm accepts a [Level]
// that trades compression ratio for speed.
package compress
