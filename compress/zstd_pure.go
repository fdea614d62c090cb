//go:build !cgo

package compress

import (
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdDecoderPool pools zstd decoders; klauspost/compress/zstd is
// explicitly designed for decoder reuse after a warmup.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		d, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("compress: failed to create zstd decoder: %v", err))
		}

		return d
	},
}

func zstdEncoderLevel(level Level) zstd.EncoderLevel {
	switch level {
	case LevelFast:
		return zstd.SpeedFastest
	case LevelMaximum:
		return zstd.SpeedBestCompression
	default:
		return zstd.SpeedDefault
	}
}

func (zstdCodec) Compress(data []byte, level Level) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstdEncoderLevel(level)), zstd.WithEncoderCRC(false))
	if err != nil {
		return nil, err
	}
	defer enc.Close()

	return enc.EncodeAll(data, nil), nil
}

func (zstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	d, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(d)

	out, err := d.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return out, nil
}

func newZstdStreamWriter(dst io.Writer, level Level) (io.WriteCloser, error) {
	return zstd.NewWriter(dst, zstd.WithEncoderLevel(zstdEncoderLevel(level)))
}

func newZstdStreamReader(src io.Reader) (io.ReadCloser, error) {
	d, err := zstd.NewReader(src)
	if err != nil {
		return nil, err
	}

	return d.IOReadCloser(), nil
}
