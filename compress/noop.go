package compress

import "io"

// noopCodec bypasses compression; useful for testing and for payloads
// already known to be incompressible (§4.5 makes no ratio guarantee for
// random data).
type noopCodec struct{}

var _ Codec = noopCodec{}

func (noopCodec) Compress(data []byte, _ Level) ([]byte, error) {
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (noopCodec) Decompress(data []byte) ([]byte, error) {
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

type noopWriteCloser struct{ io.Writer }

func (noopWriteCloser) Close() error { return nil }

func newNoopStreamWriter(dst io.Writer) io.WriteCloser {
	return noopWriteCloser{dst}
}

func newNoopStreamReader(src io.Reader) io.Reader {
	return src
}
