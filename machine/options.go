package machine

import (
	"github.com/hexdraft/zdoc/endian"
	"github.com/hexdraft/zdoc/internal/options"
)

type config struct {
	engine       endian.EndianEngine
	littleEndian bool
}

func defaultConfig() *config {
	return &config{engine: endian.GetLittleEndianEngine(), littleEndian: true}
}

// Option configures Write's byte order (§4.5: little-endian is the
// default for this version; big-endian is carried for hosts that need
// native-order buffers, mirroring NumericFlag's endianness toggle).
type Option = options.Option[*config]

// WithBigEndian selects big-endian encoding for the fixed section's
// multi-byte integers and clears the header's little-endian flag.
func WithBigEndian() Option {
	return options.NoError(func(c *config) {
		c.engine = endian.GetBigEndianEngine()
		c.littleEndian = false
	})
}

func resolveConfig(opts []Option) (*config, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

func engineFor(h Header) endian.EndianEngine {
	if h.LittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}
