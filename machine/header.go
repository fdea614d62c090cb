package machine

import "github.com/hexdraft/zdoc/errs"

// Magic, version, and flag bits for the machine binary layout (§4.4,
// §4.5). The magic bytes spell "ZD".
const (
	MagicByte0 = 0x5A
	MagicByte1 = 0x44
	Version    = 0x01

	FlagHeapPresent  = 0x01
	FlagLittleEndian = 0x02

	flagReservedMask = ^uint8(FlagHeapPresent | FlagLittleEndian)

	// HeaderSize is the fixed byte width of the magic+version+flags
	// header, before the fixed section begins.
	HeaderSize = 4
)

// Header is the parsed four-byte prefix of a machine buffer.
type Header struct {
	Flags uint8
}

// HeapPresent reports whether the buffer carries a trailing heap section.
func (h Header) HeapPresent() bool { return h.Flags&FlagHeapPresent != 0 }

// LittleEndian reports whether the buffer's multi-byte integers are
// little-endian (bit1; the default for this version).
func (h Header) LittleEndian() bool { return h.Flags&FlagLittleEndian != 0 }

// parseHeader validates magic, version, and reserved flag bits (§4.4
// reader contract, §8 property 8). It never inspects bytes past
// HeaderSize, satisfying Scenario E: a bad magic is rejected before any
// field decode is attempted.
func parseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, &errs.BufferTooSmall{Required: HeaderSize, Actual: len(data)}
	}

	if data[0] != MagicByte0 || data[1] != MagicByte1 {
		return Header{}, &errs.InvalidMagic{Found: [2]byte{data[0], data[1]}}
	}

	if data[2] != Version {
		return Header{}, &errs.UnsupportedVersion{Found: data[2], Supported: Version}
	}

	flags := data[3]
	if flags&flagReservedMask != 0 {
		return Header{}, errs.ErrReservedFlagBits
	}

	return Header{Flags: flags}, nil
}
