package machine

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/hexdraft/zdoc/errs"
	"github.com/hexdraft/zdoc/internal/pool"
)

// SlotSize is the fixed byte width of one slot (§4.4 slot discipline).
const SlotSize = 16

const (
	markerInline = 0x00
	markerHeap   = 0xFF

	// maxInlineLen is the largest string length the 14-byte inline
	// payload can hold (byte 14 stores the length, 0..=14).
	maxInlineLen = 14
)

// encodeSlot renders s as a 16-byte slot. Strings up to maxInlineLen
// bytes are stored inline; longer strings are appended to heap and the
// slot records a little-endian (offset, length) pair (Scenario D).
func encodeSlot(s string, heap *pool.ByteBuffer) [SlotSize]byte {
	var slot [SlotSize]byte

	if len(s) <= maxInlineLen {
		copy(slot[:], s)
		slot[14] = byte(len(s))
		slot[15] = markerInline

		return slot
	}

	offset := uint64(heap.Len())
	heap.MustWrite([]byte(s))
	binary.LittleEndian.PutUint64(slot[0:8], offset)
	binary.LittleEndian.PutUint32(slot[8:12], uint32(len(s)))
	slot[15] = markerHeap

	return slot
}

// decodeSlot reverses encodeSlot. heap is the buffer's heap region
// (nil/empty when the header's heap-present flag is clear).
func decodeSlot(slot []byte, heap []byte) (string, error) {
	if len(slot) != SlotSize {
		return "", &errs.BufferTooSmall{Required: SlotSize, Actual: len(slot)}
	}

	switch slot[15] {
	case markerInline:
		n := int(slot[14])
		if n > maxInlineLen {
			return "", errs.ErrInvalidSlotMarker
		}

		b := slot[:n]
		if !utf8.Valid(b) {
			return "", &errs.Utf8Error{Message: "invalid utf-8 in inline slot"}
		}

		return string(b), nil
	case markerHeap:
		offset := binary.LittleEndian.Uint64(slot[0:8])
		length := uint64(binary.LittleEndian.Uint32(slot[8:12]))
		if offset > uint64(len(heap)) || offset+length > uint64(len(heap)) {
			return "", &errs.BufferTooSmall{Required: int(offset + length), Actual: len(heap)}
		}

		b := heap[offset : offset+length]
		if !utf8.Valid(b) {
			return "", &errs.Utf8Error{Offset: int(offset), Message: "invalid utf-8 in heap string"}
		}

		return string(b), nil
	default:
		return "", errs.ErrInvalidSlotMarker
	}
}
