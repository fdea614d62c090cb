package machine

import (
	"fmt"
	"math"

	"github.com/hexdraft/zdoc"
	"github.com/hexdraft/zdoc/endian"
	"github.com/hexdraft/zdoc/errs"
)

// cellSize is the fixed byte width of one tagged fixed-section cell: one
// tag byte plus an 8-byte payload. Cells are the fixed section's packed
// primitives (§4.4); an Array cell's payload is an element count and is
// followed in-place by that many child cells, so nested arrays are a
// preorder walk rather than a heap indirection.
const cellSize = 9

const (
	tagNull = iota
	tagBoolTrue
	tagBoolFalse
	tagNumber
	tagString
	tagRef
	tagArray
)

// cursor is a bounds-checked forward-only reader over a machine buffer's
// fixed section. Every read returns BufferTooSmall rather than panicking
// or reading past the declared buffer (§8 property 8).
type cursor struct {
	data   []byte
	pos    int
	engine endian.EndianEngine
}

func (c *cursor) need(n int) error {
	if c.pos+n > len(c.data) {
		return &errs.BufferTooSmall{Required: c.pos + n, Actual: len(c.data)}
	}

	return nil
}

func (c *cursor) readUint32() (uint32, error) {
	if err := c.need(4); err != nil {
		return 0, err
	}

	v := c.engine.Uint32(c.data[c.pos : c.pos+4])
	c.pos += 4

	return v, nil
}

func (c *cursor) readCell() (byte, [8]byte, error) {
	if err := c.need(cellSize); err != nil {
		return 0, [8]byte{}, err
	}

	tag := c.data[c.pos]
	var payload [8]byte
	copy(payload[:], c.data[c.pos+1:c.pos+cellSize])
	c.pos += cellSize

	return tag, payload, nil
}

// rawValue mirrors zdoc.Value but defers slot resolution: String and Ref
// cells carry a slot index instead of resolved content, since the slot
// and heap sections are only reachable after the entire fixed section has
// been walked.
type rawValue struct {
	tag     byte
	num     float64
	boolean bool
	slotIdx uint32
	elems   []rawValue
}

func readRawValue(c *cursor) (rawValue, error) {
	tag, payload, err := c.readCell()
	if err != nil {
		return rawValue{}, err
	}

	switch tag {
	case tagNull:
		return rawValue{tag: tag}, nil
	case tagBoolTrue:
		return rawValue{tag: tag, boolean: true}, nil
	case tagBoolFalse:
		return rawValue{tag: tag, boolean: false}, nil
	case tagNumber:
		bits := c.engine.Uint64(payload[:])

		return rawValue{tag: tag, num: math.Float64frombits(bits)}, nil
	case tagString, tagRef:
		idx := c.engine.Uint32(payload[:4])

		return rawValue{tag: tag, slotIdx: idx}, nil
	case tagArray:
		count := c.engine.Uint32(payload[:4])
		elems := make([]rawValue, count)
		for i := range elems {
			v, err := readRawValue(c)
			if err != nil {
				return rawValue{}, err
			}
			elems[i] = v
		}

		return rawValue{tag: tag, elems: elems}, nil
	default:
		return rawValue{}, &errs.ParseError{Message: fmt.Sprintf("machine: unknown cell tag %d", tag)}
	}
}

// resolveValue turns a rawValue into a zdoc.Value once the slot table and
// heap are available.
func resolveValue(rv rawValue, slots [][]byte, heap []byte) (zdoc.Value, error) {
	switch rv.tag {
	case tagNull:
		return zdoc.Null(), nil
	case tagBoolTrue, tagBoolFalse:
		return zdoc.Bool(rv.boolean), nil
	case tagNumber:
		return zdoc.Number(rv.num), nil
	case tagString:
		s, err := resolveSlot(rv.slotIdx, slots, heap)
		if err != nil {
			return zdoc.Value{}, err
		}

		return zdoc.String(s), nil
	case tagRef:
		key, err := resolveSlot(rv.slotIdx, slots, heap)
		if err != nil {
			return zdoc.Value{}, err
		}

		return zdoc.Ref(key), nil
	case tagArray:
		elems := make([]zdoc.Value, len(rv.elems))
		for i, e := range rv.elems {
			v, err := resolveValue(e, slots, heap)
			if err != nil {
				return zdoc.Value{}, err
			}
			elems[i] = v
		}

		return zdoc.Array(elems...), nil
	default:
		return zdoc.Value{}, &errs.ParseError{Message: "machine: unresolved cell tag"}
	}
}

func resolveSlot(idx uint32, slots [][]byte, heap []byte) (string, error) {
	if int(idx) >= len(slots) {
		return "", &errs.BufferTooSmall{Required: int(idx) + 1, Actual: len(slots)}
	}

	return decodeSlot(slots[idx], heap)
}

// rawValueIsArray reports whether rv's top-level tag is an array, which
// disqualifies its owning row from fixed-size batch iteration (batch.go).
func rawValueIsArray(rv rawValue) bool { return rv.tag == tagArray }
