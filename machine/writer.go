package machine

import (
	"math"

	"github.com/hexdraft/zdoc"
	"github.com/hexdraft/zdoc/endian"
	"github.com/hexdraft/zdoc/internal/pool"
)

// writer accumulates the fixed, slot, and heap sections, interning
// repeated strings into a single slot the way the source's bidirectional
// string-interning arena dedupes reference content (§9 design note 1).
type writer struct {
	fixed     *pool.ByteBuffer
	slots     *pool.ByteBuffer
	heap      *pool.ByteBuffer
	engine    endian.EndianEngine
	slotIndex map[string]uint32
}

func newWriter(engine endian.EndianEngine) *writer {
	return &writer{
		fixed:     pool.GetDocBuffer(),
		slots:     pool.GetDocBuffer(),
		heap:      pool.GetDocBuffer(),
		engine:    engine,
		slotIndex: make(map[string]uint32),
	}
}

func (w *writer) release() {
	pool.PutDocBuffer(w.fixed)
	pool.PutDocBuffer(w.slots)
	pool.PutDocBuffer(w.heap)
}

func (w *writer) internSlot(s string) uint32 {
	if idx, ok := w.slotIndex[s]; ok {
		return idx
	}

	slot := encodeSlot(s, w.heap)
	w.slots.MustWrite(slot[:])
	idx := uint32(w.slots.Len()/SlotSize - 1)
	w.slotIndex[s] = idx

	return idx
}

func (w *writer) writeUint32(v uint32) {
	var b [4]byte
	w.engine.PutUint32(b[:], v)
	w.fixed.MustWrite(b[:])
}

func (w *writer) writeIndexedCell(tag byte, idx uint32) {
	var buf [cellSize]byte
	buf[0] = tag
	w.engine.PutUint32(buf[1:5], idx)
	w.fixed.MustWrite(buf[:])
}

func (w *writer) writeValue(v zdoc.Value) error {
	switch v.Kind() {
	case zdoc.KindNull:
		w.fixed.MustWrite(make([]byte, cellSize))
	case zdoc.KindBool:
		b, _ := v.Bool()
		var buf [cellSize]byte
		if b {
			buf[0] = tagBoolTrue
		} else {
			buf[0] = tagBoolFalse
		}
		w.fixed.MustWrite(buf[:])
	case zdoc.KindNumber:
		n, _ := v.Number()
		var buf [cellSize]byte
		buf[0] = tagNumber
		w.engine.PutUint64(buf[1:9], math.Float64bits(n))
		w.fixed.MustWrite(buf[:])
	case zdoc.KindString:
		s, _ := v.String()
		w.writeIndexedCell(tagString, w.internSlot(s))
	case zdoc.KindRef:
		key, _ := v.RefKey()
		w.writeIndexedCell(tagRef, w.internSlot(key))
	case zdoc.KindArray:
		elems, _ := v.Array()
		var buf [cellSize]byte
		buf[0] = tagArray
		w.engine.PutUint32(buf[1:5], uint32(len(elems)))
		w.fixed.MustWrite(buf[:])
		for _, e := range elems {
			if err := w.writeValue(e); err != nil {
				return err
			}
		}
	}

	return nil
}

func (w *writer) assemble(cfg *config) []byte {
	flags := byte(0)
	if w.heap.Len() > 0 {
		flags |= FlagHeapPresent
	}
	if cfg.littleEndian {
		flags |= FlagLittleEndian
	}

	out := make([]byte, 0, HeaderSize+w.fixed.Len()+w.slots.Len()+w.heap.Len())
	out = append(out, MagicByte0, MagicByte1, Version, flags)
	out = append(out, w.fixed.Bytes()...)
	out = append(out, w.slots.Bytes()...)
	out = append(out, w.heap.Bytes()...)

	return out
}

// Write serializes doc into the machine binary layout (§4.4): a
// four-byte header, the fixed section (context/section/reference
// structure plus tagged value cells), the slot section, and the heap.
func Write(doc *zdoc.Document, opts ...Option) ([]byte, error) {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return nil, err
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	w := newWriter(cfg.engine)
	defer w.release()

	refs := doc.References()
	w.writeUint32(uint32(len(doc.Context)))
	w.writeUint32(uint32(len(doc.Sections)))
	w.writeUint32(uint32(len(refs)))

	// slotCount placeholder: the writer doesn't know its final slot count
	// until every string below has been interned, so it reserves the
	// field now and backfills it once assembly is otherwise complete.
	slotCountPos := w.fixed.Len()
	w.writeUint32(0)

	for _, r := range refs {
		keyIdx := w.internSlot(r.Key)
		valIdx := w.internSlot(r.Value)
		w.writeUint32(keyIdx)
		w.writeUint32(valIdx)
	}

	for _, c := range doc.Context {
		w.writeUint32(w.internSlot(c.Key))
		if err := w.writeValue(c.Value); err != nil {
			return nil, err
		}
	}

	for _, sec := range doc.Sections {
		w.writeUint32(w.internSlot(sec.ID))
		w.writeUint32(uint32(len(sec.Schema)))
		for _, col := range sec.Schema {
			w.writeUint32(w.internSlot(col))
		}
		w.writeUint32(uint32(len(sec.Rows)))
		for _, row := range sec.Rows {
			for _, v := range row {
				if err := w.writeValue(v); err != nil {
					return nil, err
				}
			}
		}
	}

	w.engine.PutUint32(w.fixed.Slice(slotCountPos, slotCountPos+4), uint32(w.slots.Len()/SlotSize))

	return w.assemble(cfg), nil
}
