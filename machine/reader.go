package machine

import (
	"github.com/hexdraft/zdoc"
	"github.com/hexdraft/zdoc/errs"
)

// Reader wraps a byte slice holding a machine buffer (§4.4 reader
// contract, §6.5 mmap equivalence: an owned buffer and an mmap region
// behave identically once validated). Validate must run before any field
// access; Document and Records both enforce this.
type Reader struct {
	data      []byte
	header    Header
	validated bool
}

// NewReader wraps data without validating it yet.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Validate checks the header (magic, version, reserved flag bits) per
// §4.4 and §8 property 8; Scenario E: a bad magic is rejected here,
// before any field is decoded.
func (r *Reader) Validate() error {
	h, err := parseHeader(r.data)
	if err != nil {
		return err
	}

	r.header = h
	r.validated = true

	return nil
}

func (r *Reader) mustValidated() error {
	if !r.validated {
		return &errs.BufferTooSmall{Required: HeaderSize, Actual: len(r.data)}
	}

	return nil
}

// sectionBatchInfo records, per decoded section, the absolute byte offset
// and record width needed for fixed-size batch iteration (batch.go).
type sectionBatchInfo struct {
	id        string
	rowsStart int
	recordLen int
	count     int
	eligible  bool
}

// Document decodes the entire buffer into a *zdoc.Document.
func (r *Reader) Document() (*zdoc.Document, error) {
	doc, _, err := r.decode()

	return doc, err
}

func (r *Reader) decode() (*zdoc.Document, []sectionBatchInfo, error) {
	if err := r.mustValidated(); err != nil {
		return nil, nil, err
	}

	return decodeDocument(r.data[HeaderSize:], r.header)
}

// ReadDocument validates data and decodes it into a Document in one call;
// this is the counterpart to Write for the convert package's six directed
// conversions.
func ReadDocument(data []byte) (*zdoc.Document, error) {
	r := NewReader(data)
	if err := r.Validate(); err != nil {
		return nil, err
	}

	return r.Document()
}

type rawRef struct{ keyIdx, valIdx uint32 }

type rawContext struct {
	keyIdx uint32
	val    rawValue
}

type rawSection struct {
	idIdx     uint32
	colIdxs   []uint32
	rows      [][]rawValue
	rowsStart int
	eligible  bool
}

// decodeDocument walks the fixed section once (structurally resolving
// nothing but slot indices), locates the slot and heap sections that
// follow it, then resolves every slot index into its string and builds
// the Document. It also returns a per-section batch index for batch.go.
func decodeDocument(body []byte, header Header) (*zdoc.Document, []sectionBatchInfo, error) {
	c := &cursor{data: body, engine: engineFor(header)}

	contextCount, err := c.readUint32()
	if err != nil {
		return nil, nil, err
	}
	sectionCount, err := c.readUint32()
	if err != nil {
		return nil, nil, err
	}
	referenceCount, err := c.readUint32()
	if err != nil {
		return nil, nil, err
	}
	slotCount, err := c.readUint32()
	if err != nil {
		return nil, nil, err
	}

	refs := make([]rawRef, referenceCount)
	for i := range refs {
		k, err := c.readUint32()
		if err != nil {
			return nil, nil, err
		}
		v, err := c.readUint32()
		if err != nil {
			return nil, nil, err
		}
		refs[i] = rawRef{keyIdx: k, valIdx: v}
	}

	ctxs := make([]rawContext, contextCount)
	for i := range ctxs {
		k, err := c.readUint32()
		if err != nil {
			return nil, nil, err
		}
		v, err := readRawValue(c)
		if err != nil {
			return nil, nil, err
		}
		ctxs[i] = rawContext{keyIdx: k, val: v}
	}

	secs := make([]rawSection, sectionCount)
	for i := range secs {
		idIdx, err := c.readUint32()
		if err != nil {
			return nil, nil, err
		}
		colCount, err := c.readUint32()
		if err != nil {
			return nil, nil, err
		}
		cols := make([]uint32, colCount)
		for j := range cols {
			cols[j], err = c.readUint32()
			if err != nil {
				return nil, nil, err
			}
		}
		rowCount, err := c.readUint32()
		if err != nil {
			return nil, nil, err
		}

		rowsStart := HeaderSize + c.pos
		eligible := true
		rows := make([][]rawValue, rowCount)
		for r := range rows {
			row := make([]rawValue, colCount)
			for col := range row {
				rv, err := readRawValue(c)
				if err != nil {
					return nil, nil, err
				}
				if rawValueIsArray(rv) {
					eligible = false
				}
				row[col] = rv
			}
			rows[r] = row
		}

		secs[i] = rawSection{idIdx: idIdx, colIdxs: cols, rows: rows, rowsStart: rowsStart, eligible: eligible}
	}

	slotStart := c.pos
	slotBytes := int(slotCount) * SlotSize
	if err := c.need(slotBytes); err != nil {
		return nil, nil, err
	}
	slotSection := body[slotStart : slotStart+slotBytes]
	heap := body[slotStart+slotBytes:]

	slots := make([][]byte, slotCount)
	for i := range slots {
		slots[i] = slotSection[i*SlotSize : (i+1)*SlotSize]
	}

	doc := zdoc.New()
	for _, rf := range refs {
		key, err := resolveSlot(rf.keyIdx, slots, heap)
		if err != nil {
			return nil, nil, err
		}
		val, err := resolveSlot(rf.valIdx, slots, heap)
		if err != nil {
			return nil, nil, err
		}
		doc.AddReference(key, val)
	}

	for _, rc := range ctxs {
		key, err := resolveSlot(rc.keyIdx, slots, heap)
		if err != nil {
			return nil, nil, err
		}
		val, err := resolveValue(rc.val, slots, heap)
		if err != nil {
			return nil, nil, err
		}
		doc.Context = append(doc.Context, zdoc.ContextEntry{Key: key, Value: val})
	}

	batchIndex := make([]sectionBatchInfo, len(secs))
	for i, rs := range secs {
		id, err := resolveSlot(rs.idIdx, slots, heap)
		if err != nil {
			return nil, nil, err
		}

		schema := make([]string, len(rs.colIdxs))
		for j, ci := range rs.colIdxs {
			schema[j], err = resolveSlot(ci, slots, heap)
			if err != nil {
				return nil, nil, err
			}
		}

		rows := make([]zdoc.Row, len(rs.rows))
		for r, row := range rs.rows {
			out := make(zdoc.Row, len(row))
			for col, rv := range row {
				out[col], err = resolveValue(rv, slots, heap)
				if err != nil {
					return nil, nil, err
				}
			}
			rows[r] = out
		}

		if err := doc.AddSection(zdoc.Section{ID: id, Schema: schema, Rows: rows}); err != nil {
			return nil, nil, err
		}

		batchIndex[i] = sectionBatchInfo{
			id:        id,
			rowsStart: rs.rowsStart,
			recordLen: cellSize * len(rs.colIdxs),
			count:     len(rs.rows),
			eligible:  rs.eligible,
		}
	}

	if err := doc.Validate(); err != nil {
		return nil, nil, err
	}

	return doc, batchIndex, nil
}
