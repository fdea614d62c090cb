// Package zdoc is the hub of the triple-format serializer: it defines the
// in-memory Document model (context, ordered sections, reference table)
// that the LLM, Human, and Machine codecs all parse into and emit from.
//
// Conversion between the three wire formats is always Document-mediated —
// see zdoc/convert — never pairwise, so every codec only has to agree with
// this one model.
package zdoc

import (
	"fmt"

	"github.com/hexdraft/zdoc/errs"
)

// ContextEntry is one key/value pair in a Document's context block, kept
// in parse order (Scenario A: context entries round-trip in the order
// they were written).
type ContextEntry struct {
	Key   string
	Value Value
}

// Document is the root container: an ordered context, an ordered list of
// sections, and a reference table. A Document is built by a parser (or by
// New plus AddSection and AddReference), is immutable during emission, and owns every Value
// reachable from it.
type Document struct {
	Context  []ContextEntry
	Sections []Section
	refs     *referenceTable
}

// New creates an empty Document ready for incremental construction via
// AddSection and AddReference, or for direct field assignment by a codec
// parser.
func New() *Document {
	return &Document{refs: newReferenceTable()}
}

// References returns the document's reference table entries in
// first-occurrence order.
func (d *Document) References() []Reference {
	if d.refs == nil {
		return nil
	}

	return d.refs.entries()
}

// Resolve returns the string a reference key points to, and whether the
// key exists in the document's reference table.
func (d *Document) Resolve(key string) (string, bool) {
	if d.refs == nil {
		return "", false
	}

	return d.refs.resolve(key)
}

// AddReference inserts or overwrites a reference-table entry. Used by
// parsers (for explicit `#:` definitions) and by the LLM emitter (for
// synthesized references); see §3 invariant 4.
func (d *Document) AddReference(key, value string) {
	if d.refs == nil {
		d.refs = newReferenceTable()
	}

	d.refs.add(key, value)
}

// Section looks up a section by its (possibly nested "parent.child") ID.
func (d *Document) Section(id string) (Section, bool) {
	for _, s := range d.Sections {
		if s.ID == id {
			return s, true
		}
	}

	return Section{}, false
}

// AddSection appends a section, preserving order (§3 invariant 1). It is
// an error to add a section whose ID already exists.
func (d *Document) AddSection(s Section) error {
	if err := validateID(s.ID); err != nil {
		return err
	}

	for _, r := range s.Rows {
		if err := s.validateRow(r); err != nil {
			return err
		}
	}

	for _, existing := range d.Sections {
		if existing.ID == s.ID {
			return fmt.Errorf("%w: %q", errs.ErrSectionAlreadyExists, s.ID)
		}
	}

	d.Sections = append(d.Sections, s)

	return nil
}

// Validate checks every document-model invariant that is not already
// enforced at construction time: reference closure (§3 invariant 3) across
// context entries, section rows, and nested array elements.
func (d *Document) Validate() error {
	check := func(v Value) error {
		return d.checkRefClosure(v)
	}

	for _, c := range d.Context {
		if err := check(c.Value); err != nil {
			return err
		}
	}

	for _, sec := range d.Sections {
		for _, row := range sec.Rows {
			for _, v := range row {
				if err := check(v); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func (d *Document) checkRefClosure(v Value) error {
	switch v.Kind() {
	case KindRef:
		key, _ := v.RefKey()
		if _, ok := d.Resolve(key); !ok {
			return &errs.UndefinedReference{Key: key}
		}
	case KindArray:
		elems, _ := v.Array()
		for _, e := range elems {
			if err := d.checkRefClosure(e); err != nil {
				return err
			}
		}
	}

	return nil
}

// Concat concatenates documents' sections, preserving each document's
// internal order and the order the documents are given in. Context
// entries from later documents are appended after earlier ones (first
// writer for a duplicate key wins, consistent with ordered-map semantics).
// Reference tables are merged in document order; a key collision between
// two documents is an error, since the two keys might resolve to different
// strings and silently picking one would violate reference closure for
// whichever document loses.
//
// This is a convenience absent from spec.md's closed six-converter set: it
// is mebo's BlobSet composition idiom (multiple blobs addressed as one
// logical sequence) applied to the Document model.
func Concat(docs ...*Document) (*Document, error) {
	out := New()
	seenSections := make(map[string]bool)
	seenContext := make(map[string]bool)

	for _, d := range docs {
		for _, c := range d.Context {
			if seenContext[c.Key] {
				continue
			}
			seenContext[c.Key] = true
			out.Context = append(out.Context, c)
		}

		for _, s := range d.Sections {
			if seenSections[s.ID] {
				return nil, fmt.Errorf("%w: %q", errs.ErrSectionAlreadyExists, s.ID)
			}
			seenSections[s.ID] = true
			out.Sections = append(out.Sections, s)
		}

		for _, r := range d.References() {
			if existing, ok := out.Resolve(r.Key); ok && existing != r.Value {
				return nil, fmt.Errorf("zdoc: conflicting reference %q across documents", r.Key)
			}
			out.AddReference(r.Key, r.Value)
		}
	}

	return out, nil
}
