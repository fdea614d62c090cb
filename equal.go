package zdoc

// Equal reports whether d and other are semantically equal: same context
// (key and resolved value, in order), same sections in order (same ID,
// schema, and rows), with String and Ref values compared by their
// resolved string content rather than by representation (§8 property 1-3:
// round-trip equivalence is defined this way, since a value that was an
// inlined string before emission may come back as a Ref after a
// synthesizing codec's round trip, and vice versa).
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}

	if len(d.Context) != len(other.Context) {
		return false
	}
	for i := range d.Context {
		if d.Context[i].Key != other.Context[i].Key {
			return false
		}
		if !d.valueEqual(d.Context[i].Value, other, other.Context[i].Value) {
			return false
		}
	}

	if len(d.Sections) != len(other.Sections) {
		return false
	}
	for i := range d.Sections {
		if !d.sectionEqual(d.Sections[i], other, other.Sections[i]) {
			return false
		}
	}

	return true
}

func (d *Document) sectionEqual(a Section, otherDoc *Document, b Section) bool {
	if a.ID != b.ID || len(a.Schema) != len(b.Schema) || len(a.Rows) != len(b.Rows) {
		return false
	}
	for i := range a.Schema {
		if a.Schema[i] != b.Schema[i] {
			return false
		}
	}
	for i := range a.Rows {
		if len(a.Rows[i]) != len(b.Rows[i]) {
			return false
		}
		for j := range a.Rows[i] {
			if !d.valueEqual(a.Rows[i][j], otherDoc, b.Rows[i][j]) {
				return false
			}
		}
	}

	return true
}

// resolvedString returns v's string content for comparison purposes:
// String values compare by their own content, Ref values compare by what
// they resolve to in their owning document.
func resolvedString(doc *Document, v Value) (string, bool) {
	switch v.Kind() {
	case KindString:
		s, _ := v.String()
		return s, true
	case KindRef:
		key, _ := v.RefKey()
		return doc.Resolve(key)
	default:
		return "", false
	}
}

func (d *Document) valueEqual(a Value, otherDoc *Document, b Value) bool {
	aIsStringlike := a.Kind() == KindString || a.Kind() == KindRef
	bIsStringlike := b.Kind() == KindString || b.Kind() == KindRef

	if aIsStringlike && bIsStringlike {
		as, aok := resolvedString(d, a)
		bs, bok := resolvedString(otherDoc, b)
		return aok && bok && as == bs
	}

	if a.Kind() != b.Kind() {
		return false
	}

	switch a.Kind() {
	case KindNull:
		return true
	case KindBool:
		av, _ := a.Bool()
		bv, _ := b.Bool()
		return av == bv
	case KindNumber:
		av, _ := a.Number()
		bv, _ := b.Number()
		return av == bv
	case KindArray:
		ae, _ := a.Array()
		be, _ := b.Array()
		if len(ae) != len(be) {
			return false
		}
		for i := range ae {
			if !d.valueEqual(ae[i], otherDoc, be[i]) {
				return false
			}
		}

		return true
	default:
		return rawEqual(a, b)
	}
}
