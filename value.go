package zdoc

// Kind discriminates the leaf types a Value can hold (§3 data model).
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindRef
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindArray:
		return "Array"
	case KindRef:
		return "Ref"
	default:
		return "Unknown"
	}
}

// Value is a typed leaf in a Document: Null, Bool, Number (float64), String,
// Array of Value, or Ref (a pointer into the owning Document's reference
// table). A Value is immutable once constructed.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string // String payload, or Ref key when kind == KindRef
	a    []Value
}

// Null returns the null Value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a numeric (float64) Value.
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array returns an array Value wrapping the given elements.
func Array(vals ...Value) Value {
	cp := make([]Value, len(vals))
	copy(cp, vals)
	return Value{kind: KindArray, a: cp}
}

// Ref returns a Value pointing at the reference-table entry with the given
// key. The key's existence is validated by the owning Document, not by Ref
// itself (§3 invariant 3, reference closure).
func Ref(key string) Value { return Value{kind: KindRef, s: key} }

// Kind returns the Value's discriminant.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null Value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns v's boolean payload and whether v is a Bool.
func (v Value) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}

	return v.b, true
}

// Number returns v's numeric payload and whether v is a Number.
func (v Value) Number() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}

	return v.n, true
}

// String returns v's string payload and whether v is a String.
func (v Value) String() (string, bool) {
	if v.kind != KindString {
		return "", false
	}

	return v.s, true
}

// Array returns v's elements and whether v is an Array. The returned slice
// is owned by the caller (a defensive copy).
func (v Value) Array() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}

	cp := make([]Value, len(v.a))
	copy(cp, v.a)

	return cp, true
}

// RefKey returns v's reference-table key and whether v is a Ref.
func (v Value) RefKey() (string, bool) {
	if v.kind != KindRef {
		return "", false
	}

	return v.s, true
}

// rawEqual compares two Values without resolving Ref against String; used
// internally where reference resolution has already happened.
func rawEqual(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return a.n == b.n
	case KindString, KindRef:
		return a.s == b.s
	case KindArray:
		if len(a.a) != len(b.a) {
			return false
		}
		for i := range a.a {
			if !rawEqual(a.a[i], b.a[i]) {
				return false
			}
		}

		return true
	default:
		return false
	}
}
