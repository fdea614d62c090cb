package llmtext

import (
	"math"
	"strconv"
	"strings"

	"github.com/hexdraft/zdoc"
	"github.com/hexdraft/zdoc/errs"
	"github.com/hexdraft/zdoc/internal/base62"
)

// hexColumnType marks a section column whose integer values are encoded
// through base62 rather than decimal (Scenario C: column type "%x").
const hexColumnType = "%x"

// encodeValue renders v as an LLM value token. refKeys maps a string's
// resolved content to the reference key it was assigned by
// synthesizeRefKeys; a content not present in refKeys is inlined.
func encodeValue(doc *zdoc.Document, v zdoc.Value, colType string, refKeys map[string]string) string {
	switch v.Kind() {
	case zdoc.KindNull:
		return "~"
	case zdoc.KindBool:
		b, _ := v.Bool()
		if b {
			return "+"
		}

		return "-"
	case zdoc.KindNumber:
		n, _ := v.Number()

		return encodeNumber(n, colType)
	case zdoc.KindString:
		s, _ := v.String()
		if key, ok := refKeys[s]; ok {
			return "^" + key
		}

		return escapeString(s)
	case zdoc.KindRef:
		key, _ := v.RefKey()
		content, _ := doc.Resolve(key)
		if k, ok := refKeys[content]; ok {
			return "^" + k
		}

		return escapeString(content)
	case zdoc.KindArray:
		elems, _ := v.Array()
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = encodeArrayValue(doc, e, refKeys)
		}

		return "*" + strings.Join(parts, ",")
	default:
		return "~"
	}
}

// encodeArrayValue is encodeValue specialised for array elements: string
// content is comma-escaped in addition to the usual reserved set, and
// elements are never assigned a column type (array columns carry no %x
// annotation in the grammar).
func encodeArrayValue(doc *zdoc.Document, v zdoc.Value, refKeys map[string]string) string {
	switch v.Kind() {
	case zdoc.KindString:
		s, _ := v.String()
		if key, ok := refKeys[s]; ok {
			return "^" + key
		}

		return escapeArrayElem(s)
	case zdoc.KindRef:
		key, _ := v.RefKey()
		content, _ := doc.Resolve(key)
		if k, ok := refKeys[content]; ok {
			return "^" + k
		}

		return escapeArrayElem(content)
	default:
		return encodeValue(doc, v, "", refKeys)
	}
}

func encodeNumber(n float64, colType string) string {
	if colType == hexColumnType && isNonNegIntegral(n) {
		return base62.Encode(uint64(n))
	}
	if isIntegral(n) {
		return strconv.FormatInt(int64(n), 10)
	}

	return strconv.FormatFloat(n, 'g', -1, 64)
}

func isIntegral(n float64) bool {
	return !math.IsInf(n, 0) && !math.IsNaN(n) && n == math.Trunc(n)
}

func isNonNegIntegral(n float64) bool {
	return isIntegral(n) && n >= 0
}

// decodeValue parses a single LLM value token. doc resolves `^key` refs
// immediately, per §4.1's UndefinedReference contract (the parser does not
// defer reference-closure checking to Document.Validate).
func decodeValue(tok string, colType string, doc *zdoc.Document) (zdoc.Value, error) {
	switch {
	case tok == "+":
		return zdoc.Bool(true), nil
	case tok == "-":
		return zdoc.Bool(false), nil
	case tok == "~":
		return zdoc.Null(), nil
	case strings.HasPrefix(tok, "^"):
		key := tok[1:]
		if key == "" {
			return zdoc.Value{}, &errs.InvalidValue{Token: tok}
		}
		if doc != nil {
			if _, ok := doc.Resolve(key); !ok {
				return zdoc.Value{}, &errs.UndefinedReference{Key: key}
			}
		}

		return zdoc.Ref(key), nil
	case strings.HasPrefix(tok, "*"):
		return decodeArray(tok[1:], doc)
	case colType == hexColumnType:
		n, err := base62.Decode(tok)
		if err != nil {
			return zdoc.Value{}, err
		}

		return zdoc.Number(float64(n)), nil
	default:
		if f, err := strconv.ParseFloat(tok, 64); err == nil {
			return zdoc.Number(f), nil
		}

		return zdoc.String(unescape(tok)), nil
	}
}

func decodeArray(s string, doc *zdoc.Document) (zdoc.Value, error) {
	if s == "" {
		return zdoc.Array(), nil
	}

	parts := splitEscaped(s, ',')
	elems := make([]zdoc.Value, len(parts))
	for i, p := range parts {
		v, err := decodeValue(p, "", doc)
		if err != nil {
			return zdoc.Value{}, err
		}
		elems[i] = v
	}

	return zdoc.Array(elems...), nil
}
