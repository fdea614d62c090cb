package humantext

import (
	"strconv"
	"strings"

	"github.com/hexdraft/zdoc"
	"github.com/hexdraft/zdoc/errs"
)

// encodeValue renders v as a Human cell. Human carries no reference
// syntax (§4.2 does not define one), so Ref values are resolved to their
// string content and rendered exactly like an inline String (§8's
// round-trip equality is defined on resolved content, not
// representation, so this loses nothing).
func encodeValue(cfg *Config, doc *zdoc.Document, v zdoc.Value) string {
	switch v.Kind() {
	case zdoc.KindNull:
		return cfg.NullGlyph
	case zdoc.KindBool:
		b, _ := v.Bool()
		if b {
			return cfg.BoolGlyphs[0]
		}

		return cfg.BoolGlyphs[1]
	case zdoc.KindNumber:
		n, _ := v.Number()

		return formatNumber(n)
	case zdoc.KindString:
		s, _ := v.String()

		return encodeString(cfg, s)
	case zdoc.KindRef:
		key, _ := v.RefKey()
		content, _ := doc.Resolve(key)

		return encodeString(cfg, content)
	case zdoc.KindArray:
		elems, _ := v.Array()
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = encodeValue(cfg, doc, e)
		}

		return "*" + strings.Join(parts, ",")
	default:
		return cfg.NullGlyph
	}
}

func encodeString(cfg *Config, s string) string {
	if needsQuote(cfg, s) {
		return quote(s)
	}

	return s
}

func formatNumber(n float64) string {
	if isIntegral(n) {
		return strconv.FormatInt(int64(n), 10)
	}

	return strconv.FormatFloat(n, 'g', -1, 64)
}

func isIntegral(n float64) bool { return n == float64(int64(n)) }

// decodeValue parses a single Human cell, already trimmed of surrounding
// alignment whitespace.
func decodeValue(cfg *Config, tok string) (zdoc.Value, error) {
	switch {
	case tok == cfg.NullGlyph:
		return zdoc.Null(), nil
	case tok == cfg.BoolGlyphs[0]:
		return zdoc.Bool(true), nil
	case tok == cfg.BoolGlyphs[1]:
		return zdoc.Bool(false), nil
	case len(tok) > 0 && tok[0] == '"':
		s, n, ok := unquote(tok)
		if !ok || n != len(tok) {
			return zdoc.Value{}, &errs.ParseError{Message: "unclosed quoted string", Hint: "close the string with a matching \""}
		}

		return zdoc.String(s), nil
	case strings.HasPrefix(tok, "*"):
		return decodeArray(cfg, tok[1:])
	default:
		if f, err := strconv.ParseFloat(tok, 64); err == nil {
			return zdoc.Number(f), nil
		}

		return zdoc.String(tok), nil
	}
}

func decodeArray(cfg *Config, s string) (zdoc.Value, error) {
	if s == "" {
		return zdoc.Array(), nil
	}

	parts := splitRespectingQuotes(s, ',')
	elems := make([]zdoc.Value, len(parts))
	for i, p := range parts {
		v, err := decodeValue(cfg, strings.TrimSpace(p))
		if err != nil {
			return zdoc.Value{}, err
		}
		elems[i] = v
	}

	return zdoc.Array(elems...), nil
}
