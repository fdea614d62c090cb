package humantext

import "strings"

// needsQuote reports whether s must be double-quoted to round-trip
// unambiguously: it contains whitespace (when cfg enables that trigger),
// a double quote or backslash, or is otherwise indistinguishable from a
// sigil or array marker.
func needsQuote(cfg *Config, s string) bool {
	if s == "" {
		return true
	}
	if cfg.QuoteStringsWithSpaces && strings.ContainsAny(s, " \t\n") {
		return true
	}
	if strings.ContainsAny(s, "\"\\") {
		return true
	}
	if s == cfg.BoolGlyphs[0] || s == cfg.BoolGlyphs[1] || s == cfg.NullGlyph {
		return true
	}
	if strings.HasPrefix(s, "*") {
		return true
	}

	return false
}

func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteByte(s[i])
		default:
			b.WriteByte(s[i])
		}
	}
	b.WriteByte('"')

	return b.String()
}

// unquote parses a double-quoted Human string token (the surrounding
// quotes included) and returns its decoded content plus how many bytes of
// the input it consumed.
func unquote(s string) (string, int, bool) {
	if len(s) < 2 || s[0] != '"' {
		return "", 0, false
	}

	var b strings.Builder
	i := 1
	for i < len(s) {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			b.WriteByte(s[i+1])
			i += 2

			continue
		}
		if c == '"' {
			return b.String(), i + 1, true
		}
		b.WriteByte(c)
		i++
	}

	return "", 0, false
}

// splitRespectingQuotes splits s on sep, treating sep bytes inside a
// double-quoted span as literal content rather than a field boundary.
func splitRespectingQuotes(s string, sep byte) []string {
	var fields []string

	var cur strings.Builder
	i := 0
	inQuotes := false
	for i < len(s) {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			cur.WriteByte(c)
			cur.WriteByte(s[i+1])
			i += 2

			continue
		}
		if c == '"' {
			inQuotes = !inQuotes
			cur.WriteByte(c)
			i++

			continue
		}
		if c == sep && !inQuotes {
			fields = append(fields, cur.String())
			cur.Reset()
			i++

			continue
		}
		cur.WriteByte(c)
		i++
	}
	fields = append(fields, cur.String())

	return fields
}
