package llmtext

import "strings"

// reservedChars are the sigil/delimiter bytes that must be backslash-escaped
// wherever they occur inside an inlined string value (§6.2).
const reservedChars = "|;^*~+-\\"

func isReserved(c byte, extra string) bool {
	if strings.IndexByte(reservedChars, c) >= 0 {
		return true
	}

	return extra != "" && strings.IndexByte(extra, c) >= 0
}

// escapeString backslash-escapes every reserved character in s so it can be
// inlined as a row or context value without being mistaken for a sigil or
// field delimiter.
func escapeString(s string) string {
	return escapeWithExtra(s, "")
}

// escapeArrayElem additionally escapes ',', the array-element delimiter
// (§4.1's `*a,b,c` grammar does not name comma as reserved at the top
// level, but an unescaped comma inside an array element would be
// indistinguishable from the next element's start).
func escapeArrayElem(s string) string {
	return escapeWithExtra(s, ",")
}

func escapeWithExtra(s, extra string) string {
	needsEscape := false
	for i := 0; i < len(s); i++ {
		if isReserved(s[i], extra) {
			needsEscape = true
			break
		}
	}
	if !needsEscape {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		if isReserved(s[i], extra) {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}

	return b.String()
}

// unescape reverses escapeString/escapeArrayElem: a backslash followed by
// any character emits that character literally.
func unescape(s string) string {
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			b.WriteByte(s[i])

			continue
		}
		b.WriteByte(s[i])
	}

	return b.String()
}

// splitEscaped splits s on sep, treating a backslash-escaped sep as a
// literal character rather than a field boundary. The escape sequence is
// left intact in the returned fields; callers unescape per-field once the
// field's grammatical role (sigil vs. string) is known.
func splitEscaped(s string, sep byte) []string {
	var fields []string

	var cur strings.Builder
	i := 0
	for i < len(s) {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			cur.WriteByte(c)
			cur.WriteByte(s[i+1])
			i += 2

			continue
		}
		if c == sep {
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
