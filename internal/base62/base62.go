// Package base62 implements the base62 integer codec used by the LLM codec
// for numeric value tokens: alphabet `0-9A-Za-z`, no leading zeros,
// magnitude order preserved, encode(0) == "0".
package base62

import "github.com/hexdraft/zdoc/errs"

// Digits, then uppercase, then lowercase — this ordering is what makes
// integer 320 render as "5A" (scenario C of the spec), not "5a".
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const base = uint64(len(alphabet))

var decodeTable [256]int8

func init() {
	for i := range decodeTable {
		decodeTable[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		decodeTable[alphabet[i]] = int8(i)
	}
}

// Encode renders n in base62. Encode(0) == "0"; no value produces leading
// zeros.
func Encode(n uint64) string {
	if n == 0 {
		return "0"
	}

	var buf [11]byte // ceil(log62(2^64)) == 11
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = alphabet[n%base]
		n /= base
	}

	return string(buf[i:])
}

// Decode parses a base62 string produced by Encode. It rejects empty input,
// any character outside the alphabet, and non-canonical leading zeros
// (e.g. "00", "01").
func Decode(s string) (uint64, error) {
	if s == "" {
		return 0, &errs.Base62Error{Char: 0}
	}

	if len(s) > 1 && s[0] == '0' {
		return 0, &errs.Base62Error{Char: rune(s[0])}
	}

	var n uint64
	for i := 0; i < len(s); i++ {
		d := decodeTable[s[i]]
		if d < 0 {
			return 0, &errs.Base62Error{Char: rune(s[i])}
		}

		n = n*base + uint64(d)
	}

	return n, nil
}

// ShorterThanDecimal reports whether n's base62 rendering is strictly
// shorter than its decimal rendering. The LLM emitter promotes an integer
// to base62 only when this holds (spec property 5).
func ShorterThanDecimal(n uint64) bool {
	return len(Encode(n)) < decimalLen(n)
}

func decimalLen(n uint64) int {
	if n == 0 {
		return 1
	}

	l := 0
	for n > 0 {
		l++
		n /= 10
	}

	return l
}
