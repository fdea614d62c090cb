// Package gentest builds pseudo-random, round-trip-safe [zdoc.Document]
// values for the property-based tests required by spec.md §8. It is the
// generator SPEC_FULL.md promises ("a small hand-rolled pseudo-random
// Document generator seeded by math/rand/v2"), grounded in the randomized
// test style already used by internal/base62's and compress's test files
// (rand.New(rand.NewPCG(...)) driving a fixed iteration count).
//
// Every Document New returns is built so that encoding it with any of the
// three codecs and decoding the result back is expected to compare Equal
// to the original: generated strings avoid the numeric-string and
// glyph-collision hazards both text codecs are sensitive to (a string that
// looks like a float silently becomes a Number on decode; a bare "|" or
// "," breaks a codec's unescaped delimiter splitting).
package gentest

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/hexdraft/zdoc"
)

// letters and body make up the alphabet for generated string content. body
// deliberately excludes '|' and ',' (both codecs use one or the other as
// an unescaped field/element delimiter somewhere: humantext never quotes
// on their account) and excludes '"', whitespace and '\n' (quoting and
// line-orientation hazards). It includes the LLM reserved-character set
// ('|' aside) so escaping paths get exercised.
const (
	letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	body    = letters + "0123456789_~^;*+-\\"
)

// String returns a pseudo-random string of length [minLen,maxLen] safe to
// round-trip through every codec this module ships: it always starts with
// a letter (so it can never parse as a float, and never collides with the
// '*' array marker or a single-byte Bool/Null glyph) and never contains a
// byte either text codec treats as an unescaped delimiter.
func String(rng *rand.Rand, minLen, maxLen int) string {
	if minLen < 1 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	n := minLen + rng.IntN(maxLen-minLen+1)

	b := make([]byte, n)
	b[0] = letters[rng.IntN(len(letters))]
	for i := 1; i < n; i++ {
		b[i] = body[rng.IntN(len(body))]
	}
	s := string(b)

	// Backstop: a leading letter already rules out ordinary numeric
	// tokens, but "NaN"/"Inf"/"Infinity" spell out in letters too.
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		s = "x" + s
	}

	return s
}

// number returns a finite, non-NaN/Inf float64.
func number(rng *rand.Rand) float64 {
	switch rng.IntN(3) {
	case 0:
		return float64(rng.IntN(2001) - 1000)
	case 1:
		return rng.Float64() * 1000
	default:
		return -rng.Float64() * 1000
	}
}

// scalar returns a random Null/Bool/Number/String value, optionally
// drawing a Ref against one of refKeys instead of a String.
func scalar(rng *rand.Rand, refKeys []string) zdoc.Value {
	choices := 4
	if len(refKeys) > 0 {
		choices = 5
	}
	switch rng.IntN(choices) {
	case 0:
		return zdoc.Null()
	case 1:
		return zdoc.Bool(rng.IntN(2) == 0)
	case 2:
		return zdoc.Number(number(rng))
	case 3:
		return zdoc.String(String(rng, 2, 10))
	default:
		return zdoc.Ref(refKeys[rng.IntN(len(refKeys))])
	}
}

// value returns a random scalar or (with 1/4 odds) a short array of
// scalars; arrays never nest, matching every codec's one-level array
// syntax ('*a,b,c').
func value(rng *rand.Rand, refKeys []string) zdoc.Value {
	if rng.IntN(4) == 0 {
		n := rng.IntN(3)
		elems := make([]zdoc.Value, n)
		for i := range elems {
			elems[i] = scalar(rng, refKeys)
		}

		return zdoc.Array(elems...)
	}

	return scalar(rng, refKeys)
}

// New builds a random, self-consistent Document: 0-3 context entries, 0-2
// pre-registered references, and 2-4 sections with random schemas and
// rows. The second section is always nested (parent.child) so every
// Document New returns exercises nested-section fidelity (spec.md §8
// property 17) without relying on chance.
func New(rng *rand.Rand) *zdoc.Document {
	doc := zdoc.New()

	nCtx := rng.IntN(4)
	for i := 0; i < nCtx; i++ {
		doc.Context = append(doc.Context, zdoc.ContextEntry{
			Key:   fmt.Sprintf("ctx%d", i),
			Value: scalar(rng, nil),
		})
	}

	nRefs := rng.IntN(3)
	refKeys := make([]string, nRefs)
	for i := 0; i < nRefs; i++ {
		key := fmt.Sprintf("ref%d", i)
		doc.AddReference(key, String(rng, 5, 12))
		refKeys[i] = key
	}

	nSections := 2 + rng.IntN(3)
	for i := 0; i < nSections; i++ {
		id := fmt.Sprintf("sec%d", i)
		if i == 1 {
			id = fmt.Sprintf("sec%d.child%d", i, i)
		}

		nCols := 1 + rng.IntN(4)
		schema := make([]string, nCols)
		for c := range schema {
			schema[c] = fmt.Sprintf("col%d", c)
		}

		nRows := 1 + rng.IntN(5)
		rows := make([]zdoc.Row, nRows)
		for r := range rows {
			row := make(zdoc.Row, nCols)
			for c := range row {
				row[c] = value(rng, refKeys)
			}
			rows[r] = row
		}

		// AddSection cannot fail here: IDs are unique by construction and
		// every row matches schema's arity.
		_ = doc.AddSection(zdoc.Section{ID: id, Schema: schema, Rows: rows})
	}

	return doc
}
