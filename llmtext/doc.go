// Package llmtext implements the LLM wire codec (spec §4.1): a
// token-minimised textual encoding using single-character sigils, key
// abbreviation through zdoc/abbrev, string back-references, and base62
// integer packing for columns typed "%x". Parse and Emit both round-trip
// through zdoc.Document; neither talks to the Human or Machine codecs
// directly (see zdoc/convert).
package llmtext
