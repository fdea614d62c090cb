// Package humantext implements the Human wire codec (spec §4.2): an
// aligned, table-rendered textual encoding intended for editors and diff
// review. Parse and Emit round-trip through zdoc.Document, matching the
// same value semantics the LLM and Machine codecs share — only the
// surface grammar differs (§8 property 3, cross-format round-trip).
package humantext
