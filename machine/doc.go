// Package machine implements the packed binary form of a Document (§4.4):
// a four-byte header, a fixed section of tagged cells, a slot section of
// 16-byte string slots, and an optional heap for strings too long to
// inline. Reader supports both owned-buffer and mmap-backed access; field
// reads are zero-copy once the header has validated.
//
// The layout mirrors mebo's header+index+payload blob shape: a small
// packed header (section/numeric_header.go), a fixed-size index of
// offset/length entries (section/numeric_index_entry.go), and a trailing
// payload region, read back either by copying a buffer or by mapping a
// file (blob/numeric_blob.go, blob/numeric_decoder.go).
package machine
