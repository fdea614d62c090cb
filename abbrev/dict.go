// Package abbrev implements the bidirectional abbreviation dictionary
// shared by the LLM and Human codecs: a process-wide, read-only resource
// (§3: "abbreviation dictionary is a process-wide read-only resource
// loaded once at initialization") mapping short context/section-header
// keys to their expanded Human-form names, plus a context-qualified
// override table consulted first (design note §9).
package abbrev

import "sync"

// Dict is a bidirectional key map: short<->full, plus a context-qualified
// override table keyed by (context, short). It is safe for concurrent,
// lock-free reads once built (§5: loaded once, read concurrently without
// locks).
type Dict struct {
	shortToFull map[string]string
	fullToShort map[string]string
	// overrides maps a context name to its own short->full table,
	// consulted before the primary table (design note §9).
	overrides map[string]map[string]string
}

// New builds a Dict from an explicit short->full mapping. Duplicate full
// names are allowed (only the first short form controls contraction); this
// mirrors how a bidirectional map degrades gracefully with synonyms.
func New(shortToFull map[string]string) *Dict {
	d := &Dict{
		shortToFull: make(map[string]string, len(shortToFull)),
		fullToShort: make(map[string]string, len(shortToFull)),
		overrides:   make(map[string]map[string]string),
	}
	for short, full := range shortToFull {
		d.shortToFull[short] = full
		if _, exists := d.fullToShort[full]; !exists {
			d.fullToShort[full] = short
		}
	}

	return d
}

// WithOverride registers a context-qualified override: within the given
// context, short expands to full instead of (or in addition to) the
// primary mapping. Returns d for chaining.
func (d *Dict) WithOverride(context, short, full string) *Dict {
	if d.overrides[context] == nil {
		d.overrides[context] = make(map[string]string)
	}
	d.overrides[context][short] = full

	return d
}

// Expand returns the full form of a short key within the given context
// ("" for the document-level context). The override table is consulted
// first, then the primary table; if neither has an entry, short is
// returned unchanged (an unrecognised key is not an error — it is simply
// not abbreviated).
func (d *Dict) Expand(context, short string) string {
	if ctxTable, ok := d.overrides[context]; ok {
		if full, ok := ctxTable[short]; ok {
			return full
		}
	}

	if full, ok := d.shortToFull[short]; ok {
		return full
	}

	return short
}

// Contract returns the short form of a full key within the given context.
// As with Expand, an unrecognised key is returned unchanged.
func (d *Dict) Contract(context, full string) string {
	if ctxTable, ok := d.overrides[context]; ok {
		for short, f := range ctxTable {
			if f == full {
				return short
			}
		}
	}

	if short, ok := d.fullToShort[full]; ok {
		return short
	}

	return full
}

// defaultDict is the process-wide singleton, built once on first use.
var (
	defaultOnce sync.Once
	defaultDict *Dict
)

// Default returns the process-wide default dictionary, built once. Its
// entries cover the common manifest-style keys this spec's scenarios use
// (name/version/description/...), grounded in Scenario A/B's example
// documents.
func Default() *Dict {
	defaultOnce.Do(func() {
		defaultDict = New(defaultShortToFull)
	})

	return defaultDict
}

// defaultShortToFull is the built-in key vocabulary. It is intentionally
// small: an abbreviation dictionary's value comes from covering the keys a
// document actually uses, not from exhaustiveness, and any key absent here
// round-trips unabbreviated (Expand/Contract fall through to the input).
var defaultShortToFull = map[string]string{
	"n":    "name",
	"v":    "version",
	"d":    "description",
	"a":    "author",
	"l":    "license",
	"h":    "homepage",
	"r":    "repository",
	"k":    "keywords",
	"dep":  "dependencies",
	"t":    "type",
	"id":   "identifier",
	"val":  "value",
	"st":   "status",
	"c":    "created",
	"u":    "updated",
	"e":    "email",
	"url":  "url",
	"p":    "path",
	"fmt":  "format",
	"tag":  "tags",
	"cat":  "category",
	"pri":  "priority",
	"desc": "description",
}
