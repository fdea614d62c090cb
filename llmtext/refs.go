package llmtext

import (
	"fmt"

	"github.com/hexdraft/zdoc"
)

// refAssignment is one synthesized `#:` definition the emitter will write,
// in the deterministic order it was assigned.
type refAssignment struct {
	Content string
	Key     string
}

// synthesizeRefKeys walks doc (context, then sections in order, recursing
// into arrays, resolving existing Ref values to their content) and assigns
// a reference key to every distinct string whose content occurs at least
// twice and is at least 5 bytes long (§3 invariant 4). Keys are assigned
// deterministically by first-occurrence order (§9 Open Question 2).
func synthesizeRefKeys(doc *zdoc.Document) ([]refAssignment, map[string]string) {
	counts := map[string]int{}
	var order []string
	seen := map[string]bool{}

	record := func(s string) {
		counts[s]++
		if !seen[s] {
			seen[s] = true
			order = append(order, s)
		}
	}

	var walk func(v zdoc.Value)
	walk = func(v zdoc.Value) {
		switch v.Kind() {
		case zdoc.KindString:
			s, _ := v.String()
			record(s)
		case zdoc.KindRef:
			key, _ := v.RefKey()
			if s, ok := doc.Resolve(key); ok {
				record(s)
			}
		case zdoc.KindArray:
			elems, _ := v.Array()
			for _, e := range elems {
				walk(e)
			}
		}
	}

	for _, c := range doc.Context {
		walk(c.Value)
	}
	for _, sec := range doc.Sections {
		for _, row := range sec.Rows {
			for _, v := range row {
				walk(v)
			}
		}
	}

	var assignments []refAssignment
	keys := map[string]string{}
	n := 0
	for _, s := range order {
		if counts[s] >= 2 && len(s) >= 5 {
			n++
			key := fmt.Sprintf("k%d", n)
			keys[s] = key
			assignments = append(assignments, refAssignment{Content: s, Key: key})
		}
	}

	return assignments, keys
}
