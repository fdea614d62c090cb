package zdoc

import (
	"fmt"
	"strings"

	"github.com/hexdraft/zdoc/errs"
)

// Row is a tuple of Values aligned to its owning Section's schema (§3
// invariant 2: schema arity).
type Row []Value

// Section is a named tabular block: an ordered column schema plus ordered
// rows. A section identifier of the form "parent.child" is stored as a
// single logical ID that round-trips intact (§3 invariant 5); a header
// nested more than one level deep is rejected at construction.
type Section struct {
	ID     string
	Schema []string
	Rows   []Row
}

// Parent and Child split a "parent.child" section ID. Child is "" for a
// top-level section.
func (s Section) Parent() string {
	if i := strings.IndexByte(s.ID, '.'); i >= 0 {
		return s.ID[:i]
	}

	return s.ID
}

func (s Section) Child() string {
	if i := strings.IndexByte(s.ID, '.'); i >= 0 {
		return s.ID[i+1:]
	}

	return ""
}

// IsNested reports whether s's ID carries a "parent.child" form.
func (s Section) IsNested() bool {
	return strings.IndexByte(s.ID, '.') >= 0
}

// validateID enforces §9 Open Question 3: nesting is at most one dot deep.
func validateID(id string) error {
	if strings.Count(id, ".") > 1 {
		return &errs.ParseError{
			Message: fmt.Sprintf("section id %q nests deeper than parent.child", id),
			Hint:    "use at most one dot in a section identifier",
		}
	}

	return nil
}

// validateRow enforces §3 invariant 2: schema arity.
func (s Section) validateRow(row Row) error {
	if len(row) != len(s.Schema) {
		return &errs.SchemaMismatch{Expected: len(s.Schema), Got: len(row)}
	}

	return nil
}
