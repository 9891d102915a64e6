// Package fnassert asserts properties of parsed Go function declarations.
//
// Three node shapes implement HasFn: *Func (one function declaration), *Decl
// (any top-level declaration, which may or may not be a function) and Seq (an
// ordered sequence of either). A test obtains an AssertFn from a node, sets
// the fields it cares about and calls Check:
//
//	f, _ := fnassert.ParseFunc(`func main() { println("hi") }`)
//	r := f.Assert().WithName("main").WithBody(fnassert.MustBody(`{ println("hi") }`)).Check()
//	if !r.Bool() {
//		t.Fatal(r)
//	}
//
// Every mismatch is returned as a message in the check.Result; nothing panics
// or returns an error during a check.
package fnassert

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vd09-projects/go-fnassert/check"
)

// HasFn answers, field by field, whether a node matches an expected value.
type HasFn interface {
	HasName(name string) check.Result
	HasVisibility(vis Visibility) check.Result
	HasAttrs(attrs []string) check.Result
	HasBody(body Body) check.Result
}

// Field names used in "Missing <field>" messages.
const (
	FieldName       = "name"
	FieldVisibility = "visibility"
	FieldAttrs      = "attributes"
	FieldBody       = "body"
)

// Visibility is the export status of a Go identifier.
type Visibility int

const (
	Unexported Visibility = iota
	Exported
)

func (v Visibility) String() string {
	switch v {
	case Exported:
		return "exported"
	case Unexported:
		return "unexported"
	default:
		return fmt.Sprintf("Visibility(%d)", int(v))
	}
}

// ParseVisibility accepts "exported" or "unexported".
func ParseVisibility(s string) (Visibility, error) {
	switch s {
	case "exported":
		return Exported, nil
	case "unexported":
		return Unexported, nil
	default:
		return 0, fmt.Errorf("unknown visibility %q", s)
	}
}

func (v *Visibility) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseVisibility(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*v = parsed
	return nil
}
