package fnassert

import (
	"go/ast"
	"regexp"
	"strings"
)

// AttrSep separates the segments of an attribute path, as in "go:noinline".
const AttrSep = ":"

// Attr is a directive comment attached to a declaration, e.g.
// "//go:linkname localname importpath" has Path ["go", "linkname"].
type Attr struct {
	Path []string
	Args string
}

func (a Attr) String() string { return strings.Join(a.Path, AttrSep) }

var directiveNameRe = regexp.MustCompile(`^[A-Za-z0-9_]+(:[A-Za-z0-9_.\-]+)*$`)

// single-word directives that are not namespaced
var bareDirectives = map[string]bool{"export": true, "extern": true, "line": true}

// Attrs returns the directives found in a comment group, in source order.
func Attrs(doc *ast.CommentGroup) []Attr {
	if doc == nil {
		return nil
	}
	var out []Attr
	for _, c := range doc.List {
		if a, ok := parseDirective(c.Text); ok {
			out = append(out, a)
		}
	}
	return out
}

func parseDirective(text string) (Attr, bool) {
	rest, ok := strings.CutPrefix(text, "//")
	if !ok || rest == "" {
		return Attr{}, false
	}
	switch rest[0] {
	case ' ', '\t', '/':
		return Attr{}, false
	}
	name, args := rest, ""
	if i := strings.IndexAny(rest, " \t"); i >= 0 {
		name, args = rest[:i], strings.TrimSpace(rest[i+1:])
	}
	if !directiveNameRe.MatchString(name) {
		return Attr{}, false
	}
	if !strings.Contains(name, AttrSep) && !bareDirectives[name] {
		return Attr{}, false
	}
	return Attr{Path: strings.Split(name, AttrSep), Args: args}, true
}

func attrSet(attrs []Attr) map[string]struct{} {
	set := make(map[string]struct{}, len(attrs))
	for _, a := range attrs {
		set[a.String()] = struct{}{}
	}
	return set
}
