package fnassert

import (
	"go/ast"
	"go/token"

	"github.com/vd09-projects/go-fnassert/check"
)

// Decl is any top-level declaration. Only function declarations can satisfy
// a field check; every other kind reports the field as missing.
type Decl struct {
	Node ast.Decl
	Fset *token.FileSet
}

func NewDecl(fset *token.FileSet, decl ast.Decl) *Decl {
	return &Decl{Node: decl, Fset: fset}
}

// Func returns the function view of d, if d declares a function.
func (d *Decl) Func() (*Func, bool) {
	fd, ok := d.Node.(*ast.FuncDecl)
	if !ok || fd == nil {
		return nil, false
	}
	return NewFunc(d.Fset, fd), true
}

func (d *Decl) Assert() AssertFn { return New(d) }

func (d *Decl) HasName(name string) check.Result {
	if f, ok := d.Func(); ok {
		return f.HasName(name)
	}
	return check.Missing(FieldName)
}

func (d *Decl) HasVisibility(vis Visibility) check.Result {
	if f, ok := d.Func(); ok {
		return f.HasVisibility(vis)
	}
	return check.Missing(FieldVisibility)
}

func (d *Decl) HasAttrs(attrs []string) check.Result {
	if f, ok := d.Func(); ok {
		return f.HasAttrs(attrs)
	}
	return check.Missing(FieldAttrs)
}

func (d *Decl) HasBody(body Body) check.Result {
	if f, ok := d.Func(); ok {
		return f.HasBody(body)
	}
	return check.Missing(FieldBody)
}
