package fnassert

import (
	"fmt"
	"go/ast"
	"go/token"

	"github.com/vd09-projects/go-fnassert/check"
)

// Func is a single function or method declaration.
type Func struct {
	Decl *ast.FuncDecl
	Fset *token.FileSet
}

func NewFunc(fset *token.FileSet, decl *ast.FuncDecl) *Func {
	return &Func{Decl: decl, Fset: fset}
}

func (f *Func) Name() string {
	if f.Decl.Name == nil {
		return ""
	}
	return f.Decl.Name.Name
}

func (f *Func) Visibility() Visibility {
	if ast.IsExported(f.Name()) {
		return Exported
	}
	return Unexported
}

func (f *Func) Attrs() []Attr { return Attrs(f.Decl.Doc) }

// Body renders the function body. A declaration without a body (implemented
// in assembly) has an empty Body.
func (f *Func) Body() (Body, error) { return bodyOf(f.Fset, f.Decl.Body) }

func (f *Func) Assert() AssertFn { return New(f) }

func (f *Func) HasName(name string) check.Result {
	return check.Compare(name, f.Name())
}

func (f *Func) HasVisibility(vis Visibility) check.Result {
	return check.Compare(vis, f.Visibility())
}

func (f *Func) HasAttrs(attrs []string) check.Result {
	return check.Contains(attrSet(f.Attrs()), attrs)
}

func (f *Func) HasBody(body Body) check.Result {
	actual, err := f.Body()
	if err != nil {
		return check.Failure(fmt.Sprintf("Unreadable body of '%s': %v", f.Name(), err))
	}
	return check.Compare(body.String(), actual.String())
}
