package fnassert

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
)

// File is a parsed Go source file.
type File struct {
	AST     *ast.File
	Fset    *token.FileSet
	RelPath string // set by Load; empty for parsed strings
}

func NewFile(fset *token.FileSet, f *ast.File) *File {
	return &File{AST: f, Fset: fset}
}

// Decls returns every top-level declaration, imports included.
func (f *File) Decls() Seq[*Decl] {
	out := make(Seq[*Decl], 0, len(f.AST.Decls))
	for _, d := range f.AST.Decls {
		out = append(out, NewDecl(f.Fset, d))
	}
	return out
}

// Funcs returns the function and method declarations.
func (f *File) Funcs() Seq[*Func] {
	var out Seq[*Func]
	for _, d := range f.AST.Decls {
		if fd, ok := d.(*ast.FuncDecl); ok {
			out = append(out, NewFunc(f.Fset, fd))
		}
	}
	return out
}

// ParseFile parses a whole source file. The package clause may be omitted.
func ParseFile(src string) (*File, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "src.go", withPackageClause(src), parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse file: %w", err)
	}
	return NewFile(fset, f), nil
}

// ParseDecl parses source holding exactly one declaration.
func ParseDecl(src string) (*Decl, error) {
	f, err := ParseFile(src)
	if err != nil {
		return nil, err
	}
	if n := len(f.AST.Decls); n != 1 {
		return nil, fmt.Errorf("parse decl: expected 1 declaration, got %d", n)
	}
	return NewDecl(f.Fset, f.AST.Decls[0]), nil
}

// ParseFunc parses source holding exactly one function declaration.
func ParseFunc(src string) (*Func, error) {
	d, err := ParseDecl(src)
	if err != nil {
		return nil, err
	}
	fn, ok := d.Func()
	if !ok {
		return nil, fmt.Errorf("parse func: declaration is a %T, not a function", d.Node)
	}
	return fn, nil
}

func withPackageClause(src string) string {
	b := []byte(src)
	fset := token.NewFileSet()
	var s scanner.Scanner
	s.Init(fset.AddFile("", fset.Base(), len(b)), b, nil, 0)
	// comments are skipped, so this is the first real token
	if _, tok, _ := s.Scan(); tok == token.PACKAGE {
		return src
	}
	return "package p\n\n" + src
}
