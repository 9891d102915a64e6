package fnassert

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/scanner"
	"go/token"
	"strings"
)

// Body is the token sequence of a function body. Two bodies are equal when
// they print to the same tokens; layout, comments and optional semicolons do
// not matter.
type Body struct {
	text string
}

// ParseBody parses a block. The braces may be omitted:
// `println("hi")` and `{ println("hi") }` give the same Body, and so do
// `{ a() }; b()` and `{ { a() }; b() }`.
func ParseBody(src string) (Body, error) {
	src = strings.TrimSpace(src)
	wrapped := "{\n" + src + "\n}"
	if !strings.HasPrefix(src, "{") {
		return parseBlock(wrapped)
	}
	b, err := parseBlock(src)
	if err == nil {
		return b, nil
	}
	// statements that merely start with a nested block
	if wb, werr := parseBlock(wrapped); werr == nil {
		return wb, nil
	}
	return Body{}, err
}

func parseBlock(src string) (Body, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "body.go", "package p\nfunc _() "+src, 0)
	if err != nil {
		return Body{}, fmt.Errorf("parse body: %w", err)
	}
	if len(f.Decls) != 1 {
		return Body{}, fmt.Errorf("parse body: expected a single block, got %d declarations", len(f.Decls))
	}
	fd, ok := f.Decls[0].(*ast.FuncDecl)
	if !ok || fd.Body == nil {
		return Body{}, fmt.Errorf("parse body: not a block")
	}
	return bodyOf(fset, fd.Body)
}

// MustBody is ParseBody for fixtures; it panics on a parse error.
func MustBody(src string) Body {
	b, err := ParseBody(src)
	if err != nil {
		panic(err)
	}
	return b
}

func (b Body) String() string { return b.text }

func bodyOf(fset *token.FileSet, block *ast.BlockStmt) (Body, error) {
	if block == nil {
		return Body{}, nil
	}
	if fset == nil {
		fset = token.NewFileSet()
	}
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, block); err != nil {
		return Body{}, fmt.Errorf("print body: %w", err)
	}
	toks, err := tokenize(buf.Bytes())
	if err != nil {
		return Body{}, err
	}
	return Body{text: strings.Join(toks, " ")}, nil
}

func tokenize(src []byte) ([]string, error) {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))

	var errs scanner.ErrorList
	var s scanner.Scanner
	s.Init(file, src, func(pos token.Position, msg string) { errs.Add(pos, msg) }, 0)

	var out []string
	for {
		_, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}
		if isClosing(tok) {
			// explicit or newline-inserted, a separator before a closer is optional
			out = trimLast(out, ";")
			out = trimLast(out, ",")
		}
		if tok == token.SEMICOLON {
			lit = ";"
		}
		if lit == "" {
			lit = tok.String()
		}
		out = append(out, lit)
	}
	out = trimLast(out, ";")
	if err := errs.Err(); err != nil {
		return nil, fmt.Errorf("scan body: %w", err)
	}
	return out, nil
}

func trimLast(toks []string, tok string) []string {
	if n := len(toks); n > 0 && toks[n-1] == tok {
		return toks[:n-1]
	}
	return toks
}

func isClosing(tok token.Token) bool {
	return tok == token.RPAREN || tok == token.RBRACK || tok == token.RBRACE
}
