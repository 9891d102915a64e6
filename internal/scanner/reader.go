package scanner

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
)

type FileUnit struct {
	Filename  string // absolute path
	RelPath   string // posix rel path from Dir
	PkgPath   string
	File      *ast.File // parsed AST, comments included
	Fset      *token.FileSet
	Generated bool
}

type SourceReader interface {
	List(ctx context.Context) ([]FileUnit, error)
}

type GoPackagesReader struct {
	Dir        string
	Patterns   []string
	ExcludeREs []*regexp.Regexp
	Env        []string
	Tests      bool
	Debug      bool
}

func NewGoPackagesReader(dir string, patterns []string, excludeCSV string, tests, debug bool) (*GoPackagesReader, error) {
	res, err := compileExcludeRegexes(excludeCSV)
	if err != nil {
		return nil, err
	}
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}
	if dir == "" {
		dir = "."
	}
	return &GoPackagesReader{
		Dir:        dir,
		Patterns:   patterns,
		ExcludeREs: res,
		Env:        append(os.Environ(), "GOWORK=off", "GOFLAGS="),
		Tests:      tests,
		Debug:      debug,
	}, nil
}

func (r *GoPackagesReader) List(ctx context.Context) ([]FileUnit, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    packages.NeedFiles | packages.NeedSyntax | packages.NeedTypes | packages.NeedCompiledGoFiles | packages.NeedName,
		Dir:     r.Dir,
		Env:     r.Env,
		Tests:   r.Tests,
	}
	pkgs, err := packages.Load(cfg, r.Patterns...)
	if err != nil {
		return nil, fmt.Errorf("load packages %v in %s: %w", r.Patterns, r.Dir, err)
	}

	seen := make(map[string]bool)
	var out []FileUnit
	for _, p := range pkgs {
		for _, perr := range p.Errors {
			r.debugf("package %s: %v", p.PkgPath, perr)
		}
		for i, f := range p.Syntax {
			if f == nil || i >= len(p.CompiledGoFiles) {
				continue
			}
			fn := p.CompiledGoFiles[i]
			// test variants repeat the files of their package
			if seen[fn] {
				continue
			}
			seen[fn] = true

			rel := relPosix(r.Dir, fn)
			if shouldExclude(rel, r.ExcludeREs) {
				r.debugf("excluded %s", rel)
				continue
			}
			out = append(out, FileUnit{
				Filename:  fn,
				RelPath:   rel,
				PkgPath:   p.PkgPath,
				File:      f,
				Fset:      p.Fset,
				Generated: ast.IsGenerated(f),
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RelPath < out[j].RelPath })
	return out, nil
}

func (r *GoPackagesReader) debugf(format string, args ...any) {
	if r.Debug {
		log.Printf("[DEBUG] "+format, args...)
	}
}

// --- helpers (shared) ---

func compileExcludeRegexes(csv string) ([]*regexp.Regexp, error) {
	var res []*regexp.Regexp
	for _, p := range splitCSV(csv) {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("exclude pattern %q: %w", p, err)
		}
		res = append(res, re)
	}
	return res, nil
}

func shouldExclude(rel string, res []*regexp.Regexp) bool {
	for _, r := range res {
		if r.MatchString(rel) {
			return true
		}
	}
	return false
}

func relPosix(root, filename string) string {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		absRoot = root
	}
	rel, err := filepath.Rel(absRoot, filename)
	if err != nil {
		return toPosix(filename)
	}
	return toPosix(rel)
}

func toPosix(p string) string { return strings.ReplaceAll(p, string(filepath.Separator), "/") }

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
