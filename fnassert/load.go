package fnassert

import (
	"context"

	"github.com/vd09-projects/go-fnassert/internal/scanner"
)

// LoadConfig selects the packages Load reads.
type LoadConfig struct {
	Dir      string   // module directory; "." when empty
	Patterns []string // package patterns; "./..." when empty
	Exclude  string   // comma-separated regexes matched against the slash path relative to Dir
	Tests    bool     // include _test.go files

	// OnlyGenerated keeps files with a "Code generated ... DO NOT EDIT." header.
	OnlyGenerated bool
	Debug         bool
}

// Source is the set of files returned by Load.
type Source struct {
	Files []*File
}

// Load parses the packages selected by cfg. Type errors in the loaded
// packages are not fatal; only a failure to run the loader is.
func Load(ctx context.Context, cfg LoadConfig) (*Source, error) {
	reader, err := scanner.NewGoPackagesReader(cfg.Dir, cfg.Patterns, cfg.Exclude, cfg.Tests, cfg.Debug)
	if err != nil {
		return nil, err
	}
	return load(ctx, reader, cfg.OnlyGenerated)
}

func load(ctx context.Context, reader scanner.SourceReader, onlyGenerated bool) (*Source, error) {
	units, err := reader.List(ctx)
	if err != nil {
		return nil, err
	}
	src := &Source{}
	for _, u := range units {
		if onlyGenerated && !u.Generated {
			continue
		}
		f := NewFile(u.Fset, u.File)
		f.RelPath = u.RelPath
		src.Files = append(src.Files, f)
	}
	return src, nil
}

// File looks a file up by its path relative to LoadConfig.Dir.
func (s *Source) File(relPath string) (*File, bool) {
	for _, f := range s.Files {
		if f.RelPath == relPath {
			return f, true
		}
	}
	return nil, false
}

func (s *Source) Decls() Seq[*Decl] {
	var out Seq[*Decl]
	for _, f := range s.Files {
		out = append(out, f.Decls()...)
	}
	return out
}

func (s *Source) Funcs() Seq[*Func] {
	var out Seq[*Func]
	for _, f := range s.Files {
		out = append(out, f.Funcs()...)
	}
	return out
}
