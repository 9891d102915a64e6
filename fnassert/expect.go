package fnassert

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vd09-projects/go-fnassert/check"
)

// Expectation is the declarative form of an AssertFn, as read from a YAML
// fixture. Nil fields are not checked.
type Expectation struct {
	Name       *string     `yaml:"name"`
	Visibility *Visibility `yaml:"visibility"`
	Attrs      []string    `yaml:"attributes"`
	Body       *string     `yaml:"body"`
}

type expectationFile struct {
	Functions []Expectation `yaml:"functions"`
}

func ParseExpectations(data []byte) ([]Expectation, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f expectationFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode expectations: %w", err)
	}
	return f.Functions, nil
}

func LoadExpectations(path string) ([]Expectation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	exps, err := ParseExpectations(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return exps, nil
}

// Builder turns e into an AssertFn against target.
func (e Expectation) Builder(target HasFn) (AssertFn, error) {
	a := New(target)
	if e.Attrs != nil {
		a = a.WithAttrs(e.Attrs...)
	}
	if e.Name != nil {
		a = a.WithName(*e.Name)
	}
	if e.Visibility != nil {
		a = a.WithVisibility(*e.Visibility)
	}
	if e.Body != nil {
		body, err := ParseBody(*e.Body)
		if err != nil {
			return AssertFn{}, err
		}
		a = a.WithBody(body)
	}
	return a, nil
}

// CheckAll checks every expectation against target and merges the outcomes.
func CheckAll(target HasFn, exps []Expectation) (check.Result, error) {
	results := make([]check.Result, 0, len(exps))
	for i, e := range exps {
		a, err := e.Builder(target)
		if err != nil {
			return check.Result{}, fmt.Errorf("expectation %d: %w", i, err)
		}
		results = append(results, a.Check())
	}
	return check.All(results...), nil
}
