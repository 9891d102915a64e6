package fnassert

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vd09-projects/go-fnassert/check"
)

type option[T any] struct {
	value T
	set   bool
}

func some[T any](v T) option[T] { return option[T]{value: v, set: true} }

// AssertFn collects expectations against one target. It is a value: every
// With* call returns a refined copy and leaves the receiver untouched.
type AssertFn struct {
	target HasFn
	name   option[string]
	vis    option[Visibility]
	attrs  option[[]string]
	body   option[Body]
}

func New(target HasFn) AssertFn {
	return AssertFn{target: target}
}

func (a AssertFn) WithName(name string) AssertFn {
	a.name = some(name)
	return a
}

func (a AssertFn) WithVisibility(vis Visibility) AssertFn {
	a.vis = some(vis)
	return a
}

// WithAttrs replaces the expected attribute paths. Calling it with no paths
// still checks the target: a non-function declaration then fails.
func (a AssertFn) WithAttrs(attrs ...string) AssertFn {
	a.attrs = some(append([]string(nil), attrs...))
	return a
}

func (a AssertFn) WithBody(body Body) AssertFn {
	a.body = some(body)
	return a
}

// Check runs every configured field check and merges the outcomes in the
// order name, visibility, body, attributes. Unset fields are not checked.
// This includes the attribute list: unlike a check that always runs the
// attribute check, a builder without WithAttrs passes on any target, a
// non-function declaration included. WithAttrs() with no paths restores the
// always-checked behaviour.
func (a AssertFn) Check() check.Result {
	r := check.Success()
	if a.name.set {
		r = r.Combine(a.target.HasName(a.name.value))
	}
	if a.vis.set {
		r = r.Combine(a.target.HasVisibility(a.vis.value))
	}
	if a.body.set {
		r = r.Combine(a.target.HasBody(a.body.value))
	}
	if a.attrs.set {
		r = r.Combine(a.target.HasAttrs(a.attrs.value))
	}
	return r
}

// Assert reports a failed Check on t and returns whether it passed.
func (a AssertFn) Assert(t assert.TestingT, msgAndArgs ...interface{}) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	r := a.Check()
	if r.Bool() {
		return true
	}
	return assert.Fail(t, r.ReportString(), msgAndArgs...)
}

// Require is Assert followed by t.FailNow on failure.
func (a AssertFn) Require(t require.TestingT, msgAndArgs ...interface{}) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if !a.Assert(t, msgAndArgs...) {
		t.FailNow()
	}
}
