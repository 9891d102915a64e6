package fnassert

import (
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingT struct {
	errors []string
	failed bool
}

func (r *recordingT) Errorf(format string, args ...interface{}) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *recordingT) FailNow() { r.failed = true }

func TestAssertFn_IsAValue(t *testing.T) {
	f, err := ParseFunc(helloSrc)
	require.NoError(t, err)

	base := f.Assert().WithName("main")
	wrong := base.WithName("other")

	assert.True(t, base.Check().Bool())
	assert.False(t, wrong.Check().Bool())
}

func TestAssertFn_WithAttrsReplaces(t *testing.T) {
	f, err := ParseFunc(attrsSrc)
	require.NoError(t, err)

	attrs := []string{"gen:absent"}
	a := f.Assert().WithAttrs(attrs...)
	attrs[0] = "gen:my_attr"
	assert.Equal(t, []string{"Missing 'gen:absent'"}, a.Check().Messages())

	assert.True(t, a.WithAttrs("gen:my_attr").Check().Bool())
}

func TestAssertFn_AssertAndRequire(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	f, err := ParseFunc(helloSrc)
	require.NoError(t, err)

	rt := &recordingT{}
	assert.True(t, f.Assert().WithName("main").Assert(rt))
	assert.Empty(t, rt.errors)

	assert.False(t, f.Assert().WithName("nope").Assert(rt))
	require.Len(t, rt.errors, 1)
	assert.Contains(t, rt.errors[0], "Expected 'nope', got 'main'")
	assert.False(t, rt.failed)

	f.Assert().WithName("nope").Require(rt)
	assert.True(t, rt.failed)
}

func TestAssertFn_NoExpectations(t *testing.T) {
	f, err := ParseFile(fileSrc)
	require.NoError(t, err)

	for _, target := range []HasFn{f.Decls(), f.Funcs(), f.Decls()[0], f.Funcs()[0]} {
		assert.True(t, New(target).Check().Bool())
	}
}

func TestAssertFn_AttrsCheckedOnlyWhenSet(t *testing.T) {
	d, err := ParseDecl(`type T int`)
	require.NoError(t, err)

	assert.True(t, d.Assert().Check().Bool())
	assert.Equal(t, []string{"Missing attributes"}, d.Assert().WithAttrs().Check().Messages())
}
