package fnassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fileSrc = `package gen

import "fmt"

//gen:constructor
func NewClient() *Client { return &Client{} }

type Client struct{}

func (c *Client) hello() { fmt.Println("hello") }
`

func TestSeq_AnyElementMatches(t *testing.T) {
	f, err := ParseFile(fileSrc)
	require.NoError(t, err)

	decls := f.Decls()
	require.Len(t, decls, 4)

	r := decls.Assert().
		WithName("hello").
		WithVisibility(Exported).
		WithAttrs("gen:constructor").
		WithBody(MustBody(`fmt.Println("hello")`)).
		Check()
	assert.True(t, r.Bool(), r.String())
}

func TestSeq_FailureCollectsEveryElement(t *testing.T) {
	f, err := ParseFile(fileSrc)
	require.NoError(t, err)

	r := f.Decls().Assert().WithName("Missing").Check()
	assert.Equal(t, []string{
		"Missing name",
		"Expected 'Missing', got 'NewClient'",
		"Missing name",
		"Expected 'Missing', got 'hello'",
	}, r.Messages())

	r = f.Funcs().Assert().WithAttrs("gen:other").Check()
	assert.Equal(t, []string{"Missing 'gen:other'", "Missing 'gen:other'"}, r.Messages())
}

func TestSeq_Empty(t *testing.T) {
	var s Seq[*Func]
	assert.True(t, s.Assert().Check().Bool())

	r := s.Assert().WithName("main").WithAttrs().Check()
	assert.Equal(t, []string{"Missing name", "Missing attributes"}, r.Messages())
}

func TestSeq_Nested(t *testing.T) {
	a, err := ParseFile(`func a() {}`)
	require.NoError(t, err)
	b, err := ParseFile(`func b() {}`)
	require.NoError(t, err)

	files := Seq[Seq[*Func]]{a.Funcs(), b.Funcs()}
	assert.True(t, files.Assert().WithName("b").Check().Bool())

	r := files.Assert().WithName("c").Check()
	assert.Equal(t, []string{"Expected 'c', got 'a'", "Expected 'c', got 'b'"}, r.Messages())
}
