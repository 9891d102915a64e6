package fnassert

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeModule(t *testing.T, files map[string]string) string {
	t.Helper()
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go toolchain not available")
	}
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	files["go.mod"] = "module example.com/gen\n\ngo 1.21\n"
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeModule(t, map[string]string{
		"api/client_gen.go": `// Code generated by gen. DO NOT EDIT.

package api

//gen:constructor
func NewClient() *Client { return &Client{} }
`,
		"api/client.go": `package api

type Client struct{}

func (c *Client) Close() error { return nil }
`,
		"internal/skip/skip.go": `package skip

func Skipped() {}
`,
	})

	src, err := Load(context.Background(), LoadConfig{Dir: dir, Exclude: "^internal/"})
	require.NoError(t, err)
	require.Len(t, src.Files, 2)

	_, ok := src.File("api/client_gen.go")
	assert.True(t, ok)
	_, ok = src.File("internal/skip/skip.go")
	assert.False(t, ok)

	src.Funcs().Assert().WithName("Close").WithVisibility(Exported).Require(t)
	src.Decls().Assert().
		WithName("NewClient").
		WithAttrs("gen:constructor").
		WithBody(MustBody(`return &Client{}`)).
		Require(t)

	r := src.Funcs().Assert().WithName("Skipped").Check()
	assert.False(t, r.Bool())

	gen, err := Load(context.Background(), LoadConfig{Dir: dir, Patterns: []string{"./api"}, OnlyGenerated: true})
	require.NoError(t, err)
	require.Len(t, gen.Files, 1)
	assert.Equal(t, "api/client_gen.go", gen.Files[0].RelPath)
	assert.False(t, gen.Funcs().Assert().WithName("Close").Check().Bool())
}

func TestLoad_BadExclude(t *testing.T) {
	_, err := Load(context.Background(), LoadConfig{Dir: ".", Exclude: "("})
	assert.ErrorContains(t, err, "exclude pattern")
}
