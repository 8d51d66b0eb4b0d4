package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weave/internal/block"
	"weave/internal/toc"
)

func sequence(format block.Format) *block.Sequence {
	seq := block.NewSequence()
	seq.Append(block.NewText("# Title\n\nSome *prose*.\n"))
	b := block.NewBuilder(block.Code)
	b.Append("func main() {}")
	seq.Append(b.Close(format))
	return seq
}

func TestMarkdown(t *testing.T) {
	got := Markdown(sequence(block.Markdown))

	assert.Equal(t, "# Title\n\nSome *prose*.\n```\nfunc main() {}\n```\n", got)
}

func TestHTML(t *testing.T) {
	nav := []toc.Entry{{Title: "Home", Path: "index.html"}}
	got, err := HTML(sequence(block.HTML), "demo.go", "weave.css", nav)
	require.NoError(t, err)

	// Documentation went through the markdown converter.
	assert.Contains(t, got, "<h1>Title</h1>")
	assert.Contains(t, got, "<em>prose</em>")
	// Code kept the decoration applied at close.
	assert.Contains(t, got, "<div class=\"code\"><pre>func main() {}</pre></div>")
	assert.Contains(t, got, "<title>demo.go</title>")
	assert.Contains(t, got, `<link rel="stylesheet" href="weave.css">`)
	assert.Contains(t, got, `<a href="index.html">Home</a>`)
}

func TestHTML_NoNav(t *testing.T) {
	got, err := HTML(sequence(block.HTML), "t", "weave.css", nil)
	require.NoError(t, err)

	assert.NotContains(t, got, "<nav>")
}

func TestWriteTheme(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteTheme(dir))

	path := filepath.Join(dir, StylesheetName)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "div.code pre")

	// An existing stylesheet is not overwritten.
	require.NoError(t, os.WriteFile(path, []byte("/* custom */"), 0644))
	require.NoError(t, WriteTheme(dir))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/* custom */", string(data))
}
