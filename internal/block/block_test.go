package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_CloseCode(t *testing.T) {
	t.Run("Markdown Decoration", func(t *testing.T) {
		b := NewBuilder(Code)
		b.Append("func main() {}\n")
		blk := b.Close(Markdown)

		assert.Equal(t, Code, blk.Kind())
		assert.Equal(t, "```\nfunc main() {}\n```\n", blk.Content())
	})

	t.Run("HTML Decoration Escapes", func(t *testing.T) {
		b := NewBuilder(Code)
		b.Append("a < b && c > d")
		blk := b.Close(HTML)

		assert.Equal(t, "<div class=\"code\"><pre>a &lt; b &amp;&amp; c &gt; d</pre></div>\n", blk.Content())
	})

	t.Run("Leading Blank Lines Dropped", func(t *testing.T) {
		b := NewBuilder(Code)
		b.Append("\n  \t\n\tindented()\nrest()\n")
		blk := b.Close(Markdown)

		// The first non-blank line keeps its indentation.
		assert.Equal(t, "```\n\tindented()\nrest()\n```\n", blk.Content())
	})

	t.Run("Trailing Whitespace Trimmed", func(t *testing.T) {
		b := NewBuilder(Code)
		b.Append("x()  \n\n  ")
		blk := b.Close(Markdown)

		assert.Equal(t, "```\nx()\n```\n", blk.Content())
	})

	t.Run("Empty After Trim Has No Markers", func(t *testing.T) {
		for _, format := range []Format{Markdown, HTML} {
			b := NewBuilder(Code)
			b.Append("\n   \n\t\n")
			blk := b.Close(format)

			assert.Equal(t, "", blk.Content())
		}
	})
}

func TestBuilder_CloseDocumentation(t *testing.T) {
	b := NewBuilder(Documentation)
	b.Append("Some prose.\n")
	b.Append("More prose.\n")
	blk := b.Close(Markdown)

	assert.Equal(t, Documentation, blk.Kind())
	assert.Equal(t, "Some prose.\nMore prose.\n", blk.Content())
}

func TestBuilder_AppendAfterClosePanics(t *testing.T) {
	b := NewBuilder(Code)
	b.Close(Markdown)

	assert.Panics(t, func() { b.Append("late") })
	assert.Panics(t, func() { b.Close(Markdown) })
}

func TestNewText(t *testing.T) {
	blk := NewText("raw *markdown* text\n")

	assert.Equal(t, Documentation, blk.Kind())
	assert.Equal(t, "raw *markdown* text\n", blk.Content())
}

func TestClone(t *testing.T) {
	blk := NewText("content")
	clone := blk.Clone()

	require.NotSame(t, blk, clone)
	assert.Equal(t, blk.Kind(), clone.Kind())
	assert.Equal(t, blk.Content(), clone.Content())
}

func TestSequence(t *testing.T) {
	seq := NewSequence()
	require.Equal(t, 0, seq.Len())

	a := NewText("a")
	b := NewText("b")
	c := NewText("c")
	assert.Equal(t, 0, seq.Append(a))
	assert.Equal(t, 1, seq.Append(b))
	assert.Equal(t, 2, seq.Append(c))

	assert.Equal(t, 3, seq.Len())
	assert.Same(t, b, seq.At(1))
	assert.Equal(t, []*Block{a, b, c}, seq.Blocks())

	t.Run("Slice", func(t *testing.T) {
		assert.Equal(t, []*Block{b, c}, seq.Slice(1, 3))
		assert.Equal(t, []*Block{b, c}, seq.Slice(1, -1))
		assert.Empty(t, seq.Slice(2, 2))
		assert.Empty(t, seq.Slice(3, -1))
	})
}
