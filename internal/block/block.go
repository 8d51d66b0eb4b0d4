// Package block defines the atomic unit of woven output: a contiguous span
// of documentation or code text, assembled into an ordered sequence per
// input file.
package block

import (
	"html"
	"strings"
)

// Kind classifies a block as documentation prose or source code.
type Kind int

const (
	Documentation Kind = iota
	Code
)

func (k Kind) String() string {
	if k == Code {
		return "code"
	}
	return "documentation"
}

// Format selects the decoration applied to code blocks when they are closed.
type Format int

const (
	// Markdown wraps code blocks in fenced-code markers.
	Markdown Format = iota
	// HTML wraps code blocks in style-tagged elements and escapes the code.
	HTML
)

const (
	markdownCodeHeader = "```\n"
	markdownCodeFooter = "\n```\n"
	htmlCodeHeader     = "<div class=\"code\"><pre>"
	htmlCodeFooter     = "</pre></div>\n"
)

// Block is an immutable span of output. Its content is final: code blocks
// carry their format decoration, documentation blocks carry their text
// verbatim.
type Block struct {
	kind    Kind
	content string
}

// NewText creates a closed Documentation block directly from a finished
// string. No decoration or trimming is applied.
func NewText(text string) *Block {
	return &Block{kind: Documentation, content: text}
}

// Kind reports whether the block is documentation or code.
func (b *Block) Kind() Kind { return b.kind }

// Content returns the finalized text of the block.
func (b *Block) Content() string { return b.content }

// Clone returns an independent block with the same kind and content.
func (b *Block) Clone() *Block {
	return &Block{kind: b.kind, content: b.content}
}

// Builder accumulates text for one block. Closing it produces the immutable
// Block and releases the buffer; a Builder must be closed exactly once.
type Builder struct {
	kind   Kind
	buf    *strings.Builder
	closed bool
}

// NewBuilder starts an open block of the given kind.
func NewBuilder(kind Kind) *Builder {
	return &Builder{kind: kind, buf: &strings.Builder{}}
}

// Kind reports the kind the builder accumulates.
func (b *Builder) Kind() Kind { return b.kind }

// Append adds raw text to the open buffer. Appending to a closed builder is
// a programming error.
func (b *Builder) Append(text string) {
	if b.closed {
		panic("block: append to closed builder")
	}
	b.buf.WriteString(text)
}

// Close finalizes the block. Code blocks are trimmed and wrapped with the
// format-specific header and footer; if the trimmed code is empty the
// content is empty with no decoration. Documentation blocks keep their
// accumulated text verbatim.
func (b *Builder) Close(format Format) *Block {
	if b.closed {
		panic("block: builder closed twice")
	}
	b.closed = true
	text := b.buf.String()
	b.buf = nil

	if b.kind == Documentation {
		return &Block{kind: Documentation, content: text}
	}

	text = trimCode(text)
	if text == "" {
		return &Block{kind: Code, content: ""}
	}

	var content string
	switch format {
	case HTML:
		content = htmlCodeHeader + html.EscapeString(text) + htmlCodeFooter
	default:
		content = markdownCodeHeader + text + markdownCodeFooter
	}
	return &Block{kind: Code, content: content}
}

// trimCode drops leading lines that consist only of whitespace, keeping the
// indentation of the first non-blank line, and trims trailing whitespace.
func trimCode(s string) string {
	for {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			break
		}
		if strings.TrimSpace(s[:i]) != "" {
			break
		}
		s = s[i+1:]
	}
	return strings.TrimRight(s, " \t\r\n")
}
