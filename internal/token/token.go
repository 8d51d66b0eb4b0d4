// Package token defines the token and trivia stream handed to the block
// extractor by a language front-end. A token carries its literal text plus
// the comments, whitespace and region markers attached around it.
package token

import "strings"

// TriviaKind classifies a single trivia item.
type TriviaKind int

const (
	// BlockComment is a delimited documentation comment (/* ... */).
	BlockComment TriviaKind = iota
	// Whitespace is a run of spaces or tabs with no line break.
	Whitespace
	// EndOfLine is a single line terminator ("\n" or "\r\n").
	EndOfLine
	// RegionStart marks the opening of a named code region.
	RegionStart
	// RegionEnd marks the closing of the innermost open region.
	RegionEnd
	// Other is any remaining trivia (line comments, directives) that is
	// emitted verbatim as code.
	Other
)

func (k TriviaKind) String() string {
	switch k {
	case BlockComment:
		return "block-comment"
	case Whitespace:
		return "whitespace"
	case EndOfLine:
		return "end-of-line"
	case RegionStart:
		return "region-start"
	case RegionEnd:
		return "region-end"
	default:
		return "other"
	}
}

// Trivia is one non-token item attached to a token: a comment, a run of
// whitespace, a line terminator or a region marker.
type Trivia struct {
	Kind TriviaKind
	// Text is the raw source text of the item, delimiters included.
	Text string
	// RegionName is the declared name of a RegionStart item, untrimmed.
	RegionName string
}

// Body returns the inner text of a BlockComment with its delimiters
// stripped. For other kinds it returns Text unchanged.
func (t Trivia) Body() string {
	if t.Kind != BlockComment {
		return t.Text
	}
	body := strings.TrimPrefix(t.Text, "/*")
	body = strings.TrimSuffix(body, "*/")
	return body
}

// Token is one element of the stream: its literal text plus the trivia
// attached before and after it. The end-of-stream marker has EOF set and
// contributes no text of its own.
type Token struct {
	Text     string
	EOF      bool
	Leading  []Trivia
	Trailing []Trivia
}
