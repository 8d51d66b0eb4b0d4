package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrivia_Body(t *testing.T) {
	assert.Equal(t, " doc text ", Trivia{Kind: BlockComment, Text: "/* doc text */"}.Body())
	assert.Equal(t, "no delimiters", Trivia{Kind: BlockComment, Text: "no delimiters"}.Body())
	assert.Equal(t, "  ", Trivia{Kind: Whitespace, Text: "  "}.Body())
	assert.Equal(t, "// kept", Trivia{Kind: Other, Text: "// kept"}.Body())
}

func TestTriviaKind_String(t *testing.T) {
	assert.Equal(t, "block-comment", BlockComment.String())
	assert.Equal(t, "region-start", RegionStart.String())
	assert.Equal(t, "other", Other.String())
}
