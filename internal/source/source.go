// Package source is the compiler front-end for the extractor: it parses
// source text with tree-sitter and flattens the syntax tree into the
// token+trivia stream the block extractor consumes. Comments and region
// markers are lifted out of the token flow as trivia; everything else keeps
// its literal text.
package source

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"
	"github.com/smacker/go-tree-sitter/golang"

	"weave/internal/token"
)

// Language binds a tree-sitter grammar to the trivia conventions of one
// source language.
type Language struct {
	name string
	ts   *sitter.Language
	// trivial lists node types captured whole as trivia instead of being
	// descended into. Region directives span several grammar tokens, so
	// they must be taken as one unit.
	trivial map[string]bool
}

// Name returns the language identifier ("go", "csharp").
func (l *Language) Name() string { return l.name }

var languages = map[string]*Language{
	".go": {
		name:    "go",
		ts:      golang.GetLanguage(),
		trivial: map[string]bool{"comment": true},
	},
	".cs": {
		name: "csharp",
		ts:   csharp.GetLanguage(),
		trivial: map[string]bool{
			"comment":             true,
			"preproc_region":      true,
			"preproc_endregion":   true,
			"region_directive":    true,
			"endregion_directive": true,
			"preprocessor_call":   true,
		},
	},
}

// ForFile returns the language for a file path, chosen by extension.
func ForFile(path string) (*Language, error) {
	ext := strings.ToLower(filepath.Ext(path))
	lang, ok := languages[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported source file %s", path)
	}
	return lang, nil
}

// Supported reports whether a file path maps to a known source language.
func Supported(path string) bool {
	_, ok := languages[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Tokenize parses src and returns its token stream. The final element is
// the end-of-stream marker carrying any trailing trivia.
func (l *Language) Tokenize(ctx context.Context, src []byte) ([]token.Token, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(l.ts)
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s source: %w", l.name, err)
	}
	defer tree.Close()

	var tokens []token.Token
	var pending []token.Trivia
	pos := uint32(0)

	emit := func(start, end uint32, text string) {
		pending = appendGapTrivia(pending, string(src[pos:start]))
		pos = end
		if tr, ok := l.classifyTrivia(text); ok {
			pending = append(pending, tr)
			return
		}
		tokens = append(tokens, token.Token{Text: text, Leading: pending})
		pending = nil
	}

	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if l.trivial[n.Type()] || n.ChildCount() == 0 {
			if n.StartByte() < n.EndByte() {
				emit(n.StartByte(), n.EndByte(), n.Content(src))
			}
			return
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}
	walk(tree.RootNode())

	pending = appendGapTrivia(pending, string(src[pos:]))
	tokens = append(tokens, token.Token{EOF: true, Leading: pending})
	return tokens, nil
}

// classifyTrivia decides whether a flattened node is trivia and, if so,
// which kind. Block comments become documentation; line comments carry
// region markers or pass through as code; C# preprocessor region
// directives map to region markers directly.
func (l *Language) classifyTrivia(text string) (token.Trivia, bool) {
	trimmed := strings.TrimSpace(text)
	switch {
	case strings.HasPrefix(trimmed, "/*"):
		return token.Trivia{Kind: token.BlockComment, Text: trimmed}, true
	case strings.HasPrefix(trimmed, "//"):
		rest := strings.TrimSpace(trimmed[2:])
		if name, ok := regionName(rest, "#region"); ok {
			return token.Trivia{Kind: token.RegionStart, Text: text, RegionName: name}, true
		}
		if _, ok := regionName(rest, "#endregion"); ok {
			return token.Trivia{Kind: token.RegionEnd, Text: text}, true
		}
		return token.Trivia{Kind: token.Other, Text: text}, true
	case strings.HasPrefix(trimmed, "#region"):
		name, _ := regionName(trimmed, "#region")
		return token.Trivia{Kind: token.RegionStart, Text: text, RegionName: name}, true
	case strings.HasPrefix(trimmed, "#endregion"):
		return token.Trivia{Kind: token.RegionEnd, Text: text}, true
	}
	return token.Trivia{}, false
}

// regionName matches a region directive and returns its declared name. The
// directive keyword must stand alone or be followed by whitespace; a bare
// keyword yields an empty name, which the extractor rejects for starts.
func regionName(text, directive string) (string, bool) {
	if text == directive {
		return "", true
	}
	rest, ok := strings.CutPrefix(text, directive)
	if !ok || (rest[0] != ' ' && rest[0] != '\t') {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

// appendGapTrivia splits the whitespace between two syntax nodes into
// Whitespace runs and EndOfLine markers, one trivia item per line break.
func appendGapTrivia(items []token.Trivia, gap string) []token.Trivia {
	for len(gap) > 0 {
		if gap[0] == '\n' {
			items = append(items, token.Trivia{Kind: token.EndOfLine, Text: "\n"})
			gap = gap[1:]
			continue
		}
		if strings.HasPrefix(gap, "\r\n") {
			items = append(items, token.Trivia{Kind: token.EndOfLine, Text: "\r\n"})
			gap = gap[2:]
			continue
		}
		i := 0
		for i < len(gap) && gap[i] != '\n' && !(gap[i] == '\r' && i+1 < len(gap) && gap[i+1] == '\n') {
			i++
		}
		items = append(items, token.Trivia{Kind: token.Whitespace, Text: gap[:i]})
		gap = gap[i:]
	}
	return items
}
