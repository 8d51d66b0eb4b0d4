// Package expand resolves macro references in markdown text. A reference is
// a line of the form <<name>>, alone on the line apart from surrounding
// whitespace; it is replaced by a copy of the referenced macro's block
// range.
package expand

import (
	"regexp"

	"weave/internal/block"
	"weave/internal/macro"
)

// refLine matches a macro-reference line: optional leading whitespace, the
// << >> delimited name, optional trailing whitespace and nothing else. The
// line terminator stays with the surrounding text.
var refLine = regexp.MustCompile(`(?m)^[ \t]*<<(.+?)>>[ \t]*\r?$`)

// Expand splits text by macro-reference lines and produces a new block
// sequence: literal segments become Documentation blocks, references become
// copies of the referenced macro's blocks, in input order. An unknown macro
// name aborts with a macro.NotFoundError and no output.
func Expand(text string, table *macro.Table) (*block.Sequence, error) {
	seq := block.NewSequence()
	last := 0
	for _, loc := range refLine.FindAllStringSubmatchIndex(text, -1) {
		if segment := text[last:loc[0]]; segment != "" {
			seq.Append(block.NewText(segment))
		}
		m, err := table.Get(text[loc[2]:loc[3]])
		if err != nil {
			return nil, err
		}
		for _, b := range m.Blocks() {
			seq.Append(b.Clone())
		}
		last = loc[1]
	}
	if segment := text[last:]; segment != "" {
		seq.Append(block.NewText(segment))
	}
	return seq, nil
}
