// Package extract implements the block extractor: a state machine over a
// token+trivia stream that classifies spans as documentation or code,
// stitches them into a block sequence, and registers macros for the code
// regions it encounters.
package extract

import (
	"fmt"
	"strings"

	"weave/internal/block"
	"weave/internal/macro"
	"weave/internal/token"
)

// Options controls extraction behavior.
type Options struct {
	// Trim strips the incidental leading indentation of documentation
	// comments, line by line.
	Trim bool
	// Format selects the decoration applied when code blocks close.
	Format block.Format
}

// MissingRegionNameError is returned when a region-start marker declares no
// usable name.
type MissingRegionNameError struct {
	Marker string
}

func (e *MissingRegionNameError) Error() string {
	return fmt.Sprintf("region marker %q has no name", strings.TrimSpace(e.Marker))
}

// UnterminatedRegionError is returned when the token stream ends while a
// region is still open.
type UnterminatedRegionError struct {
	Name string
}

func (e *UnterminatedRegionError) Error() string {
	return fmt.Sprintf("region %q is not closed before end of file", e.Name)
}

// UnmatchedRegionEndError is returned for a region-end marker with no open
// region.
type UnmatchedRegionEndError struct{}

func (e *UnmatchedRegionEndError) Error() string {
	return "region end marker without a matching region start"
}

// Extractor converts one file's token stream into a block sequence while
// populating the shared macro table. An Extractor processes a single stream
// and is not reused.
type Extractor struct {
	opts  Options
	table *macro.Table

	seq   *block.Sequence
	cur   *block.Builder
	stack macro.Stack

	// startNew forces the next appended text into a fresh block; region
	// markers set it so that macro boundaries fall on block boundaries.
	startNew bool
	// anchorStart and anchorEnd hold macros whose range boundary is the
	// next block to open.
	anchorStart []*macro.Macro
	anchorEnd   []*macro.Macro
}

// New returns an extractor writing macros into table.
func New(table *macro.Table, opts Options) *Extractor {
	return &Extractor{
		opts:  opts,
		table: table,
		seq:   block.NewSequence(),
	}
}

// Run consumes the token stream in order and returns the finished block
// sequence. Macro registrations remain in the table even when a later error
// aborts the same file.
func (e *Extractor) Run(tokens []token.Token) (*block.Sequence, error) {
	for _, tok := range tokens {
		if err := e.trivia(tok.Leading); err != nil {
			return nil, err
		}
		if !tok.EOF {
			e.appendCode(tok.Text)
		}
		if err := e.trivia(tok.Trailing); err != nil {
			return nil, err
		}
	}
	e.closeCurrent()
	// A start anchor still pending here belongs to a region with no blocks
	// after its marker; its range is empty. Pending end anchors stay open,
	// meaning "to the end of the sequence".
	for _, m := range e.anchorStart {
		m.Start = e.seq.Len()
	}
	e.anchorStart = e.anchorStart[:0]
	e.anchorEnd = e.anchorEnd[:0]
	if open := e.stack.Peek(); open != nil {
		return nil, &UnterminatedRegionError{Name: open.Name}
	}
	return e.seq, nil
}

// suppressed reports whether a trivia kind produces no code text of its
// own. Whitespace before a suppressed item and a line break after one are
// dropped with it, so that removing a comment or region marker does not
// leave a stray blank line.
func suppressed(k token.TriviaKind) bool {
	switch k {
	case token.BlockComment, token.RegionStart, token.RegionEnd:
		return true
	}
	return false
}

func (e *Extractor) trivia(items []token.Trivia) error {
	for i, tr := range items {
		switch tr.Kind {
		case token.BlockComment:
			e.appendDoc(tr.Body())
		case token.Whitespace:
			if i+1 < len(items) && suppressed(items[i+1].Kind) {
				continue
			}
			e.appendCode(tr.Text)
		case token.EndOfLine:
			if i > 0 && suppressed(items[i-1].Kind) {
				continue
			}
			e.appendCode(tr.Text)
		case token.RegionStart:
			if err := e.openRegion(tr); err != nil {
				return err
			}
		case token.RegionEnd:
			if err := e.closeRegion(); err != nil {
				return err
			}
		default:
			e.appendCode(tr.Text)
		}
	}
	return nil
}

func (e *Extractor) openRegion(tr token.Trivia) error {
	name := strings.TrimSpace(tr.RegionName)
	if name == "" {
		return &MissingRegionNameError{Marker: tr.Text}
	}
	m := &macro.Macro{Name: name, Seq: e.seq, Start: e.seq.Len(), End: macro.OpenEnd}
	if err := e.table.Register(m); err != nil {
		return err
	}
	e.startNew = true
	e.stack.Push(m)
	e.anchorStart = append(e.anchorStart, m)
	return nil
}

func (e *Extractor) closeRegion() error {
	m := e.stack.Pop()
	if m == nil {
		return &UnmatchedRegionEndError{}
	}
	e.startNew = true
	e.anchorEnd = append(e.anchorEnd, m)
	return nil
}

func (e *Extractor) appendCode(text string) {
	e.ensure(block.Code).Append(text)
}

func (e *Extractor) appendDoc(text string) {
	if e.opts.Trim {
		text = trimIndent(text)
	}
	e.ensure(block.Documentation).Append(text)
}

// ensure returns the current builder for the wanted kind, opening a new
// block when none exists, the kind changes, or a region marker requested a
// boundary. Opening a block resolves the pending macro anchors: the new
// block's index becomes the start of regions just opened and the exclusive
// end of regions just closed.
func (e *Extractor) ensure(kind block.Kind) *block.Builder {
	if e.cur != nil && e.cur.Kind() == kind && !e.startNew {
		return e.cur
	}
	e.closeCurrent()
	e.cur = block.NewBuilder(kind)
	e.startNew = false

	next := e.seq.Len()
	for _, m := range e.anchorStart {
		m.Start = next
	}
	for _, m := range e.anchorEnd {
		m.End = next
	}
	e.anchorStart = e.anchorStart[:0]
	e.anchorEnd = e.anchorEnd[:0]
	return e.cur
}

func (e *Extractor) closeCurrent() {
	if e.cur == nil {
		return
	}
	e.seq.Append(e.cur.Close(e.opts.Format))
	e.cur = nil
}
