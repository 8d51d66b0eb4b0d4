// Package macro manages named code regions: views over sub-ranges of a
// block sequence that markdown documents can reference and inline.
package macro

import (
	"fmt"
	"sort"
	"strings"

	"weave/internal/block"
)

// OpenEnd marks a macro whose range extends to the end of its sequence.
const OpenEnd = -1

// Macro is a named view over a sub-range of a block sequence. It does not
// own or copy blocks; Start and End are indices into Seq, End exclusive.
// End == OpenEnd means the range runs to the end of the sequence.
type Macro struct {
	Name  string
	Seq   *block.Sequence
	Start int
	End   int
}

// Blocks returns the blocks of the macro's range in source order.
func (m *Macro) Blocks() []*block.Block {
	return m.Seq.Slice(m.Start, m.End)
}

// DuplicateError is returned when a macro name is registered twice within
// one table's lifetime.
type DuplicateError struct {
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("macro %q is already defined", e.Name)
}

// NotFoundError is returned when a referenced macro was never registered.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("macro %q is not defined", e.Name)
}

// Table is the registry of macros for one run. It is written during
// extraction and read during expansion; names are case-sensitive and unique
// for the table's lifetime.
type Table struct {
	macros map[string]*Macro
}

// NewTable returns an empty macro table.
func NewTable() *Table {
	return &Table{macros: make(map[string]*Macro)}
}

// Register adds a macro under its name, trimmed of surrounding whitespace.
// Registering a name twice fails with a DuplicateError.
func (t *Table) Register(m *Macro) error {
	name := strings.TrimSpace(m.Name)
	if _, ok := t.macros[name]; ok {
		return &DuplicateError{Name: name}
	}
	m.Name = name
	t.macros[name] = m
	return nil
}

// Get looks up a macro by name, trimmed of surrounding whitespace. An
// unknown name fails with a NotFoundError.
func (t *Table) Get(name string) (*Macro, error) {
	name = strings.TrimSpace(name)
	m, ok := t.macros[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return m, nil
}

// Names returns the registered macro names in sorted order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.macros))
	for name := range t.macros {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
