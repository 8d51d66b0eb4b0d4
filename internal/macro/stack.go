package macro

// Stack tracks in-progress macros during extraction. The top entry is the
// innermost currently-open region.
type Stack struct {
	items []*Macro
}

// Push adds a macro on top of the stack.
func (s *Stack) Push(m *Macro) {
	s.items = append(s.items, m)
}

// Pop removes and returns the topmost macro, or nil if the stack is empty.
func (s *Stack) Pop() *Macro {
	if len(s.items) == 0 {
		return nil
	}
	m := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return m
}

// Peek returns the topmost macro without removing it, or nil if empty.
func (s *Stack) Peek() *Macro {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

// Len returns the number of open regions.
func (s *Stack) Len() int { return len(s.items) }
