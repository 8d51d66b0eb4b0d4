package block

// Sequence is the ordered, append-only chain of blocks produced for one
// input file. Blocks are addressed by index so that macro ranges can be
// expressed as half-open index intervals.
type Sequence struct {
	blocks []*Block
}

// NewSequence returns an empty sequence.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Append adds a closed block to the end of the sequence and returns its
// index.
func (s *Sequence) Append(b *Block) int {
	s.blocks = append(s.blocks, b)
	return len(s.blocks) - 1
}

// Len returns the number of blocks in the sequence.
func (s *Sequence) Len() int { return len(s.blocks) }

// At returns the block at index i.
func (s *Sequence) At(i int) *Block { return s.blocks[i] }

// Blocks returns the blocks in source order. The returned slice is shared
// with the sequence and must not be modified.
func (s *Sequence) Blocks() []*Block { return s.blocks }

// Slice returns the blocks in the half-open interval [start, end). A
// negative end means "to the end of the sequence".
func (s *Sequence) Slice(start, end int) []*Block {
	if end < 0 || end > len(s.blocks) {
		end = len(s.blocks)
	}
	if start < 0 {
		start = 0
	}
	if start >= end {
		return nil
	}
	return s.blocks[start:end]
}
