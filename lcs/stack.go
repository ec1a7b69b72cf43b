package lcs

import "github.com/emirpasic/gods/stacks/arraystack"

// bifurcation is a decision point of a walk: output slot index is filled
// from the prefixes first[0..row] and second[0..col]. Candidate rows are
// tried from row downwards; next is the first row not tried yet.
type bifurcation struct {
	row, col, index int
	next            int
}

// bifurcationStack is a LIFO of decision points that may still hold
// untried candidates.
type bifurcationStack struct {
	s *arraystack.Stack
}

func newBifurcationStack() *bifurcationStack {
	return &bifurcationStack{s: arraystack.New()}
}

func (b *bifurcationStack) push(f bifurcation) { b.s.Push(f) }

func (b *bifurcationStack) pop() (bifurcation, bool) {
	v, ok := b.s.Pop()
	if !ok {
		return bifurcation{}, false
	}
	return v.(bifurcation), true
}

func (b *bifurcationStack) len() int { return b.s.Size() }

func (b *bifurcationStack) clear() { b.s.Clear() }
