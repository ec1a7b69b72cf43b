package lcs

import "iter"

// EnumerateAll computes every distinct longest common subsequence of first
// and second. Two solutions are distinct when their values differ by ==;
// eq may be any predicate, it need not agree with == or be an equivalence.
//
// The direction matrix is built eagerly with ties kept as Both, then cycle
// removal turns it into a DAG. The returned Solutions is read-only and
// restartable: each Iterator walks the shared tables from scratch.
//
// Empty inputs or a zero length yield a Solutions that produces nothing.
//
// Complexity: O(n·m) time and memory up front. Every walk ends in a new
// solution, so each one costs at most O(L·(n+m)) steps.
//
// Errors: ErrNilSequence, ErrNilEqual.
func EnumerateAll[T comparable, P any](first Sequence[T], second Sequence[P], eq EqualFunc[T, P]) (*Solutions[T], error) {
	if err := validate(first, second, eq); err != nil {
		return nil, err
	}
	n, m := first.Len(), second.Len()
	if n == 0 || m == 0 {
		return &Solutions[T]{first: first, dirs: newDirectionMatrix(n, m)}, nil
	}

	lens := newLengthTable(n, m)
	dm, length := buildDirections(first, second, eq, keepBoth, lens)
	removeCycles(dm, int(length))

	return &Solutions[T]{
		first:    first,
		dirs:     dm,
		lens:     lens,
		nextSame: nextOccurrences(first),
		length:   int(length),
	}, nil
}

// nextOccurrences maps every row to the next row holding an equal value,
// or to len(first) when there is none.
func nextOccurrences[T comparable](first Sequence[T]) []int {
	n := first.Len()
	next := make([]int, n)
	last := make(map[T]int)
	for p := n - 1; p >= 0; p-- {
		v := first.At(p)
		if q, ok := last[v]; ok {
			next[p] = q
		} else {
			next[p] = n
		}
		last[v] = p
	}
	return next
}

// Solutions is the lazy, restartable result of EnumerateAll.
type Solutions[T comparable] struct {
	first    Sequence[T]
	dirs     *DirectionMatrix
	lens     *lengthTable
	nextSame []int
	length   int
}

// Len returns the length shared by every solution.
func (s *Solutions[T]) Len() int { return s.length }

// Matrix returns the frozen direction matrix after cycle removal.
func (s *Solutions[T]) Matrix() *DirectionMatrix { return s.dirs }

// Iterator returns a fresh Enumerator positioned before the first solution.
func (s *Solutions[T]) Iterator() *Enumerator[T] {
	return &Enumerator[T]{
		sol:     s,
		values:  make([]T, s.length),
		matches: make([]Match, s.length),
		stack:   newBifurcationStack(),
	}
}

// All returns an iterator over every solution. Each yielded slice is owned
// by the caller.
func (s *Solutions[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		it := s.Iterator()
		defer it.Close()
		for it.Next() {
			v, err := it.Current()
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

// Collect gathers up to limit solutions; limit <= 0 gathers all of them.
func (s *Solutions[T]) Collect(limit int) [][]T {
	out := make([][]T, 0)
	for v := range s.All() {
		out = append(out, v)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// enumState is the lifecycle of an Enumerator.
//
//	NotStarted → Active | Exhausted
//	Active     → Active | Exhausted
//	any        → Closed (absorbing)
//	Reset: NotStarted | Active | Exhausted → NotStarted
type enumState uint8

const (
	stateNotStarted enumState = iota
	stateActive
	stateExhausted
	stateClosed
)

// Enumerator walks the solutions of a Solutions one at a time.
//
// Every solution is produced by exactly one walk: its rightmost embedding.
// A walk fills output slots from the last one down. For slot k and the
// prefixes first[0..i], second[0..j] it picks a value v from the rows
// holding the last occurrence of v at or above i, pairs it with the last
// column at or left of j that matches it, and keeps the pair only if the
// prefixes above and left of it still have a common subsequence of length
// k. Each such choice point is pushed as a bifurcation with a cursor over
// the rows not tried yet. Next resumes the most recent bifurcation that has
// another candidate, so solutions come out last-bifurcation-first.
//
// Distinct values at one slot give distinct solutions, and every kept
// candidate can be completed, so no walk is wasted and nothing is yielded
// twice.
//
// An Enumerator is not safe for concurrent use.
type Enumerator[T comparable] struct {
	sol     *Solutions[T]
	state   enumState
	values  []T
	matches []Match
	stack   *bifurcationStack
	err     error
}

// Next advances to the next distinct solution and reports whether one exists.
// After Close it returns false and Err reports ErrClosed.
func (e *Enumerator[T]) Next() bool {
	switch e.state {
	case stateClosed:
		e.err = ErrClosed
		return false
	case stateExhausted:
		return false
	case stateNotStarted:
		if e.sol.length == 0 {
			e.state = stateExhausted
			return false
		}
		e.state = stateActive
		if e.descend(e.sol.dirs.rows-1, e.sol.dirs.cols-1, e.sol.length-1) {
			return true
		}
	}
	return e.advance()
}

// advance resumes the most recent bifurcation that still has a candidate
// and completes the walk below it. An empty stack means exhaustion.
func (e *Enumerator[T]) advance() bool {
	for {
		b, ok := e.stack.pop()
		if !ok {
			e.state = stateExhausted
			return false
		}
		p, q, ok := e.candidate(&b)
		if !ok {
			continue
		}
		e.stack.push(b)
		e.take(b.index, p, q)
		if e.descend(p-1, q-1, b.index-1) {
			return true
		}
	}
}

// descend fills slots k, k-1, ..., 0 from the prefixes ending at (i, j),
// taking the first candidate at every slot. Slots above k already hold the
// suffix chosen by the walk so far.
func (e *Enumerator[T]) descend(i, j, k int) bool {
	for k >= 0 {
		b := bifurcation{row: i, col: j, index: k, next: i}
		p, q, ok := e.candidate(&b)
		if !ok {
			return false
		}
		e.stack.push(b)
		e.take(k, p, q)
		i, j, k = p-1, q-1, k-1
	}
	return true
}

// candidate finds the next untried cell (p, q) for slot b.index and moves
// the cursor past it.
//
// Rows are scanned downwards from b.next while the prefix length at column
// b.col still exceeds b.index. A row is eligible when it holds the last
// occurrence of its value at or above b.row. Its partner is the last Diag
// cell at or left of b.col, and the pair is kept when the length above and
// left of it equals b.index. Cycle removal never rewrites Diag cells, so
// the matrix doubles as the cache of eq results.
func (e *Enumerator[T]) candidate(b *bifurcation) (int, int, bool) {
	dm, lens := e.sol.dirs, e.sol.lens
	for p := b.next; p >= 0; p-- {
		if lens.at(p, b.col) <= b.index {
			break
		}
		if e.sol.nextSame[p] <= b.row {
			continue
		}
		for q := b.col; q >= 0 && lens.at(p-1, q-1) >= b.index; q-- {
			if dm.at(p, q) != Diag {
				continue
			}
			if lens.at(p-1, q-1) == b.index {
				b.next = p - 1
				return p, q, true
			}
			break
		}
	}
	b.next = -1
	return 0, 0, false
}

func (e *Enumerator[T]) take(k, p, q int) {
	e.values[k] = e.sol.first.At(p)
	e.matches[k] = Match{First: p, Second: q}
}

// Current returns a copy of the current solution.
func (e *Enumerator[T]) Current() ([]T, error) {
	if err := e.check(); err != nil {
		return nil, err
	}
	out := make([]T, len(e.values))
	copy(out, e.values)
	return out, nil
}

// Matches returns a copy of the matched index pairs of the current solution.
func (e *Enumerator[T]) Matches() ([]Match, error) {
	if err := e.check(); err != nil {
		return nil, err
	}
	out := make([]Match, len(e.matches))
	copy(out, e.matches)
	return out, nil
}

func (e *Enumerator[T]) check() error {
	switch e.state {
	case stateNotStarted:
		return ErrNotStarted
	case stateExhausted:
		return ErrExhausted
	case stateClosed:
		return ErrClosed
	}
	return nil
}

// Reset rewinds the enumerator to before the first solution. The shared
// tables are reused as is.
func (e *Enumerator[T]) Reset() error {
	if e.state == stateClosed {
		return ErrClosed
	}
	e.stack.clear()
	e.state = stateNotStarted
	return nil
}

// Close releases the walk buffers. Any later access fails with ErrClosed.
// Closing twice is a no-op.
func (e *Enumerator[T]) Close() error {
	e.state = stateClosed
	e.values, e.matches = nil, nil
	e.stack.clear()
	return nil
}

// Err returns ErrClosed if Next was called after Close, nil otherwise.
func (e *Enumerator[T]) Err() error { return e.err }

// Pending reports how many bifurcations may still hold untried candidates.
func (e *Enumerator[T]) Pending() int { return e.stack.len() }
