package lcs

import (
	"fmt"
	"io"
	"strings"
)

// EditOp is one step of an edit script.
type EditOp uint8

const (
	// Identical keeps an element present in both sequences.
	Identical EditOp = iota
	// Delete drops an element of the first sequence.
	Delete
	// Insert adds an element of the second sequence.
	Insert
)

var editOpNames = [...]string{"identical", "delete", "insert"}

// String returns the lower-case op name.
func (op EditOp) String() string {
	if int(op) < len(editOpNames) {
		return editOpNames[op]
	}
	return "unknown"
}

// Symbol returns the one-character diff marker of op: ' ', '-' or '+'.
func (op EditOp) Symbol() byte {
	switch op {
	case Delete:
		return '-'
	case Insert:
		return '+'
	}
	return ' '
}

// Edit is a single edit. A indexes the first sequence and B the second one;
// the side an op does not touch is -1.
type Edit struct {
	Op EditOp `json:"op" yaml:"op"`
	A  int    `json:"a" yaml:"a"`
	B  int    `json:"b" yaml:"b"`
}

// EditScript transforms the first sequence into the second one. Its
// Identical edits are exactly the common subsequence it was built from.
type EditScript []Edit

// NewEditScript derives the edit script implied by matches between a first
// sequence of length n and a second one of length m. Between two consecutive
// matches the unmatched elements of the first sequence are deleted before the
// unmatched elements of the second one are inserted.
//
// Matches must ascend strictly in both coordinates and lie inside [0,n)×[0,m),
// otherwise ErrBadMatches is returned.
func NewEditScript(n, m int, matches []Match) (EditScript, error) {
	if n < 0 || m < 0 {
		return nil, fmt.Errorf("%w: negative length", ErrBadMatches)
	}
	size := n + m - len(matches)
	if size < 0 {
		size = 0
	}
	es := make(EditScript, 0, size)
	a, b := 0, 0
	emitGap := func(toA, toB int) {
		for ; a < toA; a++ {
			es = append(es, Edit{Op: Delete, A: a, B: -1})
		}
		for ; b < toB; b++ {
			es = append(es, Edit{Op: Insert, A: -1, B: b})
		}
	}
	for k, mt := range matches {
		if mt.First < a || mt.Second < b || mt.First >= n || mt.Second >= m {
			return nil, fmt.Errorf("%w: match %d (%d,%d)", ErrBadMatches, k, mt.First, mt.Second)
		}
		emitGap(mt.First, mt.Second)
		es = append(es, Edit{Op: Identical, A: mt.First, B: mt.Second})
		a, b = mt.First+1, mt.Second+1
	}
	emitGap(n, m)
	return es, nil
}

// Counts returns the number of identical, deleted and inserted elements.
func (es EditScript) Counts() (identical, deleted, inserted int) {
	for _, e := range es {
		switch e.Op {
		case Identical:
			identical++
		case Delete:
			deleted++
		case Insert:
			inserted++
		}
	}
	return identical, deleted, inserted
}

// Distance is the number of deletions plus insertions.
func (es EditScript) Distance() int {
	_, d, i := es.Counts()
	return d + i
}

// String renders es compactly, e.g. "=0:0 -1 +1 =2:2".
func (es EditScript) String() string {
	var sb strings.Builder
	for k, e := range es {
		if k > 0 {
			sb.WriteByte(' ')
		}
		switch e.Op {
		case Identical:
			fmt.Fprintf(&sb, "=%d:%d", e.A, e.B)
		case Delete:
			fmt.Fprintf(&sb, "-%d", e.A)
		case Insert:
			fmt.Fprintf(&sb, "+%d", e.B)
		}
	}
	return sb.String()
}

// ApplyEdits replays es over first, taking inserted values from second.
// For a script built from first and second the result equals second.
func ApplyEdits[T any](es EditScript, first, second Sequence[T]) []T {
	out := make([]T, 0, len(es))
	for _, e := range es {
		switch e.Op {
		case Identical:
			out = append(out, first.At(e.A))
		case Insert:
			out = append(out, second.At(e.B))
		}
	}
	return out
}

// FormatEdits writes es one element per line, prefixed by its diff marker:
//
//	  A
//	- G
//	+ C
func FormatEdits[T, P any](w io.Writer, es EditScript, first Sequence[T], second Sequence[P]) error {
	for _, e := range es {
		var v any
		if e.Op == Insert {
			v = second.At(e.B)
		} else {
			v = first.At(e.A)
		}
		if _, err := fmt.Fprintf(w, "%c %s\n", e.Op.Symbol(), FormatElement(v)); err != nil {
			return err
		}
	}
	return nil
}

// FormatElement renders a sequence element for humans: runes and bytes as
// characters, everything else with %v.
func FormatElement(v any) string {
	switch x := v.(type) {
	case rune:
		return string(x)
	case byte:
		return string(rune(x))
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprintf("%v", v)
}
