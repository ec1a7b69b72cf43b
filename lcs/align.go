package lcs

import "fmt"

// Align lays first and second out as two rows of equal length in which
// matched elements share a column and every unmatched element faces a gap.
// Within a gap, elements of the first sequence come before elements of the
// second, as in NewEditScript.
//
//	first:  A G C - C A
//	second: A - C G C A
//
// Errors: ErrNilSequence, ErrBadMatches.
func Align[T, P any](first Sequence[T], second Sequence[P], matches []Match, gapT T, gapP P) ([]T, []P, error) {
	if first == nil {
		return nil, nil, fmt.Errorf("%w: first", ErrNilSequence)
	}
	if second == nil {
		return nil, nil, fmt.Errorf("%w: second", ErrNilSequence)
	}
	es, err := NewEditScript(first.Len(), second.Len(), matches)
	if err != nil {
		return nil, nil, err
	}

	top := make([]T, len(es))
	bottom := make([]P, len(es))
	for k, e := range es {
		switch e.Op {
		case Identical:
			top[k], bottom[k] = first.At(e.A), second.At(e.B)
		case Delete:
			top[k], bottom[k] = first.At(e.A), gapP
		case Insert:
			top[k], bottom[k] = gapT, second.At(e.B)
		}
	}
	return top, bottom, nil
}
