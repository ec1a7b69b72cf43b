package lcs

// ComputeOne returns one longest common subsequence of first and second,
// drawn from the elements of first in their original order.
//
// The direction matrix is built with ties resolved towards the left
// neighbour, so exactly one backtracking path exists and repeated calls on
// the same input return the same solution.
//
// Empty inputs or a zero length yield a non-nil empty slice.
//
// Complexity: O(n·m) time, O(n·m) memory.
//
// Errors: ErrNilSequence, ErrNilEqual.
func ComputeOne[T, P any](first Sequence[T], second Sequence[P], eq EqualFunc[T, P]) ([]T, error) {
	matches, err := ComputeOneMatches(first, second, eq)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(matches))
	for k, mt := range matches {
		out[k] = first.At(mt.First)
	}
	return out, nil
}

// ComputeOneMatches is ComputeOne reporting the matched index pairs of the
// solution instead of its values. Pairs ascend in both coordinates.
func ComputeOneMatches[T, P any](first Sequence[T], second Sequence[P], eq EqualFunc[T, P]) ([]Match, error) {
	if err := validate(first, second, eq); err != nil {
		return nil, err
	}
	if first.Len() == 0 || second.Len() == 0 {
		return []Match{}, nil
	}

	dm, length := buildDirections(first, second, eq, preferLeft, nil)
	return backtrackOne(dm, int(length)), nil
}

// backtrackOne follows the single path from the bottom-right cell, filling
// the result right to left. Only Diag consumes a slot.
func backtrackOne(dm *DirectionMatrix, length int) []Match {
	out := make([]Match, length)
	i, j := dm.rows-1, dm.cols-1
	for k := length - 1; k >= 0; {
		switch dm.at(i, j) {
		case Diag:
			out[k] = Match{First: i, Second: j}
			k--
			i--
			j--
		case Left:
			j--
		default:
			i--
		}
	}
	return out
}
