package lcs

// ComputeLength — LCS length with a rolling row
//
// Description:
//
//	Computes only the length of the longest common subsequence of first and
//	second, expressed in the counting domain Q. No direction information is
//	kept, so memory stays proportional to the shorter sequence.
//
// Algorithm Outline:
//  1. Let the shorter sequence index the row tab (length c) and the longer
//     one drive the outer loop (length r). tab starts at counter.Zero().
//  2. For every outer element, sweep tab left to right keeping diag, the
//     previous row's value of the cell up-left:
//     match    → tab[j] = Successor(diag)
//     no match → tab[j] = max(tab[j], tab[j-1])   (by counter.Compare)
//     diag is captured from tab[j] before it is overwritten.
//  3. The answer is tab[c-1].
//
// Complexity:
//
//	Time   = O(n·m) predicate calls and counter operations
//	Memory = O(min(n,m)) counter values
//
// Errors:
//   - ErrNilSequence — first or second is nil.
//   - ErrNilEqual    — eq is nil.
//   - ErrNilCounter  — counter is nil.
//
// Empty inputs return counter.Zero().
func ComputeLength[T, P, Q any](first Sequence[T], second Sequence[P], eq EqualFunc[T, P], counter Counter[Q]) (Q, error) {
	var zero Q
	if err := validate(first, second, eq); err != nil {
		return zero, err
	}
	if counter == nil {
		return zero, ErrNilCounter
	}

	n, m := first.Len(), second.Len()
	if n == 0 || m == 0 {
		return counter.Zero(), nil
	}

	// eq is always called as eq(first, second); only the table orientation flips.
	if m <= n {
		return rollingLength(n, m, func(i, j int) bool {
			return eq(first.At(i), second.At(j))
		}, counter), nil
	}
	return rollingLength(m, n, func(i, j int) bool {
		return eq(first.At(j), second.At(i))
	}, counter), nil
}

// Length is ComputeLength counted with IntCounter.
func Length[T, P any](first Sequence[T], second Sequence[P], eq EqualFunc[T, P]) (int, error) {
	return ComputeLength(first, second, eq, Counter[int](IntCounter{}))
}

// rollingLength runs the single-row DP over a rows×cols grid. match(i, j)
// compares outer element i with row element j.
func rollingLength[Q any](rows, cols int, match func(i, j int) bool, counter Counter[Q]) Q {
	z := counter.Zero()
	tab := make([]Q, cols)
	for j := range tab {
		tab[j] = z
	}

	for i := 0; i < rows; i++ {
		diag := z // column -1 is always zero
		for j := 0; j < cols; j++ {
			up := tab[j]
			if match(i, j) {
				tab[j] = counter.Successor(diag)
			} else if j > 0 && counter.Compare(tab[j-1], up) > 0 {
				tab[j] = tab[j-1]
			}
			diag = up
		}
	}

	return tab[cols-1]
}
