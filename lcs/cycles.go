package lcs

// walkCell is a BFS node of the cycle-removal pass: a matrix cell and the
// number of solution elements still to be emitted when a walk reaches it.
type walkCell struct {
	i, j, remaining int
}

// removeCycles turns the direction matrix produced under keepBoth into a DAG
// rooted at the bottom-right cell in which no Both cell leads a walk out of
// the matrix or into a branch whose solutions the sibling branch already
// produces.
//
// Cells are explored breadth-first from (rows-1, cols-1) with a seen flag per
// cell, like a grid flood fill. Cells reached with nothing left to emit are
// not expanded, so the zero-length region is never touched. Every Both cell
// taken off the queue is rewritten by resolveBoth before its successors are
// enqueued.
//
// Rewriting a cell never changes the set of solutions reachable from it, so
// the order in which the BFS meets cells does not matter.
//
// Time O(n·m), memory O(n·m) flags.
func removeCycles(dm *DirectionMatrix, length int) {
	if length == 0 || dm.rows == 0 || dm.cols == 0 {
		return
	}

	seen := make([]bool, len(dm.cells))
	root := walkCell{i: dm.rows - 1, j: dm.cols - 1, remaining: length}
	seen[dm.index(root.i, root.j)] = true
	queue := []walkCell{root}

	var next [2]walkCell
	for qi := 0; qi < len(queue); qi++ {
		c := queue[qi]
		if c.remaining == 0 {
			continue
		}

		d := dm.at(c.i, c.j)
		if d == Both {
			d = dm.resolveBoth(c.i, c.j)
			dm.set(c.i, c.j, d)
		}

		k := 0
		switch d {
		case Diag:
			if c.i > 0 && c.j > 0 {
				next[k] = walkCell{c.i - 1, c.j - 1, c.remaining - 1}
				k++
			}
		case Up:
			if c.i > 0 {
				next[k] = walkCell{c.i - 1, c.j, c.remaining}
				k++
			}
		case Left:
			if c.j > 0 {
				next[k] = walkCell{c.i, c.j - 1, c.remaining}
				k++
			}
		case Both:
			next[0] = walkCell{c.i, c.j - 1, c.remaining}
			next[1] = walkCell{c.i - 1, c.j, c.remaining}
			k = 2
		}

		for _, nc := range next[:k] {
			idx := dm.index(nc.i, nc.j)
			if seen[idx] {
				continue
			}
			seen[idx] = true
			queue = append(queue, nc)
		}
	}
}

// resolveBoth returns the tag a Both cell at (i, j) is rewritten to.
//
//   - a branch leaving the matrix is dropped; when both leave, Stop
//   - if the cell above is Left, every solution through it also passes
//     (i-1, j-1), which the Left branch reaches with the same length: keep Left
//   - symmetrically, if the cell to the left is Up: keep Up
//   - otherwise both branches can yield distinct solutions: keep Both
//
// Marking a branch as dead merely because the BFS already visited its target
// is not safe: the target may be reached with a different suffix and cutting
// it loses solutions (e.g. "bacb" vs "babcc" would lose "bac").
func (dm *DirectionMatrix) resolveBoth(i, j int) Direction {
	hasUp, hasLeft := i > 0, j > 0
	switch {
	case !hasUp && !hasLeft:
		return Stop
	case !hasUp:
		return Left
	case !hasLeft:
		return Up
	case dm.at(i-1, j) == Left:
		return Left
	case dm.at(i, j-1) == Up:
		return Up
	}
	return Both
}
