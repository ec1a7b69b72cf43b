package lcs

import "strings"

// Direction tags a direction matrix cell with the neighbour(s) its LCS value
// was derived from.
type Direction uint8

const (
	// Diag: the elements matched; the value came from the up-left cell plus one.
	Diag Direction = iota
	// Up: the value came from the cell above (row i-1).
	Up
	// Left: the value came from the cell to the left (column j-1).
	Left
	// Both: Up and Left tie; both are valid continuations.
	Both
	// Stop: the walk must not continue from this cell. Only cycle removal writes it.
	Stop
)

var directionNames = [...]string{"diag", "up", "left", "both", "stop"}

// String returns the lower-case tag name.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "unknown"
}

// arrow renders d as a two-rune glyph for matrix dumps.
func (d Direction) arrow() string {
	switch d {
	case Diag:
		return "↖ "
	case Up:
		return "↑ "
	case Left:
		return "← "
	case Both:
		return "↑←"
	default:
		return "■ "
	}
}

// tieRule selects how the DP resolves equal Up and Left values.
type tieRule uint8

const (
	// preferLeft yields exactly one path (ComputeOne).
	preferLeft tieRule = iota
	// keepBoth records the tie as a bifurcation (EnumerateAll).
	keepBoth
)

// DirectionMatrix is an n×m grid of Direction tags stored row-major.
// Row i corresponds to first[i], column j to second[j].
// Values handed out by this package are never modified after construction.
type DirectionMatrix struct {
	rows, cols int
	cells      []Direction
}

func newDirectionMatrix(rows, cols int) *DirectionMatrix {
	return &DirectionMatrix{
		rows:  rows,
		cols:  cols,
		cells: make([]Direction, rows*cols),
	}
}

// Rows returns the length of the first sequence.
func (dm *DirectionMatrix) Rows() int { return dm.rows }

// Cols returns the length of the second sequence.
func (dm *DirectionMatrix) Cols() int { return dm.cols }

// At returns the tag of cell (i, j), or ErrOutOfRange.
func (dm *DirectionMatrix) At(i, j int) (Direction, error) {
	if i < 0 || i >= dm.rows || j < 0 || j >= dm.cols {
		return Stop, ErrOutOfRange
	}
	return dm.at(i, j), nil
}

// String renders the matrix as an arrow grid, one row per line.
func (dm *DirectionMatrix) String() string {
	var sb strings.Builder
	for i := 0; i < dm.rows; i++ {
		for j := 0; j < dm.cols; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(dm.at(i, j).arrow())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (dm *DirectionMatrix) index(i, j int) int { return i*dm.cols + j }

func (dm *DirectionMatrix) at(i, j int) Direction { return dm.cells[dm.index(i, j)] }

func (dm *DirectionMatrix) set(i, j int, d Direction) { dm.cells[dm.index(i, j)] = d }

// lengthTable holds the LCS length of every prefix pair first[0..i],
// second[0..j], row-major. Indices of -1 read as zero.
type lengthTable struct {
	cols  int
	cells []uint32
}

func newLengthTable(rows, cols int) *lengthTable {
	return &lengthTable{cols: cols, cells: make([]uint32, rows*cols)}
}

func (lt *lengthTable) at(i, j int) int {
	if i < 0 || j < 0 {
		return 0
	}
	return int(lt.cells[i*lt.cols+j])
}

// buildDirections fills the direction matrix for first×second with a rolling
// row of running lengths and returns it with the LCS length. When lens is
// non-nil every running length is also stored in it.
//
//	match         → Diag, tab[j] = diag+1
//	up  > left    → Up
//	left > up     → Left
//	up == left    → Left (preferLeft) or Both (keepBoth)
//
// Neighbours outside the matrix count as zero. Under preferLeft a tie in
// column 0 resolves to Up so the single path never leaves the matrix.
//
// Time O(n·m), memory O(n·m) tags + O(m) lengths. n and m must be > 0.
func buildDirections[T, P any](first Sequence[T], second Sequence[P], eq EqualFunc[T, P], rule tieRule, lens *lengthTable) (*DirectionMatrix, uint64) {
	n, m := first.Len(), second.Len()
	dm := newDirectionMatrix(n, m)
	tab := make([]uint64, m)

	for i := 0; i < n; i++ {
		a := first.At(i)
		var diag uint64 // previous row's tab[j-1]
		for j := 0; j < m; j++ {
			up := tab[j]
			var left uint64
			if j > 0 {
				left = tab[j-1]
			}

			switch {
			case eq(a, second.At(j)):
				tab[j] = diag + 1
				dm.set(i, j, Diag)
			case left > up:
				tab[j] = left
				dm.set(i, j, Left)
			case up > left:
				dm.set(i, j, Up)
			case rule == keepBoth:
				dm.set(i, j, Both)
			case j == 0:
				dm.set(i, j, Up)
			default:
				dm.set(i, j, Left)
			}
			diag = up
		}
		if lens != nil {
			row := lens.cells[i*m : (i+1)*m]
			for j, v := range tab {
				row[j] = uint32(v)
			}
		}
	}

	return dm, tab[m-1]
}
