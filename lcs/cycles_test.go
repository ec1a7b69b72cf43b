package lcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRemoveCycles_Rewrites pins the rewritten tags on small inputs.
func TestRemoveCycles_Rewrites(t *testing.T) {
	cases := []struct {
		a, b          string
		before, after []string
	}{
		{"bcb", "cca", []string{"BBB", "DDL", "UBB"}, []string{"BBB", "DDL", "UUL"}},
		{"ccc", "acca", []string{"BDDL", "BDDL", "BDDB"}, []string{"BDDL", "BDDL", "BDDL"}},
		{"abbba", "acc", []string{"DLL", "UBB", "UBB", "UBB", "DBB"}, []string{"DLL", "ULL", "UUB", "UUB", "DBB"}},
		// Nothing redundant: every Both stays.
		{"bacb", "babcc", []string{"DLDLL", "UDLLL", "UUBDD", "DUDBB"}, []string{"DLDLL", "UDLLL", "UUBDD", "DUDBB"}},
	}
	for _, tc := range cases {
		dm, n := buildDirections(Runes(tc.a), Runes(tc.b), Equal[rune](), keepBoth, nil)
		assert.Equal(t, tc.before, grid(dm), "%s/%s before", tc.a, tc.b)
		removeCycles(dm, int(n))
		assert.Equal(t, tc.after, grid(dm), "%s/%s after", tc.a, tc.b)
	}
}

// TestRemoveCycles_ZeroRegionUntouched ensures cells that no walk can reach
// with work left keep their original tags.
func TestRemoveCycles_ZeroRegionUntouched(t *testing.T) {
	dm, n := buildDirections(Runes("abcd"), Runes("dcba"), Equal[rune](), keepBoth, nil)
	before := grid(dm)
	removeCycles(dm, int(n))
	assert.Equal(t, before, grid(dm))

	empty, _ := buildDirections(Runes("ab"), Runes("cd"), Equal[rune](), keepBoth, nil)
	removeCycles(empty, 0)
	assert.Equal(t, []string{"BB", "BB"}, grid(empty))
}

// TestResolveBoth_Edges checks the branches that leave the matrix.
func TestResolveBoth_Edges(t *testing.T) {
	dm := newDirectionMatrix(2, 2)
	for i := range dm.cells {
		dm.cells[i] = Both
	}
	assert.Equal(t, Stop, dm.resolveBoth(0, 0))
	assert.Equal(t, Left, dm.resolveBoth(0, 1))
	assert.Equal(t, Up, dm.resolveBoth(1, 0))
	assert.Equal(t, Both, dm.resolveBoth(1, 1))

	dm.set(0, 1, Left)
	assert.Equal(t, Left, dm.resolveBoth(1, 1), "cell above is Left")
	dm.set(0, 1, Both)
	dm.set(1, 0, Up)
	assert.Equal(t, Up, dm.resolveBoth(1, 1), "cell to the left is Up")
}

// TestBifurcationStack is LIFO.
func TestBifurcationStack(t *testing.T) {
	st := newBifurcationStack()
	st.push(bifurcation{row: 1, col: 1, index: 0, next: 1})
	st.push(bifurcation{row: 2, col: 3, index: 1, next: 0})
	assert.Equal(t, 2, st.len())

	b, ok := st.pop()
	assert.True(t, ok)
	assert.Equal(t, bifurcation{row: 2, col: 3, index: 1, next: 0}, b)

	st.clear()
	_, ok = st.pop()
	assert.False(t, ok)
}
