package lcs_test

import (
	"testing"

	"github.com/katalvlaran/seqlath/lcs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestComputeOne_Scenarios checks the reference inputs.
func TestComputeOne_Scenarios(t *testing.T) {
	eq := lcs.Equal[int]()

	got, err := lcs.ComputeOne(lcs.Slice[int]{1, 2, 3}, lcs.Slice[int]{3, 2, 1}, eq)
	require.NoError(t, err)
	assert.Len(t, got, 1, "reversed inputs share single elements only")

	got, err = lcs.ComputeOne(lcs.Slice[int]{}, lcs.Slice[int]{1, 2, 3}, eq)
	require.NoError(t, err)
	assert.NotNil(t, got, "empty input yields a non-nil empty result")
	assert.Empty(t, got)

	got, err = lcs.ComputeOne(lcs.Slice[int]{1, 2, 3}, lcs.Slice[int]{1, 2, 3}, eq)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)

	got, err = lcs.ComputeOne(lcs.Slice[int]{1, 2}, lcs.Slice[int]{3, 4}, eq)
	require.NoError(t, err)
	assert.Empty(t, got, "disjoint inputs")
}

// TestComputeOne_Strings pins the deterministic tie-break on known inputs.
func TestComputeOne_Strings(t *testing.T) {
	cases := []struct {
		a, b, want string
	}{
		{"AGCCA", "ACGCA", "ACCA"},
		{"ABCBDAB", "BDCABA", "BDAB"},
		{"bacb", "babcc", "bab"},
		{"XMJYAUZ", "MZJAWXU", "MJAU"},
		{"kitten", "sitting", "ittn"},
	}
	eq := lcs.Equal[rune]()
	for _, tc := range cases {
		got, err := lcs.ComputeOne(lcs.Runes(tc.a), lcs.Runes(tc.b), eq)
		require.NoError(t, err)
		assert.Equal(t, tc.want, string(got), "ComputeOne(%q, %q)", tc.a, tc.b)
	}
}

// TestComputeOne_Deterministic repeats the same call.
func TestComputeOne_Deterministic(t *testing.T) {
	a, b := lcs.Runes("ABCBDAB"), lcs.Runes("BDCABA")
	eq := lcs.Equal[rune]()
	first, err := lcs.ComputeOne(a, b, eq)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := lcs.ComputeOne(a, b, eq)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// TestComputeOneMatches verifies the index pairs behind a solution.
func TestComputeOneMatches(t *testing.T) {
	a, b := lcs.Runes("AGCCA"), lcs.Runes("ACGCA")
	matches, err := lcs.ComputeOneMatches(a, b, lcs.Equal[rune]())
	require.NoError(t, err)
	assert.Equal(t, []lcs.Match{{0, 0}, {2, 1}, {3, 3}, {4, 4}}, matches)
	for _, mt := range matches {
		assert.Equal(t, a.At(mt.First), b.At(mt.Second), "matched elements must be equal")
	}

	matches, err = lcs.ComputeOneMatches(lcs.Runes(""), b, lcs.Equal[rune]())
	require.NoError(t, err)
	assert.Equal(t, []lcs.Match{}, matches)
}

// TestComputeOne_Errors verifies argument validation.
func TestComputeOne_Errors(t *testing.T) {
	s := lcs.Slice[int]{1}
	_, err := lcs.ComputeOne[int, int](nil, s, lcs.Equal[int]())
	assert.ErrorIs(t, err, lcs.ErrNilSequence)
	_, err = lcs.ComputeOne[int, int](s, s, nil)
	assert.ErrorIs(t, err, lcs.ErrNilEqual)
	_, err = lcs.ComputeOneMatches[int, int](s, nil, lcs.Equal[int]())
	assert.ErrorIs(t, err, lcs.ErrNilSequence)
}
