package lcs

import (
	"cmp"
	"math/big"
)

// Counter is an ordered counting domain used by ComputeLength.
//
// Zero is the additive identity, Successor(q) is q+1 and Compare follows the
// cmp.Compare convention (-1, 0, +1). Implementations must not mutate the
// values they are given: the rolling row shares values between cells.
type Counter[Q any] interface {
	Zero() Q
	Successor(q Q) Q
	Compare(a, b Q) int
}

// IntCounter counts with built-in ints. It is the default domain.
type IntCounter struct{}

func (IntCounter) Zero() int { return 0 }
func (IntCounter) Successor(q int) int { return q + 1 }
func (IntCounter) Compare(a, b int) int { return cmp.Compare(a, b) }

// Uint64Counter counts with uint64 values.
type Uint64Counter struct{}

func (Uint64Counter) Zero() uint64 { return 0 }
func (Uint64Counter) Successor(q uint64) uint64 { return q + 1 }
func (Uint64Counter) Compare(a, b uint64) int { return cmp.Compare(a, b) }

// BigCounter counts with arbitrary-precision integers.
// Successor always allocates a fresh *big.Int.
type BigCounter struct{}

var bigOne = big.NewInt(1)

func (BigCounter) Zero() *big.Int { return new(big.Int) }
func (BigCounter) Successor(q *big.Int) *big.Int { return new(big.Int).Add(q, bigOne) }
func (BigCounter) Compare(a, b *big.Int) int { return a.Cmp(b) }
