package lcs

import (
	"errors"
	"fmt"
)

var (
	// ErrNilSequence indicates that a nil Sequence was passed to an entry point.
	ErrNilSequence = errors.New("lcs: sequence is nil")

	// ErrNilEqual indicates that the element equality predicate is nil.
	ErrNilEqual = errors.New("lcs: equality predicate is nil")

	// ErrNilCounter indicates that the counting domain passed to ComputeLength is nil.
	ErrNilCounter = errors.New("lcs: counter is nil")

	// ErrOutOfRange indicates a direction matrix lookup outside its bounds.
	ErrOutOfRange = errors.New("lcs: index out of range")

	// ErrBadMatches indicates that a match list is not strictly increasing
	// in both coordinates or references positions outside the sequences.
	ErrBadMatches = errors.New("lcs: matches are not a valid common subsequence")

	// ErrNotStarted is returned by Enumerator.Current before the first Next.
	ErrNotStarted = errors.New("lcs: enumerator was not started")

	// ErrExhausted is returned by Enumerator.Current after Next reported false.
	ErrExhausted = errors.New("lcs: enumerator is after end")

	// ErrClosed is returned by any Enumerator access after Close.
	ErrClosed = errors.New("lcs: enumerator is closed")
)

// Sequence is a finite, randomly indexable, read-only sequence.
// At must accept every index in [0, Len()).
type Sequence[T any] interface {
	Len() int
	At(i int) T
}

// Slice adapts a plain Go slice to Sequence. A nil Slice is a valid empty sequence.
type Slice[T any] []T

// Len returns the number of elements.
func (s Slice[T]) Len() int { return len(s) }

// At returns the i-th element.
func (s Slice[T]) At(i int) T { return s[i] }

// Runes returns the code points of s as a Sequence.
func Runes(s string) Slice[rune] { return Slice[rune]([]rune(s)) }

// Bytes wraps b as a Sequence without copying.
func Bytes(b []byte) Slice[byte] { return Slice[byte](b) }

// EqualFunc reports whether an element of the first sequence matches an
// element of the second one.
type EqualFunc[T, P any] func(a T, b P) bool

// Equal returns the == predicate for comparable elements.
func Equal[T comparable]() EqualFunc[T, T] {
	return func(a, b T) bool { return a == b }
}

// Match links position First of the first sequence to position Second of the
// second sequence in a common subsequence.
type Match struct {
	First  int `json:"first" yaml:"first"`
	Second int `json:"second" yaml:"second"`
}

// validate checks the arguments shared by every entry point.
func validate[T, P any](first Sequence[T], second Sequence[P], eq EqualFunc[T, P]) error {
	if first == nil {
		return fmt.Errorf("%w: first", ErrNilSequence)
	}
	if second == nil {
		return fmt.Errorf("%w: second", ErrNilSequence)
	}
	if eq == nil {
		return ErrNilEqual
	}
	return nil
}
