package tokenize

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownMode is returned when a mode name is not recognised.
	ErrUnknownMode = errors.New("tokenize: unknown mode")

	// ErrUnknownForm is returned when a normalization form name is not recognised.
	ErrUnknownForm = errors.New("tokenize: unknown normalization form")

	// ErrUnknownCharset is returned by Decode for unsupported charsets.
	ErrUnknownCharset = errors.New("tokenize: unknown charset")
)

// Mode selects the token granularity.
type Mode uint8

const (
	Runes Mode = iota
	Graphemes
	Words
	Lines
)

var modeNames = [...]string{"runes", "graphemes", "words", "lines"}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// ParseMode maps a case-insensitive name to a Mode.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Form is a Unicode normalization form applied before splitting.
type Form uint8

const (
	NoForm Form = iota
	NFC
	NFD
	NFKC
	NFKD
)

var formNames = [...]string{"none", "nfc", "nfd", "nfkc", "nfkd"}

func (f Form) String() string {
	if int(f) < len(formNames) {
		return formNames[f]
	}
	return "unknown"
}

// ParseForm maps a case-insensitive name to a Form. The empty string is NoForm.
func ParseForm(s string) (Form, error) {
	if s == "" {
		return NoForm, nil
	}
	for i, name := range formNames {
		if strings.EqualFold(s, name) {
			return Form(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownForm, s)
}

// Options configures Split.
type Options struct {
	Mode      Mode
	Normalize Form

	// Fold applies Unicode case folding after normalization.
	Fold bool
}

// DefaultOptions returns grapheme tokens with NFC normalization and no folding.
func DefaultOptions() Options {
	return Options{Mode: Graphemes, Normalize: NFC}
}
