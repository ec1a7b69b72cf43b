// Package render prints lcs results as text, JSON or YAML.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("render: unknown format")

// Format is an output encoding.
type Format uint8

const (
	Text Format = iota
	JSON
	YAML
)

var formatNames = [...]string{"text", "json", "yaml"}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(s string) (Format, error) {
	for i, name := range formatNames {
		if strings.EqualFold(s, name) {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Styles used for text output.
const (
	styleInsert = "green"
	styleDelete = "red"
	styleHeader = "cyan+b"
	styleGap    = "black+h"
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Renderer writes results to W.
type Renderer struct {
	W      io.Writer
	Format Format

	// Color enables ANSI styles in Text output.
	Color bool
}

// New returns a Renderer for w. Colour is only used when requested and w is
// a terminal.
func New(w io.Writer, format Format, color bool) *Renderer {
	return &Renderer{W: w, Format: format, Color: color && IsTerminal(w)}
}

// texter is implemented by every result type.
type texter interface {
	writeText(w io.Writer, paint func(s, style string) string) error
}

// Render encodes v in the configured format.
func (r *Renderer) Render(v texter) error {
	switch r.Format {
	case JSON:
		enc := json.NewEncoder(r.W)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(r.W)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case Text:
		return v.writeText(r.W, r.paint)
	}
	return fmt.Errorf("%w: %d", ErrUnknownFormat, r.Format)
}

func (r *Renderer) paint(s, style string) string {
	if !r.Color || s == "" {
		return s
	}
	return ansi.Color(s, style)
}
