package tokenize

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Split normalizes text according to opts and cuts it into tokens.
// Empty text yields an empty, non-nil slice.
func Split(text string, opts Options) ([]string, error) {
	text, err := Prepare(text, opts)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return []string{}, nil
	}

	switch opts.Mode {
	case Runes:
		out := make([]string, 0, len(text))
		for _, r := range text {
			out = append(out, string(r))
		}
		return out, nil
	case Graphemes:
		out := make([]string, 0, len(text))
		g := uniseg.NewGraphemes(text)
		for g.Next() {
			out = append(out, g.Str())
		}
		return out, nil
	case Words:
		return strings.Fields(text), nil
	case Lines:
		return splitLines(text), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownMode, opts.Mode)
}

// Prepare applies the normalization form and case folding of opts to text.
func Prepare(text string, opts Options) (string, error) {
	switch opts.Normalize {
	case NoForm:
	case NFC:
		text = norm.NFC.String(text)
	case NFD:
		text = norm.NFD.String(text)
	case NFKC:
		text = norm.NFKC.String(text)
	case NFKD:
		text = norm.NFKD.String(text)
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownForm, opts.Normalize)
	}
	if opts.Fold {
		text = cases.Fold().String(text)
	}
	return text, nil
}

// splitLines cuts on '\n', dropping a trailing "\r" from every line. A final
// terminator does not start an extra empty line.
func splitLines(text string) []string {
	lines := make([]string, 0, strings.Count(text, "\n")+1)
	for pos := 0; pos < len(text); {
		part := text[pos:]
		n := strings.IndexByte(part, '\n')
		if n == -1 {
			lines = append(lines, strings.TrimSuffix(part, "\r"))
			break
		}
		lines = append(lines, strings.TrimSuffix(part[:n], "\r"))
		pos += n + 1
	}
	return lines
}

// Width returns the monospace display width of s.
func Width(s string) int {
	return uniseg.StringWidth(s)
}
