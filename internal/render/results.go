package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/seqlath/lcs"
	"github.com/katalvlaran/seqlath/tokenize"
)

// Separator returns the string placed between tokens of mode when a token
// sequence is printed as one piece of text.
func Separator(mode tokenize.Mode) string {
	switch mode {
	case tokenize.Words:
		return " "
	case tokenize.Lines:
		return "\n"
	}
	return ""
}

// LengthResult is the output of the length command.
type LengthResult struct {
	Length int `json:"length" yaml:"length"`
	First  int `json:"first_tokens" yaml:"first_tokens"`
	Second int `json:"second_tokens" yaml:"second_tokens"`
}

func (r LengthResult) writeText(w io.Writer, _ func(string, string) string) error {
	_, err := fmt.Fprintln(w, r.Length)
	return err
}

// SolutionResult is one longest common subsequence.
type SolutionResult struct {
	Length  int         `json:"length" yaml:"length"`
	Tokens  []string    `json:"tokens" yaml:"tokens"`
	Matches []lcs.Match `json:"matches,omitempty" yaml:"matches,omitempty"`
	Sep     string      `json:"-" yaml:"-"`
}

func (r SolutionResult) writeText(w io.Writer, _ func(string, string) string) error {
	_, err := fmt.Fprintln(w, strings.Join(r.Tokens, r.Sep))
	return err
}

// AllResult lists distinct solutions.
type AllResult struct {
	Length    int        `json:"length" yaml:"length"`
	Count     int        `json:"count" yaml:"count"`
	Truncated bool       `json:"truncated,omitempty" yaml:"truncated,omitempty"`
	Solutions [][]string `json:"solutions" yaml:"solutions"`
	Sep       string     `json:"-" yaml:"-"`
}

func (r AllResult) writeText(w io.Writer, paint func(string, string) string) error {
	for i, sol := range r.Solutions {
		if r.Sep == "\n" {
			if _, err := fmt.Fprintln(w, paint(fmt.Sprintf("# solution %d", i+1), styleHeader)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, strings.Join(sol, r.Sep)); err != nil {
			return err
		}
	}
	if r.Truncated {
		_, err := fmt.Fprintln(w, paint(fmt.Sprintf("... stopped after %d solutions", r.Count), styleHeader))
		return err
	}
	return nil
}

// DiffLine is one edit of a DiffResult.
type DiffLine struct {
	Op    string `json:"op" yaml:"op"`
	Token string `json:"token" yaml:"token"`
}

// DiffResult is an edit script with its tokens resolved.
type DiffResult struct {
	Identical int        `json:"identical" yaml:"identical"`
	Deleted   int        `json:"deleted" yaml:"deleted"`
	Inserted  int        `json:"inserted" yaml:"inserted"`
	Edits     []DiffLine `json:"edits" yaml:"edits"`
}

// NewDiffResult resolves es against the token sequences it was built from.
func NewDiffResult(es lcs.EditScript, first, second []string) DiffResult {
	res := DiffResult{Edits: make([]DiffLine, len(es))}
	res.Identical, res.Deleted, res.Inserted = es.Counts()
	for i, e := range es {
		var tok string
		if e.Op == lcs.Insert {
			tok = second[e.B]
		} else {
			tok = first[e.A]
		}
		res.Edits[i] = DiffLine{Op: e.Op.String(), Token: tok}
	}
	return res
}

func (r DiffResult) writeText(w io.Writer, paint func(string, string) string) error {
	for _, e := range r.Edits {
		var line string
		switch e.Op {
		case lcs.Delete.String():
			line = paint("- "+e.Token, styleDelete)
		case lcs.Insert.String():
			line = paint("+ "+e.Token, styleInsert)
		default:
			line = "  " + e.Token
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// AlignResult holds two gapped rows of equal length.
type AlignResult struct {
	First  []string `json:"first" yaml:"first"`
	Second []string `json:"second" yaml:"second"`
	Gap    string   `json:"gap" yaml:"gap"`
}

func (r AlignResult) writeText(w io.Writer, paint func(string, string) string) error {
	var top, bottom strings.Builder
	for i := range r.First {
		a, b := r.First[i], r.Second[i]
		width := max(tokenize.Width(a), tokenize.Width(b))
		if i > 0 {
			top.WriteByte(' ')
			bottom.WriteByte(' ')
		}
		top.WriteString(cell(a, width, r.Gap, paint))
		bottom.WriteString(cell(b, width, r.Gap, paint))
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n", strings.TrimRight(top.String(), " "), strings.TrimRight(bottom.String(), " "))
	return err
}

// cell pads s to width display columns and dims gaps.
func cell(s string, width int, gap string, paint func(string, string) string) string {
	pad := strings.Repeat(" ", width-tokenize.Width(s))
	if s == gap {
		return paint(s, styleGap) + pad
	}
	return s + pad
}

// MatrixResult is a direction matrix dump.
type MatrixResult struct {
	Rows int      `json:"rows" yaml:"rows"`
	Cols int      `json:"cols" yaml:"cols"`
	Grid []string `json:"grid" yaml:"grid"`

	// Arrows is the arrow rendering used by text output.
	Arrows string `json:"-" yaml:"-"`
}

// NewMatrixResult captures dm row by row with one-letter tags.
func NewMatrixResult(dm *lcs.DirectionMatrix) MatrixResult {
	res := MatrixResult{Rows: dm.Rows(), Cols: dm.Cols(), Grid: make([]string, dm.Rows()), Arrows: dm.String()}
	for i := range res.Grid {
		var sb strings.Builder
		for j := 0; j < dm.Cols(); j++ {
			d, _ := dm.At(i, j)
			sb.WriteString(strings.ToUpper(d.String()[:1]))
		}
		res.Grid[i] = sb.String()
	}
	return res
}

func (r MatrixResult) writeText(w io.Writer, _ func(string, string) string) error {
	_, err := io.WriteString(w, r.Arrows)
	return err
}
