package render

import (
	"io"
	"strings"

	"github.com/katalvlaran/seqlath/lcs"
	"github.com/sourcegraph/go-diff/diff"
)

// DefaultContext is the number of unchanged lines kept around each hunk.
const DefaultContext = 3

// lineEscaper keeps every token on one body line.
var lineEscaper = strings.NewReplacer("\r", `\r`, "\n", `\n`)

// NewFileDiff groups es into unified-diff hunks with context unchanged
// lines around every change. Hunks whose contexts touch are merged. Tokens
// are written one per body line; CR and LF inside a token are written as
// the escapes \r and \n.
func NewFileDiff(es lcs.EditScript, first, second []string, origName, newName string, context int) *diff.FileDiff {
	if context < 0 {
		context = 0
	}
	fd := &diff.FileDiff{OrigName: origName, NewName: newName}

	// origAt[k] and newAt[k] count the lines of each side consumed before edit k.
	origAt := make([]int, len(es)+1)
	newAt := make([]int, len(es)+1)
	for k, e := range es {
		origAt[k+1], newAt[k+1] = origAt[k], newAt[k]
		if e.Op != lcs.Insert {
			origAt[k+1]++
		}
		if e.Op != lcs.Delete {
			newAt[k+1]++
		}
	}

	for k := 0; k < len(es); {
		if es[k].Op == lcs.Identical {
			k++
			continue
		}
		start := max(0, k-context)
		end := k + 1
		// Extend while the next change is within reach of the trailing context.
		for j := end; j < len(es) && j <= end+2*context; j++ {
			if es[j].Op != lcs.Identical {
				end = j + 1
			}
		}
		end = min(len(es), end+context)
		fd.Hunks = append(fd.Hunks, newHunk(es[start:end], first, second, origAt[start], newAt[start], origAt[end]-origAt[start], newAt[end]-newAt[start]))
		k = end
	}
	return fd
}

func newHunk(edits lcs.EditScript, first, second []string, origBefore, newBefore, origLines, newLines int) *diff.Hunk {
	h := &diff.Hunk{
		OrigStartLine: int32(startLine(origBefore, origLines)),
		OrigLines:     int32(origLines),
		NewStartLine:  int32(startLine(newBefore, newLines)),
		NewLines:      int32(newLines),
	}
	var body []byte
	for _, e := range edits {
		var tok string
		if e.Op == lcs.Insert {
			tok = second[e.B]
		} else {
			tok = first[e.A]
		}
		body = append(body, e.Op.Symbol())
		body = append(body, lineEscaper.Replace(tok)...)
		body = append(body, '\n')
	}
	h.Body = body
	return h
}

// startLine is 1-based; an empty range names the line before it.
func startLine(before, lines int) int {
	if lines == 0 {
		return before
	}
	return before + 1
}

// WriteUnified prints fd in unified diff format.
func WriteUnified(w io.Writer, fd *diff.FileDiff) error {
	if len(fd.Hunks) == 0 {
		return nil
	}
	out, err := diff.PrintFileDiff(fd)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
