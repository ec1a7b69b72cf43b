package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/seqlath/internal/config"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the command tree with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestExecute(t *testing.T) {
	var out, errOut bytes.Buffer
	assert.Equal(t, 0, execute([]string{"length", "AGCCA", "ACGCA"}, &out, &errOut))
	assert.Equal(t, "4\n", out.String())
	assert.Empty(t, errOut.String())
}

// TestExecute_ErrorLogged checks that failures reach the command's stderr
// through the app logger, including errors raised before setup runs.
func TestExecute_ErrorLogged(t *testing.T) {
	for _, args := range [][]string{
		{"length", "only-one"},
		{"nope"},
		{"length", "--log-level", "loud", "a", "b"},
	} {
		var out, errOut bytes.Buffer
		assert.Equal(t, 1, execute(args, &out, &errOut), "%v", args)
		assert.Empty(t, out.String(), "%v", args)
		assert.Contains(t, errOut.String(), "level=error", "%v", args)
		assert.Contains(t, errOut.String(), `msg="lcs: `, "%v", args)
		assert.NotContains(t, errOut.String(), "time=", "%v", args)
	}
}

func TestLengthCmd(t *testing.T) {
	out, _, err := run(t, "length", "AGCCA", "ACGCA")
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)
}

func TestOneCmd(t *testing.T) {
	out, _, err := run(t, "one", "AGCCA", "ACGCA")
	require.NoError(t, err)
	assert.Equal(t, "ACCA\n", out)
}

func TestAllCmd(t *testing.T) {
	out, _, err := run(t, "all", "ABCBDAB", "BDCABA")
	require.NoError(t, err)
	assert.Equal(t, "BDAB\nBCAB\nBCBA\n", out)

	out, _, err = run(t, "all", "--limit", "1", "ABCBDAB", "BDCABA")
	require.NoError(t, err)
	assert.Equal(t, "BDAB\n... stopped after 1 solutions\n", out)

	out, _, err = run(t, "all", "abc", "xyz")
	require.NoError(t, err)
	assert.Equal(t, "", out, "no common element")
}

func TestDiffCmd_Words(t *testing.T) {
	out, _, err := run(t, "diff", "--mode", "words", "a b c", "a c d")
	require.NoError(t, err)
	assert.Equal(t, "  a\n- b\n  c\n+ d\n", out)
}

func TestAlignCmd(t *testing.T) {
	out, _, err := run(t, "align", "AGCCA", "ACGCA")
	require.NoError(t, err)
	assert.Equal(t, "A G C - C A\nA - C G C A\n", out)
}

func TestMatrixCmd(t *testing.T) {
	out, _, err := run(t, "matrix", "ab", "ab")
	require.NoError(t, err)
	assert.Equal(t, "↖  ← \n↑  ↖ \n", out)

	out, _, err = run(t, "matrix", "-o", "json", "ab", "ab")
	require.NoError(t, err)
	var got struct {
		Rows int      `json:"rows"`
		Grid []string `json:"grid"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 2, got.Rows)
	assert.Equal(t, []string{"DL", "UD"}, got.Grid)
}

func TestFileInputs_Lines(t *testing.T) {
	oldFile := writeTemp(t, "old.txt", "alpha\nbeta\ngamma\n")
	newFile := writeTemp(t, "new.txt", "alpha\r\ngamma\r\ndelta\r\n")

	out, _, err := run(t, "diff", "-m", "lines", "@"+oldFile, "@"+newFile)
	require.NoError(t, err)
	assert.Equal(t, "  alpha\n- beta\n  gamma\n+ delta\n", out)

	out, _, err = run(t, "one", "-m", "lines", "-o", "json", "@"+oldFile, "@"+newFile)
	require.NoError(t, err)
	var got struct {
		Length int      `json:"length"`
		Tokens []string `json:"tokens"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 2, got.Length)
	assert.Equal(t, []string{"alpha", "gamma"}, got.Tokens)
}

func TestFileInputs_Charset(t *testing.T) {
	latin := writeTemp(t, "latin1.txt", string([]byte{'c', 'a', 'f', 0xe9}))
	out, _, err := run(t, "length", "--charset", "iso-8859-1", "@"+latin, "café")
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)
}

func TestFoldFlag(t *testing.T) {
	out, _, err := run(t, "length", "ABC", "abc")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	out, _, err = run(t, "length", "--fold", "ABC", "abc")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestConfigFile(t *testing.T) {
	cfg := writeTemp(t, "lcs.toml", `
[tokenize]
mode = "words"

[output]
format = "yaml"
limit = 1
`)
	out, _, err := run(t, "all", "--config", cfg, "x y", "y x")
	require.NoError(t, err)
	assert.Contains(t, out, "length: 1")
	assert.Contains(t, out, "truncated: true")

	// Flags win over the file.
	out, _, err = run(t, "length", "--config", cfg, "-o", "text", "-m", "runes", "xy", "yx")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestDebugLogging(t *testing.T) {
	_, errOut, err := run(t, "length", "--log-level", "debug", "ab", "ba")
	require.NoError(t, err)
	assert.Contains(t, errOut, "lcs configured")
	assert.Contains(t, errOut, "lcs tokenized inputs")
}

func TestErrors(t *testing.T) {
	_, _, err := run(t, "length", "--mode", "sentences", "a", "b")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = run(t, "length", "-o", "xml", "a", "b")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = run(t, "length", "@"+filepath.Join(t.TempDir(), "missing"), "b")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = run(t, "length", "only-one")
	assert.Error(t, err)

	_, _, err = run(t, "all", "--limit", "-1", "a", "b")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestDiffCmd_Unified(t *testing.T) {
	oldFile := writeTemp(t, "old.txt", "alpha\nbeta\ngamma\n")
	newFile := writeTemp(t, "new.txt", "alpha\ngamma\ndelta\n")

	out, _, err := run(t, "diff", "-u", "-m", "lines", "@"+oldFile, "@"+newFile)
	require.NoError(t, err)
	assert.Contains(t, out, "--- "+oldFile)
	assert.Contains(t, out, "+++ "+newFile)
	assert.Contains(t, out, "@@ -1,3 +1,3 @@")
	assert.Contains(t, out, " alpha\n-beta\n gamma\n+delta\n")

	out, _, err = run(t, "diff", "-u", "-m", "lines", "@"+oldFile, "@"+oldFile)
	require.NoError(t, err)
	assert.Empty(t, out, "identical inputs have no hunks")
}

func TestCompressedInputs(t *testing.T) {
	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	_, err := zw.Write([]byte("AGCCA"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	gzFile := writeTemp(t, "a.txt.gz", gz.String())

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	zstFile := writeTemp(t, "b.txt.zst", string(enc.EncodeAll([]byte("ACGCA"), nil)))
	require.NoError(t, enc.Close())

	out, _, err := run(t, "length", "@"+gzFile, "@"+zstFile)
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)

	bad := writeTemp(t, "bad.gz", "not gzip")
	_, _, err = run(t, "length", "@"+bad, "x")
	assert.Error(t, err)
}
