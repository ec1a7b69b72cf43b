package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/seqlath/lcs"
	"github.com/katalvlaran/seqlath/tokenize"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/sync/errgroup"
)

// readArg returns the text behind a command argument: the argument itself,
// or the decoded contents of the file when it has the form @path. Files
// ending in .gz or .zst are decompressed first.
func (a *app) readArg(arg string) (string, error) {
	path, ok := strings.CutPrefix(arg, "@")
	if !ok {
		return arg, nil
	}
	data, err := readFile(path)
	if err != nil {
		return "", err
	}
	data, err = tokenize.Decode(data, a.cfg.Tokenize.Charset)
	if err != nil {
		return "", err
	}
	a.log.Debugf("lcs read %d bytes from %s", len(data), path)
	return string(data), nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch filepath.Ext(path) {
	case ".gz":
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	case ".zst":
		zr, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	}
	return data, nil
}

// pair holds both inputs tokenized and interned into one id space.
type pair struct {
	sink          *tokenize.Sink
	names         [2]string
	first, second []string
	ids1, ids2    lcs.Slice[int]
}

// loadPair reads and tokenizes both arguments concurrently.
func (a *app) loadPair(args []string) (*pair, error) {
	p := &pair{sink: tokenize.NewSink()}
	var toks [2][]string
	var g errgroup.Group
	for i, arg := range args[:2] {
		p.names[i] = strings.TrimPrefix(arg, "@")
		g.Go(func() error {
			text, err := a.readArg(arg)
			if err != nil {
				return err
			}
			toks[i], err = tokenize.Split(text, a.opts)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	p.first, p.second = toks[0], toks[1]
	p.ids1, p.ids2 = p.sink.Intern(p.first), p.sink.Intern(p.second)
	a.log.WithField("first", len(p.first)).WithField("second", len(p.second)).Debug("lcs tokenized inputs")
	return p, nil
}

// tokens maps interned ids back to their tokens.
func (p *pair) tokens(ids []int) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = p.sink.Token(id)
	}
	return out
}
