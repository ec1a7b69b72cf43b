// Command lcs compares two texts by their longest common subsequences.
//
//	lcs length AGCCA ACGCA
//	lcs all --limit 10 ABCBDAB BDCABA
//	lcs diff --mode lines @old.txt @new.txt
//
// An argument of the form @path is replaced by the contents of the file.
package main

import (
	"io"
	"os"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line and returns the exit code. A failure is
// reported through the same logger the subcommands use.
func execute(args []string, stdout, stderr io.Writer) int {
	a, cmd := newApp()
	a.log.SetOutput(stderr)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		a.log.Errorf("lcs: %v", err)
		return 1
	}
	return 0
}
