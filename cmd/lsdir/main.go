// Command lsdir prints the contents of the sandbox directory, one numbered
// line per entry:
//
//	File   1: a.txt
//	File   2: b.txt
//
// If the directory cannot be opened, lsdir reports the reason on standard
// error and exits with status 1.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitfield/lsdir"
)

const sandboxDir = "/sandbox/t"

func main() {
	os.Exit(run(sandboxDir, os.Stdout, os.Stderr))
}

func run(dir string, stdout, stderr io.Writer) int {
	_, err := lsdir.Entries(dir).Number().WithStdout(stdout).Stdout()
	if err != nil {
		fmt.Fprintf(stderr, "unable to read directory: %v\n", err)
		return 1
	}
	return 0
}
