package lsdir

import (
	"bufio"
	"fmt"
	"strings"
)

// EachLine calls the specified function for each line of input, passing it
// the line as a string, and a *strings.Builder to write its output to. The
// return value from EachLine is a pipe containing the contents of the
// strings.Builder.
func (p *Pipe) EachLine(process func(string, *strings.Builder)) *Pipe {
	if p == nil || p.Error() != nil {
		return p
	}
	scanner := bufio.NewScanner(p.Reader)
	output := strings.Builder{}
	for scanner.Scan() {
		process(scanner.Text(), &output)
		if p.Error() != nil {
			return p
		}
	}
	err := scanner.Err()
	if err != nil {
		p.SetError(err)
	}
	return Echo(output.String())
}

// Number reads from the pipe, and returns a new pipe in which each line is
// prefixed with its 1-based ordinal, right-aligned in a 3-character field:
//
//	File   1: a.txt
//	File   2: b.txt
//
// The field widens as needed for ordinals above 999. If there is an error
// reading the pipe, the pipe's error status is also set.
func (p *Pipe) Number() *Pipe {
	if p == nil || p.Error() != nil {
		return p
	}
	var n int
	return p.EachLine(func(line string, out *strings.Builder) {
		n++
		fmt.Fprintf(out, "File %3d: %s\n", n, line)
	})
}
