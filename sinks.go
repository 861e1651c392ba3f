package lsdir

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// String returns the contents of the pipe as a string, or an error, and
// closes the pipe after reading. If there is an error reading, the pipe's
// error status is also set.
func (p *Pipe) String() (string, error) {
	if p.Error() != nil {
		return "", p.Error()
	}
	defer p.Close()
	res, err := io.ReadAll(p)
	if err != nil {
		p.SetError(err)
		return "", err
	}
	return string(res), nil
}

// CountLines counts lines from the pipe's reader, and returns the integer
// result, or an error, and closes the pipe after reading. If there is an
// error reading the pipe, the pipe's error status is also set.
func (p *Pipe) CountLines() (int, error) {
	if p.Error() != nil {
		return 0, p.Error()
	}
	scanner := bufio.NewScanner(p)
	var lines int
	for scanner.Scan() {
		lines++
	}
	err := scanner.Err()
	if err != nil {
		p.SetError(err)
	}
	p.Close()
	return lines, err
}

// Slice returns the contents of the pipe as a slice of strings, one element
// per line, or an error. An empty pipe produces an empty slice; a trailing
// newline does not add an empty final element. If there is an error reading
// the pipe, the pipe's error status is also set.
func (p *Pipe) Slice() ([]string, error) {
	if p.Error() != nil {
		return nil, p.Error()
	}
	result := []string{}
	p.EachLine(func(line string, out *strings.Builder) {
		result = append(result, line)
	})
	return result, p.Error()
}

// Stdout writes the contents of the pipe to its configured standard output.
// It returns the number of bytes successfully written, plus a non-nil error
// if the write failed or if there was an error reading from the pipe. If the
// pipe has error status, Stdout writes nothing and returns zero plus the
// existing error.
func (p *Pipe) Stdout() (int, error) {
	if p.Error() != nil {
		return 0, p.Error()
	}
	output, err := p.String()
	if err != nil {
		return 0, err
	}
	out := io.Writer(os.Stdout)
	if p != nil && p.stdout != nil {
		out = p.stdout
	}
	return fmt.Fprint(out, output)
}
