package lsdir

import (
	"os"
	"strings"
)

// Echo returns a pipe containing the supplied string.
func Echo(s string) *Pipe {
	return NewPipe().WithReader(strings.NewReader(s))
}

// Entries returns a pipe containing the names of the entries in the
// specified directory, one per line, in whatever order the filesystem yields
// them; no sorting is applied. The directory handle is closed before Entries
// returns. If the directory cannot be opened or read (for example, because
// the path does not exist, or is not a directory), the pipe's error status
// will be set.
func Entries(path string) *Pipe {
	f, err := os.Open(path)
	if err != nil {
		return NewPipe().WithError(err)
	}
	defer f.Close()
	names, err := f.Readdirnames(-1)
	if err != nil {
		return NewPipe().WithError(err)
	}
	var s strings.Builder
	for _, name := range names {
		s.WriteString(name + "\n")
	}
	return Echo(s.String())
}
