// Package lsdir lists the contents of directories, in the style of a shell
// pipeline: a source produces entry names, one per line, and filters and
// sinks consume them.
//
// Most operations return a Pipe object, so that operations can be chained:
//
//	count, err := Entries("/tmp").CountLines()
//
// If any pipe operation results in an error, the pipe's Error() method will
// return that error, and all pipe operations will be no-ops. Thus you can
// safely chain a whole series of operations without having to check the error
// status at each stage:
//
//	p := Entries("doesnt_exist").Number()
//	out, _ := p.String() // succeeds, with empty result
//	fmt.Println(p.Error())
//
// Output: open doesnt_exist: no such file or directory
package lsdir

import (
	"io"
	"os"
)

// Pipe represents a pipe object with an associated ReadAutoCloser.
type Pipe struct {
	Reader ReadAutoCloser
	err    error
	stdout io.Writer
}

// NewPipe returns a pointer to a new empty pipe.
func NewPipe() *Pipe {
	return &Pipe{
		Reader: ReadAutoCloser{},
		err:    nil,
		stdout: os.Stdout,
	}
}

// Close closes the pipe's associated reader. This is always safe to do,
// because pipes created from a non-closable source will have a no-op closer
// to call.
func (p *Pipe) Close() error {
	if p == nil {
		return nil
	}
	return p.Reader.Close()
}

// Error returns the last error returned by any pipe operation, or nil
// otherwise.
func (p *Pipe) Error() error {
	if p == nil {
		return nil
	}
	return p.err
}

// Read reads up to len(b) bytes from the data source into b. It returns the
// number of bytes read and any error encountered. At end of file, or on a nil
// pipe, Read returns 0, io.EOF.
//
// Unlike most sinks, Read does not necessarily read the whole contents of the
// pipe. It will read as many bytes as it takes to fill the slice.
func (p *Pipe) Read(b []byte) (int, error) {
	if p == nil {
		return 0, io.EOF
	}
	return p.Reader.Read(b)
}

// SetError sets the pipe's error status to the specified error.
func (p *Pipe) SetError(err error) {
	if p != nil {
		if err != nil {
			p.Close()
		}
		p.err = err
	}
}

// WithError sets the pipe's error status to the specified error and returns
// the modified pipe.
func (p *Pipe) WithError(err error) *Pipe {
	p.SetError(err)
	return p
}

// WithReader takes an io.Reader, and associates the pipe with that reader. If
// necessary, the reader will be automatically closed once it has been
// completely read.
func (p *Pipe) WithReader(r io.Reader) *Pipe {
	if p == nil {
		return nil
	}
	p.Reader = NewReadAutoCloser(r)
	return p
}

// WithStdout takes an io.Writer, and associates the pipe's standard output
// with that writer, instead of the default os.Stdout. This is primarily
// useful for testing.
func (p *Pipe) WithStdout(w io.Writer) *Pipe {
	if p == nil {
		return nil
	}
	p.stdout = w
	return p
}

// ReadAutoCloser wraps an io.Reader, and closes it automatically, if
// closable, once it has been completely read.
type ReadAutoCloser struct {
	r io.ReadCloser
}

// NewReadAutoCloser returns a ReadAutoCloser wrapping the supplied Reader. If
// the Reader is not a Closer, it will be wrapped in a NopCloser to make it
// closable.
func NewReadAutoCloser(r io.Reader) ReadAutoCloser {
	if rc, ok := r.(io.ReadCloser); ok {
		return ReadAutoCloser{rc}
	}
	return ReadAutoCloser{io.NopCloser(r)}
}

// Read reads up to len(b) bytes from the data source into b. It returns the
// number of bytes read and any error encountered. At end of file, Read
// returns 0, io.EOF, and the data source is closed.
func (a ReadAutoCloser) Read(b []byte) (n int, err error) {
	if a.r == nil {
		return 0, io.EOF
	}
	n, err = a.r.Read(b)
	if err == io.EOF {
		a.Close()
	}
	return n, err
}

// Close closes the data source associated with a, and returns the result of
// that close operation.
func (a ReadAutoCloser) Close() error {
	if a.r == nil {
		return nil
	}
	return a.r.Close()
}
