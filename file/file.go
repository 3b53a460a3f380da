// Package file reads the text lines the analyzer consumes.
package file

import (
	"bufio"
	"io"
	"iter"
	"os"
)

// Stdin is the file name that reads standard input.
const Stdin = "-"

// maxLineSize bounds a single input line.
const maxLineSize = 1024 * 1024

// Lines reads newline separated lines from a sequence of readers.
//
// Reading stops at the first error, available with Err once the sequence
// is done.
type Lines struct {
	err error
}

// Read returns the lines of r, without their line terminators.
func (l *Lines) Read(r io.Reader) iter.Seq[string] {
	return func(yield func(string) bool) {
		l.scan(r, yield)
	}
}

// Files returns the lines of the named files in order. The name "-" and
// an empty list read stdin.
func (l *Lines) Files(stdin io.Reader, names []string) iter.Seq[string] {
	if len(names) == 0 {
		names = []string{Stdin}
	}

	return func(yield func(string) bool) {
		for _, name := range names {
			if !l.file(stdin, name, yield) {
				return
			}
		}
	}
}

// Err returns the first read error.
func (l *Lines) Err() error {
	return l.err
}

// file reads one file, reporting whether reading should go on.
func (l *Lines) file(stdin io.Reader, name string, yield func(string) bool) bool {
	if name == Stdin {
		return l.scan(stdin, yield)
	}

	f, err := os.Open(name)
	if err != nil {
		l.err = err
		return false
	}
	defer f.Close()

	return l.scan(f, yield)
}

func (l *Lines) scan(r io.Reader, yield func(string) bool) bool {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		if !yield(scanner.Text()) {
			return false
		}
	}

	if err := scanner.Err(); err != nil {
		l.err = err
		return false
	}

	return true
}
