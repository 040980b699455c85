// Package prompt reads line-based answers from an input stream.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Reader prints a label and reads one line per question. Lines have no
// length limit; callers validate the answers.
type Reader struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Reader that prompts on out and reads from in.
func New(in io.Reader, out io.Writer) *Reader {
	return &Reader{in: bufio.NewReader(in), out: out}
}

// Ask prints label and returns the next line with surrounding whitespace
// removed. It returns io.EOF once the input is exhausted.
func (r *Reader) Ask(label string) (string, error) {
	if _, err := fmt.Fprint(r.out, label); err != nil {
		return "", err
	}
	line, err := r.in.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		err = nil
	}
	if err != nil {
		if errors.Is(err, io.EOF) {
			_, _ = fmt.Fprintln(r.out)
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
