package console

import (
	"bufio"
	"fmt"
	"io"
)

// Console is a line-oriented terminal session.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// ReadLine blocks until a full line is read. It returns io.EOF once the
// input is exhausted.
func (c *Console) ReadLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("error reading input: %w", err)
		}
		return "", io.EOF
	}
	return c.in.Text(), nil
}

func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}
