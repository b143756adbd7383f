package demo

import (
	"fmt"
	"io"
)

// printer writes formatted lines and remembers the first write error so that
// sections can print unconditionally and Run can report failure once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) Write(b []byte) (int, error) {
	if p.err != nil {
		return 0, p.err
	}
	n, err := p.w.Write(b)
	if err != nil {
		p.err = err
	}
	return n, err
}

func (p *printer) printf(format string, args ...any) {
	fmt.Fprintf(p, format, args...)
}

func (p *printer) println(args ...any) {
	fmt.Fprintln(p, args...)
}

func (p *printer) heading(title string) {
	p.printf("\n %s\n", title)
}
