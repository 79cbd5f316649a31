// Package prompt asks the user yes/no questions before destructive steps.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chmouel/svnrevert/internal/theme"
	"golang.org/x/term"
)

// Confirmer asks a yes/no question. A false answer with a nil error is a
// decline.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// isTerminal is replaceable in tests.
var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec
}

// New returns an interactive confirmer when both in and out are terminals,
// and a line based one otherwise.
func New(in io.Reader, out io.Writer, thm *theme.Theme) Confirmer {
	inFile, inOK := in.(*os.File)
	outFile, outOK := out.(*os.File)
	if inOK && outOK && isTerminal(inFile) && isTerminal(outFile) {
		return &Interactive{In: in, Out: out, Thm: thm}
	}
	return NewLine(in, out)
}

// Line reads answers one line at a time. The default answer is no.
type Line struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewLine returns a Line confirmer reading from in and prompting on out.
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{scanner: bufio.NewScanner(in), out: out}
}

// Confirm implements Confirmer. It asks again until the answer is empty,
// y, yes, n or no. End of input counts as no.
func (l *Line) Confirm(question string) (bool, error) {
	for {
		fmt.Fprintf(l.out, "%s [y/N]: ", question)
		if !l.scanner.Scan() {
			fmt.Fprintln(l.out)
			return false, l.scanner.Err()
		}
		if answer, ok := parseAnswer(l.scanner.Text()); ok {
			return answer, nil
		}
		fmt.Fprintln(l.out, "Error: invalid input")
	}
}

func parseAnswer(text string) (answer, ok bool) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "y", "yes":
		return true, true
	case "", "n", "no":
		return false, true
	default:
		return false, false
	}
}
