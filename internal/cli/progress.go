package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/chmouel/svnrevert/internal/theme"
	"github.com/muesli/reflow/truncate"
)

// progressLine redraws a single "[i/n] dir" line. A nil progressLine is a
// no-op so callers need not check whether progress is enabled.
type progressLine struct {
	w     io.Writer
	width int
	thm   *theme.Theme
	last  int
}

func (p *progressLine) step(i, n int, label string) {
	if p == nil {
		return
	}
	text := fmt.Sprintf("[%d/%d] %s", i, n, label)
	if p.width > 1 {
		text = truncate.StringWithTail(text, uint(p.width-1), "…") //nolint:gosec
	}
	pad := ""
	if len(text) < p.last {
		pad = strings.Repeat(" ", p.last-len(text))
	}
	p.last = len(text)
	fmt.Fprint(p.w, "\r"+p.thm.Muted(text)+pad)
}

func (p *progressLine) done() {
	if p == nil || p.last == 0 {
		return
	}
	fmt.Fprint(p.w, "\r"+strings.Repeat(" ", p.last)+"\r")
	p.last = 0
}
