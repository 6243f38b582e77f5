// Package display prints the human-facing console lines of a run.
package display

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const logo = `
                        _  __
 __      _____  _ __ __| |/ _|_ __ ___  __ _
 \ \ /\ / / _ \| '__/ _` + "`" + ` | |_| '__/ _ \/ _` + "`" + ` |
  \ V  V / (_) | | | (_| |  _| | |  __/ (_| |
   \_/\_/ \___/|_|  \__,_|_| |_|  \___|\__, |
                                          |_|
`

const subtext = "word frequency extractor for plain-text corpora"

// Console writes colored status lines. Colors are dropped when the writer is
// not a terminal.
type Console struct {
	w io.Writer

	title  *color.Color
	info   *color.Color
	value  *color.Color
	good   *color.Color
	failed *color.Color
}

// New creates a console on w.
func New(w io.Writer) *Console {
	c := &Console{
		w:      w,
		title:  color.New(color.FgCyan, color.Bold),
		info:   color.New(color.FgCyan),
		value:  color.New(color.FgYellow, color.Bold),
		good:   color.New(color.FgGreen, color.Bold),
		failed: color.New(color.FgRed, color.Bold),
	}
	if !IsTerminal(w) {
		for _, col := range []*color.Color{c.title, c.info, c.value, c.good, c.failed} {
			col.DisableColor()
		}
	}
	return c
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Banner prints the logo and what is about to be scanned.
func (c *Console) Banner(ext, root string) {
	fmt.Fprintf(c.w, "%s\n%s\n\n", c.title.Sprint(logo), c.good.Sprint(subtext))
	fmt.Fprintf(c.w, "Looking for %s files in %s\n", c.value.Sprint(ext), c.value.Sprint(root))
}

// Found reports how many files will be processed.
func (c *Console) Found(n int) {
	fmt.Fprintf(c.w, "Got %s files!\n", c.value.Sprint(n))
}

// Info prints a plain status line.
func (c *Console) Info(msg string) {
	fmt.Fprintln(c.w, c.info.Sprint(msg))
}

// Value prints a message followed by a highlighted value.
func (c *Console) Value(msg string, v any) {
	fmt.Fprintf(c.w, "%s %s\n", msg, c.value.Sprint(v))
}

// Success prints a green line.
func (c *Console) Success(msg string) {
	fmt.Fprintln(c.w, c.good.Sprint(msg))
}

// Error prints err in red.
func (c *Console) Error(err error) {
	fmt.Fprintln(c.w, c.failed.Sprint(err.Error()))
}

// Print writes preformatted text as is.
func (c *Console) Print(s string) {
	fmt.Fprintln(c.w, s)
}
