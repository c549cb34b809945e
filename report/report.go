// Package report renders goshape issues for terminals.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	goshape "github.com/reoring/goshape"
)

// ColorMode selects when output is colored.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // Color when writing to a terminal.
	ColorAlways                  // Always emit ANSI colors.
	ColorNever                   // Plain text.
)

// ParseColorMode parses "auto", "always" or "never" (empty means auto).
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("report: unknown color mode %q", s)
}

// Printer writes per-document validation results.
type Printer struct {
	w       io.Writer
	ok      *color.Color
	fail    *color.Color
	pointer *color.Color
	code    *color.Color
}

// New returns a Printer writing to w.
func New(w io.Writer, mode ColorMode) *Printer {
	p := &Printer{
		w:       w,
		ok:      color.New(color.FgGreen, color.Bold),
		fail:    color.New(color.FgRed, color.Bold),
		pointer: color.New(color.FgCyan),
		code:    color.New(color.Faint),
	}
	enabled := mode == ColorAlways || (mode == ColorAuto && isTerminal(w))
	for _, c := range []*color.Color{p.ok, p.fail, p.pointer, p.code} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Result prints the outcome of checking the document called name.
func (p *Printer) Result(name string, iss goshape.Issues) error {
	if len(iss) == 0 {
		_, err := fmt.Fprintf(p.w, "%s: %s\n", name, p.ok.Sprint("ok"))
		return err
	}
	noun := "issues"
	if len(iss) == 1 {
		noun = "issue"
	}
	if _, err := fmt.Fprintf(p.w, "%s: %s\n", name, p.fail.Sprintf("%d %s", len(iss), noun)); err != nil {
		return err
	}
	width := 0
	for _, is := range iss {
		width = max(width, len(is.Path))
	}
	for _, is := range iss {
		pad := strings.Repeat(" ", width-len(is.Path))
		if _, err := fmt.Fprintf(p.w, "  %s%s  %s %s\n", p.pointer.Sprint(is.Path), pad, is.Message, p.code.Sprintf("(%s)", is.Code)); err != nil {
			return err
		}
	}
	return nil
}

// Error prints a document that could not be checked at all.
func (p *Printer) Error(name string, err error) error {
	_, werr := fmt.Fprintf(p.w, "%s: %s %v\n", name, p.fail.Sprint("error:"), err)
	return werr
}
