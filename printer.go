package clix

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	warnColor  = color.New(color.FgYellow, color.Bold)
	errorColor = color.New(color.FgRed, color.Bold)
)

// Printer writes user-visible diagnostics, STDERR by default. Output meant
// for other programs goes through [App.Output] instead.
type Printer struct {
	out io.Writer
}

func NewPrinter() *Printer {
	return &Printer{out: os.Stderr}
}

func (p *Printer) Redirect(writer io.Writer) {
	p.out = writer
}

func (p *Printer) Print(msg ...any) {
	_, _ = fmt.Fprint(p.out, msg...)
}

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) Println(msg ...any) {
	_, _ = fmt.Fprintln(p.out, msg...)
}

// Warnf prints a labeled warning line.
func (p *Printer) Warnf(format string, args ...any) {
	p.Println(warnColor.Sprint("[warn]") + "  " + fmt.Sprintf(format, args...))
}

// Errorf prints a labeled error line.
func (p *Printer) Errorf(format string, args ...any) {
	p.Println(errorColor.Sprint("[ERROR]") + " " + fmt.Sprintf(format, args...))
}

// Width reports the terminal width of the underlying writer, or 80 columns
// when the writer is not a terminal.
func (p *Printer) Width() int {
	if f, ok := p.out.(*os.File); ok {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			return cols
		}
	}
	return 80
}
