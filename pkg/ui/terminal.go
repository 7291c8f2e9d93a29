package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ASCII logo for the application
const ASCIILogo = `
    *        .   ___  ___  ___  ___     .        *
      .   *     / _ \| _ \/ _ \|   \  wall    .
    .          | (_) |  _/ (_) | |) |     *
       *    .   \__,_|_|  \___/|___/  .        .
`

const (
	codeCyan    = "\033[36m%s\033[0m"
	codeYellow  = "\033[33m%s\033[0m"
	codeRed     = "\033[31m%s\033[0m"
	codeGreen   = "\033[32m%s\033[0m"
	codeMagenta = "\033[35m%s\033[0m"
)

// Console writes human facing status lines
type Console struct {
	out   io.Writer
	color bool
	quiet bool
}

// NewConsole creates a console on out. Colors are enabled only when out is
// a terminal and NO_COLOR is unset.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out, color: isTerminal(out) && os.Getenv("NO_COLOR") == ""}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// SetColor forces colors on or off
func (c *Console) SetColor(enabled bool) {
	c.color = enabled
}

// SetQuiet suppresses decorative output (logo, info, highlight)
func (c *Console) SetQuiet(quiet bool) {
	c.quiet = quiet
}

func (c *Console) paint(code, text string) string {
	if !c.color {
		return text
	}
	return fmt.Sprintf(code, text)
}

// PrintLogo prints the ASCII logo
func (c *Console) PrintLogo() {
	if c.quiet {
		return
	}
	fmt.Fprint(c.out, c.paint(codeCyan, ASCIILogo))
}

// PrintError prints an error message in red
func (c *Console) PrintError(msg string, args ...interface{}) {
	if len(args) > 0 {
		msg = msg + ": " + fmt.Sprintf("%v", args[0])
	}
	fmt.Fprintln(c.out, c.paint(codeRed, msg))
}

// PrintSuccess prints a success message in green
func (c *Console) PrintSuccess(msg string) {
	fmt.Fprintln(c.out, c.paint(codeGreen, msg))
}

// PrintWarning prints a warning message in yellow
func (c *Console) PrintWarning(msg string) {
	fmt.Fprintln(c.out, c.paint(codeYellow, msg))
}

// PrintInfo prints a label/value pair
func (c *Console) PrintInfo(label, value string) {
	if c.quiet {
		return
	}
	fmt.Fprintf(c.out, "%s: %s\n", c.paint(codeCyan, label), c.paint(codeYellow, value))
}

// PrintHighlight prints a highlighted message in magenta
func (c *Console) PrintHighlight(msg string) {
	if c.quiet {
		return
	}
	fmt.Fprintln(c.out, c.paint(codeMagenta, msg))
}

// Println prints text unchanged followed by a newline
func (c *Console) Println(text string) {
	fmt.Fprintln(c.out, text)
}

// Puts prints text, adding a newline only when it does not already end with one
func (c *Console) Puts(text string) {
	if strings.HasSuffix(text, "\n") {
		fmt.Fprint(c.out, text)
		return
	}
	fmt.Fprintln(c.out, text)
}
