package console

import (
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// clearSequence moves the cursor home and erases the screen.
const clearSequence = "\x1b[H\x1b[2J"

// Clearer wipes whatever the player currently sees.
type Clearer interface {
	Clear()
}

// TerminalClearer writes the ANSI clear sequence to Out.
type TerminalClearer struct {
	Out io.Writer
}

func (c TerminalClearer) Clear() { _, _ = io.WriteString(c.Out, clearSequence) }

// NopClearer is used when output is not a terminal.
type NopClearer struct{}

func (NopClearer) Clear() {}

// Terminal returns an ANSI-capable writer for f and a matching Clearer.
// Pipes and files get the raw file and a NopClearer so transcripts stay clean.
func Terminal(f *os.File) (io.Writer, Clearer) {
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		w := colorable.NewColorable(f)
		return w, TerminalClearer{Out: w}
	}
	return f, NopClearer{}
}
