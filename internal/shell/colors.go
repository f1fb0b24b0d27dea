package shell

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Colors formats the parts of shell output.
type Colors struct {
	Key   func(string, ...any) string
	Value func(string, ...any) string
	Muted func(string, ...any) string
	Error func(string, ...any) string
}

// NewColors returns formatters that emit ANSI colors only when enabled.
func NewColors(enabled bool) *Colors {
	build := func(attrs ...color.Attribute) func(string, ...any) string {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}

		return c.SprintfFunc()
	}

	return &Colors{
		Key:   build(color.FgCyan, color.Bold),
		Value: build(color.FgGreen),
		Muted: build(color.FgHiBlack),
		Error: build(color.FgRed),
	}
}

// ColorEnabled resolves a color mode for output w. In auto mode colors are on
// only when w is a terminal.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
