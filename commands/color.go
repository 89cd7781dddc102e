package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/josephlewis42/lsh/core/config"
	"github.com/josephlewis42/lsh/core/vio"
	"golang.org/x/term"
)

var (
	ColorBold    = forceColor(color.Bold)
	ColorBoldRed = forceColor(color.FgRed, color.Bold)
)

// forceColor creates a color that ignores the package level color.NoColor,
// whether to color is decided per writer by ColorPrinter.
func forceColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// ColorPrinter colors output according to the configured color mode.
type ColorPrinter struct {
	mode string
}

// NewColorPrinter creates a printer for one of the config.Color* modes.
func NewColorPrinter(mode string) *ColorPrinter {
	return &ColorPrinter{mode: mode}
}

// ShouldColor reports whether text written to w gets colored. In auto mode
// only terminals are colored.
func (c *ColorPrinter) ShouldColor(w io.Writer) bool {
	switch c.mode {
	case config.ColorNever:
		return false
	case config.ColorAlways:
		return true
	default:
		fd, ok := vio.File(w)
		return ok && term.IsTerminal(int(fd.Fd()))
	}
}

// Sprint formats a like fmt.Sprint, colored if w should be colored.
func (c *ColorPrinter) Sprint(w io.Writer, style *color.Color, a ...interface{}) string {
	if c.ShouldColor(w) {
		return style.Sprint(a...)
	}
	return fmt.Sprint(a...)
}
