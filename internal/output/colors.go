package output

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorScheme defines the colors used for different elements in the
// output
type ColorScheme struct {
	ID        *color.Color
	Title     *color.Color
	Label     *color.Color
	Value     *color.Color
	Public    *color.Color
	Secret    *color.Color
	Success   *color.Color
	Error     *color.Color
	Timestamp *color.Color
}

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		ID:        color.New(color.FgCyan, color.Bold),
		Title:     color.New(color.Bold),
		Label:     color.New(color.FgYellow),
		Value:     color.New(color.FgWhite),
		Public:    color.New(color.FgGreen),
		Secret:    color.New(color.FgMagenta),
		Success:   color.New(color.FgGreen, color.Bold),
		Error:     color.New(color.FgRed, color.Bold),
		Timestamp: color.New(color.FgHiBlack),
	}
}

// NoColorScheme returns a color scheme with all colors disabled
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()
	scheme.ID.DisableColor()
	scheme.Title.DisableColor()
	scheme.Label.DisableColor()
	scheme.Value.DisableColor()
	scheme.Public.DisableColor()
	scheme.Secret.DisableColor()
	scheme.Success.DisableColor()
	scheme.Error.DisableColor()
	scheme.Timestamp.DisableColor()
	return scheme
}

// isTerminal reports whether stdout is attached to a terminal, so
// color can be disabled automatically when output is piped
func isTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
