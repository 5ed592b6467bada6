// Package style provides a functional API for composing and applying lipgloss styles.
package style

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/fexp-cli/fexp/color"
)

// SetOutput detects the color profile from w instead of stdout.
// Writers that are not terminals get plain text.
func SetOutput(w io.Writer) {
	lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(w))
}

// New returns an empty lipgloss.Style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored initializes a new style with the specified foreground and background colors.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a rendering function that applies the foreground color to a string.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

// Title renders a padded heading tag.
var Title = func(s string) string {
	return Colored(color.New("230"), color.New("62")).Padding(0, 1).Render(s)
}

// Banner frames a block of text in a rounded border.
func Banner(s string) string {
	return New().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color.Border).
		Padding(0, 2).
		Render(s)
}
