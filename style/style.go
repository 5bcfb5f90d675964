// Package style wraps lipgloss with the small set of render helpers the CLI prints with.
package style

import "github.com/charmbracelet/lipgloss"

// ANSI palette. Terminals map these to their own theme, so output stays readable on light and dark backgrounds.
var (
	Red      = lipgloss.Color("1")
	Green    = lipgloss.Color("2")
	Yellow   = lipgloss.Color("3")
	Blue     = lipgloss.Color("4")
	Purple   = lipgloss.Color("5")
	Cyan     = lipgloss.Color("6")
	HiRed    = lipgloss.Color("9")
	HiPurple = lipgloss.Color("13")
	Gray     = lipgloss.Color("#808080")
)

// New returns an empty style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a renderer painting text in c.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

// Tag renders s as a padded block with the given colours.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(fg).Background(bg).Padding(0, 1).Render(s) }
}

var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

// Title renders a section banner.
var Title = Tag(lipgloss.Color("230"), lipgloss.Color("62"))

// ErrorTitle renders a failure banner.
var ErrorTitle = Tag(lipgloss.Color("230"), Red)

// Hex renders s in the colour given as "#rrggbb", leaving it plain when hex is empty.
// AniList reports cover colours this way.
func Hex(hex string) func(string) string {
	if hex == "" {
		return func(s string) string { return s }
	}
	return Fg(lipgloss.Color(hex))
}
