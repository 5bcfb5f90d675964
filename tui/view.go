// Package tui is the interactive result browser behind --browse.
package tui

import (
	"strings"

	"github.com/anisan-cli/anikit/style"
	"github.com/charmbracelet/lipgloss"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

// detailChrome is the number of lines the detail pane spends outside the viewport.
const detailChrome = 4

// View implements tea.Model.
func (b *statefulBubble) View() string {
	switch b.state {
	case detailState:
		return b.viewDetail()
	default:
		return paddingStyle.Render(b.listC.View())
	}
}

func (b *statefulBubble) viewDetail() string {
	item := b.opened.OrEmpty()

	lines := []string{
		style.Title(item.Heading),
		"",
		b.detailC.View(),
		"",
		b.helpC.View(b.keymap),
	}

	return paddingStyle.Render(strings.Join(lines, "\n"))
}
