// Package tui is the interactive result browser behind --browse.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, nil
	case tea.KeyMsg:
		if key.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}

		// typed letters belong to the filter while it is open
		if b.state == listState && b.listC.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case b.state == listState && key.Matches(msg, b.keymap.open):
			b.open()
			return b, nil
		case b.state == detailState && key.Matches(msg, b.keymap.back):
			b.setState(listState)
			return b, nil
		}
	}

	var cmd tea.Cmd
	switch b.state {
	case detailState:
		b.detailC, cmd = b.detailC.Update(msg)
	default:
		b.listC, cmd = b.listC.Update(msg)
	}

	return b, cmd
}
