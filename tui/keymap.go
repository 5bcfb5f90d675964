// Package tui is the interactive result browser behind --browse.
package tui

import (
	"github.com/anisan-cli/anikit/style"
	"github.com/charmbracelet/bubbles/key"
)

// statefulKeymap holds the bindings and reports the ones that apply to the current state.
type statefulKeymap struct {
	state state

	quit, forceQuit,
	open, back,
	up, down key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp(style.Fg(style.Purple)("enter"), style.Fg(style.Purple)("details")),
		),
		back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k *statefulKeymap) ShortHelp() []key.Binding {
	switch k.state {
	case detailState:
		return []key.Binding{k.back, k.up, k.down, k.quit}
	default:
		return []key.Binding{k.open, k.quit}
	}
}

// FullHelp implements help.KeyMap.
func (k *statefulKeymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.forceQuit}}
}
