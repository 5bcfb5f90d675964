// Package tui is the interactive result browser behind --browse.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
)

// Browse shows items in a filterable list with a detail pane and returns the item opened last, if any.
func Browse(title string, items []Item) (mo.Option[Item], error) {
	if len(items) == 0 {
		return mo.None[Item](), nil
	}

	final, err := tea.NewProgram(newBubble(title, items), tea.WithAltScreen()).Run()
	if err != nil {
		return mo.None[Item](), err
	}

	b, ok := final.(*statefulBubble)
	if !ok {
		return mo.None[Item](), fmt.Errorf("unexpected model %T", final)
	}

	return b.opened, nil
}
