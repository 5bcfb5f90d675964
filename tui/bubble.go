// Package tui is the interactive result browser behind --browse.
package tui

import (
	"github.com/anisan-cli/anikit/style"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// statefulBubble switches between the result list and the detail pane of one item.
type statefulBubble struct {
	state  state
	keymap *statefulKeymap

	listC   list.Model
	detailC viewport.Model
	helpC   help.Model

	opened mo.Option[Item]

	width, height int
}

func newBubble(title string, items []Item) *statefulBubble {
	keymap := newStatefulKeymap()

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(style.HiPurple).BorderForeground(style.HiPurple)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle.Faint(true)

	listC := list.New(lo.Map(items, func(item Item, _ int) list.Item {
		return item
	}), delegate, 0, 0)
	listC.Title = title
	listC.Styles.Title = style.New().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 1)
	listC.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keymap.open}
	}

	return &statefulBubble{
		state:   listState,
		keymap:  keymap,
		listC:   listC,
		detailC: viewport.New(0, 0),
		helpC:   help.New(),
		opened:  mo.None[Item](),
	}
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) resize(width, height int) {
	b.width, b.height = width, height

	x, y := paddingStyle.GetFrameSize()
	b.listC.SetSize(width-x, height-y)

	b.detailC.Width = width - x
	b.detailC.Height = max(height-y-detailChrome, 1)
	b.refreshDetail()
}

func (b *statefulBubble) refreshDetail() {
	item, ok := b.opened.Get()
	if !ok {
		return
	}

	b.detailC.SetContent(item.render(max(b.detailC.Width, 20)))
}

// open shows the selected item in the detail pane.
func (b *statefulBubble) open() {
	item, ok := b.listC.SelectedItem().(Item)
	if !ok {
		return
	}

	b.opened = mo.Some(item)
	b.detailC.GotoTop()
	b.refreshDetail()
	b.setState(detailState)
}

// Init implements tea.Model.
func (b *statefulBubble) Init() tea.Cmd {
	return nil
}
