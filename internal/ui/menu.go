package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuItem is one entry in the interactive root menu.
type MenuItem struct {
	Key   string
	Label string
	Desc  string
}

func (m MenuItem) Title() string       { return m.Label }
func (m MenuItem) Description() string { return m.Desc }
func (m MenuItem) FilterValue() string { return m.Label }

type menuModel struct {
	list      list.Model
	choice    string
	cancelled bool
}

func newMenuModel(title string, items []MenuItem) menuModel {
	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = it
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(lipgloss.Color("#9b59b6"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(lipgloss.Color("#95a5a6"))

	l := list.New(listItems, delegate, 60, 2*len(items)+6)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = TitleStyle
	return menuModel{list: l}
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			if item, ok := m.list.SelectedItem().(MenuItem); ok {
				m.choice = item.Key
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m menuModel) View() string {
	if m.cancelled || m.choice != "" {
		return ""
	}
	help := HelpStyle.Render("\n  ↑/↓: navigate • enter: select • q: quit")
	return "\n" + m.list.View() + help
}

// Menu runs a full-screen selection menu and returns the chosen item key.
// An empty key means the user quit the menu.
func Menu(title string, items []MenuItem) (string, error) {
	p := tea.NewProgram(newMenuModel(title, items))
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	m := final.(menuModel)
	if m.cancelled {
		return "", nil
	}
	return m.choice, nil
}
