// Package tui provides the terminal rendering layer for Deskgate,
// used when no display server is available. It drives the same
// navigation shell and demo backend as the GTK window: key presses are
// forwarded to the shell's pages, and the view re-renders from the
// shell's active slot on every frame.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrosell/deskgate/backend"
	"github.com/mrosell/deskgate/common"
	"github.com/mrosell/deskgate/shell"
)

// keyMap defines the key bindings for the terminal mode.
type keyMap struct {
	Activate key.Binding
	Backend  key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Activate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "activate")),
		Backend:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "ping backend")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model is the Bubble Tea model for the terminal mode.
type Model struct {
	shell   *shell.Shell
	backend *backend.Backend
	keys    keyMap
	width   int
	height  int
}

// New creates the terminal model with a fresh shell and backend.
func New() Model {
	return Model{
		shell:   shell.New(),
		backend: backend.New(),
		keys:    newKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. The Activate binding plays the role of
// the page's single control: it fires the active page's event exactly
// like a button click in the GTK window.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Activate):
			switch m.shell.ActiveSlot() {
			case shell.SlotConnect:
				m.shell.ConnectPage().RequestConnect()
			case shell.SlotLogin:
				m.shell.LoginPage().RequestDisconnect()
			}
			return m, nil

		case key.Matches(msg, m.keys.Backend):
			m.backend.HandleActivation()
			return m, nil
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	page := m.shell.ActivePage()

	action := "connect"
	subtitle := "Not connected"
	if m.shell.ActiveSlot() == shell.SlotLogin {
		action = "disconnect"
		subtitle = "Connected"
	}

	s := titleStyle.Render(common.AppName) + "\n\n"
	s += pageTitleStyle.Render(page.Title()) + "\n"
	s += subtitleStyle.Render(subtitle) + "\n\n"
	s += messageStyle.Render(m.backend.Message()) + "\n\n"
	s += helpStyle.Render("enter "+action+" · b ping backend · q quit") + "\n"

	return s
}

// Run starts the terminal mode and blocks until it exits.
func Run() error {
	common.LogInfo("Starting terminal mode")

	p := tea.NewProgram(New(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
