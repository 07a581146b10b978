package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrosell/deskgate/shell"
)

func enterKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

func TestModel_StartsOnConnectPage(t *testing.T) {
	m := New()

	if m.shell.ActiveSlot() != shell.SlotConnect {
		t.Errorf("ActiveSlot() = %v, want %v", m.shell.ActiveSlot(), shell.SlotConnect)
	}

	view := m.View()
	if !strings.Contains(view, "Connect") {
		t.Errorf("View() should render the connect page, got:\n%s", view)
	}
}

func TestModel_EnterNavigatesBetweenPages(t *testing.T) {
	m := New()

	m = update(t, m, enterKey())
	if m.shell.ActiveSlot() != shell.SlotLogin {
		t.Errorf("ActiveSlot() after enter = %v, want %v", m.shell.ActiveSlot(), shell.SlotLogin)
	}

	m = update(t, m, enterKey())
	if m.shell.ActiveSlot() != shell.SlotConnect {
		t.Errorf("ActiveSlot() after second enter = %v, want %v", m.shell.ActiveSlot(), shell.SlotConnect)
	}
}

func TestModel_LoginViewShowsDisconnectAction(t *testing.T) {
	m := New()
	m = update(t, m, enterKey())

	view := m.View()
	if !strings.Contains(view, "Login") {
		t.Errorf("View() should render the login page, got:\n%s", view)
	}
	if !strings.Contains(view, "disconnect") {
		t.Errorf("View() should hint the disconnect action, got:\n%s", view)
	}
}

func TestModel_BackendKeyUpdatesMessage(t *testing.T) {
	m := New()

	if !strings.Contains(m.View(), "Hello from Backend") {
		t.Error("View() should render the initial backend message")
	}

	m = update(t, m, runeKey('b'))

	if !strings.Contains(m.View(), "Button clicked from QML!") {
		t.Error("View() should render the updated backend message")
	}
}

func TestModel_QuitKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", runeKey('q')},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			_, cmd := m.Update(tt.msg)
			if cmd == nil {
				t.Fatal("quit key should produce a command")
			}
			if msg := cmd(); msg != (tea.QuitMsg{}) {
				t.Errorf("cmd() = %v, want tea.QuitMsg", msg)
			}
		})
	}
}

func TestModel_WindowSizeIsStored(t *testing.T) {
	m := New()
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	if m.width != 80 || m.height != 24 {
		t.Errorf("size = %dx%d, want 80x24", m.width, m.height)
	}
}
