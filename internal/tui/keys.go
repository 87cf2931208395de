package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/linetype/internal/session"
)

type keyMap struct {
	Erase key.Binding
	Quit  key.Binding
	Retry key.Binding
	Exit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Erase: key.NewBinding(key.WithKeys("backspace", "delete"), key.WithHelp("backspace", "erase")),
		Quit:  key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
		Retry: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "try again")),
		Exit:  key.NewBinding(key.WithKeys("q"), key.WithHelp("any key", "exit")),
	}
}

func (k keyMap) typingHelp() []key.Binding {
	return []key.Binding{k.Erase, k.Quit}
}

func (k keyMap) resultHelp() []key.Binding {
	return []key.Binding{k.Retry, k.Exit}
}

// keyEvents translates a Bubble Tea key message into session key events.
func keyEvents(msg tea.KeyMsg, keys keyMap) []session.KeyEvent {
	switch {
	case key.Matches(msg, keys.Erase):
		return []session.KeyEvent{session.BackspaceKey()}
	case msg.Type == tea.KeySpace:
		return []session.KeyEvent{session.RuneKey(' ')}
	case msg.Type == tea.KeyRunes:
		out := make([]session.KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			out = append(out, session.RuneKey(r))
		}
		return out
	default:
		return []session.KeyEvent{{Kind: session.KeyOther}}
	}
}
