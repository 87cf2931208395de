package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/linetype/internal/model"
	"github.com/verte-zerg/linetype/internal/session"
)

func newTestModel(lines ...string) *Model {
	now := time.Unix(0, 0)
	clock := func() time.Time {
		now = now.Add(500 * time.Millisecond)
		return now
	}
	s := session.New(lines, session.DefaultKeyPolicy(), clock)
	return NewModel(s, model.DefaultTheme(), zerolog.Nop())
}

func typeKeys(m *Model, text string) tea.Cmd {
	var cmd tea.Cmd
	for _, r := range text {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		if r == ' ' {
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		}
		_, cmd = m.Update(msg)
	}
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelCompletesSession(t *testing.T) {
	m := newTestModel("ab cd")
	if cmd := typeKeys(m, "ab cd"); cmd != nil {
		t.Fatalf("expected no command while typing")
	}
	if !m.Finished() {
		t.Fatalf("expected session to be finished")
	}
	metrics := m.Metrics()
	if metrics.Errors != 0 || metrics.TotalChars != 5 {
		t.Fatalf("unexpected metrics: %+v", metrics)
	}
	// The clock is read once on the first key and once on the last.
	if metrics.Elapsed != 500*time.Millisecond {
		t.Fatalf("expected 500ms elapsed, got %v", metrics.Elapsed)
	}
	view := m.View()
	for _, want := range []string{"Typing speed", "600.00", "characters per minute", retryPrompt} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestModelRetryOnEnter(t *testing.T) {
	m := newTestModel("ab")
	typeKeys(m, "ab")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !isQuit(cmd) {
		t.Fatalf("expected quit command")
	}
	if !m.Retry() {
		t.Fatalf("expected retry to be requested")
	}
}

func TestModelExitOnOtherKey(t *testing.T) {
	m := newTestModel("ab")
	typeKeys(m, "ab")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if !isQuit(cmd) {
		t.Fatalf("expected quit command")
	}
	if m.Retry() {
		t.Fatalf("expected no retry")
	}
}

func TestModelQuitWhileTyping(t *testing.T) {
	m := newTestModel("abc")
	typeKeys(m, "a")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Fatalf("expected quit command")
	}
	if m.Finished() || m.Retry() {
		t.Fatalf("expected unfinished session without retry")
	}
}

func TestModelRendersFault(t *testing.T) {
	m := newTestModel("abcd")
	typeKeys(m, "xbc")

	for col := 0; col < 3; col++ {
		if _, status := m.Grid().Cell(session.Position{Row: 0, Col: col}); status != session.Incorrect {
			t.Fatalf("cell %d: expected incorrect, got %s", col, status)
		}
	}
	if _, status := m.Grid().Cell(session.Position{Row: 0, Col: 3}); status != session.NextToType {
		t.Fatalf("expected next-to-type cell, got %s", status)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if _, status := m.Grid().Cell(session.Position{Row: 0, Col: 2}); status != session.NextToType {
		t.Fatalf("expected erased cell to be next, got %s", status)
	}
	if _, status := m.Grid().Cell(session.Position{Row: 0, Col: 3}); status != session.Untyped {
		t.Fatalf("expected old cursor cell to be untyped, got %s", status)
	}
}

func TestModelIgnoresUnknownKeys(t *testing.T) {
	m := newTestModel("ab")
	frames := m.Grid().Frames()
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.Grid().Frames() != frames {
		t.Fatalf("expected no redraw for ignored keys")
	}
	if m.session.State().Timer().Running() {
		t.Fatalf("expected timer not to start on ignored keys")
	}
}

func TestModelViewCentersWithSize(t *testing.T) {
	m := newTestModel("ab")
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[len(lines)-1], "Progress 0%") {
		t.Fatalf("expected footer on last line, got %q", lines[len(lines)-1])
	}
}

func TestKeyEvents(t *testing.T) {
	keys := defaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []session.KeyEvent
	}{
		{name: "rune", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, want: []session.KeyEvent{session.RuneKey('a')}},
		{name: "paste", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")}, want: []session.KeyEvent{session.RuneKey('h'), session.RuneKey('i')}},
		{name: "space", msg: tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, want: []session.KeyEvent{session.RuneKey(' ')}},
		{name: "backspace", msg: tea.KeyMsg{Type: tea.KeyBackspace}, want: []session.KeyEvent{session.BackspaceKey()}},
		{name: "other", msg: tea.KeyMsg{Type: tea.KeyF1}, want: []session.KeyEvent{{Kind: session.KeyOther}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := keyEvents(tt.msg, keys)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d events, got %d", len(tt.want), len(got))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("event %d: expected %+v, got %+v", i, tt.want[i], got[i])
				}
			}
		})
	}
}
