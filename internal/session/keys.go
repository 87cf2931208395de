package session

import "strings"

// DefaultSymbols is the punctuation admitted besides ASCII letters and digits.
const DefaultSymbols = "!@#$%^&*()_+ '\",.:;"

// KeyKind classifies a key event.
type KeyKind int

const (
	// KeyOther is any key the session does not type with.
	KeyOther KeyKind = iota
	// KeyRune is a printable character.
	KeyRune
	// KeyBackspace erases the previous cell.
	KeyBackspace
)

// KeyEvent is a single key press delivered to the session.
type KeyEvent struct {
	Kind KeyKind
	Rune rune
}

// RuneKey returns the event for typing r.
func RuneKey(r rune) KeyEvent {
	return KeyEvent{Kind: KeyRune, Rune: r}
}

// BackspaceKey returns the backspace event.
func BackspaceKey() KeyEvent {
	return KeyEvent{Kind: KeyBackspace}
}

// KeyPolicy decides which key events count as typing or editing keys.
type KeyPolicy struct {
	Symbols string
}

// DefaultKeyPolicy admits letters, digits, DefaultSymbols and backspace.
func DefaultKeyPolicy() KeyPolicy {
	return KeyPolicy{Symbols: DefaultSymbols}
}

// Admits reports whether ev is a typing or editing key.
func (p KeyPolicy) Admits(ev KeyEvent) bool {
	switch ev.Kind {
	case KeyBackspace:
		return true
	case KeyRune:
		r := ev.Rune
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9':
			return true
		}
		return strings.ContainsRune(p.Symbols, r)
	default:
		return false
	}
}
