// Package keys classifies raw key events into prompt actions. Classification
// depends only on the event and the current mode.
package keys

import (
	"unicode"
	"unicode/utf8"

	"github.com/atomicstack/dirprompt/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
)

// Action is the result of classifying a key event.
type Action int

const (
	Other Action = iota
	Up
	Down
	SearchStart
	SearchChar
	SearchBackspace
	Commit
	Abort
)

func (a Action) String() string {
	switch a {
	case Up:
		return "up"
	case Down:
		return "down"
	case SearchStart:
		return "search-start"
	case SearchChar:
		return "search-char"
	case SearchBackspace:
		return "search-backspace"
	case Commit:
		return "commit"
	case Abort:
		return "abort"
	default:
		return "other"
	}
}

// Event is a raw key press.
type Event struct {
	Name  string // symbolic name, e.g. "up", "backspace", "k"
	Value string // printable value, empty for non-printing keys
	Enter bool
}

// String lets key.Matches compare events against bindings.
func (e Event) String() string { return e.Name }

// KeyMap holds the bindings the prompt reacts to.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	UpAlt     key.Binding
	DownAlt   key.Binding
	Search    key.Binding
	Backspace key.Binding
	Commit    key.Binding
	Abort     key.Binding
}

// DefaultKeyMap is used when nothing else is configured.
var DefaultKeyMap = KeyMap{
	Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/k", "move up")),
	Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓/j", "move down")),
	UpAlt:     key.NewBinding(key.WithKeys("k")),
	DownAlt:   key.NewBinding(key.WithKeys("j")),
	Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search this directory")),
	Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "edit search")),
	Commit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open / select")),
	Abort:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "cancel")),
}

// Help returns the bindings shown in the footer, in display order.
func (k KeyMap) Help() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Search, k.Backspace, k.Commit, k.Abort}
}

// Classify maps ev to an action for the given mode.
func Classify(ev Event, mode state.Mode) Action {
	return DefaultKeyMap.Classify(ev, mode)
}

// Classify maps ev to an action for the given mode. The mnemonic j/k keys
// only navigate while browsing so they can be typed into a search term.
func (k KeyMap) Classify(ev Event, mode state.Mode) Action {
	browsing := mode == state.ModeBrowsing
	switch {
	case key.Matches(ev, k.Abort):
		return Abort
	case ev.Enter || key.Matches(ev, k.Commit):
		return Commit
	case key.Matches(ev, k.Up), browsing && key.Matches(ev, k.UpAlt):
		return Up
	case key.Matches(ev, k.Down), browsing && key.Matches(ev, k.DownAlt):
		return Down
	}
	if browsing {
		if ev.Value == "/" || key.Matches(ev, k.Search) {
			return SearchStart
		}
		return Other
	}
	if key.Matches(ev, k.Backspace) {
		return SearchBackspace
	}
	if IsSearchRune(ev.Value) {
		return SearchChar
	}
	return Other
}

// IsSearchRune reports whether value is a single word character, dot or
// hyphen. Word characters are any Unicode letter or digit plus underscore,
// not only ASCII, so accented names can be searched.
func IsSearchRune(value string) bool {
	if utf8.RuneCountInString(value) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(value)
	switch {
	case r == '.', r == '-', r == '_':
		return true
	default:
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}
}
