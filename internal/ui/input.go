package ui

import (
	"github.com/atomicstack/dirprompt/internal/logging/events"
	"github.com/atomicstack/dirprompt/internal/ui/keys"
	"github.com/atomicstack/dirprompt/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.done {
		return nil
	}
	m.firstRender = false
	for _, ev := range keyEvents(keyMsg) {
		if cmd := m.dispatchKey(ev); cmd != nil || m.done {
			return cmd
		}
	}
	return nil
}

// dispatchKey classifies ev against the mode in effect when it arrives.
func (m *Model) dispatchKey(ev keys.Event) tea.Cmd {
	mode := m.session.Mode
	action := m.keys.Classify(ev, mode)
	events.UI.Key(ev.Name, action.String(), mode.String())

	switch action {
	case keys.Abort:
		return m.abort()
	case keys.Commit:
		return m.commit()
	case keys.Up:
		m.moveCursor(m.session.MoveUp)
	case keys.Down:
		m.moveCursor(m.session.MoveDown)
	case keys.SearchStart:
		m.session.StartSearch()
		events.Search.Start()
	case keys.SearchChar:
		m.appendToSearch(ev.Value)
	case keys.SearchBackspace:
		m.removeSearchRune()
	}
	return nil
}

// keyEvents translates a Bubble Tea key press into the prompt's key events.
// Runes read together arrive in one message and are split into one event
// each, in order. Alt-modified and pasted runes carry no printable value.
func keyEvents(msg tea.KeyMsg) []keys.Event {
	if msg.Type != tea.KeyRunes || msg.Alt || msg.Paste || len(msg.Runes) <= 1 {
		return []keys.Event{keyEvent(msg)}
	}
	evs := make([]keys.Event, 0, len(msg.Runes))
	for _, r := range msg.Runes {
		evs = append(evs, keys.Event{Name: string(r), Value: string(r)})
	}
	return evs
}

func keyEvent(msg tea.KeyMsg) keys.Event {
	ev := keys.Event{Name: msg.String(), Enter: msg.Type == tea.KeyEnter}
	if msg.Type == tea.KeyRunes && !msg.Alt && !msg.Paste {
		ev.Value = string(msg.Runes)
	}
	return ev
}

func (m *Model) moveCursor(move func() bool) {
	if !move() {
		return
	}
	events.UI.Cursor(m.session.Depth, m.session.Cursor)
	m.syncViewport()
}

func (m *Model) appendToSearch(text string) {
	if text == "" {
		return
	}
	m.session.AppendSearch(text)
	events.Search.Append(m.session.Term)
	events.Search.Match(m.session.Term, state.PrefixIndex(m.session.List, m.session.Term))
	m.syncViewport()
}

func (m *Model) removeSearchRune() {
	if !m.session.BackspaceSearch() {
		events.Search.End("empty")
		return
	}
	events.Search.Backspace(m.session.Term)
	m.syncViewport()
}
