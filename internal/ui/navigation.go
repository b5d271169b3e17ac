package ui

import (
	"github.com/atomicstack/dirprompt/internal/logging/events"
	"github.com/atomicstack/dirprompt/internal/nav"
	tea "github.com/charmbracelet/bubbletea"
)

// commit closes any open search and routes the selected choice. A traversal
// replaces the list in place; reaching a file or failing to list a directory
// ends the program.
func (m *Model) commit() tea.Cmd {
	if m.session.Searching() {
		m.session.EndSearch()
		events.Search.End("commit")
	}
	selected, ok := m.session.Selected()
	if !ok {
		return nil
	}
	res, err := m.router.Submit(selected)
	if err != nil {
		m.finish("", err)
		return tea.Quit
	}
	switch res.Kind {
	case nav.Traversal:
		m.session.Reset(res.List, res.Depth)
		m.syncViewport()
	case nav.Done:
		m.finish(res.Relative, nil)
		return tea.Quit
	}
	return nil
}

func (m *Model) abort() tea.Cmd {
	if m.session.Searching() {
		m.session.EndSearch()
		events.Search.End("abort")
	}
	m.finish("", ErrAborted)
	return tea.Quit
}

func (m *Model) finish(answer string, err error) {
	m.done = true
	m.answer = answer
	m.err = err
}
