package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/dirprompt/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyEvent(t *testing.T) {
	tests := []struct {
		name      string
		msg       tea.KeyMsg
		wantName  string
		wantValue string
		wantEnter bool
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, "enter", "", true},
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, "x", "x", false},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, "alt+x", "", false},
		{"arrow", tea.KeyMsg{Type: tea.KeyUp}, "up", "", false},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, "backspace", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := keyEvent(tt.msg)
			if ev.Name != tt.wantName || ev.Value != tt.wantValue || ev.Enter != tt.wantEnter {
				t.Fatalf("expected {%q %q %v}, got %#v", tt.wantName, tt.wantValue, tt.wantEnter, ev)
			}
		})
	}
}

func TestArrowKeysWrap(t *testing.T) {
	m, _ := newTestModel(t, Options{}, "/root/a.txt", "/root/b.txt", "/root/c.txt")
	h := NewHarness(m)

	h.Press(tea.KeyUp)
	if got := h.Model().Session().Cursor; got != 2 {
		t.Fatalf("expected cursor to wrap to 2, got %d", got)
	}
	h.Press(tea.KeyDown)
	if got := h.Model().Session().Cursor; got != 0 {
		t.Fatalf("expected cursor to wrap to 0, got %d", got)
	}
	for i := 0; i < 7; i++ {
		h.Press(tea.KeyDown)
	}
	if got := h.Model().Session().Cursor; got != 7%3 {
		t.Fatalf("expected cursor %d, got %d", 7%3, got)
	}
}

func TestJKOnlyNavigateWhileBrowsing(t *testing.T) {
	m, _ := newTestModel(t, Options{}, "/root/a.txt", "/root/b.txt", "/root/j.txt", "/root/k.txt")
	h := NewHarness(m)

	h.Type("j")
	if got := h.Model().Session().Cursor; got != 1 {
		t.Fatalf("expected j to move down, got cursor %d", got)
	}
	h.Type("k")
	if got := h.Model().Session().Cursor; got != 0 {
		t.Fatalf("expected k to move up, got cursor %d", got)
	}

	h.Type("/k")
	s := h.Model().Session()
	if s.Mode != state.ModeSearching || s.Term != "k" {
		t.Fatalf("expected search term k, got mode %s term %q", s.Mode, s.Term)
	}
	if s.Cursor != 3 {
		t.Fatalf("expected cursor on k.txt, got %d", s.Cursor)
	}
}

func TestSearchSelectsFirstPrefixMatch(t *testing.T) {
	m, _ := newTestModel(t, Options{}, "/root/apple", "/root/avocado", "/root/banana")
	h := NewHarness(m)

	h.Type("/b")
	if got := h.Model().Session().Cursor; got != 2 {
		t.Fatalf("expected banana selected, got %d", got)
	}
	h.Press(tea.KeyBackspace)
	h.Type("/A")
	if got := h.Model().Session().Cursor; got != 0 {
		t.Fatalf("expected apple selected, got %d", got)
	}
	h.Type("v")
	if got := h.Model().Session().Cursor; got != 1 {
		t.Fatalf("expected avocado selected, got %d", got)
	}
}

func TestSearchWithoutMatchKeepsCursor(t *testing.T) {
	m, _ := newTestModel(t, Options{}, "/root/apple", "/root/banana")
	h := NewHarness(m)

	h.Press(tea.KeyDown)
	h.Type("/z")
	if got := h.Model().Session().Cursor; got != 1 {
		t.Fatalf("expected cursor to stay on 1, got %d", got)
	}
}

func TestBackspaceToEmptyEndsSearch(t *testing.T) {
	m, _ := newTestModel(t, Options{}, "/root/apple", "/root/banana")
	h := NewHarness(m)

	h.Type("/b")
	if !strings.Contains(h.View(), "Search: b") {
		t.Fatalf("expected search line, view =\n%s", h.View())
	}
	h.Press(tea.KeyBackspace)
	s := h.Model().Session()
	if s.Mode != state.ModeBrowsing || s.Term != "" {
		t.Fatalf("expected browsing with empty term, got %s %q", s.Mode, s.Term)
	}
	if s.Cursor != 1 {
		t.Fatalf("expected cursor to stay on banana, got %d", s.Cursor)
	}
	view := h.View()
	if strings.Contains(view, "Search:") {
		t.Fatalf("expected no search line, view =\n%s", view)
	}
	if !strings.Contains(view, searchIdle) {
		t.Fatalf("expected idle search hint, view =\n%s", view)
	}
}

func TestSlashWhileSearchingIsIgnored(t *testing.T) {
	m, _ := newTestModel(t, Options{}, "/root/apple")
	h := NewHarness(m)

	h.Type("/a/")
	if got := h.Model().Session().Term; got != "a" {
		t.Fatalf("expected term a, got %q", got)
	}
}

func TestSearchAcceptsWordDotHyphen(t *testing.T) {
	m, _ := newTestModel(t, Options{}, "/root/my-file_1.txt", "/root/other")
	h := NewHarness(m)

	h.Type("/my-file_1.t")
	s := h.Model().Session()
	if s.Term != "my-file_1.t" || s.Cursor != 0 {
		t.Fatalf("expected full term and first entry, got %q at %d", s.Term, s.Cursor)
	}
	h.Type(" ")
	if got := h.Model().Session().Term; got != "my-file_1.t" {
		t.Fatalf("expected space to be ignored, got %q", got)
	}
}

func TestArrowKeysMoveWhileSearching(t *testing.T) {
	m, _ := newTestModel(t, Options{}, "/root/apple", "/root/banana")
	h := NewHarness(m)

	h.Type("/a")
	h.Press(tea.KeyDown)
	s := h.Model().Session()
	if s.Cursor != 1 || !s.Searching() {
		t.Fatalf("expected searching with cursor 1, got %d (%s)", s.Cursor, s.Mode)
	}
}

func TestKeyEventsSplitsBatchedRunes(t *testing.T) {
	evs := keyEvents(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/b")})
	if len(evs) != 2 {
		t.Fatalf("expected 2 events, got %#v", evs)
	}
	if evs[0].Name != "/" || evs[0].Value != "/" || evs[1].Name != "b" || evs[1].Value != "b" {
		t.Fatalf("unexpected events %#v", evs)
	}

	alt := keyEvents(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab"), Alt: true})
	if len(alt) != 1 || alt[0].Value != "" {
		t.Fatalf("expected one alt event without value, got %#v", alt)
	}
	pasted := keyEvents(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab"), Paste: true})
	if len(pasted) != 1 || pasted[0].Value != "" {
		t.Fatalf("expected one pasted event without value, got %#v", pasted)
	}
}

func TestBatchedRunesWhileSearching(t *testing.T) {
	m, _ := newTestModel(t, Options{}, "/root/apple", "/root/banana", "/root/cherry")
	h := NewHarness(m)

	h.Type("/")
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ch")})
	s := h.Model().Session()
	if s.Mode != state.ModeSearching || s.Term != "ch" || s.Cursor != 2 {
		t.Fatalf("expected term ch on cherry, got %s %q at %d", s.Mode, s.Term, s.Cursor)
	}
}

func TestBatchedRunesWhileBrowsing(t *testing.T) {
	m, _ := newTestModel(t, Options{}, "/root/apple", "/root/banana", "/root/cherry")
	h := NewHarness(m)

	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("jj")})
	if got := h.Model().Session().Cursor; got != 2 {
		t.Fatalf("expected both j presses to move down, got cursor %d", got)
	}

	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/b")})
	s := h.Model().Session()
	if s.Mode != state.ModeSearching || s.Term != "b" || s.Cursor != 1 {
		t.Fatalf("expected search for b on banana, got %s %q at %d", s.Mode, s.Term, s.Cursor)
	}
}
