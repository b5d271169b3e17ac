package state

import (
	"testing"

	"github.com/atomicstack/dirprompt/internal/choice"
)

func newTestSession(names ...string) *Session {
	items := make([]choice.Choice, 0, len(names)+1)
	for _, name := range names {
		items = append(items, choice.Entry(name, "", false))
	}
	if len(items) > 0 {
		items = append(items, choice.Separator())
	}
	return NewSession(choice.NewList(items...), 0)
}

func TestMoveUpWrapsToBottom(t *testing.T) {
	s := newTestSession("a", "b", "c", "d", "e")
	if !s.MoveUp() {
		t.Fatal("expected movement")
	}
	if s.Cursor != 4 {
		t.Fatalf("expected cursor 4, got %d", s.Cursor)
	}
	if !s.MoveDown() || s.Cursor != 0 {
		t.Fatalf("expected down from 4 to wrap to 0, got %d", s.Cursor)
	}
}

func TestMoveSequenceFollowsModularArithmetic(t *testing.T) {
	s := newTestSession("a", "b", "c")
	moves := []int{+1, +1, +1, -1, -1, -1, -1, +1, -1, -1}
	want := 0
	for i, delta := range moves {
		if delta > 0 {
			s.MoveDown()
		} else {
			s.MoveUp()
		}
		want = ((want+delta)%3 + 3) % 3
		if s.Cursor != want {
			t.Fatalf("step %d: expected cursor %d, got %d", i, want, s.Cursor)
		}
	}
}

func TestMoveCountsBackAsRealChoice(t *testing.T) {
	list := choice.NewList(
		choice.Entry("x", "", false),
		choice.Separator(),
		choice.Separator(),
		choice.Back(),
		choice.Separator(),
	)
	s := NewSession(list, 1)
	s.MoveUp()
	c, ok := s.Selected()
	if !ok || c.Kind != choice.KindBack {
		t.Fatalf("expected back selected, got %#v", c)
	}
	if s.SelectedLine() != 3 {
		t.Fatalf("expected back on line 3, got %d", s.SelectedLine())
	}
}

func TestMoveOnEmptyListIsNoOp(t *testing.T) {
	s := newTestSession()
	if s.MoveUp() || s.MoveDown() {
		t.Fatal("expected no movement on empty list")
	}
	if s.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", s.Cursor)
	}
	if _, ok := s.Selected(); ok {
		t.Fatal("expected nothing selected")
	}
}

func TestResetReturnsToTop(t *testing.T) {
	s := newTestSession("a", "b", "c")
	s.Cursor = 2
	s.ViewportOffset = 1
	s.Reset(choice.NewList(choice.Entry("z", "", false)), 3)
	if s.Cursor != 0 || s.ViewportOffset != 0 || s.Depth != 3 {
		t.Fatalf("unexpected state after reset %#v", s)
	}
}

func TestEnsureCursorVisibleAdjustsViewport(t *testing.T) {
	s := newTestSession("a", "b", "c", "d", "e")
	s.Cursor = 4
	s.EnsureCursorVisible(2)
	if s.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", s.ViewportOffset)
	}

	s.Cursor = -1
	s.EnsureCursorVisible(2)
	if s.Cursor != 0 {
		t.Fatalf("expected cursor normalised to 0, got %d", s.Cursor)
	}
	if s.ViewportOffset != 0 {
		t.Fatalf("expected offset to follow cursor to 0, got %d", s.ViewportOffset)
	}

	s.ViewportOffset = 4
	s.EnsureCursorVisible(0)
	if s.ViewportOffset != 0 {
		t.Fatalf("expected offset reset when maxVisible <= 0, got %d", s.ViewportOffset)
	}

	s.ViewportOffset = 3
	s.Cursor = 1
	s.EnsureCursorVisible(3)
	if s.ViewportOffset != 1 {
		t.Fatalf("expected offset aligned with cursor, got %d", s.ViewportOffset)
	}
}

func TestEnsureCursorVisibleWholeListFits(t *testing.T) {
	s := newTestSession("a", "b")
	s.Cursor = 1
	s.ViewportOffset = 2
	s.EnsureCursorVisible(10)
	if s.ViewportOffset != 0 {
		t.Fatalf("expected offset 0 when everything fits, got %d", s.ViewportOffset)
	}
}

func backOnlyList() choice.List {
	return choice.NewList(choice.Separator(), choice.Back(), choice.Separator())
}
