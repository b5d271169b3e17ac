package state

import "github.com/atomicstack/dirprompt/internal/choice"

// Mode is the input mode of a session.
type Mode int

const (
	ModeBrowsing Mode = iota
	ModeSearching
)

func (m Mode) String() string {
	if m == ModeSearching {
		return "searching"
	}
	return "browsing"
}

// Session is the per-directory selection state: the current choice list,
// the selection index over its real choices, the viewport and the search
// capture.
type Session struct {
	List           choice.List
	Depth          int
	Cursor         int
	ViewportOffset int
	Mode           Mode
	Term           string
}

// NewSession starts browsing list at depth.
func NewSession(list choice.List, depth int) *Session {
	s := &Session{}
	s.Reset(list, depth)
	return s
}

// Reset swaps in a freshly built list after a traversal. The selection and
// viewport return to the top; search state is left to the caller, which
// always ends the capture before committing.
func (s *Session) Reset(list choice.List, depth int) {
	s.List = list
	s.Depth = depth
	s.Cursor = 0
	s.ViewportOffset = 0
}

// Selected returns the choice under the cursor.
func (s *Session) Selected() (choice.Choice, bool) {
	return s.List.Real(s.Cursor)
}

// SelectedLine returns the display line of the cursor, or -1.
func (s *Session) SelectedLine() int {
	return s.List.LineOf(s.Cursor)
}
