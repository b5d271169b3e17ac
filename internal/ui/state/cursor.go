package state

// MoveUp moves the selection one real choice up, wrapping to the bottom.
func (s *Session) MoveUp() bool {
	n := s.List.RealLen()
	if n == 0 {
		s.Cursor = 0
		return false
	}
	if s.Cursor > 0 {
		s.Cursor--
	} else {
		s.Cursor = n - 1
	}
	return true
}

// MoveDown moves the selection one real choice down, wrapping to the top.
func (s *Session) MoveDown() bool {
	n := s.List.RealLen()
	if n == 0 {
		s.Cursor = 0
		return false
	}
	if s.Cursor < n-1 {
		s.Cursor++
	} else {
		s.Cursor = 0
	}
	return true
}

// EnsureCursorVisible adjusts the viewport offset, counted in display lines,
// so the selected line stays inside a window of maxVisible lines.
func (s *Session) EnsureCursorVisible(maxVisible int) {
	total := s.List.Len()
	if total == 0 {
		s.Cursor = 0
		s.ViewportOffset = 0
		return
	}
	if n := s.List.RealLen(); s.Cursor >= n {
		s.Cursor = n - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
	if maxVisible <= 0 || total <= maxVisible {
		s.ViewportOffset = 0
		return
	}
	line := s.SelectedLine()
	if line < 0 {
		line = 0
	}
	maxOffset := total - maxVisible
	if s.ViewportOffset > maxOffset {
		s.ViewportOffset = maxOffset
	}
	if s.ViewportOffset < 0 {
		s.ViewportOffset = 0
	}
	if line < s.ViewportOffset {
		s.ViewportOffset = line
	}
	upper := s.ViewportOffset + maxVisible - 1
	if line > upper {
		s.ViewportOffset = line - maxVisible + 1
		if s.ViewportOffset > maxOffset {
			s.ViewportOffset = maxOffset
		}
	}
}
