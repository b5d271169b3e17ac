package state

import (
	"strings"

	"github.com/atomicstack/dirprompt/internal/choice"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Searching reports whether a search capture is open.
func (s *Session) Searching() bool {
	return s.Mode == ModeSearching
}

// StartSearch opens a capture with an empty term.
func (s *Session) StartSearch() {
	s.Mode = ModeSearching
	s.Term = ""
}

// EndSearch closes the capture and drops the term.
func (s *Session) EndSearch() {
	s.Mode = ModeBrowsing
	s.Term = ""
}

// AppendSearch adds text to the term and re-selects. It reports whether the
// capture is still open afterwards.
func (s *Session) AppendSearch(text string) bool {
	if !s.Searching() {
		return false
	}
	s.Term += text
	return s.afterSearchEdit()
}

// BackspaceSearch drops the last rune of the term, if any. An empty term
// closes the capture.
func (s *Session) BackspaceSearch() bool {
	if !s.Searching() {
		return false
	}
	if runes := []rune(s.Term); len(runes) > 0 {
		s.Term = string(runes[:len(runes)-1])
	}
	return s.afterSearchEdit()
}

func (s *Session) afterSearchEdit() bool {
	if s.Term == "" {
		s.EndSearch()
		return false
	}
	if idx := PrefixIndex(s.List, s.Term); idx >= 0 {
		s.Cursor = idx
	}
	return true
}

// PrefixIndex returns the real index of the first entry, in list order,
// whose label starts with term ignoring case. Back never matches.
func PrefixIndex(list choice.List, term string) int {
	if term == "" {
		return -1
	}
	lower := strings.ToLower(term)
	for i := 0; i < list.RealLen(); i++ {
		c, _ := list.Real(i)
		if c.Kind != choice.KindEntry {
			continue
		}
		if strings.HasPrefix(strings.ToLower(c.Label), lower) {
			return i
		}
	}
	return -1
}

// SearchHint suggests the closest entry when the term has no prefix match.
// It never moves the cursor.
func (s *Session) SearchHint() string {
	if !s.Searching() || s.Term == "" || PrefixIndex(s.List, s.Term) >= 0 {
		return ""
	}
	entries := s.List.Entries()
	if len(entries) == 0 {
		return ""
	}
	labels := make([]string, len(entries))
	for i, c := range entries {
		labels[i] = c.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(s.Term, labels)
	if len(ranks) == 0 {
		return ""
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance ||
			(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return best.Target
}
