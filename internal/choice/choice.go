// Package choice builds the ordered list of selectable entries shown for one
// directory.
package choice

// Kind tags a Choice.
type Kind int

const (
	KindEntry Kind = iota
	KindSeparator
	KindBack
)

const (
	// BackLabel is the display text of the Back choice. It is never compared
	// against entry names.
	BackLabel     = ".. (go back a directory)"
	separatorRule = "──────────────"
)

// Choice is one line of a List.
type Choice struct {
	Kind  Kind
	Name  string // raw on-disk name, only set for entries
	Label string
	Dir   bool
}

// Entry returns a selectable filesystem entry.
func Entry(name, label string, dir bool) Choice {
	if label == "" {
		label = name
	}
	return Choice{Kind: KindEntry, Name: name, Label: label, Dir: dir}
}

// Separator returns a non-selectable divider.
func Separator() Choice {
	return Choice{Kind: KindSeparator, Label: separatorRule}
}

// Back returns the pseudo-entry that pops one directory.
func Back() Choice {
	return Choice{Kind: KindBack, Label: BackLabel}
}

// IsReal reports whether the choice can be selected.
func (c Choice) IsReal() bool {
	return c.Kind != KindSeparator
}

// List is an immutable ordered sequence of choices. Real indices skip
// separators.
type List struct {
	items []Choice
	real  []int
}

// NewList copies items into a List.
func NewList(items ...Choice) List {
	dup := make([]Choice, len(items))
	copy(dup, items)
	real := make([]int, 0, len(dup))
	for i, c := range dup {
		if c.IsReal() {
			real = append(real, i)
		}
	}
	return List{items: dup, real: real}
}

// Len returns the number of display lines.
func (l List) Len() int { return len(l.items) }

// RealLen counts every non-separator choice.
func (l List) RealLen() int { return len(l.real) }

// At returns the choice on display line i.
func (l List) At(i int) Choice { return l.items[i] }

// Real returns the i-th selectable choice.
func (l List) Real(i int) (Choice, bool) {
	if i < 0 || i >= len(l.real) {
		return Choice{}, false
	}
	return l.items[l.real[i]], true
}

// LineOf maps a real index to its display line, or -1.
func (l List) LineOf(i int) int {
	if i < 0 || i >= len(l.real) {
		return -1
	}
	return l.real[i]
}

// Items returns a copy of every choice in display order.
func (l List) Items() []Choice {
	dup := make([]Choice, len(l.items))
	copy(dup, l.items)
	return dup
}

// Entries returns the entry choices in display order.
func (l List) Entries() []Choice {
	out := make([]Choice, 0, len(l.real))
	for _, c := range l.items {
		if c.Kind == KindEntry {
			out = append(out, c)
		}
	}
	return out
}

// HasBack reports whether the list carries a Back choice.
func (l List) HasBack() bool {
	for _, idx := range l.real {
		if l.items[idx].Kind == KindBack {
			return true
		}
	}
	return false
}
