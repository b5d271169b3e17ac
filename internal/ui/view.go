package ui

import (
	"path/filepath"
	"strings"

	"github.com/atomicstack/dirprompt/internal/choice"
	"github.com/atomicstack/dirprompt/internal/format/table"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

const (
	pointerSymbol = "❯"
	firstHint     = "(Use arrow keys)"
	searchIdle    = `(Use "/" key to search this directory)`
)

// ViewModel is a snapshot of everything the renderer shows.
type ViewModel struct {
	Question     string
	BasePath     string
	RelativePath string
	FirstRender  bool
	Answered     bool
	Answer       string
	// Lines is the visible window of the choice list.
	Lines []choice.Choice
	// Selected indexes Lines, or -1 when the selection is scrolled away.
	Selected  int
	Searching bool
	Term      string
	Hint      string
	Footer    [][]string
	Width     int
	Err       error
}

// View implements tea.Model.
func (m *Model) View() string {
	return Render(m.viewModel())
}

func (m *Model) viewModel() ViewModel {
	vm := ViewModel{
		Question:     m.opts.Message,
		BasePath:     m.opts.BasePath,
		RelativePath: filepath.Join(m.Stack()...),
		FirstRender:  m.firstRender,
		Width:        m.width,
		Selected:     -1,
		Err:          m.err,
	}
	if m.done && m.err == nil {
		vm.Answered = true
		vm.Answer = m.answer
		return vm
	}
	list := m.session.List
	start := m.session.ViewportOffset
	end := min(start+m.visibleLines(), list.Len())
	selected := m.session.SelectedLine()
	for line := start; line < end; line++ {
		if line == selected {
			vm.Selected = len(vm.Lines)
		}
		vm.Lines = append(vm.Lines, list.At(line))
	}
	vm.Searching = m.session.Searching()
	vm.Term = m.session.Term
	vm.Hint = m.session.SearchHint()
	if m.opts.ShowFooter {
		for _, binding := range m.keys.Help() {
			help := binding.Help()
			vm.Footer = append(vm.Footer, []string{help.Key, help.Desc})
		}
	}
	return vm
}

// Render draws vm. It has no side effects.
func Render(vm ViewModel) string {
	var header strings.Builder
	header.WriteString(styles.QuestionMark.Render("?"))
	header.WriteString(" ")
	header.WriteString(styles.Question.Render(vm.Question))
	header.WriteString(" ")
	if vm.Answered {
		header.WriteString(styles.Answer.Render(vm.Answer))
		return fitWidth(header.String(), vm.Width)
	}
	if vm.FirstRender {
		header.WriteString(styles.Hint.Render(firstHint))
	}

	lines := []string{
		header.String(),
		" " + styles.DirLabel.Render("Current directory:") + " " + vm.BasePath + "/" + styles.DirPath.Render(vm.RelativePath),
	}
	for i, c := range vm.Lines {
		lines = append(lines, renderChoice(c, i == vm.Selected, vm.Width))
	}
	if vm.Searching {
		lines = append(lines, styles.SearchPrompt.Render("Search:")+" "+styles.SearchTerm.Render(vm.Term))
		if vm.Hint != "" {
			lines = append(lines, styles.SearchHint.Render("no match, closest: "+vm.Hint))
		}
	} else {
		lines = append(lines, styles.Hint.Render(searchIdle))
	}
	if vm.Err != nil {
		lines = append(lines, styles.Error.Render(vm.Err.Error()))
	}
	for _, row := range table.Format(vm.Footer, nil) {
		lines = append(lines, styles.Footer.Render(row))
	}
	for i, line := range lines {
		lines[i] = fitWidth(line, vm.Width)
	}
	return strings.Join(lines, "\n")
}

func renderChoice(c choice.Choice, selected bool, width int) string {
	if c.Kind == choice.KindSeparator {
		return "  " + styles.Separator.Render(c.Label)
	}
	label := c.Label
	if c.Kind == choice.KindEntry && c.Dir {
		label += "/"
	}
	if width > 2 && runewidth.StringWidth(label) > width-2 {
		label = runewidth.Truncate(label, width-2, "…")
	}
	prefix := "  "
	style := styles.Item
	switch {
	case selected:
		prefix = styles.Pointer.Render(pointerSymbol) + " "
		style = styles.SelectedItem
	case c.Kind == choice.KindBack:
		style = styles.Back
	case c.Dir:
		style = styles.Directory
	}
	return prefix + style.Render(label)
}

func fitWidth(line string, width int) string {
	if width <= 0 || ansi.StringWidth(line) <= width {
		return line
	}
	return truncate.StringWithTail(line, uint(width-1), "…")
}
