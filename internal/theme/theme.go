package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes the Lip Gloss styles used by the prompt renderer.
type Styles struct {
	Question     *lipgloss.Style
	QuestionMark *lipgloss.Style
	Hint         *lipgloss.Style
	Answer       *lipgloss.Style
	DirLabel     *lipgloss.Style
	DirPath      *lipgloss.Style
	Item         *lipgloss.Style
	Directory    *lipgloss.Style
	SelectedItem *lipgloss.Style
	Pointer      *lipgloss.Style
	Back         *lipgloss.Style
	Separator    *lipgloss.Style
	SearchPrompt *lipgloss.Style
	SearchTerm   *lipgloss.Style
	SearchHint   *lipgloss.Style
	Footer       *lipgloss.Style
	Error        *lipgloss.Style
}

var defaultStyles = Styles{
	Question: ptr(
		lipgloss.NewStyle().Bold(true),
	),
	QuestionMark: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Hint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Answer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("37")),
	),
	DirLabel: ptr(
		lipgloss.NewStyle().Bold(true),
	),
	DirPath: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("37")),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Directory: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("37")).Bold(true),
	),
	Pointer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("37")).Bold(true),
	),
	Back: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
	),
	Separator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SearchPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	SearchTerm: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	SearchHint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
}

// Default exposes the standard style set.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
