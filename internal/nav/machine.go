// Package nav owns the stack of chosen path segments and decides whether a
// committed choice descends, returns to the parent, or completes the prompt.
package nav

import (
	"path/filepath"

	"github.com/atomicstack/dirprompt/internal/choice"
	"github.com/atomicstack/dirprompt/internal/fsys"
	"github.com/atomicstack/dirprompt/internal/logging/events"
)

// OutcomeKind describes what a commit resolved to.
type OutcomeKind int

const (
	// Ignored commits leave the machine untouched.
	Ignored OutcomeKind = iota
	Traversal
	Done
)

func (k OutcomeKind) String() string {
	switch k {
	case Traversal:
		return "traversal"
	case Done:
		return "done"
	default:
		return "ignored"
	}
}

// Outcome is emitted for every commit.
type Outcome struct {
	Kind  OutcomeKind
	Path  string // absolute
	Depth int
}

// Step applies a committed choice to stack and returns the new stack. The
// input slice is never modified.
func Step(stack []string, c choice.Choice) []string {
	switch c.Kind {
	case choice.KindBack:
		if len(stack) == 0 {
			return cloneStack(stack)
		}
		return cloneStack(stack[:len(stack)-1])
	case choice.KindEntry:
		next := make([]string, len(stack), len(stack)+1)
		copy(next, stack)
		return append(next, c.Name)
	default:
		return cloneStack(stack)
	}
}

func cloneStack(stack []string) []string {
	dup := make([]string, len(stack))
	copy(dup, stack)
	return dup
}

// Machine tracks the segment stack below a fixed base path.
type Machine struct {
	base     string
	fs       fsys.Filesystem
	stack    []string
	answered bool
}

// NewMachine returns a machine at depth 0.
func NewMachine(base string, fs fsys.Filesystem) *Machine {
	return &Machine{base: base, fs: fs}
}

// Base returns the absolute root.
func (m *Machine) Base() string { return m.base }

// Stack returns a copy of the current segments.
func (m *Machine) Stack() []string { return cloneStack(m.stack) }

// Depth returns the number of segments.
func (m *Machine) Depth() int { return len(m.stack) }

// Answered reports whether a file has been reached.
func (m *Machine) Answered() bool { return m.answered }

// Path joins the base with the current stack.
func (m *Machine) Path() string {
	return joinPath(m.base, m.stack)
}

// Commit applies c and classifies the resulting path. Anything that is not
// a regular file, including paths that vanished, is a traversal.
func (m *Machine) Commit(c choice.Choice) Outcome {
	if m.answered || !c.IsReal() {
		events.Nav.Ignored(c.Label)
		return Outcome{Kind: Ignored, Path: m.Path(), Depth: len(m.stack)}
	}
	m.stack = Step(m.stack, c)
	abs := m.Path()
	kind := m.fs.Classify(abs)
	events.Nav.Commit(c.Label, abs, kind.String())
	if kind == fsys.KindFile {
		m.answered = true
		return Outcome{Kind: Done, Path: abs, Depth: len(m.stack)}
	}
	return Outcome{Kind: Traversal, Path: abs, Depth: len(m.stack)}
}

func joinPath(base string, stack []string) string {
	parts := make([]string, 0, len(stack)+1)
	parts = append(parts, base)
	parts = append(parts, stack...)
	return filepath.Join(parts...)
}
