package nav

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/atomicstack/dirprompt/internal/choice"
	"github.com/atomicstack/dirprompt/internal/logging/events"
)

// ListingError reports a directory that could not be read after a
// traversal. It ends the session.
type ListingError struct {
	Path string
	Err  error
}

func (e *ListingError) Error() string {
	return fmt.Sprintf("list %s: %v", e.Path, e.Err)
}

func (e *ListingError) Unwrap() error { return e.Err }

// IsListingError reports whether err wraps a ListingError.
func IsListingError(err error) bool {
	var le *ListingError
	return errors.As(err, &le)
}

// Result is what the session needs after a commit.
type Result struct {
	Kind OutcomeKind
	// Traversal
	List  choice.List
	Path  string
	Depth int
	// Done
	Relative string
}

// Router bridges committed choices to list regeneration or completion.
type Router struct {
	machine *Machine
	builder choice.Builder
	closed  bool
}

// NewRouter wires a machine to the builder used on traversal.
func NewRouter(machine *Machine, builder choice.Builder) *Router {
	return &Router{machine: machine, builder: builder}
}

// Machine exposes the underlying state machine.
func (r *Router) Machine() *Machine { return r.machine }

// Closed reports whether the session has completed.
func (r *Router) Closed() bool { return r.closed }

// Initial builds the list for the current position without committing.
func (r *Router) Initial() (choice.List, error) {
	path := r.machine.Path()
	list, err := r.builder.Build(path, r.machine.Depth())
	if err != nil {
		return choice.List{}, &ListingError{Path: path, Err: err}
	}
	return list, nil
}

// Submit routes a committed choice. After completion every call returns an
// Ignored result.
func (r *Router) Submit(c choice.Choice) (Result, error) {
	if r.closed {
		events.Nav.Ignored(c.Label)
		return Result{Kind: Ignored}, nil
	}
	out := r.machine.Commit(c)
	switch out.Kind {
	case Traversal:
		list, err := r.builder.Build(out.Path, out.Depth)
		if err != nil {
			return Result{}, &ListingError{Path: out.Path, Err: err}
		}
		events.Nav.Traverse(out.Path, out.Depth, list.RealLen())
		return Result{Kind: Traversal, List: list, Path: out.Path, Depth: out.Depth}, nil
	case Done:
		r.closed = true
		rel, err := filepath.Rel(r.machine.Base(), out.Path)
		if err != nil {
			return Result{}, fmt.Errorf("relative path for %s: %w", out.Path, err)
		}
		events.Nav.Done(rel)
		return Result{Kind: Done, Path: out.Path, Depth: out.Depth, Relative: rel}, nil
	default:
		return Result{Kind: Ignored}, nil
	}
}
