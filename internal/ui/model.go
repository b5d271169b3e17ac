package ui

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/atomicstack/dirprompt/internal/choice"
	"github.com/atomicstack/dirprompt/internal/fsys"
	"github.com/atomicstack/dirprompt/internal/nav"
	"github.com/atomicstack/dirprompt/internal/theme"
	"github.com/atomicstack/dirprompt/internal/ui/keys"
	"github.com/atomicstack/dirprompt/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultPageSize = 10
	defaultMessage  = "Select a file"
)

var (
	// ErrMissingBasePath is returned when the prompt has no root directory.
	ErrMissingBasePath = errors.New("base path is required")
	// ErrAborted is reported when the user cancels the prompt.
	ErrAborted = errors.New("prompt aborted")
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a prompt session.
type Options struct {
	BasePath      string
	AllowDotFiles bool
	PageSize      int
	Message       string
	ShowFooter    bool
	Width         int
	Height        int
}

// Model implements the Bubble Tea model for the directory prompt.
type Model struct {
	opts        Options
	router      *nav.Router
	session     *state.Session
	keys        keys.KeyMap
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	firstRender bool
	done        bool
	answer      string
	err         error

	handlers map[reflect.Type]msgHandler
}

// NewModel resolves the base path, lists it and returns a model positioned on
// the first choice. A nil fs reads the real filesystem.
func NewModel(opts Options, fs fsys.Filesystem) (*Model, error) {
	if strings.TrimSpace(opts.BasePath) == "" {
		return nil, ErrMissingBasePath
	}
	base, err := filepath.Abs(opts.BasePath)
	if err != nil {
		return nil, fmt.Errorf("resolve base path %q: %w", opts.BasePath, err)
	}
	if fs == nil {
		fs = fsys.OS{}
	}
	if opts.PageSize <= 0 {
		opts.PageSize = defaultPageSize
	}
	if opts.Message == "" {
		opts.Message = defaultMessage
	}
	opts.BasePath = base

	router := nav.NewRouter(nav.NewMachine(base, fs), choice.Builder{FS: fs, AllowDotFiles: opts.AllowDotFiles})
	list, err := router.Initial()
	if err != nil {
		return nil, err
	}
	m := &Model{
		opts:        opts,
		router:      router,
		session:     state.NewSession(list, 0),
		keys:        keys.DefaultKeyMap,
		firstRender: true,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.syncViewport()
	m.registerHandlers()
	return m, nil
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.syncViewport()
	return nil
}

// Done reports whether the session has finished, successfully or not.
func (m *Model) Done() bool {
	return m.done
}

// Result returns the selected path relative to the base path. It returns
// ErrAborted when the prompt was cancelled, or the error that ended it.
func (m *Model) Result() (string, error) {
	switch {
	case m.err != nil:
		return "", m.err
	case m.done:
		return m.answer, nil
	default:
		return "", ErrAborted
	}
}

// BasePath returns the absolute root of the prompt.
func (m *Model) BasePath() string {
	return m.opts.BasePath
}

// Session exposes the current selection state.
func (m *Model) Session() *state.Session {
	return m.session
}

// Stack returns the directory segments below the base path.
func (m *Model) Stack() []string {
	return m.router.Machine().Stack()
}

func (m *Model) visibleLines() int {
	lines := m.opts.PageSize
	if m.height <= 0 {
		return lines
	}
	// question, current directory and search lines
	reserved := 3
	if m.opts.ShowFooter {
		reserved += len(m.keys.Help())
	}
	if avail := m.height - reserved; avail < lines {
		lines = max(avail, 1)
	}
	return lines
}

func (m *Model) syncViewport() {
	m.session.EnsureCursorVisible(m.visibleLines())
}
