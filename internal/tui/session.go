package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/edaniels/golog"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"ptview/internal/render"
)

// State is the lifecycle of a Session.
type State int

const (
	Created State = iota
	Initialized
	Rendering
	Terminated
)

func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case Initialized:
		return "initialized"
	case Rendering:
		return "rendering"
	case Terminated:
		return "terminated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Config describes the display surface. Width and Height are in braille dots; a terminal
// cell holds 2x4 dots and the surface is clipped to the terminal window.
type Config struct {
	Title      string
	Width      int
	Height     int
	Background colorful.Color
	// SnapshotPath is where the snapshot key writes a PNG. Empty disables it.
	SnapshotPath string
}

// KeyFunc observes key presses. key is the symbolic key name, e.g. "a", "up", "ctrl+c".
type KeyFunc func(s *Session, key string)

// Session shows one renderable in the terminal until the user quits.
type Session struct {
	cfg        Config
	renderable *render.Renderable
	logger     golog.Logger
	onKey      KeyFunc
	opts       []tea.ProgramOption

	state  State
	status string
	frames int
}

// New creates a session for r. opts are passed to the bubbletea program after the
// defaults (alt screen, mouse cell motion).
func New(r *render.Renderable, cfg Config, logger golog.Logger, opts ...tea.ProgramOption) *Session {
	return &Session{
		cfg:        cfg,
		renderable: r,
		logger:     logger,
		onKey:      logKeyPress,
		opts:       opts,
		status:     "ready",
	}
}

// Run shows r until the user quits. It blocks for the lifetime of the session.
func Run(r *render.Renderable, cfg Config, logger golog.Logger) error {
	return New(r, cfg, logger).Run()
}

func logKeyPress(s *Session, key string) {
	s.logger.Infof("%s pressed!", key)
	s.SetStatus(key + " pressed!")
}

// OnKeyPress replaces the key callback. A nil fn ignores key presses.
func (s *Session) OnKeyPress(fn KeyFunc) {
	if fn == nil {
		fn = func(*Session, string) {}
	}
	s.onKey = fn
}

func (s *Session) State() State { return s.state }

func (s *Session) Logger() golog.Logger { return s.logger }

func (s *Session) Renderable() *render.Renderable { return s.renderable }

// SetStatus replaces the status line text.
func (s *Session) SetStatus(msg string) { s.status = msg }

func (s *Session) Status() string { return s.status }

// Run initializes the view and hands control to the event loop, which draws the first
// frame and every frame after, until the user quits. A session runs once.
func (s *Session) Run() error {
	if s.state != Created {
		return errors.Errorf("session is %v, not %v", s.state, Created)
	}
	m := newModel(s)
	s.state = Initialized
	s.logger.Debugw("session initialized", "title", s.cfg.Title, "points", s.renderable.Len())
	s.state = Rendering

	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}, s.opts...)
	_, err := tea.NewProgram(m, opts...).Run()
	s.state = Terminated
	if err != nil {
		return errors.Wrap(err, "interactive session")
	}
	s.logger.Debugw("session terminated", "frames", s.frames)
	return nil
}
