// Package session holds all mutable kiosk state and routes each input event
// to whichever of the menu or the dialog currently owns input.
package session

import (
	"io"
	"log/slog"
	"time"

	"github.com/moonwhale/setup/pkg/kiosk/constants"
	"github.com/moonwhale/setup/pkg/kiosk/input"
	"github.com/moonwhale/setup/pkg/kiosk/menu"
	"github.com/moonwhale/setup/pkg/kiosk/overlay"
)

type Result int

const (
	ResultContinue Result = iota
	ResultExit
)

type ExitReason string

const (
	ExitNone         ExitReason = ""
	ExitWindowClosed ExitReason = "window closed"
	ExitCancelled    ExitReason = "cancelled"
	ExitSelected     ExitReason = "exit selected"
)

type Options struct {
	Entries      []menu.Entry
	Mapping      *input.Mapping
	MoveCooldown time.Duration
	DialogGrace  time.Duration
	Logger       *slog.Logger
}

func DefaultOptions() Options {
	return Options{
		Entries:      menu.DefaultEntries(),
		Mapping:      input.DefaultMapping(),
		MoveCooldown: constants.DefaultMoveCooldown,
		DialogGrace:  constants.DefaultDialogGrace,
	}
}

type Session struct {
	Menu       *menu.Menu
	Dispatcher *menu.Dispatcher
	Normalizer *input.Normalizer
	Overlay    *overlay.Overlay

	logger     *slog.Logger
	exitReason ExitReason
}

func New(options Options) (*Session, error) {
	m, err := menu.New(options.Entries)
	if err != nil {
		return nil, err
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Session{
		Menu:       m,
		Dispatcher: menu.NewDispatcher(m),
		Normalizer: input.NewNormalizer(options.Mapping, options.MoveCooldown),
		Overlay:    overlay.New(options.DialogGrace),
		logger:     logger,
	}, nil
}

// Start opens the first move cooldown at now, so stray input while the
// screen comes up does not move the selection.
func (s *Session) Start(now time.Time) {
	s.Normalizer.Debouncer().Seed(now)
}

func (s *Session) ExitReason() ExitReason {
	return s.exitReason
}

// Handle applies one event received at now.
func (s *Session) Handle(ev input.Event, now time.Time) Result {
	if s.Overlay.Shown() {
		return s.handleDialog(ev, now)
	}

	action, ok := s.Normalizer.Normalize(ev, now)
	if !ok {
		return ResultContinue
	}

	s.logger.Debug("Input normalized", "event", ev.String(), "action", action.GetName())

	switch action {
	case constants.ActionMoveUp:
		s.Menu.MoveUp()
	case constants.ActionMoveDown:
		s.Menu.MoveDown()
	case constants.ActionActivate:
		return s.activate(now)
	case constants.ActionCancel:
		return s.exit(ExitCancelled)
	case constants.ActionQuit:
		return s.exit(ExitWindowClosed)
	}

	return ResultContinue
}

func (s *Session) handleDialog(ev input.Event, now time.Time) Result {
	shownAt := s.Overlay.ShownAt()

	switch s.Overlay.Offer(ev, now) {
	case overlay.TransitionTerminate:
		return s.exit(ExitWindowClosed)
	case overlay.TransitionDismiss:
		s.logger.Debug("Dialog dismissed", "event", ev.String(), "shown_for", now.Sub(shownAt))
	}
	return ResultContinue
}

func (s *Session) activate(now time.Time) Result {
	index := s.Menu.Selected()
	entry := s.Menu.Current()
	s.logger.Info("Selected", "index", index, "label", entry.Label, "action", entry.Action.String())

	outcome, err := s.Dispatcher.Activate(index)
	if err != nil {
		s.logger.Error("Activation failed", "index", index, "error", err)
		return ResultContinue
	}

	if outcome.Terminate {
		return s.exit(ExitSelected)
	}

	s.Overlay.Show(*outcome.Dialog, now)
	return ResultContinue
}

func (s *Session) exit(reason ExitReason) Result {
	s.exitReason = reason
	s.logger.Info("Exiting", "reason", string(reason))
	return ResultExit
}
