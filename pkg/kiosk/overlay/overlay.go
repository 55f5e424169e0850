// Package overlay implements the modal "Coming Soon" dialog as a two-state
// machine. While Shown it owns input; the menu underneath is not navigable.
package overlay

import (
	"time"

	"github.com/moonwhale/setup/pkg/kiosk/input"
)

type State int

const (
	StateHidden State = iota
	StateShown
)

func (s State) String() string {
	if s == StateShown {
		return "Shown"
	}
	return "Hidden"
}

type Transition int

const (
	TransitionNone Transition = iota
	TransitionDismiss
	TransitionTerminate
)

// Request is the content of one dialog.
type Request struct {
	Title string
	Body  string
}

type Overlay struct {
	// Grace is how long after Show qualifying input is discarded, so the
	// press that opened the dialog cannot also close it.
	Grace time.Duration

	state   State
	request Request
	shownAt time.Time
}

func New(grace time.Duration) *Overlay {
	return &Overlay{Grace: grace}
}

func (o *Overlay) State() State {
	return o.state
}

func (o *Overlay) Shown() bool {
	return o.state == StateShown
}

// Request returns the dialog being shown. It is the zero value while Hidden.
func (o *Overlay) Request() Request {
	return o.request
}

func (o *Overlay) ShownAt() time.Time {
	return o.shownAt
}

func (o *Overlay) Show(req Request, now time.Time) {
	o.state = StateShown
	o.request = req
	o.shownAt = now
}

func (o *Overlay) Hide() {
	o.state = StateHidden
	o.request = Request{}
	o.shownAt = time.Time{}
}

// Offer hands one event to the overlay. Quit terminates at any time; key,
// button and pointer presses dismiss once the grace period has elapsed.
// Everything else, and anything offered while Hidden, is ignored.
func (o *Overlay) Offer(ev input.Event, now time.Time) Transition {
	if o.state != StateShown {
		return TransitionNone
	}

	if ev.Kind == input.KindQuit {
		return TransitionTerminate
	}

	if !qualifies(ev) || now.Sub(o.shownAt) < o.Grace {
		return TransitionNone
	}

	o.Hide()
	return TransitionDismiss
}

func qualifies(ev input.Event) bool {
	switch ev.Kind {
	case input.KindKeyDown, input.KindButtonDown, input.KindPointerDown:
		return true
	}
	return false
}
