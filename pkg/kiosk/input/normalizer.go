package input

import (
	"time"

	"github.com/moonwhale/setup/pkg/kiosk/constants"
)

// Debouncer gates directional actions. A single instance is shared by every
// input source so a key press and a stick flick contend for the same window.
type Debouncer struct {
	Cooldown time.Duration
	last     time.Time
}

func NewDebouncer(cooldown time.Duration) *Debouncer {
	return &Debouncer{Cooldown: cooldown}
}

// Accept reports whether an action at now is outside the cooldown window of
// the last accepted one, and records now if so.
func (d *Debouncer) Accept(now time.Time) bool {
	if !d.last.IsZero() && now.Sub(d.last) <= d.Cooldown {
		return false
	}
	d.last = now
	return true
}

// Seed opens a cooldown window at now as if a move had just been accepted.
func (d *Debouncer) Seed(now time.Time) {
	d.last = now
}

// Normalizer maps raw events to at most one abstract action.
type Normalizer struct {
	mapping   *Mapping
	debouncer *Debouncer
}

func NewNormalizer(mapping *Mapping, cooldown time.Duration) *Normalizer {
	if mapping == nil {
		mapping = DefaultMapping()
	}
	return &Normalizer{
		mapping:   mapping,
		debouncer: NewDebouncer(cooldown),
	}
}

func (n *Normalizer) Debouncer() *Debouncer {
	return n.debouncer
}

// Normalize returns the action for ev at time now. The boolean is false when
// the event maps to nothing or was dropped by the debouncer.
func (n *Normalizer) Normalize(ev Event, now time.Time) (constants.Action, bool) {
	var action constants.Action

	switch ev.Kind {
	case KindQuit:
		return constants.ActionQuit, true
	case KindKeyDown:
		action = n.mapping.KeyboardMap[ev.Key]
	case KindButtonDown:
		action = n.mapping.JoystickButtonMap[ev.Button]
	case KindAxisMotion:
		action = n.axisAction(ev)
	case KindHatMotion:
		action = hatAction(ev)
	}

	if action == constants.ActionNone {
		return constants.ActionNone, false
	}

	if action.IsDirectional() && !n.debouncer.Accept(now) {
		return constants.ActionNone, false
	}

	return action, true
}

func (n *Normalizer) axisAction(ev Event) constants.Action {
	if !n.mapping.VerticalAxes[ev.Axis] {
		return constants.ActionNone
	}

	switch {
	case ev.Value < -n.mapping.AxisThreshold:
		return constants.ActionMoveUp
	case ev.Value > n.mapping.AxisThreshold:
		return constants.ActionMoveDown
	}
	return constants.ActionNone
}

func hatAction(ev Event) constants.Action {
	switch ev.HatY {
	case 1:
		return constants.ActionMoveUp
	case -1:
		return constants.ActionMoveDown
	}
	return constants.ActionNone
}
