package input

import (
	"testing"
	"time"

	"github.com/moonwhale/setup/pkg/kiosk/constants"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestNormalizer() *Normalizer {
	return NewNormalizer(DefaultMapping(), constants.DefaultMoveCooldown)
}

func expectAction(t *testing.T, n *Normalizer, ev Event, now time.Time, want constants.Action) {
	t.Helper()
	got, ok := n.Normalize(ev, now)
	if want == constants.ActionNone {
		if ok {
			t.Fatalf("expected %s to be dropped, got %s", ev, got.GetName())
		}
		return
	}
	if !ok || got != want {
		t.Fatalf("expected %s for %s, got %s (ok=%v)", want.GetName(), ev, got.GetName(), ok)
	}
}

func TestQuitAlwaysFires(t *testing.T) {
	n := newTestNormalizer()
	expectAction(t, n, KeyDown(KeyArrowDown), t0, constants.ActionMoveDown)
	expectAction(t, n, Quit(), t0.Add(time.Millisecond), constants.ActionQuit)
}

func TestKeyboardMapping(t *testing.T) {
	cases := []struct {
		key  KeyCode
		want constants.Action
	}{
		{KeyEscape, constants.ActionCancel},
		{KeyArrowUp, constants.ActionMoveUp},
		{KeyW, constants.ActionMoveUp},
		{KeyArrowDown, constants.ActionMoveDown},
		{KeyS, constants.ActionMoveDown},
		{KeyReturn, constants.ActionActivate},
		{KeySpace, constants.ActionActivate},
		{KeyArrowLeft, constants.ActionNone},
	}
	for i, tc := range cases {
		n := newTestNormalizer()
		expectAction(t, n, KeyDown(tc.key), t0.Add(time.Duration(i)*time.Second), tc.want)
	}
}

func TestActivateAndCancelAreNotDebounced(t *testing.T) {
	n := newTestNormalizer()
	expectAction(t, n, KeyDown(KeyReturn), t0, constants.ActionActivate)
	expectAction(t, n, KeyDown(KeyReturn), t0.Add(time.Millisecond), constants.ActionActivate)
	expectAction(t, n, ButtonDown(1), t0.Add(2*time.Millisecond), constants.ActionCancel)
	expectAction(t, n, KeyDown(KeyEscape), t0.Add(3*time.Millisecond), constants.ActionCancel)
}

func TestDirectionalKeysAreDebounced(t *testing.T) {
	n := newTestNormalizer()
	expectAction(t, n, KeyDown(KeyArrowDown), t0, constants.ActionMoveDown)
	expectAction(t, n, KeyDown(KeyArrowDown), t0.Add(100*time.Millisecond), constants.ActionNone)
	expectAction(t, n, KeyDown(KeyArrowUp), t0.Add(300*time.Millisecond), constants.ActionNone)
	expectAction(t, n, KeyDown(KeyArrowUp), t0.Add(301*time.Millisecond), constants.ActionMoveUp)
}

func TestDroppedMoveDoesNotResetWindow(t *testing.T) {
	n := newTestNormalizer()
	expectAction(t, n, KeyDown(KeyArrowDown), t0, constants.ActionMoveDown)
	expectAction(t, n, KeyDown(KeyArrowDown), t0.Add(250*time.Millisecond), constants.ActionNone)
	// Measured from t0, not from the dropped move at 250ms.
	expectAction(t, n, KeyDown(KeyArrowDown), t0.Add(301*time.Millisecond), constants.ActionMoveDown)
}

func TestDebounceSharedAcrossSources(t *testing.T) {
	n := newTestNormalizer()
	expectAction(t, n, KeyDown(KeyArrowDown), t0, constants.ActionMoveDown)
	expectAction(t, n, AxisMotion(1, 0.9), t0.Add(50*time.Millisecond), constants.ActionNone)
	expectAction(t, n, HatMotion(0, 1), t0.Add(100*time.Millisecond), constants.ActionNone)
	expectAction(t, n, HatMotion(0, 1), t0.Add(400*time.Millisecond), constants.ActionMoveUp)
}

func TestAxisMotion(t *testing.T) {
	cases := []struct {
		axis  uint8
		value float64
		want  constants.Action
	}{
		{1, -0.8, constants.ActionMoveUp},
		{1, 0.8, constants.ActionMoveDown},
		{3, -0.51, constants.ActionMoveUp},
		{3, 0.51, constants.ActionMoveDown},
		{1, 0.5, constants.ActionNone},
		{1, -0.5, constants.ActionNone},
		{0, -1, constants.ActionNone},
		{2, 1, constants.ActionNone},
	}
	for _, tc := range cases {
		n := newTestNormalizer()
		expectAction(t, n, AxisMotion(tc.axis, tc.value), t0, tc.want)
	}
}

func TestAxisNeverActivates(t *testing.T) {
	n := newTestNormalizer()
	for axis := 0; axis < 8; axis++ {
		got, ok := n.Normalize(AxisMotion(uint8(axis), 1), t0.Add(time.Duration(axis)*time.Second))
		if ok && got == constants.ActionActivate {
			t.Fatalf("expected axis %d never to activate", axis)
		}
	}
}

func TestButtons(t *testing.T) {
	for _, b := range []uint8{0, 2, 7, 9} {
		expectAction(t, newTestNormalizer(), ButtonDown(b), t0, constants.ActionActivate)
	}
	for _, b := range []uint8{1, 6, 8} {
		expectAction(t, newTestNormalizer(), ButtonDown(b), t0, constants.ActionCancel)
	}
	for _, b := range []uint8{3, 4, 5, 10} {
		expectAction(t, newTestNormalizer(), ButtonDown(b), t0, constants.ActionNone)
	}
}

func TestHatMotion(t *testing.T) {
	expectAction(t, newTestNormalizer(), HatMotion(0, 1), t0, constants.ActionMoveUp)
	expectAction(t, newTestNormalizer(), HatMotion(0, -1), t0, constants.ActionMoveDown)
	expectAction(t, newTestNormalizer(), HatMotion(1, 0), t0, constants.ActionNone)
	expectAction(t, newTestNormalizer(), HatMotion(0, 0), t0, constants.ActionNone)
}

func TestPointerProducesNoAction(t *testing.T) {
	expectAction(t, newTestNormalizer(), PointerDown(), t0, constants.ActionNone)
}

func TestSeedDropsEarlyMoves(t *testing.T) {
	n := newTestNormalizer()
	n.Debouncer().Seed(t0)

	expectAction(t, n, KeyDown(KeyArrowDown), t0.Add(100*time.Millisecond), constants.ActionNone)
	expectAction(t, n, KeyDown(KeyReturn), t0.Add(150*time.Millisecond), constants.ActionActivate)
	expectAction(t, n, KeyDown(KeyArrowDown), t0.Add(301*time.Millisecond), constants.ActionMoveDown)
}
