package internal

import (
	"github.com/moonwhale/setup/pkg/kiosk/input"
	"github.com/veandco/go-sdl2/sdl"
)

// TranslateEvent converts an SDL event into a device-neutral input event.
// Key repeats, releases and unrelated events report false.
func TranslateEvent(event sdl.Event) (input.Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return input.Quit(), true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_CLOSE {
			return input.Quit(), true
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
			return input.KeyDown(input.KeyCode(e.Keysym.Sym)), true
		}

	case *sdl.JoyAxisEvent:
		return input.AxisMotion(e.Axis, input.NormalizeAxis(e.Value)), true

	case *sdl.JoyButtonEvent:
		if e.Type == sdl.JOYBUTTONDOWN {
			return input.ButtonDown(e.Button), true
		}

	case *sdl.JoyHatEvent:
		dx, dy := input.HatFromBits(e.Value)
		return input.HatMotion(dx, dy), true

	case *sdl.MouseButtonEvent:
		if e.Type == sdl.MOUSEBUTTONDOWN {
			return input.PointerDown(), true
		}
	}

	return input.Event{}, false
}
