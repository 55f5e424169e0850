// Package input turns raw device notifications into the kiosk's abstract
// actions. It has no SDL dependency; the SDL and evdev adapters build Event
// values and hand them over.
package input

import "fmt"

type Kind int

const (
	KindQuit Kind = iota
	KindKeyDown
	KindAxisMotion
	KindButtonDown
	KindHatMotion
	KindPointerDown
)

func (k Kind) String() string {
	switch k {
	case KindQuit:
		return "Quit"
	case KindKeyDown:
		return "KeyDown"
	case KindAxisMotion:
		return "AxisMotion"
	case KindButtonDown:
		return "ButtonDown"
	case KindHatMotion:
		return "HatMotion"
	case KindPointerDown:
		return "PointerDown"
	default:
		return "Unknown"
	}
}

type Source int

const (
	SourceWindow Source = iota
	SourceKeyboard
	SourceJoystick
	SourceHatSwitch
	SourcePointer
	SourceRemote
)

// Event is one raw device notification. Only the payload fields matching
// Kind are meaningful.
type Event struct {
	Kind   Kind
	Source Source

	Key KeyCode // KindKeyDown

	Axis  uint8   // KindAxisMotion
	Value float64 // KindAxisMotion, normalized to [-1, 1]

	Button uint8 // KindButtonDown

	HatX int8 // KindHatMotion, +1 right
	HatY int8 // KindHatMotion, +1 up
}

func Quit() Event {
	return Event{Kind: KindQuit, Source: SourceWindow}
}

func KeyDown(code KeyCode) Event {
	return Event{Kind: KindKeyDown, Source: SourceKeyboard, Key: code}
}

func AxisMotion(axis uint8, value float64) Event {
	return Event{Kind: KindAxisMotion, Source: SourceJoystick, Axis: axis, Value: value}
}

func ButtonDown(button uint8) Event {
	return Event{Kind: KindButtonDown, Source: SourceJoystick, Button: button}
}

func HatMotion(dx, dy int8) Event {
	return Event{Kind: KindHatMotion, Source: SourceHatSwitch, HatX: dx, HatY: dy}
}

func PointerDown() Event {
	return Event{Kind: KindPointerDown, Source: SourcePointer}
}

func (e Event) String() string {
	switch e.Kind {
	case KindKeyDown:
		return fmt.Sprintf("KeyDown(%s)", e.Key.Name())
	case KindAxisMotion:
		return fmt.Sprintf("AxisMotion(%d, %.2f)", e.Axis, e.Value)
	case KindButtonDown:
		return fmt.Sprintf("ButtonDown(%d)", e.Button)
	case KindHatMotion:
		return fmt.Sprintf("HatMotion(%d, %d)", e.HatX, e.HatY)
	default:
		return e.Kind.String()
	}
}

// RemoteKeyDown is a key press that arrived from the evdev remote reader.
func RemoteKeyDown(code KeyCode) Event {
	return Event{Kind: KindKeyDown, Source: SourceRemote, Key: code}
}

// NormalizeAxis scales a raw signed 16-bit axis reading to [-1, 1].
func NormalizeAxis(raw int16) float64 {
	v := float64(raw) / 32767
	if v < -1 {
		return -1
	}
	return v
}

// Hat position bits as reported by the joystick layer.
const (
	HatUp    uint8 = 0x01
	HatRight uint8 = 0x02
	HatDown  uint8 = 0x04
	HatLeft  uint8 = 0x08
)

// HatFromBits converts a hat bitmask to a direction, +1 meaning right or up.
// Opposing bits cancel out.
func HatFromBits(bits uint8) (dx, dy int8) {
	if bits&HatRight != 0 {
		dx++
	}
	if bits&HatLeft != 0 {
		dx--
	}
	if bits&HatUp != 0 {
		dy++
	}
	if bits&HatDown != 0 {
		dy--
	}
	return dx, dy
}
