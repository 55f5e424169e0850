package input

import "fmt"

// KeyCode is a keyboard key. Values are numerically equal to SDL keycodes so
// an sdl.Keycode converts with a plain cast.
type KeyCode int32

// SDLK_* scancode-derived keys carry the 1<<30 mask.
const (
	KeyUnknown KeyCode = 0
	KeyReturn  KeyCode = 13
	KeyEscape  KeyCode = 27
	KeySpace   KeyCode = 32
	KeyS       KeyCode = 's'
	KeyW       KeyCode = 'w'

	KeyArrowRight KeyCode = 1073741903
	KeyArrowLeft  KeyCode = 1073741904
	KeyArrowDown  KeyCode = 1073741905
	KeyArrowUp    KeyCode = 1073741906
)

func (k KeyCode) Name() string {
	switch k {
	case KeyReturn:
		return "Return"
	case KeyEscape:
		return "Escape"
	case KeySpace:
		return "Space"
	case KeyArrowUp:
		return "Up"
	case KeyArrowDown:
		return "Down"
	case KeyArrowLeft:
		return "Left"
	case KeyArrowRight:
		return "Right"
	}
	if k > 32 && k < 127 {
		return string(rune(k))
	}
	return fmt.Sprintf("Key%d", int32(k))
}
