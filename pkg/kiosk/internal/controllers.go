package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Controllers tracks the joysticks currently open, keyed by instance id.
type Controllers struct {
	joysticks map[sdl.JoystickID]*sdl.Joystick
}

func NewControllers() *Controllers {
	return &Controllers{joysticks: make(map[sdl.JoystickID]*sdl.Joystick)}
}

// OpenAll opens every joystick present at startup. Failures are logged and
// skipped.
func (c *Controllers) OpenAll() {
	count := sdl.NumJoysticks()
	GetInternalLogger().Debug("Detecting controllers", "joystick_count", count)

	for i := 0; i < count; i++ {
		c.open(i)
	}

	GetInternalLogger().Info("Controller detection complete", "opened", len(c.joysticks), "total_joysticks", count)
}

func (c *Controllers) open(index int) {
	joystick := sdl.JoystickOpen(index)
	if joystick == nil {
		GetInternalLogger().Warn("Failed to open joystick", "index", index, "error", sdl.GetError())
		return
	}

	id := joystick.InstanceID()
	if _, ok := c.joysticks[id]; ok {
		// SDL hands back the already-open device; drop the extra reference.
		joystick.Close()
		return
	}

	c.joysticks[id] = joystick
	GetInternalLogger().Info("Opened joystick",
		"index", index,
		"instance_id", id,
		"name", joystick.Name(),
		"axes", joystick.NumAxes(),
		"buttons", joystick.NumButtons(),
		"hats", joystick.NumHats(),
	)
}

// HandleDeviceEvent applies hot-plug notifications and reports whether the
// event was one.
func (c *Controllers) HandleDeviceEvent(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.JoyDeviceAddedEvent:
		c.open(int(e.Which))
		return true

	case *sdl.JoyDeviceRemovedEvent:
		id := sdl.JoystickID(e.Which)
		if joystick, ok := c.joysticks[id]; ok {
			GetInternalLogger().Info("Joystick removed", "instance_id", id, "name", joystick.Name())
			joystick.Close()
			delete(c.joysticks, id)
		}
		return true
	}
	return false
}

func (c *Controllers) Attached() int {
	return len(c.joysticks)
}

func (c *Controllers) CloseAll() {
	for id, joystick := range c.joysticks {
		joystick.Close()
		delete(c.joysticks, id)
	}
}
