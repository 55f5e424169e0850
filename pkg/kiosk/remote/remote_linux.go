//go:build linux

package remote

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/holoplot/go-evdev"
	"github.com/moonwhale/setup/pkg/kiosk/input"
)

var remoteKeys = map[evdev.EvCode]input.KeyCode{
	evdev.KEY_UP:     input.KeyArrowUp,
	evdev.KEY_DOWN:   input.KeyArrowDown,
	evdev.KEY_W:      input.KeyW,
	evdev.KEY_S:      input.KeyS,
	evdev.KEY_ENTER:  input.KeyReturn,
	evdev.KEY_OK:     input.KeyReturn,
	evdev.KEY_SELECT: input.KeyReturn,
	evdev.KEY_SPACE:  input.KeySpace,
	evdev.KEY_ESC:    input.KeyEscape,
	evdev.KEY_BACK:   input.KeyEscape,
	evdev.KEY_EXIT:   input.KeyEscape,
}

type evdevSource struct {
	device *evdev.InputDevice
	logger *slog.Logger
}

func (s *evdevSource) Next() (input.KeyCode, error) {
	for {
		ev, err := s.device.ReadOne()
		if err != nil {
			return input.KeyUnknown, err
		}

		// Value 1 is a press; 0 release and 2 autorepeat are ignored.
		if ev.Type != evdev.EV_KEY || ev.Value != 1 {
			continue
		}

		code, ok := remoteKeys[ev.Code]
		if !ok {
			s.logger.Debug("Unmapped remote key", "code", ev.CodeName())
			continue
		}
		return code, nil
	}
}

func (s *evdevSource) Close() error {
	return s.device.Close()
}

// Open opens the evdev device at path and starts reading.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Remote, error) {
	device, err := evdev.Open(path)
	if err != nil {
		return nil, err
	}

	name, _ := device.Name()

	// Every ioctl leaves the fd blocking. Switching it back last lets Close
	// interrupt a pending ReadOne; nothing may touch the fd after this.
	if err := device.NonBlock(); err != nil {
		device.Close()
		return nil, fmt.Errorf("set %s non-blocking: %w", path, err)
	}

	logger.Info("Opened remote input device", "path", path, "name", name)
	return start(ctx, &evdevSource{device: device, logger: logger}, path, logger), nil
}
