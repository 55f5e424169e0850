package input

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/moonwhale/setup/pkg/kiosk/constants"
)

// DefaultAxisThreshold is the normalized stick deflection needed to count as a move.
const DefaultAxisThreshold = 0.5

// Mapping holds the physical-to-action tables used by the Normalizer.
type Mapping struct {
	KeyboardMap map[KeyCode]constants.Action

	JoystickButtonMap map[uint8]constants.Action

	// VerticalAxes lists the joystick axes read as a vertical stick. Different
	// controller layouts report the left stick Y on different indices.
	VerticalAxes map[uint8]bool

	AxisThreshold float64
}

// mappingFile is the on-disk JSON form. Actions are written by name.
type mappingFile struct {
	KeyboardMap       map[int]string `json:"keyboard_map"`
	JoystickButtonMap map[int]string `json:"joystick_button_map"`
	VerticalAxes      []int          `json:"vertical_axes"`
	AxisThreshold     float64        `json:"axis_threshold"`
}

func DefaultMapping() *Mapping {
	return &Mapping{
		KeyboardMap: map[KeyCode]constants.Action{
			KeyEscape:    constants.ActionCancel,
			KeyArrowUp:   constants.ActionMoveUp,
			KeyW:         constants.ActionMoveUp,
			KeyArrowDown: constants.ActionMoveDown,
			KeyS:         constants.ActionMoveDown,
			KeyReturn:    constants.ActionActivate,
			KeySpace:     constants.ActionActivate,
		},
		// Confirm/start and back buttons sit on different ids across brands.
		JoystickButtonMap: map[uint8]constants.Action{
			0: constants.ActionActivate,
			2: constants.ActionActivate,
			7: constants.ActionActivate,
			9: constants.ActionActivate,
			1: constants.ActionCancel,
			6: constants.ActionCancel,
			8: constants.ActionCancel,
		},
		VerticalAxes: map[uint8]bool{
			1: true,
			3: true,
		},
		AxisThreshold: DefaultAxisThreshold,
	}
}

// ResolveMapping returns the mapping stored at path, or the default mapping
// when path is empty or the file cannot be used.
func ResolveMapping(path string, logger *slog.Logger) *Mapping {
	if path == "" {
		return DefaultMapping()
	}

	mapping, err := LoadMappingFromJSON(path)
	if err != nil {
		logger.Warn("Failed to load custom input mapping, using default", "path", path, "error", err)
		return DefaultMapping()
	}

	logger.Info("Loaded custom input mapping", "path", path)
	if data, err := mapping.ToJSON(); err == nil {
		logger.Debug("Effective input mapping", "mapping", string(data))
	}
	return mapping
}

func LoadMappingFromJSON(filePath string) (*Mapping, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON file: %w", err)
	}
	return LoadMappingFromBytes(data)
}

func LoadMappingFromBytes(data []byte) (*Mapping, error) {
	var file mappingFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	mapping := &Mapping{
		KeyboardMap:       make(map[KeyCode]constants.Action),
		JoystickButtonMap: make(map[uint8]constants.Action),
		VerticalAxes:      make(map[uint8]bool),
		AxisThreshold:     file.AxisThreshold,
	}

	for code, name := range file.KeyboardMap {
		action, ok := constants.ParseAction(name)
		if !ok {
			return nil, fmt.Errorf("keyboard_map[%d]: unknown action %q", code, name)
		}
		mapping.KeyboardMap[KeyCode(code)] = action
	}

	for button, name := range file.JoystickButtonMap {
		if button < 0 || button > 255 {
			return nil, fmt.Errorf("joystick_button_map: button %d out of range", button)
		}
		action, ok := constants.ParseAction(name)
		if !ok {
			return nil, fmt.Errorf("joystick_button_map[%d]: unknown action %q", button, name)
		}
		mapping.JoystickButtonMap[uint8(button)] = action
	}

	for _, axis := range file.VerticalAxes {
		if axis < 0 || axis > 255 {
			return nil, fmt.Errorf("vertical_axes: axis %d out of range", axis)
		}
		mapping.VerticalAxes[uint8(axis)] = true
	}

	if len(mapping.VerticalAxes) == 0 {
		mapping.VerticalAxes = DefaultMapping().VerticalAxes
	}
	if mapping.AxisThreshold <= 0 || mapping.AxisThreshold >= 1 {
		mapping.AxisThreshold = DefaultAxisThreshold
	}

	return mapping, nil
}

// ToJSON converts the Mapping to JSON bytes in the file format.
func (m *Mapping) ToJSON() ([]byte, error) {
	file := mappingFile{
		KeyboardMap:       make(map[int]string),
		JoystickButtonMap: make(map[int]string),
		AxisThreshold:     m.AxisThreshold,
	}

	for code, action := range m.KeyboardMap {
		file.KeyboardMap[int(code)] = action.GetName()
	}
	for button, action := range m.JoystickButtonMap {
		file.JoystickButtonMap[int(button)] = action.GetName()
	}
	for axis := range m.VerticalAxes {
		file.VerticalAxes = append(file.VerticalAxes, int(axis))
	}
	sort.Ints(file.VerticalAxes)

	return json.MarshalIndent(file, "", "  ")
}
