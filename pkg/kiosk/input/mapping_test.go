package input

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/moonwhale/setup/pkg/kiosk/constants"
)

func TestLoadMappingFromBytes(t *testing.T) {
	data := []byte(`{
		"keyboard_map": {"13": "Activate", "27": "Cancel", "106": "MoveDown"},
		"joystick_button_map": {"4": "Activate"},
		"vertical_axes": [4],
		"axis_threshold": 0.25
	}`)

	m, err := LoadMappingFromBytes(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.KeyboardMap['j'] != constants.ActionMoveDown {
		t.Fatalf("expected j mapped to MoveDown, got %s", m.KeyboardMap['j'].GetName())
	}
	if m.JoystickButtonMap[4] != constants.ActionActivate {
		t.Fatalf("expected button 4 mapped to Activate")
	}
	if _, ok := m.JoystickButtonMap[0]; ok {
		t.Fatalf("expected file mapping to replace defaults")
	}
	if !m.VerticalAxes[4] || m.VerticalAxes[1] {
		t.Fatalf("expected vertical axes {4}, got %v", m.VerticalAxes)
	}
	if m.AxisThreshold != 0.25 {
		t.Fatalf("expected threshold 0.25, got %v", m.AxisThreshold)
	}
}

func TestLoadMappingDefaultsAxes(t *testing.T) {
	m, err := LoadMappingFromBytes([]byte(`{"keyboard_map": {"13": "Activate"}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.VerticalAxes[1] || !m.VerticalAxes[3] {
		t.Fatalf("expected default vertical axes, got %v", m.VerticalAxes)
	}
	if m.AxisThreshold != DefaultAxisThreshold {
		t.Fatalf("expected default threshold, got %v", m.AxisThreshold)
	}
}

func TestLoadMappingRejectsUnknownAction(t *testing.T) {
	if _, err := LoadMappingFromBytes([]byte(`{"keyboard_map": {"13": "Jump"}}`)); err == nil {
		t.Fatalf("expected error for unknown action")
	}
	if _, err := LoadMappingFromBytes([]byte(`{"joystick_button_map": {"300": "Activate"}}`)); err == nil {
		t.Fatalf("expected error for out of range button")
	}
	if _, err := LoadMappingFromBytes([]byte(`not json`)); err == nil {
		t.Fatalf("expected error for malformed JSON")
	}
}

func TestMappingJSONRoundTripKeepsDefaults(t *testing.T) {
	data, err := DefaultMapping().ToJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, err := LoadMappingFromBytes(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := DefaultMapping()
	if len(m.KeyboardMap) != len(def.KeyboardMap) || len(m.JoystickButtonMap) != len(def.JoystickButtonMap) {
		t.Fatalf("expected table sizes to survive, got %d/%d", len(m.KeyboardMap), len(m.JoystickButtonMap))
	}
	for k, a := range def.KeyboardMap {
		if m.KeyboardMap[k] != a {
			t.Fatalf("expected %s -> %s, got %s", k.Name(), a.GetName(), m.KeyboardMap[k].GetName())
		}
	}
}

func TestResolveMappingFallsBack(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	m := ResolveMapping(path, logger)
	if m.KeyboardMap[KeyReturn] != constants.ActionActivate {
		t.Fatalf("expected default mapping after failed load")
	}

	m = ResolveMapping(filepath.Join(t.TempDir(), "missing.json"), logger)
	if m.JoystickButtonMap[9] != constants.ActionActivate {
		t.Fatalf("expected default mapping for missing file")
	}
}

func TestResolveMappingLogsEffectiveMapping(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	path := filepath.Join(t.TempDir(), "mapping.json")
	if err := os.WriteFile(path, []byte(`{"keyboard_map": {"13": "Activate"}}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	m := ResolveMapping(path, logger)
	if m.KeyboardMap[KeyReturn] != constants.ActionActivate {
		t.Fatalf("expected custom mapping loaded")
	}
	if !strings.Contains(buf.String(), "Effective input mapping") || !strings.Contains(buf.String(), "Activate") {
		t.Fatalf("expected effective mapping logged, got %s", buf.String())
	}
}
