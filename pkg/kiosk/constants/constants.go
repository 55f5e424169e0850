// Package constants defines shared constants, types, and configuration values
// used throughout the kiosk.
package constants

import (
	"time"
)

// Development is the ENVIRONMENT value that selects development mode.
const Development = "DEV"

// Environment variables read by the kiosk.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	ConfigPathEnvVar   = "KIOSK_CONFIG"
	LogLevelEnvVar     = "KIOSK_LOG_LEVEL"
	FallbackFontEnvVar = "FALLBACK_FONT"
	MappingPathEnvVar  = "INPUT_MAPPING_PATH"
	RemoteDeviceEnvVar = "REMOTE_DEVICE"
)

// Action is an abstract input action, normalized from whichever physical
// device produced it.
type Action int

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionActivate
	ActionCancel
	ActionQuit
)

func (a Action) GetName() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionActivate:
		return "Activate"
	case ActionCancel:
		return "Cancel"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseAction is the inverse of GetName. Unknown names yield ActionNone and false.
func ParseAction(name string) (Action, bool) {
	for a := ActionNone; a <= ActionQuit; a++ {
		if a.GetName() == name {
			return a, true
		}
	}
	return ActionNone, false
}

// IsDirectional reports whether the action moves the selection.
func (a Action) IsDirectional() bool {
	return a == ActionMoveUp || a == ActionMoveDown
}

// Default timing constants.
const (
	DefaultMoveCooldown = 300 * time.Millisecond // Minimum gap between accepted directional actions
	DefaultDialogGrace  = 500 * time.Millisecond // Inputs before this are discarded by a shown dialog
	DefaultFrameRate    = 30
	MaxEventsPerFrame   = 64
)

// Default screen geometry.
const (
	DefaultScreenWidth  int32 = 1280
	DefaultScreenHeight int32 = 720
)
