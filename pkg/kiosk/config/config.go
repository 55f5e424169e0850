// Package config loads the kiosk's optional TOML configuration. The file is
// read once at startup and never written.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/moonwhale/setup/pkg/kiosk/constants"
)

const DefaultFilename = "kiosk.toml"

type Config struct {
	WindowTitle    string   `toml:"window_title"`
	Width          int32    `toml:"width"`
	Height         int32    `toml:"height"`
	Fullscreen     bool     `toml:"fullscreen"`
	FrameRate      int      `toml:"frame_rate"`
	MoveCooldownMS int      `toml:"move_cooldown_ms"`
	DialogGraceMS  int      `toml:"dialog_grace_ms"`
	FontFamily     string   `toml:"font_family"`
	FontPath       string   `toml:"font_path"`
	LogoPath       string   `toml:"logo_path"`
	InputMapping   string   `toml:"input_mapping"`
	RemoteDevice   string   `toml:"remote_device"`
	LogLevel       string   `toml:"log_level"`
	LogFile        string   `toml:"log_file"`
	MessageFiles   []string `toml:"message_files"`
}

func Default() Config {
	return Config{
		Width:          constants.DefaultScreenWidth,
		Height:         constants.DefaultScreenHeight,
		Fullscreen:     true,
		FrameRate:      constants.DefaultFrameRate,
		MoveCooldownMS: int(constants.DefaultMoveCooldown / time.Millisecond),
		DialogGraceMS:  int(constants.DefaultDialogGrace / time.Millisecond),
		FontFamily:     "Arial",
		LogLevel:       "info",
		LogFile:        "setup.log",
	}
}

func (c Config) MoveCooldown() time.Duration {
	return time.Duration(c.MoveCooldownMS) * time.Millisecond
}

func (c Config) DialogGrace() time.Duration {
	return time.Duration(c.DialogGraceMS) * time.Millisecond
}

// Level parses LogLevel. An unrecognized name yields info and false; an
// empty one is info.
func (c Config) Level() (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

func (c Config) FrameDuration() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}

// Load reads path over the defaults. A missing file is not an error and
// reports found=false; a malformed one returns the defaults and the error.
// Relative paths inside the file are resolved against the file's directory.
func Load(path string) (cfg Config, found bool, err error) {
	cfg = Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, false, nil
	}
	if err != nil {
		return cfg, false, fmt.Errorf("read config %s: %w", path, err)
	}

	loaded := Default()
	if _, err := toml.Decode(string(data), &loaded); err != nil {
		return cfg, true, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := loaded.validate(); err != nil {
		return cfg, true, fmt.Errorf("config %s: %w", path, err)
	}

	loaded.resolvePaths(filepath.Dir(path))
	return loaded, true, nil
}

func (c *Config) validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("invalid resolution %dx%d", c.Width, c.Height)
	case c.FrameRate <= 0:
		return fmt.Errorf("invalid frame_rate %d", c.FrameRate)
	case c.MoveCooldownMS < 0:
		return fmt.Errorf("invalid move_cooldown_ms %d", c.MoveCooldownMS)
	case c.DialogGraceMS < 0:
		return fmt.Errorf("invalid dialog_grace_ms %d", c.DialogGraceMS)
	}
	return nil
}

func (c *Config) resolvePaths(dir string) {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}

	c.FontPath = resolve(c.FontPath)
	c.LogoPath = resolve(c.LogoPath)
	c.InputMapping = resolve(c.InputMapping)
	for idx, f := range c.MessageFiles {
		c.MessageFiles[idx] = resolve(f)
	}
}

// ApplyEnv overrides file values with environment variables. Dev mode runs
// windowed and honours WINDOW_WIDTH/WINDOW_HEIGHT.
func (c *Config) ApplyEnv(getenv func(string) string) []error {
	var errs []error

	if v := getenv(constants.FallbackFontEnvVar); v != "" {
		c.FontPath = v
	}
	if v := getenv(constants.MappingPathEnvVar); v != "" {
		c.InputMapping = v
	}
	if v := getenv(constants.RemoteDeviceEnvVar); v != "" {
		c.RemoteDevice = v
	}
	if v := getenv(constants.LogLevelEnvVar); v != "" {
		c.LogLevel = v
	}

	if getenv(constants.EnvironmentEnvVar) == constants.Development {
		c.Fullscreen = false
		c.LogLevel = "debug"

		if v := getenv("WINDOW_WIDTH"); v != "" {
			if n, err := strconv.ParseInt(v, 10, 32); err == nil && n > 0 {
				c.Width = int32(n)
			} else {
				errs = append(errs, fmt.Errorf("invalid WINDOW_WIDTH %q", v))
			}
		}
		if v := getenv("WINDOW_HEIGHT"); v != "" {
			if n, err := strconv.ParseInt(v, 10, 32); err == nil && n > 0 {
				c.Height = int32(n)
			} else {
				errs = append(errs, fmt.Errorf("invalid WINDOW_HEIGHT %q", v))
			}
		}
	}

	return errs
}

// Path returns the config file location: KIOSK_CONFIG if set, otherwise
// kiosk.toml beside the executable.
func Path(getenv func(string) string) string {
	if p := getenv(constants.ConfigPathEnvVar); p != "" {
		return p
	}
	return filepath.Join(ExecutableDir(), DefaultFilename)
}

// ExecutableDir is the directory holding the running binary, or the working
// directory if that cannot be determined.
func ExecutableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}
