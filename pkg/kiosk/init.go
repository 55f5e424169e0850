package kiosk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/moonwhale/setup/pkg/kiosk/config"
	"github.com/moonwhale/setup/pkg/kiosk/i18n"
	"github.com/moonwhale/setup/pkg/kiosk/input"
	"github.com/moonwhale/setup/pkg/kiosk/internal"
	"github.com/moonwhale/setup/pkg/kiosk/layout"
	"github.com/moonwhale/setup/pkg/kiosk/menu"
	"github.com/moonwhale/setup/pkg/kiosk/remote"
	"github.com/moonwhale/setup/pkg/kiosk/session"
	"github.com/veandco/go-sdl2/sdl"
)

// App owns every SDL resource and the session state for one run.
type App struct {
	config config.Config
	screen layout.Screen
	theme  internal.Theme

	window      *internal.Window
	fonts       *internal.Fonts
	logo        *sdl.Texture
	controllers *internal.Controllers
	remote      *remote.Remote
	session     *session.Session

	dialog dialogCache
	cancel context.CancelFunc
}

// Init brings up SDL and builds the session described by cfg.
// Must be called before Run, and paired with Close.
func Init(ctx context.Context, cfg config.Config) (*App, error) {
	logger := internal.GetLogger()

	if err := i18n.InitI18N(cfg.MessageFiles); err != nil {
		logger.Warn("Failed to load message files, using built-in strings", "files", cfg.MessageFiles, "error", err)
		if err := i18n.InitI18N(nil); err != nil {
			return nil, fmt.Errorf("load built-in strings: %w", err)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	app := &App{
		config: cfg,
		screen: layout.Screen{Width: int(cfg.Width), Height: int(cfg.Height)},
		theme:  internal.DefaultTheme(),
		cancel: cancel,
	}

	sess, err := session.New(session.Options{
		Entries:      menu.DefaultEntries(),
		Mapping:      input.ResolveMapping(cfg.InputMapping, logger),
		MoveCooldown: cfg.MoveCooldown(),
		DialogGrace:  cfg.DialogGrace(),
		Logger:       logger,
	})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("build menu: %w", err)
	}
	app.session = sess

	if err := internal.InitSDL(); err != nil {
		cancel()
		return nil, err
	}

	title := cfg.WindowTitle
	if title == "" {
		title = i18n.GetString(i18n.WindowTitle)
	}

	app.window, err = internal.InitWindow(title, cfg.Width, cfg.Height, cfg.Fullscreen)
	if err != nil {
		app.Close()
		return nil, err
	}

	app.fonts, err = internal.LoadFonts(cfg.FontPath, cfg.FontFamily, internal.DefaultFontSizes)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("load fonts: %w", err)
	}
	logger.Info("Fonts loaded", "source", string(app.fonts.Source), "path", app.fonts.Path)

	app.logo = internal.LoadLogo(app.window.Renderer,
		internal.LogoPaths(cfg.LogoPath, config.ExecutableDir()),
		layout.LogoSize)

	app.controllers = internal.NewControllers()
	app.controllers.OpenAll()

	if cfg.RemoteDevice != "" {
		app.remote, err = remote.Open(ctx, cfg.RemoteDevice, internal.GetInternalLogger())
		switch {
		case errors.Is(err, remote.ErrUnsupported):
			logger.Info("Remote input not supported on this platform", "device", cfg.RemoteDevice)
		case err != nil:
			logger.Warn("Failed to open remote input device, continuing without it", "device", cfg.RemoteDevice, "error", err)
		}
	}

	logger.Info("Kiosk initialized",
		"width", cfg.Width,
		"height", cfg.Height,
		"fullscreen", app.window.Fullscreen,
		"entries", app.session.Menu.Len(),
	)

	return app, nil
}

// Close releases everything Init acquired. It is safe on a partially
// initialized App.
func (a *App) Close() {
	a.cancel()
	a.remote.Close()
	if a.controllers != nil {
		a.controllers.CloseAll()
	}
	if a.logo != nil {
		a.logo.Destroy()
	}
	a.fonts.Close()
	a.window.Close()
	internal.SDLCleanup()
}

func SetLogFilename(filename string) {
	internal.SetLogFilename(filename)
}

func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

func CloseLogger() {
	internal.CloseLogger()
}
