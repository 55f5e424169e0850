package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

type Window struct {
	Window     *sdl.Window
	Renderer   *sdl.Renderer
	Title      string
	Width      int32
	Height     int32
	Fullscreen bool
}

// InitSDL brings up the SDL subsystems. Video and TTF are required; joystick
// and image support degrade to warnings.
func InitSDL() error {
	logger := GetInternalLogger()

	sdl.SetHint(sdl.HINT_JOYSTICK_ALLOW_BACKGROUND_EVENTS, "1")

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("initialize SDL video: %w", err)
	}

	if err := sdl.InitSubSystem(sdl.INIT_JOYSTICK); err != nil {
		logger.Warn("Joystick subsystem unavailable, continuing without controllers", "error", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return fmt.Errorf("initialize SDL_ttf: %w", err)
	}

	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		logger.Warn("SDL_image init incomplete, logo may not load", "error", err)
	}

	var version sdl.Version
	sdl.GetVersion(&version)
	driver, _ := sdl.GetCurrentVideoDriver()
	logger.Info("SDL initialized",
		"version", fmt.Sprintf("%d.%d.%d", version.Major, version.Minor, version.Patch),
		"video_driver", driver,
	)

	return nil
}

func SDLCleanup() {
	img.Quit()
	ttf.Quit()
	sdl.Quit()
}

// InitWindow opens the kiosk window. A fullscreen request that the driver
// refuses is retried windowed at the same size.
func InitWindow(title string, width, height int32, fullscreen bool) (*Window, error) {
	logger := GetInternalLogger()

	var flags uint32 = sdl.WINDOW_SHOWN
	if fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}

	logger.Debug("Initializing SDL Window", "width", width, "height", height, "fullscreen", fullscreen)

	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)
	window, err := sdl.CreateWindow(title, x, y, width, height, flags)
	if err != nil && fullscreen {
		logger.Warn("Fullscreen window failed, falling back to windowed", "error", err)
		fullscreen = false
		window, err = sdl.CreateWindow(title, x, y, width, height, sdl.WINDOW_SHOWN)
	}
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		logger.Warn("Accelerated renderer unavailable, using software", "error", err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
	}
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	if err := renderer.SetLogicalSize(width, height); err != nil {
		logger.Warn("Failed to set logical size", "error", err)
	}
	if err := renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		logger.Warn("Failed to enable alpha blending", "error", err)
	}

	return &Window{
		Window:     window,
		Renderer:   renderer,
		Title:      title,
		Width:      width,
		Height:     height,
		Fullscreen: fullscreen,
	}, nil
}

func (window *Window) Close() {
	if window == nil {
		return
	}
	if window.Renderer != nil {
		window.Renderer.Destroy()
	}
	if window.Window != nil {
		window.Window.Destroy()
	}
}
