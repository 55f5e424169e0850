package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"syscall"

	"github.com/moonwhale/setup/pkg/kiosk"
	"github.com/moonwhale/setup/pkg/kiosk/config"
)

// SDL requires all video calls on the main OS thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() (code int) {
	path := config.Path(os.Getenv)
	cfg, found, cfgErr := config.Load(path)
	envErrs := cfg.ApplyEnv(os.Getenv)

	kiosk.SetLogFilename(cfg.LogFile)
	level, levelOK := cfg.Level()
	kiosk.SetLogLevel(level)
	logger := kiosk.GetLogger()
	defer kiosk.CloseLogger()

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Unexpected fault", "panic", r, "stack", string(debug.Stack()))
			code = 1
		}
	}()

	switch {
	case cfgErr != nil:
		logger.Warn("Ignoring unusable config file, using defaults", "path", path, "error", cfgErr)
	case found:
		logger.Info("Loaded config", "path", path)
	default:
		logger.Debug("No config file, using defaults", "path", path)
	}
	if !levelOK {
		logger.Warn("Unknown log level, using info", "log_level", cfg.LogLevel)
	}
	for _, err := range envErrs {
		logger.Warn("Ignoring environment override", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := kiosk.Init(ctx, cfg)
	if err != nil {
		logger.Error("Failed to initialize", "error", err)
		return 1
	}
	defer app.Close()

	if err := app.Run(ctx); err != nil {
		logger.Error("Kiosk stopped with error", "error", err)
		return 1
	}

	return 0
}
