package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

var (
	logFile     *os.File
	logFilename string

	setupOnce   sync.Once
	multiWriter io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   *slog.LevelVar
)

// SetLogFilename must be called before the first logger is requested.
func SetLogFilename(filename string) {
	logFilename = filename
}

// setup opens logs/<file> next to stdout. A log file that cannot be opened
// is reported on stderr and logging continues on stdout alone.
func setup() {
	setupOnce.Do(func() {
		multiWriter = os.Stdout

		if err := os.MkdirAll("logs", 0755); err != nil {
			os.Stderr.WriteString("Failed to create logs directory: " + err.Error() + "\n")
			return
		}

		filename := logFilename
		if filename == "" {
			filename = "setup.log"
		}

		var err error
		logFile, err = os.OpenFile(filepath.Join("logs", filename), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			os.Stderr.WriteString("Failed to open log file: " + err.Error() + "\n")
			return
		}

		multiWriter = io.MultiWriter(os.Stdout, logFile)
	})
}

func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}

		setup()

		handler := slog.NewJSONHandler(multiWriter, &slog.HandlerOptions{
			Level:     levelVar,
			AddSource: false,
		})
		logger = slog.New(handler).With("component", "app")
	})
	return logger
}

func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLevelVar = &slog.LevelVar{}

		setup()

		handler := slog.NewJSONHandler(multiWriter, &slog.HandlerOptions{
			Level:     internalLevelVar,
			AddSource: false,
		})
		internalLogger = slog.New(handler).With("component", "sdl")
	})
	return internalLogger
}

// SetLogLevel sets both loggers.
func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)

	GetInternalLogger()
	internalLevelVar.Set(level)
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
