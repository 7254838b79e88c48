package hooklog

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options defines parameters for hook logger creation.
type Options struct {
	ConsoleLevel string // level for console output (default: info)
	FileLevel    string // level for file output (default: debug)
	File         string // rotating log file path; empty disables the file sink
	App          string
}

// New creates a configured slog.Logger with a tinted console handler and,
// when a file is configured, a rotating JSON file handler. The returned
// closer releases the file sink and is a no-op otherwise.
func New(o Options) (*slog.Logger, func() error) {
	consoleLvl := levelFromString(o.ConsoleLevel, slog.LevelInfo)
	fileLvl := levelFromString(o.FileLevel, slog.LevelDebug)

	var handlers []slog.Handler

	handlers = append(handlers, tint.NewHandler(os.Stderr, &tint.Options{
		Level:      consoleLvl,
		TimeFormat: time.Kitchen,
	}))

	closer := func() error { return nil }

	if o.File != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   o.File,
			MaxSize:    5,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		}
		closer = fileWriter.Close
		handlers = append(handlers, slog.NewJSONHandler(fileWriter, &slog.HandlerOptions{Level: fileLvl}))
	}

	var h slog.Handler
	if len(handlers) == 1 {
		h = handlers[0]
	} else {
		h = newMultiHandler(handlers...)
	}

	l := slog.New(h)
	if o.App != "" {
		l = l.With(slog.String("app", o.App))
	}

	return l, closer
}

// Hook adapts a slog.Logger into a log hook for res.SetLogHook. The
// message tag chooses the level: fatal messages log as Error, recoverable
// ones as Warn, checked warnings as Info. The tag itself stays in the
// message so the wire format of the hook contract is preserved.
func Hook(l *slog.Logger) func(message string) {
	return func(message string) {
		switch {
		case strings.HasPrefix(message, "FATAL: "):
			l.Error(message)
		case strings.HasPrefix(message, "RECOVERABLE: "):
			l.Warn(message)
		case strings.HasPrefix(message, "Warning: "):
			l.Info(message)
		default:
			l.Error(message)
		}
	}
}

func levelFromString(s string, fallback slog.Level) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return fallback
	}
}
