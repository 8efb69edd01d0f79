package logger

import (
	"log/slog"
	"os"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
)

// SetupPrettySlog is the local-development logger: colored levels, short
// timestamps, debug enabled.
func SetupPrettySlog() *slog.Logger {
	h := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:       slog.LevelDebug,
		ReplaceAttr: replacePretty,
	})
	return slog.New(h)
}

func replacePretty(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return a
	}
	switch a.Key {
	case slog.TimeKey:
		if t, ok := a.Value.Any().(time.Time); ok {
			return slog.String(slog.TimeKey, t.Format("15:04:05.000"))
		}
	case slog.LevelKey:
		if lvl, ok := a.Value.Any().(slog.Level); ok {
			return slog.String(slog.LevelKey, colorize(lvl))
		}
	}
	return a
}

func colorize(lvl slog.Level) string {
	switch {
	case lvl >= slog.LevelError:
		return colorRed + lvl.String() + colorReset
	case lvl >= slog.LevelWarn:
		return colorYellow + lvl.String() + colorReset
	case lvl >= slog.LevelInfo:
		return colorBlue + lvl.String() + colorReset
	default:
		return colorGray + lvl.String() + colorReset
	}
}
