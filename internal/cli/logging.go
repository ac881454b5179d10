package cli

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/extreg-labs/extreg/internal/branding"
)

// logLevel reads EXTREG_LOG_LEVEL. Progress logging is quiet by default;
// results are printed by the commands themselves.
func logLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(branding.EnvVar("log_level")))) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning", "":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel()}))
}
