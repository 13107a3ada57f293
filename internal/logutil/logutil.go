// Package logutil configures the internal debug log.
package logutil

import (
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Init routes the default slog logger to a size-rotated JSON log file. The
// countdown owns the terminal, so diagnostics never go to stdout.
func Init(path string) {
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    1, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))
}
