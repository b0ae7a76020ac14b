package logger

import (
	"log/slog"
	"os"
)

// Log is the process-wide structured logger. Everything from the HTTP
// middleware to the insight pipeline logs through it, so Init must run
// before the router is built.
var Log *slog.Logger

// Init configures JSON output so analysis and request log lines arrive
// at the collector as structured records.
func Init() {
	Log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
