package logger

import (
	"io"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"

	"lenscraft-server/internal/config"
)

// New builds a structured logger from the LOG_* settings. Unknown levels fall back to info.
func New(cfg config.Log, out io.Writer) *charmlog.Logger {
	if out == nil {
		out = os.Stdout
	}

	level, err := charmlog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = charmlog.InfoLevel
	}

	l := charmlog.NewWithOptions(out, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02T15:04:05.000Z07:00",
		Level:           level,
	})
	if strings.EqualFold(cfg.Format, "json") {
		l.SetFormatter(charmlog.JSONFormatter)
	} else {
		l.SetFormatter(charmlog.TextFormatter)
	}

	return l
}

// Discard is a logger for tests and tools that do not want output.
func Discard() *charmlog.Logger {
	return charmlog.NewWithOptions(io.Discard, charmlog.Options{})
}
