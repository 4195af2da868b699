package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// osStdout is the console writer; tests swap it out.
var osStdout io.Writer = os.Stdout

// SlogManager manages slog-based logging.
type SlogManager struct {
	logger *slog.Logger
}

// NewSlogManager creates a new slog-based logging manager.
func NewSlogManager() *SlogManager {
	return &SlogManager{}
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup initializes logging. The console (os.Stdout when nil) always gets a
// handler; when a file is given it receives records at the configured level
// and the console only warnings and errors. If provider is non-nil its
// attributes are added to every record.
func (m *SlogManager) Setup(file, console io.Writer, level string, provider AttrProvider) {
	lvl := parseLevel(level)

	handlerOpts := &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.UTC().Format(time.RFC3339))
				}
			}
			return a
		},
	}

	if console == nil {
		console = osStdout
	}
	consoleOpts := *handlerOpts
	if file != nil && lvl < slog.LevelWarn {
		consoleOpts.Level = slog.LevelWarn
	}

	// Console handler
	handlers := []slog.Handler{slog.NewTextHandler(console, &consoleOpts)}

	// File handler
	if file != nil {
		handlers = append(handlers, slog.NewTextHandler(file, handlerOpts))
	}

	var h slog.Handler = NewMultiHandler(handlers...)
	if provider != nil {
		h = NewContextHandler(h, provider)
	}

	m.logger = slog.New(h)
	m.logger.Debug("Logging initialized", "level", level)
}

// Logger returns the configured slog.Logger.
func (m *SlogManager) Logger() *slog.Logger {
	if m.logger == nil {
		return slog.Default()
	}
	return m.logger
}
