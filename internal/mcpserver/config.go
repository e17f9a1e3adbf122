package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/erraggy/displaytext"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Render tool defaults.
	Indent   int
	Format   displaytext.Format
	MaxDepth int

	// MaxTextLength bounds the text accepted by the case tools, in runes.
	MaxTextLength int

	// LogLevel is the minimum level written to stderr.
	LogLevel zerolog.Level
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from DISPLAYTEXT_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		Indent:        envIndent("DISPLAYTEXT_INDENT", displaytext.DefaultIndent),
		Format:        envFormat("DISPLAYTEXT_FORMAT", displaytext.FormatJSON),
		MaxDepth:      envInt("DISPLAYTEXT_MAX_DEPTH", displaytext.DefaultMaxDepth),
		MaxTextLength: envInt("DISPLAYTEXT_MAX_TEXT_LENGTH", 1<<20),
		LogLevel:      envLevel("DISPLAYTEXT_LOG_LEVEL", zerolog.WarnLevel),
	}
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

// envIndent accepts 0 (compact output) in addition to positive widths.
func envIndent(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || n > displaytext.MaxIndent {
		slog.Warn("invalid indent env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envFormat(key string, fallback displaytext.Format) displaytext.Format {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := displaytext.ParseFormat(v)
	if err != nil {
		slog.Warn("invalid format env var, using default", "key", key, "value", v, "default", string(fallback))
		return fallback
	}
	return f
}

func envLevel(key string, fallback zerolog.Level) zerolog.Level {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	level, err := zerolog.ParseLevel(v)
	if err != nil || level == zerolog.NoLevel {
		slog.Warn("invalid log level env var, using default", "key", key, "value", v, "default", fallback.String())
		return fallback
	}
	return level
}
