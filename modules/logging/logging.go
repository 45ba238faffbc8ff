package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"
)

// FormatEnum selects how log lines are rendered.
type FormatEnum uint

const (
	// Console is the human readable zerolog console writer
	Console FormatEnum = iota
	// JSON is one json object per line
	JSON
)

func ParseFormat(name string) (FormatEnum, error) {
	switch strings.ToLower(name) {
	case "", "console":
		return Console, nil
	case "json":
		return JSON, nil
	default:
		return 0, fmt.Errorf(`unknown log format "%s", expected console or json`, name)
	}
}

func (f FormatEnum) String() string {
	switch f {
	case Console:
		return "console"
	case JSON:
		return "json"
	default:
		return fmt.Sprintf("FormatEnum(%d)", uint(f))
	}
}

// New builds a logger writing to w. An empty level means info.
func New(w io.Writer, level string, format FormatEnum) (zerolog.Logger, error) {
	lvl := zerolog.InfoLevel
	if level != "" {
		var err error
		if lvl, err = zerolog.ParseLevel(strings.ToLower(level)); err != nil {
			return zerolog.Nop(), fmt.Errorf("log level: %w", err)
		}
	}

	if format == Console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// Install makes l the logger of gnark as well, so circuit compilation and
// proving report through the same sink.
func Install(l zerolog.Logger) {
	logger.Set(l)
}
