package logging

import (
	"fmt"
	"strings"
)

// LogLevel represents the severity of a log message
type LogLevel string

const (
	// LogLevelDebug is for debug messages
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo is for informational messages
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn is for warning messages
	LogLevelWarn LogLevel = "warn"
	// LogLevelError is for error messages
	LogLevelError LogLevel = "error"
	// LogLevelPanic is for panic messages
	LogLevelPanic LogLevel = "panic"
)

// defaultMaxLogSize is the rotation threshold used when none is configured.
const defaultMaxLogSize = 10 * 1024 * 1024

// App is the global application logger
var App *AppLogger

func init() {
	// Default logger writes to stdout at info level until Initialize runs
	var err error
	App, err = NewAppLogger("", LogLevelInfo, 0)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize default app logger: %v", err))
	}
}

// Initialize sets up the global application logger
func Initialize(appLogPath string, level LogLevel) error {
	if level == "" {
		level = LogLevelInfo
	}

	newApp, err := NewAppLogger(appLogPath, level, defaultMaxLogSize)
	if err != nil {
		return fmt.Errorf("failed to initialize app logger: %w", err)
	}

	App = newApp
	return nil
}

// MustInitialize initializes logging and panics on error
func MustInitialize(appLogPath string, level LogLevel) {
	if err := Initialize(appLogPath, level); err != nil {
		panic(fmt.Sprintf("failed to initialize logging: %v", err))
	}
}

// formatValue formats a value for logfmt, quoting if necessary
func formatValue(v interface{}) string {
	s := fmt.Sprintf("%v", v)
	if strings.ContainsAny(s, " =\"") {
		s = strings.ReplaceAll(s, "\"", "\\\"")
		return fmt.Sprintf("\"%s\"", s)
	}
	return s
}
