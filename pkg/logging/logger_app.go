package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	golog "github.com/fclairamb/go-log"
)

// AppLogger implements the go-log.Logger interface with logfmt-style output
type AppLogger struct {
	level  LogLevel
	logger *log.Logger
	writer *RotatingWriter // nil if logging to stdout
}

// NewAppLogger creates a new application logger. An empty logPath logs to
// stdout; otherwise output goes to a size-rotated file.
func NewAppLogger(logPath string, level LogLevel, maxSize int64) (*AppLogger, error) {
	var writer io.Writer = os.Stdout
	var rotatingWriter *RotatingWriter

	if logPath != "" {
		if maxSize <= 0 {
			maxSize = defaultMaxLogSize
		}
		rw, err := NewRotatingWriter(logPath, maxSize)
		if err != nil {
			return nil, fmt.Errorf("creating rotating writer: %w", err)
		}
		writer = rw
		rotatingWriter = rw
	}

	return &AppLogger{
		level:  level,
		logger: log.New(writer, "", 0), // formatting is handled in log()
		writer: rotatingWriter,
	}, nil
}

var levelRanks = map[LogLevel]int{
	LogLevelDebug: 0,
	LogLevelInfo:  1,
	LogLevelWarn:  2,
	LogLevelError: 3,
	LogLevelPanic: 4,
}

func (l *AppLogger) shouldLog(level LogLevel) bool {
	return levelRanks[level] >= levelRanks[l.level]
}

func (l *AppLogger) log(level LogLevel, message string, keyvals ...interface{}) {
	if !l.shouldLog(level) {
		return
	}

	var kvStrings []string
	for i := 0; i+1 < len(keyvals); i += 2 {
		key := toString(keyvals[i])
		value := toString(keyvals[i+1])
		kvStrings = append(kvStrings, fmt.Sprintf("%s=%s", key, formatValue(value)))
	}
	kvStr := strings.Join(kvStrings, " ")

	timestamp := time.Now().UTC().Format("2006-01-02 15:04:05 -0700")
	l.logger.Printf("%s %s: %s %s", timestamp, level, message, kvStr)
}

// toString flattens a value into a single-line string
func toString(v interface{}) string {
	if v == nil {
		return ""
	}
	str := fmt.Sprintf("%v", v)
	str = strings.ReplaceAll(str, "\n", " ")
	str = strings.ReplaceAll(str, "\r", " ")
	str = strings.ReplaceAll(str, "\t", " ")
	return strings.Join(strings.Fields(str), " ")
}

// Debug implements go-log.Logger
func (l *AppLogger) Debug(message string, keyvals ...interface{}) {
	l.log(LogLevelDebug, message, keyvals...)
}

// Info implements go-log.Logger
func (l *AppLogger) Info(message string, keyvals ...interface{}) {
	l.log(LogLevelInfo, message, keyvals...)
}

// Warn implements go-log.Logger
func (l *AppLogger) Warn(message string, keyvals ...interface{}) {
	l.log(LogLevelWarn, message, keyvals...)
}

// Error implements go-log.Logger
func (l *AppLogger) Error(message string, keyvals ...interface{}) {
	l.log(LogLevelError, message, keyvals...)
}

// Panic implements go-log.Logger
func (l *AppLogger) Panic(message string, keyvals ...interface{}) {
	l.log(LogLevelPanic, message, keyvals...)
}

// With implements go-log.Logger
func (l *AppLogger) With(keyvals ...interface{}) golog.Logger {
	// context accumulation is not needed here, the same logger is returned
	return l
}

// IsDebug returns true if the logger is at debug level
func (l *AppLogger) IsDebug() bool {
	return l.level == LogLevelDebug
}

// Close closes the underlying log file, if any
func (l *AppLogger) Close() error {
	if l.writer != nil {
		return l.writer.Close()
	}
	return nil
}
