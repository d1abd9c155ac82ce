package renderer

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// LogLevel represents the severity level of a log message
type LogLevel int

// Log levels
const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

// levelPrefixes maps log levels to text prefixes
var levelPrefixes = map[LogLevel]string{
	DEBUG: "DEBUG",
	INFO:  "INFO ",
	WARN:  "WARN ",
	ERROR: "ERROR",
}

// ParseLogLevel maps a level name to a LogLevel. Unknown names are INFO.
func ParseLogLevel(levelStr string) LogLevel {
	switch strings.ToLower(levelStr) {
	case "debug":
		return DEBUG
	case "warn", "warning":
		return WARN
	case "error":
		return ERROR
	default:
		return INFO
	}
}

// LeveledLogger writes timestamped, level-prefixed lines. Printf logs at INFO
// so it can be used wherever a core.Logger is expected.
type LeveledLogger struct {
	level  LogLevel
	logger *log.Logger
}

// NewLeveledLogger creates a logger writing to out (stdout when nil)
func NewLeveledLogger(levelStr string, out io.Writer) *LeveledLogger {
	if out == nil {
		out = os.Stdout
	}
	return &LeveledLogger{
		level:  ParseLogLevel(levelStr),
		logger: log.New(out, "", 0), // We'll format the prefix manually
	}
}

func (l *LeveledLogger) logf(level LogLevel, format string, args ...interface{}) {
	if level < l.level {
		return
	}
	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	l.logger.Printf("%s [%s] %s", time.Now().Format("15:04:05.000"), levelPrefixes[level], msg)
}

// Printf logs at INFO level
func (l *LeveledLogger) Printf(format string, args ...interface{}) {
	l.logf(INFO, format, args...)
}

// Debugf logs at DEBUG level
func (l *LeveledLogger) Debugf(format string, args ...interface{}) {
	l.logf(DEBUG, format, args...)
}

// Infof logs at INFO level
func (l *LeveledLogger) Infof(format string, args ...interface{}) {
	l.logf(INFO, format, args...)
}

// Warnf logs at WARN level
func (l *LeveledLogger) Warnf(format string, args ...interface{}) {
	l.logf(WARN, format, args...)
}

// debugLogger is implemented by loggers that can filter verbose output
type debugLogger interface {
	Debugf(format string, args ...interface{})
}

// logDebug sends verbose messages to Debugf when available; plain loggers drop them
func logDebug(logger core.Logger, format string, args ...interface{}) {
	if dl, ok := logger.(debugLogger); ok {
		dl.Debugf(format, args...)
	}
}
