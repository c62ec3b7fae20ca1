package hallplot

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level is the severity of a log message.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

// ParseLevel understands debug, info, warn(ing) and error.
func ParseLevel(s string) (Level, error) {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return LevelInfo, fmt.Errorf("hallplot: unknown log level %q", s)
	}
	return l, nil
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return "INFO"
}

// Logger is a leveled logger. A nil *Logger discards everything.
type Logger struct {
	base  *log.Logger
	level Level
}

// NewLogger logs messages of at least level to w.
func NewLogger(w io.Writer, level Level) *Logger {
	return &Logger{base: log.New(w, "", log.Ltime), level: level}
}

// DefaultLogger writes warnings and errors to stderr.
var DefaultLogger = NewLogger(os.Stderr, LevelWarn)

func (l *Logger) SetLevel(level Level) { l.level = level }

func (l *Logger) logf(level Level, format string, args ...any) {
	if l == nil || level < l.level {
		return
	}
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	l.base.Printf("[%s] %s", level, strings.TrimSuffix(msg, "\n"))
}

func (l *Logger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.logf(LevelInfo, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.logf(LevelWarn, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }
