package clargsio

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

// LogLevel is the severity of a log line.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelSuccess
	LevelWarning
	LevelError
)

func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelSuccess:
		return "SUCCESS"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LogFormat selects the prefix written before each message.
type LogFormat int

const (
	LogFormatTagged  LogFormat = iota // [INFO] message
	LogFormatSymbols                  // ◆ message
	LogFormatPlain                    // message
)

var symbols = [...]string{
	LevelDebug:   "●",
	LevelInfo:    "◆",
	LevelSuccess: "✓",
	LevelWarning: "▲",
	LevelError:   "✗",
}

const timeLayout = "15:04:05"

// Logger writes levelled, optionally colored lines through an IOManager.
// Warnings and errors go to the error stream unless ErrorsToStderr(false).
type Logger struct {
	io           *IOManager
	format       LogFormat
	theme        Theme
	minLevel     LogLevel
	withTime     bool
	errorsStderr bool
	now          func() time.Time
}

// NewLogger returns a tagged logger at LevelInfo bound to m.
func NewLogger(m *IOManager) *Logger {
	return &Logger{
		io:           m,
		format:       LogFormatTagged,
		theme:        DefaultTheme(),
		minLevel:     LevelInfo,
		errorsStderr: true,
		now:          time.Now,
	}
}

func (l *Logger) WithFormat(format LogFormat) *Logger {
	l.format = format
	return l
}

func (l *Logger) WithTheme(theme Theme) *Logger {
	l.theme = theme
	return l
}

// WithTimestamp prefixes every line with the wall clock time (HH:MM:SS).
func (l *Logger) WithTimestamp(enabled bool) *Logger {
	l.withTime = enabled
	return l
}

func (l *Logger) ErrorsToStderr(enabled bool) *Logger {
	l.errorsStderr = enabled
	return l
}

// WithLevel sets the minimum level that is written. Debug messages, such as
// the parser's token trace, are dropped unless the level is LevelDebug.
func (l *Logger) WithLevel(level LogLevel) *Logger {
	l.minLevel = level
	return l
}

// IO returns the manager the logger writes through.
func (l *Logger) IO() *IOManager { return l.io }

// Enabled reports whether messages at level are written.
func (l *Logger) Enabled(level LogLevel) bool { return level >= l.minLevel }

// Log writes one line at level. Only the prefix is colored.
func (l *Logger) Log(level LogLevel, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	line := fmt.Sprintf(format, args...)
	if prefix := l.prefix(level); prefix != "" {
		line = l.io.Colorize(prefix, l.attrs(level)...) + " " + line
	}
	if l.withTime {
		line = l.now().Format(timeLayout) + " " + line
	}
	fmt.Fprintln(l.writer(level), line)
}

func (l *Logger) prefix(level LogLevel) string {
	switch l.format {
	case LogFormatPlain:
		return ""
	case LogFormatSymbols:
		if level >= 0 && int(level) < len(symbols) {
			return symbols[level]
		}
		return "•"
	default:
		return "[" + level.String() + "]"
	}
}

func (l *Logger) attrs(level LogLevel) []color.Attribute {
	switch level {
	case LevelDebug:
		return l.theme.Debug
	case LevelInfo:
		return l.theme.Info
	case LevelSuccess:
		return l.theme.Success
	case LevelWarning:
		return l.theme.Warning
	case LevelError:
		return l.theme.Error
	}
	return nil
}

func (l *Logger) writer(level LogLevel) io.Writer {
	if l.errorsStderr && level >= LevelWarning {
		return l.io.Err()
	}
	return l.io.Out()
}

func (l *Logger) Debug(format string, args ...any)   { l.Log(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...any)    { l.Log(LevelInfo, format, args...) }
func (l *Logger) Success(format string, args ...any) { l.Log(LevelSuccess, format, args...) }
func (l *Logger) Warning(format string, args ...any) { l.Log(LevelWarning, format, args...) }
func (l *Logger) Error(format string, args ...any)   { l.Log(LevelError, format, args...) }
