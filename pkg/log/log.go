package log

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	defaultLogger *Logger
	mu            sync.RWMutex
)

func init() {
	defaultLogger = New(os.Stdout, DefaultLoggerFlag, LogLevelDebug)
}

type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
	LogLevelTrace
)

// LoggerFlag selects optional fields added to every entry.
type LoggerFlag int

const (
	// LoggerFlagTimestamp adds an RFC3339 "time" field.
	LoggerFlagTimestamp LoggerFlag = 1 << iota
	// LoggerFlagCaller adds the calling function and file.
	LoggerFlagCaller
)

const DefaultLoggerFlag = LoggerFlagTimestamp

func (level LogLevel) String() string {
	switch level {
	case LogLevelError:
		return "error"
	case LogLevelWarn:
		return "warn"
	case LogLevelInfo:
		return "info"
	case LogLevelDebug:
		return "debug"
	case LogLevelTrace:
		return "trace"
	default:
		return "unknown"
	}
}

func (level LogLevel) logrusLevel() logrus.Level {
	switch level {
	case LogLevelError:
		return logrus.ErrorLevel
	case LogLevelWarn:
		return logrus.WarnLevel
	case LogLevelInfo:
		return logrus.InfoLevel
	case LogLevelDebug:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}

// ParseLogLevel parses a log level string into a LogLevel.
// Valid log levels are: error, warn, info, debug, trace.
func ParseLogLevel(level string) (LogLevel, error) {
	switch level {
	case "error":
		return LogLevelError, nil
	case "warn":
		return LogLevelWarn, nil
	case "info":
		return LogLevelInfo, nil
	case "debug":
		return LogLevelDebug, nil
	case "trace":
		return LogLevelTrace, nil
	default:
		return LogLevelError, fmt.Errorf("unknown log level: %s", level)
	}
}

// SetDefaultLogger replaces the logger used by the package-level functions.
func SetDefaultLogger(logger *Logger) {
	mu.Lock()
	defer mu.Unlock()
	defaultLogger = logger
}

func SetLevel(level LogLevel) {
	current().SetLevel(level)
	current().Info("Log level set to %s", level)
}

func current() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// Logger writes one JSON object per entry.
type Logger struct {
	entry *logrus.Entry
	level LogLevel
}

func New(out io.Writer, flag LoggerFlag, level LogLevel) *Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.JSONFormatter{
		DisableTimestamp: flag&LoggerFlagTimestamp == 0,
	})
	l.SetReportCaller(flag&LoggerFlagCaller != 0)
	l.SetLevel(level.logrusLevel())
	return &Logger{
		entry: logrus.NewEntry(l),
		level: level,
	}
}

func (l *Logger) SetLevel(level LogLevel) {
	l.level = level
	l.entry.Logger.SetLevel(level.logrusLevel())
}

func (l *Logger) Level() LogLevel {
	return l.level
}

// WithField returns a logger that adds key to every entry.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		entry: l.entry.WithField(key, value),
		level: l.level,
	}
}

func (l *Logger) logf(level LogLevel, format string, args ...interface{}) {
	if level > l.level {
		return
	}
	l.entry.Logf(level.logrusLevel(), format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.logf(LogLevelError, format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.logf(LogLevelWarn, format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.logf(LogLevelInfo, format, args...)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.logf(LogLevelDebug, format, args...)
}

func (l *Logger) Trace(format string, args ...interface{}) {
	l.logf(LogLevelTrace, format, args...)
}

func Info(format string, args ...interface{}) {
	current().Info(format, args...)
}

func Error(format string, args ...interface{}) {
	current().Error(format, args...)
}

func Warn(format string, args ...interface{}) {
	current().Warn(format, args...)
}

func Debug(format string, args ...interface{}) {
	current().Debug(format, args...)
}

func Trace(format string, args ...interface{}) {
	current().Trace(format, args...)
}
