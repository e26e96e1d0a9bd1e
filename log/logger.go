// Package log provides the leveled, module-scoped loggers used across
// the playground harness.
package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

type Level logging.Level

// Levels accepted by SetLevel.
const (
	Debug Level = iota
	Info
	Warning
	Error
)

// Every line carries the module and a short level tag so interleaved
// harness and renderer output stays attributable.
var format = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000} %{level:.4s} [%{module}]%{color:reset} %{message}`,
)

var (
	leveledBackend logging.LeveledBackend
	currentLevel   = Info
)

// Logger is the per-package logging handle.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns a named logger for one package or subsystem.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

func backendLevel(level Level) logging.Level {
	switch level {
	case Debug:
		return logging.DEBUG
	case Warning:
		return logging.WARNING
	case Error:
		return logging.ERROR
	default:
		return logging.INFO
	}
}

// SetSink redirects all log output to the given writer. The current
// verbosity carries over to the new sink.
func SetSink(sink io.Writer) {
	backend := logging.NewBackendFormatter(logging.NewLogBackend(sink, "", 0), format)
	leveledBackend = logging.AddModuleLevel(backend)
	leveledBackend.SetLevel(backendLevel(currentLevel), "")
	logging.SetBackend(leveledBackend)
}

// SetLevel adjusts verbosity for all modules.
func SetLevel(level Level) {
	currentLevel = level
	leveledBackend.SetLevel(backendLevel(level), "")
}

func init() {
	SetSink(os.Stderr)
}
