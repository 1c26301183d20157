package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger - interface de journalisation
type Logger interface {
	Debug(msg string, fields ...map[string]interface{})
	Info(msg string, fields ...map[string]interface{})
	Warn(msg string, fields ...map[string]interface{})
	Error(msg string, fields ...map[string]interface{})
	Fatal(msg string, fields ...map[string]interface{})
	With(key string, value interface{}) Logger
}

// zerologLogger - implémentation de Logger sur zerolog
type zerologLogger struct {
	logger zerolog.Logger
}

// New crée un logger; output vaut "stdout", "stderr" ou un chemin de fichier
// (ouvert en ajout). Si le fichier ne peut pas être ouvert, stderr est utilisé.
func New(level, format, output string) Logger {
	return NewWithWriter(level, format, openOutput(output))
}

// NewWithWriter crée un logger écrivant dans w
func NewWithWriter(level, format string, w io.Writer) Logger {
	zerolog.SetGlobalLevel(parseLevel(level))

	writer := w
	if format == "console" {
		writer = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
			NoColor:    w != os.Stdout && w != os.Stderr,
		}
	}

	logger := zerolog.New(writer).
		With().
		Timestamp().
		Caller().
		Logger()

	return &zerologLogger{logger: logger}
}

func openOutput(output string) io.Writer {
	switch output {
	case "", "stdout":
		return os.Stdout
	case "stderr":
		return os.Stderr
	}
	file, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return os.Stderr
	}
	return file
}

func (l *zerologLogger) Debug(msg string, fields ...map[string]interface{}) {
	event := l.logger.Debug()
	l.addFields(event, fields)
	event.Msg(msg)
}

func (l *zerologLogger) Info(msg string, fields ...map[string]interface{}) {
	event := l.logger.Info()
	l.addFields(event, fields)
	event.Msg(msg)
}

func (l *zerologLogger) Warn(msg string, fields ...map[string]interface{}) {
	event := l.logger.Warn()
	l.addFields(event, fields)
	event.Msg(msg)
}

func (l *zerologLogger) Error(msg string, fields ...map[string]interface{}) {
	event := l.logger.Error()
	l.addFields(event, fields)
	event.Msg(msg)
}

func (l *zerologLogger) Fatal(msg string, fields ...map[string]interface{}) {
	event := l.logger.Fatal()
	l.addFields(event, fields)
	event.Msg(msg)
}

func (l *zerologLogger) With(key string, value interface{}) Logger {
	newLogger := l.logger.With().Interface(key, value).Logger()
	return &zerologLogger{logger: newLogger}
}

// addFields ajoute les champs supplémentaires à l'événement
func (l *zerologLogger) addFields(event *zerolog.Event, fields []map[string]interface{}) {
	if len(fields) > 0 {
		for _, fieldMap := range fields {
			for key, value := range fieldMap {
				event.Interface(key, value)
			}
		}
	}
}

// parseLevel convertit le niveau textuel en zerolog.Level
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// SetGlobalLogger remplace le logger global de zerolog
func SetGlobalLogger(logger Logger) {
	if zl, ok := logger.(*zerologLogger); ok {
		log.Logger = zl.logger
	}
}

// NewDevelopment - logger console niveau debug
func NewDevelopment() Logger {
	return New("debug", "console", "stdout")
}

// NewNoop - logger muet pour les tests
func NewNoop() Logger {
	logger := zerolog.New(io.Discard)
	return &zerologLogger{logger: logger}
}
