package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"tuberev/internal/core/ports"
)

type zerologLogger struct {
	log zerolog.Logger
}

// NewBase builds the structured JSON root logger writing to stdout. The level
// string follows zerolog conventions ("debug", "info", "warn", "error");
// anything unparseable falls back to info.
func NewBase(level, service string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	return zerolog.New(os.Stdout).
		Level(lvl).
		With().
		Timestamp().
		Str("service", service).
		Logger()
}

// NewZerologLogger adapts a zerolog logger to the core LoggerPort.
func NewZerologLogger(base zerolog.Logger) ports.LoggerPort {
	return &zerologLogger{log: base}
}

func (l *zerologLogger) Info(msg string) {
	l.log.Info().Msg(msg)
}

func (l *zerologLogger) Warning(msg string) {
	l.log.Warn().Msg(msg)
}

func (l *zerologLogger) Error(msg string, err error) {
	l.log.Error().Err(err).Msg(msg)
}

// Close satisfies the port; stdout needs no teardown.
func (l *zerologLogger) Close() {}
