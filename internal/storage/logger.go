package storage

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// BadgerLogger routes badger internal logs into zerolog.
type BadgerLogger struct{}

func NewBadgerLogger() *BadgerLogger {
	return new(BadgerLogger)
}

func (l *BadgerLogger) Errorf(format string, args ...any) {
	log.Error().Str("component", "badger").Msg(l.format(format, args...))
}

func (l *BadgerLogger) Warningf(format string, args ...any) {
	log.Warn().Str("component", "badger").Msg(l.format(format, args...))
}

func (l *BadgerLogger) Infof(format string, args ...any) {
	log.Debug().Str("component", "badger").Msg(l.format(format, args...))
}

func (l *BadgerLogger) Debugf(format string, args ...any) {
	log.Trace().Str("component", "badger").Msg(l.format(format, args...))
}

func (l *BadgerLogger) format(format string, args ...any) string {
	return strings.TrimSpace(fmt.Sprintf(format, args...))
}
