package events

import "go.uber.org/zap/zapcore"

type (
	Level int
)

// Predefined levels. Colored Info levels are kept for console output of the CLI
// and are logged by zap as plain Info
//
// Fatal is logged by zap at Error level: stopping the app is up to the caller
const (
	event_level_start Level = iota

	UnknownLevel

	Info
	InfoCyan
	InfoGreen
	InfoYellow

	Warn
	Error
	Fatal

	event_level_end
)

func (l Level) String() string {
	if !l.CheckEventLevel() {
		return "Illegal"
	}
	return [...]string{"Illegal", "Unknown", "Information", "Information", "Information", "Information", "Warning", "Error", "Fatal", "Illegal"}[l]
}

func (l Level) CheckEventLevel() bool {
	if event_level_start < l && l < event_level_end {
		return true
	}
	return false
}

// ZapLevel returns zap level used to log events of level l
func (l Level) ZapLevel() zapcore.Level {
	switch {
	case l == Warn:
		return zapcore.WarnLevel
	case l >= Error:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
