package events

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewStandartLogsProcessor creates processor that logs to both file + console
func NewStandartLogsProcessor(logfile string, isVerbose bool) (*Processor, error) {
	l, f, err := Double(logfile, isVerbose)
	if err != nil {
		return nil, err
	}
	p := NewZapProcessor(l, isVerbose)
	p.onClose = f.Close

	return p, nil
}

// Double makes zap logger that writes JSON to logfile and human-readable lines to console:
// info goes to stdout, warnings and errors to stderr
func Double(logfile string, isVerbose bool) (*zap.Logger, *os.File, error) {
	if err := os.MkdirAll(filepath.Dir(logfile), os.ModePerm); err != nil {
		return nil, nil, fmt.Errorf("[Double] unable to make log dir -> %w", err)
	}
	f, err := os.OpenFile(logfile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("[Double] unable to open log file -> %w", err)
	}

	minLevel := zapcore.InfoLevel
	if isVerbose {
		minLevel = zapcore.DebugLevel
	}

	return zap.New(teeCore(zapcore.AddSync(f), zapcore.Lock(os.Stdout), zapcore.Lock(os.Stderr), minLevel)), f, nil
}

// teeCore writes everything from minLevel to file as JSON; console lines below Warn go to stdout, the rest to stderr
func teeCore(file, stdout, stderr zapcore.WriteSyncer, minLevel zapcore.Level) zapcore.Core {
	low := zap.LevelEnablerFunc(func(l zapcore.Level) bool { return l >= minLevel && l < zapcore.WarnLevel })
	high := zap.LevelEnablerFunc(func(l zapcore.Level) bool { return l >= zapcore.WarnLevel })

	consoleConf := zap.NewDevelopmentEncoderConfig()
	consoleConf.EncodeLevel = zapcore.CapitalColorLevelEncoder
	console := zapcore.NewConsoleEncoder(consoleConf)

	return zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), file, minLevel),
		zapcore.NewCore(console, stdout, low),
		zapcore.NewCore(console, stderr, high),
	)
}
