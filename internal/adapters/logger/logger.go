package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Log *Logger
)

type Logger struct {
	*zap.SugaredLogger
	Name string
}

// Config represents configuration options for logger initialization
type Config struct {
	Debug bool // Enable debug logging
}

// Init builds the process-wide console logger. Diagnostics go to stderr so
// stdout stays reserved for the tool's own output.
func Init(config Config) error {
	var l Logger
	l.Name = "main"

	encoderConfig := zapcore.EncoderConfig{
		MessageKey:     "message",
		LevelKey:       "level",
		TimeKey:        "timestamp",
		NameKey:        "logger",
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	var level zapcore.Level
	if config.Debug {
		level = zapcore.DebugLevel
	} else {
		level = zapcore.InfoLevel
	}

	consoleEncoder := zapcore.NewConsoleEncoder(encoderConfig)
	core := zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stderr), level)
	log := zap.New(core)

	l.SugaredLogger = log.Named(l.Name).Sugar()
	Log = &l

	return nil
}

// Named returns a new logger with the specified name ("qr", "poster", etc.)
func Named(name string) (*Logger, error) {
	if Log == nil {
		return nil, fmt.Errorf("logger is not initialized")
	}
	return &Logger{
		SugaredLogger: Log.SugaredLogger.Named(name),
		Name:          name,
	}, nil
}
