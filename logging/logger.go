// Package logging owns the process-wide zap logger: console-encoded, rotated to a file with
// lumberjack and mirrored to stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/alprun/alprun/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var current atomic.Pointer[zap.SugaredLogger]

func init() {
	current.Store(zap.NewNop().Sugar())
}

// L returns the process logger. Before Init it discards everything.
func L() *zap.SugaredLogger {
	return current.Load()
}

// Init builds the logger from cfg and installs it as L.
func Init(cfg config.LogConfig) (*zap.SugaredLogger, error) {
	return initWith(cfg, os.Stderr)
}

func initWith(cfg config.LogConfig, console io.Writer) (*zap.SugaredLogger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(console), level),
	}
	if cfg.File != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(lj), level))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller()).Sugar()
	current.Store(logger)
	return logger, nil
}

// Sync flushes buffered entries. Errors from syncing a terminal are expected and dropped.
func Sync() {
	_ = L().Sync()
}
