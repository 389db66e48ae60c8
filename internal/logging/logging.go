package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	Level      string
	File       string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
}

// Init builds the process logger: human-readable output on stderr, plus a
// rotated JSON file when Options.File is set. The logger is installed as the
// zap global so packages without an injected logger can use zap.L().
func Init(opt Options) *zap.Logger {
	level, err := zapcore.ParseLevel(opt.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	consoleEncoderCfg := zap.NewProductionEncoderConfig()
	consoleEncoderCfg.EncodeTime = zapcore.RFC3339TimeEncoder
	consoleEncoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	consoleWriteSyncer := zapcore.Lock(os.Stderr)

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(consoleEncoderCfg),
		consoleWriteSyncer,
		level,
	)

	if opt.File != "" {
		fileEncoderCfg := zap.NewProductionEncoderConfig()
		fileEncoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		fileEncoderCfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder

		fileWriteSyncer := zapcore.AddSync(&lumberjack.Logger{
			Filename:   opt.File,
			MaxSize:    orDefault(opt.MaxSize, 50),
			MaxBackups: orDefault(opt.MaxBackups, 5),
			MaxAge:     orDefault(opt.MaxAge, 28),
		})
		core = zapcore.NewTee(
			core,
			zapcore.NewCore(
				zapcore.NewJSONEncoder(fileEncoderCfg),
				fileWriteSyncer,
				level,
			),
		)
	}

	logger := zap.New(core)
	zap.ReplaceGlobals(logger)
	return logger
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
