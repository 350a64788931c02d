package debug

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "FLEX_DEBUG"

// Config describes a logger.
type Config struct {
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"` // "console" or "json"

	// File, when set, receives JSON entries through a rotating writer.
	File       string `mapstructure:"file" toml:"file"`
	MaxSize    int    `mapstructure:"max_size" toml:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" toml:"max_age"` // days
	Compress   bool   `mapstructure:"compress" toml:"compress"`
}

var (
	envOnce   sync.Once
	envLogger *zap.Logger
)

// FromEnv returns the process-wide debug logger selected by FLEX_DEBUG.
// It never returns nil.
func FromEnv() *zap.Logger {
	envOnce.Do(func() {
		envLogger = fromEnv(os.Getenv(EnvVar))
	})
	return envLogger
}

func fromEnv(path string) *zap.Logger {
	if path == "" {
		return zap.NewNop()
	}
	logger, err := New(Config{Level: "debug", File: path}, nil)
	if err != nil {
		return zap.NewNop()
	}
	return logger.Named("layout")
}

// New builds a logger writing to console (when non-nil) and to cfg.File
// (when set). With neither it returns a no-op logger.
func New(cfg Config, console zapcore.WriteSyncer) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
	}

	var cores []zapcore.Core
	if console != nil {
		enc, err := encoder(cfg.Format)
		if err != nil {
			return nil, err
		}
		cores = append(cores, zapcore.NewCore(enc, console, level))
	}
	if cfg.File != "" {
		// File entries are always JSON.
		enc := zapcore.NewJSONEncoder(encoderConfig())
		w := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		})
		cores = append(cores, zapcore.NewCore(enc, w, level))
	}
	if len(cores) == 0 {
		return zap.NewNop(), nil
	}
	return zap.New(zapcore.NewTee(cores...), zap.AddStacktrace(zap.ErrorLevel)), nil
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return cfg
}

func encoder(format string) (zapcore.Encoder, error) {
	switch format {
	case "", "console":
		return zapcore.NewConsoleEncoder(encoderConfig()), nil
	case "json":
		return zapcore.NewJSONEncoder(encoderConfig()), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}
