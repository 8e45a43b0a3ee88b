package logger

import (
	"os"
	"strings"

	"github.com/ds611b/practicas/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds the process logger. Release mode writes JSON, everything else writes console output.
// With log.file.enabled the same entries are also written, as JSON, to a rotated file.
func New(cfg *config.Config) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(cfg.Log.Level))
	if err != nil {
		return nil, err
	}
	atom := zap.NewAtomicLevelAt(lvl)

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var stdoutEnc zapcore.Encoder
	if cfg.App.Env == "release" {
		stdoutEnc = zapcore.NewJSONEncoder(encCfg)
	} else {
		devCfg := encCfg
		devCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		stdoutEnc = zapcore.NewConsoleEncoder(devCfg)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(stdoutEnc, zapcore.Lock(os.Stdout), atom),
	}
	if f := cfg.Log.File; f.Enabled {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encCfg),
			zapcore.AddSync(&lumberjack.Logger{
				Filename:   f.Path,
				MaxSize:    f.MaxSizeMB,
				MaxBackups: f.MaxBackups,
				MaxAge:     f.MaxAgeDays,
				Compress:   f.Compress,
			}),
			atom,
		))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)).
		With(zap.String("service", cfg.App.Name)), nil
}
