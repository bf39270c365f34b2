package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Log   *zap.Logger        = zap.NewNop()
	Sugar *zap.SugaredLogger = zap.NewNop().Sugar()
)

// NewZapLogger replaces the package loggers. Until it is called they discard output.
func NewZapLogger(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zl, err := cfg.Build(zap.Fields(zap.String("service", "splitpay")))
	if err != nil {
		return err
	}

	Log = zl
	Sugar = zl.Sugar()
	return nil
}

func Sync() {
	_ = Log.Sync()
}
