package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string // debug | info | warn | error
	Mode         string // debug | production
	Encoding     string // console | json
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds the process-wide Logger from config. Falls back to a
// sane development logger when the config is unparsable.
func Init(cfg ZapConfig) Logger {
	level := zapcore.DebugLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.DebugLevel
	}

	var zapCfg zap.Config
	if cfg.Mode == "production" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.Encoding != "" {
		zapCfg.Encoding = cfg.Encoding
	}
	if cfg.ColorEnabled && zapCfg.Encoding == "console" {
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		l, _ = zap.NewDevelopment(zap.AddCallerSkip(1))
	}

	return &zapLogger{sugar: l.Sugar()}
}

func (z *zapLogger) Debug(ctx context.Context, args ...any)  { z.sugar.Debug(args...) }
func (z *zapLogger) Info(ctx context.Context, args ...any)   { z.sugar.Info(args...) }
func (z *zapLogger) Warn(ctx context.Context, args ...any)   { z.sugar.Warn(args...) }
func (z *zapLogger) Error(ctx context.Context, args ...any)  { z.sugar.Error(args...) }
func (z *zapLogger) DPanic(ctx context.Context, args ...any) { z.sugar.DPanic(args...) }
func (z *zapLogger) Panic(ctx context.Context, args ...any)  { z.sugar.Panic(args...) }
func (z *zapLogger) Fatal(ctx context.Context, args ...any)  { z.sugar.Fatal(args...) }

func (z *zapLogger) Debugf(ctx context.Context, format string, args ...any) {
	z.sugar.Debugf(format, args...)
}

func (z *zapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.sugar.Infof(format, args...)
}

func (z *zapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.sugar.Warnf(format, args...)
}

func (z *zapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.sugar.Errorf(format, args...)
}

func (z *zapLogger) DPanicf(ctx context.Context, format string, args ...any) {
	z.sugar.DPanicf(format, args...)
}

func (z *zapLogger) Panicf(ctx context.Context, format string, args ...any) {
	z.sugar.Panicf(format, args...)
}

func (z *zapLogger) Fatalf(ctx context.Context, format string, args ...any) {
	z.sugar.Fatalf(format, args...)
}
