package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging interface used across the service.
// Methods take a context so request-scoped fields can be attached
// without changing call sites.
type Logger interface {
	Debug(ctx context.Context, arg ...any)
	Debugf(ctx context.Context, template string, arg ...any)
	Info(ctx context.Context, arg ...any)
	Infof(ctx context.Context, template string, arg ...any)
	Warn(ctx context.Context, arg ...any)
	Warnf(ctx context.Context, template string, arg ...any)
	Error(ctx context.Context, arg ...any)
	Errorf(ctx context.Context, template string, arg ...any)
	Fatal(ctx context.Context, arg ...any)
	Fatalf(ctx context.Context, template string, arg ...any)
	DPanic(ctx context.Context, arg ...any)
	DPanicf(ctx context.Context, template string, arg ...any)
	Panic(ctx context.Context, arg ...any)
	Panicf(ctx context.Context, template string, arg ...any)
}

// ZapConfig configures the process logger.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

var _ Logger = (*zapLogger)(nil)

// Init builds the process logger. Invalid settings degrade to sane
// defaults instead of failing startup.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	if parsed, err := zapcore.ParseLevel(cfg.Level); err == nil {
		level = parsed
	}

	var zcfg zap.Config
	switch cfg.Mode {
	case "production", "prod":
		zcfg = zap.NewProductionConfig()
	default:
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	if cfg.Encoding != "" {
		zcfg.Encoding = cfg.Encoding
	}
	if zcfg.Encoding == "console" && cfg.ColorEnabled {
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	base, err := zcfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		base = zap.NewNop()
	}

	return &zapLogger{sugar: base.Sugar()}
}

func (z *zapLogger) Debug(ctx context.Context, arg ...any) { z.sugar.Debug(arg...) }
func (z *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	z.sugar.Debugf(template, arg...)
}
func (z *zapLogger) Info(ctx context.Context, arg ...any) { z.sugar.Info(arg...) }
func (z *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	z.sugar.Infof(template, arg...)
}
func (z *zapLogger) Warn(ctx context.Context, arg ...any) { z.sugar.Warn(arg...) }
func (z *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	z.sugar.Warnf(template, arg...)
}
func (z *zapLogger) Error(ctx context.Context, arg ...any) { z.sugar.Error(arg...) }
func (z *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	z.sugar.Errorf(template, arg...)
}
func (z *zapLogger) Fatal(ctx context.Context, arg ...any) { z.sugar.Fatal(arg...) }
func (z *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	z.sugar.Fatalf(template, arg...)
}
func (z *zapLogger) DPanic(ctx context.Context, arg ...any) { z.sugar.DPanic(arg...) }
func (z *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	z.sugar.DPanicf(template, arg...)
}
func (z *zapLogger) Panic(ctx context.Context, arg ...any) { z.sugar.Panic(arg...) }
func (z *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	z.sugar.Panicf(template, arg...)
}
