package log

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging surface used by usecases and repositories.
type Logger interface {
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}

var (
	mu     sync.Mutex
	global *otelzap.Logger
)

// SetupLogger builds the zap logger; APP_ENV=production switches to the JSON encoder.
func SetupLogger() *zap.Logger {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "production" {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error build logger: %v\n", err)
		return zap.NewNop()
	}
	return l
}

func Init(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	global = otelzap.New(l, otelzap.WithMinLevel(zapcore.InfoLevel))
	otelzap.ReplaceGlobals(global)
}

// Setup returns the otelzap logger handlers log with, initialising it on first use.
func Setup() *otelzap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		global = otelzap.New(SetupLogger(), otelzap.WithMinLevel(zapcore.InfoLevel))
	}
	return global
}

func GetLogger() Logger {
	return &logger{otel: Setup()}
}

type logger struct {
	otel *otelzap.Logger
}

func (l *logger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.otel.Ctx(ctx).Info(msg, fields(args)...)
}

func (l *logger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.otel.Ctx(ctx).Warn(msg, fields(args)...)
}

func (l *logger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.otel.Ctx(ctx).Error(msg, fields(args)...)
}

func fields(args []interface{}) []zap.Field {
	out := make([]zap.Field, 0, len(args))
	for i, arg := range args {
		switch v := arg.(type) {
		case zap.Field:
			out = append(out, v)
		case error:
			out = append(out, zap.Error(v))
		default:
			out = append(out, zap.Any(fmt.Sprintf("arg%d", i), v))
		}
	}
	return out
}
