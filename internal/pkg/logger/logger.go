package logger

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/peoplehq/people-api/internal/pkg/requestctx"
)

// Log is the global logger instance
var Log = zap.NewNop()

// Config holds logger configuration
type Config struct {
	Level  string
	Format string
}

// Init initializes the global logger. The minimum level is read once at
// startup; debug and info entries below it are suppressed, and the ordering
// is total: a threshold above warn suppresses warn as well.
func Init(cfg Config) error {
	level := ParseLevel(cfg.Level)

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder

	var encoder zapcore.Encoder
	if cfg.Format == "console" {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	core := zapcore.NewCore(
		encoder,
		zapcore.AddSync(os.Stdout),
		level,
	)

	Log = zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel))

	return nil
}

// ParseLevel maps a LOG_LEVEL value to a zap level, case-insensitively.
// Absent or unrecognized values default to warn.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

// Sync flushes any buffered log entries
func Sync() error {
	if Log != nil {
		return Log.Sync()
	}
	return nil
}

// Ctx returns a logger enriched with the ambient request context. Outside a
// request scope the request_id field carries the no-context sentinel.
func Ctx(ctx context.Context) *zap.Logger {
	rc, ok := requestctx.From(ctx)
	if !ok {
		return Log.With(zap.String("request_id", requestctx.NoRequestID))
	}

	fields := []zap.Field{zap.String("request_id", rc.RequestID)}
	if rc.Path != "" {
		fields = append(fields, zap.String("path", rc.Path))
	}
	if rc.Method != "" {
		fields = append(fields, zap.String("method", rc.Method))
	}
	return Log.With(fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	Log.Debug(msg, fields...)
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	Log.Info(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	Log.Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	Log.Error(msg, fields...)
}
