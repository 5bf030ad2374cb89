// Package logger implements contracts.Logger on top of zap.
package logger

import (
	"os"
	"time"

	"github.com/leandrodaf/synesthesia/sdk/contracts"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger is the contracts.Logger implementation backed by Uber's zap.
type ZapLogger struct {
	logger *zap.Logger
	level  zap.AtomicLevel
}

// NewZapLogger creates a console logger writing JSON lines to stderr.
func NewZapLogger() contracts.Logger {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	return &ZapLogger{logger: newCore(zapcore.Lock(os.Stderr), level), level: level}
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() contracts.Logger {
	return &ZapLogger{logger: zap.NewNop(), level: zap.NewAtomicLevel()}
}

// NewFromZap wraps an existing zap logger. The level is controlled by the
// wrapped logger's core as well as by SetLevel.
func NewFromZap(l *zap.Logger) contracts.Logger {
	return &ZapLogger{logger: l, level: zap.NewAtomicLevelAt(zapcore.DebugLevel)}
}

func newCore(ws zapcore.WriteSyncer, level zap.AtomicLevel) *zap.Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.RFC3339TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(cfg), ws, level)
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2))
}

// Info logs a message at the INFO level
func (z *ZapLogger) Info(msg string, fields ...contracts.Field) {
	z.log(zapcore.InfoLevel, msg, fields...)
}

// Error logs a message at the ERROR level
func (z *ZapLogger) Error(msg string, fields ...contracts.Field) {
	z.log(zapcore.ErrorLevel, msg, fields...)
}

// Debug logs a message at the DEBUG level
func (z *ZapLogger) Debug(msg string, fields ...contracts.Field) {
	z.log(zapcore.DebugLevel, msg, fields...)
}

// Warn logs a message at the WARN level
func (z *ZapLogger) Warn(msg string, fields ...contracts.Field) {
	z.log(zapcore.WarnLevel, msg, fields...)
}

// Fatal logs a message at the FATAL level and terminates the application
func (z *ZapLogger) Fatal(msg string, fields ...contracts.Field) {
	z.log(zapcore.FatalLevel, msg, fields...)
	_ = z.logger.Sync()
	os.Exit(1)
}

// Field returns an empty field builder.
func (z *ZapLogger) Field() contracts.Field {
	return &zapField{}
}

// SetLevel sets the minimum level that gets written.
func (z *ZapLogger) SetLevel(level contracts.LogLevel) {
	z.level.SetLevel(zapLevel(level))
}

func zapLevel(level contracts.LogLevel) zapcore.Level {
	switch level {
	case contracts.DebugLevel:
		return zapcore.DebugLevel
	case contracts.WarnLevel:
		return zapcore.WarnLevel
	case contracts.ErrorLevel:
		return zapcore.ErrorLevel
	case contracts.FatalLevel:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// SetDestination redirects output. FileLog needs a path; the file is
// opened for appending and created when missing.
func (z *ZapLogger) SetDestination(dest contracts.LogDestination, filePath ...string) {
	switch dest {
	case contracts.ConsoleLog:
		z.logger = newCore(zapcore.Lock(os.Stderr), z.level)
	case contracts.FileLog:
		if len(filePath) == 0 || filePath[0] == "" {
			z.Warn("file log destination requested without a path")
			return
		}
		f, err := os.OpenFile(filePath[0], os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			z.Error("could not open log file", z.Field().String("path", filePath[0]), z.Field().Error("error", err))
			return
		}
		z.logger = newCore(zapcore.Lock(f), z.level)
	}
}

func (z *ZapLogger) log(level zapcore.Level, msg string, fields ...contracts.Field) {
	if !z.level.Enabled(level) {
		return
	}
	ce := z.logger.Check(level, msg)
	if ce == nil {
		return
	}
	ce.Write(toZapFields(fields)...)
}

func toZapFields(fields []contracts.Field) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		if f, ok := field.(*zapField); ok && f.key != "" {
			out = append(out, f.zap())
		}
	}
	return out
}

// zapField implements contracts.Field
type zapField struct {
	key   string
	value interface{}
}

func (f *zapField) zap() zap.Field {
	switch v := f.value.(type) {
	case error:
		return zap.NamedError(f.key, v)
	case time.Duration:
		return zap.Duration(f.key, v)
	default:
		return zap.Any(f.key, v)
	}
}

func (f *zapField) Bool(key string, val bool) contracts.Field {
	return &zapField{key, val}
}

func (f *zapField) Int(key string, val int) contracts.Field {
	return &zapField{key, val}
}

func (f *zapField) Float64(key string, val float64) contracts.Field {
	return &zapField{key, val}
}

func (f *zapField) String(key string, val string) contracts.Field {
	return &zapField{key, val}
}

func (f *zapField) Time(key string, val time.Time) contracts.Field {
	return &zapField{key, val}
}

func (f *zapField) Int64(key string, val int64) contracts.Field {
	return &zapField{key, val}
}

func (f *zapField) Error(key string, val error) contracts.Field {
	return &zapField{key, val}
}

func (f *zapField) Uint64(key string, val uint64) contracts.Field {
	return &zapField{key, val}
}

func (f *zapField) Uint8(key string, val uint8) contracts.Field {
	return &zapField{key, val}
}

func (f *zapField) Duration(key string, val time.Duration) contracts.Field {
	return &zapField{key, val}
}

func (f *zapField) Any(key string, val interface{}) contracts.Field {
	return &zapField{key, val}
}
