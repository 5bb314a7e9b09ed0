package logx

import (
	"context"

	"DAOKit/modules/kit/tracex"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger 把 Logger 落到 zap 上。级别方法经 Check 写入，未开启的级别不会分配 entry。
type ZapLogger struct {
	logger *zap.Logger
}

// NewZapLogger nil 得到静默 logger。调用位置记录为业务代码，而不是适配器本身。
func NewZapLogger(l *zap.Logger) *ZapLogger {
	if l == nil {
		l = zap.NewNop()
	}
	return &ZapLogger{logger: l.WithOptions(zap.AddCallerSkip(1))}
}

func (z *ZapLogger) base() *zap.Logger {
	if z == nil || z.logger == nil {
		return zap.NewNop()
	}
	return z.logger
}

func (z *ZapLogger) Enabled(lvl zapcore.Level) bool {
	return z.base().Core().Enabled(lvl)
}

func (z *ZapLogger) With(fields ...zap.Field) Logger {
	if len(fields) == 0 {
		return z
	}
	return &ZapLogger{logger: z.base().With(fields...)}
}

// WithContext 带上 ctx 中的 trace_id/span_id；都没有时返回自身。
func (z *ZapLogger) WithContext(ctx context.Context) Logger {
	return z.With(traceFields(ctx)...)
}

// Named 追加子名称（"dao"、"bindings"、"store.mongo"）。
func (z *ZapLogger) Named(name string) *ZapLogger {
	return &ZapLogger{logger: z.base().Named(name)}
}

func (z *ZapLogger) Info(msg string, fields ...zap.Field)  { z.write(zapcore.InfoLevel, msg, fields) }
func (z *ZapLogger) Error(msg string, fields ...zap.Field) { z.write(zapcore.ErrorLevel, msg, fields) }
func (z *ZapLogger) Debug(msg string, fields ...zap.Field) { z.write(zapcore.DebugLevel, msg, fields) }
func (z *ZapLogger) Warn(msg string, fields ...zap.Field)  { z.write(zapcore.WarnLevel, msg, fields) }

func (z *ZapLogger) write(lvl zapcore.Level, msg string, fields []zap.Field) {
	if ce := z.base().Check(lvl, msg); ce != nil {
		ce.Write(fields...)
	}
}

func traceFields(ctx context.Context) []zap.Field {
	if ctx == nil {
		return nil
	}
	var out []zap.Field
	if tid, ok := tracex.TraceIDFrom(ctx); ok {
		out = append(out, zap.String("trace_id", tid))
	}
	if sid, ok := tracex.SpanIDFrom(ctx); ok {
		out = append(out, zap.String("span_id", sid))
	}
	return out
}
