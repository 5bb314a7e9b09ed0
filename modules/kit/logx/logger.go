package logx

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger 是 dao、bindings、store 与命令行共用的日志接口。
//
// 翻译路径上的丢弃记录很频繁，调用方先用 Enabled 判断级别再拼字段。
// With 用来固定角色、集合等上下文字段。
type Logger interface {
	Info(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Debug(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Enabled(lvl zapcore.Level) bool
	With(fields ...zap.Field) Logger
	WithContext(ctx context.Context) Logger
}

// Nop 返回丢弃所有输出的 Logger。
func Nop() Logger {
	return NewZapLogger(nil)
}

// ForRole 固定实体角色字段；l 为 nil 时返回 Nop。
func ForRole(l Logger, role string) Logger {
	if l == nil {
		return Nop()
	}
	return l.With(zap.String("role", role))
}
