package logx

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DropLog 描述一次字典翻译时被丢弃的字段（值存在但无法转换）。
type DropLog struct {
	Entity string
	Key    string
	Reason string
}

// SysLog 是技术错误日志的强类型输入，避免参数顺序误传。
type SysLog struct {
	Action string
	Err    error
}

func NewDropLog(entity, key, reason string) DropLog {
	return DropLog{Entity: entity, Key: key, Reason: reason}
}

func NewSysLog(action string, err error) SysLog {
	return SysLog{Action: action, Err: err}
}

// ReportCommand 记录一次命令执行：
// - err == nil: INFO
// - 业务类错误: WARN
// - 系统类错误: ERROR（附带栈）
func ReportCommand(ctx context.Context, l Logger, command string, err error, fields ...zap.Field) {
	if l == nil {
		return
	}
	base := []zap.Field{
		zap.String("log_type", "command"),
		zap.String("command", command),
	}
	base = append(base, fields...)
	if err == nil {
		l.WithContext(ctx).Info("command", base...)
		return
	}
	if isSys(err) {
		ReportSysError(ctx, l, NewSysLog(command, err), base...)
		return
	}
	meta := BuildErrorLog(err)
	base = append(base, codeFields(meta)...)
	if len(meta.Data) != 0 {
		base = append(base, zap.Any("error_data", meta.Data))
	}
	l.WithContext(ctx).Warn(fmt.Sprintf("%s, error:%s", command, meta.Error), base...)
}

// ReportDrop 记录宽松翻译路径上被丢弃的字段：DEBUG，不带堆栈；未开启 DEBUG 时直接返回。
func ReportDrop(l Logger, drop DropLog, fields ...zap.Field) {
	if l == nil || !l.Enabled(zapcore.DebugLevel) {
		return
	}
	base := []zap.Field{
		zap.String("log_type", "translate_drop"),
		zap.String("entity", drop.Entity),
		zap.String("key", drop.Key),
	}
	if drop.Reason != "" {
		base = append(base, zap.String("reason", drop.Reason))
	}
	base = append(base, fields...)
	l.Debug(fmt.Sprintf("drop %s.%s", drop.Entity, drop.Key), base...)
}

// ReportSysError 记录技术错误日志：ERROR、err_type=sys，可附带栈信息。
func ReportSysError(ctx context.Context, l Logger, sys SysLog, fields ...zap.Field) {
	if sys.Err == nil || l == nil {
		return
	}
	action := sys.Action
	if action == "" {
		action = "sys_error"
	}

	meta := BuildErrorLog(sys.Err)
	base := []zap.Field{
		zap.String("err_type", "sys"),
		zap.String("action", action),
	}
	base = append(base, codeFields(meta)...)
	if len(meta.CauseChain) != 0 {
		base = append(base, zap.Any("cause_chain", meta.CauseChain))
	}
	if len(meta.Data) != 0 {
		base = append(base, zap.Any("error_data", meta.Data))
	}
	if meta.Origin != "" {
		base = append(base, zap.String("origin_caller", meta.Origin))
	}
	if meta.Stack != "" {
		base = append(base, zap.String("stack_origin", meta.Stack))
	}
	base = append(base, fields...)

	finalMsg := fmt.Sprintf("%s, error:%s", action, meta.Error)
	if meta.Reason != "" {
		finalMsg = fmt.Sprintf("%s, reason:%s, error:%s", action, meta.Reason, meta.Error)
	}
	l.WithContext(ctx).Error(finalMsg, base...)
}

// codeFields 输出错误码，带域的错误额外输出数字码。
func codeFields(meta ErrorLog) []zap.Field {
	if meta.Code == "" {
		return nil
	}
	out := []zap.Field{zap.String("error_code", meta.Code)}
	if meta.Domain != "" {
		out = append(out, zap.String("error_domain", meta.Domain), zap.Int("error_number", meta.Number))
	}
	return out
}

type sysProvider interface {
	IsSys() bool
}

func isSys(err error) bool {
	var sp sysProvider
	if !errors.As(err, &sp) {
		// 非 errx 错误一律按系统错误处理
		return true
	}
	return sp.IsSys()
}
