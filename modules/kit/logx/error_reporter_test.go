package logx

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"DAOKit/modules/kit/errx"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestBuildErrorLog_能提取语义与栈(t *testing.T) {
	cause := errors.New("connection refused")
	e := errx.NewSys("SYS_STORE_UNAVAILABLE", "存储不可用").
		WithData("collection", "account").
		WithCause(cause)

	meta := BuildErrorLog(e)
	if meta.Error == "" || meta.Code == "" || meta.Msg == "" {
		t.Fatalf("期望 Error/Code/Msg 非空, got=%+v", meta)
	}
	if meta.Data == nil || meta.Data["collection"] != "account" {
		t.Fatalf("期望 meta.Data 包含 collection=account, got=%v", meta.Data)
	}
	if len(meta.CauseChain) == 0 {
		t.Fatalf("期望 meta.CauseChain 非空")
	}
	if meta.Origin == "" || meta.Stack == "" {
		t.Fatalf("期望 meta.Origin/meta.Stack 非空 origin=%q stack=%q", meta.Origin, meta.Stack)
	}
}

func TestReportCommand_按错误类型分级(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZapLogger(zap.New(core))
	ctx := context.Background()

	ReportCommand(ctx, l, "roundtrip", nil)
	ReportCommand(ctx, l, "diff", errx.ErrInvalidArgument.WithData("arg", "role"))
	ReportCommand(ctx, l, "save", errx.ErrUnavailable.WithCause(errors.New("dial tcp")))

	entries := logs.AllUntimed()
	if len(entries) != 3 {
		t.Fatalf("期望 3 条日志, got=%d", len(entries))
	}
	want := []zapcore.Level{zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}
	for i, e := range entries {
		if e.Level != want[i] {
			t.Fatalf("第 %d 条期望级别 %v, got=%v", i, want[i], e.Level)
		}
	}
}

func TestReportDrop_Debug级别(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ReportDrop(NewZapLogger(zap.New(core)), NewDropLog("Account", "cards", "not a dictionary"))
	if logs.Len() != 1 || logs.All()[0].Level != zapcore.DebugLevel {
		t.Fatalf("期望 1 条 DEBUG 日志, got=%v", logs.All())
	}
	if got := logs.All()[0].ContextMap()["key"]; got != "cards" {
		t.Fatalf("期望 key=cards, got=%v", got)
	}
}

func TestReportCommand_带域错误输出数字码(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	mismatch := errx.NewBiz("DATAOBJECTS_TYPE_MISMATCH", "字段类型不匹配").InDomain("DATAOBJECTS", 1002)
	err := fmt.Errorf("decode: %w", mismatch.WithData("key", "address"))

	ReportCommand(context.Background(), NewZapLogger(zap.New(core)), "roundtrip", err)

	if logs.Len() != 1 || logs.All()[0].Level != zapcore.WarnLevel {
		t.Fatalf("期望包装后的业务错误仍是 WARN, got=%v", logs.All())
	}
	fields := logs.All()[0].ContextMap()
	if fields["error_domain"] != "DATAOBJECTS" || fields["error_number"] != int64(1002) {
		t.Fatalf("期望输出域与数字码, got=%v", fields)
	}
}
