package logx

import (
	"context"
	"testing"

	"DAOKit/modules/kit/tracex"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_带上trace与角色字段(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewZapLogger(zap.New(core)).Named("dao")

	ctx := tracex.WithSpanID(tracex.WithTraceID(context.Background(), "t-1"), "s-1")
	ForRole(l, "place").WithContext(ctx).Info("saved", zap.String("id", "p1"))

	entries := logs.AllUntimed()
	if len(entries) != 1 {
		t.Fatalf("期望 1 条日志, got=%d", len(entries))
	}
	e := entries[0]
	if e.LoggerName != "dao" {
		t.Fatalf("期望 logger 名为 dao, got=%q", e.LoggerName)
	}
	want := map[string]any{"role": "place", "trace_id": "t-1", "span_id": "s-1", "id": "p1"}
	got := e.ContextMap()
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("字段 %s 期望 %v, got=%v", k, v, got[k])
		}
	}
}

func TestZapLogger_未开启的级别不输出(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewZapLogger(zap.New(core))
	if l.Enabled(zapcore.DebugLevel) || !l.Enabled(zapcore.WarnLevel) {
		t.Fatalf("期望只开启 INFO 及以上")
	}
	l.Debug("hidden")
	ReportDrop(l, NewDropLog("Account", "cards", "not a dictionary"))
	if logs.Len() != 0 {
		t.Fatalf("期望 DEBUG 与丢弃记录都不输出, got=%v", logs.All())
	}

	// 没有 trace 信息时不追加字段
	l.WithContext(context.Background()).Warn("plain")
	if got := logs.All()[0].Context; len(got) != 0 {
		t.Fatalf("期望没有附加字段, got=%v", got)
	}
}

func TestNop_与nil接收者都安全(t *testing.T) {
	Nop().WithContext(context.Background()).Error("x")
	ForRole(nil, "account").Warn("x")
	var z *ZapLogger
	z.Info("x")
	if z.Enabled(zapcore.ErrorLevel) {
		t.Fatalf("期望 nil logger 不开启任何级别")
	}
}
