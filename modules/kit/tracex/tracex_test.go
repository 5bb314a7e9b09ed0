package tracex

import (
	"context"
	"testing"
)

func TestTraceID_RoundTrip(t *testing.T) {
	ctx := WithTraceID(context.Background(), "t-1")
	if got, ok := TraceIDFrom(ctx); !ok || got != "t-1" {
		t.Fatalf("期望 TraceIDFrom round-trip 成功，got=%q ok=%v", got, ok)
	}
}

func TestStart_沿用已有traceID且生成新span(t *testing.T) {
	ctx := Start(WithTraceID(context.Background(), "t-2"))
	if got, _ := TraceIDFrom(ctx); got != "t-2" {
		t.Fatalf("期望沿用已有 trace_id, got=%q", got)
	}
	sid, ok := SpanIDFrom(ctx)
	if !ok || len(sid) != 16 {
		t.Fatalf("期望生成 16 位 span_id, got=%q ok=%v", sid, ok)
	}

	fresh := Start(context.Background())
	if tid, ok := TraceIDFrom(fresh); !ok || len(tid) != 32 {
		t.Fatalf("期望生成 32 位 trace_id, got=%q ok=%v", tid, ok)
	}
}
