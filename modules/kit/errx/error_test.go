package errx

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Is_只按code比较语义(t *testing.T) {
	e1 := NewBiz("DATAOBJECTS_X", "x").WithData("key", "name").WithCause(errors.New("cause1"))
	e2 := NewBiz("DATAOBJECTS_X", "x2").WithData("key", "dob").WithCause(errors.New("cause2"))
	if !errors.Is(e1, e2) {
		t.Fatalf("期望 errors.Is(e1, e2)==true（只按 code 判断语义），e1=%v e2=%v", e1, e2)
	}
}

func TestError_业务错误不捕获栈_但保留cause链(t *testing.T) {
	cause := errors.New("bad value")
	err := NewBiz("DATAOBJECTS_TYPE_MISMATCH", "字段类型不匹配").WithCause(cause)
	if got := err.Stack(); got != nil {
		t.Fatalf("期望业务错误不捕获栈，got=%v", got)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("期望 cause 链不丢，err=%v", err)
	}
	if err.IsSys() {
		t.Fatalf("期望业务错误 IsSys()==false")
	}
}

func TestError_系统错误捕获一次栈_且不重复捕获(t *testing.T) {
	cause := errors.New("server selection timeout")
	sys := NewSys("SYS_STORE_UNAVAILABLE", "存储不可用").WithCause(cause)
	if got := sys.Stack(); len(got) == 0 {
		t.Fatalf("期望系统错误捕获栈（发生/转换处），got=%v", got)
	}

	sys2 := NewSys("SYS_CLI_ERROR", "命令执行失败").WithCause(sys)
	if got := sys2.Stack(); got != nil {
		t.Fatalf("期望上层系统错误不重复捕获栈（cause 链里已有栈），got=%v", got)
	}
}

func TestError_Data_防止外部map污染(t *testing.T) {
	m := map[string]any{"k": "v"}
	err := NewBiz("BIZ_X", "").WithDataMap(m)
	m["k"] = "mutated"
	if got := err.Data()["k"]; got != "v" {
		t.Fatalf("期望构造时复制 data，避免外部后续修改影响错误上下文；got=%v", got)
	}
}

func TestWrap_nil_cause返回nil(t *testing.T) {
	if err := Wrap(ErrUnavailable, nil); err != nil {
		t.Fatalf("期望 cause 为 nil 时返回 nil, got=%v", err)
	}
	err := Wrap(ErrUnavailable, errors.New("dial tcp"))
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("期望包装后仍能匹配 ErrUnavailable, err=%v", err)
	}
	if ErrUnavailable.Unwrap() != nil {
		t.Fatalf("期望哨兵错误不被 Wrap 污染")
	}
}

func TestInDomain_派生保留数字码(t *testing.T) {
	base := NewBiz("DATAOBJECTS_TYPE_MISMATCH", "字段类型不匹配").InDomain("DATAOBJECTS", 1002)
	err := base.WithData("key", "address").WithCause(errors.New("bad"))
	if err.Domain() != "DATAOBJECTS" || err.Number() != 1002 {
		t.Fatalf("期望派生后保留域与数字码, got=%s/%d", err.Domain(), err.Number())
	}
	if base.Data() != nil {
		t.Fatalf("期望哨兵 data 不被污染, got=%v", base.Data())
	}
	if got := err.Error(); got != "DATAOBJECTS_TYPE_MISMATCH[DATAOBJECTS/1002]: 字段类型不匹配: bad" {
		t.Fatalf("错误文本不符, got=%q", got)
	}
}

func TestFrom_沿链查找(t *testing.T) {
	inner := ErrNotFound.WithReason("no document")
	outer := fmt.Errorf("load: %w", inner)
	e, ok := From(outer)
	if !ok || e.Code() != CodeNotFound || e.Reason() != "no document" {
		t.Fatalf("期望找到 NOT_FOUND, got=%v ok=%v", e, ok)
	}
	if _, ok := From(errors.New("plain")); ok {
		t.Fatalf("期望普通错误找不到 *Error")
	}
	if NewBiz("X", "").Number() != 0 {
		t.Fatalf("期望未设置域时数字码为 0")
	}
}
