package errx

import (
	"errors"
	"fmt"
)

// Code 是错误的稳定标识，跨进程比较只看它。
type Code string

type kind uint8

const (
	kindBiz kind = iota
	kindSys
)

// Error 是各层共用的错误值。
//
// 字段约定：
// - code/msg：对外语义；domain/number 是可选的"域 + 数字码"，供调用方按数字分支
// - data：键名、实体角色、op 等上下文，每次派生都会复制
// - cause：下层错误，只用于溯源
// - stack：系统类错误第一次挂 cause 时捕获
type Error struct {
	code   Code
	msg    string
	domain string
	number int
	data   map[string]any
	cause  error
	stack  []uintptr
	kind   kind
}

func NewBiz(code Code, msg string) *Error {
	return &Error{code: code, msg: msg, kind: kindBiz}
}

func NewSys(code Code, msg string) *Error {
	return &Error{code: code, msg: msg, kind: kindSys}
}

// Wrap 以 base 的语义包装 cause；cause 为 nil 时返回 nil。
func Wrap(base *Error, cause error) error {
	if cause == nil {
		return nil
	}
	if base == nil {
		base = ErrInternal
	}
	return base.WithCause(cause)
}

// From 取出错误链上第一个 *Error。
func From(err error) (*Error, bool) {
	var e *Error
	if !errors.As(err, &e) || e == nil {
		return nil, false
	}
	return e, true
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	head := string(e.code)
	if e.domain != "" {
		head = fmt.Sprintf("%s[%s/%d]", e.code, e.domain, e.number)
	}
	switch {
	case e.msg == "" && e.cause == nil:
		return head
	case e.msg == "":
		return fmt.Sprintf("%s: %v", head, e.cause)
	case e.cause == nil:
		return fmt.Sprintf("%s: %s", head, e.msg)
	}
	return fmt.Sprintf("%s: %s: %v", head, e.msg, e.cause)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Is 只比较 code。
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if e == nil || !ok || t == nil {
		return false
	}
	return e.code == t.code
}

func (e *Error) Code() Code {
	if e == nil {
		return ""
	}
	return e.code
}

func (e *Error) CodeText() string {
	return string(e.Code())
}

func (e *Error) Msg() string {
	if e == nil {
		return ""
	}
	return e.msg
}

// Domain 返回错误所属的域，未设置时为空。
func (e *Error) Domain() string {
	if e == nil {
		return ""
	}
	return e.domain
}

// Number 是域内唯一的数字码，没有域时为 0。
func (e *Error) Number() int {
	if e == nil {
		return 0
	}
	return e.number
}

func (e *Error) IsSys() bool {
	return e != nil && e.kind == kindSys
}

// Data 返回上下文的拷贝。
func (e *Error) Data() map[string]any {
	if e == nil {
		return nil
	}
	return cloneAnyMap(e.data)
}

// Reason 读取 data.reason。
func (e *Error) Reason() string {
	if e == nil {
		return ""
	}
	s, _ := e.data["reason"].(string)
	return s
}

func (e *Error) Stack() []uintptr {
	if e == nil {
		return nil
	}
	return cloneStack(e.stack)
}

// InDomain 给错误挂上域与数字码，用于定义各包自己的哨兵错误。
func (e *Error) InDomain(domain string, number int) *Error {
	next := e.derive()
	next.domain = domain
	next.number = number
	return next
}

func (e *Error) WithData(key string, value any) *Error {
	return e.WithDataMap(map[string]any{key: value})
}

func (e *Error) WithReason(reason string) *Error {
	return e.WithData("reason", reason)
}

func (e *Error) WithDataMap(data map[string]any) *Error {
	next := e.derive()
	if len(data) == 0 {
		return next
	}
	if next.data == nil {
		next.data = make(map[string]any, len(data))
	}
	for k, v := range data {
		next.data[k] = v
	}
	return next
}

func (e *Error) WithCause(cause error) *Error {
	next := e.derive()
	next.cause = cause
	// 链上已有栈时不再捕获
	if next.kind == kindSys && cause != nil && len(next.stack) == 0 && !hasStackInChain(cause) {
		next.stack = captureStack(3)
	}
	return next
}

// derive 复制一份，哨兵本身永远不变。
func (e *Error) derive() *Error {
	next := *e
	next.data = cloneAnyMap(e.data)
	next.stack = cloneStack(e.stack)
	return &next
}

func cloneAnyMap(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
