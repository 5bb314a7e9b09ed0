package dao

import (
	"DAOKit/modules/kit/errx"
)

// Code / Error 直接复用 errx 的错误模型。
type (
	Code  = errx.Code
	Error = errx.Error
)

// ErrorDomain 是数据对象错误的域名，数字码只在这个域内唯一。
const ErrorDomain = "DATAOBJECTS"

const (
	CodeUnknown           Code = "DATAOBJECTS_UNKNOWN"
	CodeTypeMismatch      Code = "DATAOBJECTS_TYPE_MISMATCH"
	CodeUnexpectedNil     Code = "DATAOBJECTS_UNEXPECTED_NIL"
	CodeDecodeUnsupported Code = "DATAOBJECTS_DECODE_UNSUPPORTED"
	CodeMissingRegistry   Code = "DATAOBJECTS_MISSING_REGISTRY"
)

var (
	ErrUnknown           = errx.NewSys(CodeUnknown, "未知错误").InDomain(ErrorDomain, 1001)
	ErrTypeMismatch      = errx.NewBiz(CodeTypeMismatch, "字段类型不匹配").InDomain(ErrorDomain, 1002)
	ErrUnexpectedNil     = errx.NewBiz(CodeUnexpectedNil, "意外的空值").InDomain(ErrorDomain, 1003)
	ErrDecodeUnsupported = errx.NewBiz(CodeDecodeUnsupported, "该实体只能作为父对象的字段解码").InDomain(ErrorDomain, 1004)
	ErrMissingRegistry   = errx.NewSys(CodeMissingRegistry, "结构化解码缺少工厂注册表").InDomain(ErrorDomain, 1005)
)

var sentinels = map[Code]*Error{
	CodeUnknown:           ErrUnknown,
	CodeTypeMismatch:      ErrTypeMismatch,
	CodeUnexpectedNil:     ErrUnexpectedNil,
	CodeDecodeUnsupported: ErrDecodeUnsupported,
	CodeMissingRegistry:   ErrMissingRegistry,
}

// NewError 按错误码派生一个带上下文的错误；未知码按 CodeUnknown 处理。
func NewError(code Code, data map[string]any, cause error) *Error {
	base, ok := sentinels[code]
	if !ok {
		base = ErrUnknown
	}
	e := base.WithDataMap(data)
	if cause != nil {
		e = e.WithCause(cause)
	}
	return e
}

// NumericCode 返回错误在 DATAOBJECTS 域内的数字码；非本域错误返回 0。
func NumericCode(err error) int {
	e, ok := errx.From(err)
	if !ok || e.Domain() != ErrorDomain {
		return 0
	}
	return e.Number()
}

func typeMismatch(key, want string, got any) error {
	return ErrTypeMismatch.WithDataMap(map[string]any{
		"key":  key,
		"want": want,
		"got":  got,
	})
}
