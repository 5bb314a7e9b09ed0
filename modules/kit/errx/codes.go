package errx

// 跨模块统一的系统类错误码。
//
// 约束：
// - 只放“技术类”错误码（存储不可用、超时、内部错误），便于日志归一化
// - 数据对象相关的错误码（类型不匹配、不支持独立解码等）由 dao 包自行定义

const (
	// CodeInternal 表示不可预期的内部错误（兜底）。
	CodeInternal Code = "INTERNAL_ERROR"
	// CodeUnavailable 表示依赖不可用（Mongo 连接失败、集合未初始化等）。
	CodeUnavailable Code = "SERVICE_UNAVAILABLE"
	// CodeTimeout 表示依赖调用超时。
	CodeTimeout Code = "TIMEOUT"
	// CodeInvalidArgument 表示调用方传入的参数不合法（命令行参数、配置项）。
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	// CodeNotFound 表示按 id 查找的记录不存在。
	CodeNotFound Code = "NOT_FOUND"
)

// 统一哨兵错误（允许 WithData/WithCause 派生新对象）。
var (
	ErrInternal        = NewSys(CodeInternal, "内部错误")
	ErrUnavailable     = NewSys(CodeUnavailable, "依赖不可用")
	ErrTimeout         = NewSys(CodeTimeout, "调用超时")
	ErrInvalidArgument = NewBiz(CodeInvalidArgument, "参数不合法")
	ErrNotFound        = NewBiz(CodeNotFound, "记录不存在")
)
