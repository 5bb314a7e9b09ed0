package value

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Price 是一条带优先级和生效窗口的价格。
type Price struct {
	Amount    decimal.Decimal
	Priority  int
	StartTime time.Time
	EndTime   time.Time
}

func NewPrice(amount decimal.Decimal) Price {
	return Price{Amount: amount}
}

func (p Price) IsActive(t time.Time) bool {
	return InWindow(p.StartTime, p.EndTime, t)
}

func (p Price) Equal(o Price) bool {
	return p.Amount.Equal(o.Amount) &&
		p.Priority == o.Priority &&
		SameInstant(p.StartTime, o.StartTime) &&
		SameInstant(p.EndTime, o.EndTime)
}

// Copy 返回值拷贝；Price 不持有引用类型，保留该方法与其它值类型对齐。
func (p Price) Copy() Price {
	return p
}

// ToDictionary 金额按字符串输出，避免浮点误差。
func (p Price) ToDictionary() map[string]any {
	out := map[string]any{
		"price":    p.Amount.String(),
		"priority": p.Priority,
	}
	if !p.StartTime.IsZero() {
		out["startTime"] = p.StartTime
	}
	if !p.EndTime.IsZero() {
		out["endTime"] = p.EndTime
	}
	return out
}

// PriceFromAny 接受数字/字符串金额，或带 price/priority/startTime/endTime 的 map。
func PriceFromAny(v any) (Price, bool) {
	if v == nil {
		return Price{}, false
	}
	if amount, ok := amountFromAny(v); ok {
		return NewPrice(amount), true
	}
	m, err := cast.ToStringMapE(v)
	if err != nil {
		return Price{}, false
	}
	amount, ok := amountFromAny(m["price"])
	if !ok {
		return Price{}, false
	}
	p := NewPrice(amount)
	if n, err := cast.ToIntE(m["priority"]); err == nil {
		p.Priority = n
	}
	if t, ok := TimeFromAny(m["startTime"]); ok {
		p.StartTime = t
	}
	if t, ok := TimeFromAny(m["endTime"]); ok {
		p.EndTime = t
	}
	return p, true
}

func amountFromAny(v any) (decimal.Decimal, bool) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, true
	case string:
		d, err := decimal.NewFromString(x)
		return d, err == nil
	case float64:
		return decimal.NewFromFloat(x), true
	case float32:
		return decimal.NewFromFloat32(x), true
	case int, int32, int64:
		return decimal.NewFromInt(cast.ToInt64(x)), true
	}
	return decimal.Decimal{}, false
}

// TimePrecision 是持久化时间的精度，与 BSON datetime 一致。
const TimePrecision = time.Millisecond

// SameInstant 按 TimePrecision 比较两个时间。
func SameInstant(a, b time.Time) bool {
	return a.Truncate(TimePrecision).Equal(b.Truncate(TimePrecision))
}

// TimeFromAny 接受 time.Time、RFC3339 字符串或 Unix 秒，结果截到 TimePrecision。
func TimeFromAny(v any) (time.Time, bool) {
	if v == nil {
		return time.Time{}, false
	}
	if s, ok := v.(string); ok && s == "" {
		return time.Time{}, false
	}
	t, err := cast.ToTimeE(v)
	if err != nil {
		return time.Time{}, false
	}
	return t.Truncate(TimePrecision), true
}
