package value

import "github.com/spf13/cast"

// AnalyticsNumbers 是按平台拆分的一组统计数。
type AnalyticsNumbers struct {
	Android float64
	IOS     float64
	Total   float64
}

func (n AnalyticsNumbers) ToDictionary() map[string]any {
	return map[string]any{
		"android": n.Android,
		"iOS":     n.IOS,
		"total":   n.Total,
	}
}

// AnalyticsNumbersFromAny 缺失的平台字段按 0 处理，但必须是 map。
func AnalyticsNumbersFromAny(v any) (AnalyticsNumbers, bool) {
	if x, ok := v.(AnalyticsNumbers); ok {
		return x, true
	}
	if v == nil {
		return AnalyticsNumbers{}, false
	}
	m, err := cast.ToStringMapE(v)
	if err != nil {
		return AnalyticsNumbers{}, false
	}
	return AnalyticsNumbers{
		Android: cast.ToFloat64(m["android"]),
		IOS:     cast.ToFloat64(m["iOS"]),
		Total:   cast.ToFloat64(m["total"]),
	}, true
}
