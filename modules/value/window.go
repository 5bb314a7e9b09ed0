package value

import "time"

var (
	// DefaultStartTime 是时间窗口“未设置”的起点哨兵值。
	DefaultStartTime = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)
	// DefaultEndTime 是时间窗口“未设置”的终点哨兵值（起点 + 30 年）。
	DefaultEndTime = DefaultStartTime.AddDate(30, 0, 0)
)

// StartUnset 零值或哨兵值都视为未设置。
func StartUnset(t time.Time) bool {
	return t.IsZero() || t.Equal(DefaultStartTime)
}

func EndUnset(t time.Time) bool {
	return t.IsZero() || t.Equal(DefaultEndTime)
}

// InWindow 判断 t 是否落在 [start, end] 描述的生效窗口内：
// 两端都未设置时恒为 true；只设置一端时做开区间单边比较；两端都设置时要求 start < t < end。
func InWindow(start, end, t time.Time) bool {
	startUnset, endUnset := StartUnset(start), EndUnset(end)
	switch {
	case startUnset && endUnset:
		return true
	case startUnset:
		return t.Before(end)
	case endUnset:
		return t.After(start)
	default:
		return t.After(start) && t.Before(end)
	}
}
