package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// TimeOfDay 是一天内的时刻，精确到分钟。
type TimeOfDay struct {
	Hour   int
	Minute int
}

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay{Hour: hour, Minute: minute}
}

func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// On 返回 day 所在日期、day 所在时区下的该时刻。
func (t TimeOfDay) On(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, t.Hour, t.Minute, 0, 0, day.Location())
}

// TimeOfDayFromAny 接受 "HH:MM" 字符串或以小时为单位的数字（9.5 == 09:30）。
func TimeOfDayFromAny(v any) (TimeOfDay, bool) {
	switch x := v.(type) {
	case nil:
		return TimeOfDay{}, false
	case TimeOfDay:
		return x, true
	case string:
		return parseTimeOfDay(x)
	}
	hours, err := cast.ToFloat64E(v)
	if err != nil || hours < 0 || hours >= 24 {
		return TimeOfDay{}, false
	}
	total := int(math.Round(hours * 60))
	return TimeOfDay{Hour: total / 60, Minute: total % 60}, true
}

func parseTimeOfDay(s string) (TimeOfDay, bool) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return TimeOfDay{}, false
	}
	hour, err1 := strconv.Atoi(h)
	minute, err2 := strconv.Atoi(m)
	if err1 != nil || err2 != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, false
	}
	return TimeOfDay{Hour: hour, Minute: minute}, true
}

// DayHours 是某一天的营业时间；Open/Close 都为 nil 表示当天不营业。
type DayHours struct {
	Open  *TimeOfDay
	Close *TimeOfDay
}

func NewDayHours(open, close TimeOfDay) DayHours {
	return DayHours{Open: &open, Close: &close}
}

func (d DayHours) IsClosed() bool {
	return d.Open == nil && d.Close == nil
}

// IsOpenAt 只比较时刻；Close 早于 Open 时视为跨午夜。
func (d DayHours) IsOpenAt(t time.Time) bool {
	if d.IsClosed() {
		return false
	}
	now := t.Hour()*60 + t.Minute()
	open, close := 0, 24*60
	if d.Open != nil {
		open = d.Open.Minutes()
	}
	if d.Close != nil {
		close = d.Close.Minutes()
	}
	if close < open {
		return now >= open || now < close
	}
	return now >= open && now < close
}

func (d DayHours) Copy() DayHours {
	out := DayHours{}
	if d.Open != nil {
		o := *d.Open
		out.Open = &o
	}
	if d.Close != nil {
		c := *d.Close
		out.Close = &c
	}
	return out
}

func (d DayHours) Equal(o DayHours) bool {
	return sameTimeOfDay(d.Open, o.Open) && sameTimeOfDay(d.Close, o.Close)
}

func (d DayHours) ToDictionary() map[string]any {
	out := map[string]any{"open": nil, "close": nil}
	if d.Open != nil {
		out["open"] = d.Open.String()
	}
	if d.Close != nil {
		out["close"] = d.Close.String()
	}
	return out
}

func DayHoursFromAny(v any) (DayHours, bool) {
	if x, ok := v.(DayHours); ok {
		return x.Copy(), true
	}
	m, err := cast.ToStringMapE(v)
	if err != nil {
		return DayHours{}, false
	}
	out := DayHours{}
	if t, ok := TimeOfDayFromAny(m["open"]); ok {
		out.Open = &t
	}
	if t, ok := TimeOfDayFromAny(m["close"]); ok {
		out.Close = &t
	}
	return out, true
}

func sameTimeOfDay(a, b *TimeOfDay) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
