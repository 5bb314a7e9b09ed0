package value

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func TestText_单字符串进入默认语言(t *testing.T) {
	got, ok := TextFromAny("Hello")
	if !ok || got.String() != "Hello" || got.In("fr") != "Hello" {
		t.Fatalf("期望单字符串进入默认语言并作为回退, got=%v ok=%v", got, ok)
	}
	multi, ok := TextFromAny(map[string]any{"en": "Hi", "es": "Hola"})
	if !ok || multi.In("es") != "Hola" {
		t.Fatalf("期望多语言 map 正常解析, got=%v", multi)
	}
	if !Text(nil).Equal(Text{}) {
		t.Fatalf("期望 nil 与空 Text 相等")
	}
	c := multi.Copy()
	c["en"] = "changed"
	if multi["en"] != "Hi" {
		t.Fatalf("期望 Copy 深拷贝")
	}
}

func TestInWindow_四种边界组合(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	before := now.Add(-time.Hour)
	after := now.Add(time.Hour)

	cases := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"都未设置", time.Time{}, time.Time{}, true},
		{"哨兵值视为未设置", DefaultStartTime, DefaultEndTime, true},
		{"只有终点_未过期", DefaultStartTime, after, true},
		{"只有终点_已过期", time.Time{}, before, false},
		{"只有起点_已开始", before, DefaultEndTime, true},
		{"只有起点_未开始", after, time.Time{}, false},
		{"两端都设置_区间内", before, after, true},
		{"两端都设置_等于起点不算", now, after, false},
	}
	for _, c := range cases {
		if got := InWindow(c.start, c.end, now); got != c.want {
			t.Fatalf("%s: 期望 %v, got=%v", c.name, c.want, got)
		}
	}
}

func TestPrice_字典往返(t *testing.T) {
	p := Price{
		Amount:    decimal.RequireFromString("10.50"),
		Priority:  3,
		StartTime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	back, ok := PriceFromAny(p.ToDictionary())
	if !ok || !back.Equal(p) {
		t.Fatalf("期望 Price 字典往返一致, got=%+v want=%+v", back, p)
	}
	if n, ok := PriceFromAny(12.5); !ok || !n.Amount.Equal(decimal.NewFromFloat(12.5)) {
		t.Fatalf("期望数字直接作为金额, got=%+v", n)
	}
	if _, ok := PriceFromAny(map[string]any{"priority": 1}); ok {
		t.Fatalf("期望缺少 price 时解析失败")
	}
}

func TestTimeFromAny_截到毫秒(t *testing.T) {
	in := time.Date(2024, 1, 1, 8, 30, 0, 987654321, time.UTC)
	got, ok := TimeFromAny(in)
	if !ok || got.Nanosecond() != 987000000 {
		t.Fatalf("期望截到毫秒, got=%v", got)
	}
	if !SameInstant(in, got) {
		t.Fatalf("期望毫秒精度下视为同一时刻")
	}
	if SameInstant(in, in.Add(time.Millisecond)) {
		t.Fatalf("期望相差一毫秒时不是同一时刻")
	}
	p := Price{Amount: decimal.NewFromInt(1), StartTime: in}
	back, ok := PriceFromAny(p.ToDictionary())
	if !ok || !back.Equal(p) || back.StartTime.Nanosecond() != 987000000 {
		t.Fatalf("期望 Price 往返后时间截到毫秒且相等, got=%+v", back)
	}
}

func TestDayHours_解析与营业判断(t *testing.T) {
	d, ok := DayHoursFromAny(map[string]any{"open": "09:00", "close": 17.5})
	if !ok {
		t.Fatalf("期望解析成功")
	}
	want := NewDayHours(NewTimeOfDay(9, 0), NewTimeOfDay(17, 30))
	if !d.Equal(want) {
		t.Fatalf("期望 %v, got=%v", want.ToDictionary(), d.ToDictionary())
	}
	noon := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	if !d.IsOpenAt(noon) || d.IsOpenAt(noon.Add(6*time.Hour)) {
		t.Fatalf("营业时间判断不符合预期")
	}
	if !(DayHours{}).IsClosed() {
		t.Fatalf("期望 open/close 都为空时视为不营业")
	}
	c := d.Copy()
	c.Open.Hour = 1
	if d.Open.Hour != 9 {
		t.Fatalf("期望 Copy 不共享指针")
	}
}

func TestGeopoint_固定字典形态(t *testing.T) {
	g := Geopoint{Latitude: 40.7, Longitude: -74.0, Altitude: 10}
	want := map[string]float64{"latitude": 40.7, "longitude": -74.0, "altitude": 10}
	if diff := cmp.Diff(want, g.ToDictionary()); diff != "" {
		t.Fatalf("geopoint 字典形态变化 (-want +got):\n%s", diff)
	}
	back, ok := GeopointFromAny(map[string]any{"latitude": 40.7, "longitude": int32(-74), "altitude": 10})
	if !ok || !back.Equal(g) {
		t.Fatalf("期望从 any map 解析, got=%+v", back)
	}
	if _, ok := GeopointFromAny(map[string]any{"latitude": 1}); ok {
		t.Fatalf("期望缺少 longitude 时失败")
	}
}

func TestColor_十六进制(t *testing.T) {
	c, ok := ColorFromAny("#FF000080")
	if !ok || c != (Color{R: 255, A: 128}) {
		t.Fatalf("解析失败 got=%+v", c)
	}
	if c.String() != "#FF000080" {
		t.Fatalf("期望输出 #FF000080, got=%s", c)
	}
	if got, _ := ColorFromAny("00FF00"); got.A != 255 {
		t.Fatalf("期望 6 位颜色默认不透明, got=%+v", got)
	}
}

func TestAnalyticsNumbers_缺失字段按零(t *testing.T) {
	n, ok := AnalyticsNumbersFromAny(map[string]any{"iOS": 2, "total": "5"})
	if !ok {
		t.Fatalf("期望解析成功")
	}
	want := AnalyticsNumbers{IOS: 2, Total: 5}
	if n != want {
		t.Fatalf("解析结果不对: got=%+v want=%+v", n, want)
	}
	if _, ok := AnalyticsNumbersFromAny("x"); ok {
		t.Fatalf("字符串不应解析成功")
	}
}
