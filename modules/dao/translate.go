package dao

import (
	"time"

	"github.com/spf13/cast"

	"DAOKit/modules/value"
)

// Dictionary 是宽松的键值表示（文档行、REST 负载）。
type Dictionary = map[string]any

// 以下是字典翻译使用的转换词汇：转换失败返回 ok=false，调用方保留当前值。

func String(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	s, err := cast.ToStringE(normalize(v))
	return s, err == nil
}

func Int(v any) (int, bool) {
	if v == nil {
		return 0, false
	}
	n, err := cast.ToIntE(normalize(v))
	return n, err == nil
}

func Bool(v any) (bool, bool) {
	if v == nil {
		return false, false
	}
	b, err := cast.ToBoolE(normalize(v))
	return b, err == nil
}

func Float(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	f, err := cast.ToFloat64E(normalize(v))
	return f, err == nil
}

// Time 的结果截到 value.TimePrecision，字典与 BSON 两条路径读出的时间一致。
func Time(v any) (time.Time, bool) {
	return value.TimeFromAny(normalize(v))
}

// Dict 把 v 转成字典；不是字典时返回 nil。
func Dict(v any) Dictionary {
	switch x := normalize(v).(type) {
	case nil:
		return nil
	case Dictionary:
		return x
	case map[string]string:
		out := make(Dictionary, len(x))
		for k, s := range x {
			out[k] = s
		}
		return out
	case map[string]float64:
		out := make(Dictionary, len(x))
		for k, f := range x {
			out[k] = f
		}
		return out
	default:
		m, err := cast.ToStringMapE(x)
		if err != nil {
			return nil
		}
		return m
	}
}

// Array 把 v 转成 []any。
func Array(v any) ([]any, bool) {
	switch x := normalize(v).(type) {
	case nil:
		return nil, false
	case []Dictionary:
		out := make([]any, len(x))
		for i, d := range x {
			out[i] = d
		}
		return out, true
	default:
		s, err := cast.ToSliceE(x)
		return s, err == nil
	}
}

// DataArray 把 v 转成字典数组，跳过不是字典的元素。
func DataArray(v any) []Dictionary {
	items, ok := Array(v)
	if !ok {
		return nil
	}
	out := make([]Dictionary, 0, len(items))
	for _, item := range items {
		if d := Dict(item); d != nil {
			out = append(out, d)
		}
	}
	return out
}

func Strings(v any) ([]string, bool) {
	if v == nil {
		return nil, false
	}
	s, err := cast.ToStringSliceE(normalize(v))
	return s, err == nil
}

func Floats(v any) ([]float64, bool) {
	if x, ok := v.([]float64); ok {
		return append([]float64(nil), x...), true
	}
	items, ok := Array(v)
	if !ok {
		return nil, false
	}
	out := make([]float64, 0, len(items))
	for _, item := range items {
		f, err := cast.ToFloat64E(item)
		if err != nil {
			return nil, false
		}
		out = append(out, f)
	}
	return out, true
}

// Merge 把 src 合并进 dst，dst 已有的键优先；返回 dst。
func Merge(dst, src Dictionary) Dictionary {
	if dst == nil {
		dst = make(Dictionary, len(src))
	}
	for k, v := range src {
		if _, exists := dst[k]; !exists {
			dst[k] = v
		}
	}
	return dst
}

// TimeOrNil 把可选时间转成字典值。
func TimeOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return sameInstant(*a, *b)
}

// sameInstant 比毫秒更细的部分不算差异。
func sameInstant(a, b time.Time) bool {
	return value.SameInstant(a, b)
}

// Reader 按键读取字典字段：键不存在或转换失败时保留目标的当前值，返回是否写入。
type Reader struct {
	data Dictionary
}

func Read(data Dictionary) Reader {
	return Reader{data: data}
}

func (r Reader) Has(key string) bool {
	_, ok := r.data[key]
	return ok
}

func (r Reader) Raw(key string) (any, bool) {
	v, ok := r.data[key]
	return v, ok
}

func (r Reader) String(key string, dst *string) bool {
	return assign(r.data, key, dst, String)
}

func (r Reader) Int(key string, dst *int) bool {
	return assign(r.data, key, dst, Int)
}

func (r Reader) Bool(key string, dst *bool) bool {
	return assign(r.data, key, dst, Bool)
}

func (r Reader) Float(key string, dst *float64) bool {
	return assign(r.data, key, dst, Float)
}

func (r Reader) Time(key string, dst *time.Time) bool {
	return assign(r.data, key, dst, Time)
}

func (r Reader) OptionalTime(key string, dst **time.Time) bool {
	return assign(r.data, key, dst, func(v any) (*time.Time, bool) {
		t, ok := Time(v)
		if !ok {
			return nil, false
		}
		return &t, true
	})
}

func (r Reader) Strings(key string, dst *[]string) bool {
	return assign(r.data, key, dst, Strings)
}

func (r Reader) Floats(key string, dst *[]float64) bool {
	return assign(r.data, key, dst, Floats)
}

func (r Reader) Text(key string, dst *value.Text) bool {
	return assign(r.data, key, dst, func(v any) (value.Text, bool) { return value.TextFromAny(normalize(v)) })
}

func (r Reader) URL(key string, dst *value.URL) bool {
	return assign(r.data, key, dst, func(v any) (value.URL, bool) { return value.URLFromAny(normalize(v)) })
}

func (r Reader) DayHours(key string, dst *value.DayHours) bool {
	return assign(r.data, key, dst, func(v any) (value.DayHours, bool) { return value.DayHoursFromAny(normalize(v)) })
}

func (r Reader) TimeOfDay(key string, dst *value.TimeOfDay) bool {
	return assign(r.data, key, dst, value.TimeOfDayFromAny)
}

func (r Reader) Color(key string, dst *value.Color) bool {
	return assign(r.data, key, dst, func(v any) (value.Color, bool) { return value.ColorFromAny(normalize(v)) })
}

func (r Reader) Geopoint(key string, dst **value.Geopoint) bool {
	return assign(r.data, key, dst, func(v any) (*value.Geopoint, bool) {
		g, ok := value.GeopointFromAny(normalize(v))
		if !ok {
			return nil, false
		}
		return &g, true
	})
}

func (r Reader) Prices(key string, dst *[]value.Price) bool {
	return assign(r.data, key, dst, func(v any) ([]value.Price, bool) {
		items, ok := Array(v)
		if !ok {
			return nil, false
		}
		out := make([]value.Price, 0, len(items))
		for _, item := range items {
			if p, ok := value.PriceFromAny(item); ok {
				out = append(out, p)
			}
		}
		return out, true
	})
}

func (r Reader) Numbers(key string, dst *value.AnalyticsNumbers) bool {
	return assign(r.data, key, dst, func(v any) (value.AnalyticsNumbers, bool) {
		return value.AnalyticsNumbersFromAny(normalize(v))
	})
}

func (r Reader) NumbersList(key string, dst *[]value.AnalyticsNumbers) bool {
	return assign(r.data, key, dst, numbersList)
}

func (r Reader) NumbersMap(key string, dst *map[string]value.AnalyticsNumbers) bool {
	return assign(r.data, key, dst, numbersMap)
}

func (r Reader) TextMap(key string, dst *map[string]value.Text) bool {
	return assign(r.data, key, dst, textMap)
}

func (r Reader) TimeZone(key string, dst **time.Location) bool {
	return assign(r.data, key, dst, timeZone)
}

func (r Reader) Dict(key string, dst *Dictionary) bool {
	return assign(r.data, key, dst, func(v any) (Dictionary, bool) {
		d := Dict(v)
		return CopyDictionary(d), d != nil
	})
}

func assign[T any](data Dictionary, key string, dst *T, conv func(any) (T, bool)) bool {
	raw, ok := data[key]
	if !ok || raw == nil {
		return false
	}
	v, ok := conv(raw)
	if !ok {
		return false
	}
	*dst = v
	return true
}

func timeZone(v any) (*time.Location, bool) {
	if loc, ok := v.(*time.Location); ok {
		return loc, loc != nil
	}
	name, ok := String(v)
	if !ok || name == "" {
		return nil, false
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, false
	}
	return loc, true
}

func timeZoneName(loc *time.Location) any {
	if loc == nil {
		return nil
	}
	return loc.String()
}

func numbersList(v any) ([]value.AnalyticsNumbers, bool) {
	items, ok := Array(v)
	if !ok {
		return nil, false
	}
	out := make([]value.AnalyticsNumbers, 0, len(items))
	for _, item := range items {
		if n, ok := value.AnalyticsNumbersFromAny(item); ok {
			out = append(out, n)
		}
	}
	return out, true
}

func numbersMap(v any) (map[string]value.AnalyticsNumbers, bool) {
	d := Dict(v)
	if d == nil {
		return nil, false
	}
	out := make(map[string]value.AnalyticsNumbers, len(d))
	for k, item := range d {
		if n, ok := value.AnalyticsNumbersFromAny(item); ok {
			out[k] = n
		}
	}
	return out, true
}

func textMap(v any) (map[string]value.Text, bool) {
	d := Dict(v)
	if d == nil {
		return nil, false
	}
	out := make(map[string]value.Text, len(d))
	for k, item := range d {
		if t, ok := value.TextFromAny(item); ok {
			out[k] = t
		}
	}
	return out, true
}

func textMapDictionary(m map[string]value.Text) Dictionary {
	out := make(Dictionary, len(m))
	for k, t := range m {
		out[k] = t.ToDictionary()
	}
	return out
}

func copyTextMap(m map[string]value.Text) map[string]value.Text {
	if m == nil {
		return nil
	}
	out := make(map[string]value.Text, len(m))
	for k, t := range m {
		out[k] = t.Copy()
	}
	return out
}

func sameTextMap(a, b map[string]value.Text) bool {
	if len(a) != len(b) {
		return false
	}
	for k, t := range a {
		o, ok := b[k]
		if !ok || !t.Equal(o) {
			return false
		}
	}
	return true
}

func numbersDictionary(list []value.AnalyticsNumbers) []any {
	out := make([]any, 0, len(list))
	for _, n := range list {
		out = append(out, n.ToDictionary())
	}
	return out
}

func numbersMapDictionary(m map[string]value.AnalyticsNumbers) Dictionary {
	out := make(Dictionary, len(m))
	for k, n := range m {
		out[k] = n.ToDictionary()
	}
	return out
}

func pricesDictionary(list []value.Price) []any {
	out := make([]any, 0, len(list))
	for _, p := range list {
		out = append(out, p.ToDictionary())
	}
	return out
}

func geopointDictionary(g *value.Geopoint) any {
	if g == nil {
		return nil
	}
	return g.ToDictionary()
}

func copyGeopoint(g *value.Geopoint) *value.Geopoint {
	if g == nil {
		return nil
	}
	c := *g
	return &c
}

func sameGeopoint(a, b *value.Geopoint) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func sameTimeZone(a, b *time.Location) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.String() == b.String()
}

func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func copyStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

func samePrices(a, b []value.Price) bool {
	if len(a) != len(b) {
		return false
	}
	return !HasDiffElements(a, b, func(x, y value.Price) bool { return !x.Equal(y) })
}

// nonNilStrings 让空切片编码成空数组而不是 null。
func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
