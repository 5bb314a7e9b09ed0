package dao

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"DAOKit/modules/value"
)

// Encoder 是结构化编码使用的键控容器，底层是有序的 bson.D。
type Encoder struct {
	doc bson.D
	reg *Registry
}

// NewEncoder reg 为 nil 时使用默认注册表（编码不需要构造实体）。
func NewEncoder(reg *Registry) *Encoder {
	return &Encoder{reg: Resolve(reg)}
}

func (e *Encoder) Registry() *Registry {
	return e.reg
}

func (e *Encoder) sub() *Encoder {
	return &Encoder{reg: e.reg}
}

// Put 写入一个字段；同名字段覆盖。值类型按字典形态写入。
func (e *Encoder) Put(key string, v any) {
	v = encodeValue(v)
	for i := range e.doc {
		if e.doc[i].Key == key {
			e.doc[i].Value = v
			return
		}
	}
	e.doc = append(e.doc, bson.E{Key: key, Value: v})
}

func (e *Encoder) Document() bson.D {
	if e.doc == nil {
		return bson.D{}
	}
	return e.doc
}

func (e *Encoder) Bytes() ([]byte, error) {
	b, err := bson.Marshal(e.Document())
	if err != nil {
		return nil, NewError(CodeUnknown, map[string]any{"op": "encode"}, err)
	}
	return b, nil
}

// PutObject 编码一个可选子对象；nil 写入 null。
func PutObject[T Object](e *Encoder, key string, o T) error {
	if isNil(o) {
		e.Put(key, nil)
		return nil
	}
	sub := e.sub()
	if err := o.EncodeFields(sub); err != nil {
		return err
	}
	e.Put(key, sub.Document())
	return nil
}

func PutObjects[T Object](e *Encoder, key string, list []T) error {
	arr := make(bson.A, 0, len(list))
	for _, o := range list {
		if isNil(o) {
			continue
		}
		sub := e.sub()
		if err := o.EncodeFields(sub); err != nil {
			return err
		}
		arr = append(arr, sub.Document())
	}
	e.Put(key, arr)
	return nil
}

func encodeValue(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case value.Text:
		return x.ToDictionary()
	case value.URL:
		return x.ToDictionary()
	case value.DayHours:
		return x.ToDictionary()
	case value.TimeOfDay:
		return x.String()
	case value.Color:
		return x.String()
	case value.Price:
		return x.ToDictionary()
	case []value.Price:
		arr := make(bson.A, 0, len(x))
		for _, p := range x {
			arr = append(arr, p.ToDictionary())
		}
		return arr
	case value.AnalyticsNumbers:
		return x.ToDictionary()
	case []value.AnalyticsNumbers:
		arr := make(bson.A, 0, len(x))
		for _, n := range x {
			arr = append(arr, n.ToDictionary())
		}
		return arr
	case map[string]value.AnalyticsNumbers:
		out := make(map[string]any, len(x))
		for k, n := range x {
			out[k] = n.ToDictionary()
		}
		return out
	case map[string]value.Text:
		out := make(map[string]any, len(x))
		for k, t := range x {
			out[k] = t.ToDictionary()
		}
		return out
	case *value.Geopoint:
		if x == nil {
			return nil
		}
		return x.ToDictionary()
	case *time.Time:
		if x == nil {
			return nil
		}
		return x.UTC()
	case *time.Location:
		return timeZoneName(x)
	case Dictionary:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = encodeValue(e)
		}
		return out
	case []any:
		arr := make(bson.A, 0, len(x))
		for _, e := range x {
			arr = append(arr, encodeValue(e))
		}
		return arr
	}
	return v
}

// Decoder 是结构化解码使用的键控容器，底层是 bson.Raw。
//
// 与字典翻译不同，这条路径是严格的：键存在但类型不符时返回 ErrTypeMismatch（带键路径）。
// 键不存在或为 null 时保留目标的当前值。
type Decoder struct {
	raw    bson.Raw
	reg    *Registry
	prefix string
}

// NewDecoder 结构化解码必须显式提供注册表，不回落到默认注册表。
func NewDecoder(raw bson.Raw, reg *Registry) (*Decoder, error) {
	if reg == nil {
		return nil, ErrMissingRegistry
	}
	return &Decoder{raw: raw, reg: reg}, nil
}

func (d *Decoder) Registry() *Registry {
	return d.reg
}

func (d *Decoder) path(key string) string {
	return d.prefix + key
}

func (d *Decoder) lookup(key string) (bson.RawValue, bool) {
	rv, err := d.raw.LookupErr(key)
	if err != nil || rv.Type == bson.TypeNull || rv.Type == bson.TypeUndefined {
		return bson.RawValue{}, false
	}
	return rv, true
}

func (d *Decoder) mismatch(key, want string, rv bson.RawValue) error {
	return typeMismatch(d.path(key), want, rv.Type.String())
}

func (d *Decoder) Has(key string) bool {
	_, ok := d.lookup(key)
	return ok
}

func (d *Decoder) String(key string, dst *string) error {
	rv, ok := d.lookup(key)
	if !ok {
		return nil
	}
	s, ok := rv.StringValueOK()
	if !ok {
		return d.mismatch(key, "string", rv)
	}
	*dst = s
	return nil
}

func (d *Decoder) Int(key string, dst *int) error {
	rv, ok := d.lookup(key)
	if !ok {
		return nil
	}
	n, ok := rv.AsInt64OK()
	if !ok {
		return d.mismatch(key, "int", rv)
	}
	*dst = int(n)
	return nil
}

func (d *Decoder) Float(key string, dst *float64) error {
	rv, ok := d.lookup(key)
	if !ok {
		return nil
	}
	f, ok := rv.AsFloat64OK()
	if !ok {
		return d.mismatch(key, "double", rv)
	}
	*dst = f
	return nil
}

func (d *Decoder) Bool(key string, dst *bool) error {
	rv, ok := d.lookup(key)
	if !ok {
		return nil
	}
	b, ok := rv.BooleanOK()
	if !ok {
		return d.mismatch(key, "bool", rv)
	}
	*dst = b
	return nil
}

func (d *Decoder) Time(key string, dst *time.Time) error {
	rv, ok := d.lookup(key)
	if !ok {
		return nil
	}
	t, ok := rv.TimeOK()
	if !ok {
		return d.mismatch(key, "datetime", rv)
	}
	*dst = t.UTC()
	return nil
}

// OptionalTime 显式的 null 会把目标置为 nil。
func (d *Decoder) OptionalTime(key string, dst **time.Time) error {
	rv, err := d.raw.LookupErr(key)
	if err != nil {
		return nil
	}
	if rv.Type == bson.TypeNull {
		*dst = nil
		return nil
	}
	t, ok := rv.TimeOK()
	if !ok {
		return d.mismatch(key, "datetime", rv)
	}
	t = t.UTC()
	*dst = &t
	return nil
}

func (d *Decoder) Strings(key string, dst *[]string) error {
	values, ok, err := d.array(key)
	if !ok || err != nil {
		return err
	}
	out := make([]string, 0, len(values))
	for i, rv := range values {
		s, ok := rv.StringValueOK()
		if !ok {
			return d.mismatch(fmt.Sprintf("%s.%d", key, i), "string", rv)
		}
		out = append(out, s)
	}
	*dst = out
	return nil
}

func (d *Decoder) Floats(key string, dst *[]float64) error {
	values, ok, err := d.array(key)
	if !ok || err != nil {
		return err
	}
	out := make([]float64, 0, len(values))
	for i, rv := range values {
		f, ok := rv.AsFloat64OK()
		if !ok {
			return d.mismatch(fmt.Sprintf("%s.%d", key, i), "double", rv)
		}
		out = append(out, f)
	}
	*dst = out
	return nil
}

func (d *Decoder) array(key string) ([]bson.RawValue, bool, error) {
	rv, ok := d.lookup(key)
	if !ok {
		return nil, false, nil
	}
	arr, ok := rv.ArrayOK()
	if !ok {
		return nil, false, d.mismatch(key, "array", rv)
	}
	values, err := arr.Values()
	if err != nil {
		return nil, false, NewError(CodeTypeMismatch, map[string]any{"key": d.path(key)}, err)
	}
	return values, true, nil
}

// Value 以普通 Go 类型返回字段值（文档 -> Dictionary，数组 -> []any）。
func (d *Decoder) Value(key string) (any, bool, error) {
	rv, ok := d.lookup(key)
	if !ok {
		return nil, false, nil
	}
	var out any
	if err := rv.Unmarshal(&out); err != nil {
		return nil, false, NewError(CodeTypeMismatch, map[string]any{"key": d.path(key)}, err)
	}
	return normalize(out), true, nil
}

func (d *Decoder) Dictionary(key string, dst *Dictionary) error {
	rv, ok := d.lookup(key)
	if !ok {
		return nil
	}
	if rv.Type != bson.TypeEmbeddedDocument {
		return d.mismatch(key, "document", rv)
	}
	return decodeWith(d, key, "document", dst, func(v any) (Dictionary, bool) {
		m, ok := v.(Dictionary)
		return m, ok
	})
}

func (d *Decoder) Text(key string, dst *value.Text) error {
	return decodeWith(d, key, "text", dst, value.TextFromAny)
}

func (d *Decoder) URL(key string, dst *value.URL) error {
	return decodeWith(d, key, "url", dst, value.URLFromAny)
}

func (d *Decoder) DayHours(key string, dst *value.DayHours) error {
	return decodeWith(d, key, "dayHours", dst, value.DayHoursFromAny)
}

func (d *Decoder) TimeOfDay(key string, dst *value.TimeOfDay) error {
	return decodeWith(d, key, "timeOfDay", dst, value.TimeOfDayFromAny)
}

func (d *Decoder) Color(key string, dst *value.Color) error {
	return decodeWith(d, key, "color", dst, value.ColorFromAny)
}

func (d *Decoder) Geopoint(key string, dst **value.Geopoint) error {
	return decodeWith(d, key, "geopoint", dst, func(v any) (*value.Geopoint, bool) {
		g, ok := value.GeopointFromAny(v)
		if !ok {
			return nil, false
		}
		return &g, true
	})
}

func (d *Decoder) Prices(key string, dst *[]value.Price) error {
	values, ok, err := d.Value(key)
	if !ok || err != nil {
		return err
	}
	items, isArray := values.([]any)
	if !isArray {
		return typeMismatch(d.path(key), "array", fmt.Sprintf("%T", values))
	}
	out := make([]value.Price, 0, len(items))
	for i, item := range items {
		p, ok := value.PriceFromAny(item)
		if !ok {
			return typeMismatch(fmt.Sprintf("%s.%d", d.path(key), i), "price", fmt.Sprintf("%T", item))
		}
		out = append(out, p)
	}
	*dst = out
	return nil
}

func (d *Decoder) Numbers(key string, dst *value.AnalyticsNumbers) error {
	return decodeWith(d, key, "numbers", dst, value.AnalyticsNumbersFromAny)
}

func (d *Decoder) NumbersList(key string, dst *[]value.AnalyticsNumbers) error {
	return decodeWith(d, key, "numbers[]", dst, numbersList)
}

func (d *Decoder) NumbersMap(key string, dst *map[string]value.AnalyticsNumbers) error {
	return decodeWith(d, key, "numbers{}", dst, numbersMap)
}

func (d *Decoder) TextMap(key string, dst *map[string]value.Text) error {
	return decodeWith(d, key, "text{}", dst, textMap)
}

func (d *Decoder) TimeZone(key string, dst **time.Location) error {
	return decodeWith(d, key, "timeZone", dst, timeZone)
}

// Object 返回嵌套文档的子容器。
func (d *Decoder) Object(key string) (*Decoder, bool, error) {
	rv, ok := d.lookup(key)
	if !ok {
		return nil, false, nil
	}
	doc, ok := rv.DocumentOK()
	if !ok {
		return nil, false, d.mismatch(key, "document", rv)
	}
	return &Decoder{raw: doc, reg: d.reg, prefix: d.path(key) + "."}, true, nil
}

// Objects 返回嵌套文档数组的子容器列表。
func (d *Decoder) Objects(key string) ([]*Decoder, bool, error) {
	values, ok, err := d.array(key)
	if !ok || err != nil {
		return nil, ok, err
	}
	out := make([]*Decoder, 0, len(values))
	for i, rv := range values {
		doc, ok := rv.DocumentOK()
		if !ok {
			return nil, false, d.mismatch(fmt.Sprintf("%s.%d", key, i), "document", rv)
		}
		out = append(out, &Decoder{raw: doc, reg: d.reg, prefix: fmt.Sprintf("%s.%d.", d.path(key), i)})
	}
	return out, true, nil
}

func decodeWith[T any](d *Decoder, key, want string, dst *T, conv func(any) (T, bool)) error {
	v, ok, err := d.Value(key)
	if !ok || err != nil {
		return err
	}
	out, ok := conv(v)
	if !ok {
		return typeMismatch(d.path(key), want, fmt.Sprintf("%T", v))
	}
	*dst = out
	return nil
}

// Marshal 把实体编码成 BSON 文档。
func Marshal(obj Object, reg *Registry) ([]byte, error) {
	enc, err := encode(obj, reg)
	if err != nil {
		return nil, err
	}
	return enc.Bytes()
}

// Unmarshal 从 BSON 文档解码一个独立实体；只能嵌套出现的实体返回 ErrDecodeUnsupported。
func Unmarshal[T any](data []byte, f *Factory[T], reg *Registry) (T, error) {
	var zero T
	raw := bson.Raw(data)
	if err := raw.Validate(); err != nil {
		return zero, NewError(CodeTypeMismatch, map[string]any{"key": ""}, err)
	}
	dec, err := NewDecoder(raw, reg)
	if err != nil {
		return zero, err
	}
	return f.DecodeRoot(dec)
}

// MarshalJSON 输出 relaxed extended JSON。
func MarshalJSON(obj Object, reg *Registry) ([]byte, error) {
	enc, err := encode(obj, reg)
	if err != nil {
		return nil, err
	}
	b, err := bson.MarshalExtJSON(enc.Document(), false, false)
	if err != nil {
		return nil, NewError(CodeUnknown, map[string]any{"op": "encode_json"}, err)
	}
	return b, nil
}

func UnmarshalJSON[T any](data []byte, f *Factory[T], reg *Registry) (T, error) {
	var zero T
	var doc bson.D
	if err := bson.UnmarshalExtJSON(data, false, &doc); err != nil {
		return zero, NewError(CodeTypeMismatch, map[string]any{"key": ""}, err)
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		return zero, NewError(CodeUnknown, map[string]any{"op": "decode_json"}, err)
	}
	return Unmarshal(raw, f, reg)
}

func encode(obj Object, reg *Registry) (*Encoder, error) {
	if isNil(obj) {
		return nil, ErrUnexpectedNil.WithData("op", "encode")
	}
	enc := NewEncoder(reg)
	if err := obj.EncodeFields(enc); err != nil {
		return nil, err
	}
	return enc, nil
}
