package pbdict

import (
	"fmt"
	"reflect"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"DAOKit/modules/dao"
)

// 字典 <-> google.protobuf.Struct 的转换。
//
// Struct 只能容纳 null/bool/number/string/list/struct，转换前先 Sanitize：
// 时间 -> RFC3339Nano 字符串，任意 map/slice -> map[string]any/[]any，其余标量按 fmt 输出。
// 反方向数字一律是 float64，依赖字典翻译的宽松转换还原成 int。

func ToStruct(d dao.Dictionary) (*structpb.Struct, error) {
	m, _ := Sanitize(d).(map[string]any)
	if m == nil {
		m = map[string]any{}
	}
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, dao.NewError(dao.CodeTypeMismatch, map[string]any{"op": "pbdict.ToStruct"}, err)
	}
	return s, nil
}

func FromStruct(s *structpb.Struct) dao.Dictionary {
	if s == nil {
		return dao.Dictionary{}
	}
	return s.AsMap()
}

// MarshalJSON 输出 protojson 文本。
func MarshalJSON(d dao.Dictionary, indent bool) ([]byte, error) {
	s, err := ToStruct(d)
	if err != nil {
		return nil, err
	}
	opts := protojson.MarshalOptions{}
	if indent {
		opts.Multiline = true
		opts.Indent = "  "
	}
	return opts.Marshal(s)
}

func UnmarshalJSON(data []byte) (dao.Dictionary, error) {
	var s structpb.Struct
	if err := protojson.Unmarshal(data, &s); err != nil {
		return nil, dao.NewError(dao.CodeTypeMismatch, map[string]any{"op": "pbdict.UnmarshalJSON"}, err)
	}
	return FromStruct(&s), nil
}

// Sanitize 把字典值转换成 structpb 能接受的形态。
func Sanitize(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case bool, string, float64, float32, int, int32, int64, uint, uint32, uint64:
		return x
	case time.Time:
		return x.UTC().Format(time.RFC3339Nano)
	case *time.Time:
		if x == nil {
			return nil
		}
		return x.UTC().Format(time.RFC3339Nano)
	}

	rv := reflect.ValueOf(v)
	if st, ok := v.(fmt.Stringer); ok && rv.Kind() != reflect.Map && rv.Kind() != reflect.Slice {
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nil
		}
		return st.String()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return nil
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = Sanitize(iter.Value().Interface())
		}
		return out
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return []any{}
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = Sanitize(rv.Index(i).Interface())
		}
		return out
	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		return Sanitize(rv.Elem().Interface())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint()
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	}
	return fmt.Sprint(v)
}
