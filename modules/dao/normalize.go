package dao

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// normalize 把 bson 解码得到的值统一成字典层使用的普通 Go 类型：
// bson.D/bson.M -> Dictionary，bson.A -> []any，bson.DateTime -> time.Time(UTC)。
func normalize(v any) any {
	switch x := v.(type) {
	case bson.D:
		out := make(Dictionary, len(x))
		for _, e := range x {
			out[e.Key] = normalize(e.Value)
		}
		return out
	case bson.M:
		out := make(Dictionary, len(x))
		for k, e := range x {
			out[k] = normalize(e)
		}
		return out
	case map[string]any:
		out := make(Dictionary, len(x))
		for k, e := range x {
			out[k] = normalize(e)
		}
		return out
	case bson.A:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = normalize(e)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = normalize(e)
		}
		return out
	case bson.DateTime:
		return x.Time().UTC()
	case *time.Time:
		if x == nil {
			return nil
		}
		return *x
	case int32:
		return int(x)
	case int64:
		return int(x)
	}
	return v
}

// deepCopy 复制字典中的嵌套 map/slice，标量原样共享。
func deepCopy(v any) any {
	switch x := v.(type) {
	case Dictionary:
		if x == nil {
			return Dictionary(nil)
		}
		out := make(Dictionary, len(x))
		for k, e := range x {
			out[k] = deepCopy(e)
		}
		return out
	case []any:
		if x == nil {
			return []any(nil)
		}
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = deepCopy(e)
		}
		return out
	case []string:
		return append([]string(nil), x...)
	case []float64:
		return append([]float64(nil), x...)
	case map[string]string:
		out := make(map[string]string, len(x))
		for k, e := range x {
			out[k] = e
		}
		return out
	}
	return v
}

// CopyDictionary 深拷贝一个字典。
func CopyDictionary(d Dictionary) Dictionary {
	if d == nil {
		return nil
	}
	return deepCopy(d).(Dictionary)
}
