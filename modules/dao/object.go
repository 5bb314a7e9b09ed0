package dao

import "reflect"

// Object 是所有实体共同遵守的协议。
//
// 约束：
// - 具体实体嵌入 BaseObject，并在自身方法里先调用 base 一半（TranslateBase/BaseDictionary/...）
// - 自定义实体嵌入一个具体实体并覆盖方法，显式链式调用被嵌入者
// - Translate 永不报错：缺失或无法转换的字段保留当前值
type Object interface {
	Base() *BaseObject
	Translate(data Dictionary, reg *Registry)
	AsDictionary() Dictionary
	EncodeFields(enc *Encoder) error
	DecodeFields(dec *Decoder) error
	Update(from Object)
	Clone() Object
	IsDiffFrom(rhs Object) bool
}

// Equal 对应 ==：两边都为 nil 视为相等。
func Equal(a, b Object) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	return !a.IsDiffFrom(b)
}

func isNil(o any) bool {
	if o == nil {
		return true
	}
	v := reflect.ValueOf(o)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return v.IsNil()
	}
	return false
}

// DiffObject 比较两个可选子对象。
func DiffObject[T Object](lhs, rhs T) bool {
	ln, rn := isNil(lhs), isNil(rhs)
	if ln || rn {
		return ln != rn
	}
	return lhs.IsDiffFrom(rhs)
}

// DiffObjects 按位置比较两个有序集合。
func DiffObjects[T Object](lhs, rhs []T) bool {
	if len(lhs) != len(rhs) {
		return true
	}
	for i := range lhs {
		if DiffObject(lhs[i], rhs[i]) {
			return true
		}
	}
	return false
}

// DiffObjectSet 把两个集合当作集合比较：数量不同即不同；
// 否则 lhs 中任一元素在 rhs 中找不到“不不同”的对应元素即不同。
// 不按重数匹配：[a,a,b] 与 [a,b,b] 视为相同。
func DiffObjectSet[T Object](lhs, rhs []T) bool {
	if len(lhs) != len(rhs) {
		return true
	}
	return HasDiffElements(lhs, rhs, DiffObject[T])
}

// HasDiffElements 报告 lhs 中是否存在一个元素，使 rhs 中所有元素都与它不同。
func HasDiffElements[T any](lhs, rhs []T, diff func(a, b T) bool) bool {
	for _, l := range lhs {
		matched := false
		for _, r := range rhs {
			if !diff(l, r) {
				matched = true
				break
			}
		}
		if !matched {
			return true
		}
	}
	return false
}

// CloneObject 深拷贝一个可选子对象，保留具体类型。
//
// 注册表绑定的自定义类型如果没有覆盖 Clone，提升来的 Clone 会返回被嵌入的实体；
// 这时按原类型分配新值，先整体赋值再 Update，自定义字段随赋值带过来（引用类型字段是浅拷贝）。
func CloneObject[T Object](o T) T {
	var zero T
	if isNil(o) {
		return zero
	}
	cloned := o.Clone()
	if reflect.TypeOf(cloned) != reflect.TypeOf(o) {
		cloned = cloneAs(o)
	}
	c, ok := cloned.(T)
	if !ok {
		return zero
	}
	return c
}

func cloneAs(o Object) Object {
	src := reflect.ValueOf(o)
	if src.Kind() != reflect.Pointer {
		return o.Clone()
	}
	dst := reflect.New(src.Type().Elem())
	dst.Elem().Set(src.Elem())
	out, ok := dst.Interface().(Object)
	if !ok {
		return o.Clone()
	}
	out.Update(o)
	return out
}

func CloneObjects[T Object](list []T) []T {
	if list == nil {
		return nil
	}
	out := make([]T, 0, len(list))
	for _, o := range list {
		if c := CloneObject(o); !isNil(c) {
			out = append(out, c)
		}
	}
	return out
}

// ObjectDictionary 输出可选子对象的字典；nil 输出 nil。
func ObjectDictionary[T Object](o T) any {
	if isNil(o) {
		return nil
	}
	return o.AsDictionary()
}

func ObjectsDictionary[T Object](list []T) []Dictionary {
	out := make([]Dictionary, 0, len(list))
	for _, o := range list {
		if !isNil(o) {
			out = append(out, o.AsDictionary())
		}
	}
	return out
}

// ObjectID 只输出子对象的 id，用于反向引用。
func ObjectID[T Object](o T) any {
	if isNil(o) {
		return nil
	}
	return o.Base().ID
}

// SameRef 反向引用只比较 id。
func SameRef[T Object](a, b T) bool {
	an, bn := isNil(a), isNil(b)
	if an || bn {
		return an == bn
	}
	return a.Base().ID == b.Base().ID
}
