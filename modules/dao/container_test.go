package dao

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.mongodb.org/mongo-driver/v2/bson"

	"DAOKit/modules/value"
)

func ms(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

func TestContainer_全部角色结构化往返稳定(t *testing.T) {
	reg := NewRegistry()
	for _, role := range reg.Roles() {
		f, _ := reg.Lookup(role)
		orig := f.New()
		data, err := Marshal(orig, reg)
		if err != nil {
			t.Fatalf("角色 %s Marshal 失败: %v", role, err)
		}
		first, err := f.Unmarshal(data, reg)
		if _, nested := orig.(NestedOnly); nested {
			if !errors.Is(err, ErrDecodeUnsupported) {
				t.Fatalf("角色 %s 期望 ErrDecodeUnsupported, got=%v", role, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("角色 %s Unmarshal 失败: %v", role, err)
		}
		again, err := Marshal(first, reg)
		if err != nil {
			t.Fatalf("角色 %s 二次 Marshal 失败: %v", role, err)
		}
		second, err := f.Unmarshal(again, reg)
		if err != nil {
			t.Fatalf("角色 %s 二次 Unmarshal 失败: %v", role, err)
		}
		if !Equal(first, second) {
			t.Fatalf("角色 %s 结构化往返不稳定", role)
		}
	}
}

func TestContainer_Place结构化往返(t *testing.T) {
	reg := NewRegistry()
	now := ms(time.Now())

	p := NewPlaceWithCode("p1", value.NewText("Pier"))
	p.Address = "1 Main St"
	p.Geohashes = []string{"9q8y", "9q8yy"}
	p.Geopoint = &value.Geopoint{Latitude: 37.8, Longitude: -122.4}
	open, closeAt := value.NewTimeOfDay(9, 0), value.NewTimeOfDay(17, 30)
	p.Hours.AsPlaceHours().Monday = value.NewDayHours(open, closeAt)
	st := NewPlaceStatusWithID("")
	st.StartTime = now.Add(-time.Hour)
	st.EndTime = now.Add(time.Hour)
	st.Status = StatusClosed
	st.Scope = ScopeDistrict
	p.SetStatuses([]PlaceStatusEntity{st})

	data, err := Marshal(p, reg)
	if err != nil {
		t.Fatalf("Marshal 失败: %v", err)
	}
	back, err := Unmarshal(data, reg.Place, reg)
	if err != nil {
		t.Fatalf("Unmarshal 失败: %v", err)
	}
	if !Equal(p, back) {
		t.Fatalf("期望结构化往返相等\nwant=%v\ngot=%v", p.AsDictionary(), back.AsDictionary())
	}
	if diff := cmp.Diff(p.Geohashes, back.AsPlace().Geohashes); diff != "" {
		t.Fatalf("geohashes 不一致 (-want +got):\n%s", diff)
	}
}

func TestContainer_扩展JSON往返(t *testing.T) {
	reg := NewRegistry()
	a := NewAccountWithID("a1")
	a.Name = value.NewText("Ann")
	dob := ms(time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC))
	a.Dob = &dob

	data, err := MarshalJSON(a, reg)
	if err != nil {
		t.Fatalf("MarshalJSON 失败: %v", err)
	}
	back, err := UnmarshalJSON(data, reg.Account, reg)
	if err != nil {
		t.Fatalf("UnmarshalJSON 失败: %v", err)
	}
	if !Equal(a, back) {
		t.Fatalf("期望 JSON 往返相等, json=%s", data)
	}
}

func TestDecoder_缺少注册表报错(t *testing.T) {
	raw, _ := bson.Marshal(bson.D{{Key: "id", Value: "x"}})
	if _, err := NewDecoder(raw, nil); !errors.Is(err, ErrMissingRegistry) {
		t.Fatalf("期望 ErrMissingRegistry, got=%v", err)
	}
	if _, err := Unmarshal(raw, Default().Account, nil); !errors.Is(err, ErrMissingRegistry) {
		t.Fatalf("期望 Unmarshal 也返回 ErrMissingRegistry, got=%v", err)
	}
}

func TestDecoder_类型不匹配带键路径(t *testing.T) {
	reg := NewRegistry()
	raw, _ := bson.Marshal(bson.D{
		{Key: "id", Value: "p1"},
		{Key: "address", Value: 42},
	})
	_, err := Unmarshal(raw, reg.Place, reg)
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("期望 ErrTypeMismatch, got=%v", err)
	}
	var e *Error
	if !errors.As(err, &e) || e.Data()["key"] != "address" {
		t.Fatalf("期望错误携带键 address, got=%v", err)
	}
	if NumericCode(err) != 1002 {
		t.Fatalf("期望数字码 1002, got=%d", NumericCode(err))
	}
}

func TestDecoder_嵌套类型不匹配带完整路径(t *testing.T) {
	reg := NewRegistry()
	raw, _ := bson.Marshal(bson.D{
		{Key: "id", Value: "b1"},
		{Key: "account", Value: bson.D{{Key: "id", Value: 7}}},
	})
	_, err := Unmarshal(raw, reg.Basket, reg)
	var e *Error
	if !errors.As(err, &e) || e.Data()["key"] != "account.id" {
		t.Fatalf("期望错误键为 account.id, got=%v", err)
	}
}

func TestDecoder_缺失与null保留当前值(t *testing.T) {
	reg := NewRegistry()
	raw, _ := bson.Marshal(bson.D{
		{Key: "id", Value: "p1"},
		{Key: "address", Value: nil},
	})
	dec, err := NewDecoder(raw, reg)
	if err != nil {
		t.Fatalf("NewDecoder 失败: %v", err)
	}
	p := NewPlace()
	p.Address = "keep"
	p.Phone = "555"
	if err := p.DecodeFields(dec); err != nil {
		t.Fatalf("DecodeFields 失败: %v", err)
	}
	if p.ID != "p1" || p.Address != "keep" || p.Phone != "555" {
		t.Fatalf("期望缺失和 null 字段保留, got id=%s address=%s phone=%s", p.ID, p.Address, p.Phone)
	}
	if p.Hours == nil {
		t.Fatalf("期望 Hours 始终存在")
	}
}

func TestDecodeRoot_只能嵌套的实体不能独立解码(t *testing.T) {
	reg := NewRegistry()
	item := NewBasketItemWithID("i1")
	data, err := Marshal(item, reg)
	if err != nil {
		t.Fatalf("Marshal 失败: %v", err)
	}
	if _, err := Unmarshal(data, reg.BasketItem, reg); !errors.Is(err, ErrDecodeUnsupported) {
		t.Fatalf("期望 ErrDecodeUnsupported, got=%v", err)
	}

	// 作为父对象字段时可以解码，并回指父对象
	b := NewBasketWithID("b1")
	item.Quantity = 2
	item.Price = 3.5
	b.AddItem(item)
	data, err = Marshal(b, reg)
	if err != nil {
		t.Fatalf("Marshal 失败: %v", err)
	}
	back, err := Unmarshal(data, reg.Basket, reg)
	if err != nil {
		t.Fatalf("Unmarshal 失败: %v", err)
	}
	items := back.AsBasket().Items
	if len(items) != 1 || items[0].AsBasketItem().Basket != BasketEntity(back) {
		t.Fatalf("期望条目回指解码出的篮子")
	}
	if back.AsBasket().Subtotal() != 7 {
		t.Fatalf("期望小计 7, got=%v", back.AsBasket().Subtotal())
	}
}

func TestEncoder_同名字段覆盖(t *testing.T) {
	enc := NewEncoder(nil)
	enc.Put("a", 1)
	enc.Put("b", "x")
	enc.Put("a", 2)
	want := bson.D{{Key: "a", Value: 2}, {Key: "b", Value: "x"}}
	if diff := cmp.Diff(want, enc.Document()); diff != "" {
		t.Fatalf("文档不一致 (-want +got):\n%s", diff)
	}
}

func TestContainer_亚毫秒时间两条路径一致(t *testing.T) {
	reg := NewRegistry()
	start := time.Date(2024, 7, 1, 10, 0, 0, 123456789, time.UTC)

	p := NewPlaceWithCode("p1", value.NewText("Pier"))
	st := NewPlaceStatusWithID("s1")
	st.StartTime = start
	st.EndTime = start.Add(time.Hour)
	st.Status = StatusClosed
	p.SetStatuses([]PlaceStatusEntity{st})

	data, err := Marshal(p, reg)
	if err != nil {
		t.Fatalf("Marshal 失败: %v", err)
	}
	viaBSON, err := Unmarshal(data, reg.Place, reg)
	if err != nil {
		t.Fatalf("Unmarshal 失败: %v", err)
	}
	viaDict, ok := reg.Place.FromDictionary(p.AsDictionary(), reg)
	if !ok {
		t.Fatalf("期望字典翻译成功")
	}

	want := time.Date(2024, 7, 1, 10, 0, 0, 123000000, time.UTC)
	for name, got := range map[string]PlaceEntity{"bson": viaBSON, "dictionary": viaDict} {
		statuses := got.AsPlace().Statuses
		if len(statuses) != 1 {
			t.Fatalf("%s: 期望一个状态, got=%d", name, len(statuses))
		}
		if s := statuses[0].AsPlaceStatus(); !s.StartTime.Equal(want) {
			t.Fatalf("%s: startTime 期望截到毫秒 %v, got=%v", name, want, s.StartTime)
		}
		if !Equal(p, got) {
			t.Fatalf("%s: 期望与原对象相等", name)
		}
	}
	if !Equal(viaBSON, viaDict) {
		t.Fatalf("期望两条路径读出的对象相等")
	}

	// 毫秒以上的差异仍然算变化
	moved := p.Copy()
	moved.Statuses[0].AsPlaceStatus().StartTime = start.Add(time.Millisecond)
	if Equal(p, moved) {
		t.Fatalf("期望相差一毫秒时不相等")
	}
}
