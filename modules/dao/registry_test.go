package dao

import (
	"errors"
	"testing"
)

// vipAccount 是测试里替换 account 角色的自定义类型。
type vipAccount struct {
	Account
	Level int
}

func newVIPAccount() *vipAccount {
	return &vipAccount{Account: *NewAccount(), Level: 3}
}

func TestRegistry_每个角色都能按名字查到(t *testing.T) {
	reg := NewRegistry()
	roles := reg.Roles()
	if len(roles) == 0 {
		t.Fatalf("期望注册表非空")
	}
	for _, role := range roles {
		f, ok := reg.Lookup(role)
		if !ok || f.Role() != role {
			t.Fatalf("角色 %s 查找失败", role)
		}
		if f.New() == nil {
			t.Fatalf("角色 %s 构造出 nil", role)
		}
	}
	if _, ok := reg.Lookup("nope"); ok {
		t.Fatalf("期望未知角色查找失败")
	}
}

func TestFactory_空字典返回false(t *testing.T) {
	reg := NewRegistry()
	for _, role := range reg.Roles() {
		f, _ := reg.Lookup(role)
		if obj, ok := f.NewFromDictionary(Dictionary{}, reg); ok || obj != nil {
			t.Fatalf("角色 %s 期望空字典返回 (nil,false), got=%v", role, obj)
		}
		if obj, ok := f.NewFromDictionary(nil, reg); ok || obj != nil {
			t.Fatalf("角色 %s 期望 nil 字典返回 (nil,false)", role)
		}
	}
}

func TestFactory_字典往返保持相等(t *testing.T) {
	reg := NewRegistry()
	for _, role := range reg.Roles() {
		f, _ := reg.Lookup(role)
		orig := f.New()
		back, ok := f.NewFromDictionary(orig.AsDictionary(), reg)
		if !ok {
			t.Fatalf("角色 %s 字典往返失败", role)
		}
		if !Equal(orig, back) {
			t.Fatalf("角色 %s 字典往返后不相等\norig=%v\nback=%v", role, orig.AsDictionary(), back.AsDictionary())
		}
	}
}

func TestFactory_绑定自定义类型后父对象翻译出子类型(t *testing.T) {
	reg := NewRegistry()
	reg.Account.Bind(func() AccountEntity { return newVIPAccount() })

	basket, ok := reg.Basket.FromDictionary(Dictionary{
		"id":      "b1",
		"account": Dictionary{"id": "a1", "name": "Ann"},
	}, reg)
	if !ok {
		t.Fatalf("期望 basket 翻译成功")
	}
	acct, isVIP := basket.AsBasket().Account.(*vipAccount)
	if !isVIP {
		t.Fatalf("期望 account 是 *vipAccount, got=%T", basket.AsBasket().Account)
	}
	if acct.ID != "a1" || acct.Name.String() != "Ann" || acct.Level != 3 {
		t.Fatalf("自定义类型字段不对: %+v", acct)
	}

	// 默认注册表不受影响
	other, _ := NewRegistry().Basket.FromDictionary(Dictionary{"account": Dictionary{"id": "a1"}}, nil)
	if _, isVIP := other.AsBasket().Account.(*vipAccount); isVIP {
		t.Fatalf("期望其它注册表仍使用内置 Account")
	}
}

func TestFactory_绑定后结构化解码也出子类型(t *testing.T) {
	reg := NewRegistry()
	reg.Account.Bind(func() AccountEntity { return newVIPAccount() })

	b := NewBasketWithID("b1")
	b.Account = NewAccountWithID("a1")
	data, err := Marshal(b, reg)
	if err != nil {
		t.Fatalf("Marshal 失败: %v", err)
	}
	back, err := Unmarshal(data, reg.Basket, reg)
	if err != nil {
		t.Fatalf("Unmarshal 失败: %v", err)
	}
	if _, isVIP := back.AsBasket().Account.(*vipAccount); !isVIP {
		t.Fatalf("期望 account 是 *vipAccount, got=%T", back.AsBasket().Account)
	}
}

func TestFactory_BindAny类型不符被拒绝(t *testing.T) {
	reg := NewRegistry()
	f, _ := reg.Lookup("account")
	err := f.BindAny(func() Object { return NewPlace() })
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("期望 ErrTypeMismatch, got=%v", err)
	}
	if err := f.BindAny(nil); !errors.Is(err, ErrUnexpectedNil) {
		t.Fatalf("期望 ErrUnexpectedNil, got=%v", err)
	}
	if err := f.BindAny(func() Object { return newVIPAccount() }); err != nil {
		t.Fatalf("期望绑定成功, got=%v", err)
	}
	if _, ok := reg.Account.Create().(*vipAccount); !ok {
		t.Fatalf("期望 BindAny 生效")
	}
}

func TestRegistry_Clone互不影响(t *testing.T) {
	base := NewRegistry()
	base.Account.Bind(func() AccountEntity { return newVIPAccount() })

	c := base.Clone()
	if _, ok := c.Account.Create().(*vipAccount); !ok {
		t.Fatalf("期望副本继承绑定")
	}
	c.Account.Bind(func() AccountEntity { return NewAccount() })
	if _, ok := base.Account.Create().(*vipAccount); !ok {
		t.Fatalf("期望修改副本不影响原注册表")
	}
}

func TestRegistry_SetDefault原子替换(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	reg := NewRegistry()
	SetDefault(reg)
	if Default() != reg || Resolve(nil) != reg {
		t.Fatalf("期望默认注册表被替换")
	}
	SetDefault(nil)
	if Default() != reg {
		t.Fatalf("期望 SetDefault(nil) 被忽略")
	}
	custom := NewRegistry()
	if Resolve(custom) != custom {
		t.Fatalf("期望显式注册表优先")
	}
}

func TestFactory_Copy返回新实例(t *testing.T) {
	reg := NewRegistry()
	p := NewPlaceWithCode("p1", nil)
	p.Address = "1 Main St"
	c := reg.Place.Copy(p)
	if c == PlaceEntity(p) || !Equal(c, p) {
		t.Fatalf("期望得到相等的新实例")
	}
	c.AsPlace().Address = "2 Main St"
	if p.Address != "1 Main St" {
		t.Fatalf("期望副本修改不影响原对象")
	}
}

func TestCopy_保留注册表绑定的类型(t *testing.T) {
	reg := NewRegistry()
	reg.Account.Bind(func() AccountEntity { return newVIPAccount() })

	basket, ok := reg.Basket.FromDictionary(Dictionary{
		"id": "b1",
		"account": Dictionary{
			"id":    "a1",
			"name":  "Ann",
			"cards": []any{Dictionary{"id": "c1"}},
		},
	}, reg)
	if !ok {
		t.Fatalf("期望 basket 翻译成功")
	}
	orig := basket.AsBasket().Account.(*vipAccount)
	orig.Level = 7

	cp := basket.AsBasket().Copy()
	acct, isVIP := cp.Account.(*vipAccount)
	if !isVIP {
		t.Fatalf("期望拷贝后 account 仍是 *vipAccount, got=%T", cp.Account)
	}
	if acct == orig || acct.Level != 7 || acct.ID != "a1" || acct.Name.String() != "Ann" {
		t.Fatalf("拷贝的自定义字段不对: %+v", acct)
	}
	if len(acct.Cards) != 1 || len(orig.Cards) != 1 || acct.Cards[0] == orig.Cards[0] {
		t.Fatalf("期望 cards 被深拷贝")
	}
	if !Equal(basket, cp) {
		t.Fatalf("期望拷贝与原对象相等")
	}

	// 覆盖了 Clone 的内置类型走原路径
	if c := CloneObject[AccountEntity](NewAccountWithID("a2")); c.AsAccount().ID != "a2" {
		t.Fatalf("内置类型拷贝失败: %+v", c)
	}
}
