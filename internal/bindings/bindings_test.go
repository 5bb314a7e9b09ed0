package bindings

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"DAOKit/internal/shared/config"
	"DAOKit/modules/dao"
	"DAOKit/modules/kit/errx"
	"DAOKit/modules/kit/logx"
)

func TestApply_按配置替换角色(t *testing.T) {
	reg := dao.NewRegistry()
	err := Apply(reg, config.RegistryConfig{Bindings: map[string]string{
		"account": "loyalty",
		"place":   "venue",
	}}, nil)
	if err != nil {
		t.Fatalf("Apply 失败: %v", err)
	}
	if _, ok := reg.Account.Create().(*LoyaltyAccount); !ok {
		t.Fatalf("期望 account 绑定为 *LoyaltyAccount")
	}
	if _, ok := reg.Place.Create().(*Venue); !ok {
		t.Fatalf("期望 place 绑定为 *Venue")
	}

	// builtin 恢复内置类型
	if err := Apply(reg, config.RegistryConfig{Bindings: map[string]string{"account": Builtin}}, nil); err != nil {
		t.Fatalf("Apply builtin 失败: %v", err)
	}
	if _, ok := reg.Account.Create().(*dao.Account); !ok {
		t.Fatalf("期望 account 恢复为 *dao.Account, got=%T", reg.Account.Create())
	}
}

func TestApply_严格模式拒绝未知项(t *testing.T) {
	reg := dao.NewRegistry()
	err := Apply(reg, config.RegistryConfig{Strict: true, Bindings: map[string]string{"account": "gold"}}, nil)
	if !errors.Is(err, errx.ErrInvalidArgument) {
		t.Fatalf("期望 INVALID_ARGUMENT, got=%v", err)
	}
	err = Apply(reg, config.RegistryConfig{Strict: true, Bindings: map[string]string{"spaceship": "loyalty"}}, nil)
	if !errors.Is(err, errx.ErrInvalidArgument) {
		t.Fatalf("期望未知角色 INVALID_ARGUMENT, got=%v", err)
	}
}

func TestApply_宽松模式告警跳过(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	reg := dao.NewRegistry()
	err := Apply(reg, config.RegistryConfig{Bindings: map[string]string{
		"account": "gold",
		"place":   "venue",
	}}, logx.NewZapLogger(zap.New(core)))
	if err != nil {
		t.Fatalf("期望宽松模式不报错, got=%v", err)
	}
	skipped := logs.FilterMessage("registry binding skipped").All()
	if len(skipped) != 1 {
		t.Fatalf("期望一条跳过告警")
	}
	if got := skipped[0].ContextMap()["role"]; got != "account" {
		t.Fatalf("期望告警带 role=account, got=%v", got)
	}
	if _, ok := reg.Place.Create().(*Venue); !ok {
		t.Fatalf("期望其它绑定照常生效")
	}
}

func TestLoyaltyAccount_父对象翻译与结构化往返(t *testing.T) {
	reg := dao.NewRegistry()
	if err := Apply(reg, config.RegistryConfig{Bindings: map[string]string{"account": "loyalty"}}, nil); err != nil {
		t.Fatalf("Apply 失败: %v", err)
	}

	req, ok := reg.AccountLinkRequest.FromDictionary(dao.Dictionary{
		"id":      "r1",
		"account": dao.Dictionary{"id": "a1", "loyaltyPoints": "120", "loyaltyTier": "gold"},
	}, reg)
	if !ok {
		t.Fatalf("期望翻译成功")
	}
	acct, isLoyalty := req.AsAccountLinkRequest().Account.(*LoyaltyAccount)
	if !isLoyalty || acct.Points != 120 || acct.Tier != "gold" {
		t.Fatalf("期望父对象翻译出 LoyaltyAccount, got=%#v", req.AsAccountLinkRequest().Account)
	}

	data, err := dao.Marshal(acct, reg)
	if err != nil {
		t.Fatalf("Marshal 失败: %v", err)
	}
	back, err := dao.Unmarshal(data, reg.Account, reg)
	if err != nil {
		t.Fatalf("Unmarshal 失败: %v", err)
	}
	if !dao.Equal(acct, back) {
		t.Fatalf("期望结构化往返相等")
	}

	c := acct.Copy()
	c.Points = 1
	if acct.Points != 120 || !acct.IsDiffFrom(c) {
		t.Fatalf("期望拷贝独立且能被比较出不同")
	}
	if !acct.IsDiffFrom(&acct.Account) {
		t.Fatalf("期望与内置 Account 比较为不同")
	}
}

func TestVenue_字典往返(t *testing.T) {
	v := NewVenue()
	v.Code = "hall"
	v.Capacity = 300
	v.Indoor = true

	reg := dao.NewRegistry()
	reg.Place.Bind(func() dao.PlaceEntity { return NewVenue() })
	back, ok := reg.Place.FromDictionary(v.AsDictionary(), reg)
	if !ok || !dao.Equal(v, back) {
		t.Fatalf("期望 Venue 字典往返相等")
	}
}

func TestVariants_列出可选项(t *testing.T) {
	if diff := cmp.Diff([]string{Builtin, "loyalty"}, Variants("account")); diff != "" {
		t.Fatalf("variant 列表不一致 (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{Builtin}, Variants("chat")); diff != "" {
		t.Fatalf("variant 列表不一致 (-want +got):\n%s", diff)
	}
}
