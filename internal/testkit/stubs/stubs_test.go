package stubs

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"DAOKit/modules/dao"
	"DAOKit/modules/value"
)

func TestAccountStub_结构化往返(t *testing.T) {
	reg := dao.NewRegistry()
	a := NewAccountStub().WithCards(2).WithUsers(1).Get()

	data, err := dao.Marshal(a, reg)
	if err != nil {
		t.Fatalf("Marshal 失败: %v", err)
	}
	back, err := dao.Unmarshal(data, reg.Account, reg)
	if err != nil {
		t.Fatalf("Unmarshal 失败: %v", err)
	}
	if !dao.Equal(a, back) {
		t.Fatalf("期望往返相等\nwant=%v\ngot=%v", a.AsDictionary(), back.AsDictionary())
	}
	if len(back.AsAccount().Cards) != 2 {
		t.Fatalf("期望 2 张卡, got=%d", len(back.AsAccount().Cards))
	}
}

func TestPlaceStub_结构化往返(t *testing.T) {
	reg := dao.NewRegistry()
	p := NewPlaceStub().
		WithCode("pier").
		WithWeekdayHours(value.NewTimeOfDay(9, 0), value.NewTimeOfDay(18, 0)).
		WithStatus(dao.StatusClosed, dao.ScopePlace, Now(), time.Hour).
		Get()

	data, err := dao.Marshal(p, reg)
	if err != nil {
		t.Fatalf("Marshal 失败: %v", err)
	}
	back, err := dao.Unmarshal(data, reg.Place, reg)
	if err != nil {
		t.Fatalf("Unmarshal 失败: %v", err)
	}
	if !dao.Equal(p, back) {
		t.Fatalf("期望往返相等")
	}
}

func TestPricingStub_覆盖价优先(t *testing.T) {
	at := time.Date(2024, 12, 24, 12, 0, 0, 0, time.UTC)
	p := NewPricingStub("standard").
		WithSeasonPrice("10.00").
		WithOverride("5.00", dao.PriorityHigh, at.Add(-time.Hour), at.Add(time.Hour)).
		Get()

	got, ok := p.Price("standard", at)
	if !ok || !got.Amount.Equal(decimal.RequireFromString("5")) {
		t.Fatalf("期望 5.00, got=%v", got.Amount)
	}
	got, _ = p.Price("standard", at.AddDate(0, 0, 1))
	if !got.Amount.Equal(decimal.RequireFromString("10")) {
		t.Fatalf("期望 10.00, got=%v", got.Amount)
	}
}
