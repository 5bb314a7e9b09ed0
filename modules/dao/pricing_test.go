package dao

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"DAOKit/modules/value"
)

func fixedPrice(amount float64) *PricingPrice {
	p := NewPricingPrice()
	p.Prices = []value.Price{value.NewPrice(decimal.NewFromFloat(amount))}
	return p
}

func itemWithDefault(amount float64) *PricingItem {
	it := NewPricingItem()
	it.PriceDefault = fixedPrice(amount)
	return it
}

func seasonTier(id string, amount float64) *PricingTier {
	season := NewPricingSeason()
	season.Items = []PricingItemEntity{itemWithDefault(amount)}
	tier := NewPricingTierWithID(id)
	tier.Seasons = []PricingSeasonEntity{season}
	return tier
}

func TestPricing_季节价格(t *testing.T) {
	p := NewPricing()
	p.Tiers = []PricingTierEntity{seasonTier("standard", 10)}

	got, ok := p.Price("standard", time.Now())
	if !ok || !got.Amount.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("期望 10.00, got=%v ok=%v", got.Amount, ok)
	}
}

func TestPricing_生效中的高优先级覆盖价优先(t *testing.T) {
	at := time.Date(2024, 7, 4, 12, 0, 0, 0, time.UTC)
	tier := seasonTier("standard", 10)
	ov := NewPricingOverride()
	ov.Priority = PriorityHigh
	ov.StartTime = at.Add(-time.Hour)
	ov.EndTime = at.Add(time.Hour)
	ov.Title = value.NewText("Holiday")
	ov.Items = []PricingItemEntity{itemWithDefault(5)}
	tier.Overrides = []PricingOverrideEntity{ov}
	p := NewPricing()
	p.Tiers = []PricingTierEntity{tier}

	got, ok := p.Price("standard", at)
	if !ok || !got.Amount.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("期望覆盖价 5.00, got=%v", got.Amount)
	}
	title, ok := p.OverrideTitle("standard", at)
	if !ok || title.String() != "Holiday" {
		t.Fatalf("期望覆盖标题 Holiday, got=%v", title)
	}

	// 窗口外回到季节价
	got, _ = p.Price("standard", at.Add(2*time.Hour))
	if !got.Amount.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("期望窗口外 10.00, got=%v", got.Amount)
	}
	// 禁用后回到季节价
	ov.Enabled = false
	got, _ = p.Price("standard", at)
	if !got.Amount.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("期望禁用后 10.00, got=%v", got.Amount)
	}
}

func TestPricing_未知tier回退到第一个(t *testing.T) {
	p := NewPricing()
	p.Tiers = []PricingTierEntity{seasonTier("a", 7), seasonTier("b", 9)}
	if got := p.Tier("zzz"); got == nil || got.Base().ID != "a" {
		t.Fatalf("期望回退到第一个 tier")
	}
	got, _ := p.Price("b", time.Now())
	if !got.Amount.Equal(decimal.NewFromInt(9)) {
		t.Fatalf("期望 tier b 价格 9, got=%v", got.Amount)
	}
	if _, ok := NewPricing().Price("a", time.Now()); ok {
		t.Fatalf("期望没有 tier 时没有价格")
	}
}

func TestPricingItem_星期价格优先于默认价(t *testing.T) {
	monday := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)
	it := itemWithDefault(10)
	it.PriceMonday = fixedPrice(8)

	got, _ := it.Price(monday)
	if !got.Amount.Equal(decimal.NewFromInt(8)) {
		t.Fatalf("期望周一价 8, got=%v", got.Amount)
	}
	got, _ = it.Price(monday.AddDate(0, 0, 1))
	if !got.Amount.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("期望周二回退默认价 10, got=%v", got.Amount)
	}
}

func TestPricingPrice_取生效中优先级最高的价格(t *testing.T) {
	at := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)
	low := value.NewPrice(decimal.NewFromInt(3))
	low.Priority = PriorityLow
	high := value.NewPrice(decimal.NewFromInt(4))
	high.Priority = PriorityHigh
	expired := value.NewPrice(decimal.NewFromInt(1))
	expired.Priority = PriorityHighest
	expired.StartTime = at.Add(-48 * time.Hour)
	expired.EndTime = at.Add(-24 * time.Hour)

	pp := NewPricingPrice()
	pp.Prices = []value.Price{low, expired, high}
	got, ok := pp.Price(at)
	if !ok || !got.Amount.Equal(decimal.NewFromInt(4)) {
		t.Fatalf("期望 4, got=%v", got.Amount)
	}
}

func TestPricing_字典翻译(t *testing.T) {
	p, ok := NewRegistry().Pricing.FromDictionary(Dictionary{
		"id": "pr1",
		"tiers": []any{
			Dictionary{
				"id":          "standard",
				"title":       "Standard",
				"dataStrings": Dictionary{"note": "weekday"},
				"seasons": []any{
					Dictionary{"items": []any{Dictionary{"priceDefault": Dictionary{"prices": []any{"12.50"}}}}},
				},
			},
		},
	}, nil)
	if !ok {
		t.Fatalf("期望翻译成功")
	}
	got, ok := p.AsPricing().Price("standard", time.Now())
	if !ok || !got.Amount.Equal(decimal.RequireFromString("12.5")) {
		t.Fatalf("期望 12.50, got=%v", got.Amount)
	}
	note, ok := p.AsPricing().DataString("standard", "note")
	if !ok || note.String() != "weekday" {
		t.Fatalf("期望 dataStrings.note=weekday, got=%v", note)
	}
}

func TestPricingTier_优先级被钳制(t *testing.T) {
	tier, _ := NewRegistry().PricingTier.FromDictionary(Dictionary{"id": "t", "priority": 99999}, nil)
	if tier.AsPricingTier().Priority != PriorityHighest {
		t.Fatalf("期望钳制到 %d, got=%d", PriorityHighest, tier.AsPricingTier().Priority)
	}
}
