package stubs

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"

	"DAOKit/modules/dao"
	"DAOKit/modules/value"
)

// PricingStub 构造单 tier 的定价。
type PricingStub struct {
	pricing *dao.Pricing
	tier    *dao.PricingTier
}

func NewPricingStub(tierID string) PricingStub {
	tier := dao.NewPricingTierWithID(tierID)
	tier.Title = gofakeit.Word()
	p := dao.NewPricingWithID(gofakeit.UUID())
	p.Tiers = []dao.PricingTierEntity{tier}
	return PricingStub{pricing: p, tier: tier}
}

// WithSeasonPrice 追加一个始终生效的季节价。
func (s PricingStub) WithSeasonPrice(amount string) PricingStub {
	season := dao.NewPricingSeasonWithID(gofakeit.UUID())
	season.Items = []dao.PricingItemEntity{defaultItem(amount)}
	s.tier.Seasons = append(s.tier.Seasons, season)
	return s
}

// WithOverride 追加一个 [start, end] 内生效的覆盖价。
func (s PricingStub) WithOverride(amount string, priority int, start, end time.Time) PricingStub {
	ov := dao.NewPricingOverrideWithID(gofakeit.UUID())
	ov.Priority = priority
	ov.StartTime = start.UTC().Truncate(time.Millisecond)
	ov.EndTime = end.UTC().Truncate(time.Millisecond)
	ov.Title = value.NewText(gofakeit.Word())
	ov.Items = []dao.PricingItemEntity{defaultItem(amount)}
	s.tier.Overrides = append(s.tier.Overrides, ov)
	return s
}

func (s PricingStub) WithDataString(key, text string) PricingStub {
	s.tier.DataStrings[key] = value.NewText(text)
	return s
}

func (s PricingStub) Get() *dao.Pricing {
	return s.pricing
}

func defaultItem(amount string) *dao.PricingItem {
	price := dao.NewPricingPriceWithID(gofakeit.UUID())
	price.Prices = []value.Price{value.NewPrice(decimal.RequireFromString(amount))}
	item := dao.NewPricingItemWithID(gofakeit.UUID())
	item.PriceDefault = price
	return item
}
