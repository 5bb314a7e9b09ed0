package dao

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"DAOKit/modules/value"
)

func TestCenter_字典翻译出center一族(t *testing.T) {
	reg := NewRegistry()
	monday := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)

	c, ok := reg.Center.FromDictionary(Dictionary{
		"code": "hall",
		"name": "Hall",
		"hours": Dictionary{
			"monday":   Dictionary{"open": "09:00", "close": "17:00"},
			"holidays": []any{Dictionary{"date": "2024-07-08T00:00:00Z", "hours": Dictionary{"open": "11:00", "close": "13:00"}}},
			"events":   []any{Dictionary{"name": "Fair", "type": "market"}},
		},
		"statuses": []any{Dictionary{
			"status":    string(StatusClosed),
			"startTime": monday.Add(-time.Hour),
			"endTime":   monday.Add(time.Hour),
		}},
	}, reg)
	if !ok {
		t.Fatalf("期望 center 翻译成功")
	}
	center := c.AsCenter()
	hours, isCenter := center.Hours.(*CenterHours)
	if !isCenter {
		t.Fatalf("期望 hours 是 *CenterHours, got=%T", center.Hours)
	}
	if _, isCenter := hours.Holidays[0].(*CenterHoliday); !isCenter {
		t.Fatalf("期望节假日是 *CenterHoliday, got=%T", hours.Holidays[0])
	}
	if _, isCenter := hours.Events[0].(*CenterEvent); !isCenter {
		t.Fatalf("期望活动是 *CenterEvent, got=%T", hours.Events[0])
	}
	if _, isCenter := center.Statuses[0].(*CenterStatus); !isCenter {
		t.Fatalf("期望状态是 *CenterStatus, got=%T", center.Statuses[0])
	}

	if got := hours.Today(monday); got.Open == nil || got.Open.Hour != 9 {
		t.Fatalf("期望周一 09:00 开门, got=%v", got.Open)
	}
	if got := hours.Today(monday.AddDate(0, 0, 7)); got.Close == nil || got.Close.Hour != 13 {
		t.Fatalf("期望节假日 13:00 关门, got=%v", got.Close)
	}
	if center.IsOpen(monday) {
		t.Fatalf("期望 center 在关闭窗口内不营业")
	}
}

func TestCenter_结构化往返与拷贝(t *testing.T) {
	reg := NewRegistry()
	c := NewCenterWithCode("hall", value.NewText("Hall"))
	c.Hours.AsPlaceHours().Monday = value.NewDayHours(value.NewTimeOfDay(9, 0), value.NewTimeOfDay(17, 0))
	hol := NewCenterHolidayWithID("h1")
	hol.Hours = value.NewDayHours(value.NewTimeOfDay(11, 0), value.NewTimeOfDay(13, 0))
	c.Hours.AsPlaceHours().Holidays = []PlaceHolidayEntity{hol}
	st := NewCenterStatusWithID("")
	st.Status = StatusClosed
	c.SetStatuses([]PlaceStatusEntity{st})

	data, err := Marshal(c, reg)
	if err != nil {
		t.Fatalf("Marshal 失败: %v", err)
	}
	back, err := Unmarshal(data, reg.Center, reg)
	if err != nil {
		t.Fatalf("Unmarshal 失败: %v", err)
	}
	if !Equal(c, back) {
		t.Fatalf("期望结构化往返相等\nwant=%v\ngot=%v", c.AsDictionary(), back.AsDictionary())
	}
	if _, isCenter := back.AsCenter().Hours.AsPlaceHours().Holidays[0].(*CenterHoliday); !isCenter {
		t.Fatalf("期望解码出 *CenterHoliday")
	}

	cp := c.Copy()
	if _, isCenter := cp.Hours.(*CenterHours); !isCenter {
		t.Fatalf("期望拷贝保留 *CenterHours, got=%T", cp.Hours)
	}
	if cp.Diff(c) {
		t.Fatalf("期望拷贝与原对象相等")
	}
	cp.Hours.AsPlaceHours().Monday = value.DayHours{}
	if c.Hours.AsPlaceHours().Monday.IsClosed() || !cp.Diff(c) {
		t.Fatalf("期望拷贝的营业时间独立")
	}
}

func TestCenter_与Place不互相等同(t *testing.T) {
	p := NewPlaceWithCode("hall", value.NewText("Hall"))
	c := NewCenterWithCode("hall", value.NewText("Hall"))
	if !c.IsDiffFrom(p) {
		t.Fatalf("期望 Place 不能当作 Center 比较")
	}
	if !NewCenterHoursWithID("x").IsDiffFrom(NewPlaceHoursWithID("x")) {
		t.Fatalf("期望 PlaceHours 不能当作 CenterHours 比较")
	}

	// center 角色可以单独绑定，不影响 place
	reg := NewRegistry()
	reg.CenterStatus.Bind(func() PlaceStatusEntity { return NewPlaceStatus() })
	got, _ := reg.Center.FromDictionary(Dictionary{"code": "hall", "statuses": []any{Dictionary{"status": "open"}}}, reg)
	if _, isPlace := got.AsCenter().Statuses[0].(*PlaceStatus); !isPlace {
		t.Fatalf("期望绑定后状态是 *PlaceStatus, got=%T", got.AsCenter().Statuses[0])
	}
	pl, _ := reg.Place.FromDictionary(Dictionary{"code": "pier", "statuses": []any{Dictionary{"status": "open"}}}, reg)
	if _, isPlace := pl.AsPlace().Statuses[0].(*PlaceStatus); !isPlace {
		t.Fatalf("期望 place 仍使用 *PlaceStatus")
	}
}

func TestPricingException_与覆盖期同样解析价格(t *testing.T) {
	reg := NewRegistry()
	at := time.Date(2024, 12, 24, 12, 0, 0, 0, time.UTC)
	src := NewPricingExceptionWithID("x1")
	src.Priority = PriorityHigh
	src.StartTime = at.Add(-time.Hour)
	src.EndTime = at.Add(time.Hour)
	src.Items = []PricingItemEntity{itemWithDefault(7)}

	ex, ok := reg.PricingException.FromDictionary(src.AsDictionary(), reg)
	if !ok {
		t.Fatalf("期望翻译成功")
	}
	if _, isException := ex.(*PricingException); !isException || !Equal(src, ex) {
		t.Fatalf("期望字典往返得到相等的 *PricingException, got=%T", ex)
	}

	tier := seasonTier("standard", 10)
	tier.Overrides = []PricingOverrideEntity{ex}
	p := NewPricing()
	p.Tiers = []PricingTierEntity{tier}
	if got, ok := p.Price("standard", at); !ok || !got.Amount.Equal(decimal.NewFromInt(7)) {
		t.Fatalf("期望例外价 7.00, got=%v", got.Amount)
	}
	if got, _ := p.Price("standard", at.Add(2*time.Hour)); !got.Amount.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("期望窗口外回到季节价 10.00, got=%v", got.Amount)
	}

	override := NewPricingOverrideWithID("x1")
	override.Update(ex)
	if !ex.IsDiffFrom(override) {
		t.Fatalf("期望 PricingOverride 不能当作 PricingException 比较")
	}
	cp := ex.Clone()
	if _, isException := cp.(*PricingException); !isException || !Equal(ex, cp) {
		t.Fatalf("期望拷贝保留类型且相等, got=%T", cp)
	}
}
