package dao

import (
	"errors"
	"sort"
	"time"

	"DAOKit/modules/value"
)

// 定价解析链：Pricing → Tier → Override/Season → Item → PricingPrice → value.Price。
// 每一层都按优先级倒序取第一个能给出价格的候选。

var PricingKeys = struct {
	Tiers string
}{"tiers"}

type Pricing struct {
	BaseObject
	Tiers []PricingTierEntity
}

type PricingEntity interface {
	Object
	AsPricing() *Pricing
}

var _ PricingEntity = (*Pricing)(nil)

func NewPricing() *Pricing {
	return &Pricing{BaseObject: NewBaseObject()}
}

func NewPricingWithID(id string) *Pricing {
	return &Pricing{BaseObject: NewBaseObjectWithID(id)}
}

func (p *Pricing) AsPricing() *Pricing { return p }

// Tier 按 id 查找，同 id 取优先级最高者；找不到时退回第一个 tier。
func (p *Pricing) Tier(tierID string) PricingTierEntity {
	var matched []PricingTierEntity
	for _, t := range p.Tiers {
		if !isNil(t) && t.Base().ID == tierID {
			matched = append(matched, t)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].AsPricingTier().Priority > matched[j].AsPricingTier().Priority
	})
	if len(matched) > 0 {
		return matched[0]
	}
	for _, t := range p.Tiers {
		if !isNil(t) {
			return t
		}
	}
	return nil
}

func (p *Pricing) Price(tierID string, t time.Time) (value.Price, bool) {
	tier := p.Tier(tierID)
	if isNil(tier) {
		return value.Price{}, false
	}
	return tier.AsPricingTier().Price(t)
}

func (p *Pricing) DataString(tierID, key string) (value.Text, bool) {
	tier := p.Tier(tierID)
	if isNil(tier) {
		return nil, false
	}
	s, ok := tier.AsPricingTier().DataStrings[key]
	return s, ok
}

func (p *Pricing) DataStrings(tierID string) map[string]value.Text {
	tier := p.Tier(tierID)
	if isNil(tier) {
		return map[string]value.Text{}
	}
	return copyTextMap(tier.AsPricingTier().DataStrings)
}

func (p *Pricing) OverrideTitle(tierID string, t time.Time) (value.Text, bool) {
	tier := p.Tier(tierID)
	if isNil(tier) {
		return nil, false
	}
	return tier.AsPricingTier().OverrideTitle(t)
}

func (p *Pricing) Copy() *Pricing {
	out := &Pricing{}
	out.copyFrom(p)
	return out
}

func (p *Pricing) Clone() Object { return p.Copy() }

func (p *Pricing) Update(from Object) {
	if src, ok := from.(PricingEntity); ok && !isNil(src) {
		p.copyFrom(src.AsPricing())
	}
}

func (p *Pricing) copyFrom(src *Pricing) {
	if src == p {
		return
	}
	p.UpdateBase(&src.BaseObject)
	p.Tiers = CloneObjects(src.Tiers)
}

func (p *Pricing) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(PricingEntity)
	if !ok || isNil(r) {
		return true
	}
	return p.Diff(r.AsPricing())
}

func (p *Pricing) Diff(rhs *Pricing) bool {
	if p == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return p.DiffBase(&rhs.BaseObject) || DiffObjectSet(p.Tiers, rhs.Tiers)
}

func (p *Pricing) Translate(data Dictionary, reg *Registry) {
	reg = Resolve(reg)
	p.TranslateBase(data, reg)
	reg.PricingTier.ReadArray(data, PricingKeys.Tiers, reg, &p.Tiers)
}

func (p *Pricing) AsDictionary() Dictionary {
	return Merge(p.BaseDictionary(), Dictionary{
		PricingKeys.Tiers: ObjectsDictionary(p.Tiers),
	})
}

func (p *Pricing) EncodeFields(enc *Encoder) error {
	if err := p.EncodeBase(enc); err != nil {
		return err
	}
	return PutObjects(enc, PricingKeys.Tiers, p.Tiers)
}

func (p *Pricing) DecodeFields(dec *Decoder) error {
	if err := p.DecodeBase(dec); err != nil {
		return err
	}
	return dec.Registry().PricingTier.DecodeArrayField(dec, PricingKeys.Tiers, &p.Tiers)
}

var PricingTierKeys = struct {
	DataStrings, Overrides, Priority, Seasons, Title string
}{"dataStrings", "overrides", "priority", "seasons", "title"}

type PricingTier struct {
	BaseObject
	DataStrings map[string]value.Text
	Overrides   []PricingOverrideEntity
	Priority    int
	Seasons     []PricingSeasonEntity
	Title       string
}

type PricingTierEntity interface {
	Object
	AsPricingTier() *PricingTier
}

var _ PricingTierEntity = (*PricingTier)(nil)

func NewPricingTier() *PricingTier {
	return &PricingTier{BaseObject: NewBaseObject(), DataStrings: map[string]value.Text{}, Priority: PriorityNormal}
}

func NewPricingTierWithID(id string) *PricingTier {
	t := NewPricingTier()
	t.ID = id
	return t
}

func (t *PricingTier) AsPricingTier() *PricingTier { return t }

// Price 先看生效中的 override，再看生效中的 season。
func (t *PricingTier) Price(at time.Time) (value.Price, bool) {
	for _, o := range byPriority(t.Overrides, func(o PricingOverrideEntity) int { return o.AsPricingOverride().Priority }) {
		if ov := o.AsPricingOverride(); ov.IsActive(at) {
			if p, ok := ov.Price(at); ok {
				return p, true
			}
		}
	}
	for _, s := range byPriority(t.Seasons, func(s PricingSeasonEntity) int { return s.AsPricingSeason().Priority }) {
		if se := s.AsPricingSeason(); se.IsActive(at) {
			if p, ok := se.Price(at); ok {
				return p, true
			}
		}
	}
	return value.Price{}, false
}

// Season 按 id 查找，找不到时退回第一个 season。
func (t *PricingTier) Season(id string) PricingSeasonEntity {
	var matched []PricingSeasonEntity
	for _, s := range t.Seasons {
		if !isNil(s) && s.Base().ID == id {
			matched = append(matched, s)
		}
	}
	matched = byPriority(matched, func(s PricingSeasonEntity) int { return s.AsPricingSeason().Priority })
	if len(matched) > 0 {
		return matched[0]
	}
	for _, s := range t.Seasons {
		if !isNil(s) {
			return s
		}
	}
	return nil
}

// OverrideTitle 返回 at 时刻优先级最高的生效 override 的标题。
func (t *PricingTier) OverrideTitle(at time.Time) (value.Text, bool) {
	for _, o := range byPriority(t.Overrides, func(o PricingOverrideEntity) int { return o.AsPricingOverride().Priority }) {
		if ov := o.AsPricingOverride(); ov.IsActive(at) {
			return ov.Title.Copy(), true
		}
	}
	return nil, false
}

func (t *PricingTier) Copy() *PricingTier {
	out := &PricingTier{}
	out.copyFrom(t)
	return out
}

func (t *PricingTier) Clone() Object { return t.Copy() }

func (t *PricingTier) Update(from Object) {
	if src, ok := from.(PricingTierEntity); ok && !isNil(src) {
		t.copyFrom(src.AsPricingTier())
	}
}

func (t *PricingTier) copyFrom(src *PricingTier) {
	if src == t {
		return
	}
	t.UpdateBase(&src.BaseObject)
	t.DataStrings = copyTextMap(src.DataStrings)
	t.Overrides = CloneObjects(src.Overrides)
	t.Priority = src.Priority
	t.Seasons = CloneObjects(src.Seasons)
	t.Title = src.Title
}

func (t *PricingTier) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(PricingTierEntity)
	if !ok || isNil(r) {
		return true
	}
	return t.Diff(r.AsPricingTier())
}

func (t *PricingTier) Diff(rhs *PricingTier) bool {
	if t == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return t.DiffBase(&rhs.BaseObject) ||
		t.Priority != rhs.Priority ||
		t.Title != rhs.Title ||
		!sameTextMap(t.DataStrings, rhs.DataStrings) ||
		DiffObjectSet(t.Overrides, rhs.Overrides) ||
		DiffObjectSet(t.Seasons, rhs.Seasons)
}

func (t *PricingTier) Translate(data Dictionary, reg *Registry) {
	reg = Resolve(reg)
	t.TranslateBase(data, reg)
	r := Read(data)
	r.TextMap(PricingTierKeys.DataStrings, &t.DataStrings)
	reg.PricingOverride.ReadArray(data, PricingTierKeys.Overrides, reg, &t.Overrides)
	if r.Int(PricingTierKeys.Priority, &t.Priority) {
		t.Priority = ClampPriority(t.Priority)
	}
	reg.PricingSeason.ReadArray(data, PricingTierKeys.Seasons, reg, &t.Seasons)
	r.String(PricingTierKeys.Title, &t.Title)
}

func (t *PricingTier) AsDictionary() Dictionary {
	return Merge(t.BaseDictionary(), Dictionary{
		PricingTierKeys.DataStrings: textMapDictionary(t.DataStrings),
		PricingTierKeys.Overrides:   ObjectsDictionary(t.Overrides),
		PricingTierKeys.Priority:    t.Priority,
		PricingTierKeys.Seasons:     ObjectsDictionary(t.Seasons),
		PricingTierKeys.Title:       t.Title,
	})
}

func (t *PricingTier) EncodeFields(enc *Encoder) error {
	if err := t.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(PricingTierKeys.DataStrings, t.DataStrings)
	enc.Put(PricingTierKeys.Priority, t.Priority)
	enc.Put(PricingTierKeys.Title, t.Title)
	return errors.Join(
		PutObjects(enc, PricingTierKeys.Overrides, t.Overrides),
		PutObjects(enc, PricingTierKeys.Seasons, t.Seasons),
	)
}

func (t *PricingTier) DecodeFields(dec *Decoder) error {
	if err := t.DecodeBase(dec); err != nil {
		return err
	}
	reg := dec.Registry()
	err := errors.Join(
		dec.TextMap(PricingTierKeys.DataStrings, &t.DataStrings),
		reg.PricingOverride.DecodeArrayField(dec, PricingTierKeys.Overrides, &t.Overrides),
		dec.Int(PricingTierKeys.Priority, &t.Priority),
		reg.PricingSeason.DecodeArrayField(dec, PricingTierKeys.Seasons, &t.Seasons),
		dec.String(PricingTierKeys.Title, &t.Title),
	)
	t.Priority = ClampPriority(t.Priority)
	return err
}

var PricingSeasonKeys = struct {
	EndTime, Items, Priority, StartTime string
}{"endTime", "items", "priority", "startTime"}

// PricingSeason 是一段常规定价期，默认窗口是哨兵起止时间，即始终生效。
type PricingSeason struct {
	BaseObject
	EndTime   time.Time
	Items     []PricingItemEntity
	Priority  int
	StartTime time.Time
}

type PricingSeasonEntity interface {
	Object
	AsPricingSeason() *PricingSeason
}

var _ PricingSeasonEntity = (*PricingSeason)(nil)

func NewPricingSeason() *PricingSeason {
	return &PricingSeason{
		BaseObject: NewBaseObject(),
		EndTime:    value.DefaultEndTime,
		Priority:   PriorityNormal,
		StartTime:  value.DefaultStartTime,
	}
}

func NewPricingSeasonWithID(id string) *PricingSeason {
	s := NewPricingSeason()
	s.ID = id
	return s
}

func (s *PricingSeason) AsPricingSeason() *PricingSeason { return s }

func (s *PricingSeason) IsActive(t time.Time) bool {
	return value.InWindow(s.StartTime, s.EndTime, t)
}

func (s *PricingSeason) Item(t time.Time) PricingItemEntity {
	return pricedItem(s.Items, t)
}

func (s *PricingSeason) Price(t time.Time) (value.Price, bool) {
	return itemPrice(s.Items, t)
}

func (s *PricingSeason) Copy() *PricingSeason {
	out := &PricingSeason{}
	out.copyFrom(s)
	return out
}

func (s *PricingSeason) Clone() Object { return s.Copy() }

func (s *PricingSeason) Update(from Object) {
	if src, ok := from.(PricingSeasonEntity); ok && !isNil(src) {
		s.copyFrom(src.AsPricingSeason())
	}
}

func (s *PricingSeason) copyFrom(src *PricingSeason) {
	if src == s {
		return
	}
	s.UpdateBase(&src.BaseObject)
	s.EndTime = src.EndTime
	s.Items = CloneObjects(src.Items)
	s.Priority = src.Priority
	s.StartTime = src.StartTime
}

func (s *PricingSeason) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(PricingSeasonEntity)
	if !ok || isNil(r) {
		return true
	}
	return s.Diff(r.AsPricingSeason())
}

func (s *PricingSeason) Diff(rhs *PricingSeason) bool {
	if s == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return s.DiffBase(&rhs.BaseObject) ||
		s.Priority != rhs.Priority ||
		!sameInstant(s.EndTime, rhs.EndTime) ||
		!sameInstant(s.StartTime, rhs.StartTime) ||
		DiffObjectSet(s.Items, rhs.Items)
}

func (s *PricingSeason) Translate(data Dictionary, reg *Registry) {
	reg = Resolve(reg)
	s.TranslateBase(data, reg)
	r := Read(data)
	r.Time(PricingSeasonKeys.EndTime, &s.EndTime)
	reg.PricingItem.ReadArray(data, PricingSeasonKeys.Items, reg, &s.Items)
	if r.Int(PricingSeasonKeys.Priority, &s.Priority) {
		s.Priority = ClampPriority(s.Priority)
	}
	r.Time(PricingSeasonKeys.StartTime, &s.StartTime)
}

func (s *PricingSeason) AsDictionary() Dictionary {
	return Merge(s.BaseDictionary(), Dictionary{
		PricingSeasonKeys.EndTime:   s.EndTime,
		PricingSeasonKeys.Items:     ObjectsDictionary(s.Items),
		PricingSeasonKeys.Priority:  s.Priority,
		PricingSeasonKeys.StartTime: s.StartTime,
	})
}

func (s *PricingSeason) EncodeFields(enc *Encoder) error {
	if err := s.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(PricingSeasonKeys.EndTime, s.EndTime)
	enc.Put(PricingSeasonKeys.Priority, s.Priority)
	enc.Put(PricingSeasonKeys.StartTime, s.StartTime)
	return PutObjects(enc, PricingSeasonKeys.Items, s.Items)
}

func (s *PricingSeason) DecodeFields(dec *Decoder) error {
	if err := s.DecodeBase(dec); err != nil {
		return err
	}
	err := errors.Join(
		dec.Time(PricingSeasonKeys.EndTime, &s.EndTime),
		dec.Registry().PricingItem.DecodeArrayField(dec, PricingSeasonKeys.Items, &s.Items),
		dec.Int(PricingSeasonKeys.Priority, &s.Priority),
		dec.Time(PricingSeasonKeys.StartTime, &s.StartTime),
	)
	s.Priority = ClampPriority(s.Priority)
	return err
}

var PricingOverrideKeys = struct {
	Enabled, EndTime, Items, Priority, StartTime, Title string
}{"enabled", "endTime", "items", "priority", "startTime", "title"}

// PricingOverride 是临时覆盖季节定价的定价期，只有 Enabled 时才生效。
type PricingOverride struct {
	BaseObject
	Enabled   bool
	EndTime   time.Time
	Items     []PricingItemEntity
	Priority  int
	StartTime time.Time
	Title     value.Text
}

type PricingOverrideEntity interface {
	Object
	AsPricingOverride() *PricingOverride
}

var _ PricingOverrideEntity = (*PricingOverride)(nil)

func NewPricingOverride() *PricingOverride {
	return &PricingOverride{
		BaseObject: NewBaseObject(),
		Enabled:    true,
		EndTime:    value.DefaultEndTime,
		Priority:   PriorityNormal,
		StartTime:  value.DefaultStartTime,
	}
}

func NewPricingOverrideWithID(id string) *PricingOverride {
	o := NewPricingOverride()
	o.ID = id
	return o
}

func (o *PricingOverride) AsPricingOverride() *PricingOverride { return o }

func (o *PricingOverride) IsActive(t time.Time) bool {
	return o.Enabled && value.InWindow(o.StartTime, o.EndTime, t)
}

func (o *PricingOverride) Item(t time.Time) PricingItemEntity {
	return pricedItem(o.Items, t)
}

func (o *PricingOverride) Price(t time.Time) (value.Price, bool) {
	return itemPrice(o.Items, t)
}

func (o *PricingOverride) Copy() *PricingOverride {
	out := &PricingOverride{}
	out.copyFrom(o)
	return out
}

func (o *PricingOverride) Clone() Object { return o.Copy() }

func (o *PricingOverride) Update(from Object) {
	if src, ok := from.(PricingOverrideEntity); ok && !isNil(src) {
		o.copyFrom(src.AsPricingOverride())
	}
}

func (o *PricingOverride) copyFrom(src *PricingOverride) {
	if src == o {
		return
	}
	o.UpdateBase(&src.BaseObject)
	o.Enabled = src.Enabled
	o.EndTime = src.EndTime
	o.Items = CloneObjects(src.Items)
	o.Priority = src.Priority
	o.StartTime = src.StartTime
	o.Title = src.Title.Copy()
}

func (o *PricingOverride) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(PricingOverrideEntity)
	if !ok || isNil(r) {
		return true
	}
	return o.Diff(r.AsPricingOverride())
}

func (o *PricingOverride) Diff(rhs *PricingOverride) bool {
	if o == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return o.DiffBase(&rhs.BaseObject) ||
		o.Enabled != rhs.Enabled ||
		o.Priority != rhs.Priority ||
		!sameInstant(o.EndTime, rhs.EndTime) ||
		!sameInstant(o.StartTime, rhs.StartTime) ||
		!o.Title.Equal(rhs.Title) ||
		DiffObjectSet(o.Items, rhs.Items)
}

func (o *PricingOverride) Translate(data Dictionary, reg *Registry) {
	reg = Resolve(reg)
	o.TranslateBase(data, reg)
	r := Read(data)
	r.Bool(PricingOverrideKeys.Enabled, &o.Enabled)
	r.Time(PricingOverrideKeys.EndTime, &o.EndTime)
	reg.PricingItem.ReadArray(data, PricingOverrideKeys.Items, reg, &o.Items)
	if r.Int(PricingOverrideKeys.Priority, &o.Priority) {
		o.Priority = ClampPriority(o.Priority)
	}
	r.Time(PricingOverrideKeys.StartTime, &o.StartTime)
	r.Text(PricingOverrideKeys.Title, &o.Title)
}

func (o *PricingOverride) AsDictionary() Dictionary {
	return Merge(o.BaseDictionary(), Dictionary{
		PricingOverrideKeys.Enabled:   o.Enabled,
		PricingOverrideKeys.EndTime:   o.EndTime,
		PricingOverrideKeys.Items:     ObjectsDictionary(o.Items),
		PricingOverrideKeys.Priority:  o.Priority,
		PricingOverrideKeys.StartTime: o.StartTime,
		PricingOverrideKeys.Title:     o.Title.ToDictionary(),
	})
}

func (o *PricingOverride) EncodeFields(enc *Encoder) error {
	if err := o.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(PricingOverrideKeys.Enabled, o.Enabled)
	enc.Put(PricingOverrideKeys.EndTime, o.EndTime)
	enc.Put(PricingOverrideKeys.Priority, o.Priority)
	enc.Put(PricingOverrideKeys.StartTime, o.StartTime)
	enc.Put(PricingOverrideKeys.Title, o.Title)
	return PutObjects(enc, PricingOverrideKeys.Items, o.Items)
}

func (o *PricingOverride) DecodeFields(dec *Decoder) error {
	if err := o.DecodeBase(dec); err != nil {
		return err
	}
	err := errors.Join(
		dec.Bool(PricingOverrideKeys.Enabled, &o.Enabled),
		dec.Time(PricingOverrideKeys.EndTime, &o.EndTime),
		dec.Registry().PricingItem.DecodeArrayField(dec, PricingOverrideKeys.Items, &o.Items),
		dec.Int(PricingOverrideKeys.Priority, &o.Priority),
		dec.Time(PricingOverrideKeys.StartTime, &o.StartTime),
		dec.Text(PricingOverrideKeys.Title, &o.Title),
	)
	o.Priority = ClampPriority(o.Priority)
	return err
}

// PricingException 是覆盖定价期的旧称，字段、窗口与价格解析都与 PricingOverride 相同。
type PricingException struct {
	PricingOverride
}

type PricingExceptionEntity interface {
	PricingOverrideEntity
	AsPricingException() *PricingException
}

var _ PricingExceptionEntity = (*PricingException)(nil)

func NewPricingException() *PricingException {
	return &PricingException{PricingOverride: *NewPricingOverride()}
}

func NewPricingExceptionWithID(id string) *PricingException {
	return &PricingException{PricingOverride: *NewPricingOverrideWithID(id)}
}

func (e *PricingException) AsPricingException() *PricingException { return e }

func (e *PricingException) Copy() *PricingException {
	out := &PricingException{}
	out.copyFrom(&e.PricingOverride)
	return out
}

func (e *PricingException) Clone() Object { return e.Copy() }

func (e *PricingException) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(PricingExceptionEntity)
	if !ok || isNil(r) {
		return true
	}
	return e.PricingOverride.Diff(&r.AsPricingException().PricingOverride)
}

var PricingItemKeys = struct {
	PriceDefault, PriceMonday, PriceTuesday, PriceWednesday, PriceThursday, PriceFriday, PriceSaturday, PriceSunday, Priority string
}{
	PriceDefault:   "priceDefault",
	PriceMonday:    "priceMonday",
	PriceTuesday:   "priceTuesday",
	PriceWednesday: "priceWednesday",
	PriceThursday:  "priceThursday",
	PriceFriday:    "priceFriday",
	PriceSaturday:  "priceSaturday",
	PriceSunday:    "priceSunday",
	Priority:       "priority",
}

// PricingItem 按星期几给出价格列表，当天没有生效价格时用 PriceDefault。
type PricingItem struct {
	BaseObject
	PriceDefault   PricingPriceEntity
	PriceMonday    PricingPriceEntity
	PriceTuesday   PricingPriceEntity
	PriceWednesday PricingPriceEntity
	PriceThursday  PricingPriceEntity
	PriceFriday    PricingPriceEntity
	PriceSaturday  PricingPriceEntity
	PriceSunday    PricingPriceEntity
	Priority       int
}

type PricingItemEntity interface {
	Object
	AsPricingItem() *PricingItem
}

var _ PricingItemEntity = (*PricingItem)(nil)

func NewPricingItem() *PricingItem {
	return &PricingItem{BaseObject: NewBaseObject(), Priority: PriorityNormal}
}

func NewPricingItemWithID(id string) *PricingItem {
	i := NewPricingItem()
	i.ID = id
	return i
}

func (i *PricingItem) AsPricingItem() *PricingItem { return i }

// ForDay 返回某个星期几的价格列表，可能为 nil。
func (i *PricingItem) ForDay(day time.Weekday) PricingPriceEntity {
	switch day {
	case time.Monday:
		return i.PriceMonday
	case time.Tuesday:
		return i.PriceTuesday
	case time.Wednesday:
		return i.PriceWednesday
	case time.Thursday:
		return i.PriceThursday
	case time.Friday:
		return i.PriceFriday
	case time.Saturday:
		return i.PriceSaturday
	default:
		return i.PriceSunday
	}
}

func (i *PricingItem) Price(t time.Time) (value.Price, bool) {
	if day := i.ForDay(t.Weekday()); !isNil(day) {
		if p, ok := day.AsPricingPrice().Price(t); ok {
			return p, true
		}
	}
	if isNil(i.PriceDefault) {
		return value.Price{}, false
	}
	return i.PriceDefault.AsPricingPrice().Price(t)
}

func (i *PricingItem) slots() []*PricingPriceEntity {
	return []*PricingPriceEntity{
		&i.PriceDefault, &i.PriceMonday, &i.PriceTuesday, &i.PriceWednesday,
		&i.PriceThursday, &i.PriceFriday, &i.PriceSaturday, &i.PriceSunday,
	}
}

func priceKeys() []string {
	k := PricingItemKeys
	return []string{
		k.PriceDefault, k.PriceMonday, k.PriceTuesday, k.PriceWednesday,
		k.PriceThursday, k.PriceFriday, k.PriceSaturday, k.PriceSunday,
	}
}

func (i *PricingItem) Copy() *PricingItem {
	out := &PricingItem{}
	out.copyFrom(i)
	return out
}

func (i *PricingItem) Clone() Object { return i.Copy() }

func (i *PricingItem) Update(from Object) {
	if src, ok := from.(PricingItemEntity); ok && !isNil(src) {
		i.copyFrom(src.AsPricingItem())
	}
}

func (i *PricingItem) copyFrom(src *PricingItem) {
	if src == i {
		return
	}
	i.UpdateBase(&src.BaseObject)
	dst, from := i.slots(), src.slots()
	for n := range dst {
		*dst[n] = CloneObject(*from[n])
	}
	i.Priority = src.Priority
}

func (i *PricingItem) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(PricingItemEntity)
	if !ok || isNil(r) {
		return true
	}
	return i.Diff(r.AsPricingItem())
}

func (i *PricingItem) Diff(rhs *PricingItem) bool {
	if i == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	if i.DiffBase(&rhs.BaseObject) || i.Priority != rhs.Priority {
		return true
	}
	l, r := i.slots(), rhs.slots()
	for n := range l {
		if DiffObject(*l[n], *r[n]) {
			return true
		}
	}
	return false
}

func (i *PricingItem) Translate(data Dictionary, reg *Registry) {
	reg = Resolve(reg)
	i.TranslateBase(data, reg)
	slots := i.slots()
	for n, key := range priceKeys() {
		reg.PricingPrice.Read(data, key, reg, slots[n])
	}
	if Read(data).Int(PricingItemKeys.Priority, &i.Priority) {
		i.Priority = ClampPriority(i.Priority)
	}
}

func (i *PricingItem) AsDictionary() Dictionary {
	out := Dictionary{PricingItemKeys.Priority: i.Priority}
	slots := i.slots()
	for n, key := range priceKeys() {
		out[key] = ObjectDictionary(*slots[n])
	}
	return Merge(i.BaseDictionary(), out)
}

func (i *PricingItem) EncodeFields(enc *Encoder) error {
	if err := i.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(PricingItemKeys.Priority, i.Priority)
	var errs []error
	slots := i.slots()
	for n, key := range priceKeys() {
		errs = append(errs, PutObject(enc, key, *slots[n]))
	}
	return errors.Join(errs...)
}

func (i *PricingItem) DecodeFields(dec *Decoder) error {
	if err := i.DecodeBase(dec); err != nil {
		return err
	}
	reg := dec.Registry()
	errs := []error{dec.Int(PricingItemKeys.Priority, &i.Priority)}
	slots := i.slots()
	for n, key := range priceKeys() {
		errs = append(errs, reg.PricingPrice.DecodeField(dec, key, slots[n]))
	}
	i.Priority = ClampPriority(i.Priority)
	return errors.Join(errs...)
}

var PricingPriceKeys = struct {
	Prices string
}{"prices"}

// PricingPrice 是一组带窗口和优先级的候选价格。
type PricingPrice struct {
	BaseObject
	Prices []value.Price
}

type PricingPriceEntity interface {
	Object
	AsPricingPrice() *PricingPrice
}

var _ PricingPriceEntity = (*PricingPrice)(nil)

func NewPricingPrice() *PricingPrice {
	return &PricingPrice{BaseObject: NewBaseObject()}
}

func NewPricingPriceWithID(id string) *PricingPrice {
	return &PricingPrice{BaseObject: NewBaseObjectWithID(id)}
}

func (p *PricingPrice) AsPricingPrice() *PricingPrice { return p }

// Price 返回 t 时刻生效且优先级最高的价格。
func (p *PricingPrice) Price(t time.Time) (value.Price, bool) {
	var active []value.Price
	for _, pr := range p.Prices {
		if pr.IsActive(t) {
			active = append(active, pr)
		}
	}
	if len(active) == 0 {
		return value.Price{}, false
	}
	sort.SliceStable(active, func(i, j int) bool { return active[i].Priority > active[j].Priority })
	return active[0], true
}

func (p *PricingPrice) Copy() *PricingPrice {
	out := &PricingPrice{}
	out.copyFrom(p)
	return out
}

func (p *PricingPrice) Clone() Object { return p.Copy() }

func (p *PricingPrice) Update(from Object) {
	if src, ok := from.(PricingPriceEntity); ok && !isNil(src) {
		p.copyFrom(src.AsPricingPrice())
	}
}

func (p *PricingPrice) copyFrom(src *PricingPrice) {
	if src == p {
		return
	}
	p.UpdateBase(&src.BaseObject)
	if src.Prices == nil {
		p.Prices = nil
		return
	}
	p.Prices = append(make([]value.Price, 0, len(src.Prices)), src.Prices...)
}

func (p *PricingPrice) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(PricingPriceEntity)
	if !ok || isNil(r) {
		return true
	}
	return p.Diff(r.AsPricingPrice())
}

func (p *PricingPrice) Diff(rhs *PricingPrice) bool {
	if p == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return p.DiffBase(&rhs.BaseObject) || !samePrices(p.Prices, rhs.Prices)
}

func (p *PricingPrice) Translate(data Dictionary, reg *Registry) {
	p.TranslateBase(data, reg)
	Read(data).Prices(PricingPriceKeys.Prices, &p.Prices)
}

func (p *PricingPrice) AsDictionary() Dictionary {
	return Merge(p.BaseDictionary(), Dictionary{
		PricingPriceKeys.Prices: pricesDictionary(p.Prices),
	})
}

func (p *PricingPrice) EncodeFields(enc *Encoder) error {
	if err := p.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(PricingPriceKeys.Prices, p.Prices)
	return nil
}

func (p *PricingPrice) DecodeFields(dec *Decoder) error {
	if err := p.DecodeBase(dec); err != nil {
		return err
	}
	return dec.Prices(PricingPriceKeys.Prices, &p.Prices)
}

// byPriority 过滤 nil 后按优先级倒序稳定排序，返回新切片。
func byPriority[T Object](list []T, priority func(T) int) []T {
	out := make([]T, 0, len(list))
	for _, o := range list {
		if !isNil(o) {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return priority(out[i]) > priority(out[j]) })
	return out
}

func pricedItem(items []PricingItemEntity, t time.Time) PricingItemEntity {
	for _, it := range byPriority(items, func(i PricingItemEntity) int { return i.AsPricingItem().Priority }) {
		if _, ok := it.AsPricingItem().Price(t); ok {
			return it
		}
	}
	return nil
}

func itemPrice(items []PricingItemEntity, t time.Time) (value.Price, bool) {
	if it := pricedItem(items, t); it != nil {
		return it.AsPricingItem().Price(t)
	}
	return value.Price{}, false
}
