package dao

import (
	"errors"
	"sort"
	"time"

	"DAOKit/modules/value"
)

var EventKeys = struct {
	Attachments, Body, Chat, Days, Distribution, Enabled, Geopoint, MediaItems, Pricing, Title string
}{
	Attachments:  "attachments",
	Body:         "body",
	Chat:         "chat",
	Days:         "days",
	Distribution: "distribution",
	Enabled:      "enabled",
	Geopoint:     "geopoint",
	MediaItems:   "mediaItems",
	Pricing:      "pricing",
	Title:        "title",
}

// Event 是跨多天的活动。Days 始终按日期升序；Chat 和 Pricing 总是存在。
type Event struct {
	BaseObject
	Attachments  []MediaEntity
	Body         value.Text
	Chat         ChatEntity
	Days         []EventDayEntity
	Distribution Visibility
	Enabled      bool
	Geopoint     *value.Geopoint
	MediaItems   []MediaEntity
	Pricing      PricingEntity
	Title        value.Text
}

type EventEntity interface {
	Object
	AsEvent() *Event
}

var _ EventEntity = (*Event)(nil)

func NewEvent() *Event {
	e := &Event{BaseObject: NewBaseObject()}
	e.setDefaults()
	return e
}

func NewEventWithID(id string) *Event {
	e := &Event{BaseObject: NewBaseObjectWithID(id)}
	e.setDefaults()
	return e
}

func (e *Event) setDefaults() {
	e.Chat = NewChat()
	e.Distribution = VisibilityEveryone
	e.Pricing = NewPricing()
}

func (e *Event) AsEvent() *Event { return e }

// SetDays 替换并排序活动日。
func (e *Event) SetDays(days []EventDayEntity) {
	e.Days = days
	e.sortDays()
}

func (e *Event) sortDays() {
	sort.SliceStable(e.Days, func(i, j int) bool {
		return e.Days[i].AsEventDay().Date.Before(e.Days[j].AsEventDay().Date)
	})
}

// StartDate 是第一天的 00:00；没有活动日时为当前时间。
func (e *Event) StartDate() time.Time {
	if len(e.Days) == 0 {
		return time.Now()
	}
	return value.NewTimeOfDay(0, 0).On(e.Days[0].AsEventDay().Date)
}

// EndDate 是最后一天的 23:59；没有活动日时为当前时间。
func (e *Event) EndDate() time.Time {
	if len(e.Days) == 0 {
		return time.Now()
	}
	return value.NewTimeOfDay(23, 59).On(e.Days[len(e.Days)-1].AsEventDay().Date)
}

func (e *Event) Copy() *Event {
	out := &Event{}
	out.copyFrom(e)
	return out
}

func (e *Event) Clone() Object { return e.Copy() }

func (e *Event) Update(from Object) {
	if src, ok := from.(EventEntity); ok && !isNil(src) {
		e.copyFrom(src.AsEvent())
	}
}

func (e *Event) copyFrom(src *Event) {
	if src == e {
		return
	}
	e.UpdateBase(&src.BaseObject)
	e.Attachments = CloneObjects(src.Attachments)
	e.Body = src.Body.Copy()
	e.Chat = CloneObject(src.Chat)
	e.Days = CloneObjects(src.Days)
	e.Distribution = src.Distribution
	e.Enabled = src.Enabled
	e.Geopoint = copyGeopoint(src.Geopoint)
	e.MediaItems = CloneObjects(src.MediaItems)
	e.Pricing = CloneObject(src.Pricing)
	e.Title = src.Title.Copy()
}

func (e *Event) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(EventEntity)
	if !ok || isNil(r) {
		return true
	}
	return e.Diff(r.AsEvent())
}

func (e *Event) Diff(rhs *Event) bool {
	if e == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return e.DiffBase(&rhs.BaseObject) ||
		e.Distribution != rhs.Distribution ||
		e.Enabled != rhs.Enabled ||
		!e.Body.Equal(rhs.Body) ||
		!e.Title.Equal(rhs.Title) ||
		!sameGeopoint(e.Geopoint, rhs.Geopoint) ||
		DiffObject(e.Chat, rhs.Chat) ||
		DiffObject(e.Pricing, rhs.Pricing) ||
		DiffObjectSet(e.Attachments, rhs.Attachments) ||
		DiffObjectSet(e.Days, rhs.Days) ||
		DiffObjectSet(e.MediaItems, rhs.MediaItems)
}

func (e *Event) Translate(data Dictionary, reg *Registry) {
	reg = Resolve(reg)
	e.TranslateBase(data, reg)
	r := Read(data)
	reg.Media.ReadArray(data, EventKeys.Attachments, reg, &e.Attachments)
	r.Text(EventKeys.Body, &e.Body)
	reg.Chat.ReadOwned(data, EventKeys.Chat, reg, &e.Chat)
	if reg.EventDay.ReadArray(data, EventKeys.Days, reg, &e.Days) {
		e.sortDays()
	}
	ReadStringEnum(r, EventKeys.Distribution, &e.Distribution)
	r.Bool(EventKeys.Enabled, &e.Enabled)
	r.Geopoint(EventKeys.Geopoint, &e.Geopoint)
	reg.Media.ReadArray(data, EventKeys.MediaItems, reg, &e.MediaItems)
	reg.Pricing.ReadOwned(data, EventKeys.Pricing, reg, &e.Pricing)
	r.Text(EventKeys.Title, &e.Title)
}

func (e *Event) AsDictionary() Dictionary {
	return Merge(e.BaseDictionary(), Dictionary{
		EventKeys.Attachments:  ObjectsDictionary(e.Attachments),
		EventKeys.Body:         e.Body.ToDictionary(),
		EventKeys.Chat:         ObjectDictionary(e.Chat),
		EventKeys.Days:         ObjectsDictionary(e.Days),
		EventKeys.Distribution: string(e.Distribution),
		EventKeys.Enabled:      e.Enabled,
		EventKeys.Geopoint:     geopointDictionary(e.Geopoint),
		EventKeys.MediaItems:   ObjectsDictionary(e.MediaItems),
		EventKeys.Pricing:      ObjectDictionary(e.Pricing),
		EventKeys.Title:        e.Title.ToDictionary(),
	})
}

func (e *Event) EncodeFields(enc *Encoder) error {
	if err := e.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(EventKeys.Body, e.Body)
	enc.Put(EventKeys.Distribution, string(e.Distribution))
	enc.Put(EventKeys.Enabled, e.Enabled)
	enc.Put(EventKeys.Geopoint, e.Geopoint)
	enc.Put(EventKeys.Title, e.Title)
	return errors.Join(
		PutObjects(enc, EventKeys.Attachments, e.Attachments),
		PutObject(enc, EventKeys.Chat, e.Chat),
		PutObjects(enc, EventKeys.Days, e.Days),
		PutObjects(enc, EventKeys.MediaItems, e.MediaItems),
		PutObject(enc, EventKeys.Pricing, e.Pricing),
	)
}

func (e *Event) DecodeFields(dec *Decoder) error {
	if err := e.DecodeBase(dec); err != nil {
		return err
	}
	reg := dec.Registry()
	err := errors.Join(
		reg.Media.DecodeArrayField(dec, EventKeys.Attachments, &e.Attachments),
		dec.Text(EventKeys.Body, &e.Body),
		decodeOwned(reg.Chat, dec, EventKeys.Chat, &e.Chat),
		reg.EventDay.DecodeArrayField(dec, EventKeys.Days, &e.Days),
		DecodeStringEnum(dec, EventKeys.Distribution, &e.Distribution),
		dec.Bool(EventKeys.Enabled, &e.Enabled),
		dec.Geopoint(EventKeys.Geopoint, &e.Geopoint),
		reg.Media.DecodeArrayField(dec, EventKeys.MediaItems, &e.MediaItems),
		decodeOwned(reg.Pricing, dec, EventKeys.Pricing, &e.Pricing),
		dec.Text(EventKeys.Title, &e.Title),
	)
	e.sortDays()
	return err
}

var EventDayKeys = struct {
	Attachments, Body, Chat, Date, Distribution, Geopoint, Items, MediaItems, Notes, Title string
}{
	Attachments:  "attachments",
	Body:         "body",
	Chat:         "chat",
	Date:         "date",
	Distribution: "distribution",
	Geopoint:     "geopoint",
	Items:        "items",
	MediaItems:   "mediaItems",
	Notes:        "notes",
	Title:        "title",
}

// EventDay 是活动中的一天，Items 始终按开始时刻升序。
type EventDay struct {
	BaseObject
	Attachments  []MediaEntity
	Body         value.Text
	Chat         ChatEntity
	Date         time.Time
	Distribution Visibility
	Geopoint     *value.Geopoint
	Items        []EventDayItemEntity
	MediaItems   []MediaEntity
	Notes        []string
	Title        value.Text
}

type EventDayEntity interface {
	Object
	AsEventDay() *EventDay
}

var _ EventDayEntity = (*EventDay)(nil)

func NewEventDay() *EventDay {
	d := &EventDay{BaseObject: NewBaseObject()}
	d.setDefaults()
	return d
}

func NewEventDayWithID(id string) *EventDay {
	d := &EventDay{BaseObject: NewBaseObjectWithID(id)}
	d.setDefaults()
	return d
}

func (d *EventDay) setDefaults() {
	d.Chat = NewChat()
	d.Date = time.Now().UTC().Truncate(value.TimePrecision)
	d.Distribution = VisibilityEveryone
}

func (d *EventDay) AsEventDay() *EventDay { return d }

func (d *EventDay) SetItems(items []EventDayItemEntity) {
	d.Items = items
	d.sortItems()
}

func (d *EventDay) sortItems() {
	sort.SliceStable(d.Items, func(i, j int) bool {
		return d.Items[i].AsEventDayItem().StartTime.Minutes() < d.Items[j].AsEventDayItem().StartTime.Minutes()
	})
}

// StartTime 是第一个条目在当天的开始时间；没有条目时为 Date。
func (d *EventDay) StartTime() time.Time {
	if len(d.Items) == 0 {
		return d.Date
	}
	return d.Items[0].AsEventDayItem().StartTime.On(d.Date)
}

func (d *EventDay) EndTime() time.Time {
	if len(d.Items) == 0 {
		return d.Date
	}
	return d.Items[len(d.Items)-1].AsEventDayItem().EndTime.On(d.Date)
}

func (d *EventDay) Copy() *EventDay {
	out := &EventDay{}
	out.copyFrom(d)
	return out
}

func (d *EventDay) Clone() Object { return d.Copy() }

func (d *EventDay) Update(from Object) {
	if src, ok := from.(EventDayEntity); ok && !isNil(src) {
		d.copyFrom(src.AsEventDay())
	}
}

func (d *EventDay) copyFrom(src *EventDay) {
	if src == d {
		return
	}
	d.UpdateBase(&src.BaseObject)
	d.Attachments = CloneObjects(src.Attachments)
	d.Body = src.Body.Copy()
	d.Chat = CloneObject(src.Chat)
	d.Date = src.Date
	d.Distribution = src.Distribution
	d.Geopoint = copyGeopoint(src.Geopoint)
	d.Items = CloneObjects(src.Items)
	d.MediaItems = CloneObjects(src.MediaItems)
	d.Notes = copyStrings(src.Notes)
	d.Title = src.Title.Copy()
}

func (d *EventDay) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(EventDayEntity)
	if !ok || isNil(r) {
		return true
	}
	return d.Diff(r.AsEventDay())
}

func (d *EventDay) Diff(rhs *EventDay) bool {
	if d == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return d.DiffBase(&rhs.BaseObject) ||
		d.Distribution != rhs.Distribution ||
		!sameInstant(d.Date, rhs.Date) ||
		!d.Body.Equal(rhs.Body) ||
		!d.Title.Equal(rhs.Title) ||
		!sameGeopoint(d.Geopoint, rhs.Geopoint) ||
		len(d.Notes) != len(rhs.Notes) ||
		HasDiffElements(d.Notes, rhs.Notes, func(a, b string) bool { return a != b }) ||
		DiffObject(d.Chat, rhs.Chat) ||
		DiffObjectSet(d.Attachments, rhs.Attachments) ||
		DiffObjectSet(d.Items, rhs.Items) ||
		DiffObjectSet(d.MediaItems, rhs.MediaItems)
}

func (d *EventDay) Translate(data Dictionary, reg *Registry) {
	reg = Resolve(reg)
	d.TranslateBase(data, reg)
	r := Read(data)
	reg.Media.ReadArray(data, EventDayKeys.Attachments, reg, &d.Attachments)
	r.Text(EventDayKeys.Body, &d.Body)
	reg.Chat.ReadOwned(data, EventDayKeys.Chat, reg, &d.Chat)
	r.Time(EventDayKeys.Date, &d.Date)
	ReadStringEnum(r, EventDayKeys.Distribution, &d.Distribution)
	r.Geopoint(EventDayKeys.Geopoint, &d.Geopoint)
	if reg.EventDayItem.ReadArray(data, EventDayKeys.Items, reg, &d.Items) {
		d.sortItems()
	}
	reg.Media.ReadArray(data, EventDayKeys.MediaItems, reg, &d.MediaItems)
	r.Strings(EventDayKeys.Notes, &d.Notes)
	r.Text(EventDayKeys.Title, &d.Title)
}

func (d *EventDay) AsDictionary() Dictionary {
	return Merge(d.BaseDictionary(), Dictionary{
		EventDayKeys.Attachments:  ObjectsDictionary(d.Attachments),
		EventDayKeys.Body:         d.Body.ToDictionary(),
		EventDayKeys.Chat:         ObjectDictionary(d.Chat),
		EventDayKeys.Date:         d.Date,
		EventDayKeys.Distribution: string(d.Distribution),
		EventDayKeys.Geopoint:     geopointDictionary(d.Geopoint),
		EventDayKeys.Items:        ObjectsDictionary(d.Items),
		EventDayKeys.MediaItems:   ObjectsDictionary(d.MediaItems),
		EventDayKeys.Notes:        copyStrings(d.Notes),
		EventDayKeys.Title:        d.Title.ToDictionary(),
	})
}

func (d *EventDay) EncodeFields(enc *Encoder) error {
	if err := d.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(EventDayKeys.Body, d.Body)
	enc.Put(EventDayKeys.Date, d.Date)
	enc.Put(EventDayKeys.Distribution, string(d.Distribution))
	enc.Put(EventDayKeys.Geopoint, d.Geopoint)
	enc.Put(EventDayKeys.Notes, nonNilStrings(d.Notes))
	enc.Put(EventDayKeys.Title, d.Title)
	return errors.Join(
		PutObjects(enc, EventDayKeys.Attachments, d.Attachments),
		PutObject(enc, EventDayKeys.Chat, d.Chat),
		PutObjects(enc, EventDayKeys.Items, d.Items),
		PutObjects(enc, EventDayKeys.MediaItems, d.MediaItems),
	)
}

func (d *EventDay) DecodeFields(dec *Decoder) error {
	if err := d.DecodeBase(dec); err != nil {
		return err
	}
	reg := dec.Registry()
	err := errors.Join(
		reg.Media.DecodeArrayField(dec, EventDayKeys.Attachments, &d.Attachments),
		dec.Text(EventDayKeys.Body, &d.Body),
		decodeOwned(reg.Chat, dec, EventDayKeys.Chat, &d.Chat),
		dec.Time(EventDayKeys.Date, &d.Date),
		DecodeStringEnum(dec, EventDayKeys.Distribution, &d.Distribution),
		dec.Geopoint(EventDayKeys.Geopoint, &d.Geopoint),
		reg.EventDayItem.DecodeArrayField(dec, EventDayKeys.Items, &d.Items),
		reg.Media.DecodeArrayField(dec, EventDayKeys.MediaItems, &d.MediaItems),
		dec.Strings(EventDayKeys.Notes, &d.Notes),
		dec.Text(EventDayKeys.Title, &d.Title),
	)
	d.sortItems()
	return err
}

var EventDayItemKeys = struct {
	Distribution, EndTime, Geopoint, StartTime, Subtitle, Title string
}{"distribution", "endTime", "geopoint", "startTime", "subtitle", "title"}

// EventDayItem 是某一天里的一个日程条目，起止只记录时刻。
type EventDayItem struct {
	BaseObject
	Distribution Visibility
	EndTime      value.TimeOfDay
	Geopoint     *value.Geopoint
	StartTime    value.TimeOfDay
	Subtitle     value.Text
	Title        value.Text
}

type EventDayItemEntity interface {
	Object
	AsEventDayItem() *EventDayItem
}

var _ EventDayItemEntity = (*EventDayItem)(nil)

func NewEventDayItem() *EventDayItem {
	return &EventDayItem{BaseObject: NewBaseObject(), Distribution: VisibilityEveryone}
}

func NewEventDayItemWithID(id string) *EventDayItem {
	return &EventDayItem{BaseObject: NewBaseObjectWithID(id), Distribution: VisibilityEveryone}
}

func (i *EventDayItem) AsEventDayItem() *EventDayItem { return i }

func (i *EventDayItem) Copy() *EventDayItem {
	out := &EventDayItem{}
	out.copyFrom(i)
	return out
}

func (i *EventDayItem) Clone() Object { return i.Copy() }

func (i *EventDayItem) Update(from Object) {
	if src, ok := from.(EventDayItemEntity); ok && !isNil(src) {
		i.copyFrom(src.AsEventDayItem())
	}
}

func (i *EventDayItem) copyFrom(src *EventDayItem) {
	if src == i {
		return
	}
	i.UpdateBase(&src.BaseObject)
	i.Distribution = src.Distribution
	i.EndTime = src.EndTime
	i.Geopoint = copyGeopoint(src.Geopoint)
	i.StartTime = src.StartTime
	i.Subtitle = src.Subtitle.Copy()
	i.Title = src.Title.Copy()
}

func (i *EventDayItem) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(EventDayItemEntity)
	if !ok || isNil(r) {
		return true
	}
	return i.Diff(r.AsEventDayItem())
}

func (i *EventDayItem) Diff(rhs *EventDayItem) bool {
	if i == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return i.DiffBase(&rhs.BaseObject) ||
		i.Distribution != rhs.Distribution ||
		i.EndTime != rhs.EndTime ||
		i.StartTime != rhs.StartTime ||
		!sameGeopoint(i.Geopoint, rhs.Geopoint) ||
		!i.Subtitle.Equal(rhs.Subtitle) ||
		!i.Title.Equal(rhs.Title)
}

func (i *EventDayItem) Translate(data Dictionary, reg *Registry) {
	i.TranslateBase(data, reg)
	r := Read(data)
	ReadStringEnum(r, EventDayItemKeys.Distribution, &i.Distribution)
	r.TimeOfDay(EventDayItemKeys.EndTime, &i.EndTime)
	r.Geopoint(EventDayItemKeys.Geopoint, &i.Geopoint)
	r.TimeOfDay(EventDayItemKeys.StartTime, &i.StartTime)
	r.Text(EventDayItemKeys.Subtitle, &i.Subtitle)
	r.Text(EventDayItemKeys.Title, &i.Title)
}

func (i *EventDayItem) AsDictionary() Dictionary {
	return Merge(i.BaseDictionary(), Dictionary{
		EventDayItemKeys.Distribution: string(i.Distribution),
		EventDayItemKeys.EndTime:      i.EndTime.String(),
		EventDayItemKeys.Geopoint:     geopointDictionary(i.Geopoint),
		EventDayItemKeys.StartTime:    i.StartTime.String(),
		EventDayItemKeys.Subtitle:     i.Subtitle.ToDictionary(),
		EventDayItemKeys.Title:        i.Title.ToDictionary(),
	})
}

func (i *EventDayItem) EncodeFields(enc *Encoder) error {
	if err := i.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(EventDayItemKeys.Distribution, string(i.Distribution))
	enc.Put(EventDayItemKeys.EndTime, i.EndTime)
	enc.Put(EventDayItemKeys.Geopoint, i.Geopoint)
	enc.Put(EventDayItemKeys.StartTime, i.StartTime)
	enc.Put(EventDayItemKeys.Subtitle, i.Subtitle)
	enc.Put(EventDayItemKeys.Title, i.Title)
	return nil
}

func (i *EventDayItem) DecodeFields(dec *Decoder) error {
	if err := i.DecodeBase(dec); err != nil {
		return err
	}
	return errors.Join(
		DecodeStringEnum(dec, EventDayItemKeys.Distribution, &i.Distribution),
		dec.TimeOfDay(EventDayItemKeys.EndTime, &i.EndTime),
		dec.Geopoint(EventDayItemKeys.Geopoint, &i.Geopoint),
		dec.TimeOfDay(EventDayItemKeys.StartTime, &i.StartTime),
		dec.Text(EventDayItemKeys.Subtitle, &i.Subtitle),
		dec.Text(EventDayItemKeys.Title, &i.Title),
	)
}
