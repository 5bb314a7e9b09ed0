package dao

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"DAOKit/modules/value"
)

var PlaceHoursKeys = struct {
	Events, Holidays, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday string
}{
	Events:    "events",
	Holidays:  "holidays",
	Monday:    "monday",
	Tuesday:   "tuesday",
	Wednesday: "wednesday",
	Thursday:  "thursday",
	Friday:    "friday",
	Saturday:  "saturday",
	Sunday:    "sunday",
}

// PlaceHours 是场所的周营业时间表，节假日优先于周时间表。
type PlaceHours struct {
	BaseObject
	Events    []PlaceEventEntity
	Holidays  []PlaceHolidayEntity
	Monday    value.DayHours
	Tuesday   value.DayHours
	Wednesday value.DayHours
	Thursday  value.DayHours
	Friday    value.DayHours
	Saturday  value.DayHours
	Sunday    value.DayHours
}

type PlaceHoursEntity interface {
	Object
	AsPlaceHours() *PlaceHours
}

var _ PlaceHoursEntity = (*PlaceHours)(nil)

func NewPlaceHours() *PlaceHours {
	return &PlaceHours{BaseObject: NewBaseObject()}
}

func NewPlaceHoursWithID(id string) *PlaceHours {
	return &PlaceHours{BaseObject: NewBaseObjectWithID(id)}
}

func (h *PlaceHours) AsPlaceHours() *PlaceHours { return h }

// For 返回某个星期几的营业时间。
func (h *PlaceHours) For(day time.Weekday) value.DayHours {
	switch day {
	case time.Monday:
		return h.Monday
	case time.Tuesday:
		return h.Tuesday
	case time.Wednesday:
		return h.Wednesday
	case time.Thursday:
		return h.Thursday
	case time.Friday:
		return h.Friday
	case time.Saturday:
		return h.Saturday
	default:
		return h.Sunday
	}
}

// Today 返回 t 当天（t 所在时区）的营业时间；当天是节假日时用节假日的营业时间。
func (h *PlaceHours) Today(t time.Time) value.DayHours {
	for _, hol := range h.Holidays {
		if isNil(hol) {
			continue
		}
		if d := hol.AsPlaceHoliday(); sameDay(d.Date, t, t.Location()) {
			return d.Hours
		}
	}
	return h.For(t.Weekday())
}

func (h *PlaceHours) TodayOpen(t time.Time) *time.Time {
	day := h.Today(t)
	if day.Open == nil {
		return nil
	}
	open := day.Open.On(t)
	return &open
}

func (h *PlaceHours) TodayClose(t time.Time) *time.Time {
	day := h.Today(t)
	if day.Close == nil {
		return nil
	}
	closeAt := day.Close.On(t)
	return &closeAt
}

func (h *PlaceHours) days() []*value.DayHours {
	return []*value.DayHours{&h.Monday, &h.Tuesday, &h.Wednesday, &h.Thursday, &h.Friday, &h.Saturday, &h.Sunday}
}

func dayKeys() []string {
	k := PlaceHoursKeys
	return []string{k.Monday, k.Tuesday, k.Wednesday, k.Thursday, k.Friday, k.Saturday, k.Sunday}
}

func (h *PlaceHours) Copy() *PlaceHours {
	out := &PlaceHours{}
	out.copyFrom(h)
	return out
}

func (h *PlaceHours) Clone() Object { return h.Copy() }

func (h *PlaceHours) Update(from Object) {
	if src, ok := from.(PlaceHoursEntity); ok && !isNil(src) {
		h.copyFrom(src.AsPlaceHours())
	}
}

func (h *PlaceHours) copyFrom(src *PlaceHours) {
	if src == h {
		return
	}
	h.UpdateBase(&src.BaseObject)
	h.Events = CloneObjects(src.Events)
	h.Holidays = CloneObjects(src.Holidays)
	dst, from := h.days(), src.days()
	for i := range dst {
		*dst[i] = from[i].Copy()
	}
}

func (h *PlaceHours) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(PlaceHoursEntity)
	if !ok || isNil(r) {
		return true
	}
	return h.Diff(r.AsPlaceHours())
}

func (h *PlaceHours) Diff(rhs *PlaceHours) bool {
	if h == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	if h.DiffBase(&rhs.BaseObject) ||
		DiffObjects(h.Events, rhs.Events) ||
		DiffObjects(h.Holidays, rhs.Holidays) {
		return true
	}
	l, r := h.days(), rhs.days()
	for i := range l {
		if !l[i].Equal(*r[i]) {
			return true
		}
	}
	return false
}

func (h *PlaceHours) Translate(data Dictionary, reg *Registry) {
	reg = Resolve(reg)
	h.translate(data, reg, placeRoles(reg))
}

func (h *PlaceHours) translate(data Dictionary, reg *Registry, fam placeFamily) {
	h.TranslateBase(data, reg)
	r := Read(data)
	fam.event.ReadArray(data, PlaceHoursKeys.Events, reg, &h.Events)
	fam.holiday.ReadArray(data, PlaceHoursKeys.Holidays, reg, &h.Holidays)
	for i, key := range dayKeys() {
		r.DayHours(key, h.days()[i])
	}
}

func (h *PlaceHours) AsDictionary() Dictionary {
	out := Dictionary{
		PlaceHoursKeys.Events:   ObjectsDictionary(h.Events),
		PlaceHoursKeys.Holidays: ObjectsDictionary(h.Holidays),
	}
	for i, key := range dayKeys() {
		out[key] = h.days()[i].ToDictionary()
	}
	return Merge(h.BaseDictionary(), out)
}

func (h *PlaceHours) EncodeFields(enc *Encoder) error {
	if err := h.EncodeBase(enc); err != nil {
		return err
	}
	for i, key := range dayKeys() {
		enc.Put(key, *h.days()[i])
	}
	return errors.Join(
		PutObjects(enc, PlaceHoursKeys.Events, h.Events),
		PutObjects(enc, PlaceHoursKeys.Holidays, h.Holidays),
	)
}

func (h *PlaceHours) DecodeFields(dec *Decoder) error {
	return h.decode(dec, placeRoles(dec.Registry()))
}

func (h *PlaceHours) decode(dec *Decoder, fam placeFamily) error {
	if err := h.DecodeBase(dec); err != nil {
		return err
	}
	errs := []error{
		fam.event.DecodeArrayField(dec, PlaceHoursKeys.Events, &h.Events),
		fam.holiday.DecodeArrayField(dec, PlaceHoursKeys.Holidays, &h.Holidays),
	}
	for i, key := range dayKeys() {
		errs = append(errs, dec.DayHours(key, h.days()[i]))
	}
	return errors.Join(errs...)
}

var PlaceEventKeys = struct {
	EndDate, Name, StartDate, TimeZone, Type string
}{"endDate", "name", "startDate", "timeZone", "type"}

type PlaceEvent struct {
	BaseObject
	EndDate   time.Time
	Name      value.Text
	StartDate time.Time
	TimeZone  *time.Location
	Type      string
}

type PlaceEventEntity interface {
	Object
	AsPlaceEvent() *PlaceEvent
}

var _ PlaceEventEntity = (*PlaceEvent)(nil)

func NewPlaceEvent() *PlaceEvent {
	return NewPlaceEventWithID(uuid.NewString())
}

func NewPlaceEventWithID(id string) *PlaceEvent {
	now := time.Now().UTC().Truncate(value.TimePrecision)
	return &PlaceEvent{
		BaseObject: NewBaseObjectWithID(id),
		EndDate:    now,
		StartDate:  now,
		TimeZone:   time.UTC,
	}
}

func (e *PlaceEvent) AsPlaceEvent() *PlaceEvent { return e }

// StartTime 是 StartDate 在活动时区下的时刻。
func (e *PlaceEvent) StartTime() value.TimeOfDay {
	return timeOfDay(e.StartDate, e.TimeZone)
}

func (e *PlaceEvent) EndTime() value.TimeOfDay {
	return timeOfDay(e.EndDate, e.TimeZone)
}

func timeOfDay(t time.Time, loc *time.Location) value.TimeOfDay {
	if loc != nil {
		t = t.In(loc)
	}
	return value.NewTimeOfDay(t.Hour(), t.Minute())
}

func (e *PlaceEvent) Copy() *PlaceEvent {
	out := &PlaceEvent{}
	out.copyFrom(e)
	return out
}

func (e *PlaceEvent) Clone() Object { return e.Copy() }

func (e *PlaceEvent) Update(from Object) {
	if src, ok := from.(PlaceEventEntity); ok && !isNil(src) {
		e.copyFrom(src.AsPlaceEvent())
	}
}

func (e *PlaceEvent) copyFrom(src *PlaceEvent) {
	if src == e {
		return
	}
	e.UpdateBase(&src.BaseObject)
	e.EndDate = src.EndDate
	e.Name = src.Name.Copy()
	e.StartDate = src.StartDate
	e.TimeZone = src.TimeZone
	e.Type = src.Type
}

func (e *PlaceEvent) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(PlaceEventEntity)
	if !ok || isNil(r) {
		return true
	}
	return e.Diff(r.AsPlaceEvent())
}

func (e *PlaceEvent) Diff(rhs *PlaceEvent) bool {
	if e == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return e.DiffBase(&rhs.BaseObject) ||
		e.Type != rhs.Type ||
		!sameInstant(e.EndDate, rhs.EndDate) ||
		!sameInstant(e.StartDate, rhs.StartDate) ||
		!e.Name.Equal(rhs.Name) ||
		!sameTimeZone(e.TimeZone, rhs.TimeZone)
}

func (e *PlaceEvent) Translate(data Dictionary, reg *Registry) {
	e.TranslateBase(data, reg)
	r := Read(data)
	r.Time(PlaceEventKeys.EndDate, &e.EndDate)
	r.Text(PlaceEventKeys.Name, &e.Name)
	r.Time(PlaceEventKeys.StartDate, &e.StartDate)
	r.TimeZone(PlaceEventKeys.TimeZone, &e.TimeZone)
	r.String(PlaceEventKeys.Type, &e.Type)
}

func (e *PlaceEvent) AsDictionary() Dictionary {
	return Merge(e.BaseDictionary(), Dictionary{
		PlaceEventKeys.EndDate:   e.EndDate,
		PlaceEventKeys.Name:      e.Name.ToDictionary(),
		PlaceEventKeys.StartDate: e.StartDate,
		PlaceEventKeys.TimeZone:  timeZoneName(e.TimeZone),
		PlaceEventKeys.Type:      e.Type,
	})
}

func (e *PlaceEvent) EncodeFields(enc *Encoder) error {
	if err := e.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(PlaceEventKeys.EndDate, e.EndDate)
	enc.Put(PlaceEventKeys.Name, e.Name)
	enc.Put(PlaceEventKeys.StartDate, e.StartDate)
	enc.Put(PlaceEventKeys.TimeZone, e.TimeZone)
	enc.Put(PlaceEventKeys.Type, e.Type)
	return nil
}

func (e *PlaceEvent) DecodeFields(dec *Decoder) error {
	if err := e.DecodeBase(dec); err != nil {
		return err
	}
	return errors.Join(
		dec.Time(PlaceEventKeys.EndDate, &e.EndDate),
		dec.Text(PlaceEventKeys.Name, &e.Name),
		dec.Time(PlaceEventKeys.StartDate, &e.StartDate),
		dec.TimeZone(PlaceEventKeys.TimeZone, &e.TimeZone),
		dec.String(PlaceEventKeys.Type, &e.Type),
	)
}

var PlaceHolidayKeys = struct {
	Date, Hours string
}{"date", "hours"}

// PlaceHoliday 覆盖某一天的营业时间。
type PlaceHoliday struct {
	BaseObject
	Date  time.Time
	Hours value.DayHours
}

type PlaceHolidayEntity interface {
	Object
	AsPlaceHoliday() *PlaceHoliday
}

var _ PlaceHolidayEntity = (*PlaceHoliday)(nil)

func NewPlaceHoliday() *PlaceHoliday {
	return NewPlaceHolidayWithID(uuid.NewString())
}

func NewPlaceHolidayWithID(id string) *PlaceHoliday {
	y, m, d := time.Now().UTC().Date()
	return &PlaceHoliday{
		BaseObject: NewBaseObjectWithID(id),
		Date:       time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
	}
}

func (h *PlaceHoliday) AsPlaceHoliday() *PlaceHoliday { return h }

func (h *PlaceHoliday) Copy() *PlaceHoliday {
	out := &PlaceHoliday{}
	out.copyFrom(h)
	return out
}

func (h *PlaceHoliday) Clone() Object { return h.Copy() }

func (h *PlaceHoliday) Update(from Object) {
	if src, ok := from.(PlaceHolidayEntity); ok && !isNil(src) {
		h.copyFrom(src.AsPlaceHoliday())
	}
}

func (h *PlaceHoliday) copyFrom(src *PlaceHoliday) {
	if src == h {
		return
	}
	h.UpdateBase(&src.BaseObject)
	h.Date = src.Date
	h.Hours = src.Hours.Copy()
}

func (h *PlaceHoliday) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(PlaceHolidayEntity)
	if !ok || isNil(r) {
		return true
	}
	return h.Diff(r.AsPlaceHoliday())
}

func (h *PlaceHoliday) Diff(rhs *PlaceHoliday) bool {
	if h == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return h.DiffBase(&rhs.BaseObject) ||
		!sameInstant(h.Date, rhs.Date) ||
		!h.Hours.Equal(rhs.Hours)
}

func (h *PlaceHoliday) Translate(data Dictionary, reg *Registry) {
	h.TranslateBase(data, reg)
	r := Read(data)
	r.Time(PlaceHolidayKeys.Date, &h.Date)
	r.DayHours(PlaceHolidayKeys.Hours, &h.Hours)
}

func (h *PlaceHoliday) AsDictionary() Dictionary {
	return Merge(h.BaseDictionary(), Dictionary{
		PlaceHolidayKeys.Date:  h.Date,
		PlaceHolidayKeys.Hours: h.Hours.ToDictionary(),
	})
}

func (h *PlaceHoliday) EncodeFields(enc *Encoder) error {
	if err := h.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(PlaceHolidayKeys.Date, h.Date)
	enc.Put(PlaceHolidayKeys.Hours, h.Hours)
	return nil
}

func (h *PlaceHoliday) DecodeFields(dec *Decoder) error {
	if err := h.DecodeBase(dec); err != nil {
		return err
	}
	return errors.Join(
		dec.Time(PlaceHolidayKeys.Date, &h.Date),
		dec.DayHours(PlaceHolidayKeys.Hours, &h.Hours),
	)
}
