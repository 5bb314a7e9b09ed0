package dao

import (
	"github.com/google/uuid"

	"DAOKit/modules/value"
)

// Center 是场所的旧称，字段、字典键与状态/营业时间算法都和 Place 相同。
// 嵌套的营业时间、状态、活动、节假日走 center* 角色，可以单独绑定。
type Center struct {
	Place
}

type CenterEntity interface {
	PlaceEntity
	AsCenter() *Center
}

var _ CenterEntity = (*Center)(nil)

func NewCenter() *Center {
	return NewCenterWithID(uuid.NewString())
}

func NewCenterWithID(id string) *Center {
	c := &Center{Place: *NewPlaceWithID(id)}
	c.Hours = NewCenterHours()
	return c
}

// NewCenterWithCode 以 code 作为 id。
func NewCenterWithCode(code string, name value.Text) *Center {
	c := NewCenterWithID(code)
	c.Code = code
	c.Name = name
	return c
}

func (c *Center) AsCenter() *Center { return c }

func (c *Center) Copy() *Center {
	out := &Center{}
	out.copyFrom(&c.Place)
	return out
}

func (c *Center) Clone() Object { return c.Copy() }

func (c *Center) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(CenterEntity)
	if !ok || isNil(r) {
		return true
	}
	return c.Diff(r.AsCenter())
}

func (c *Center) Diff(rhs *Center) bool {
	if c == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return c.Place.Diff(&rhs.Place)
}

func (c *Center) Translate(data Dictionary, reg *Registry) {
	reg = Resolve(reg)
	c.translate(data, reg, centerRoles(reg))
}

func (c *Center) DecodeFields(dec *Decoder) error {
	return c.decode(dec, centerRoles(dec.Registry()))
}

// CenterHours 是 Center 的周营业时间表，Today/For/TodayOpen/TodayClose 与 PlaceHours 相同。
type CenterHours struct {
	PlaceHours
}

type CenterHoursEntity interface {
	PlaceHoursEntity
	AsCenterHours() *CenterHours
}

var _ CenterHoursEntity = (*CenterHours)(nil)

func NewCenterHours() *CenterHours {
	return &CenterHours{PlaceHours: *NewPlaceHours()}
}

func NewCenterHoursWithID(id string) *CenterHours {
	return &CenterHours{PlaceHours: *NewPlaceHoursWithID(id)}
}

func (h *CenterHours) AsCenterHours() *CenterHours { return h }

func (h *CenterHours) Copy() *CenterHours {
	out := &CenterHours{}
	out.copyFrom(&h.PlaceHours)
	return out
}

func (h *CenterHours) Clone() Object { return h.Copy() }

func (h *CenterHours) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(CenterHoursEntity)
	if !ok || isNil(r) {
		return true
	}
	return h.PlaceHours.Diff(&r.AsCenterHours().PlaceHours)
}

func (h *CenterHours) Translate(data Dictionary, reg *Registry) {
	reg = Resolve(reg)
	h.translate(data, reg, centerRoles(reg))
}

func (h *CenterHours) DecodeFields(dec *Decoder) error {
	return h.decode(dec, centerRoles(dec.Registry()))
}

type CenterStatus struct {
	PlaceStatus
}

type CenterStatusEntity interface {
	PlaceStatusEntity
	AsCenterStatus() *CenterStatus
}

var _ CenterStatusEntity = (*CenterStatus)(nil)

func NewCenterStatus() *CenterStatus {
	return NewCenterStatusWithID(uuid.NewString())
}

func NewCenterStatusWithID(id string) *CenterStatus {
	return &CenterStatus{PlaceStatus: *NewPlaceStatusWithID(id)}
}

func (s *CenterStatus) AsCenterStatus() *CenterStatus { return s }

func (s *CenterStatus) Copy() *CenterStatus {
	out := &CenterStatus{}
	out.copyFrom(&s.PlaceStatus)
	return out
}

func (s *CenterStatus) Clone() Object { return s.Copy() }

func (s *CenterStatus) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(CenterStatusEntity)
	if !ok || isNil(r) {
		return true
	}
	return s.PlaceStatus.Diff(&r.AsCenterStatus().PlaceStatus)
}

type CenterEvent struct {
	PlaceEvent
}

type CenterEventEntity interface {
	PlaceEventEntity
	AsCenterEvent() *CenterEvent
}

var _ CenterEventEntity = (*CenterEvent)(nil)

func NewCenterEvent() *CenterEvent {
	return NewCenterEventWithID(uuid.NewString())
}

func NewCenterEventWithID(id string) *CenterEvent {
	return &CenterEvent{PlaceEvent: *NewPlaceEventWithID(id)}
}

func (e *CenterEvent) AsCenterEvent() *CenterEvent { return e }

func (e *CenterEvent) Copy() *CenterEvent {
	out := &CenterEvent{}
	out.copyFrom(&e.PlaceEvent)
	return out
}

func (e *CenterEvent) Clone() Object { return e.Copy() }

func (e *CenterEvent) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(CenterEventEntity)
	if !ok || isNil(r) {
		return true
	}
	return e.PlaceEvent.Diff(&r.AsCenterEvent().PlaceEvent)
}

type CenterHoliday struct {
	PlaceHoliday
}

type CenterHolidayEntity interface {
	PlaceHolidayEntity
	AsCenterHoliday() *CenterHoliday
}

var _ CenterHolidayEntity = (*CenterHoliday)(nil)

func NewCenterHoliday() *CenterHoliday {
	return NewCenterHolidayWithID(uuid.NewString())
}

func NewCenterHolidayWithID(id string) *CenterHoliday {
	return &CenterHoliday{PlaceHoliday: *NewPlaceHolidayWithID(id)}
}

func (h *CenterHoliday) AsCenterHoliday() *CenterHoliday { return h }

func (h *CenterHoliday) Copy() *CenterHoliday {
	out := &CenterHoliday{}
	out.copyFrom(&h.PlaceHoliday)
	return out
}

func (h *CenterHoliday) Clone() Object { return h.Copy() }

func (h *CenterHoliday) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(CenterHolidayEntity)
	if !ok || isNil(r) {
		return true
	}
	return h.PlaceHoliday.Diff(&r.AsCenterHoliday().PlaceHoliday)
}
