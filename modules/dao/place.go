package dao

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"DAOKit/modules/value"
)

var PlaceKeys = struct {
	Activities, Address, Alerts, Code, Geohashes, Geopoint, Hours, Name, Phone, Section, Statuses, TimeZone string
}{
	Activities: "activities",
	Address:    "address",
	Alerts:     "alerts",
	Code:       "code",
	Geohashes:  "geohashes",
	Geopoint:   "geopoint",
	Hours:      "hours",
	Name:       "name",
	Phone:      "phone",
	Section:    "section",
	Statuses:   "statuses",
	TimeZone:   "timeZone",
}

// Place 是一个场所。Hours 总是存在；Geopoint 的字典形态固定为 latitude/longitude/altitude。
//
// 直接修改 Statuses 后应调用 SetStatuses，为空 id 的状态补上 "code:status:unixStart"。
type Place struct {
	BaseObject
	Activities []ActivityEntity
	Address    string
	Alerts     []AlertEntity
	Code       string
	Geohashes  []string
	Geopoint   *value.Geopoint
	Hours      PlaceHoursEntity
	Name       value.Text
	Phone      string
	Section    SectionEntity
	Statuses   []PlaceStatusEntity
	TimeZone   *time.Location
}

type PlaceEntity interface {
	Object
	AsPlace() *Place
}

var _ PlaceEntity = (*Place)(nil)

func NewPlace() *Place {
	return NewPlaceWithID(uuid.NewString())
}

func NewPlaceWithID(id string) *Place {
	return &Place{
		BaseObject: NewBaseObjectWithID(id),
		Hours:      NewPlaceHours(),
		TimeZone:   time.UTC,
	}
}

// NewPlaceWithCode 以 code 作为 id。
func NewPlaceWithCode(code string, name value.Text) *Place {
	p := NewPlaceWithID(code)
	p.Code = code
	p.Name = name
	return p
}

func (p *Place) AsPlace() *Place { return p }

// SetStatuses 替换状态列表并补齐空 id。
func (p *Place) SetStatuses(statuses []PlaceStatusEntity) {
	p.Statuses = statuses
	p.assignStatusIDs()
}

// placeFamily 是场所一族嵌套实体的工厂：Place 用 place* 角色，Center 用 center* 角色。
type placeFamily struct {
	hours   *Factory[PlaceHoursEntity]
	status  *Factory[PlaceStatusEntity]
	event   *Factory[PlaceEventEntity]
	holiday *Factory[PlaceHolidayEntity]
}

func placeRoles(reg *Registry) placeFamily {
	return placeFamily{hours: reg.PlaceHours, status: reg.PlaceStatus, event: reg.PlaceEvent, holiday: reg.PlaceHoliday}
}

func centerRoles(reg *Registry) placeFamily {
	return placeFamily{hours: reg.CenterHours, status: reg.CenterStatus, event: reg.CenterEvent, holiday: reg.CenterHoliday}
}

func (p *Place) assignStatusIDs() {
	for _, s := range p.Statuses {
		if isNil(s) {
			continue
		}
		st := s.AsPlaceStatus()
		if st.ID == "" {
			st.ID = fmt.Sprintf("%s:%s:%d", p.Code, st.Status, st.StartTime.Unix())
		}
	}
}

func (p *Place) location() *time.Location {
	if p.TimeZone == nil {
		return time.UTC
	}
	return p.TimeZone
}

// Status 返回 t 时刻生效的状态：窗口包含 t，或起止日期与 t 同一天的状态参与候选；
// 先按开始时间倒序，再按范围升序稳定排序，取第一个。没有候选时返回一个新的 open 状态。
func (p *Place) Status(t time.Time) PlaceStatusEntity {
	loc := p.location()
	if s := p.pickStatus(func(st *PlaceStatus) bool {
		return sameDay(t, st.StartTime, loc) ||
			sameDay(t, st.EndTime, loc) ||
			(st.StartTime.Before(t) && st.EndTime.After(t))
	}); s != nil {
		return s
	}
	return openStatus()
}

// StatusNow 只看窗口严格包含当前时刻的状态。
func (p *Place) StatusNow() PlaceStatusEntity {
	now := time.Now()
	if s := p.pickStatus(func(st *PlaceStatus) bool {
		return st.StartTime.Before(now) && st.EndTime.After(now)
	}); s != nil {
		return s
	}
	return openStatus()
}

// IsOpen 没有任何状态时视为营业。
func (p *Place) IsOpen(t time.Time) bool {
	if len(p.Statuses) == 0 {
		return true
	}
	return p.Status(t).AsPlaceStatus().IsOpen()
}

func (p *Place) StatusMessage(t time.Time) value.Text {
	return p.Status(t).AsPlaceStatus().Message.Copy()
}

func (p *Place) pickStatus(match func(*PlaceStatus) bool) PlaceStatusEntity {
	candidates := make([]PlaceStatusEntity, 0, len(p.Statuses))
	for _, s := range p.Statuses {
		if !isNil(s) && match(s.AsPlaceStatus()) {
			candidates = append(candidates, s)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].AsPlaceStatus().StartTime.After(candidates[j].AsPlaceStatus().StartTime)
	})
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].AsPlaceStatus().Scope < candidates[j].AsPlaceStatus().Scope
	})
	return candidates[0]
}

func openStatus() PlaceStatusEntity {
	s := Default().PlaceStatus.Create()
	s.AsPlaceStatus().Status = StatusOpen
	return s
}

func sameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

func (p *Place) Copy() *Place {
	out := &Place{}
	out.copyFrom(p)
	return out
}

func (p *Place) Clone() Object { return p.Copy() }

func (p *Place) Update(from Object) {
	if src, ok := from.(PlaceEntity); ok && !isNil(src) {
		p.copyFrom(src.AsPlace())
	}
}

func (p *Place) copyFrom(src *Place) {
	if src == p {
		return
	}
	p.UpdateBase(&src.BaseObject)
	p.Activities = CloneObjects(src.Activities)
	p.Address = src.Address
	p.Alerts = CloneObjects(src.Alerts)
	p.Code = src.Code
	p.Geohashes = copyStrings(src.Geohashes)
	p.Geopoint = copyGeopoint(src.Geopoint)
	if h := CloneObject(src.Hours); !isNil(h) {
		p.Hours = h
	}
	p.Name = src.Name.Copy()
	p.Phone = src.Phone
	p.Section = CloneObject(src.Section)
	p.Statuses = CloneObjects(src.Statuses)
	p.TimeZone = src.TimeZone
}

func (p *Place) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(PlaceEntity)
	if !ok || isNil(r) {
		return true
	}
	return p.Diff(r.AsPlace())
}

func (p *Place) Diff(rhs *Place) bool {
	if p == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return p.DiffBase(&rhs.BaseObject) ||
		p.Address != rhs.Address ||
		p.Code != rhs.Code ||
		p.Phone != rhs.Phone ||
		!p.Name.Equal(rhs.Name) ||
		!sameStrings(p.Geohashes, rhs.Geohashes) ||
		!sameGeopoint(p.Geopoint, rhs.Geopoint) ||
		!sameTimeZone(p.TimeZone, rhs.TimeZone) ||
		DiffObject(p.Hours, rhs.Hours) ||
		DiffObject(p.Section, rhs.Section) ||
		DiffObjects(p.Activities, rhs.Activities) ||
		DiffObjects(p.Alerts, rhs.Alerts) ||
		DiffObjects(p.Statuses, rhs.Statuses)
}

func (p *Place) Translate(data Dictionary, reg *Registry) {
	reg = Resolve(reg)
	p.translate(data, reg, placeRoles(reg))
}

func (p *Place) translate(data Dictionary, reg *Registry, fam placeFamily) {
	p.TranslateBase(data, reg)
	r := Read(data)
	reg.Activity.ReadArray(data, PlaceKeys.Activities, reg, &p.Activities)
	r.String(PlaceKeys.Address, &p.Address)
	reg.Alert.ReadArray(data, PlaceKeys.Alerts, reg, &p.Alerts)
	r.String(PlaceKeys.Code, &p.Code)
	r.Strings(PlaceKeys.Geohashes, &p.Geohashes)
	r.Geopoint(PlaceKeys.Geopoint, &p.Geopoint)
	fam.hours.ReadOwned(data, PlaceKeys.Hours, reg, &p.Hours)
	r.Text(PlaceKeys.Name, &p.Name)
	r.String(PlaceKeys.Phone, &p.Phone)
	reg.Section.Read(data, PlaceKeys.Section, reg, &p.Section)
	fam.status.ReadArray(data, PlaceKeys.Statuses, reg, &p.Statuses)
	r.TimeZone(PlaceKeys.TimeZone, &p.TimeZone)
	p.assignStatusIDs()
}

func (p *Place) AsDictionary() Dictionary {
	return Merge(p.BaseDictionary(), Dictionary{
		PlaceKeys.Activities: ObjectsDictionary(p.Activities),
		PlaceKeys.Address:    p.Address,
		PlaceKeys.Alerts:     ObjectsDictionary(p.Alerts),
		PlaceKeys.Code:       p.Code,
		PlaceKeys.Geohashes:  copyStrings(p.Geohashes),
		PlaceKeys.Geopoint:   geopointDictionary(p.Geopoint),
		PlaceKeys.Hours:      ObjectDictionary(p.Hours),
		PlaceKeys.Name:       p.Name.ToDictionary(),
		PlaceKeys.Phone:      p.Phone,
		PlaceKeys.Section:    ObjectDictionary(p.Section),
		PlaceKeys.Statuses:   ObjectsDictionary(p.Statuses),
		PlaceKeys.TimeZone:   timeZoneName(p.TimeZone),
	})
}

func (p *Place) EncodeFields(enc *Encoder) error {
	if err := p.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(PlaceKeys.Address, p.Address)
	enc.Put(PlaceKeys.Code, p.Code)
	enc.Put(PlaceKeys.Geohashes, nonNilStrings(p.Geohashes))
	enc.Put(PlaceKeys.Geopoint, p.Geopoint)
	enc.Put(PlaceKeys.Name, p.Name)
	enc.Put(PlaceKeys.Phone, p.Phone)
	enc.Put(PlaceKeys.TimeZone, p.TimeZone)
	return errors.Join(
		PutObjects(enc, PlaceKeys.Activities, p.Activities),
		PutObjects(enc, PlaceKeys.Alerts, p.Alerts),
		PutObject(enc, PlaceKeys.Hours, p.Hours),
		PutObject(enc, PlaceKeys.Section, p.Section),
		PutObjects(enc, PlaceKeys.Statuses, p.Statuses),
	)
}

func (p *Place) DecodeFields(dec *Decoder) error {
	return p.decode(dec, placeRoles(dec.Registry()))
}

func (p *Place) decode(dec *Decoder, fam placeFamily) error {
	if err := p.DecodeBase(dec); err != nil {
		return err
	}
	reg := dec.Registry()
	err := errors.Join(
		reg.Activity.DecodeArrayField(dec, PlaceKeys.Activities, &p.Activities),
		dec.String(PlaceKeys.Address, &p.Address),
		reg.Alert.DecodeArrayField(dec, PlaceKeys.Alerts, &p.Alerts),
		dec.String(PlaceKeys.Code, &p.Code),
		dec.Strings(PlaceKeys.Geohashes, &p.Geohashes),
		dec.Geopoint(PlaceKeys.Geopoint, &p.Geopoint),
		decodeOwned(fam.hours, dec, PlaceKeys.Hours, &p.Hours),
		dec.Text(PlaceKeys.Name, &p.Name),
		dec.String(PlaceKeys.Phone, &p.Phone),
		reg.Section.DecodeField(dec, PlaceKeys.Section, &p.Section),
		fam.status.DecodeArrayField(dec, PlaceKeys.Statuses, &p.Statuses),
		dec.TimeZone(PlaceKeys.TimeZone, &p.TimeZone),
	)
	p.assignStatusIDs()
	return err
}
