package dao

import (
	"errors"
	"time"

	"DAOKit/modules/value"
)

var AlertKeys = struct {
	EndTime, ImageURL, Name, Priority, Scope, StartTime, Status, TagLine, Title string
}{
	EndTime:   "endTime",
	ImageURL:  "imageUrl",
	Name:      "name",
	Priority:  "priority",
	Scope:     "scope",
	StartTime: "startTime",
	Status:    "status",
	TagLine:   "tagLine",
	Title:     "title",
}

const alertDefaultPriority = 100

// Alert 是面向场所/区域的提醒，默认窗口是哨兵起止时间，默认状态 tempClosed。
type Alert struct {
	BaseObject
	EndTime   time.Time
	ImageURL  value.URL
	Name      string
	Priority  int
	Scope     AlertScope
	StartTime time.Time
	Status    Status
	TagLine   value.Text
	Title     value.Text
}

type AlertEntity interface {
	Object
	AsAlert() *Alert
}

var _ AlertEntity = (*Alert)(nil)

func NewAlert() *Alert {
	a := &Alert{BaseObject: NewBaseObject()}
	a.setDefaults()
	return a
}

func NewAlertWithID(id string) *Alert {
	a := &Alert{BaseObject: NewBaseObjectWithID(id)}
	a.setDefaults()
	return a
}

func (a *Alert) setDefaults() {
	a.EndTime = value.DefaultEndTime
	a.Priority = alertDefaultPriority
	a.Scope = AlertScopeAll
	a.StartTime = value.DefaultStartTime
	a.Status = StatusTempClosed
}

func (a *Alert) AsAlert() *Alert { return a }

func (a *Alert) IsActive(t time.Time) bool {
	return value.InWindow(a.StartTime, a.EndTime, t)
}

func (a *Alert) Copy() *Alert {
	out := &Alert{}
	out.copyFrom(a)
	return out
}

func (a *Alert) Clone() Object { return a.Copy() }

func (a *Alert) Update(from Object) {
	if src, ok := from.(AlertEntity); ok && !isNil(src) {
		a.copyFrom(src.AsAlert())
	}
}

func (a *Alert) copyFrom(src *Alert) {
	if src == a {
		return
	}
	a.UpdateBase(&src.BaseObject)
	a.EndTime = src.EndTime
	a.ImageURL = src.ImageURL.Copy()
	a.Name = src.Name
	a.Priority = src.Priority
	a.Scope = src.Scope
	a.StartTime = src.StartTime
	a.Status = src.Status
	a.TagLine = src.TagLine.Copy()
	a.Title = src.Title.Copy()
}

func (a *Alert) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(AlertEntity)
	if !ok || isNil(r) {
		return true
	}
	return a.Diff(r.AsAlert())
}

func (a *Alert) Diff(rhs *Alert) bool {
	if a == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return a.DiffBase(&rhs.BaseObject) ||
		a.Name != rhs.Name ||
		a.Priority != rhs.Priority ||
		a.Scope != rhs.Scope ||
		a.Status != rhs.Status ||
		!sameInstant(a.EndTime, rhs.EndTime) ||
		!sameInstant(a.StartTime, rhs.StartTime) ||
		!a.ImageURL.Equal(rhs.ImageURL) ||
		!a.TagLine.Equal(rhs.TagLine) ||
		!a.Title.Equal(rhs.Title)
}

func (a *Alert) Translate(data Dictionary, reg *Registry) {
	a.TranslateBase(data, reg)
	r := Read(data)
	r.Time(AlertKeys.EndTime, &a.EndTime)
	r.URL(AlertKeys.ImageURL, &a.ImageURL)
	r.String(AlertKeys.Name, &a.Name)
	r.Int(AlertKeys.Priority, &a.Priority)
	ReadIntEnum(r, AlertKeys.Scope, &a.Scope)
	r.Time(AlertKeys.StartTime, &a.StartTime)
	ReadStringEnum(r, AlertKeys.Status, &a.Status)
	r.Text(AlertKeys.TagLine, &a.TagLine)
	r.Text(AlertKeys.Title, &a.Title)
}

func (a *Alert) AsDictionary() Dictionary {
	return Merge(a.BaseDictionary(), Dictionary{
		AlertKeys.EndTime:   a.EndTime,
		AlertKeys.ImageURL:  a.ImageURL.ToDictionary(),
		AlertKeys.Name:      a.Name,
		AlertKeys.Priority:  a.Priority,
		AlertKeys.Scope:     int(a.Scope),
		AlertKeys.StartTime: a.StartTime,
		AlertKeys.Status:    string(a.Status),
		AlertKeys.TagLine:   a.TagLine.ToDictionary(),
		AlertKeys.Title:     a.Title.ToDictionary(),
	})
}

func (a *Alert) EncodeFields(enc *Encoder) error {
	if err := a.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(AlertKeys.EndTime, a.EndTime)
	enc.Put(AlertKeys.ImageURL, a.ImageURL)
	enc.Put(AlertKeys.Name, a.Name)
	enc.Put(AlertKeys.Priority, a.Priority)
	enc.Put(AlertKeys.Scope, int(a.Scope))
	enc.Put(AlertKeys.StartTime, a.StartTime)
	enc.Put(AlertKeys.Status, string(a.Status))
	enc.Put(AlertKeys.TagLine, a.TagLine)
	enc.Put(AlertKeys.Title, a.Title)
	return nil
}

func (a *Alert) DecodeFields(dec *Decoder) error {
	if err := a.DecodeBase(dec); err != nil {
		return err
	}
	return errors.Join(
		dec.Time(AlertKeys.EndTime, &a.EndTime),
		dec.URL(AlertKeys.ImageURL, &a.ImageURL),
		dec.String(AlertKeys.Name, &a.Name),
		dec.Int(AlertKeys.Priority, &a.Priority),
		DecodeIntEnum(dec, AlertKeys.Scope, &a.Scope),
		dec.Time(AlertKeys.StartTime, &a.StartTime),
		DecodeStringEnum(dec, AlertKeys.Status, &a.Status),
		dec.Text(AlertKeys.TagLine, &a.TagLine),
		dec.Text(AlertKeys.Title, &a.Title),
	)
}
