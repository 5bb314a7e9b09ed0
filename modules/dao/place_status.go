package dao

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"DAOKit/modules/value"
)

var PlaceStatusKeys = struct {
	EndTime, Message, Scope, StartTime, Status string
}{"endTime", "message", "scope", "startTime", "status"}

// PlaceStatus 是场所在 [StartTime, EndTime] 内的状态，Scope 越窄越优先。
type PlaceStatus struct {
	BaseObject
	EndTime   time.Time
	Message   value.Text
	Scope     Scope
	StartTime time.Time
	Status    Status
}

type PlaceStatusEntity interface {
	Object
	AsPlaceStatus() *PlaceStatus
}

var _ PlaceStatusEntity = (*PlaceStatus)(nil)

func NewPlaceStatus() *PlaceStatus {
	return NewPlaceStatusWithID(uuid.NewString())
}

func NewPlaceStatusWithID(id string) *PlaceStatus {
	now := time.Now().UTC().Truncate(value.TimePrecision)
	return &PlaceStatus{
		BaseObject: NewBaseObjectWithID(id),
		EndTime:    now,
		Message:    value.NewText(""),
		Scope:      ScopePlace,
		StartTime:  now,
		Status:     StatusOpen,
	}
}

func (s *PlaceStatus) AsPlaceStatus() *PlaceStatus { return s }

func (s *PlaceStatus) IsOpen() bool { return s.Status.IsOpen() }

func (s *PlaceStatus) Copy() *PlaceStatus {
	out := &PlaceStatus{}
	out.copyFrom(s)
	return out
}

func (s *PlaceStatus) Clone() Object { return s.Copy() }

func (s *PlaceStatus) Update(from Object) {
	if src, ok := from.(PlaceStatusEntity); ok && !isNil(src) {
		s.copyFrom(src.AsPlaceStatus())
	}
}

func (s *PlaceStatus) copyFrom(src *PlaceStatus) {
	if src == s {
		return
	}
	s.UpdateBase(&src.BaseObject)
	s.EndTime = src.EndTime
	s.Message = src.Message.Copy()
	s.Scope = src.Scope
	s.StartTime = src.StartTime
	s.Status = src.Status
}

func (s *PlaceStatus) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(PlaceStatusEntity)
	if !ok || isNil(r) {
		return true
	}
	return s.Diff(r.AsPlaceStatus())
}

func (s *PlaceStatus) Diff(rhs *PlaceStatus) bool {
	if s == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return s.DiffBase(&rhs.BaseObject) ||
		s.Scope != rhs.Scope ||
		s.Status != rhs.Status ||
		!sameInstant(s.EndTime, rhs.EndTime) ||
		!sameInstant(s.StartTime, rhs.StartTime) ||
		!s.Message.Equal(rhs.Message)
}

func (s *PlaceStatus) Translate(data Dictionary, reg *Registry) {
	s.TranslateBase(data, reg)
	r := Read(data)
	r.Time(PlaceStatusKeys.EndTime, &s.EndTime)
	r.Text(PlaceStatusKeys.Message, &s.Message)
	ReadIntEnum(r, PlaceStatusKeys.Scope, &s.Scope)
	r.Time(PlaceStatusKeys.StartTime, &s.StartTime)
	ReadStringEnum(r, PlaceStatusKeys.Status, &s.Status)
}

func (s *PlaceStatus) AsDictionary() Dictionary {
	return Merge(s.BaseDictionary(), Dictionary{
		PlaceStatusKeys.EndTime:   s.EndTime,
		PlaceStatusKeys.Message:   s.Message.ToDictionary(),
		PlaceStatusKeys.Scope:     int(s.Scope),
		PlaceStatusKeys.StartTime: s.StartTime,
		PlaceStatusKeys.Status:    string(s.Status),
	})
}

func (s *PlaceStatus) EncodeFields(enc *Encoder) error {
	if err := s.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(PlaceStatusKeys.EndTime, s.EndTime)
	enc.Put(PlaceStatusKeys.Message, s.Message)
	enc.Put(PlaceStatusKeys.Scope, int(s.Scope))
	enc.Put(PlaceStatusKeys.StartTime, s.StartTime)
	enc.Put(PlaceStatusKeys.Status, string(s.Status))
	return nil
}

func (s *PlaceStatus) DecodeFields(dec *Decoder) error {
	if err := s.DecodeBase(dec); err != nil {
		return err
	}
	return errors.Join(
		dec.Time(PlaceStatusKeys.EndTime, &s.EndTime),
		dec.Text(PlaceStatusKeys.Message, &s.Message),
		DecodeIntEnum(dec, PlaceStatusKeys.Scope, &s.Scope),
		dec.Time(PlaceStatusKeys.StartTime, &s.StartTime),
		DecodeStringEnum(dec, PlaceStatusKeys.Status, &s.Status),
	)
}
