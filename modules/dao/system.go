package dao

import (
	"errors"

	"github.com/google/uuid"

	"DAOKit/modules/value"
)

var SystemKeys = struct {
	CurrentState, EndPoints, HistoryState, Message, Name string
}{"currentState", "endPoints", "historyState", "message", "name"}

// System 是一个被监控的外部系统。EndPoints 的 System 字段回指本对象。
type System struct {
	BaseObject
	CurrentState SystemStateEntity
	EndPoints    []SystemEndPointEntity
	HistoryState []SystemStateEntity
	Message      string
	Name         string
}

type SystemEntity interface {
	Object
	AsSystem() *System
}

var _ SystemEntity = (*System)(nil)

func NewSystem() *System {
	return &System{BaseObject: NewBaseObject()}
}

func NewSystemWithID(id string) *System {
	return &System{BaseObject: NewBaseObjectWithID(id)}
}

func (s *System) AsSystem() *System { return s }

// State 优先取人工覆盖的状态，否则取当前状态；没有当前状态时为 none。
func (s *System) State() SystemStateColor {
	if isNil(s.CurrentState) {
		return SystemStateNone
	}
	return s.CurrentState.AsSystemState().Effective()
}

func (s *System) AddEndPoint(ep SystemEndPointEntity) {
	if isNil(ep) {
		return
	}
	ep.AsSystemEndPoint().System = s
	s.EndPoints = append(s.EndPoints, ep)
}

func (s *System) relink() {
	for _, ep := range s.EndPoints {
		ep.AsSystemEndPoint().System = s
	}
}

func (s *System) Copy() *System {
	out := &System{}
	out.copyFrom(s)
	return out
}

func (s *System) Clone() Object { return s.Copy() }

func (s *System) Update(from Object) {
	if src, ok := from.(SystemEntity); ok && !isNil(src) {
		s.copyFrom(src.AsSystem())
	}
}

func (s *System) copyFrom(src *System) {
	if src == s {
		return
	}
	s.UpdateBase(&src.BaseObject)
	s.CurrentState = CloneObject(src.CurrentState)
	s.EndPoints = CloneObjects(src.EndPoints)
	s.relink()
	s.HistoryState = CloneObjects(src.HistoryState)
	s.Message = src.Message
	s.Name = src.Name
}

func (s *System) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(SystemEntity)
	if !ok || isNil(r) {
		return true
	}
	return s.Diff(r.AsSystem())
}

func (s *System) Diff(rhs *System) bool {
	if s == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return s.DiffBase(&rhs.BaseObject) ||
		s.Message != rhs.Message ||
		s.Name != rhs.Name ||
		DiffObject(s.CurrentState, rhs.CurrentState) ||
		DiffObjects(s.EndPoints, rhs.EndPoints) ||
		DiffObjects(s.HistoryState, rhs.HistoryState)
}

func (s *System) Translate(data Dictionary, reg *Registry) {
	reg = Resolve(reg)
	s.TranslateBase(data, reg)
	r := Read(data)
	reg.SystemState.Read(data, SystemKeys.CurrentState, reg, &s.CurrentState)
	if reg.SystemEndPoint.ReadArray(data, SystemKeys.EndPoints, reg, &s.EndPoints) {
		s.relink()
	}
	reg.SystemState.ReadArray(data, SystemKeys.HistoryState, reg, &s.HistoryState)
	r.String(SystemKeys.Message, &s.Message)
	r.String(SystemKeys.Name, &s.Name)
}

func (s *System) AsDictionary() Dictionary {
	return Merge(s.BaseDictionary(), Dictionary{
		SystemKeys.CurrentState: ObjectDictionary(s.CurrentState),
		SystemKeys.EndPoints:    ObjectsDictionary(s.EndPoints),
		SystemKeys.HistoryState: ObjectsDictionary(s.HistoryState),
		SystemKeys.Message:      s.Message,
		SystemKeys.Name:         s.Name,
	})
}

func (s *System) EncodeFields(enc *Encoder) error {
	if err := s.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(SystemKeys.Message, s.Message)
	enc.Put(SystemKeys.Name, s.Name)
	return errors.Join(
		PutObject(enc, SystemKeys.CurrentState, s.CurrentState),
		PutObjects(enc, SystemKeys.EndPoints, s.EndPoints),
		PutObjects(enc, SystemKeys.HistoryState, s.HistoryState),
	)
}

func (s *System) DecodeFields(dec *Decoder) error {
	if err := s.DecodeBase(dec); err != nil {
		return err
	}
	reg := dec.Registry()
	err := errors.Join(
		reg.SystemState.DecodeField(dec, SystemKeys.CurrentState, &s.CurrentState),
		reg.SystemEndPoint.DecodeArrayField(dec, SystemKeys.EndPoints, &s.EndPoints),
		reg.SystemState.DecodeArrayField(dec, SystemKeys.HistoryState, &s.HistoryState),
		dec.String(SystemKeys.Message, &s.Message),
		dec.String(SystemKeys.Name, &s.Name),
	)
	s.relink()
	return err
}

var SystemEndPointKeys = struct {
	CurrentState, HistoryState, Name, System string
}{"currentState", "historyState", "name", "system"}

// SystemEndPoint 是系统的一个接入点。CurrentState 总是存在；System 是反向引用。
type SystemEndPoint struct {
	BaseObject
	CurrentState SystemStateEntity
	HistoryState []SystemStateEntity
	Name         string
	System       SystemEntity
}

type SystemEndPointEntity interface {
	Object
	AsSystemEndPoint() *SystemEndPoint
}

var _ SystemEndPointEntity = (*SystemEndPoint)(nil)

func NewSystemEndPoint() *SystemEndPoint {
	return &SystemEndPoint{BaseObject: NewBaseObject(), CurrentState: NewSystemState()}
}

func NewSystemEndPointWithID(id string) *SystemEndPoint {
	return &SystemEndPoint{BaseObject: NewBaseObjectWithID(id), CurrentState: NewSystemState()}
}

func (e *SystemEndPoint) AsSystemEndPoint() *SystemEndPoint { return e }

// LatestState 返回当前状态；当前状态缺失时返回历史里最近更新的一条。
func (e *SystemEndPoint) LatestState() SystemStateEntity {
	if !isNil(e.CurrentState) {
		return e.CurrentState
	}
	var latest SystemStateEntity
	for _, s := range e.HistoryState {
		if isNil(s) {
			continue
		}
		if isNil(latest) || s.Base().Meta.Updated.After(latest.Base().Meta.Updated) {
			latest = s
		}
	}
	return latest
}

func (e *SystemEndPoint) State() SystemStateColor {
	if s := e.LatestState(); !isNil(s) {
		return s.AsSystemState().Effective()
	}
	return SystemStateNone
}

func (e *SystemEndPoint) Copy() *SystemEndPoint {
	out := &SystemEndPoint{}
	out.copyFrom(e)
	return out
}

func (e *SystemEndPoint) Clone() Object { return e.Copy() }

func (e *SystemEndPoint) Update(from Object) {
	if src, ok := from.(SystemEndPointEntity); ok && !isNil(src) {
		e.copyFrom(src.AsSystemEndPoint())
	}
}

func (e *SystemEndPoint) copyFrom(src *SystemEndPoint) {
	if src == e {
		return
	}
	e.UpdateBase(&src.BaseObject)
	e.CurrentState = CloneObject(src.CurrentState)
	e.HistoryState = CloneObjects(src.HistoryState)
	e.Name = src.Name
	e.System = src.System
}

func (e *SystemEndPoint) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(SystemEndPointEntity)
	if !ok || isNil(r) {
		return true
	}
	return e.Diff(r.AsSystemEndPoint())
}

func (e *SystemEndPoint) Diff(rhs *SystemEndPoint) bool {
	if e == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return e.DiffBase(&rhs.BaseObject) ||
		e.Name != rhs.Name ||
		!SameRef(e.System, rhs.System) ||
		DiffObject(e.CurrentState, rhs.CurrentState) ||
		DiffObjects(e.HistoryState, rhs.HistoryState)
}

func (e *SystemEndPoint) Translate(data Dictionary, reg *Registry) {
	reg = Resolve(reg)
	e.TranslateBase(data, reg)
	reg.SystemState.ReadOwned(data, SystemEndPointKeys.CurrentState, reg, &e.CurrentState)
	reg.SystemState.ReadArray(data, SystemEndPointKeys.HistoryState, reg, &e.HistoryState)
	Read(data).String(SystemEndPointKeys.Name, &e.Name)
	reg.System.ReadRef(data, SystemEndPointKeys.System, &e.System)
}

func (e *SystemEndPoint) AsDictionary() Dictionary {
	return Merge(e.BaseDictionary(), Dictionary{
		SystemEndPointKeys.CurrentState: ObjectDictionary(e.CurrentState),
		SystemEndPointKeys.HistoryState: ObjectsDictionary(e.HistoryState),
		SystemEndPointKeys.Name:         e.Name,
		SystemEndPointKeys.System:       ObjectID(e.System),
	})
}

func (e *SystemEndPoint) EncodeFields(enc *Encoder) error {
	if err := e.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(SystemEndPointKeys.Name, e.Name)
	enc.Put(SystemEndPointKeys.System, ObjectID(e.System))
	return errors.Join(
		PutObject(enc, SystemEndPointKeys.CurrentState, e.CurrentState),
		PutObjects(enc, SystemEndPointKeys.HistoryState, e.HistoryState),
	)
}

func (e *SystemEndPoint) DecodeFields(dec *Decoder) error {
	if err := e.DecodeBase(dec); err != nil {
		return err
	}
	reg := dec.Registry()
	return errors.Join(
		decodeOwned(reg.SystemState, dec, SystemEndPointKeys.CurrentState, &e.CurrentState),
		reg.SystemState.DecodeArrayField(dec, SystemEndPointKeys.HistoryState, &e.HistoryState),
		dec.String(SystemEndPointKeys.Name, &e.Name),
		reg.System.DecodeRef(dec, SystemEndPointKeys.System, &e.System),
	)
}

var SystemStateKeys = struct {
	FailureCodes, FailureRate, State, StateOverride, TotalPoints string
}{"failureCodes", "failureRate", "state", "stateOverride", "totalPoints"}

// SystemState 是一次健康度采样。StateOverride 为 none 时不覆盖。
type SystemState struct {
	BaseObject
	FailureCodes  map[string]value.AnalyticsNumbers
	FailureRate   value.AnalyticsNumbers
	State         SystemStateColor
	StateOverride SystemStateColor
	TotalPoints   value.AnalyticsNumbers
}

type SystemStateEntity interface {
	Object
	AsSystemState() *SystemState
}

var _ SystemStateEntity = (*SystemState)(nil)

func NewSystemState() *SystemState {
	return NewSystemStateWithID(uuid.NewString())
}

func NewSystemStateWithID(id string) *SystemState {
	return &SystemState{
		BaseObject:    NewBaseObjectWithID(id),
		FailureCodes:  map[string]value.AnalyticsNumbers{},
		State:         SystemStateGreen,
		StateOverride: SystemStateNone,
	}
}

func (s *SystemState) AsSystemState() *SystemState { return s }

// Effective 返回覆盖后的状态。
func (s *SystemState) Effective() SystemStateColor {
	if s.StateOverride != SystemStateNone && s.StateOverride.Valid() {
		return s.StateOverride
	}
	return s.State
}

func (s *SystemState) Copy() *SystemState {
	out := &SystemState{}
	out.copyFrom(s)
	return out
}

func (s *SystemState) Clone() Object { return s.Copy() }

func (s *SystemState) Update(from Object) {
	if src, ok := from.(SystemStateEntity); ok && !isNil(src) {
		s.copyFrom(src.AsSystemState())
	}
}

func (s *SystemState) copyFrom(src *SystemState) {
	if src == s {
		return
	}
	s.UpdateBase(&src.BaseObject)
	s.FailureCodes = make(map[string]value.AnalyticsNumbers, len(src.FailureCodes))
	for k, n := range src.FailureCodes {
		s.FailureCodes[k] = n
	}
	s.FailureRate = src.FailureRate
	s.State = src.State
	s.StateOverride = src.StateOverride
	s.TotalPoints = src.TotalPoints
}

func (s *SystemState) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(SystemStateEntity)
	if !ok || isNil(r) {
		return true
	}
	return s.Diff(r.AsSystemState())
}

func (s *SystemState) Diff(rhs *SystemState) bool {
	if s == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	if s.DiffBase(&rhs.BaseObject) ||
		s.State != rhs.State ||
		s.StateOverride != rhs.StateOverride ||
		s.FailureRate != rhs.FailureRate ||
		s.TotalPoints != rhs.TotalPoints ||
		len(s.FailureCodes) != len(rhs.FailureCodes) {
		return true
	}
	for k, n := range s.FailureCodes {
		if o, ok := rhs.FailureCodes[k]; !ok || o != n {
			return true
		}
	}
	return false
}

func (s *SystemState) Translate(data Dictionary, reg *Registry) {
	s.TranslateBase(data, reg)
	r := Read(data)
	r.NumbersMap(SystemStateKeys.FailureCodes, &s.FailureCodes)
	r.Numbers(SystemStateKeys.FailureRate, &s.FailureRate)
	ReadStringEnum(r, SystemStateKeys.State, &s.State)
	ReadStringEnum(r, SystemStateKeys.StateOverride, &s.StateOverride)
	r.Numbers(SystemStateKeys.TotalPoints, &s.TotalPoints)
}

func (s *SystemState) AsDictionary() Dictionary {
	return Merge(s.BaseDictionary(), Dictionary{
		SystemStateKeys.FailureCodes:  numbersMapDictionary(s.FailureCodes),
		SystemStateKeys.FailureRate:   s.FailureRate.ToDictionary(),
		SystemStateKeys.State:         string(s.State),
		SystemStateKeys.StateOverride: string(s.StateOverride),
		SystemStateKeys.TotalPoints:   s.TotalPoints.ToDictionary(),
	})
}

func (s *SystemState) EncodeFields(enc *Encoder) error {
	if err := s.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(SystemStateKeys.FailureCodes, s.FailureCodes)
	enc.Put(SystemStateKeys.FailureRate, s.FailureRate)
	enc.Put(SystemStateKeys.State, string(s.State))
	enc.Put(SystemStateKeys.StateOverride, string(s.StateOverride))
	enc.Put(SystemStateKeys.TotalPoints, s.TotalPoints)
	return nil
}

func (s *SystemState) DecodeFields(dec *Decoder) error {
	if err := s.DecodeBase(dec); err != nil {
		return err
	}
	return errors.Join(
		dec.NumbersMap(SystemStateKeys.FailureCodes, &s.FailureCodes),
		dec.Numbers(SystemStateKeys.FailureRate, &s.FailureRate),
		DecodeStringEnum(dec, SystemStateKeys.State, &s.State),
		DecodeStringEnum(dec, SystemStateKeys.StateOverride, &s.StateOverride),
		dec.Numbers(SystemStateKeys.TotalPoints, &s.TotalPoints),
	)
}
