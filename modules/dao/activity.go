package dao

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"DAOKit/modules/value"
)

var ActivityKeys = struct {
	BaseType, Beacons, Blackouts, Code, Name string
}{"baseType", "beacons", "blackouts", "code", "name"}

// Activity 是场所内的一项活动，BaseType 可选。
type Activity struct {
	BaseObject
	BaseType  ActivityTypeEntity
	Beacons   []BeaconEntity
	Blackouts []ActivityBlackoutEntity
	Code      string
	Name      value.Text
}

type ActivityEntity interface {
	Object
	AsActivity() *Activity
}

var _ ActivityEntity = (*Activity)(nil)

func NewActivity() *Activity {
	return &Activity{BaseObject: NewBaseObject()}
}

func NewActivityWithID(id string) *Activity {
	return &Activity{BaseObject: NewBaseObjectWithID(id)}
}

// NewActivityWithCode 以 code 作为 id。
func NewActivityWithCode(code string, name value.Text) *Activity {
	a := NewActivityWithID(code)
	a.Code = code
	a.Name = name
	return a
}

func (a *Activity) AsActivity() *Activity { return a }

// Blackout 返回 t 时刻生效的第一个停摆时段。
func (a *Activity) Blackout(t time.Time) ActivityBlackoutEntity {
	for _, b := range a.Blackouts {
		if !isNil(b) && b.AsActivityBlackout().IsActive(t) {
			return b
		}
	}
	return nil
}

func (a *Activity) Copy() *Activity {
	out := &Activity{}
	out.copyFrom(a)
	return out
}

func (a *Activity) Clone() Object { return a.Copy() }

func (a *Activity) Update(from Object) {
	if src, ok := from.(ActivityEntity); ok && !isNil(src) {
		a.copyFrom(src.AsActivity())
	}
}

func (a *Activity) copyFrom(src *Activity) {
	if src == a {
		return
	}
	a.UpdateBase(&src.BaseObject)
	a.BaseType = CloneObject(src.BaseType)
	a.Beacons = CloneObjects(src.Beacons)
	a.Blackouts = CloneObjects(src.Blackouts)
	a.Code = src.Code
	a.Name = src.Name.Copy()
}

func (a *Activity) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(ActivityEntity)
	if !ok || isNil(r) {
		return true
	}
	return a.Diff(r.AsActivity())
}

func (a *Activity) Diff(rhs *Activity) bool {
	if a == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return a.DiffBase(&rhs.BaseObject) ||
		a.Code != rhs.Code ||
		!a.Name.Equal(rhs.Name) ||
		DiffObject(a.BaseType, rhs.BaseType) ||
		DiffObjects(a.Beacons, rhs.Beacons) ||
		DiffObjects(a.Blackouts, rhs.Blackouts)
}

func (a *Activity) Translate(data Dictionary, reg *Registry) {
	reg = Resolve(reg)
	a.TranslateBase(data, reg)
	r := Read(data)
	reg.ActivityType.Read(data, ActivityKeys.BaseType, reg, &a.BaseType)
	reg.Beacon.ReadArray(data, ActivityKeys.Beacons, reg, &a.Beacons)
	reg.ActivityBlackout.ReadArray(data, ActivityKeys.Blackouts, reg, &a.Blackouts)
	r.String(ActivityKeys.Code, &a.Code)
	r.Text(ActivityKeys.Name, &a.Name)
}

func (a *Activity) AsDictionary() Dictionary {
	return Merge(a.BaseDictionary(), Dictionary{
		ActivityKeys.BaseType:  ObjectDictionary(a.BaseType),
		ActivityKeys.Beacons:   ObjectsDictionary(a.Beacons),
		ActivityKeys.Blackouts: ObjectsDictionary(a.Blackouts),
		ActivityKeys.Code:      a.Code,
		ActivityKeys.Name:      a.Name.ToDictionary(),
	})
}

func (a *Activity) EncodeFields(enc *Encoder) error {
	if err := a.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(ActivityKeys.Code, a.Code)
	enc.Put(ActivityKeys.Name, a.Name)
	return errors.Join(
		PutObject(enc, ActivityKeys.BaseType, a.BaseType),
		PutObjects(enc, ActivityKeys.Beacons, a.Beacons),
		PutObjects(enc, ActivityKeys.Blackouts, a.Blackouts),
	)
}

func (a *Activity) DecodeFields(dec *Decoder) error {
	if err := a.DecodeBase(dec); err != nil {
		return err
	}
	reg := dec.Registry()
	return errors.Join(
		reg.ActivityType.DecodeField(dec, ActivityKeys.BaseType, &a.BaseType),
		reg.Beacon.DecodeArrayField(dec, ActivityKeys.Beacons, &a.Beacons),
		reg.ActivityBlackout.DecodeArrayField(dec, ActivityKeys.Blackouts, &a.Blackouts),
		dec.String(ActivityKeys.Code, &a.Code),
		dec.Text(ActivityKeys.Name, &a.Name),
	)
}

var ActivityTypeKeys = struct {
	Code, Name string
}{"code", "name"}

type ActivityType struct {
	BaseObject
	Code string
	Name value.Text
}

type ActivityTypeEntity interface {
	Object
	AsActivityType() *ActivityType
}

var _ ActivityTypeEntity = (*ActivityType)(nil)

func NewActivityType() *ActivityType {
	return &ActivityType{BaseObject: NewBaseObject()}
}

func NewActivityTypeWithID(id string) *ActivityType {
	return &ActivityType{BaseObject: NewBaseObjectWithID(id)}
}

func (t *ActivityType) AsActivityType() *ActivityType { return t }

func (t *ActivityType) Copy() *ActivityType {
	out := &ActivityType{}
	out.copyFrom(t)
	return out
}

func (t *ActivityType) Clone() Object { return t.Copy() }

func (t *ActivityType) Update(from Object) {
	if src, ok := from.(ActivityTypeEntity); ok && !isNil(src) {
		t.copyFrom(src.AsActivityType())
	}
}

func (t *ActivityType) copyFrom(src *ActivityType) {
	if src == t {
		return
	}
	t.UpdateBase(&src.BaseObject)
	t.Code = src.Code
	t.Name = src.Name.Copy()
}

func (t *ActivityType) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(ActivityTypeEntity)
	if !ok || isNil(r) {
		return true
	}
	return t.Diff(r.AsActivityType())
}

func (t *ActivityType) Diff(rhs *ActivityType) bool {
	if t == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return t.DiffBase(&rhs.BaseObject) || t.Code != rhs.Code || !t.Name.Equal(rhs.Name)
}

func (t *ActivityType) Translate(data Dictionary, reg *Registry) {
	t.TranslateBase(data, reg)
	r := Read(data)
	r.String(ActivityTypeKeys.Code, &t.Code)
	r.Text(ActivityTypeKeys.Name, &t.Name)
}

func (t *ActivityType) AsDictionary() Dictionary {
	return Merge(t.BaseDictionary(), Dictionary{
		ActivityTypeKeys.Code: t.Code,
		ActivityTypeKeys.Name: t.Name.ToDictionary(),
	})
}

func (t *ActivityType) EncodeFields(enc *Encoder) error {
	if err := t.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(ActivityTypeKeys.Code, t.Code)
	enc.Put(ActivityTypeKeys.Name, t.Name)
	return nil
}

func (t *ActivityType) DecodeFields(dec *Decoder) error {
	if err := t.DecodeBase(dec); err != nil {
		return err
	}
	return errors.Join(
		dec.String(ActivityTypeKeys.Code, &t.Code),
		dec.Text(ActivityTypeKeys.Name, &t.Name),
	)
}

var ActivityBlackoutKeys = struct {
	EndTime, Message, StartTime string
}{"endTime", "message", "startTime"}

// ActivityBlackout 是活动暂停的时段，两端都可以不设置。
type ActivityBlackout struct {
	BaseObject
	EndTime   *time.Time
	Message   value.Text
	StartTime *time.Time
}

type ActivityBlackoutEntity interface {
	Object
	AsActivityBlackout() *ActivityBlackout
}

var _ ActivityBlackoutEntity = (*ActivityBlackout)(nil)

func NewActivityBlackout() *ActivityBlackout {
	return NewActivityBlackoutWithID(uuid.NewString())
}

func NewActivityBlackoutWithID(id string) *ActivityBlackout {
	return &ActivityBlackout{BaseObject: NewBaseObjectWithID(id)}
}

func (b *ActivityBlackout) AsActivityBlackout() *ActivityBlackout { return b }

// IsActive 未设置的一端不限制。
func (b *ActivityBlackout) IsActive(t time.Time) bool {
	var start, end time.Time
	if b.StartTime != nil {
		start = *b.StartTime
	}
	if b.EndTime != nil {
		end = *b.EndTime
	}
	return value.InWindow(start, end, t)
}

func (b *ActivityBlackout) Copy() *ActivityBlackout {
	out := &ActivityBlackout{}
	out.copyFrom(b)
	return out
}

func (b *ActivityBlackout) Clone() Object { return b.Copy() }

func (b *ActivityBlackout) Update(from Object) {
	if src, ok := from.(ActivityBlackoutEntity); ok && !isNil(src) {
		b.copyFrom(src.AsActivityBlackout())
	}
}

func (b *ActivityBlackout) copyFrom(src *ActivityBlackout) {
	if src == b {
		return
	}
	b.UpdateBase(&src.BaseObject)
	b.EndTime = copyTime(src.EndTime)
	b.Message = src.Message.Copy()
	b.StartTime = copyTime(src.StartTime)
}

func (b *ActivityBlackout) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(ActivityBlackoutEntity)
	if !ok || isNil(r) {
		return true
	}
	return b.Diff(r.AsActivityBlackout())
}

func (b *ActivityBlackout) Diff(rhs *ActivityBlackout) bool {
	if b == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return b.DiffBase(&rhs.BaseObject) ||
		!sameTime(b.EndTime, rhs.EndTime) ||
		!sameTime(b.StartTime, rhs.StartTime) ||
		!b.Message.Equal(rhs.Message)
}

func (b *ActivityBlackout) Translate(data Dictionary, reg *Registry) {
	b.TranslateBase(data, reg)
	r := Read(data)
	r.OptionalTime(ActivityBlackoutKeys.EndTime, &b.EndTime)
	r.Text(ActivityBlackoutKeys.Message, &b.Message)
	r.OptionalTime(ActivityBlackoutKeys.StartTime, &b.StartTime)
}

func (b *ActivityBlackout) AsDictionary() Dictionary {
	return Merge(b.BaseDictionary(), Dictionary{
		ActivityBlackoutKeys.EndTime:   TimeOrNil(b.EndTime),
		ActivityBlackoutKeys.Message:   b.Message.ToDictionary(),
		ActivityBlackoutKeys.StartTime: TimeOrNil(b.StartTime),
	})
}

func (b *ActivityBlackout) EncodeFields(enc *Encoder) error {
	if err := b.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(ActivityBlackoutKeys.EndTime, b.EndTime)
	enc.Put(ActivityBlackoutKeys.Message, b.Message)
	enc.Put(ActivityBlackoutKeys.StartTime, b.StartTime)
	return nil
}

func (b *ActivityBlackout) DecodeFields(dec *Decoder) error {
	if err := b.DecodeBase(dec); err != nil {
		return err
	}
	return errors.Join(
		dec.OptionalTime(ActivityBlackoutKeys.EndTime, &b.EndTime),
		dec.Text(ActivityBlackoutKeys.Message, &b.Message),
		dec.OptionalTime(ActivityBlackoutKeys.StartTime, &b.StartTime),
	)
}

var BeaconKeys = struct {
	Accuracy, Code, Distance, Major, Minor, Range string
}{"accuracy", "code", "distance", "major", "minor", "range"}

// 精度为负表示未知，按 50 米处理。
const beaconUnknownAccuracy = 50

type Beacon struct {
	BaseObject
	Accuracy float64
	Code     string
	Distance float64
	Major    int
	Minor    int
	Range    string
}

type BeaconEntity interface {
	Object
	AsBeacon() *Beacon
}

var _ BeaconEntity = (*Beacon)(nil)

func NewBeacon() *Beacon {
	return &Beacon{BaseObject: NewBaseObject()}
}

func NewBeaconWithID(id string) *Beacon {
	return &Beacon{BaseObject: NewBaseObjectWithID(id)}
}

func (b *Beacon) AsBeacon() *Beacon { return b }

func (b *Beacon) SetAccuracy(acc float64) {
	if acc < 0 {
		acc = beaconUnknownAccuracy
	}
	b.Accuracy = acc
}

func (b *Beacon) Copy() *Beacon {
	out := &Beacon{}
	out.copyFrom(b)
	return out
}

func (b *Beacon) Clone() Object { return b.Copy() }

func (b *Beacon) Update(from Object) {
	if src, ok := from.(BeaconEntity); ok && !isNil(src) {
		b.copyFrom(src.AsBeacon())
	}
}

func (b *Beacon) copyFrom(src *Beacon) {
	if src == b {
		return
	}
	b.UpdateBase(&src.BaseObject)
	b.Accuracy = src.Accuracy
	b.Code = src.Code
	b.Distance = src.Distance
	b.Major = src.Major
	b.Minor = src.Minor
	b.Range = src.Range
}

func (b *Beacon) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(BeaconEntity)
	if !ok || isNil(r) {
		return true
	}
	return b.Diff(r.AsBeacon())
}

func (b *Beacon) Diff(rhs *Beacon) bool {
	if b == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return b.DiffBase(&rhs.BaseObject) ||
		b.Accuracy != rhs.Accuracy ||
		b.Code != rhs.Code ||
		b.Distance != rhs.Distance ||
		b.Major != rhs.Major ||
		b.Minor != rhs.Minor ||
		b.Range != rhs.Range
}

func (b *Beacon) Translate(data Dictionary, reg *Registry) {
	b.TranslateBase(data, reg)
	r := Read(data)
	var acc float64
	if r.Float(BeaconKeys.Accuracy, &acc) {
		b.SetAccuracy(acc)
	}
	r.String(BeaconKeys.Code, &b.Code)
	r.Float(BeaconKeys.Distance, &b.Distance)
	r.Int(BeaconKeys.Major, &b.Major)
	r.Int(BeaconKeys.Minor, &b.Minor)
	r.String(BeaconKeys.Range, &b.Range)
}

func (b *Beacon) AsDictionary() Dictionary {
	return Merge(b.BaseDictionary(), Dictionary{
		BeaconKeys.Accuracy: b.Accuracy,
		BeaconKeys.Code:     b.Code,
		BeaconKeys.Distance: b.Distance,
		BeaconKeys.Major:    b.Major,
		BeaconKeys.Minor:    b.Minor,
		BeaconKeys.Range:    b.Range,
	})
}

func (b *Beacon) EncodeFields(enc *Encoder) error {
	if err := b.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(BeaconKeys.Accuracy, b.Accuracy)
	enc.Put(BeaconKeys.Code, b.Code)
	enc.Put(BeaconKeys.Distance, b.Distance)
	enc.Put(BeaconKeys.Major, b.Major)
	enc.Put(BeaconKeys.Minor, b.Minor)
	enc.Put(BeaconKeys.Range, b.Range)
	return nil
}

func (b *Beacon) DecodeFields(dec *Decoder) error {
	if err := b.DecodeBase(dec); err != nil {
		return err
	}
	err := errors.Join(
		dec.Float(BeaconKeys.Accuracy, &b.Accuracy),
		dec.String(BeaconKeys.Code, &b.Code),
		dec.Float(BeaconKeys.Distance, &b.Distance),
		dec.Int(BeaconKeys.Major, &b.Major),
		dec.Int(BeaconKeys.Minor, &b.Minor),
		dec.String(BeaconKeys.Range, &b.Range),
	)
	b.SetAccuracy(b.Accuracy)
	return err
}
