package dao

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"DAOKit/modules/value"
)

var AppEventKeys = struct {
	EndTime, Priority, StartTime, Title string
}{"endTime", "priority", "startTime", "title"}

// AppEvent 是应用内的一次运营活动，默认窗口是哨兵起止时间。
type AppEvent struct {
	BaseObject
	EndTime   time.Time
	Priority  int
	StartTime time.Time
	Title     value.Text
}

type AppEventEntity interface {
	Object
	AsAppEvent() *AppEvent
}

var _ AppEventEntity = (*AppEvent)(nil)

func NewAppEvent() *AppEvent {
	return &AppEvent{
		BaseObject: NewBaseObject(),
		EndTime:    value.DefaultEndTime,
		Priority:   PriorityNormal,
		StartTime:  value.DefaultStartTime,
	}
}

func NewAppEventWithID(id string) *AppEvent {
	e := NewAppEvent()
	e.ID = id
	return e
}

func (e *AppEvent) AsAppEvent() *AppEvent { return e }

func (e *AppEvent) Copy() *AppEvent {
	out := &AppEvent{}
	out.copyFrom(e)
	return out
}

func (e *AppEvent) Clone() Object { return e.Copy() }

func (e *AppEvent) Update(from Object) {
	if src, ok := from.(AppEventEntity); ok && !isNil(src) {
		e.copyFrom(src.AsAppEvent())
	}
}

func (e *AppEvent) copyFrom(src *AppEvent) {
	if src == e {
		return
	}
	e.UpdateBase(&src.BaseObject)
	e.EndTime = src.EndTime
	e.Priority = src.Priority
	e.StartTime = src.StartTime
	e.Title = src.Title.Copy()
}

func (e *AppEvent) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(AppEventEntity)
	if !ok || isNil(r) {
		return true
	}
	return e.Diff(r.AsAppEvent())
}

func (e *AppEvent) Diff(rhs *AppEvent) bool {
	if e == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return e.DiffBase(&rhs.BaseObject) ||
		e.Priority != rhs.Priority ||
		!sameInstant(e.EndTime, rhs.EndTime) ||
		!sameInstant(e.StartTime, rhs.StartTime) ||
		!e.Title.Equal(rhs.Title)
}

func (e *AppEvent) Translate(data Dictionary, reg *Registry) {
	e.TranslateBase(data, reg)
	r := Read(data)
	r.Time(AppEventKeys.EndTime, &e.EndTime)
	if r.Int(AppEventKeys.Priority, &e.Priority) {
		e.Priority = ClampPriority(e.Priority)
	}
	r.Time(AppEventKeys.StartTime, &e.StartTime)
	r.Text(AppEventKeys.Title, &e.Title)
}

func (e *AppEvent) AsDictionary() Dictionary {
	return Merge(e.BaseDictionary(), Dictionary{
		AppEventKeys.EndTime:   e.EndTime,
		AppEventKeys.Priority:  e.Priority,
		AppEventKeys.StartTime: e.StartTime,
		AppEventKeys.Title:     e.Title.ToDictionary(),
	})
}

func (e *AppEvent) EncodeFields(enc *Encoder) error {
	if err := e.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(AppEventKeys.EndTime, e.EndTime)
	enc.Put(AppEventKeys.Priority, e.Priority)
	enc.Put(AppEventKeys.StartTime, e.StartTime)
	enc.Put(AppEventKeys.Title, e.Title)
	return nil
}

func (e *AppEvent) DecodeFields(dec *Decoder) error {
	if err := e.DecodeBase(dec); err != nil {
		return err
	}
	err := errors.Join(
		dec.Time(AppEventKeys.EndTime, &e.EndTime),
		dec.Int(AppEventKeys.Priority, &e.Priority),
		dec.Time(AppEventKeys.StartTime, &e.StartTime),
		dec.Text(AppEventKeys.Title, &e.Title),
	)
	e.Priority = ClampPriority(e.Priority)
	return err
}

var ApplicationKeys = struct {
	AppEvents string
}{"appEvents"}

type Application struct {
	BaseObject
	AppEvents []AppEventEntity
}

type ApplicationEntity interface {
	Object
	AsApplication() *Application
}

var _ ApplicationEntity = (*Application)(nil)

func NewApplication() *Application {
	return &Application{BaseObject: NewBaseObject()}
}

func NewApplicationWithID(id string) *Application {
	return &Application{BaseObject: NewBaseObjectWithID(id)}
}

func (a *Application) AsApplication() *Application { return a }

// ActiveAppEvent 返回第一个满足 start < t < end 的活动。
func (a *Application) ActiveAppEvent(t time.Time) AppEventEntity {
	for _, e := range a.AppEvents {
		ev := e.AsAppEvent()
		if ev.StartTime.Before(t) && ev.EndTime.After(t) {
			return e
		}
	}
	return nil
}

func (a *Application) Copy() *Application {
	out := &Application{}
	out.copyFrom(a)
	return out
}

func (a *Application) Clone() Object { return a.Copy() }

func (a *Application) Update(from Object) {
	if src, ok := from.(ApplicationEntity); ok && !isNil(src) {
		a.copyFrom(src.AsApplication())
	}
}

func (a *Application) copyFrom(src *Application) {
	if src == a {
		return
	}
	a.UpdateBase(&src.BaseObject)
	a.AppEvents = CloneObjects(src.AppEvents)
}

func (a *Application) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(ApplicationEntity)
	if !ok || isNil(r) {
		return true
	}
	return a.Diff(r.AsApplication())
}

func (a *Application) Diff(rhs *Application) bool {
	if a == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return a.DiffBase(&rhs.BaseObject) || DiffObjects(a.AppEvents, rhs.AppEvents)
}

func (a *Application) Translate(data Dictionary, reg *Registry) {
	reg = Resolve(reg)
	a.TranslateBase(data, reg)
	reg.AppEvent.ReadArray(data, ApplicationKeys.AppEvents, reg, &a.AppEvents)
}

func (a *Application) AsDictionary() Dictionary {
	return Merge(a.BaseDictionary(), Dictionary{
		ApplicationKeys.AppEvents: ObjectsDictionary(a.AppEvents),
	})
}

func (a *Application) EncodeFields(enc *Encoder) error {
	if err := a.EncodeBase(enc); err != nil {
		return err
	}
	return PutObjects(enc, ApplicationKeys.AppEvents, a.AppEvents)
}

func (a *Application) DecodeFields(dec *Decoder) error {
	if err := a.DecodeBase(dec); err != nil {
		return err
	}
	return dec.Registry().AppEvent.DecodeArrayField(dec, ApplicationKeys.AppEvents, &a.AppEvents)
}

var AppActionKeys = struct {
	ActionType, Colors, DeepLink, Images, Strings string
}{"actionType", "colors", "deepLink", "images", "strings"}

// AppAction 是一次应用内弹出动作：文案、图片、配色分别由子对象承载，三者都不会为 nil。
type AppAction struct {
	BaseObject
	ActionType AppActionType
	Colors     AppActionColorsEntity
	DeepLink   string
	Images     AppActionImagesEntity
	Strings    AppActionStringsEntity
}

type AppActionEntity interface {
	Object
	AsAppAction() *AppAction
}

var _ AppActionEntity = (*AppAction)(nil)

func NewAppAction() *AppAction {
	return NewAppActionWithID(uuid.NewString())
}

func NewAppActionWithID(id string) *AppAction {
	return &AppAction{
		BaseObject: NewBaseObjectWithID(id),
		ActionType: AppActionTypePopup,
		Colors:     NewAppActionColors(),
		Images:     NewAppActionImages(),
		Strings:    NewAppActionStrings(),
	}
}

func (a *AppAction) AsAppAction() *AppAction { return a }

func (a *AppAction) Copy() *AppAction {
	out := &AppAction{}
	out.copyFrom(a)
	return out
}

func (a *AppAction) Clone() Object { return a.Copy() }

func (a *AppAction) Update(from Object) {
	if src, ok := from.(AppActionEntity); ok && !isNil(src) {
		a.copyFrom(src.AsAppAction())
	}
}

func (a *AppAction) copyFrom(src *AppAction) {
	if src == a {
		return
	}
	a.UpdateBase(&src.BaseObject)
	a.ActionType = src.ActionType
	a.Colors = CloneObject(src.Colors)
	a.DeepLink = src.DeepLink
	a.Images = CloneObject(src.Images)
	a.Strings = CloneObject(src.Strings)
}

func (a *AppAction) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(AppActionEntity)
	if !ok || isNil(r) {
		return true
	}
	return a.Diff(r.AsAppAction())
}

func (a *AppAction) Diff(rhs *AppAction) bool {
	if a == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return a.DiffBase(&rhs.BaseObject) ||
		a.ActionType != rhs.ActionType ||
		a.DeepLink != rhs.DeepLink ||
		DiffObject(a.Colors, rhs.Colors) ||
		DiffObject(a.Images, rhs.Images) ||
		DiffObject(a.Strings, rhs.Strings)
}

func (a *AppAction) Translate(data Dictionary, reg *Registry) {
	reg = Resolve(reg)
	a.TranslateBase(data, reg)
	r := Read(data)
	ReadStringEnum(r, AppActionKeys.ActionType, &a.ActionType)
	reg.AppActionColors.ReadOwned(data, AppActionKeys.Colors, reg, &a.Colors)
	r.String(AppActionKeys.DeepLink, &a.DeepLink)
	reg.AppActionImages.ReadOwned(data, AppActionKeys.Images, reg, &a.Images)
	reg.AppActionStrings.ReadOwned(data, AppActionKeys.Strings, reg, &a.Strings)
}

func (a *AppAction) AsDictionary() Dictionary {
	return Merge(a.BaseDictionary(), Dictionary{
		AppActionKeys.ActionType: string(a.ActionType),
		AppActionKeys.Colors:     ObjectDictionary(a.Colors),
		AppActionKeys.DeepLink:   a.DeepLink,
		AppActionKeys.Images:     ObjectDictionary(a.Images),
		AppActionKeys.Strings:    ObjectDictionary(a.Strings),
	})
}

func (a *AppAction) EncodeFields(enc *Encoder) error {
	if err := a.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(AppActionKeys.ActionType, string(a.ActionType))
	enc.Put(AppActionKeys.DeepLink, a.DeepLink)
	return errors.Join(
		PutObject(enc, AppActionKeys.Colors, a.Colors),
		PutObject(enc, AppActionKeys.Images, a.Images),
		PutObject(enc, AppActionKeys.Strings, a.Strings),
	)
}

func (a *AppAction) DecodeFields(dec *Decoder) error {
	if err := a.DecodeBase(dec); err != nil {
		return err
	}
	reg := dec.Registry()
	return errors.Join(
		DecodeStringEnum(dec, AppActionKeys.ActionType, &a.ActionType),
		decodeOwned(reg.AppActionColors, dec, AppActionKeys.Colors, &a.Colors),
		dec.String(AppActionKeys.DeepLink, &a.DeepLink),
		decodeOwned(reg.AppActionImages, dec, AppActionKeys.Images, &a.Images),
		decodeOwned(reg.AppActionStrings, dec, AppActionKeys.Strings, &a.Strings),
	)
}

var AppActionImagesKeys = struct {
	Top string
}{"top"}

// AppActionImages 只能作为 AppAction 的字段出现。
type AppActionImages struct {
	BaseObject
	nestedOnlyMarker
	Top value.URL
}

type AppActionImagesEntity interface {
	Object
	AsAppActionImages() *AppActionImages
}

var _ AppActionImagesEntity = (*AppActionImages)(nil)

func NewAppActionImages() *AppActionImages {
	return &AppActionImages{BaseObject: NewBaseObject()}
}

func NewAppActionImagesWithID(id string) *AppActionImages {
	return &AppActionImages{BaseObject: NewBaseObjectWithID(id)}
}

func (i *AppActionImages) AsAppActionImages() *AppActionImages { return i }

func (i *AppActionImages) Copy() *AppActionImages {
	out := &AppActionImages{}
	out.copyFrom(i)
	return out
}

func (i *AppActionImages) Clone() Object { return i.Copy() }

func (i *AppActionImages) Update(from Object) {
	if src, ok := from.(AppActionImagesEntity); ok && !isNil(src) {
		i.copyFrom(src.AsAppActionImages())
	}
}

func (i *AppActionImages) copyFrom(src *AppActionImages) {
	if src == i {
		return
	}
	i.UpdateBase(&src.BaseObject)
	i.Top = src.Top.Copy()
}

func (i *AppActionImages) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(AppActionImagesEntity)
	if !ok || isNil(r) {
		return true
	}
	return i.Diff(r.AsAppActionImages())
}

func (i *AppActionImages) Diff(rhs *AppActionImages) bool {
	if i == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return i.DiffBase(&rhs.BaseObject) || !i.Top.Equal(rhs.Top)
}

func (i *AppActionImages) Translate(data Dictionary, reg *Registry) {
	i.TranslateBase(data, reg)
	Read(data).URL(AppActionImagesKeys.Top, &i.Top)
}

func (i *AppActionImages) AsDictionary() Dictionary {
	return Merge(i.BaseDictionary(), Dictionary{
		AppActionImagesKeys.Top: i.Top.ToDictionary(),
	})
}

func (i *AppActionImages) EncodeFields(enc *Encoder) error {
	if err := i.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(AppActionImagesKeys.Top, i.Top)
	return nil
}

func (i *AppActionImages) DecodeFields(dec *Decoder) error {
	if err := i.DecodeBase(dec); err != nil {
		return err
	}
	return dec.URL(AppActionImagesKeys.Top, &i.Top)
}

var AppActionStringsKeys = struct {
	Body, CancelLabel, Disclaimer, OkayLabel, SubTitle, Title string
}{"body", "cancelLabel", "disclaimer", "okayLabel", "subTitle", "title"}

type AppActionStrings struct {
	BaseObject
	Body        value.Text
	CancelLabel value.Text
	Disclaimer  value.Text
	OkayLabel   value.Text
	SubTitle    value.Text
	Title       value.Text
}

type AppActionStringsEntity interface {
	Object
	AsAppActionStrings() *AppActionStrings
}

var _ AppActionStringsEntity = (*AppActionStrings)(nil)

func NewAppActionStrings() *AppActionStrings {
	return &AppActionStrings{BaseObject: NewBaseObject()}
}

func NewAppActionStringsWithID(id string) *AppActionStrings {
	return &AppActionStrings{BaseObject: NewBaseObjectWithID(id)}
}

func (s *AppActionStrings) AsAppActionStrings() *AppActionStrings { return s }

func (s *AppActionStrings) Copy() *AppActionStrings {
	out := &AppActionStrings{}
	out.copyFrom(s)
	return out
}

func (s *AppActionStrings) Clone() Object { return s.Copy() }

func (s *AppActionStrings) Update(from Object) {
	if src, ok := from.(AppActionStringsEntity); ok && !isNil(src) {
		s.copyFrom(src.AsAppActionStrings())
	}
}

func (s *AppActionStrings) copyFrom(src *AppActionStrings) {
	if src == s {
		return
	}
	s.UpdateBase(&src.BaseObject)
	s.Body = src.Body.Copy()
	s.CancelLabel = src.CancelLabel.Copy()
	s.Disclaimer = src.Disclaimer.Copy()
	s.OkayLabel = src.OkayLabel.Copy()
	s.SubTitle = src.SubTitle.Copy()
	s.Title = src.Title.Copy()
}

func (s *AppActionStrings) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(AppActionStringsEntity)
	if !ok || isNil(r) {
		return true
	}
	return s.Diff(r.AsAppActionStrings())
}

func (s *AppActionStrings) Diff(rhs *AppActionStrings) bool {
	if s == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return s.DiffBase(&rhs.BaseObject) ||
		!s.Body.Equal(rhs.Body) ||
		!s.CancelLabel.Equal(rhs.CancelLabel) ||
		!s.Disclaimer.Equal(rhs.Disclaimer) ||
		!s.OkayLabel.Equal(rhs.OkayLabel) ||
		!s.SubTitle.Equal(rhs.SubTitle) ||
		!s.Title.Equal(rhs.Title)
}

func (s *AppActionStrings) Translate(data Dictionary, reg *Registry) {
	s.TranslateBase(data, reg)
	r := Read(data)
	r.Text(AppActionStringsKeys.Body, &s.Body)
	r.Text(AppActionStringsKeys.CancelLabel, &s.CancelLabel)
	r.Text(AppActionStringsKeys.Disclaimer, &s.Disclaimer)
	r.Text(AppActionStringsKeys.OkayLabel, &s.OkayLabel)
	r.Text(AppActionStringsKeys.SubTitle, &s.SubTitle)
	r.Text(AppActionStringsKeys.Title, &s.Title)
}

func (s *AppActionStrings) AsDictionary() Dictionary {
	return Merge(s.BaseDictionary(), Dictionary{
		AppActionStringsKeys.Body:        s.Body.ToDictionary(),
		AppActionStringsKeys.CancelLabel: s.CancelLabel.ToDictionary(),
		AppActionStringsKeys.Disclaimer:  s.Disclaimer.ToDictionary(),
		AppActionStringsKeys.OkayLabel:   s.OkayLabel.ToDictionary(),
		AppActionStringsKeys.SubTitle:    s.SubTitle.ToDictionary(),
		AppActionStringsKeys.Title:       s.Title.ToDictionary(),
	})
}

func (s *AppActionStrings) EncodeFields(enc *Encoder) error {
	if err := s.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(AppActionStringsKeys.Body, s.Body)
	enc.Put(AppActionStringsKeys.CancelLabel, s.CancelLabel)
	enc.Put(AppActionStringsKeys.Disclaimer, s.Disclaimer)
	enc.Put(AppActionStringsKeys.OkayLabel, s.OkayLabel)
	enc.Put(AppActionStringsKeys.SubTitle, s.SubTitle)
	enc.Put(AppActionStringsKeys.Title, s.Title)
	return nil
}

func (s *AppActionStrings) DecodeFields(dec *Decoder) error {
	if err := s.DecodeBase(dec); err != nil {
		return err
	}
	return errors.Join(
		dec.Text(AppActionStringsKeys.Body, &s.Body),
		dec.Text(AppActionStringsKeys.CancelLabel, &s.CancelLabel),
		dec.Text(AppActionStringsKeys.Disclaimer, &s.Disclaimer),
		dec.Text(AppActionStringsKeys.OkayLabel, &s.OkayLabel),
		dec.Text(AppActionStringsKeys.SubTitle, &s.SubTitle),
		dec.Text(AppActionStringsKeys.Title, &s.Title),
	)
}

var AppActionColorsKeys = struct {
	CancelButtonBackground, CancelButtonText, OkButtonBackground, OkButtonText string
}{"cancelButtonBackground", "cancelButtonText", "okButtonBackground", "okButtonText"}

// AppActionColors 零值颜色表示沿用客户端默认配色。
type AppActionColors struct {
	BaseObject
	CancelButtonBackground value.Color
	CancelButtonText       value.Color
	OkButtonBackground     value.Color
	OkButtonText           value.Color
}

type AppActionColorsEntity interface {
	Object
	AsAppActionColors() *AppActionColors
}

var _ AppActionColorsEntity = (*AppActionColors)(nil)

func NewAppActionColors() *AppActionColors {
	return &AppActionColors{BaseObject: NewBaseObject()}
}

func NewAppActionColorsWithID(id string) *AppActionColors {
	return &AppActionColors{BaseObject: NewBaseObjectWithID(id)}
}

func (c *AppActionColors) AsAppActionColors() *AppActionColors { return c }

func (c *AppActionColors) Copy() *AppActionColors {
	out := &AppActionColors{}
	out.copyFrom(c)
	return out
}

func (c *AppActionColors) Clone() Object { return c.Copy() }

func (c *AppActionColors) Update(from Object) {
	if src, ok := from.(AppActionColorsEntity); ok && !isNil(src) {
		c.copyFrom(src.AsAppActionColors())
	}
}

func (c *AppActionColors) copyFrom(src *AppActionColors) {
	if src == c {
		return
	}
	c.UpdateBase(&src.BaseObject)
	c.CancelButtonBackground = src.CancelButtonBackground
	c.CancelButtonText = src.CancelButtonText
	c.OkButtonBackground = src.OkButtonBackground
	c.OkButtonText = src.OkButtonText
}

func (c *AppActionColors) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(AppActionColorsEntity)
	if !ok || isNil(r) {
		return true
	}
	return c.Diff(r.AsAppActionColors())
}

func (c *AppActionColors) Diff(rhs *AppActionColors) bool {
	if c == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return c.DiffBase(&rhs.BaseObject) ||
		c.CancelButtonBackground != rhs.CancelButtonBackground ||
		c.CancelButtonText != rhs.CancelButtonText ||
		c.OkButtonBackground != rhs.OkButtonBackground ||
		c.OkButtonText != rhs.OkButtonText
}

func (c *AppActionColors) Translate(data Dictionary, reg *Registry) {
	c.TranslateBase(data, reg)
	r := Read(data)
	r.Color(AppActionColorsKeys.CancelButtonBackground, &c.CancelButtonBackground)
	r.Color(AppActionColorsKeys.CancelButtonText, &c.CancelButtonText)
	r.Color(AppActionColorsKeys.OkButtonBackground, &c.OkButtonBackground)
	r.Color(AppActionColorsKeys.OkButtonText, &c.OkButtonText)
}

func (c *AppActionColors) AsDictionary() Dictionary {
	return Merge(c.BaseDictionary(), Dictionary{
		AppActionColorsKeys.CancelButtonBackground: c.CancelButtonBackground.String(),
		AppActionColorsKeys.CancelButtonText:       c.CancelButtonText.String(),
		AppActionColorsKeys.OkButtonBackground:     c.OkButtonBackground.String(),
		AppActionColorsKeys.OkButtonText:           c.OkButtonText.String(),
	})
}

func (c *AppActionColors) EncodeFields(enc *Encoder) error {
	if err := c.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(AppActionColorsKeys.CancelButtonBackground, c.CancelButtonBackground)
	enc.Put(AppActionColorsKeys.CancelButtonText, c.CancelButtonText)
	enc.Put(AppActionColorsKeys.OkButtonBackground, c.OkButtonBackground)
	enc.Put(AppActionColorsKeys.OkButtonText, c.OkButtonText)
	return nil
}

func (c *AppActionColors) DecodeFields(dec *Decoder) error {
	if err := c.DecodeBase(dec); err != nil {
		return err
	}
	return errors.Join(
		dec.Color(AppActionColorsKeys.CancelButtonBackground, &c.CancelButtonBackground),
		dec.Color(AppActionColorsKeys.CancelButtonText, &c.CancelButtonText),
		dec.Color(AppActionColorsKeys.OkButtonBackground, &c.OkButtonBackground),
		dec.Color(AppActionColorsKeys.OkButtonText, &c.OkButtonText),
	)
}
