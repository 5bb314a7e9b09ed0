package dao

import (
	"errors"

	"DAOKit/modules/value"
)

var AnalyticsDataKeys = struct {
	Data, Subtitle, Title string
}{"data", "subtitle", "title"}

// AnalyticsData 是挂在实体上的一条分析记录。
type AnalyticsData struct {
	BaseObject
	Data     []value.AnalyticsNumbers
	Subtitle value.Text
	Title    value.Text
}

type AnalyticsDataEntity interface {
	Object
	AsAnalyticsData() *AnalyticsData
}

var _ AnalyticsDataEntity = (*AnalyticsData)(nil)

func NewAnalyticsData() *AnalyticsData {
	return &AnalyticsData{BaseObject: NewBaseObject()}
}

func NewAnalyticsDataWithID(id string) *AnalyticsData {
	return &AnalyticsData{BaseObject: NewBaseObjectWithID(id)}
}

func (a *AnalyticsData) AsAnalyticsData() *AnalyticsData { return a }

func (a *AnalyticsData) Copy() *AnalyticsData {
	out := &AnalyticsData{}
	out.copyFrom(a)
	return out
}

func (a *AnalyticsData) Clone() Object { return a.Copy() }

func (a *AnalyticsData) Update(from Object) {
	if src, ok := from.(AnalyticsDataEntity); ok && !isNil(src) {
		a.copyFrom(src.AsAnalyticsData())
	}
}

func (a *AnalyticsData) copyFrom(src *AnalyticsData) {
	if src == a {
		return
	}
	a.UpdateBase(&src.BaseObject)
	a.Data = append([]value.AnalyticsNumbers(nil), src.Data...)
	a.Subtitle = src.Subtitle.Copy()
	a.Title = src.Title.Copy()
}

func (a *AnalyticsData) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(AnalyticsDataEntity)
	if !ok || isNil(r) {
		return true
	}
	return a.Diff(r.AsAnalyticsData())
}

// Diff 数据序列按集合比较，不看长度：重复值不算差异。
func (a *AnalyticsData) Diff(rhs *AnalyticsData) bool {
	if a == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return a.DiffBase(&rhs.BaseObject) ||
		HasDiffElements(a.Data, rhs.Data, func(x, y value.AnalyticsNumbers) bool { return x != y }) ||
		!a.Subtitle.Equal(rhs.Subtitle) ||
		!a.Title.Equal(rhs.Title)
}

func (a *AnalyticsData) Translate(data Dictionary, reg *Registry) {
	a.TranslateBase(data, reg)
	r := Read(data)
	r.NumbersList(AnalyticsDataKeys.Data, &a.Data)
	r.Text(AnalyticsDataKeys.Subtitle, &a.Subtitle)
	r.Text(AnalyticsDataKeys.Title, &a.Title)
}

func (a *AnalyticsData) AsDictionary() Dictionary {
	return Merge(a.BaseDictionary(), Dictionary{
		AnalyticsDataKeys.Data:     numbersDictionary(a.Data),
		AnalyticsDataKeys.Subtitle: a.Subtitle.ToDictionary(),
		AnalyticsDataKeys.Title:    a.Title.ToDictionary(),
	})
}

func (a *AnalyticsData) EncodeFields(enc *Encoder) error {
	if err := a.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(AnalyticsDataKeys.Data, a.Data)
	enc.Put(AnalyticsDataKeys.Subtitle, a.Subtitle)
	enc.Put(AnalyticsDataKeys.Title, a.Title)
	return nil
}

func (a *AnalyticsData) DecodeFields(dec *Decoder) error {
	if err := a.DecodeBase(dec); err != nil {
		return err
	}
	return errors.Join(
		dec.NumbersList(AnalyticsDataKeys.Data, &a.Data),
		dec.Text(AnalyticsDataKeys.Subtitle, &a.Subtitle),
		dec.Text(AnalyticsDataKeys.Title, &a.Title),
	)
}
