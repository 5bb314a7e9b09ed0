package dao

import (
	"errors"

	"DAOKit/modules/value"
)

var FaqKeys = struct {
	Answer, Question, Section string
}{"answer", "question", "section"}

// Faq 总是归属一个分组；Section 不会为 nil。
type Faq struct {
	BaseObject
	Answer   value.Text
	Question value.Text
	Section  FaqSectionEntity
}

type FaqEntity interface {
	Object
	AsFaq() *Faq
}

var _ FaqEntity = (*Faq)(nil)

func NewFaq() *Faq {
	return &Faq{BaseObject: NewBaseObject(), Section: NewFaqSection()}
}

func NewFaqWithID(id string) *Faq {
	f := NewFaq()
	f.ID = id
	return f
}

func (f *Faq) AsFaq() *Faq { return f }

func (f *Faq) Copy() *Faq {
	out := &Faq{}
	out.copyFrom(f)
	return out
}

func (f *Faq) Clone() Object { return f.Copy() }

func (f *Faq) Update(from Object) {
	if src, ok := from.(FaqEntity); ok && !isNil(src) {
		f.copyFrom(src.AsFaq())
	}
}

func (f *Faq) copyFrom(src *Faq) {
	if src == f {
		return
	}
	f.UpdateBase(&src.BaseObject)
	f.Answer = src.Answer.Copy()
	f.Question = src.Question.Copy()
	if c := CloneObject(src.Section); !isNil(c) {
		f.Section = c
	}
}

func (f *Faq) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(FaqEntity)
	if !ok || isNil(r) {
		return true
	}
	return f.Diff(r.AsFaq())
}

func (f *Faq) Diff(rhs *Faq) bool {
	if f == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return f.DiffBase(&rhs.BaseObject) ||
		!f.Answer.Equal(rhs.Answer) ||
		!f.Question.Equal(rhs.Question) ||
		DiffObject(f.Section, rhs.Section)
}

func (f *Faq) Translate(data Dictionary, reg *Registry) {
	reg = Resolve(reg)
	f.TranslateBase(data, reg)
	r := Read(data)
	r.Text(FaqKeys.Answer, &f.Answer)
	r.Text(FaqKeys.Question, &f.Question)
	reg.FaqSection.ReadOwned(data, FaqKeys.Section, reg, &f.Section)
}

func (f *Faq) AsDictionary() Dictionary {
	return Merge(f.BaseDictionary(), Dictionary{
		FaqKeys.Answer:   f.Answer.ToDictionary(),
		FaqKeys.Question: f.Question.ToDictionary(),
		FaqKeys.Section:  ObjectDictionary(f.Section),
	})
}

func (f *Faq) EncodeFields(enc *Encoder) error {
	if err := f.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(FaqKeys.Answer, f.Answer)
	enc.Put(FaqKeys.Question, f.Question)
	return PutObject(enc, FaqKeys.Section, f.Section)
}

func (f *Faq) DecodeFields(dec *Decoder) error {
	if err := f.DecodeBase(dec); err != nil {
		return err
	}
	return errors.Join(
		dec.Text(FaqKeys.Answer, &f.Answer),
		decodeOwned(dec.Registry().FaqSection, dec, FaqKeys.Section, &f.Section),
		dec.Text(FaqKeys.Question, &f.Question),
	)
}

var FaqSectionKeys = struct {
	Code, IconKey, Title string
}{"code", "iconKey", "title"}

type FaqSection struct {
	BaseObject
	Code    string
	IconKey string
	Title   value.Text
}

type FaqSectionEntity interface {
	Object
	AsFaqSection() *FaqSection
}

var _ FaqSectionEntity = (*FaqSection)(nil)

func NewFaqSection() *FaqSection {
	return &FaqSection{BaseObject: NewBaseObject()}
}

func NewFaqSectionWithID(id string) *FaqSection {
	return &FaqSection{BaseObject: NewBaseObjectWithID(id)}
}

func (s *FaqSection) AsFaqSection() *FaqSection { return s }

func (s *FaqSection) Copy() *FaqSection {
	out := &FaqSection{}
	out.copyFrom(s)
	return out
}

func (s *FaqSection) Clone() Object { return s.Copy() }

func (s *FaqSection) Update(from Object) {
	if src, ok := from.(FaqSectionEntity); ok && !isNil(src) {
		s.copyFrom(src.AsFaqSection())
	}
}

func (s *FaqSection) copyFrom(src *FaqSection) {
	if src == s {
		return
	}
	s.UpdateBase(&src.BaseObject)
	s.Code = src.Code
	s.IconKey = src.IconKey
	s.Title = src.Title.Copy()
}

func (s *FaqSection) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(FaqSectionEntity)
	if !ok || isNil(r) {
		return true
	}
	return s.Diff(r.AsFaqSection())
}

func (s *FaqSection) Diff(rhs *FaqSection) bool {
	if s == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return s.DiffBase(&rhs.BaseObject) ||
		s.Code != rhs.Code ||
		s.IconKey != rhs.IconKey ||
		!s.Title.Equal(rhs.Title)
}

func (s *FaqSection) Translate(data Dictionary, reg *Registry) {
	s.TranslateBase(data, reg)
	r := Read(data)
	r.String(FaqSectionKeys.Code, &s.Code)
	r.String(FaqSectionKeys.IconKey, &s.IconKey)
	r.Text(FaqSectionKeys.Title, &s.Title)
}

func (s *FaqSection) AsDictionary() Dictionary {
	return Merge(s.BaseDictionary(), Dictionary{
		FaqSectionKeys.Code:    s.Code,
		FaqSectionKeys.IconKey: s.IconKey,
		FaqSectionKeys.Title:   s.Title.ToDictionary(),
	})
}

func (s *FaqSection) EncodeFields(enc *Encoder) error {
	if err := s.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(FaqSectionKeys.Code, s.Code)
	enc.Put(FaqSectionKeys.IconKey, s.IconKey)
	enc.Put(FaqSectionKeys.Title, s.Title)
	return nil
}

func (s *FaqSection) DecodeFields(dec *Decoder) error {
	if err := s.DecodeBase(dec); err != nil {
		return err
	}
	return errors.Join(
		dec.String(FaqSectionKeys.Code, &s.Code),
		dec.String(FaqSectionKeys.IconKey, &s.IconKey),
		dec.Text(FaqSectionKeys.Title, &s.Title),
	)
}
