package dao

import (
	"errors"

	"DAOKit/modules/value"
)

var SectionKeys = struct {
	Children, Name, Parent, Places string
}{"children", "name", "parent", "places"}

// Section 是场所的分组树。Parent 只是反向引用：拷贝时共享，比较和序列化时只看 id。
type Section struct {
	BaseObject
	Children []SectionEntity
	Name     value.Text
	Parent   SectionEntity
	Places   []PlaceEntity
}

type SectionEntity interface {
	Object
	AsSection() *Section
}

var _ SectionEntity = (*Section)(nil)

func NewSection() *Section {
	return &Section{BaseObject: NewBaseObject()}
}

func NewSectionWithID(id string) *Section {
	return &Section{BaseObject: NewBaseObjectWithID(id)}
}

func (s *Section) AsSection() *Section { return s }

// AddChild 追加子分组并把它的 Parent 指向自己。
func (s *Section) AddChild(child SectionEntity) {
	if isNil(child) {
		return
	}
	child.AsSection().Parent = s
	s.Children = append(s.Children, child)
}

func (s *Section) Copy() *Section {
	out := &Section{}
	out.copyFrom(s)
	return out
}

func (s *Section) Clone() Object { return s.Copy() }

func (s *Section) Update(from Object) {
	if src, ok := from.(SectionEntity); ok && !isNil(src) {
		s.copyFrom(src.AsSection())
	}
}

func (s *Section) copyFrom(src *Section) {
	if src == s {
		return
	}
	s.UpdateBase(&src.BaseObject)
	s.Children = CloneObjects(src.Children)
	for _, c := range s.Children {
		c.AsSection().Parent = s
	}
	s.Name = src.Name.Copy()
	s.Parent = src.Parent
	s.Places = CloneObjects(src.Places)
}

func (s *Section) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(SectionEntity)
	if !ok || isNil(r) {
		return true
	}
	return s.Diff(r.AsSection())
}

func (s *Section) Diff(rhs *Section) bool {
	if s == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return s.DiffBase(&rhs.BaseObject) ||
		!s.Name.Equal(rhs.Name) ||
		!SameRef(s.Parent, rhs.Parent) ||
		DiffObjects(s.Children, rhs.Children) ||
		DiffObjects(s.Places, rhs.Places)
}

func (s *Section) Translate(data Dictionary, reg *Registry) {
	reg = Resolve(reg)
	s.TranslateBase(data, reg)
	if reg.Section.ReadArray(data, SectionKeys.Children, reg, &s.Children) {
		for _, c := range s.Children {
			c.AsSection().Parent = s
		}
	}
	Read(data).Text(SectionKeys.Name, &s.Name)
	reg.Section.ReadRef(data, SectionKeys.Parent, &s.Parent)
	reg.Place.ReadArray(data, SectionKeys.Places, reg, &s.Places)
}

func (s *Section) AsDictionary() Dictionary {
	return Merge(s.BaseDictionary(), Dictionary{
		SectionKeys.Children: ObjectsDictionary(s.Children),
		SectionKeys.Name:     s.Name.ToDictionary(),
		SectionKeys.Parent:   ObjectID(s.Parent),
		SectionKeys.Places:   ObjectsDictionary(s.Places),
	})
}

func (s *Section) EncodeFields(enc *Encoder) error {
	if err := s.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(SectionKeys.Name, s.Name)
	enc.Put(SectionKeys.Parent, ObjectID(s.Parent))
	return errors.Join(
		PutObjects(enc, SectionKeys.Children, s.Children),
		PutObjects(enc, SectionKeys.Places, s.Places),
	)
}

func (s *Section) DecodeFields(dec *Decoder) error {
	if err := s.DecodeBase(dec); err != nil {
		return err
	}
	reg := dec.Registry()
	err := errors.Join(
		reg.Section.DecodeArrayField(dec, SectionKeys.Children, &s.Children),
		dec.Text(SectionKeys.Name, &s.Name),
		reg.Section.DecodeRef(dec, SectionKeys.Parent, &s.Parent),
		reg.Place.DecodeArrayField(dec, SectionKeys.Places, &s.Places),
	)
	for _, c := range s.Children {
		c.AsSection().Parent = s
	}
	return err
}
