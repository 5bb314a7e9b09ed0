package dao

import (
	"errors"

	"DAOKit/modules/value"
)

var DistrictKeys = struct {
	Name, Places, Region string
}{"name", "places", "region"}

// District 是若干场所组成的区域，Region 是反向引用。
type District struct {
	BaseObject
	Name   value.Text
	Places []PlaceEntity
	Region RegionEntity
}

type DistrictEntity interface {
	Object
	AsDistrict() *District
}

var _ DistrictEntity = (*District)(nil)

func NewDistrict() *District {
	return &District{BaseObject: NewBaseObject()}
}

func NewDistrictWithID(id string) *District {
	return &District{BaseObject: NewBaseObjectWithID(id)}
}

func (d *District) AsDistrict() *District { return d }

func (d *District) Copy() *District {
	out := &District{}
	out.copyFrom(d)
	return out
}

func (d *District) Clone() Object { return d.Copy() }

func (d *District) Update(from Object) {
	if src, ok := from.(DistrictEntity); ok && !isNil(src) {
		d.copyFrom(src.AsDistrict())
	}
}

func (d *District) copyFrom(src *District) {
	if src == d {
		return
	}
	d.UpdateBase(&src.BaseObject)
	d.Name = src.Name.Copy()
	d.Places = CloneObjects(src.Places)
	d.Region = src.Region
}

func (d *District) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(DistrictEntity)
	if !ok || isNil(r) {
		return true
	}
	return d.Diff(r.AsDistrict())
}

func (d *District) Diff(rhs *District) bool {
	if d == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return d.DiffBase(&rhs.BaseObject) ||
		!d.Name.Equal(rhs.Name) ||
		!SameRef(d.Region, rhs.Region) ||
		DiffObjects(d.Places, rhs.Places)
}

func (d *District) Translate(data Dictionary, reg *Registry) {
	reg = Resolve(reg)
	d.TranslateBase(data, reg)
	Read(data).Text(DistrictKeys.Name, &d.Name)
	reg.Place.ReadArray(data, DistrictKeys.Places, reg, &d.Places)
	reg.Region.ReadRef(data, DistrictKeys.Region, &d.Region)
}

func (d *District) AsDictionary() Dictionary {
	return Merge(d.BaseDictionary(), Dictionary{
		DistrictKeys.Name:   d.Name.ToDictionary(),
		DistrictKeys.Places: ObjectsDictionary(d.Places),
		DistrictKeys.Region: ObjectID(d.Region),
	})
}

func (d *District) EncodeFields(enc *Encoder) error {
	if err := d.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(DistrictKeys.Name, d.Name)
	enc.Put(DistrictKeys.Region, ObjectID(d.Region))
	return PutObjects(enc, DistrictKeys.Places, d.Places)
}

func (d *District) DecodeFields(dec *Decoder) error {
	if err := d.DecodeBase(dec); err != nil {
		return err
	}
	reg := dec.Registry()
	return errors.Join(
		dec.Text(DistrictKeys.Name, &d.Name),
		reg.Place.DecodeArrayField(dec, DistrictKeys.Places, &d.Places),
		reg.Region.DecodeRef(dec, DistrictKeys.Region, &d.Region),
	)
}

var RegionKeys = struct {
	Districts, Name string
}{"districts", "name"}

type Region struct {
	BaseObject
	Districts []DistrictEntity
	Name      value.Text
}

type RegionEntity interface {
	Object
	AsRegion() *Region
}

var _ RegionEntity = (*Region)(nil)

func NewRegion() *Region {
	return &Region{BaseObject: NewBaseObject()}
}

func NewRegionWithID(id string) *Region {
	return &Region{BaseObject: NewBaseObjectWithID(id)}
}

func (r *Region) AsRegion() *Region { return r }

func (r *Region) AddDistrict(d DistrictEntity) {
	if isNil(d) {
		return
	}
	d.AsDistrict().Region = r
	r.Districts = append(r.Districts, d)
}

func (r *Region) relink() {
	for _, d := range r.Districts {
		d.AsDistrict().Region = r
	}
}

func (r *Region) Copy() *Region {
	out := &Region{}
	out.copyFrom(r)
	return out
}

func (r *Region) Clone() Object { return r.Copy() }

func (r *Region) Update(from Object) {
	if src, ok := from.(RegionEntity); ok && !isNil(src) {
		r.copyFrom(src.AsRegion())
	}
}

func (r *Region) copyFrom(src *Region) {
	if src == r {
		return
	}
	r.UpdateBase(&src.BaseObject)
	r.Districts = CloneObjects(src.Districts)
	r.relink()
	r.Name = src.Name.Copy()
}

func (r *Region) IsDiffFrom(rhs Object) bool {
	o, ok := rhs.(RegionEntity)
	if !ok || isNil(o) {
		return true
	}
	return r.Diff(o.AsRegion())
}

func (r *Region) Diff(rhs *Region) bool {
	if r == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return r.DiffBase(&rhs.BaseObject) ||
		!r.Name.Equal(rhs.Name) ||
		DiffObjects(r.Districts, rhs.Districts)
}

func (r *Region) Translate(data Dictionary, reg *Registry) {
	reg = Resolve(reg)
	r.TranslateBase(data, reg)
	if reg.District.ReadArray(data, RegionKeys.Districts, reg, &r.Districts) {
		r.relink()
	}
	Read(data).Text(RegionKeys.Name, &r.Name)
}

func (r *Region) AsDictionary() Dictionary {
	return Merge(r.BaseDictionary(), Dictionary{
		RegionKeys.Districts: ObjectsDictionary(r.Districts),
		RegionKeys.Name:      r.Name.ToDictionary(),
	})
}

func (r *Region) EncodeFields(enc *Encoder) error {
	if err := r.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(RegionKeys.Name, r.Name)
	return PutObjects(enc, RegionKeys.Districts, r.Districts)
}

func (r *Region) DecodeFields(dec *Decoder) error {
	if err := r.DecodeBase(dec); err != nil {
		return err
	}
	err := errors.Join(
		dec.Registry().District.DecodeArrayField(dec, RegionKeys.Districts, &r.Districts),
		dec.Text(RegionKeys.Name, &r.Name),
	)
	r.relink()
	return err
}
