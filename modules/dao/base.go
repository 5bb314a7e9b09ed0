package dao

import "github.com/google/uuid"

// BaseKeys 是所有实体共有的键。
var BaseKeys = struct {
	ID, Meta, AnalyticsData string
}{
	ID:            "id",
	Meta:          "meta",
	AnalyticsData: "analyticsData",
}

// BaseObject 是每个实体按值嵌入的身份部分：id、审计信息、分析记录。
//
// BaseObject 本身不实现 Object 的其它方法，避免嵌入者漏写方法时被静默提升。
type BaseObject struct {
	ID            string
	Meta          Metadata
	AnalyticsData []AnalyticsDataEntity
}

func NewBaseObject() BaseObject {
	return NewBaseObjectWithID(uuid.NewString())
}

func NewBaseObjectWithID(id string) BaseObject {
	return BaseObject{ID: id, Meta: NewMetadata()}
}

func (b *BaseObject) Base() *BaseObject {
	return b
}

func (b *BaseObject) TranslateBase(data Dictionary, reg *Registry) {
	reg = Resolve(reg)
	Read(data).String(BaseKeys.ID, &b.ID)
	if meta := Dict(data[BaseKeys.Meta]); meta != nil {
		b.Meta.Translate(meta)
	}
	reg.AnalyticsData.ReadArray(data, BaseKeys.AnalyticsData, reg, &b.AnalyticsData)
}

func (b *BaseObject) BaseDictionary() Dictionary {
	return Dictionary{
		BaseKeys.ID:            b.ID,
		BaseKeys.Meta:          b.Meta.AsDictionary(),
		BaseKeys.AnalyticsData: ObjectsDictionary(b.AnalyticsData),
	}
}

func (b *BaseObject) UpdateBase(src *BaseObject) {
	if src == nil || src == b {
		return
	}
	b.ID = src.ID
	b.Meta = src.Meta.Copy()
	b.AnalyticsData = CloneObjects(src.AnalyticsData)
}

// DiffBase 先比 id 与审计信息，最后才比分析记录集合。
func (b *BaseObject) DiffBase(rhs *BaseObject) bool {
	if b == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return b.ID != rhs.ID ||
		b.Meta.IsDiffFrom(rhs.Meta) ||
		DiffObjectSet(b.AnalyticsData, rhs.AnalyticsData)
}

func (b *BaseObject) EncodeBase(enc *Encoder) error {
	enc.Put(BaseKeys.ID, b.ID)
	meta := enc.sub()
	b.Meta.encode(meta)
	enc.Put(BaseKeys.Meta, meta.Document())
	return PutObjects(enc, BaseKeys.AnalyticsData, b.AnalyticsData)
}

func (b *BaseObject) DecodeBase(dec *Decoder) error {
	if err := dec.String(BaseKeys.ID, &b.ID); err != nil {
		return err
	}
	meta, ok, err := dec.Object(BaseKeys.Meta)
	if err != nil {
		return err
	}
	if ok {
		if err := b.Meta.decode(meta); err != nil {
			return err
		}
	}
	return dec.Registry().AnalyticsData.DecodeArrayField(dec, BaseKeys.AnalyticsData, &b.AnalyticsData)
}
