package dao

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// MetadataKeys 是 Metadata 的字典/容器键。
var MetadataKeys = struct {
	UID, Created, Synced, Updated, Status, CreatedBy, UpdatedBy, GenericValues string
}{
	UID:           "uuid",
	Created:       "created",
	Synced:        "synced",
	Updated:       "updated",
	Status:        "status",
	CreatedBy:     "createdBy",
	UpdatedBy:     "updatedBy",
	GenericValues: "genericValues",
}

// Metadata 是每个实体携带的审计信息。
// GenericValues 是自由格式的扩展字段：翻译时整体替换，不参与 diff。
type Metadata struct {
	UID           uuid.UUID
	Created       time.Time
	Synced        *time.Time
	Updated       time.Time
	Status        string
	CreatedBy     string
	UpdatedBy     string
	GenericValues Dictionary
}

// NewMetadata 时间截断到毫秒，和 BSON 日期精度一致。
func NewMetadata() Metadata {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return Metadata{
		UID:           uuid.New(),
		Created:       now,
		Updated:       now,
		GenericValues: Dictionary{},
	}
}

func (m *Metadata) Translate(data Dictionary) {
	r := Read(data)
	var uid string
	if r.String(MetadataKeys.UID, &uid) {
		if parsed, err := uuid.Parse(uid); err == nil {
			m.UID = parsed
		}
	}
	r.Time(MetadataKeys.Created, &m.Created)
	r.OptionalTime(MetadataKeys.Synced, &m.Synced)
	r.Time(MetadataKeys.Updated, &m.Updated)
	r.String(MetadataKeys.Status, &m.Status)
	r.String(MetadataKeys.CreatedBy, &m.CreatedBy)
	r.String(MetadataKeys.UpdatedBy, &m.UpdatedBy)
	m.GenericValues = CopyDictionary(Dict(data[MetadataKeys.GenericValues]))
	if m.GenericValues == nil {
		m.GenericValues = Dictionary{}
	}
}

func (m Metadata) AsDictionary() Dictionary {
	return Dictionary{
		MetadataKeys.UID:           m.UID.String(),
		MetadataKeys.Created:       m.Created,
		MetadataKeys.Synced:        TimeOrNil(m.Synced),
		MetadataKeys.Updated:       m.Updated,
		MetadataKeys.Status:        m.Status,
		MetadataKeys.CreatedBy:     m.CreatedBy,
		MetadataKeys.UpdatedBy:     m.UpdatedBy,
		MetadataKeys.GenericValues: CopyDictionary(m.GenericValues),
	}
}

func (m Metadata) Copy() Metadata {
	out := m
	out.Synced = copyTime(m.Synced)
	out.GenericValues = CopyDictionary(m.GenericValues)
	return out
}

func (m Metadata) IsDiffFrom(rhs Metadata) bool {
	return m.UID != rhs.UID ||
		!sameInstant(m.Created, rhs.Created) ||
		!sameTime(m.Synced, rhs.Synced) ||
		!sameInstant(m.Updated, rhs.Updated) ||
		m.Status != rhs.Status ||
		m.CreatedBy != rhs.CreatedBy ||
		m.UpdatedBy != rhs.UpdatedBy
}

func (m Metadata) encode(enc *Encoder) {
	enc.Put(MetadataKeys.UID, m.UID.String())
	enc.Put(MetadataKeys.Created, m.Created)
	enc.Put(MetadataKeys.Synced, m.Synced)
	enc.Put(MetadataKeys.Updated, m.Updated)
	enc.Put(MetadataKeys.Status, m.Status)
	enc.Put(MetadataKeys.CreatedBy, m.CreatedBy)
	enc.Put(MetadataKeys.UpdatedBy, m.UpdatedBy)
	enc.Put(MetadataKeys.GenericValues, m.GenericValues)
}

func (m *Metadata) decode(dec *Decoder) error {
	var uid string
	if err := dec.String(MetadataKeys.UID, &uid); err != nil {
		return err
	}
	if uid != "" {
		parsed, err := uuid.Parse(uid)
		if err != nil {
			return typeMismatch(dec.path(MetadataKeys.UID), "uuid", uid)
		}
		m.UID = parsed
	}
	var generic Dictionary
	err := errors.Join(
		dec.Time(MetadataKeys.Created, &m.Created),
		dec.OptionalTime(MetadataKeys.Synced, &m.Synced),
		dec.Time(MetadataKeys.Updated, &m.Updated),
		dec.String(MetadataKeys.Status, &m.Status),
		dec.String(MetadataKeys.CreatedBy, &m.CreatedBy),
		dec.String(MetadataKeys.UpdatedBy, &m.UpdatedBy),
		dec.Dictionary(MetadataKeys.GenericValues, &generic),
	)
	if generic != nil {
		m.GenericValues = generic
	}
	return err
}
