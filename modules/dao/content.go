package dao

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"DAOKit/modules/value"
)

var MediaKeys = struct {
	PreloadURL, Title, Type, URL string
}{"preloadUrl", "title", "type", "url"}

// Media 是一张图片或一段视频；PreloadURL 是加载正片前展示的低清版本。
type Media struct {
	BaseObject
	PreloadURL value.URL
	Title      value.Text
	Type       MediaType
	URL        value.URL
}

type MediaEntity interface {
	Object
	AsMedia() *Media
}

var _ MediaEntity = (*Media)(nil)

func NewMedia() *Media {
	return &Media{BaseObject: NewBaseObject(), Type: MediaTypeUnknown}
}

func NewMediaWithID(id string) *Media {
	return &Media{BaseObject: NewBaseObjectWithID(id), Type: MediaTypeUnknown}
}

func (m *Media) AsMedia() *Media { return m }

func (m *Media) Copy() *Media {
	out := &Media{}
	out.copyFrom(m)
	return out
}

func (m *Media) Clone() Object { return m.Copy() }

func (m *Media) Update(from Object) {
	if src, ok := from.(MediaEntity); ok && !isNil(src) {
		m.copyFrom(src.AsMedia())
	}
}

func (m *Media) copyFrom(src *Media) {
	if src == m {
		return
	}
	m.UpdateBase(&src.BaseObject)
	m.PreloadURL = src.PreloadURL.Copy()
	m.Title = src.Title.Copy()
	m.Type = src.Type
	m.URL = src.URL.Copy()
}

func (m *Media) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(MediaEntity)
	if !ok || isNil(r) {
		return true
	}
	return m.Diff(r.AsMedia())
}

func (m *Media) Diff(rhs *Media) bool {
	if m == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return m.DiffBase(&rhs.BaseObject) ||
		m.Type != rhs.Type ||
		!m.URL.Equal(rhs.URL) ||
		!m.PreloadURL.Equal(rhs.PreloadURL) ||
		!m.Title.Equal(rhs.Title)
}

func (m *Media) Translate(data Dictionary, reg *Registry) {
	m.TranslateBase(data, reg)
	r := Read(data)
	r.URL(MediaKeys.PreloadURL, &m.PreloadURL)
	r.Text(MediaKeys.Title, &m.Title)
	ReadStringEnum(r, MediaKeys.Type, &m.Type)
	r.URL(MediaKeys.URL, &m.URL)
}

func (m *Media) AsDictionary() Dictionary {
	return Merge(m.BaseDictionary(), Dictionary{
		MediaKeys.PreloadURL: m.PreloadURL.ToDictionary(),
		MediaKeys.Title:      m.Title.ToDictionary(),
		MediaKeys.Type:       string(m.Type),
		MediaKeys.URL:        m.URL.ToDictionary(),
	})
}

func (m *Media) EncodeFields(enc *Encoder) error {
	if err := m.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(MediaKeys.PreloadURL, m.PreloadURL)
	enc.Put(MediaKeys.Title, m.Title)
	enc.Put(MediaKeys.Type, string(m.Type))
	enc.Put(MediaKeys.URL, m.URL)
	return nil
}

func (m *Media) DecodeFields(dec *Decoder) error {
	if err := m.DecodeBase(dec); err != nil {
		return err
	}
	return errors.Join(
		dec.URL(MediaKeys.PreloadURL, &m.PreloadURL),
		dec.Text(MediaKeys.Title, &m.Title),
		DecodeStringEnum(dec, MediaKeys.Type, &m.Type),
		dec.URL(MediaKeys.URL, &m.URL),
	)
}

var DocumentKeys = struct {
	Priority, Title, URL string
}{"priority", "title", "url"}

type Document struct {
	BaseObject
	Priority int
	Title    value.Text
	URL      value.URL
}

type DocumentEntity interface {
	Object
	AsDocument() *Document
}

var _ DocumentEntity = (*Document)(nil)

func NewDocument() *Document {
	return &Document{BaseObject: NewBaseObject(), Priority: PriorityNormal}
}

func NewDocumentWithID(id string) *Document {
	return &Document{BaseObject: NewBaseObjectWithID(id), Priority: PriorityNormal}
}

func (d *Document) AsDocument() *Document { return d }

func (d *Document) Copy() *Document {
	out := &Document{}
	out.copyFrom(d)
	return out
}

func (d *Document) Clone() Object { return d.Copy() }

func (d *Document) Update(from Object) {
	if src, ok := from.(DocumentEntity); ok && !isNil(src) {
		d.copyFrom(src.AsDocument())
	}
}

func (d *Document) copyFrom(src *Document) {
	if src == d {
		return
	}
	d.UpdateBase(&src.BaseObject)
	d.Priority = src.Priority
	d.Title = src.Title.Copy()
	d.URL = src.URL.Copy()
}

func (d *Document) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(DocumentEntity)
	if !ok || isNil(r) {
		return true
	}
	return d.Diff(r.AsDocument())
}

func (d *Document) Diff(rhs *Document) bool {
	if d == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return d.DiffBase(&rhs.BaseObject) ||
		d.Priority != rhs.Priority ||
		!d.Title.Equal(rhs.Title) ||
		!d.URL.Equal(rhs.URL)
}

func (d *Document) Translate(data Dictionary, reg *Registry) {
	d.TranslateBase(data, reg)
	r := Read(data)
	if r.Int(DocumentKeys.Priority, &d.Priority) {
		d.Priority = ClampPriority(d.Priority)
	}
	r.Text(DocumentKeys.Title, &d.Title)
	r.URL(DocumentKeys.URL, &d.URL)
}

func (d *Document) AsDictionary() Dictionary {
	return Merge(d.BaseDictionary(), Dictionary{
		DocumentKeys.Priority: d.Priority,
		DocumentKeys.Title:    d.Title.ToDictionary(),
		DocumentKeys.URL:      d.URL.ToDictionary(),
	})
}

func (d *Document) EncodeFields(enc *Encoder) error {
	if err := d.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(DocumentKeys.Priority, d.Priority)
	enc.Put(DocumentKeys.Title, d.Title)
	enc.Put(DocumentKeys.URL, d.URL)
	return nil
}

func (d *Document) DecodeFields(dec *Decoder) error {
	if err := d.DecodeBase(dec); err != nil {
		return err
	}
	err := errors.Join(
		dec.Int(DocumentKeys.Priority, &d.Priority),
		dec.Text(DocumentKeys.Title, &d.Title),
		dec.URL(DocumentKeys.URL, &d.URL),
	)
	d.Priority = ClampPriority(d.Priority)
	return err
}

var NotificationKeys = struct {
	Body, DeepLink, Title, Type string
}{"body", "deepLink", "title", "type"}

type Notification struct {
	BaseObject
	Body     string
	DeepLink value.URL
	Title    string
	Type     NotificationType
}

type NotificationEntity interface {
	Object
	AsNotification() *Notification
}

var _ NotificationEntity = (*Notification)(nil)

func NewNotification() *Notification {
	return &Notification{BaseObject: NewBaseObject(), Type: NotificationTypeUnknown}
}

func NewNotificationWithID(id string) *Notification {
	return &Notification{BaseObject: NewBaseObjectWithID(id), Type: NotificationTypeUnknown}
}

func (n *Notification) AsNotification() *Notification { return n }

func (n *Notification) Copy() *Notification {
	out := &Notification{}
	out.copyFrom(n)
	return out
}

func (n *Notification) Clone() Object { return n.Copy() }

func (n *Notification) Update(from Object) {
	if src, ok := from.(NotificationEntity); ok && !isNil(src) {
		n.copyFrom(src.AsNotification())
	}
}

func (n *Notification) copyFrom(src *Notification) {
	if src == n {
		return
	}
	n.UpdateBase(&src.BaseObject)
	n.Body = src.Body
	n.DeepLink = src.DeepLink.Copy()
	n.Title = src.Title
	n.Type = src.Type
}

func (n *Notification) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(NotificationEntity)
	if !ok || isNil(r) {
		return true
	}
	return n.Diff(r.AsNotification())
}

func (n *Notification) Diff(rhs *Notification) bool {
	if n == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return n.DiffBase(&rhs.BaseObject) ||
		n.Body != rhs.Body ||
		n.Title != rhs.Title ||
		n.Type != rhs.Type ||
		!n.DeepLink.Equal(rhs.DeepLink)
}

func (n *Notification) Translate(data Dictionary, reg *Registry) {
	n.TranslateBase(data, reg)
	r := Read(data)
	r.String(NotificationKeys.Body, &n.Body)
	r.URL(NotificationKeys.DeepLink, &n.DeepLink)
	r.String(NotificationKeys.Title, &n.Title)
	ReadStringEnum(r, NotificationKeys.Type, &n.Type)
}

func (n *Notification) AsDictionary() Dictionary {
	return Merge(n.BaseDictionary(), Dictionary{
		NotificationKeys.Body:     n.Body,
		NotificationKeys.DeepLink: n.DeepLink.ToDictionary(),
		NotificationKeys.Title:    n.Title,
		NotificationKeys.Type:     string(n.Type),
	})
}

func (n *Notification) EncodeFields(enc *Encoder) error {
	if err := n.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(NotificationKeys.Body, n.Body)
	enc.Put(NotificationKeys.DeepLink, n.DeepLink)
	enc.Put(NotificationKeys.Title, n.Title)
	enc.Put(NotificationKeys.Type, string(n.Type))
	return nil
}

func (n *Notification) DecodeFields(dec *Decoder) error {
	if err := n.DecodeBase(dec); err != nil {
		return err
	}
	return errors.Join(
		dec.String(NotificationKeys.Body, &n.Body),
		dec.URL(NotificationKeys.DeepLink, &n.DeepLink),
		dec.String(NotificationKeys.Title, &n.Title),
		DecodeStringEnum(dec, NotificationKeys.Type, &n.Type),
	)
}

var AnnouncementKeys = struct {
	Body, Distribution, EndTime, StartTime, Title string
}{"body", "distribution", "endTime", "startTime", "title"}

// Announcement 默认从创建时起展示一个月，所有人可见。
type Announcement struct {
	BaseObject
	Body         value.Text
	Distribution Visibility
	EndTime      time.Time
	StartTime    time.Time
	Title        value.Text
}

type AnnouncementEntity interface {
	Object
	AsAnnouncement() *Announcement
}

var _ AnnouncementEntity = (*Announcement)(nil)

func NewAnnouncement() *Announcement {
	return NewAnnouncementWithID(uuid.NewString())
}

func NewAnnouncementWithID(id string) *Announcement {
	now := time.Now().UTC().Truncate(value.TimePrecision)
	return &Announcement{
		BaseObject:   NewBaseObjectWithID(id),
		Distribution: VisibilityEveryone,
		StartTime:    now,
		EndTime:      now.AddDate(0, 1, 0),
	}
}

func (a *Announcement) AsAnnouncement() *Announcement { return a }

// IsActive 判断 t 是否在展示窗口内。
func (a *Announcement) IsActive(t time.Time) bool {
	return value.InWindow(a.StartTime, a.EndTime, t)
}

func (a *Announcement) Copy() *Announcement {
	out := &Announcement{}
	out.copyFrom(a)
	return out
}

func (a *Announcement) Clone() Object { return a.Copy() }

func (a *Announcement) Update(from Object) {
	if src, ok := from.(AnnouncementEntity); ok && !isNil(src) {
		a.copyFrom(src.AsAnnouncement())
	}
}

func (a *Announcement) copyFrom(src *Announcement) {
	if src == a {
		return
	}
	a.UpdateBase(&src.BaseObject)
	a.Body = src.Body.Copy()
	a.Distribution = src.Distribution
	a.EndTime = src.EndTime
	a.StartTime = src.StartTime
	a.Title = src.Title.Copy()
}

func (a *Announcement) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(AnnouncementEntity)
	if !ok || isNil(r) {
		return true
	}
	return a.Diff(r.AsAnnouncement())
}

func (a *Announcement) Diff(rhs *Announcement) bool {
	if a == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return a.DiffBase(&rhs.BaseObject) ||
		a.Distribution != rhs.Distribution ||
		!sameInstant(a.EndTime, rhs.EndTime) ||
		!sameInstant(a.StartTime, rhs.StartTime) ||
		!a.Body.Equal(rhs.Body) ||
		!a.Title.Equal(rhs.Title)
}

func (a *Announcement) Translate(data Dictionary, reg *Registry) {
	a.TranslateBase(data, reg)
	r := Read(data)
	r.Text(AnnouncementKeys.Body, &a.Body)
	ReadStringEnum(r, AnnouncementKeys.Distribution, &a.Distribution)
	r.Time(AnnouncementKeys.EndTime, &a.EndTime)
	r.Time(AnnouncementKeys.StartTime, &a.StartTime)
	r.Text(AnnouncementKeys.Title, &a.Title)
}

func (a *Announcement) AsDictionary() Dictionary {
	return Merge(a.BaseDictionary(), Dictionary{
		AnnouncementKeys.Body:         a.Body.ToDictionary(),
		AnnouncementKeys.Distribution: string(a.Distribution),
		AnnouncementKeys.EndTime:      a.EndTime,
		AnnouncementKeys.StartTime:    a.StartTime,
		AnnouncementKeys.Title:        a.Title.ToDictionary(),
	})
}

func (a *Announcement) EncodeFields(enc *Encoder) error {
	if err := a.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(AnnouncementKeys.Body, a.Body)
	enc.Put(AnnouncementKeys.Distribution, string(a.Distribution))
	enc.Put(AnnouncementKeys.EndTime, a.EndTime)
	enc.Put(AnnouncementKeys.StartTime, a.StartTime)
	enc.Put(AnnouncementKeys.Title, a.Title)
	return nil
}

func (a *Announcement) DecodeFields(dec *Decoder) error {
	if err := a.DecodeBase(dec); err != nil {
		return err
	}
	return errors.Join(
		dec.Text(AnnouncementKeys.Body, &a.Body),
		DecodeStringEnum(dec, AnnouncementKeys.Distribution, &a.Distribution),
		dec.Time(AnnouncementKeys.EndTime, &a.EndTime),
		dec.Time(AnnouncementKeys.StartTime, &a.StartTime),
		dec.Text(AnnouncementKeys.Title, &a.Title),
	)
}
