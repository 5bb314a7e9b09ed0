package dao

import (
	"sort"
	"sync/atomic"

	"DAOKit/modules/kit/logx"
)

// NestedOnly 标记只能作为父对象字段解码的实体；独立解码返回 ErrDecodeUnsupported。
type NestedOnly interface {
	nestedOnly()
}

type nestedOnlyMarker struct{}

func (nestedOnlyMarker) nestedOnly() {}

// Factory 持有一个角色的构造函数。
//
// 约束：Bind 只在启动组装阶段调用；运行期并发读取构造函数不加锁。
// T 不带 Object 约束：Registry 持有 *Factory[XxxEntity]，而 Object 的方法又引用 *Registry，
// 约束在类型定义上会形成递归。T 总是某个 XxxEntity 接口，使用处经 object() 转换。
type Factory[T any] struct {
	role   string
	create func() T
}

// object 把角色类型的值转换为 Object；nil 返回 nil。
func object[T any](v T) Object {
	o, _ := any(v).(Object)
	return o
}

func NewFactory[T Object](role string, create func() T) *Factory[T] {
	return &Factory[T]{role: role, create: create}
}

func (f *Factory[T]) Role() string {
	return f.role
}

// Bind 替换该角色的具体类型；传 nil 忽略。
func (f *Factory[T]) Bind(create func() T) {
	if create != nil {
		f.create = create
	}
}

func (f *Factory[T]) Create() T {
	return f.create()
}

func (f *Factory[T]) CreateWithID(id string) T {
	v := f.create()
	object(v).Base().ID = id
	return v
}

// Copy 构造一个新实例并从 from 深拷贝全部字段。
func (f *Factory[T]) Copy(from T) T {
	v := f.create()
	if src := object(from); !isNil(src) {
		object(v).Update(src)
	}
	return v
}

// FromDictionary 空字典返回 (zero, false)。
func (f *Factory[T]) FromDictionary(data Dictionary, reg *Registry) (T, bool) {
	var zero T
	if len(data) == 0 {
		return zero, false
	}
	v := f.create()
	object(v).Translate(data, Resolve(reg))
	return v, true
}

// FromArray 逐个翻译字典数组里的元素，跳过空元素和非字典元素。
func (f *Factory[T]) FromArray(raw any, reg *Registry) []T {
	items := DataArray(raw)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if v, ok := f.FromDictionary(item, reg); ok {
			out = append(out, v)
		}
	}
	return out
}

// Read 读取可选子对象字段：键不存在保留当前值；存在但为空（或 nil）置为 nil。
func (f *Factory[T]) Read(data Dictionary, key string, reg *Registry, dst *T) bool {
	raw, present := data[key]
	if !present {
		return false
	}
	sub := Dict(raw)
	if raw != nil && sub == nil {
		f.drop(reg, key, "not a dictionary")
	}
	v, _ := f.FromDictionary(sub, reg)
	*dst = v
	return true
}

// ReadOwned 读取必有的子对象字段：只有非空字典才替换当前值。
func (f *Factory[T]) ReadOwned(data Dictionary, key string, reg *Registry, dst *T) bool {
	raw, present := data[key]
	if !present {
		return false
	}
	sub := Dict(raw)
	if raw != nil && sub == nil {
		f.drop(reg, key, "not a dictionary")
	}
	v, ok := f.FromDictionary(sub, reg)
	if !ok {
		return false
	}
	*dst = v
	return true
}

// ReadArray 读取子对象数组字段：键不存在保留当前值。
func (f *Factory[T]) ReadArray(data Dictionary, key string, reg *Registry, dst *[]T) bool {
	raw, present := data[key]
	if !present {
		return false
	}
	if raw != nil {
		if _, ok := Array(raw); !ok {
			f.drop(reg, key, "not an array")
		}
	}
	*dst = f.FromArray(raw, reg)
	return true
}

func (f *Factory[T]) drop(reg *Registry, key, reason string) {
	logx.ReportDrop(Resolve(reg).Logger(), logx.NewDropLog(f.role, key, reason))
}

// DecodeRoot 从顶层容器解码一个独立实体。
func (f *Factory[T]) DecodeRoot(dec *Decoder) (T, error) {
	var zero T
	v := f.create()
	if _, ok := any(v).(NestedOnly); ok {
		return zero, ErrDecodeUnsupported.WithData("role", f.role)
	}
	if err := object(v).DecodeFields(dec); err != nil {
		return zero, err
	}
	return v, nil
}

// Decode 解码嵌套子对象；键不存在时 ok=false。
func (f *Factory[T]) Decode(dec *Decoder, key string) (T, bool, error) {
	var zero T
	sub, ok, err := dec.Object(key)
	if !ok || err != nil {
		return zero, false, err
	}
	v := f.create()
	if err := object(v).DecodeFields(sub); err != nil {
		return zero, false, err
	}
	return v, true, nil
}

func (f *Factory[T]) DecodeArray(dec *Decoder, key string) ([]T, bool, error) {
	subs, ok, err := dec.Objects(key)
	if !ok || err != nil {
		return nil, false, err
	}
	out := make([]T, 0, len(subs))
	for _, sub := range subs {
		v := f.create()
		if err := object(v).DecodeFields(sub); err != nil {
			return nil, false, err
		}
		out = append(out, v)
	}
	return out, true, nil
}

// DecodeField 解码可选子对象到 dst：键不存在保留，显式 null 置为 nil。
func (f *Factory[T]) DecodeField(dec *Decoder, key string, dst *T) error {
	if _, err := dec.raw.LookupErr(key); err == nil && !dec.Has(key) {
		var zero T
		*dst = zero
		return nil
	}
	v, ok, err := f.Decode(dec, key)
	if err != nil {
		return err
	}
	if ok {
		*dst = v
	}
	return nil
}

func (f *Factory[T]) DecodeArrayField(dec *Decoder, key string, dst *[]T) error {
	v, ok, err := f.DecodeArray(dec, key)
	if err != nil {
		return err
	}
	if ok {
		*dst = v
	}
	return nil
}

// AnyFactory 是按角色名访问工厂的非泛型视图（配置驱动的绑定、命令行工具使用）。
type AnyFactory interface {
	Role() string
	New() Object
	NewFromDictionary(data Dictionary, reg *Registry) (Object, bool)
	Unmarshal(data []byte, reg *Registry) (Object, error)
	UnmarshalJSON(data []byte, reg *Registry) (Object, error)
	BindAny(create func() Object) error
	adopt(other AnyFactory)
}

func (f *Factory[T]) New() Object {
	return object(f.create())
}

func (f *Factory[T]) NewFromDictionary(data Dictionary, reg *Registry) (Object, bool) {
	v, ok := f.FromDictionary(data, reg)
	if !ok {
		return nil, false
	}
	return object(v), true
}

func (f *Factory[T]) Unmarshal(data []byte, reg *Registry) (Object, error) {
	v, err := Unmarshal(data, f, reg)
	if err != nil {
		return nil, err
	}
	return object(v), nil
}

func (f *Factory[T]) UnmarshalJSON(data []byte, reg *Registry) (Object, error) {
	v, err := UnmarshalJSON(data, f, reg)
	if err != nil {
		return nil, err
	}
	return object(v), nil
}

// BindAny 绑定前先构造一次，确认新类型确实扮演该角色。
func (f *Factory[T]) BindAny(create func() Object) error {
	if create == nil {
		return ErrUnexpectedNil.WithData("role", f.role)
	}
	if _, ok := create().(T); !ok {
		return ErrTypeMismatch.WithDataMap(map[string]any{"role": f.role, "key": "bind"})
	}
	f.create = func() T {
		v, _ := create().(T)
		return v
	}
	return nil
}

func (f *Factory[T]) adopt(other AnyFactory) {
	if o, ok := other.(*Factory[T]); ok {
		f.create = o.create
	}
}

// Registry 是角色 -> 工厂的绑定表，一个值覆盖所有实体族的传递依赖。
//
// 显式传递 *Registry 是首选方式；需要进程级默认值时使用 Default/SetDefault。
type Registry struct {
	AnalyticsData      *Factory[AnalyticsDataEntity]
	Account            *Factory[AccountEntity]
	AccountLinkRequest *Factory[AccountLinkRequestEntity]
	Activity           *Factory[ActivityEntity]
	ActivityBlackout   *Factory[ActivityBlackoutEntity]
	ActivityType       *Factory[ActivityTypeEntity]
	Alert              *Factory[AlertEntity]
	Announcement       *Factory[AnnouncementEntity]
	AppAction          *Factory[AppActionEntity]
	AppActionColors    *Factory[AppActionColorsEntity]
	AppActionImages    *Factory[AppActionImagesEntity]
	AppActionStrings   *Factory[AppActionStringsEntity]
	AppEvent           *Factory[AppEventEntity]
	Application        *Factory[ApplicationEntity]
	Basket             *Factory[BasketEntity]
	BasketItem         *Factory[BasketItemEntity]
	Beacon             *Factory[BeaconEntity]
	Card               *Factory[CardEntity]
	Center             *Factory[CenterEntity]
	CenterEvent        *Factory[PlaceEventEntity]
	CenterHoliday      *Factory[PlaceHolidayEntity]
	CenterHours        *Factory[PlaceHoursEntity]
	CenterStatus       *Factory[PlaceStatusEntity]
	ChangeRequest      *Factory[ChangeRequestEntity]
	Chat               *Factory[ChatEntity]
	ChatMessage        *Factory[ChatMessageEntity]
	District           *Factory[DistrictEntity]
	Document           *Factory[DocumentEntity]
	Event              *Factory[EventEntity]
	EventDay           *Factory[EventDayEntity]
	EventDayItem       *Factory[EventDayItemEntity]
	Faq                *Factory[FaqEntity]
	FaqSection         *Factory[FaqSectionEntity]
	Media              *Factory[MediaEntity]
	Notification       *Factory[NotificationEntity]
	Order              *Factory[OrderEntity]
	OrderItem          *Factory[OrderItemEntity]
	Place              *Factory[PlaceEntity]
	PlaceEvent         *Factory[PlaceEventEntity]
	PlaceHoliday       *Factory[PlaceHolidayEntity]
	PlaceHours         *Factory[PlaceHoursEntity]
	PlaceStatus        *Factory[PlaceStatusEntity]
	Pricing            *Factory[PricingEntity]
	PricingException   *Factory[PricingOverrideEntity]
	PricingItem        *Factory[PricingItemEntity]
	PricingOverride    *Factory[PricingOverrideEntity]
	PricingPrice       *Factory[PricingPriceEntity]
	PricingSeason      *Factory[PricingSeasonEntity]
	PricingTier        *Factory[PricingTierEntity]
	Product            *Factory[ProductEntity]
	Region             *Factory[RegionEntity]
	Section            *Factory[SectionEntity]
	System             *Factory[SystemEntity]
	SystemEndPoint     *Factory[SystemEndPointEntity]
	SystemState        *Factory[SystemStateEntity]
	Transaction        *Factory[TransactionEntity]
	User               *Factory[UserEntity]
	UserChangeRequest  *Factory[UserChangeRequestEntity]

	roles  map[string]AnyFactory
	logger logx.Logger
}

// NewRegistry 绑定全部内置实体类型。
func NewRegistry() *Registry {
	r := &Registry{roles: make(map[string]AnyFactory, 64)}
	register(r, &r.AnalyticsData, "analyticsData", func() AnalyticsDataEntity { return NewAnalyticsData() })
	register(r, &r.Account, "account", func() AccountEntity { return NewAccount() })
	register(r, &r.AccountLinkRequest, "accountLinkRequest", func() AccountLinkRequestEntity { return NewAccountLinkRequest() })
	register(r, &r.Activity, "activity", func() ActivityEntity { return NewActivity() })
	register(r, &r.ActivityBlackout, "activityBlackout", func() ActivityBlackoutEntity { return NewActivityBlackout() })
	register(r, &r.ActivityType, "activityType", func() ActivityTypeEntity { return NewActivityType() })
	register(r, &r.Alert, "alert", func() AlertEntity { return NewAlert() })
	register(r, &r.Announcement, "announcement", func() AnnouncementEntity { return NewAnnouncement() })
	register(r, &r.AppAction, "appAction", func() AppActionEntity { return NewAppAction() })
	register(r, &r.AppActionColors, "appActionColors", func() AppActionColorsEntity { return NewAppActionColors() })
	register(r, &r.AppActionImages, "appActionImages", func() AppActionImagesEntity { return NewAppActionImages() })
	register(r, &r.AppActionStrings, "appActionStrings", func() AppActionStringsEntity { return NewAppActionStrings() })
	register(r, &r.AppEvent, "appEvent", func() AppEventEntity { return NewAppEvent() })
	register(r, &r.Application, "application", func() ApplicationEntity { return NewApplication() })
	register(r, &r.Basket, "basket", func() BasketEntity { return NewBasket() })
	register(r, &r.BasketItem, "basketItem", func() BasketItemEntity { return NewBasketItem() })
	register(r, &r.Beacon, "beacon", func() BeaconEntity { return NewBeacon() })
	register(r, &r.Card, "card", func() CardEntity { return NewCard() })
	register(r, &r.Center, "center", func() CenterEntity { return NewCenter() })
	register(r, &r.CenterEvent, "centerEvent", func() PlaceEventEntity { return NewCenterEvent() })
	register(r, &r.CenterHoliday, "centerHoliday", func() PlaceHolidayEntity { return NewCenterHoliday() })
	register(r, &r.CenterHours, "centerHours", func() PlaceHoursEntity { return NewCenterHours() })
	register(r, &r.CenterStatus, "centerStatus", func() PlaceStatusEntity { return NewCenterStatus() })
	register(r, &r.ChangeRequest, "changeRequest", func() ChangeRequestEntity { return NewChangeRequest() })
	register(r, &r.Chat, "chat", func() ChatEntity { return NewChat() })
	register(r, &r.ChatMessage, "chatMessage", func() ChatMessageEntity { return NewChatMessage() })
	register(r, &r.District, "district", func() DistrictEntity { return NewDistrict() })
	register(r, &r.Document, "document", func() DocumentEntity { return NewDocument() })
	register(r, &r.Event, "event", func() EventEntity { return NewEvent() })
	register(r, &r.EventDay, "eventDay", func() EventDayEntity { return NewEventDay() })
	register(r, &r.EventDayItem, "eventDayItem", func() EventDayItemEntity { return NewEventDayItem() })
	register(r, &r.Faq, "faq", func() FaqEntity { return NewFaq() })
	register(r, &r.FaqSection, "faqSection", func() FaqSectionEntity { return NewFaqSection() })
	register(r, &r.Media, "media", func() MediaEntity { return NewMedia() })
	register(r, &r.Notification, "notification", func() NotificationEntity { return NewNotification() })
	register(r, &r.Order, "order", func() OrderEntity { return NewOrder() })
	register(r, &r.OrderItem, "orderItem", func() OrderItemEntity { return NewOrderItem() })
	register(r, &r.Place, "place", func() PlaceEntity { return NewPlace() })
	register(r, &r.PlaceEvent, "placeEvent", func() PlaceEventEntity { return NewPlaceEvent() })
	register(r, &r.PlaceHoliday, "placeHoliday", func() PlaceHolidayEntity { return NewPlaceHoliday() })
	register(r, &r.PlaceHours, "placeHours", func() PlaceHoursEntity { return NewPlaceHours() })
	register(r, &r.PlaceStatus, "placeStatus", func() PlaceStatusEntity { return NewPlaceStatus() })
	register(r, &r.Pricing, "pricing", func() PricingEntity { return NewPricing() })
	register(r, &r.PricingException, "pricingException", func() PricingOverrideEntity { return NewPricingException() })
	register(r, &r.PricingItem, "pricingItem", func() PricingItemEntity { return NewPricingItem() })
	register(r, &r.PricingOverride, "pricingOverride", func() PricingOverrideEntity { return NewPricingOverride() })
	register(r, &r.PricingPrice, "pricingPrice", func() PricingPriceEntity { return NewPricingPrice() })
	register(r, &r.PricingSeason, "pricingSeason", func() PricingSeasonEntity { return NewPricingSeason() })
	register(r, &r.PricingTier, "pricingTier", func() PricingTierEntity { return NewPricingTier() })
	register(r, &r.Product, "product", func() ProductEntity { return NewProduct() })
	register(r, &r.Region, "region", func() RegionEntity { return NewRegion() })
	register(r, &r.Section, "section", func() SectionEntity { return NewSection() })
	register(r, &r.System, "system", func() SystemEntity { return NewSystem() })
	register(r, &r.SystemEndPoint, "systemEndPoint", func() SystemEndPointEntity { return NewSystemEndPoint() })
	register(r, &r.SystemState, "systemState", func() SystemStateEntity { return NewSystemState() })
	register(r, &r.Transaction, "transaction", func() TransactionEntity { return NewTransaction() })
	register(r, &r.User, "user", func() UserEntity { return NewUser() })
	register(r, &r.UserChangeRequest, "userChangeRequest", func() UserChangeRequestEntity { return NewUserChangeRequest() })
	return r
}

func register[T Object](r *Registry, slot **Factory[T], role string, create func() T) {
	*slot = NewFactory(role, create)
	r.roles[role] = *slot
}

// Lookup 按角色名查找工厂。
func (r *Registry) Lookup(role string) (AnyFactory, bool) {
	f, ok := r.roles[role]
	return f, ok
}

// Roles 返回按字母排序的全部角色名。
func (r *Registry) Roles() []string {
	out := make([]string, 0, len(r.roles))
	for role := range r.roles {
		out = append(out, role)
	}
	sort.Strings(out)
	return out
}

// Clone 复制绑定表；修改副本不影响原注册表。
func (r *Registry) Clone() *Registry {
	c := NewRegistry()
	for role, f := range r.roles {
		c.roles[role].adopt(f)
	}
	c.logger = r.logger
	return c
}

// SetLogger 设置翻译丢弃字段的日志出口；nil 表示静默。
func (r *Registry) SetLogger(l logx.Logger) {
	r.logger = l
}

func (r *Registry) Logger() logx.Logger {
	return r.logger
}

var defaultRegistry atomic.Pointer[Registry]

func init() {
	defaultRegistry.Store(NewRegistry())
}

// Default 返回进程级默认注册表。
func Default() *Registry {
	return defaultRegistry.Load()
}

// SetDefault 原子替换默认注册表；nil 忽略。
func SetDefault(r *Registry) {
	if r != nil {
		defaultRegistry.Store(r)
	}
}

// Resolve reg 为 nil 时返回默认注册表。
func Resolve(reg *Registry) *Registry {
	if reg != nil {
		return reg
	}
	return Default()
}

// ReadRef 读取反向引用字段：接受 id 字符串或带 id 的字典，只构造一个带该 id 的空实例。
// 当前引用 id 相同则保留当前实例。
func (f *Factory[T]) ReadRef(data Dictionary, key string, dst *T) bool {
	raw, present := data[key]
	if !present {
		return false
	}
	if raw == nil {
		var zero T
		*dst = zero
		return true
	}
	id, ok := refID(raw)
	if !ok {
		return false
	}
	f.setRef(id, dst)
	return true
}

// DecodeRef 是 ReadRef 的结构化版本。
func (f *Factory[T]) DecodeRef(dec *Decoder, key string, dst *T) error {
	if _, err := dec.raw.LookupErr(key); err == nil && !dec.Has(key) {
		var zero T
		*dst = zero
		return nil
	}
	v, ok, err := dec.Value(key)
	if !ok || err != nil {
		return err
	}
	id, ok := refID(v)
	if !ok {
		return typeMismatch(dec.path(key), "reference", v)
	}
	f.setRef(id, dst)
	return nil
}

func (f *Factory[T]) setRef(id string, dst *T) {
	if id == "" {
		var zero T
		*dst = zero
		return
	}
	if cur := object(*dst); !isNil(cur) && cur.Base().ID == id {
		return
	}
	*dst = f.CreateWithID(id)
}

func refID(raw any) (string, bool) {
	if d := Dict(raw); d != nil {
		return String(d[BaseKeys.ID])
	}
	return String(raw)
}

// decodeOwned 解码必有的子对象：键不存在或为 null 时保留当前值。
func decodeOwned[T Object](f *Factory[T], dec *Decoder, key string, dst *T) error {
	v, ok, err := f.Decode(dec, key)
	if ok {
		*dst = v
	}
	return err
}
