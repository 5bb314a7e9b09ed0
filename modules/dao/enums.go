package dao

// 枚举在字典和容器里都以原始值（字符串或整数）出现；未知原始值保留当前值。

type stringEnum interface {
	~string
	Valid() bool
}

type intEnum interface {
	~int
	Valid() bool
}

func ReadStringEnum[E stringEnum](r Reader, key string, dst *E) bool {
	var s string
	if !r.String(key, &s) {
		return false
	}
	e := E(s)
	if !e.Valid() {
		return false
	}
	*dst = e
	return true
}

func ReadIntEnum[E intEnum](r Reader, key string, dst *E) bool {
	var n int
	if !r.Int(key, &n) {
		return false
	}
	e := E(n)
	if !e.Valid() {
		return false
	}
	*dst = e
	return true
}

func DecodeStringEnum[E stringEnum](dec *Decoder, key string, dst *E) error {
	if !dec.Has(key) {
		return nil
	}
	var s string
	if err := dec.String(key, &s); err != nil {
		return err
	}
	if e := E(s); e.Valid() {
		*dst = e
	}
	return nil
}

func DecodeIntEnum[E intEnum](dec *Decoder, key string, dst *E) error {
	if !dec.Has(key) {
		return nil
	}
	var n int
	if err := dec.Int(key, &n); err != nil {
		return err
	}
	if e := E(n); e.Valid() {
		*dst = e
	}
	return nil
}

func inSet[E comparable](set []E, e E) bool {
	for _, v := range set {
		if v == e {
			return true
		}
	}
	return false
}

// Status 是场所状态。
type Status string

const (
	StatusBadWeather   Status = "badWeather"
	StatusClosed       Status = "closed"
	StatusComingSoon   Status = "comingSoon"
	StatusGrandOpening Status = "grandOpening"
	StatusHidden       Status = "hidden"
	StatusHoliday      Status = "holiday"
	StatusMaintenance  Status = "maintenance"
	StatusOpen         Status = "open"
	StatusPrivateEvent Status = "privateEvent"
	StatusTempClosed   Status = "tempClosed"
	StatusTraining     Status = "training"
)

var statuses = []Status{
	StatusBadWeather, StatusClosed, StatusComingSoon, StatusGrandOpening, StatusHidden, StatusHoliday,
	StatusMaintenance, StatusOpen, StatusPrivateEvent, StatusTempClosed, StatusTraining,
}

func (s Status) Valid() bool { return inSet(statuses, s) }

// IsOpen open、grandOpening、holiday 视为营业。
func (s Status) IsOpen() bool {
	return s == StatusOpen || s == StatusGrandOpening || s == StatusHoliday
}

// Scope 是状态/提醒的作用范围，数值越小范围越窄。
type Scope int

const (
	ScopePlace    Scope = 1000
	ScopeDistrict Scope = 3000
	ScopeRegion   Scope = 5000
	ScopeAll      Scope = 10000
)

func (s Scope) Valid() bool {
	return inSet([]Scope{ScopePlace, ScopeDistrict, ScopeRegion, ScopeAll}, s)
}

type AlertScope int

const (
	AlertScopePlace AlertScope = iota
	AlertScopeDistrict
	AlertScopeRegion
	AlertScopeAll
)

func (s AlertScope) Valid() bool { return s >= AlertScopePlace && s <= AlertScopeAll }

type OrderState string

const (
	OrderStateCancelled  OrderState = "cancelled"
	OrderStateCompleted  OrderState = "completed"
	OrderStateCreated    OrderState = "created"
	OrderStateFraudulent OrderState = "fraudulent"
	OrderStatePending    OrderState = "pending"
	OrderStateProcessing OrderState = "processing"
	OrderStateRefunded   OrderState = "refunded"
	OrderStateUnknown    OrderState = "unknown"
)

func (s OrderState) Valid() bool {
	return inSet([]OrderState{
		OrderStateCancelled, OrderStateCompleted, OrderStateCreated, OrderStateFraudulent,
		OrderStatePending, OrderStateProcessing, OrderStateRefunded, OrderStateUnknown,
	}, s)
}

// UserRole 数值越大权限越高。
type UserRole int

const (
	UserRoleBlocked           UserRole = -1
	UserRoleEndUser           UserRole = 0
	UserRolePlaceViewer       UserRole = 6000
	UserRolePlaceStaff        UserRole = 7000
	UserRolePlaceOperation    UserRole = 8000
	UserRolePlaceAdmin        UserRole = 9000
	UserRoleDistrictViewer    UserRole = 60000
	UserRoleDistrictStaff     UserRole = 70000
	UserRoleDistrictOperation UserRole = 80000
	UserRoleDistrictAdmin     UserRole = 90000
	UserRoleRegionalViewer    UserRole = 100000
	UserRoleRegionalStaff     UserRole = 200000
	UserRoleRegionalOperation UserRole = 300000
	UserRoleRegionalAdmin     UserRole = 400000
	UserRoleSupportViewer     UserRole = 500000
	UserRoleSupportStaff      UserRole = 600000
	UserRoleSupportOperation  UserRole = 700000
	UserRoleSupportAdmin      UserRole = 800000
	UserRoleSuperUser         UserRole = 900000
)

var userRoles = []UserRole{
	UserRoleBlocked, UserRoleEndUser,
	UserRolePlaceViewer, UserRolePlaceStaff, UserRolePlaceOperation, UserRolePlaceAdmin,
	UserRoleDistrictViewer, UserRoleDistrictStaff, UserRoleDistrictOperation, UserRoleDistrictAdmin,
	UserRoleRegionalViewer, UserRoleRegionalStaff, UserRoleRegionalOperation, UserRoleRegionalAdmin,
	UserRoleSupportViewer, UserRoleSupportStaff, UserRoleSupportOperation, UserRoleSupportAdmin,
	UserRoleSuperUser,
}

func (r UserRole) Valid() bool { return inSet(userRoles, r) }

type UserType string

const (
	UserTypeUnknown      UserType = ""
	UserTypeChild        UserType = "child"
	UserTypeYouth        UserType = "youth"
	UserTypePendingAdult UserType = "pendingAdult"
	UserTypeAdult        UserType = "adult"
)

func (t UserType) Valid() bool {
	return inSet([]UserType{UserTypeUnknown, UserTypeChild, UserTypeYouth, UserTypePendingAdult, UserTypeAdult}, t)
}

type MediaType string

const (
	MediaTypeUnknown       MediaType = "unknown"
	MediaTypeStaticImage   MediaType = "staticImage"
	MediaTypeAnimatedImage MediaType = "animatedImage"
	MediaTypeVideo         MediaType = "video"
)

func (t MediaType) Valid() bool {
	return inSet([]MediaType{MediaTypeUnknown, MediaTypeStaticImage, MediaTypeAnimatedImage, MediaTypeVideo}, t)
}

type NotificationType string

const (
	NotificationTypeUnknown      NotificationType = "unknown"
	NotificationTypeAlert        NotificationType = "alert"
	NotificationTypeDeepLink     NotificationType = "deepLink"
	NotificationTypeDeepLinkAuto NotificationType = "deepLinkAuto"
)

func (t NotificationType) Valid() bool {
	return inSet([]NotificationType{
		NotificationTypeUnknown, NotificationTypeAlert, NotificationTypeDeepLink, NotificationTypeDeepLinkAuto,
	}, t)
}

type Visibility string

const (
	VisibilityAdultsOnly  Visibility = "adultsOnly"
	VisibilityEveryone    Visibility = "everyone"
	VisibilityStaffCadets Visibility = "staffCadets"
	VisibilityStaffOnly   Visibility = "staffOnly"
)

func (v Visibility) Valid() bool {
	return inSet([]Visibility{VisibilityAdultsOnly, VisibilityEveryone, VisibilityStaffCadets, VisibilityStaffOnly}, v)
}

// SystemStateColor 是系统健康度的颜色。
type SystemStateColor string

const (
	SystemStateNone   SystemStateColor = "none"
	SystemStateGreen  SystemStateColor = "green"
	SystemStateOrange SystemStateColor = "orange"
	SystemStateRed    SystemStateColor = "red"
	SystemStateYellow SystemStateColor = "yellow"
)

func (c SystemStateColor) Valid() bool {
	return inSet([]SystemStateColor{SystemStateNone, SystemStateGreen, SystemStateOrange, SystemStateRed, SystemStateYellow}, c)
}

type AppActionType string

const (
	AppActionTypeDrawer     AppActionType = "drawer"
	AppActionTypeFullScreen AppActionType = "fullScreen"
	AppActionTypePopup      AppActionType = "popup"
	AppActionTypeStage      AppActionType = "stage"
)

func (t AppActionType) Valid() bool {
	return inSet([]AppActionType{AppActionTypeDrawer, AppActionTypeFullScreen, AppActionTypePopup, AppActionTypeStage}, t)
}

// 优先级取值范围 [PriorityNone, PriorityHighest]，越大越优先。
const (
	PriorityNone    = 0
	PriorityLowest  = 1
	PriorityLow     = 1000
	PriorityNormal  = 5000
	PriorityHigh    = 9000
	PriorityHighest = 10000
)

// ClampPriority 把越界的优先级收敛到合法范围。
func ClampPriority(p int) int {
	switch {
	case p > PriorityHighest:
		return PriorityHighest
	case p < PriorityNone:
		return PriorityNone
	}
	return p
}
