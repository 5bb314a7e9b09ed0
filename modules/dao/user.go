package dao

import (
	"errors"
	"time"
)

var UserKeys = struct {
	Dob, Email, Favorites, FirstName, LastName, MyCards, Phone, Role, Type string
}{
	Dob:       "dob",
	Email:     "email",
	Favorites: "favorites",
	FirstName: "firstName",
	LastName:  "lastName",
	MyCards:   "myCards",
	Phone:     "phone",
	Role:      "role",
	Type:      "type",
}

// User 是账户下的一个人。Favorites 是活动编码，MyCards 是会员卡 id。
type User struct {
	BaseObject
	Dob       *time.Time
	Email     string
	Favorites []string
	FirstName string
	LastName  string
	MyCards   []string
	Phone     string
	Role      UserRole
	Type      UserType
}

type UserEntity interface {
	Object
	AsUser() *User
}

var _ UserEntity = (*User)(nil)

func NewUser() *User {
	return &User{BaseObject: NewBaseObject()}
}

func NewUserWithID(id string) *User {
	return &User{BaseObject: NewBaseObjectWithID(id)}
}

func (u *User) AsUser() *User { return u }

// FullName 名与姓之间用空格连接，缺一边时不留多余空格。
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

func (u *User) Copy() *User {
	out := &User{}
	out.copyFrom(u)
	return out
}

func (u *User) Clone() Object { return u.Copy() }

func (u *User) Update(from Object) {
	if src, ok := from.(UserEntity); ok && !isNil(src) {
		u.copyFrom(src.AsUser())
	}
}

func (u *User) copyFrom(src *User) {
	if src == u {
		return
	}
	u.UpdateBase(&src.BaseObject)
	u.Dob = copyTime(src.Dob)
	u.Email = src.Email
	u.Favorites = copyStrings(src.Favorites)
	u.FirstName = src.FirstName
	u.LastName = src.LastName
	u.MyCards = copyStrings(src.MyCards)
	u.Phone = src.Phone
	u.Role = src.Role
	u.Type = src.Type
}

func (u *User) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(UserEntity)
	if !ok || isNil(r) {
		return true
	}
	return u.Diff(r.AsUser())
}

func (u *User) Diff(rhs *User) bool {
	if u == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return u.DiffBase(&rhs.BaseObject) ||
		u.Email != rhs.Email ||
		u.FirstName != rhs.FirstName ||
		u.LastName != rhs.LastName ||
		u.Phone != rhs.Phone ||
		u.Role != rhs.Role ||
		u.Type != rhs.Type ||
		!sameTime(u.Dob, rhs.Dob) ||
		!sameStrings(u.Favorites, rhs.Favorites) ||
		!sameStrings(u.MyCards, rhs.MyCards)
}

func (u *User) Translate(data Dictionary, reg *Registry) {
	u.TranslateBase(data, reg)
	r := Read(data)
	r.OptionalTime(UserKeys.Dob, &u.Dob)
	r.String(UserKeys.Email, &u.Email)
	r.Strings(UserKeys.Favorites, &u.Favorites)
	r.String(UserKeys.FirstName, &u.FirstName)
	r.String(UserKeys.LastName, &u.LastName)
	r.Strings(UserKeys.MyCards, &u.MyCards)
	r.String(UserKeys.Phone, &u.Phone)
	ReadIntEnum(r, UserKeys.Role, &u.Role)
	ReadStringEnum(r, UserKeys.Type, &u.Type)
}

func (u *User) AsDictionary() Dictionary {
	return Merge(u.BaseDictionary(), Dictionary{
		UserKeys.Dob:       TimeOrNil(u.Dob),
		UserKeys.Email:     u.Email,
		UserKeys.Favorites: copyStrings(u.Favorites),
		UserKeys.FirstName: u.FirstName,
		UserKeys.LastName:  u.LastName,
		UserKeys.MyCards:   copyStrings(u.MyCards),
		UserKeys.Phone:     u.Phone,
		UserKeys.Role:      int(u.Role),
		UserKeys.Type:      string(u.Type),
	})
}

func (u *User) EncodeFields(enc *Encoder) error {
	if err := u.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(UserKeys.Dob, u.Dob)
	enc.Put(UserKeys.Email, u.Email)
	enc.Put(UserKeys.Favorites, nonNilStrings(u.Favorites))
	enc.Put(UserKeys.FirstName, u.FirstName)
	enc.Put(UserKeys.LastName, u.LastName)
	enc.Put(UserKeys.MyCards, nonNilStrings(u.MyCards))
	enc.Put(UserKeys.Phone, u.Phone)
	enc.Put(UserKeys.Role, int(u.Role))
	enc.Put(UserKeys.Type, string(u.Type))
	return nil
}

func (u *User) DecodeFields(dec *Decoder) error {
	if err := u.DecodeBase(dec); err != nil {
		return err
	}
	return errors.Join(
		dec.OptionalTime(UserKeys.Dob, &u.Dob),
		dec.String(UserKeys.Email, &u.Email),
		dec.Strings(UserKeys.Favorites, &u.Favorites),
		dec.String(UserKeys.FirstName, &u.FirstName),
		dec.String(UserKeys.LastName, &u.LastName),
		dec.Strings(UserKeys.MyCards, &u.MyCards),
		dec.String(UserKeys.Phone, &u.Phone),
		DecodeIntEnum(dec, UserKeys.Role, &u.Role),
		DecodeStringEnum(dec, UserKeys.Type, &u.Type),
	)
}

// ChangeRequest 是各类变更申请的公共部分，只能作为父对象的字段出现。
type ChangeRequest struct {
	BaseObject
	nestedOnlyMarker
}

type ChangeRequestEntity interface {
	Object
	AsChangeRequest() *ChangeRequest
}

var _ ChangeRequestEntity = (*ChangeRequest)(nil)

func NewChangeRequest() *ChangeRequest {
	return &ChangeRequest{BaseObject: NewBaseObject()}
}

func NewChangeRequestWithID(id string) *ChangeRequest {
	return &ChangeRequest{BaseObject: NewBaseObjectWithID(id)}
}

func (c *ChangeRequest) AsChangeRequest() *ChangeRequest { return c }

func (c *ChangeRequest) Copy() *ChangeRequest {
	out := &ChangeRequest{}
	out.copyFrom(c)
	return out
}

func (c *ChangeRequest) Clone() Object { return c.Copy() }

func (c *ChangeRequest) Update(from Object) {
	if src, ok := from.(ChangeRequestEntity); ok && !isNil(src) {
		c.copyFrom(src.AsChangeRequest())
	}
}

func (c *ChangeRequest) copyFrom(src *ChangeRequest) {
	if src != c {
		c.UpdateBase(&src.BaseObject)
	}
}

func (c *ChangeRequest) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(ChangeRequestEntity)
	if !ok || isNil(r) {
		return true
	}
	return c.Diff(r.AsChangeRequest())
}

func (c *ChangeRequest) Diff(rhs *ChangeRequest) bool {
	if c == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return c.DiffBase(&rhs.BaseObject)
}

func (c *ChangeRequest) Translate(data Dictionary, reg *Registry) {
	c.TranslateBase(data, reg)
}

func (c *ChangeRequest) AsDictionary() Dictionary {
	return c.BaseDictionary()
}

func (c *ChangeRequest) EncodeFields(enc *Encoder) error {
	return c.EncodeBase(enc)
}

func (c *ChangeRequest) DecodeFields(dec *Decoder) error {
	return c.DecodeBase(dec)
}

var UserChangeRequestKeys = struct {
	RequestedRole, User string
}{"requestedRole", "user"}

// UserChangeRequest 申请把 User 调整到 RequestedRole。
type UserChangeRequest struct {
	ChangeRequest
	RequestedRole UserRole
	User          UserEntity
}

type UserChangeRequestEntity interface {
	Object
	AsUserChangeRequest() *UserChangeRequest
}

var _ UserChangeRequestEntity = (*UserChangeRequest)(nil)

func NewUserChangeRequest() *UserChangeRequest {
	return &UserChangeRequest{ChangeRequest: *NewChangeRequest()}
}

func NewUserChangeRequestWithID(id string) *UserChangeRequest {
	return &UserChangeRequest{ChangeRequest: *NewChangeRequestWithID(id)}
}

func (u *UserChangeRequest) AsUserChangeRequest() *UserChangeRequest { return u }

func (u *UserChangeRequest) Copy() *UserChangeRequest {
	out := &UserChangeRequest{}
	out.copyFrom(u)
	return out
}

func (u *UserChangeRequest) Clone() Object { return u.Copy() }

// Update 来源只是 ChangeRequest 时只复制公共部分。
func (u *UserChangeRequest) Update(from Object) {
	switch src := from.(type) {
	case UserChangeRequestEntity:
		if !isNil(src) {
			u.copyFrom(src.AsUserChangeRequest())
		}
	case ChangeRequestEntity:
		if !isNil(src) {
			u.ChangeRequest.copyFrom(src.AsChangeRequest())
		}
	}
}

func (u *UserChangeRequest) copyFrom(src *UserChangeRequest) {
	if src == u {
		return
	}
	u.ChangeRequest.copyFrom(&src.ChangeRequest)
	u.RequestedRole = src.RequestedRole
	u.User = CloneObject(src.User)
}

func (u *UserChangeRequest) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(UserChangeRequestEntity)
	if !ok || isNil(r) {
		return true
	}
	return u.Diff(r.AsUserChangeRequest())
}

func (u *UserChangeRequest) Diff(rhs *UserChangeRequest) bool {
	if u == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return u.ChangeRequest.Diff(&rhs.ChangeRequest) ||
		u.RequestedRole != rhs.RequestedRole ||
		DiffObject(u.User, rhs.User)
}

func (u *UserChangeRequest) Translate(data Dictionary, reg *Registry) {
	reg = Resolve(reg)
	u.ChangeRequest.Translate(data, reg)
	ReadIntEnum(Read(data), UserChangeRequestKeys.RequestedRole, &u.RequestedRole)
	reg.User.Read(data, UserChangeRequestKeys.User, reg, &u.User)
}

func (u *UserChangeRequest) AsDictionary() Dictionary {
	return Merge(u.ChangeRequest.AsDictionary(), Dictionary{
		UserChangeRequestKeys.RequestedRole: int(u.RequestedRole),
		UserChangeRequestKeys.User:          ObjectDictionary(u.User),
	})
}

func (u *UserChangeRequest) EncodeFields(enc *Encoder) error {
	if err := u.ChangeRequest.EncodeFields(enc); err != nil {
		return err
	}
	enc.Put(UserChangeRequestKeys.RequestedRole, int(u.RequestedRole))
	return PutObject(enc, UserChangeRequestKeys.User, u.User)
}

func (u *UserChangeRequest) DecodeFields(dec *Decoder) error {
	if err := u.ChangeRequest.DecodeFields(dec); err != nil {
		return err
	}
	return errors.Join(
		DecodeIntEnum(dec, UserChangeRequestKeys.RequestedRole, &u.RequestedRole),
		dec.Registry().User.DecodeField(dec, UserChangeRequestKeys.User, &u.User),
	)
}

var AccountLinkRequestKeys = struct {
	Account, Approved, ApprovedBy, Requested, User string
}{"account", "approved", "approvedBy", "requested", "user"}

// AccountLinkRequest 申请把 User 关联到 Account；Approved 为 nil 表示尚未批准。
type AccountLinkRequest struct {
	BaseObject
	Account    AccountEntity
	Approved   *time.Time
	ApprovedBy string
	Requested  time.Time
	User       UserEntity
}

type AccountLinkRequestEntity interface {
	Object
	AsAccountLinkRequest() *AccountLinkRequest
}

var _ AccountLinkRequestEntity = (*AccountLinkRequest)(nil)

func NewAccountLinkRequest() *AccountLinkRequest {
	return &AccountLinkRequest{
		BaseObject: NewBaseObject(),
		Requested:  time.Now().UTC().Truncate(time.Millisecond),
	}
}

func NewAccountLinkRequestWithID(id string) *AccountLinkRequest {
	a := NewAccountLinkRequest()
	a.ID = id
	return a
}

func (a *AccountLinkRequest) AsAccountLinkRequest() *AccountLinkRequest { return a }

func (a *AccountLinkRequest) IsApproved() bool {
	return a.Approved != nil
}

func (a *AccountLinkRequest) Copy() *AccountLinkRequest {
	out := &AccountLinkRequest{}
	out.copyFrom(a)
	return out
}

func (a *AccountLinkRequest) Clone() Object { return a.Copy() }

func (a *AccountLinkRequest) Update(from Object) {
	if src, ok := from.(AccountLinkRequestEntity); ok && !isNil(src) {
		a.copyFrom(src.AsAccountLinkRequest())
	}
}

func (a *AccountLinkRequest) copyFrom(src *AccountLinkRequest) {
	if src == a {
		return
	}
	a.UpdateBase(&src.BaseObject)
	a.Account = CloneObject(src.Account)
	a.Approved = copyTime(src.Approved)
	a.ApprovedBy = src.ApprovedBy
	a.Requested = src.Requested
	a.User = CloneObject(src.User)
}

func (a *AccountLinkRequest) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(AccountLinkRequestEntity)
	if !ok || isNil(r) {
		return true
	}
	return a.Diff(r.AsAccountLinkRequest())
}

func (a *AccountLinkRequest) Diff(rhs *AccountLinkRequest) bool {
	if a == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return a.DiffBase(&rhs.BaseObject) ||
		a.ApprovedBy != rhs.ApprovedBy ||
		!a.Requested.Equal(rhs.Requested) ||
		!sameTime(a.Approved, rhs.Approved) ||
		DiffObject(a.Account, rhs.Account) ||
		DiffObject(a.User, rhs.User)
}

func (a *AccountLinkRequest) Translate(data Dictionary, reg *Registry) {
	reg = Resolve(reg)
	a.TranslateBase(data, reg)
	r := Read(data)
	reg.Account.Read(data, AccountLinkRequestKeys.Account, reg, &a.Account)
	r.OptionalTime(AccountLinkRequestKeys.Approved, &a.Approved)
	r.String(AccountLinkRequestKeys.ApprovedBy, &a.ApprovedBy)
	r.Time(AccountLinkRequestKeys.Requested, &a.Requested)
	reg.User.Read(data, AccountLinkRequestKeys.User, reg, &a.User)
}

func (a *AccountLinkRequest) AsDictionary() Dictionary {
	return Merge(a.BaseDictionary(), Dictionary{
		AccountLinkRequestKeys.Account:    ObjectDictionary(a.Account),
		AccountLinkRequestKeys.Approved:   TimeOrNil(a.Approved),
		AccountLinkRequestKeys.ApprovedBy: a.ApprovedBy,
		AccountLinkRequestKeys.Requested:  a.Requested,
		AccountLinkRequestKeys.User:       ObjectDictionary(a.User),
	})
}

func (a *AccountLinkRequest) EncodeFields(enc *Encoder) error {
	if err := a.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(AccountLinkRequestKeys.Approved, a.Approved)
	enc.Put(AccountLinkRequestKeys.ApprovedBy, a.ApprovedBy)
	enc.Put(AccountLinkRequestKeys.Requested, a.Requested)
	return errors.Join(
		PutObject(enc, AccountLinkRequestKeys.Account, a.Account),
		PutObject(enc, AccountLinkRequestKeys.User, a.User),
	)
}

func (a *AccountLinkRequest) DecodeFields(dec *Decoder) error {
	if err := a.DecodeBase(dec); err != nil {
		return err
	}
	reg := dec.Registry()
	return errors.Join(
		reg.Account.DecodeField(dec, AccountLinkRequestKeys.Account, &a.Account),
		dec.OptionalTime(AccountLinkRequestKeys.Approved, &a.Approved),
		dec.String(AccountLinkRequestKeys.ApprovedBy, &a.ApprovedBy),
		dec.Time(AccountLinkRequestKeys.Requested, &a.Requested),
		reg.User.DecodeField(dec, AccountLinkRequestKeys.User, &a.User),
	)
}
