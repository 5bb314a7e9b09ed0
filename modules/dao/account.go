package dao

import (
	"errors"
	"time"

	"DAOKit/modules/value"
)

var AccountKeys = struct {
	Avatar, Cards, Dob, EmailNotifications, Name, PricingTierID, PushNotifications, Users string
}{
	Avatar:             "avatar",
	Cards:              "cards",
	Dob:                "dob",
	EmailNotifications: "emailNotifications",
	Name:               "name",
	PricingTierID:      "pricingTierId",
	PushNotifications:  "pushNotifications",
	Users:              "users",
}

// Account 是一个家庭/会员账户，下挂会员卡和用户。
type Account struct {
	BaseObject
	Avatar             value.URL
	Cards              []CardEntity
	Dob                *time.Time
	EmailNotifications bool
	Name               value.Text
	PricingTierID      string
	PushNotifications  bool
	Users              []UserEntity
}

type AccountEntity interface {
	Object
	AsAccount() *Account
}

var _ AccountEntity = (*Account)(nil)

func NewAccount() *Account {
	return &Account{BaseObject: NewBaseObject()}
}

func NewAccountWithID(id string) *Account {
	return &Account{BaseObject: NewBaseObjectWithID(id)}
}

func (a *Account) AsAccount() *Account { return a }

func (a *Account) Copy() *Account {
	out := &Account{}
	out.copyFrom(a)
	return out
}

func (a *Account) Clone() Object { return a.Copy() }

func (a *Account) Update(from Object) {
	if src, ok := from.(AccountEntity); ok && !isNil(src) {
		a.copyFrom(src.AsAccount())
	}
}

func (a *Account) copyFrom(src *Account) {
	if src == a {
		return
	}
	a.UpdateBase(&src.BaseObject)
	a.Avatar = src.Avatar.Copy()
	a.Cards = CloneObjects(src.Cards)
	a.Dob = copyTime(src.Dob)
	a.EmailNotifications = src.EmailNotifications
	a.Name = src.Name.Copy()
	a.PricingTierID = src.PricingTierID
	a.PushNotifications = src.PushNotifications
	a.Users = CloneObjects(src.Users)
}

func (a *Account) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(AccountEntity)
	if !ok || isNil(r) {
		return true
	}
	return a.Diff(r.AsAccount())
}

func (a *Account) Diff(rhs *Account) bool {
	if a == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return a.DiffBase(&rhs.BaseObject) ||
		a.EmailNotifications != rhs.EmailNotifications ||
		a.PushNotifications != rhs.PushNotifications ||
		a.PricingTierID != rhs.PricingTierID ||
		!sameTime(a.Dob, rhs.Dob) ||
		!a.Avatar.Equal(rhs.Avatar) ||
		!a.Name.Equal(rhs.Name) ||
		DiffObjects(a.Cards, rhs.Cards) ||
		DiffObjects(a.Users, rhs.Users)
}

func (a *Account) Translate(data Dictionary, reg *Registry) {
	reg = Resolve(reg)
	a.TranslateBase(data, reg)
	r := Read(data)
	r.URL(AccountKeys.Avatar, &a.Avatar)
	reg.Card.ReadArray(data, AccountKeys.Cards, reg, &a.Cards)
	r.OptionalTime(AccountKeys.Dob, &a.Dob)
	r.Bool(AccountKeys.EmailNotifications, &a.EmailNotifications)
	r.Text(AccountKeys.Name, &a.Name)
	r.String(AccountKeys.PricingTierID, &a.PricingTierID)
	r.Bool(AccountKeys.PushNotifications, &a.PushNotifications)
	reg.User.ReadArray(data, AccountKeys.Users, reg, &a.Users)
}

func (a *Account) AsDictionary() Dictionary {
	return Merge(a.BaseDictionary(), Dictionary{
		AccountKeys.Avatar:             a.Avatar.ToDictionary(),
		AccountKeys.Cards:              ObjectsDictionary(a.Cards),
		AccountKeys.Dob:                TimeOrNil(a.Dob),
		AccountKeys.EmailNotifications: a.EmailNotifications,
		AccountKeys.Name:               a.Name.ToDictionary(),
		AccountKeys.PricingTierID:      a.PricingTierID,
		AccountKeys.PushNotifications:  a.PushNotifications,
		AccountKeys.Users:              ObjectsDictionary(a.Users),
	})
}

func (a *Account) EncodeFields(enc *Encoder) error {
	if err := a.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(AccountKeys.Avatar, a.Avatar)
	enc.Put(AccountKeys.Dob, a.Dob)
	enc.Put(AccountKeys.EmailNotifications, a.EmailNotifications)
	enc.Put(AccountKeys.Name, a.Name)
	enc.Put(AccountKeys.PricingTierID, a.PricingTierID)
	enc.Put(AccountKeys.PushNotifications, a.PushNotifications)
	return errors.Join(
		PutObjects(enc, AccountKeys.Cards, a.Cards),
		PutObjects(enc, AccountKeys.Users, a.Users),
	)
}

func (a *Account) DecodeFields(dec *Decoder) error {
	if err := a.DecodeBase(dec); err != nil {
		return err
	}
	reg := dec.Registry()
	return errors.Join(
		dec.URL(AccountKeys.Avatar, &a.Avatar),
		reg.Card.DecodeArrayField(dec, AccountKeys.Cards, &a.Cards),
		dec.OptionalTime(AccountKeys.Dob, &a.Dob),
		dec.Bool(AccountKeys.EmailNotifications, &a.EmailNotifications),
		dec.Text(AccountKeys.Name, &a.Name),
		dec.String(AccountKeys.PricingTierID, &a.PricingTierID),
		dec.Bool(AccountKeys.PushNotifications, &a.PushNotifications),
		reg.User.DecodeArrayField(dec, AccountKeys.Users, &a.Users),
	)
}

var CardKeys = struct {
	CardNumber, Nickname, PinNumber, Transactions string
}{"cardNumber", "nickname", "pinNumber", "transactions"}

// Card 是会员卡。
type Card struct {
	BaseObject
	CardNumber   string
	Nickname     string
	PinNumber    string
	Transactions []TransactionEntity
}

type CardEntity interface {
	Object
	AsCard() *Card
}

var _ CardEntity = (*Card)(nil)

func NewCard() *Card {
	return &Card{BaseObject: NewBaseObject()}
}

func NewCardWithID(id string) *Card {
	return &Card{BaseObject: NewBaseObjectWithID(id)}
}

func (c *Card) AsCard() *Card { return c }

func (c *Card) Copy() *Card {
	out := &Card{}
	out.copyFrom(c)
	return out
}

func (c *Card) Clone() Object { return c.Copy() }

func (c *Card) Update(from Object) {
	if src, ok := from.(CardEntity); ok && !isNil(src) {
		c.copyFrom(src.AsCard())
	}
}

func (c *Card) copyFrom(src *Card) {
	if src == c {
		return
	}
	c.UpdateBase(&src.BaseObject)
	c.CardNumber = src.CardNumber
	c.Nickname = src.Nickname
	c.PinNumber = src.PinNumber
	c.Transactions = CloneObjects(src.Transactions)
}

func (c *Card) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(CardEntity)
	if !ok || isNil(r) {
		return true
	}
	return c.Diff(r.AsCard())
}

func (c *Card) Diff(rhs *Card) bool {
	if c == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return c.DiffBase(&rhs.BaseObject) ||
		c.CardNumber != rhs.CardNumber ||
		c.Nickname != rhs.Nickname ||
		c.PinNumber != rhs.PinNumber ||
		DiffObjects(c.Transactions, rhs.Transactions)
}

func (c *Card) Translate(data Dictionary, reg *Registry) {
	reg = Resolve(reg)
	c.TranslateBase(data, reg)
	r := Read(data)
	r.String(CardKeys.CardNumber, &c.CardNumber)
	r.String(CardKeys.Nickname, &c.Nickname)
	r.String(CardKeys.PinNumber, &c.PinNumber)
	reg.Transaction.ReadArray(data, CardKeys.Transactions, reg, &c.Transactions)
}

func (c *Card) AsDictionary() Dictionary {
	return Merge(c.BaseDictionary(), Dictionary{
		CardKeys.CardNumber:   c.CardNumber,
		CardKeys.Nickname:     c.Nickname,
		CardKeys.PinNumber:    c.PinNumber,
		CardKeys.Transactions: ObjectsDictionary(c.Transactions),
	})
}

func (c *Card) EncodeFields(enc *Encoder) error {
	if err := c.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(CardKeys.CardNumber, c.CardNumber)
	enc.Put(CardKeys.Nickname, c.Nickname)
	enc.Put(CardKeys.PinNumber, c.PinNumber)
	return PutObjects(enc, CardKeys.Transactions, c.Transactions)
}

func (c *Card) DecodeFields(dec *Decoder) error {
	if err := c.DecodeBase(dec); err != nil {
		return err
	}
	return errors.Join(
		dec.String(CardKeys.CardNumber, &c.CardNumber),
		dec.String(CardKeys.Nickname, &c.Nickname),
		dec.String(CardKeys.PinNumber, &c.PinNumber),
		dec.Registry().Transaction.DecodeArrayField(dec, CardKeys.Transactions, &c.Transactions),
	)
}
