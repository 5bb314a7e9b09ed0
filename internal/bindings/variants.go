package bindings

import (
	"errors"

	"DAOKit/modules/dao"
)

var LoyaltyAccountKeys = struct {
	Points, Tier string
}{"loyaltyPoints", "loyaltyTier"}

// LoyaltyAccount 在内置 Account 上加会员积分。
type LoyaltyAccount struct {
	dao.Account
	Points int
	Tier   string
}

var _ dao.AccountEntity = (*LoyaltyAccount)(nil)

func NewLoyaltyAccount() *LoyaltyAccount {
	return &LoyaltyAccount{Account: *dao.NewAccount()}
}

func (a *LoyaltyAccount) Copy() *LoyaltyAccount {
	out := &LoyaltyAccount{}
	out.Update(a)
	return out
}

func (a *LoyaltyAccount) Clone() dao.Object { return a.Copy() }

func (a *LoyaltyAccount) Update(from dao.Object) {
	a.Account.Update(from)
	if src, ok := from.(*LoyaltyAccount); ok && src != nil {
		a.Points = src.Points
		a.Tier = src.Tier
	}
}

// IsDiffFrom 内置 Account 与 LoyaltyAccount 总是不同。
func (a *LoyaltyAccount) IsDiffFrom(rhs dao.Object) bool {
	r, ok := rhs.(*LoyaltyAccount)
	if !ok || r == nil {
		return true
	}
	return a.Account.Diff(&r.Account) || a.Points != r.Points || a.Tier != r.Tier
}

func (a *LoyaltyAccount) Translate(data dao.Dictionary, reg *dao.Registry) {
	a.Account.Translate(data, reg)
	r := dao.Read(data)
	r.Int(LoyaltyAccountKeys.Points, &a.Points)
	r.String(LoyaltyAccountKeys.Tier, &a.Tier)
}

func (a *LoyaltyAccount) AsDictionary() dao.Dictionary {
	return dao.Merge(a.Account.AsDictionary(), dao.Dictionary{
		LoyaltyAccountKeys.Points: a.Points,
		LoyaltyAccountKeys.Tier:   a.Tier,
	})
}

func (a *LoyaltyAccount) EncodeFields(enc *dao.Encoder) error {
	if err := a.Account.EncodeFields(enc); err != nil {
		return err
	}
	enc.Put(LoyaltyAccountKeys.Points, a.Points)
	enc.Put(LoyaltyAccountKeys.Tier, a.Tier)
	return nil
}

func (a *LoyaltyAccount) DecodeFields(dec *dao.Decoder) error {
	if err := a.Account.DecodeFields(dec); err != nil {
		return err
	}
	return errors.Join(
		dec.Int(LoyaltyAccountKeys.Points, &a.Points),
		dec.String(LoyaltyAccountKeys.Tier, &a.Tier),
	)
}

var VenueKeys = struct {
	Capacity, Indoor string
}{"capacity", "indoor"}

// Venue 是带容量信息的场所。
type Venue struct {
	dao.Place
	Capacity int
	Indoor   bool
}

var _ dao.PlaceEntity = (*Venue)(nil)

func NewVenue() *Venue {
	return &Venue{Place: *dao.NewPlace()}
}

func (v *Venue) Copy() *Venue {
	out := &Venue{}
	out.Update(v)
	return out
}

func (v *Venue) Clone() dao.Object { return v.Copy() }

func (v *Venue) Update(from dao.Object) {
	v.Place.Update(from)
	if src, ok := from.(*Venue); ok && src != nil {
		v.Capacity = src.Capacity
		v.Indoor = src.Indoor
	}
}

func (v *Venue) IsDiffFrom(rhs dao.Object) bool {
	r, ok := rhs.(*Venue)
	if !ok || r == nil {
		return true
	}
	return v.Place.Diff(&r.Place) || v.Capacity != r.Capacity || v.Indoor != r.Indoor
}

func (v *Venue) Translate(data dao.Dictionary, reg *dao.Registry) {
	v.Place.Translate(data, reg)
	r := dao.Read(data)
	r.Int(VenueKeys.Capacity, &v.Capacity)
	r.Bool(VenueKeys.Indoor, &v.Indoor)
}

func (v *Venue) AsDictionary() dao.Dictionary {
	return dao.Merge(v.Place.AsDictionary(), dao.Dictionary{
		VenueKeys.Capacity: v.Capacity,
		VenueKeys.Indoor:   v.Indoor,
	})
}

func (v *Venue) EncodeFields(enc *dao.Encoder) error {
	if err := v.Place.EncodeFields(enc); err != nil {
		return err
	}
	enc.Put(VenueKeys.Capacity, v.Capacity)
	enc.Put(VenueKeys.Indoor, v.Indoor)
	return nil
}

func (v *Venue) DecodeFields(dec *dao.Decoder) error {
	if err := v.Place.DecodeFields(dec); err != nil {
		return err
	}
	return errors.Join(
		dec.Int(VenueKeys.Capacity, &v.Capacity),
		dec.Bool(VenueKeys.Indoor, &v.Indoor),
	)
}
