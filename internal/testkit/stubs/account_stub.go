package stubs

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"DAOKit/modules/dao"
	"DAOKit/modules/value"
)

// Now 返回截断到毫秒的 UTC 时间，和 BSON 日期精度一致。
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

type AccountStub struct {
	account *dao.Account
}

func NewAccountStub() AccountStub {
	a := dao.NewAccountWithID(gofakeit.UUID())
	a.Name = value.NewText(gofakeit.Name())
	a.Avatar = value.NewURL(gofakeit.URL())
	a.EmailNotifications = gofakeit.Bool()
	a.PushNotifications = gofakeit.Bool()
	dob := gofakeit.DateRange(time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC)).
		UTC().Truncate(time.Millisecond)
	a.Dob = &dob
	return AccountStub{account: a}
}

func (s AccountStub) WithID(id string) AccountStub {
	s.account.ID = id
	return s
}

func (s AccountStub) WithCards(n int) AccountStub {
	for i := 0; i < n; i++ {
		c := dao.NewCardWithID(gofakeit.UUID())
		c.CardNumber = gofakeit.CreditCardNumber(nil)
		c.Nickname = gofakeit.Word()
		c.PinNumber = gofakeit.DigitN(4)
		s.account.Cards = append(s.account.Cards, c)
	}
	return s
}

func (s AccountStub) WithUsers(n int) AccountStub {
	for i := 0; i < n; i++ {
		u := dao.NewUserWithID(gofakeit.UUID())
		u.FirstName = gofakeit.FirstName()
		u.LastName = gofakeit.LastName()
		u.Email = gofakeit.Email()
		u.Phone = gofakeit.Phone()
		s.account.Users = append(s.account.Users, u)
	}
	return s
}

func (s AccountStub) Get() *dao.Account {
	return s.account
}
