package stubs

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"DAOKit/modules/dao"
	"DAOKit/modules/value"
)

type PlaceStub struct {
	place *dao.Place
}

func NewPlaceStub() PlaceStub {
	p := dao.NewPlaceWithCode(gofakeit.LetterN(6), value.NewText(gofakeit.Company()))
	p.Address = gofakeit.Street()
	p.Phone = gofakeit.Phone()
	p.Geopoint = &value.Geopoint{Latitude: gofakeit.Latitude(), Longitude: gofakeit.Longitude()}
	p.Geohashes = []string{gofakeit.LetterN(4), gofakeit.LetterN(5)}
	return PlaceStub{place: p}
}

func (s PlaceStub) WithCode(code string) PlaceStub {
	s.place.Code = code
	s.place.ID = code
	return s
}

// WithWeekdayHours 周一到周五使用同一营业时间，周末不营业。
func (s PlaceStub) WithWeekdayHours(open, close value.TimeOfDay) PlaceStub {
	h := s.place.Hours.AsPlaceHours()
	for _, d := range []*value.DayHours{&h.Monday, &h.Tuesday, &h.Wednesday, &h.Thursday, &h.Friday} {
		*d = value.NewDayHours(open, close)
	}
	return s
}

// WithStatus 追加一个 [start, start+d] 的状态，id 由场所补齐。
func (s PlaceStub) WithStatus(status dao.Status, scope dao.Scope, start time.Time, d time.Duration) PlaceStub {
	st := dao.NewPlaceStatusWithID("")
	st.Status = status
	st.Scope = scope
	st.StartTime = start.UTC().Truncate(time.Millisecond)
	st.EndTime = st.StartTime.Add(d)
	st.Message = value.NewText(gofakeit.Sentence(4))
	s.place.SetStatuses(append(s.place.Statuses, st))
	return s
}

func (s PlaceStub) WithTimeZone(loc *time.Location) PlaceStub {
	s.place.TimeZone = loc
	return s
}

func (s PlaceStub) Get() *dao.Place {
	return s.place
}
