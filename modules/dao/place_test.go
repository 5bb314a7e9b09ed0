package dao

import (
	"fmt"
	"testing"
	"time"

	"DAOKit/modules/value"
)

func placeStatus(status Status, scope Scope, start, end time.Time, msg string) *PlaceStatus {
	s := NewPlaceStatusWithID("")
	s.Status = status
	s.Scope = scope
	s.StartTime = start
	s.EndTime = end
	s.Message = value.NewText(msg)
	return s
}

func TestPlace_窄范围状态优先(t *testing.T) {
	at := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	p := NewPlaceWithCode("p1", value.NewText("Pier"))
	region := placeStatus(StatusBadWeather, ScopeRegion, at.Add(-time.Hour), at.Add(time.Hour), "storm")
	place := placeStatus(StatusOpen, ScopePlace, at.Add(-3*time.Hour), at.Add(3*time.Hour), "welcome")
	p.SetStatuses([]PlaceStatusEntity{region, place})

	got := p.Status(at).AsPlaceStatus()
	if got.Status != StatusOpen || got.Scope != ScopePlace {
		t.Fatalf("期望 place 范围状态胜出, got=%s/%d", got.Status, got.Scope)
	}
	if !p.IsOpen(at) || p.StatusMessage(at).String() != "welcome" {
		t.Fatalf("期望营业且消息为 welcome")
	}
}

func TestPlace_同范围取开始最晚的状态(t *testing.T) {
	at := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	p := NewPlaceWithCode("p1", nil)
	older := placeStatus(StatusOpen, ScopePlace, at.Add(-5*time.Hour), at.Add(5*time.Hour), "")
	newer := placeStatus(StatusClosed, ScopePlace, at.Add(-time.Hour), at.Add(time.Hour), "closed")
	p.SetStatuses([]PlaceStatusEntity{older, newer})

	if p.IsOpen(at) {
		t.Fatalf("期望开始最晚的 closed 状态胜出")
	}
}

func TestPlace_同一天的状态也参与候选(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	p := NewPlaceWithCode("p1", nil)
	// 当天早上已经结束的维护状态，窗口不包含中午，但与中午同一天
	maint := placeStatus(StatusMaintenance, ScopePlace, day.Add(6*time.Hour), day.Add(8*time.Hour), "")
	p.SetStatuses([]PlaceStatusEntity{maint})

	if got := p.Status(day.Add(12 * time.Hour)).AsPlaceStatus().Status; got != StatusMaintenance {
		t.Fatalf("期望同一天的状态生效, got=%s", got)
	}
	if got := p.Status(day.AddDate(0, 0, 2)).AsPlaceStatus().Status; got != StatusOpen {
		t.Fatalf("期望两天后回到 open, got=%s", got)
	}
}

func TestPlace_同一天按场所时区判断(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*3600)
	p := NewPlaceWithCode("p1", nil)
	p.TimeZone = loc
	// 场所当地 3/10 22:00-23:00，即 UTC 3/11 06:00-07:00
	start := time.Date(2024, 3, 10, 22, 0, 0, 0, loc)
	p.SetStatuses([]PlaceStatusEntity{placeStatus(StatusPrivateEvent, ScopePlace, start, start.Add(time.Hour), "")})

	// 当地 3/10 09:00
	morning := time.Date(2024, 3, 10, 9, 0, 0, 0, loc)
	if got := p.Status(morning).AsPlaceStatus().Status; got != StatusPrivateEvent {
		t.Fatalf("期望按场所时区属于同一天, got=%s", got)
	}
}

func TestPlace_没有状态时营业(t *testing.T) {
	p := NewPlace()
	if !p.IsOpen(time.Now()) {
		t.Fatalf("期望没有状态时营业")
	}
	if got := p.StatusNow().AsPlaceStatus().Status; got != StatusOpen {
		t.Fatalf("期望 StatusNow 默认 open, got=%s", got)
	}
}

func TestPlace_为空id的状态补齐id(t *testing.T) {
	start := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	p := NewPlaceWithCode("pier", nil)
	st := placeStatus(StatusHoliday, ScopePlace, start, start.Add(time.Hour), "")
	kept := placeStatus(StatusOpen, ScopePlace, start, start.Add(time.Hour), "")
	kept.ID = "custom"
	p.SetStatuses([]PlaceStatusEntity{st, kept})

	want := fmt.Sprintf("pier:holiday:%d", start.Unix())
	if st.ID != want {
		t.Fatalf("期望 id=%s, got=%s", want, st.ID)
	}
	if kept.ID != "custom" {
		t.Fatalf("期望已有 id 保留, got=%s", kept.ID)
	}

	// 翻译路径同样补齐
	back, _ := NewRegistry().Place.FromDictionary(Dictionary{
		"code":     "pier",
		"statuses": []any{Dictionary{"id": "", "status": "holiday", "startTime": start}},
	}, nil)
	if got := back.AsPlace().Statuses[0].Base().ID; got != want {
		t.Fatalf("期望翻译后 id=%s, got=%s", want, got)
	}
}

func TestPlace_拷贝互不影响(t *testing.T) {
	at := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	p := NewPlaceWithCode("p1", value.NewText("Pier"))
	p.Geohashes = []string{"9q8y"}
	p.SetStatuses([]PlaceStatusEntity{placeStatus(StatusClosed, ScopePlace, at, at.Add(time.Hour), "x")})

	c := p.Copy()
	if p.Diff(c) || c.Diff(p) {
		t.Fatalf("期望拷贝与原对象相等")
	}
	c.Geohashes[0] = "zzzz"
	c.Name["en"] = "Dock"
	c.Statuses[0].AsPlaceStatus().Status = StatusOpen
	c.Hours.AsPlaceHours().Monday = value.NewDayHours(value.NewTimeOfDay(8, 0), value.NewTimeOfDay(9, 0))

	if p.Geohashes[0] != "9q8y" || p.Name.String() != "Pier" {
		t.Fatalf("期望原对象标量集合未受影响")
	}
	if p.Statuses[0].AsPlaceStatus().Status != StatusClosed {
		t.Fatalf("期望原对象的状态未受影响")
	}
	if !p.Hours.AsPlaceHours().Monday.IsClosed() {
		t.Fatalf("期望原对象的营业时间未受影响")
	}
	if !p.Diff(c) || !c.Diff(p) {
		t.Fatalf("期望修改后两边都判为不同")
	}
}

func TestPlaceHours_节假日优先于周时间表(t *testing.T) {
	monday := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)
	h := NewPlaceHours()
	h.Monday = value.NewDayHours(value.NewTimeOfDay(9, 0), value.NewTimeOfDay(17, 0))

	open := h.TodayOpen(monday)
	if open == nil || !open.Equal(time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("期望周一 09:00 开门, got=%v", open)
	}
	if h.TodayOpen(monday.AddDate(0, 0, 1)) != nil {
		t.Fatalf("期望周二不营业")
	}

	hol := NewPlaceHoliday()
	hol.Date = time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	hol.Hours = value.NewDayHours(value.NewTimeOfDay(11, 0), value.NewTimeOfDay(15, 0))
	h.Holidays = []PlaceHolidayEntity{hol}

	closeAt := h.TodayClose(monday)
	if closeAt == nil || closeAt.Hour() != 15 {
		t.Fatalf("期望节假日 15:00 关门, got=%v", closeAt)
	}
	if got := h.For(time.Monday); got.Open.Hour != 9 {
		t.Fatalf("期望 For 不受节假日影响, got=%v", got.Open)
	}
}

func TestPlaceHours_字典翻译营业时间(t *testing.T) {
	h, ok := NewRegistry().PlaceHours.FromDictionary(Dictionary{
		"monday":  Dictionary{"open": "08:30", "close": "18:00"},
		"tuesday": Dictionary{"open": 9.5, "close": 17},
	}, nil)
	if !ok {
		t.Fatalf("期望翻译成功")
	}
	hours := h.AsPlaceHours()
	if hours.Monday.Open.String() != "08:30" || hours.Tuesday.Open.String() != "09:30" || hours.Tuesday.Close.String() != "17:00" {
		t.Fatalf("营业时间解析错误: mon=%v tue=%v", hours.Monday.ToDictionary(), hours.Tuesday.ToDictionary())
	}
	if !hours.Sunday.IsClosed() {
		t.Fatalf("期望未给出的日子不营业")
	}
}

func TestSection_拷贝后子分组回指新父对象(t *testing.T) {
	root := NewSectionWithID("root")
	child := NewSectionWithID("child")
	root.AddChild(child)
	if child.Parent != SectionEntity(root) {
		t.Fatalf("期望 AddChild 设置 Parent")
	}

	c := root.Copy()
	got := c.Children[0].AsSection()
	if got == child || got.Parent != SectionEntity(c) {
		t.Fatalf("期望拷贝出的子分组回指新的父对象")
	}
	if child.Parent != SectionEntity(root) {
		t.Fatalf("期望原子分组仍回指原父对象")
	}
	if root.Diff(c) {
		t.Fatalf("期望拷贝相等")
	}
}

func TestSection_翻译后子分组回指父对象(t *testing.T) {
	s, ok := NewRegistry().Section.FromDictionary(Dictionary{
		"id":       "root",
		"children": []any{Dictionary{"id": "c1", "parent": "root"}, Dictionary{"id": "c2"}},
	}, nil)
	if !ok {
		t.Fatalf("期望翻译成功")
	}
	for _, c := range s.AsSection().Children {
		if c.AsSection().Parent != s {
			t.Fatalf("期望子分组 %s 回指父对象", c.Base().ID)
		}
	}
	if got := s.AsSection().AsDictionary()["children"].([]Dictionary)[1]["parent"]; got != "root" {
		t.Fatalf("期望字典里的 parent 只输出 id, got=%v", got)
	}
}
