package dao

import (
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"DAOKit/modules/kit/logx"
	"DAOKit/modules/value"
)

func TestDiff_自反且对称(t *testing.T) {
	faker := gofakeit.New(7)
	reg := NewRegistry()
	for _, role := range reg.Roles() {
		f, _ := reg.Lookup(role)
		a := f.New()
		if a.IsDiffFrom(a) {
			t.Fatalf("角色 %s 期望与自身相同", role)
		}
		c := a.Clone()
		if a.IsDiffFrom(c) || c.IsDiffFrom(a) {
			t.Fatalf("角色 %s 期望与拷贝相同", role)
		}
		c.Base().ID = faker.UUID()
		if !a.IsDiffFrom(c) || !c.IsDiffFrom(a) {
			t.Fatalf("角色 %s 期望 id 不同后两边都判为不同", role)
		}
	}
}

func TestDiff_不同角色判为不同(t *testing.T) {
	a := NewAccountWithID("x")
	u := NewUserWithID("x")
	if !a.IsDiffFrom(u) || !Equal(nil, nil) || Equal(a, nil) {
		t.Fatalf("期望不同角色/nil 的比较符合约定")
	}
}

func TestDiffObjectSet_不按重数匹配(t *testing.T) {
	a := NewAnalyticsDataWithID("a")
	b := NewAnalyticsDataWithID("b")
	a2 := a.Copy()
	b2 := b.Copy()

	lhs := []AnalyticsDataEntity{a, a2, b}
	rhs := []AnalyticsDataEntity{a, b, b2}
	if DiffObjectSet(lhs, rhs) {
		t.Fatalf("期望 [a,a,b] 与 [a,b,b] 视为相同")
	}
	if !DiffObjectSet(lhs[:2], rhs) {
		t.Fatalf("期望数量不同即不同")
	}
	if DiffObjectSet([]AnalyticsDataEntity{b, a}, []AnalyticsDataEntity{a, b}) {
		t.Fatalf("期望顺序无关")
	}
	if !DiffObjects([]AnalyticsDataEntity{b, a}, []AnalyticsDataEntity{a, b}) {
		t.Fatalf("期望有序集合按位置比较")
	}
}

func TestAnalyticsData_数据按集合比较(t *testing.T) {
	n1 := value.AnalyticsNumbers{Android: 1, IOS: 2, Total: 3}
	n2 := value.AnalyticsNumbers{Android: 4, IOS: 5, Total: 9}
	a := NewAnalyticsDataWithID("x")
	a.Data = []value.AnalyticsNumbers{n1, n1, n2}
	b := a.Copy()
	b.Data = []value.AnalyticsNumbers{n1, n2, n2}
	if a.Diff(b) {
		t.Fatalf("期望数据集合相同")
	}
	b.Data = []value.AnalyticsNumbers{n1, n2}
	if a.Diff(b) || b.Diff(a) {
		t.Fatalf("期望只差重复值时不算不同")
	}
	b.Data = []value.AnalyticsNumbers{n1}
	if !a.Diff(b) {
		t.Fatalf("期望 a 中有值在 b 里找不到时不同")
	}
	if b.Diff(a) {
		t.Fatalf("期望单向比较：b 的每个值都能在 a 里找到")
	}
}

func TestCopy_基础部分深拷贝(t *testing.T) {
	a := NewAccountWithID("a1")
	ad := NewAnalyticsDataWithID("ad")
	ad.Title = value.NewText("visits")
	a.AnalyticsData = []AnalyticsDataEntity{ad}
	a.Meta.GenericValues["k"] = []any{"v"}

	c := a.Copy()
	c.Meta.GenericValues["k"].([]any)[0] = "w"
	if a.Meta.GenericValues["k"].([]any)[0] != "v" {
		t.Fatalf("期望 genericValues 被深拷贝")
	}
	if a.Diff(c) {
		t.Fatalf("期望 genericValues 不参与比较")
	}
	c.AnalyticsData[0].AsAnalyticsData().Title["en"] = "changed"
	if ad.Title.String() != "visits" {
		t.Fatalf("期望分析记录被深拷贝")
	}
	if !a.Diff(c) {
		t.Fatalf("期望分析记录不同后判为不同")
	}
}

func TestTranslate_无法转换的字段保留当前值并记日志(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	reg := NewRegistry()
	reg.SetLogger(logx.NewZapLogger(zap.New(core)))

	p := NewPlaceWithCode("p1", nil)
	p.Phone = "555"
	p.Translate(Dictionary{
		"phone":      []any{"x"},
		"activities": "not-an-array",
		"section":    42,
	}, reg)
	if p.Phone != "555" {
		t.Fatalf("期望无法转换的 phone 保留, got=%q", p.Phone)
	}
	if p.Section != nil || len(p.Activities) != 0 {
		t.Fatalf("期望无效子对象被置空")
	}
	if logs.Len() < 2 {
		t.Fatalf("期望记录被丢弃的字段, got=%d", logs.Len())
	}
}

func TestTranslate_宽松转换(t *testing.T) {
	f, ok := NewRegistry().Beacon.FromDictionary(Dictionary{
		"code":     "b1",
		"major":    "12",
		"minor":    7.0,
		"accuracy": -1,
		"distance": "3.5",
	}, nil)
	if !ok {
		t.Fatalf("期望翻译成功")
	}
	b := f.AsBeacon()
	if b.Major != 12 || b.Minor != 7 || b.Distance != 3.5 {
		t.Fatalf("期望数字字符串被宽松转换, got=%+v", b)
	}
	if b.Accuracy != 50 {
		t.Fatalf("期望负精度映射为 50, got=%v", b.Accuracy)
	}
}

func TestEvent_活动日按日期排序(t *testing.T) {
	d1 := NewEventDayWithID("d1")
	d1.Date = time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)
	d2 := NewEventDayWithID("d2")
	d2.Date = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	e := NewEvent()
	e.SetDays([]EventDayEntity{d1, d2})

	if e.Days[0].Base().ID != "d2" {
		t.Fatalf("期望按日期升序")
	}
	if !e.StartDate().Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("StartDate 错误: %v", e.StartDate())
	}
	if !e.EndDate().Equal(time.Date(2024, 5, 3, 23, 59, 0, 0, time.UTC)) {
		t.Fatalf("EndDate 错误: %v", e.EndDate())
	}
	if e.Chat == nil || e.Pricing == nil {
		t.Fatalf("期望 Chat/Pricing 始终存在")
	}
}

func TestSystem_状态覆盖与历史(t *testing.T) {
	s := NewSystemWithID("s1")
	if s.State() != SystemStateNone {
		t.Fatalf("期望没有当前状态时为 none")
	}
	cur := NewSystemState()
	cur.State = SystemStateYellow
	s.CurrentState = cur
	if s.State() != SystemStateYellow {
		t.Fatalf("期望取当前状态")
	}
	cur.StateOverride = SystemStateRed
	if s.State() != SystemStateRed {
		t.Fatalf("期望覆盖状态优先")
	}

	ep := NewSystemEndPointWithID("ep1")
	ep.CurrentState = nil
	older := NewSystemState()
	older.State = SystemStateOrange
	newer := NewSystemState()
	newer.State = SystemStateGreen
	newer.Meta.Updated = older.Meta.Updated.Add(time.Minute)
	ep.HistoryState = []SystemStateEntity{newer, older}
	s.AddEndPoint(ep)
	if ep.State() != SystemStateGreen {
		t.Fatalf("期望取历史里最近更新的状态, got=%s", ep.State())
	}

	c := s.Copy()
	if c.EndPoints[0].AsSystemEndPoint().System != SystemEntity(c) {
		t.Fatalf("期望拷贝出的端点回指新系统")
	}
}

func TestErrors_数字码与派生(t *testing.T) {
	err := NewError(CodeDecodeUnsupported, map[string]any{"role": "basketItem"}, nil)
	if !errors.Is(err, ErrDecodeUnsupported) || NumericCode(err) != 1004 {
		t.Fatalf("期望派生错误保留语义, got=%v code=%d", err, NumericCode(err))
	}
	unknown := NewError("NOPE", nil, errors.New("boom"))
	if NumericCode(unknown) != 1001 {
		t.Fatalf("期望未知码按 1001 处理")
	}
	if NumericCode(errors.New("plain")) != 0 {
		t.Fatalf("期望非本域错误返回 0")
	}
}
