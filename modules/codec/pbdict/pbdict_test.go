package pbdict

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"DAOKit/internal/testkit/stubs"
	"DAOKit/modules/dao"
)

func TestSanitize_转换成结构体可容纳的值(t *testing.T) {
	at := time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)
	got := Sanitize(dao.Dictionary{
		"at":     at,
		"tags":   []string{"a", "b"},
		"nums":   map[string]float64{"x": 1.5},
		"amount": decimal.RequireFromString("12.50"),
		"none":   (*time.Time)(nil),
		"list":   []dao.Dictionary{{"k": "v"}},
	})
	want := map[string]any{
		"at":     "2024-05-01T08:30:00Z",
		"tags":   []any{"a", "b"},
		"nums":   map[string]any{"x": 1.5},
		"amount": "12.5",
		"none":   nil,
		"list":   []any{map[string]any{"k": "v"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Sanitize 结果不符 (-want +got):\n%s", diff)
	}
}

func TestProtoJSON_账户往返(t *testing.T) {
	reg := dao.NewRegistry()
	a := stubs.NewAccountStub().WithCards(2).WithUsers(2).Get()

	data, err := MarshalJSON(a.AsDictionary(), true)
	if err != nil {
		t.Fatalf("MarshalJSON 失败: %v", err)
	}
	d, err := UnmarshalJSON(data)
	if err != nil {
		t.Fatalf("UnmarshalJSON 失败: %v", err)
	}
	back, ok := reg.Account.FromDictionary(d, reg)
	if !ok {
		t.Fatalf("期望字典可以翻译回账户")
	}
	if !dao.Equal(a, back) {
		t.Fatalf("期望往返相等\nwant=%v\ngot=%v", a.AsDictionary(), back.AsDictionary())
	}
}

func TestUnmarshalJSON_非法输入(t *testing.T) {
	_, err := UnmarshalJSON([]byte("{not json"))
	if dao.NumericCode(err) != 1002 {
		t.Fatalf("期望类型不匹配错误, got=%v", err)
	}
}

func TestFromStruct_空值(t *testing.T) {
	if d := FromStruct(nil); d == nil || len(d) != 0 {
		t.Fatalf("期望空字典, got=%v", d)
	}
}
