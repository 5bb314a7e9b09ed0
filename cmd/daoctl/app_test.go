package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"DAOKit/internal/shared/config"
	"DAOKit/internal/testkit/stubs"
	"DAOKit/modules/dao"
	"DAOKit/modules/kit/errx"
	"DAOKit/modules/kit/logx"
)

// memStore 以 BSON 字节保存实体。
type memStore struct {
	reg  *dao.Registry
	docs map[string][]byte
}

func (m *memStore) Save(_ context.Context, role string, obj dao.Object) error {
	data, err := dao.Marshal(obj, m.reg)
	if err != nil {
		return err
	}
	m.docs[role+"/"+obj.Base().ID] = data
	return nil
}

func (m *memStore) Load(_ context.Context, role, id string) (dao.Object, error) {
	data, ok := m.docs[role+"/"+id]
	if !ok {
		return nil, errx.ErrNotFound.WithData("id", id)
	}
	f, _ := m.reg.Lookup(role)
	return f.Unmarshal(data, m.reg)
}

func newTestApp(t *testing.T) (*app, *bytes.Buffer) {
	t.Helper()
	cfg := config.Default()
	cfg.Output.Indent = false
	out := &bytes.Buffer{}
	a := newApp(cfg, dao.NewRegistry(), logx.Nop(), out)
	store := &memStore{reg: a.reg, docs: map[string][]byte{}}
	a.openStore = func(context.Context) (objectStore, func(), error) { return store, func() {}, nil }
	return a, out
}

func writeDictionary(t *testing.T, obj dao.Object) string {
	t.Helper()
	data, err := json.Marshal(obj.AsDictionary())
	if err != nil {
		t.Fatalf("序列化字典失败: %v", err)
	}
	path := filepath.Join(t.TempDir(), obj.Base().ID+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("写文件失败: %v", err)
	}
	return path
}

func lastLine(out *bytes.Buffer) []byte {
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	return []byte(lines[len(lines)-1])
}

func TestRoundtrip_账户两条路径都相等(t *testing.T) {
	a, out := newTestApp(t)
	path := writeDictionary(t, stubs.NewAccountStub().WithCards(1).WithUsers(1).Get())

	if err := a.run(context.Background(), "roundtrip", []string{"account", path}); err != nil {
		t.Fatalf("roundtrip 失败: %v", err)
	}
	var got roundtripReport
	if err := json.Unmarshal(lastLine(out), &got); err != nil {
		t.Fatalf("解析输出失败: %v", err)
	}
	if !got.BSON || !got.Dictionary {
		t.Fatalf("期望两条往返路径都相等, got=%+v", got)
	}
}

func TestStatus_窗口内返回关闭(t *testing.T) {
	a, out := newTestApp(t)
	start := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)
	p := stubs.NewPlaceStub().WithCode("pier").WithStatus(dao.StatusClosed, dao.ScopePlace, start, 2*time.Hour).Get()
	path := writeDictionary(t, p)

	at := start.Add(time.Hour).Format(time.RFC3339)
	if err := a.run(context.Background(), "status", []string{path, at}); err != nil {
		t.Fatalf("status 失败: %v", err)
	}
	var got statusReport
	if err := json.Unmarshal(lastLine(out), &got); err != nil {
		t.Fatalf("解析输出失败: %v", err)
	}
	if got.Code != "pier" || got.Status != string(dao.StatusClosed) || got.Open {
		t.Fatalf("期望 pier 关闭, got=%+v", got)
	}
}

func TestPrice_覆盖价生效(t *testing.T) {
	a, out := newTestApp(t)
	at := time.Date(2024, 12, 24, 12, 0, 0, 0, time.UTC)
	p := stubs.NewPricingStub("standard").
		WithSeasonPrice("10.00").
		WithOverride("5.00", dao.PriorityHigh, at.Add(-time.Hour), at.Add(time.Hour)).
		Get()
	path := writeDictionary(t, p)

	if err := a.run(context.Background(), "price", []string{path, "standard", at.Format(time.RFC3339)}); err != nil {
		t.Fatalf("price 失败: %v", err)
	}
	var got priceReport
	if err := json.Unmarshal(lastLine(out), &got); err != nil {
		t.Fatalf("解析输出失败: %v", err)
	}
	if !got.Found || got.Amount != "5.00" || got.Override == "" {
		t.Fatalf("期望覆盖价 5.00, got=%+v", got)
	}
}

func TestSaveLoad_经存储端口往返(t *testing.T) {
	a, out := newTestApp(t)
	acc := stubs.NewAccountStub().WithID("acc-1").WithCards(2).Get()
	path := writeDictionary(t, acc)

	if err := a.run(context.Background(), "save", []string{"account", path}); err != nil {
		t.Fatalf("save 失败: %v", err)
	}
	out.Reset()
	a.cfg.Output.Format = FormatExtJSON
	if err := a.run(context.Background(), "load", []string{"account", "acc-1"}); err != nil {
		t.Fatalf("load 失败: %v", err)
	}
	back, err := dao.UnmarshalJSON(lastLine(out), a.reg.Account, a.reg)
	if err != nil {
		t.Fatalf("解析 extjson 失败: %v", err)
	}
	if !dao.Equal(acc, back) {
		t.Fatalf("期望读回的账户相等")
	}
}

func TestLoad_不存在返回NotFound(t *testing.T) {
	a, _ := newTestApp(t)
	err := a.run(context.Background(), "load", []string{"account", "missing"})
	if !errors.Is(err, errx.ErrNotFound) {
		t.Fatalf("期望 NotFound, got=%v", err)
	}
}

func TestRun_参数错误(t *testing.T) {
	a, _ := newTestApp(t)
	cases := []struct {
		cmd  string
		args []string
	}{
		{"nope", nil},
		{"roundtrip", []string{"account"}},
		{"roundtrip", []string{"unicorn", "x.json"}},
		{"diff", []string{"account", "a.json"}},
		{"status", nil},
	}
	for _, c := range cases {
		if err := a.run(context.Background(), c.cmd, c.args); !errors.Is(err, errx.ErrInvalidArgument) {
			t.Fatalf("%s %v: 期望参数错误, got=%v", c.cmd, c.args, err)
		}
	}
}

func TestFactory_限定允许的角色(t *testing.T) {
	a, _ := newTestApp(t)
	a.cfg.Output.Roles = []string{"place"}
	if _, err := a.factory("account"); !errors.Is(err, errx.ErrInvalidArgument) {
		t.Fatalf("期望 account 被拒绝, got=%v", err)
	}
	if _, err := a.factory("place"); err != nil {
		t.Fatalf("期望 place 允许, got=%v", err)
	}
}

func TestDiff_列出变化的键(t *testing.T) {
	a, out := newTestApp(t)
	acc := stubs.NewAccountStub().WithID("acc-2").Get()
	lhs := writeDictionary(t, acc)
	changed := acc.Copy()
	changed.PricingTierID = "gold"
	changed.PushNotifications = !acc.PushNotifications
	rhs := writeDictionary(t, changed)

	if err := a.run(context.Background(), "diff", []string{"account", lhs, rhs}); err != nil {
		t.Fatalf("diff 失败: %v", err)
	}
	var got diffReport
	if err := json.Unmarshal(lastLine(out), &got); err != nil {
		t.Fatalf("解析输出失败: %v", err)
	}
	want := diffReport{Role: "account", Equal: false, ChangedKeys: []string{"pricingTierId", "pushNotifications"}}
	if d := cmp.Diff(want, got); d != "" {
		t.Fatalf("diff 报告不符 (-want +got):\n%s", d)
	}
}

func TestWriteObject_三种格式(t *testing.T) {
	for _, format := range []string{FormatDictionary, FormatExtJSON, FormatProtoJSON} {
		a, out := newTestApp(t)
		a.cfg.Output.Format = format
		if err := a.writeObject(stubs.NewAccountStub().Get()); err != nil {
			t.Fatalf("%s: 输出失败: %v", format, err)
		}
		if !json.Valid(lastLine(out)) {
			t.Fatalf("%s: 期望合法 JSON, got=%s", format, out.String())
		}
	}
	a, _ := newTestApp(t)
	a.cfg.Output.Format = "yaml"
	if err := a.writeObject(stubs.NewAccountStub().Get()); !errors.Is(err, errx.ErrInvalidArgument) {
		t.Fatalf("期望未知格式报错, got=%v", err)
	}
}
