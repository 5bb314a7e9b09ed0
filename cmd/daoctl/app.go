package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"DAOKit/internal/shared/config"
	infmongo "DAOKit/internal/shared/infrastructure/mongo"
	"DAOKit/internal/shared/logs"
	"DAOKit/internal/store/mongodb"
	"DAOKit/modules/dao"
	"DAOKit/modules/kit/errx"
	"DAOKit/modules/kit/logx"
	"DAOKit/modules/value"
)

// objectStore 是 save/load 命令依赖的存储端口。
type objectStore interface {
	Save(ctx context.Context, role string, obj dao.Object) error
	Load(ctx context.Context, role, id string) (dao.Object, error)
}

type app struct {
	cfg config.Config
	reg *dao.Registry
	log logx.Logger
	out io.Writer
	now func() time.Time

	// openStore 在第一次访问存储时调用，返回的 close 由命令负责执行
	openStore func(ctx context.Context) (objectStore, func(), error)
}

func newApp(cfg config.Config, reg *dao.Registry, l logx.Logger, out io.Writer) *app {
	a := &app{cfg: cfg, reg: reg, log: l, out: out, now: time.Now}
	a.openStore = a.openMongo
	return a
}

func (a *app) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "roundtrip":
		return a.roundtrip(args)
	case "diff":
		return a.diff(args)
	case "price":
		return a.price(args)
	case "status":
		return a.status(args)
	case "save":
		return a.save(ctx, args)
	case "load":
		return a.load(ctx, args)
	case "roles":
		return a.writeReport(a.reg.Roles())
	default:
		return errx.ErrInvalidArgument.WithDataMap(map[string]any{"command": cmd, "reason": "unknown command"})
	}
}

func (a *app) openMongo(ctx context.Context) (objectStore, func(), error) {
	client, err := infmongo.Open(ctx, a.cfg.MongoDB, logs.Logger())
	if err != nil {
		return nil, nil, err
	}
	repo := mongodb.NewRepository(client.Database(a.cfg.MongoDB.Database), a.reg, a.cfg.MongoDB)
	return repo, func() { _ = client.Disconnect(context.Background()) }, nil
}

func argsError(cmd string, want string) error {
	return errx.ErrInvalidArgument.WithDataMap(map[string]any{"command": cmd, "usage": want})
}

func (a *app) factory(role string) (dao.AnyFactory, error) {
	if len(a.cfg.Output.Roles) > 0 && !slices.Contains(a.cfg.Output.Roles, role) {
		return nil, errx.ErrInvalidArgument.WithDataMap(map[string]any{"role": role, "reason": "role not allowed"})
	}
	f, ok := a.reg.Lookup(role)
	if !ok {
		return nil, errx.ErrInvalidArgument.WithDataMap(map[string]any{"role": role, "reason": "unknown role"})
	}
	return f, nil
}

// readObject 按扩展名选择解码路径。
func (a *app) readObject(role, path string) (dao.Object, error) {
	f, err := a.factory(role)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errx.ErrInvalidArgument.WithData("file", path).WithCause(err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bson":
		return f.Unmarshal(data, a.reg)
	case ".extjson":
		return f.UnmarshalJSON(data, a.reg)
	}
	var d dao.Dictionary
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, dao.NewError(dao.CodeTypeMismatch, map[string]any{"file": path}, err)
	}
	obj, ok := f.NewFromDictionary(d, a.reg)
	if !ok {
		return nil, dao.NewError(dao.CodeTypeMismatch, map[string]any{"file": path, "role": role}, nil)
	}
	return obj, nil
}

// parseTime 缺省为当前时间。
func (a *app) parseTime(args []string, i int) (time.Time, error) {
	if len(args) <= i || args[i] == "" {
		return a.now(), nil
	}
	t, ok := value.TimeFromAny(args[i])
	if !ok {
		return time.Time{}, errx.ErrInvalidArgument.WithDataMap(map[string]any{"time": args[i], "reason": "unparseable time"})
	}
	return t, nil
}

type roundtripReport struct {
	Role       string `json:"role"`
	ID         string `json:"id"`
	BSON       bool   `json:"bson"`
	Dictionary bool   `json:"dictionary"`
}

func (a *app) roundtrip(args []string) error {
	if len(args) != 2 {
		return argsError("roundtrip", "roundtrip <role> <file>")
	}
	role := args[0]
	obj, err := a.readObject(role, args[1])
	if err != nil {
		return err
	}
	f, _ := a.reg.Lookup(role)

	data, err := dao.Marshal(obj, a.reg)
	if err != nil {
		return err
	}
	fromBSON, err := f.Unmarshal(data, a.reg)
	if err != nil {
		return err
	}
	report := roundtripReport{Role: role, ID: obj.Base().ID, BSON: dao.Equal(obj, fromBSON)}
	if fromDict, ok := f.NewFromDictionary(obj.AsDictionary(), a.reg); ok {
		report.Dictionary = dao.Equal(obj, fromDict)
	}
	if err := a.writeObject(obj); err != nil {
		return err
	}
	return a.writeReport(report)
}

type diffReport struct {
	Role        string   `json:"role"`
	Equal       bool     `json:"equal"`
	ChangedKeys []string `json:"changedKeys,omitempty"`
}

func (a *app) diff(args []string) error {
	if len(args) != 3 {
		return argsError("diff", "diff <role> <a> <b>")
	}
	lhs, err := a.readObject(args[0], args[1])
	if err != nil {
		return err
	}
	rhs, err := a.readObject(args[0], args[2])
	if err != nil {
		return err
	}
	report := diffReport{Role: args[0], Equal: dao.Equal(lhs, rhs)}
	if !report.Equal {
		report.ChangedKeys = changedKeys(lhs.AsDictionary(), rhs.AsDictionary())
	}
	return a.writeReport(report)
}

// changedKeys 按顶层键比较两个字典的 JSON 形态，结果有序。
func changedKeys(lhs, rhs dao.Dictionary) []string {
	keys := make([]string, 0, len(lhs))
	for k := range lhs {
		keys = append(keys, k)
	}
	for k := range rhs {
		if _, ok := lhs[k]; !ok {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	out := make([]string, 0)
	for _, k := range keys {
		l, lerr := json.Marshal(lhs[k])
		r, rerr := json.Marshal(rhs[k])
		if lerr != nil || rerr != nil || string(l) != string(r) {
			out = append(out, k)
		}
	}
	return out
}

type priceReport struct {
	Tier     string    `json:"tier"`
	At       time.Time `json:"at"`
	Found    bool      `json:"found"`
	Amount   string    `json:"amount,omitempty"`
	Priority int       `json:"priority,omitempty"`
	Override string    `json:"override,omitempty"`
}

func (a *app) price(args []string) error {
	if len(args) < 1 || len(args) > 3 {
		return argsError("price", "price <file> [tierId] [time]")
	}
	obj, err := a.readObject("pricing", args[0])
	if err != nil {
		return err
	}
	pricing, ok := obj.(dao.PricingEntity)
	if !ok {
		return dao.NewError(dao.CodeTypeMismatch, map[string]any{"role": "pricing"}, nil)
	}
	tierID := a.cfg.App.DefaultTierID
	if len(args) > 1 && args[1] != "" {
		tierID = args[1]
	}
	at, err := a.parseTime(args, 2)
	if err != nil {
		return err
	}

	p := pricing.AsPricing()
	report := priceReport{Tier: tierID, At: at}
	if got, ok := p.Price(tierID, at); ok {
		report.Found = true
		report.Amount = got.Amount.StringFixed(2)
		report.Priority = got.Priority
	}
	if title, ok := p.OverrideTitle(tierID, at); ok {
		report.Override = title.String()
	}
	return a.writeReport(report)
}

type statusReport struct {
	Code    string    `json:"code"`
	At      time.Time `json:"at"`
	Status  string    `json:"status"`
	Scope   int       `json:"scope"`
	Open    bool      `json:"open"`
	Message string    `json:"message,omitempty"`
}

func (a *app) status(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return argsError("status", "status <file> [time]")
	}
	obj, err := a.readObject("place", args[0])
	if err != nil {
		return err
	}
	place, ok := obj.(dao.PlaceEntity)
	if !ok {
		return dao.NewError(dao.CodeTypeMismatch, map[string]any{"role": "place"}, nil)
	}
	at, err := a.parseTime(args, 1)
	if err != nil {
		return err
	}

	p := place.AsPlace()
	st := p.Status(at).AsPlaceStatus()
	return a.writeReport(statusReport{
		Code:    p.Code,
		At:      at,
		Status:  string(st.Status),
		Scope:   int(st.Scope),
		Open:    p.IsOpen(at),
		Message: st.Message.String(),
	})
}

func (a *app) save(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return argsError("save", "save <role> <file>")
	}
	obj, err := a.readObject(args[0], args[1])
	if err != nil {
		return err
	}
	store, closeStore, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()
	if err := store.Save(ctx, args[0], obj); err != nil {
		return err
	}
	return a.writeReport(map[string]string{"role": args[0], "id": obj.Base().ID})
}

func (a *app) load(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return argsError("load", "load <role> <id>")
	}
	if _, err := a.factory(args[0]); err != nil {
		return err
	}
	store, closeStore, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()
	obj, err := store.Load(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	return a.writeObject(obj)
}
