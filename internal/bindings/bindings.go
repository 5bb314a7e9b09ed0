package bindings

import (
	"sort"

	"go.uber.org/zap"

	"DAOKit/internal/shared/config"
	"DAOKit/modules/dao"
	"DAOKit/modules/kit/errx"
	"DAOKit/modules/kit/logx"
)

// Builtin 把角色恢复为内置类型。
const Builtin = "builtin"

// catalog 是可通过配置选用的具体类型：role -> variant -> 构造函数。
var catalog = map[string]map[string]func() dao.Object{
	"account": {
		"loyalty": func() dao.Object { return NewLoyaltyAccount() },
	},
	"place": {
		"venue": func() dao.Object { return NewVenue() },
	},
}

// Variants 返回某个角色可选的 variant 名（含 builtin），按字母排序。
func Variants(role string) []string {
	out := []string{Builtin}
	for name := range catalog[role] {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Apply 按配置替换注册表里的角色绑定。每条日志都带 role 字段。
//
// Strict 时遇到未知 role/variant 立即返回 INVALID_ARGUMENT；否则告警后跳过。
func Apply(reg *dao.Registry, cfg config.RegistryConfig, l logx.Logger) error {
	if reg == nil {
		return dao.ErrMissingRegistry
	}
	if l == nil {
		l = logx.Nop()
	}
	roles := make([]string, 0, len(cfg.Bindings))
	for role := range cfg.Bindings {
		roles = append(roles, role)
	}
	sort.Strings(roles)

	builtin := dao.NewRegistry()
	for _, role := range roles {
		variant := cfg.Bindings[role]
		rl := logx.ForRole(l, role)
		f, ok := reg.Lookup(role)
		if !ok {
			if err := skip(rl, cfg.Strict, role, variant, "unknown role"); err != nil {
				return err
			}
			continue
		}
		create, ok := constructor(builtin, role, variant)
		if !ok {
			if err := skip(rl, cfg.Strict, role, variant, "unknown variant"); err != nil {
				return err
			}
			continue
		}
		if err := f.BindAny(create); err != nil {
			return err
		}
		rl.Info("registry binding applied", zap.String("variant", variant))
	}
	return nil
}

func constructor(builtin *dao.Registry, role, variant string) (func() dao.Object, bool) {
	if variant == "" || variant == Builtin {
		f, ok := builtin.Lookup(role)
		if !ok {
			return nil, false
		}
		return f.New, true
	}
	create, ok := catalog[role][variant]
	return create, ok
}

func skip(l logx.Logger, strict bool, role, variant, reason string) error {
	if strict {
		return errx.ErrInvalidArgument.WithDataMap(map[string]any{"role": role, "variant": variant, "reason": reason})
	}
	l.Warn("registry binding skipped",
		zap.String("variant", variant),
		zap.String("reason", reason),
	)
	return nil
}
