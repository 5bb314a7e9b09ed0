package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleConf = `
app:
  name: daoctl-test
  default_tier_id: gold
log:
  level: debug
mongodb:
  uri: mongodb://localhost:27017
  op_timeout: 2s
  collections:
    account: accounts
registry:
  strict: true
  bindings:
    account: premium
output:
  format: extjson
  roles: account,place
`

func TestReadFile_解析嵌套配置与钩子(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.yml")
	if err := os.WriteFile(path, []byte(sampleConf), 0o644); err != nil {
		t.Fatalf("写入配置失败: %v", err)
	}

	c, err := ReadFile(path)
	if err != nil {
		t.Fatalf("期望读取成功, err=%v", err)
	}
	if c.App.Name != "daoctl-test" || c.App.DefaultTierID != "gold" {
		t.Fatalf("app 配置不符合预期: %+v", c.App)
	}
	if c.MongoDB.OpTimeout != 2*time.Second {
		t.Fatalf("期望 op_timeout=2s, got=%v", c.MongoDB.OpTimeout)
	}
	if c.MongoDB.Database != "daokit" {
		t.Fatalf("期望未配置的 database 回退默认值, got=%q", c.MongoDB.Database)
	}
	if c.MongoDB.Collections["account"] != "accounts" {
		t.Fatalf("期望 collections.account=accounts, got=%v", c.MongoDB.Collections)
	}
	if !c.Registry.Strict || c.Registry.Bindings["account"] != "premium" {
		t.Fatalf("registry 配置不符合预期: %+v", c.Registry)
	}
	if len(c.Output.Roles) != 2 || c.Output.Roles[1] != "place" {
		t.Fatalf("期望逗号分隔的 roles 被拆分, got=%v", c.Output.Roles)
	}
}

func TestReadFile_文件不存在返回错误(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatalf("期望文件不存在时返回错误")
	}
}

func TestFindConfigUpward_找不到返回空(t *testing.T) {
	if got := findConfigUpward(t.TempDir()); got != "" {
		t.Fatalf("期望找不到配置时返回空字符串, got=%q", got)
	}
}
