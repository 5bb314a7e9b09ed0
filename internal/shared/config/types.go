package config

import "time"

type Config struct {
	App      AppConfig      `yaml:"app" mapstructure:"app"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
	MongoDB  MongoDBConfig  `yaml:"mongodb" mapstructure:"mongodb"`
	Registry RegistryConfig `yaml:"registry" mapstructure:"registry"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
}

type AppConfig struct {
	Name string `yaml:"name" mapstructure:"name"`
	// DefaultTierID 在 price 命令未指定 tier 时使用
	DefaultTierID string `yaml:"default_tier_id" mapstructure:"default_tier_id"`
}

type LogConfig struct {
	FileDir    string `yaml:"file_dir" mapstructure:"file_dir"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"`
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"`
	Compress   bool   `yaml:"compress" mapstructure:"compress"`
	Level      string `yaml:"level" mapstructure:"level"`
	Dev        bool   `yaml:"dev" mapstructure:"dev"`
}

type MongoDBConfig struct {
	URI             string        `yaml:"uri" mapstructure:"uri"`
	Database        string        `yaml:"database" mapstructure:"database"`
	ConnectTimeoutS int           `yaml:"connect_timeout_s" mapstructure:"connect_timeout_s"`
	OpTimeout       time.Duration `yaml:"op_timeout" mapstructure:"op_timeout"`
	// Collections 覆盖 role -> 集合名，未配置时使用 role 名
	Collections map[string]string `yaml:"collections" mapstructure:"collections"`
}

// RegistryConfig 描述启动时的类型替换：role -> variant 名称。
type RegistryConfig struct {
	Bindings map[string]string `yaml:"bindings" mapstructure:"bindings"`
	// Strict 为 true 时，未知的 role/variant 直接报错；否则跳过并告警
	Strict bool `yaml:"strict" mapstructure:"strict"`
}

type OutputConfig struct {
	// Format: dictionary | extjson | protojson
	Format string `yaml:"format" mapstructure:"format"`
	Indent bool   `yaml:"indent" mapstructure:"indent"`
	// Roles 限定 roundtrip 命令允许的 role，空表示不限制
	Roles []string `yaml:"roles" mapstructure:"roles"`
}

func Default() Config {
	return Config{
		App: AppConfig{Name: "daoctl"},
		Log: LogConfig{Level: "info", MaxSize: 64},
		MongoDB: MongoDBConfig{
			Database:        "daokit",
			ConnectTimeoutS: 3,
			OpTimeout:       5 * time.Second,
		},
		Output: OutputConfig{Format: "dictionary", Indent: true},
	}
}
