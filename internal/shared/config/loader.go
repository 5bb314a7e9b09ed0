package config

import (
	"fmt"
	"os"

	"DAOKit/modules/kit/errx"

	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// ReadFile 只读取一次，不监听变更。
func ReadFile(configPath string) (Config, error) {
	v, err := open(configPath)
	if err != nil {
		return Config{}, err
	}
	return decode(v)
}

// watch 读取配置并在文件变更时回调；变更后解析失败则保留旧配置。
func watch(configPath string, onChange func(Config)) (Config, error) {
	v, err := open(configPath)
	if err != nil {
		return Config{}, err
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		next, err := decode(v)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config reload failed, file=%s err=%v\n", e.Name, err)
			return
		}
		onChange(next)
	})
	v.WatchConfig()
	return decode(v)
}

func open(configPath string) (*viper.Viper, error) {
	if !fileExist(configPath) {
		return nil, errx.ErrInvalidArgument.WithData("config_path", configPath)
	}
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(configPath)
	v.SetEnvPrefix("DAOKIT")
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		return nil, errx.ErrInvalidArgument.WithData("config_path", configPath).WithCause(err)
	}
	return v, nil
}

func decode(v *viper.Viper) (Config, error) {
	var c Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&c, hook); err != nil {
		return Config{}, errx.ErrInvalidArgument.WithCause(err)
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("app.name", d.App.Name)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.max_size", d.Log.MaxSize)
	v.SetDefault("mongodb.database", d.MongoDB.Database)
	v.SetDefault("mongodb.connect_timeout_s", d.MongoDB.ConnectTimeoutS)
	v.SetDefault("mongodb.op_timeout", d.MongoDB.OpTimeout)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.indent", d.Output.Indent)
}

func fileExist(fileName string) bool {
	_, err := os.Stat(fileName)
	return err == nil
}
