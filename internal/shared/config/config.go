package config

import (
	"os"
	"path/filepath"
	"sync/atomic"
)

const defaultConfigRelPath = "configs/conf.yml"

var current atomic.Pointer[Config]

// Current 返回最近一次成功加载的配置；未加载时返回默认值。
func Current() Config {
	if c := current.Load(); c != nil {
		return *c
	}
	return Default()
}

// Load 加载配置并开启热更新。
//
// 约定：
// 1) 传入 cfgName（相对/绝对路径）则优先使用；
// 2) 否则从当前目录开始向上查找 `configs/conf.yml`；
// 3) 找不到配置文件时使用 Default()，命令行工具可以零配置运行。
func Load(cfgName string) (Config, error) {
	path, err := resolve(cfgName)
	if err != nil {
		return Config{}, err
	}
	if path == "" {
		c := Default()
		current.Store(&c)
		return c, nil
	}
	c, err := watch(path, func(next Config) { current.Store(&next) })
	if err != nil {
		return Config{}, err
	}
	current.Store(&c)
	return c, nil
}

func resolve(cfgName string) (string, error) {
	if cfgName != "" {
		if filepath.IsAbs(cfgName) {
			return cfgName, nil
		}
		curDir, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return filepath.Join(curDir, cfgName), nil
	}
	curDir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findConfigUpward(curDir), nil
}

func findConfigUpward(startDir string) string {
	dir := startDir
	for {
		candidate := filepath.Join(dir, defaultConfigRelPath)
		if fileExist(candidate) {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
