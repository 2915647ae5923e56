package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	EnvConfigPath = "MVCAPP_CONFIG"
	EnvAddr       = "MVCAPP_ADDR"
	EnvDBDSN      = "MVCAPP_DB_DSN"
	EnvViewsRoot  = "MVCAPP_VIEWS_ROOT"
	EnvLogLevel   = "MVCAPP_LOG_LEVEL"
	EnvAppName    = "MVCAPP_APP_NAME"
	EnvCacheViews = "MVCAPP_CACHE_VIEWS"
)

// Config holds the server settings. Values come from defaults, then the YAML
// file named by MVCAPP_CONFIG, then environment variables.
type Config struct {
	Addr       string `yaml:"addr"`
	DBDSN      string `yaml:"db_dsn"`
	ViewsRoot  string `yaml:"views_root"`
	LogLevel   string `yaml:"log_level"`
	AppName    string `yaml:"app_name"`
	CacheViews bool   `yaml:"cache_views"`
}

func Default() Config {
	return Config{
		Addr:       ":8080",
		LogLevel:   "info",
		AppName:    "My MVC Application",
		CacheViews: true,
	}
}

func Load() (Config, error) {
	cfg := Default()
	if path := strings.TrimSpace(os.Getenv(EnvConfigPath)); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	cfg.mergeEnv()
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv() {
	c.Addr = stringEnv(EnvAddr, c.Addr)
	c.DBDSN = stringEnv(EnvDBDSN, c.DBDSN)
	c.ViewsRoot = stringEnv(EnvViewsRoot, c.ViewsRoot)
	c.LogLevel = stringEnv(EnvLogLevel, c.LogLevel)
	c.AppName = stringEnv(EnvAppName, c.AppName)
	c.CacheViews = boolEnv(EnvCacheViews, c.CacheViews)
}

func stringEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func boolEnv(key string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}
