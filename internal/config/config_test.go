package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvConfigPath, EnvAddr, EnvDBDSN, EnvViewsRoot, EnvLogLevel, EnvAppName, EnvCacheViews} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "mvcapp.yaml")
	content := "addr: \":9090\"\napp_name: From File\nlog_level: debug\ncache_views: false\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(EnvConfigPath, path)
	t.Setenv(EnvAppName, "From Env")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Fatalf("addr mismatch: got=%q want=%q", cfg.Addr, ":9090")
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log level mismatch: got=%q want=%q", cfg.LogLevel, "debug")
	}
	if cfg.AppName != "From Env" {
		t.Fatalf("app name mismatch: got=%q want=%q", cfg.AppName, "From Env")
	}
	if cfg.CacheViews {
		t.Fatalf("expected cache_views from file to be false")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "missing.yaml"))

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("addr: [unterminated"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(EnvConfigPath, path)

	if _, err := Load(); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestBoolEnv(t *testing.T) {
	cases := []struct {
		raw      string
		fallback bool
		want     bool
	}{
		{raw: "true", fallback: false, want: true},
		{raw: "ON", fallback: false, want: true},
		{raw: "0", fallback: true, want: false},
		{raw: "no", fallback: true, want: false},
		{raw: "", fallback: true, want: true},
		{raw: "maybe", fallback: false, want: false},
	}
	for _, tc := range cases {
		t.Setenv(EnvCacheViews, tc.raw)
		if got := boolEnv(EnvCacheViews, tc.fallback); got != tc.want {
			t.Fatalf("boolEnv(%q, %v)=%v want %v", tc.raw, tc.fallback, got, tc.want)
		}
	}
}
