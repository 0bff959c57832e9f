package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  write_timeout: "15s"
  shutdown_timeout: "5s"

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2

ai:
  base_url: "http://ai.internal:9400"
  timeout: "8s"

report:
  ratio_scale: 4

log:
  level: "debug"
  format: "text"
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Database.MaxConns != 10 {
		t.Errorf("database.max_conns = %d, want 10", cfg.Database.MaxConns)
	}
	if cfg.AI.BaseURL != "http://ai.internal:9400" {
		t.Errorf("ai.base_url = %q", cfg.AI.BaseURL)
	}
	if cfg.AI.Timeout != 8*time.Second {
		t.Errorf("ai.timeout = %v, want 8s", cfg.AI.Timeout)
	}
	if cfg.Report.RatioScale != 4 {
		t.Errorf("report.ratio_scale = %d, want 4", cfg.Report.RatioScale)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoad_EnvOnly_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/testdb")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port default = %d, want 8080", cfg.Server.Port)
	}
	if cfg.AI.Timeout != 10*time.Second {
		t.Errorf("ai.timeout default = %v, want 10s", cfg.AI.Timeout)
	}
	if cfg.Report.RatioScale != 4 {
		t.Errorf("report.ratio_scale default = %d, want 4", cfg.Report.RatioScale)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("log.format default = %q, want json", cfg.Log.Format)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestValidate_BadAITimeout(t *testing.T) {
	cfg := &Config{}
	cfg.AI.Timeout = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-positive ai.timeout")
	}
}

func TestValidate_StubAllowsEmptyBaseURL(t *testing.T) {
	cfg := &Config{}
	cfg.AI.Timeout = time.Second
	cfg.AI.UseStub = true
	cfg.Report.RatioScale = 4
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
