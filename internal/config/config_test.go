package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte(""))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Driver = %q, want sqlite", cfg.Database.Driver)
	}
	if cfg.Database.Path != "clerk.db" {
		t.Errorf("Path = %q, want clerk.db", cfg.Database.Path)
	}
	if cfg.HTTP.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.HTTP.Port)
	}
}

func TestParse_MySQLDefaults(t *testing.T) {
	cfg, err := Parse([]byte("database:\n  driver: mysql\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Database.Host != "127.0.0.1" || cfg.Database.Port != 3306 {
		t.Errorf("host = %s:%d, want 127.0.0.1:3306", cfg.Database.Host, cfg.Database.Port)
	}
	if cfg.Database.User != "root" || cfg.Database.Database != "clerk" {
		t.Errorf("user/db = %s/%s, want root/clerk", cfg.Database.User, cfg.Database.Database)
	}
}

func TestParse_UnsupportedDriver(t *testing.T) {
	_, err := Parse([]byte("database:\n  driver: postgres\n"))
	if err == nil {
		t.Fatal("expected error for unsupported driver")
	}
	if !strings.Contains(err.Error(), "postgres") {
		t.Errorf("err = %v, want driver named", err)
	}
}

func TestParse_SlackTokenPair(t *testing.T) {
	_, err := Parse([]byte("slack:\n  bot_token: xoxb-123\n"))
	if err == nil {
		t.Fatal("expected error for bot token without app token")
	}

	cfg, err := Parse([]byte("slack:\n  bot_token: xoxb-123\n  app_token: xapp-456\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Slack.AppToken != "xapp-456" {
		t.Errorf("AppToken = %q", cfg.Slack.AppToken)
	}
}

func TestParse_DigestCronDefault(t *testing.T) {
	cfg, err := Parse([]byte("digest:\n  enabled: true\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Digest.Cron != "0 9 * * *" {
		t.Errorf("Cron = %q, want default", cfg.Digest.Cron)
	}
}

func TestIsAdmin(t *testing.T) {
	cfg, err := Parse([]byte("admins:\n  - U123\n  - U456\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !cfg.IsAdmin("U123") || !cfg.IsAdmin("U456") {
		t.Error("listed users should be admins")
	}
	if cfg.IsAdmin("U999") || cfg.IsAdmin("") {
		t.Error("unlisted users should not be admins")
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clerk.yaml")
	content := "database:\n  driver: sqlite\n  path: test.db\nhttp:\n  port: 9090\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Path != "test.db" || cfg.HTTP.Port != 9090 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load("/does/not/exist.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
