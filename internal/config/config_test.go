package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ConfigYAML(t *testing.T) {
	path := filepath.Join("..", "..", "config.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Database.Host == "" {
		t.Fatalf("expected database.host to be set")
	}
	if cfg.Server.Port == 0 {
		t.Fatalf("expected server.port to be set")
	}
	if cfg.Database.PoolSize != 25 {
		t.Fatalf("expected database.pool_size 25, got %d", cfg.Database.PoolSize)
	}
}

func TestLoad_PoolSizeOptional(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "database:\n  host: localhost\n  port: 5432\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Database.PoolSize != 0 {
		t.Fatalf("expected zero pool size when omitted, got %d", cfg.Database.PoolSize)
	}
}

func TestLoad_UnknownSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "mystery:\n  key: value\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for unknown section")
	}
}

func TestNotificationsEnabled(t *testing.T) {
	cfg := &Config{}
	if cfg.NotificationsEnabled() {
		t.Fatalf("expected notifications to be disabled without a rabbitmq host")
	}
	cfg.RabbitMQ.Host = "localhost"
	if !cfg.NotificationsEnabled() {
		t.Fatalf("expected notifications to be enabled with a rabbitmq host")
	}
}

func TestDatabaseURL(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "db",
			Port:     5432,
			User:     "postgres",
			Password: "secret",
			Database: "food_orders",
		},
	}
	want := "postgres://postgres:secret@db:5432/food_orders?sslmode=disable"
	if got := cfg.DatabaseURL(); got != want {
		t.Errorf("DatabaseURL() = %q, want %q", got, want)
	}
}
