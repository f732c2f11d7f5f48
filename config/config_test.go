package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "FRONTEND_URL", "EXTRA_ORIGINS", "DATA_DIR", "STORAGE_DRIVER",
		"DATABASE_URL", "DATA_ENCRYPTION_KEY", "ID_STRATEGY", "RATE_LIMIT", "CURRENCY"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" || cfg.DataDir != "public/data" || cfg.StorageDriver != DriverFile {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.IDStrategy != "legacy" || cfg.RateLimit != 100 || cfg.Currency != "USD" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if diff := cmp.Diff([]string{"http://localhost:3000"}, cfg.AllowedOrigins); diff != "" {
		t.Errorf("origins mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FRONTEND_URL", "https://tbanku.app")
	t.Setenv("EXTRA_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("STORAGE_DRIVER", "Memory")
	t.Setenv("ID_STRATEGY", "UUID")
	t.Setenv("CURRENCY", "eur")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"https://tbanku.app", "https://a.example", "https://b.example"}
	if diff := cmp.Diff(want, cfg.AllowedOrigins); diff != "" {
		t.Errorf("origins mismatch (-want +got):\n%s", diff)
	}
	if cfg.StorageDriver != DriverMemory || cfg.IDStrategy != "uuid" || cfg.Currency != "EUR" {
		t.Errorf("got %+v", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]map[string]string{
		"rate limit":       {"RATE_LIMIT": "lots"},
		"driver":           {"STORAGE_DRIVER": "mongo"},
		"postgres no url":  {"STORAGE_DRIVER": "postgres", "DATABASE_URL": ""},
		"unknown strategy": {"ID_STRATEGY": "random"},
		"unknown currency": {"CURRENCY": "XYZ"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestInitBackendMemory(t *testing.T) {
	backend, db, err := InitBackend(&Config{StorageDriver: DriverMemory, EncryptionKey: "k"})
	if err != nil {
		t.Fatalf("InitBackend: %v", err)
	}
	if db != nil {
		t.Error("memory driver should not open a database")
	}
	if backend == nil {
		t.Fatal("nil backend")
	}
}
