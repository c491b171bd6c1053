package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8080 || cfg.SessionStore != SessionStoreMemory {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.SkipsAPITimeout != 10*time.Second || cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("unexpected durations: %+v", cfg)
	}
	if cfg.Postcode != "NR32" || cfg.Area != "Lowestoft" {
		t.Fatalf("unexpected location: %+v", cfg)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_STORE", " Redis ")
	t.Setenv("SKIPS_API_TIMEOUT", "3s")
	t.Setenv("SKIPS_AREA", "Norwich")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 9090 || cfg.SessionStore != SessionStoreRedis || cfg.SkipsAPITimeout != 3*time.Second || cfg.Area != "Norwich" {
		t.Fatalf("env not applied: %+v", cfg)
	}
	origins := cfg.AllowedOrigins()
	if len(origins) != 2 || origins[0] != "http://a.test" || origins[1] != "http://b.test" {
		t.Fatalf("unexpected origins: %v", origins)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "app.env"), []byte("SKIPS_POSTCODE=NR1\nSESSION_TTL=5m\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Postcode != "NR1" || cfg.SessionTTL != 5*time.Minute {
		t.Fatalf("file not applied: %+v", cfg)
	}
}

func TestLoad_InvalidStore(t *testing.T) {
	t.Setenv("SESSION_STORE", "postgres")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for unsupported store")
	}
}
