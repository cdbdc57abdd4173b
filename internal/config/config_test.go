package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadYAML(t *testing.T) {
	p := writeFile(t, t.TempDir(), "config.yaml", `
blockSize: 64KiB
streamThreshold: 4096
logLevel: debug
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BlockSize != 64*1024 {
		t.Errorf("blockSize = %d, want %d", cfg.BlockSize, 64*1024)
	}
	if cfg.StreamThreshold != 4096 {
		t.Errorf("streamThreshold = %d, want 4096", cfg.StreamThreshold)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("logLevel = %q, want debug", cfg.LogLevel)
	}
	// untouched key keeps its default
	if cfg.LogFormat != "text" {
		t.Errorf("logFormat = %q, want text", cfg.LogFormat)
	}
}

func TestLoadJSON(t *testing.T) {
	p := writeFile(t, t.TempDir(), "config.json",
		`{"blockSize": "1MiB", "streamThreshold": 2048, "logFormat": "json"}`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BlockSize != 1<<20 {
		t.Errorf("blockSize = %d, want %d", cfg.BlockSize, 1<<20)
	}
	if cfg.StreamThreshold != 2048 {
		t.Errorf("streamThreshold = %d, want 2048", cfg.StreamThreshold)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("logFormat = %q, want json", cfg.LogFormat)
	}
}

func TestLoadBadSize(t *testing.T) {
	p := writeFile(t, t.TempDir(), "config.yaml", "blockSize: sixty-four\n")
	if _, err := Load(p); err == nil {
		t.Fatal("expected error for unparseable size")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("SNIP_BLOCK_SIZE", "16KiB")
	t.Setenv("SNIP_STREAM_THRESHOLD", "2097152")
	t.Setenv("SNIP_LOG_LEVEL", "warn")
	t.Setenv("SNIP_LOG_FORMAT", "json")

	cfg := Default()
	FromEnv(&cfg)
	if cfg.BlockSize != 16*1024 {
		t.Errorf("blockSize = %d, want %d", cfg.BlockSize, 16*1024)
	}
	if cfg.StreamThreshold != 2<<20 {
		t.Errorf("streamThreshold = %d, want %d", cfg.StreamThreshold, 2<<20)
	}
	if cfg.LogLevel != "warn" || cfg.LogFormat != "json" {
		t.Errorf("log settings = %q/%q, want warn/json", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestFromEnvIgnoresInvalid(t *testing.T) {
	t.Setenv("SNIP_BLOCK_SIZE", "not-a-size")
	cfg := Default()
	FromEnv(&cfg)
	if cfg.BlockSize != Default().BlockSize {
		t.Errorf("invalid size must be ignored, got %d", cfg.BlockSize)
	}
}
