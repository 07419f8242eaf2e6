package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[editor]
quit_key = "x"
read_timeout_ms = 300

[log]
enabled = true
file = "/tmp/kilo-test.log"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := Config{
		QuitKey:      "x",
		ReadTimeout:  300 * time.Millisecond,
		EnableLogger: true,
		LogFile:      "/tmp/kilo-test.log",
	}
	if cfg != want {
		t.Errorf("Load() = %+v, want %+v", cfg, want)
	}
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "[log]\nenabled = true\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	def := DefaultConfig()
	if cfg.QuitKey != def.QuitKey || cfg.ReadTimeout != def.ReadTimeout || cfg.LogFile != def.LogFile {
		t.Errorf("unset keys changed: %+v", cfg)
	}
	if !cfg.EnableLogger {
		t.Error("EnableLogger should be true")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "quit_key"},
		{"quit key too long", "[editor]\nquit_key = \"qq\""},
		{"quit key not letter", "[editor]\nquit_key = \"1\""},
		{"quit key wrong type", "[editor]\nquit_key = 1"},
		{"timeout too small", "[editor]\nread_timeout_ms = 10"},
		{"timeout too large", "[editor]\nread_timeout_ms = 60000"},
		{"enabled wrong type", "[log]\nenabled = \"yes\""},
		{"empty log file", "[log]\nenabled = true\nfile = \"\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Error("Load() expected error")
			}
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := DefaultConfig()
	cfg.QuitKey = "w"
	cfg.ReadTimeout = 200 * time.Millisecond

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != cfg {
		t.Errorf("Load(Save(cfg)) = %+v, want %+v", got, cfg)
	}
}

func TestLoadConfig_FallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)

	if cfg := LoadConfig(); cfg != DefaultConfig() {
		t.Errorf("LoadConfig() without file = %+v", cfg)
	}

	path, err := Path()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[editor]\nquit_key = \"??\""), 0o644); err != nil {
		t.Fatal(err)
	}
	if cfg := LoadConfig(); cfg != DefaultConfig() {
		t.Errorf("LoadConfig() with invalid file = %+v", cfg)
	}
}
