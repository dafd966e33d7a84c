package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Lexicon.Path == "" {
		t.Error("expected a default lexicon path")
	}
	if cfg.Lexicon.MinWordLength < 1 {
		t.Errorf("MinWordLength = %d, want >= 1", cfg.Lexicon.MinWordLength)
	}
	if !cfg.Splitter.HideConnectingCharacters {
		t.Error("expected connecting characters hidden by default")
	}
	if cfg.Splitter.StrictMode {
		t.Error("expected lenient mode by default")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	want := DefaultConfig()
	want.Lexicon.Path = "words.txt"
	want.Lexicon.MinWordLength = 2
	want.Lexicon.ConnectingCharacters = []string{"s", "innen"}
	want.Splitter.StrictMode = true

	if err := SaveConfig(path, want); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if got.Lexicon.Path != want.Lexicon.Path {
		t.Errorf("Path = %q, want %q", got.Lexicon.Path, want.Lexicon.Path)
	}
	if got.Lexicon.MinWordLength != want.Lexicon.MinWordLength {
		t.Errorf("MinWordLength = %d, want %d", got.Lexicon.MinWordLength, want.Lexicon.MinWordLength)
	}
	if len(got.Lexicon.ConnectingCharacters) != 2 || got.Lexicon.ConnectingCharacters[0] != "s" {
		t.Errorf("ConnectingCharacters = %v, want [s innen]", got.Lexicon.ConnectingCharacters)
	}
	if !got.Splitter.StrictMode {
		t.Error("StrictMode = false, want true")
	}
}

func TestInitConfig_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}
	if cfg.Lexicon.Path != DefaultConfig().Lexicon.Path {
		t.Errorf("unexpected lexicon path %q", cfg.Lexicon.Path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected config file at %s: %v", path, err)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadConfigWithPriority_FallsBackToDefaults(t *testing.T) {
	cfg, path, err := LoadConfigWithPriority(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadConfigWithPriority failed: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected a config")
	}
	_ = path // empty or the user config path, both acceptable
}
