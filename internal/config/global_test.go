package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGlobalConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	path := GlobalConfigPath()
	want := "/custom/config/expense/config.yml"
	if path != want {
		t.Errorf("GlobalConfigPath() = %q, want %q", path, want)
	}

	// Empty XDG_CONFIG_HOME falls back to ~/.config
	t.Setenv("XDG_CONFIG_HOME", "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}
	path = GlobalConfigPath()
	want = filepath.Join(home, ".config", "expense", "config.yml")
	if path != want {
		t.Errorf("GlobalConfigPath() = %q, want %q", path, want)
	}
}

func TestLoadGlobalConfig_NotFound(t *testing.T) {
	ResetGlobalConfigCache()
	defer ResetGlobalConfigCache()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("LoadGlobalConfig() error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadGlobalConfig() returned nil")
	}
	if cfg.DataFile != "" || cfg.IndexFile != "" {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestLoadGlobalConfig_Valid(t *testing.T) {
	ResetGlobalConfigCache()
	defer ResetGlobalConfigCache()

	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, "expense")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	content := "data_file: ~/ledger/expenses.json\nindex_file: /var/cache/expenses.db\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("LoadGlobalConfig() error = %v", err)
	}

	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, "ledger/expenses.json"); cfg.DataFile != want {
		t.Errorf("DataFile = %q, want %q", cfg.DataFile, want)
	}
	if cfg.IndexFile != "/var/cache/expenses.db" {
		t.Errorf("IndexFile = %q", cfg.IndexFile)
	}
}

func TestLoadGlobalConfig_InvalidYAML(t *testing.T) {
	ResetGlobalConfigCache()
	defer ResetGlobalConfigCache()

	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, "expense")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yml"), []byte("data_file: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	if _, err := LoadGlobalConfig(); err == nil {
		t.Error("LoadGlobalConfig() should return error for invalid YAML")
	}
}

func TestGlobalConfig_SaveAndReload(t *testing.T) {
	ResetGlobalConfigCache()
	defer ResetGlobalConfigCache()

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg := &GlobalConfig{}
	dataPath := filepath.Join(tmpDir, "data", "expenses.json")
	if err := cfg.Set("data_file", dataPath); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	ResetGlobalConfigCache()
	loaded, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("LoadGlobalConfig: %v", err)
	}
	if loaded.DataFile != dataPath {
		t.Errorf("DataFile = %q, want %q", loaded.DataFile, dataPath)
	}
}

func TestGlobalConfig_GetSet(t *testing.T) {
	cfg := &GlobalConfig{}

	if err := cfg.Set("INDEX_FILE", "/tmp/idx.db"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := cfg.Get("index-file")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "/tmp/idx.db" {
		t.Errorf("Get(index-file) = %q", got)
	}

	if err := cfg.Set("currency", "USD"); err == nil {
		t.Error("Set with unknown key should fail")
	}
	if _, err := cfg.Get("currency"); err == nil {
		t.Error("Get with unknown key should fail")
	}

	// Clearing a value
	if err := cfg.Set("index-file", ""); err != nil {
		t.Fatal(err)
	}
	if cfg.IndexFile != "" {
		t.Errorf("IndexFile = %q, want empty", cfg.IndexFile)
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct{ in, want string }{
		{"data-file", "data-file"},
		{"data_file", "data-file"},
		{"DATA_FILE", "data-file"},
	}
	for _, tt := range tests {
		if got := NormalizeKey(tt.in); got != tt.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}
	tests := []struct{ in, want string }{
		{"", ""},
		{"/abs/path", "/abs/path"},
		{"relative", "relative"},
		{"~/x.json", filepath.Join(home, "x.json")},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
