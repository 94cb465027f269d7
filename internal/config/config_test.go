package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	def := DefaultConfig()
	if cfg.RefreshInterval != def.RefreshInterval || cfg.HistoryLength != def.HistoryLength {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadConfigNormalizesBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hostpulse.json")
	raw := `{"theme":"deep-sea","refresh_interval":-5,"history_length":0,"top_processes":25}`
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.RefreshInterval != 1500 {
		t.Errorf("refresh_interval: got %d, want normalized 1500", cfg.RefreshInterval)
	}
	if cfg.HistoryLength != 60 {
		t.Errorf("history_length: got %d, want normalized 60", cfg.HistoryLength)
	}
	if cfg.TopProcesses != 25 {
		t.Errorf("top_processes: got %d, want 25 kept as-is", cfg.TopProcesses)
	}
	if cfg.IPEndpoint == "" {
		t.Error("ip_endpoint must fall back to the default endpoint")
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hostpulse.json")
	cfg := DefaultConfig()
	cfg.RefreshInterval = 2000

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.RefreshInterval != 2000 {
		t.Errorf("refresh_interval: got %d, want 2000", loaded.RefreshInterval)
	}
}
