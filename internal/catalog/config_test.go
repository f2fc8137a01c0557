package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadCatalogConfig(t *testing.T) {
	path := writeConfigFile(t, `
safeguards:
  - id: "1.1"
    title: "Asset Inventory"
    description: "Maintain an asset inventory."
    domain: "asset_management"
    required_tool_types: [inventory]
  - id: "2.1"
    title: "Software Inventory"
`)
	t.Setenv("CATALOG_CONFIG_PATH", path)

	cfg, err := LoadCatalogConfig()
	if err != nil {
		t.Fatalf("LoadCatalogConfig() error = %v", err)
	}

	if len(cfg.Safeguards) != 2 {
		t.Fatalf("safeguards = %d, want 2", len(cfg.Safeguards))
	}
	if cfg.Safeguards[0].ID != "1.1" {
		t.Errorf("first id = %q, want 1.1", cfg.Safeguards[0].ID)
	}
	if got := cfg.Safeguards[0].RequiredToolTypes; len(got) != 1 || got[0] != "inventory" {
		t.Errorf("required tool types = %v, want [inventory]", got)
	}
	if cfg.Safeguards[1].Domain != "" {
		t.Errorf("unrestricted safeguard has domain %q", cfg.Safeguards[1].Domain)
	}
}

func TestLoadCatalogConfig_MissingFile(t *testing.T) {
	t.Setenv("CATALOG_CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := LoadCatalogConfig()
	if err == nil {
		t.Fatal("LoadCatalogConfig() expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("error = %v, want read failure", err)
	}
}

func TestLoadCatalogConfig_InvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "safeguards: [not: valid: yaml")
	t.Setenv("CATALOG_CONFIG_PATH", path)

	_, err := LoadCatalogConfig()
	if err == nil {
		t.Fatal("LoadCatalogConfig() expected error for invalid YAML")
	}
	if !strings.Contains(err.Error(), "failed to parse YAML") {
		t.Errorf("error = %v, want parse failure", err)
	}
}

func TestCatalogConfig_Validate(t *testing.T) {

	tests := []struct {
		name    string
		cfg     CatalogConfig
		wantErr string
	}{
		{
			name:    "empty catalog",
			cfg:     CatalogConfig{},
			wantErr: "no safeguards configured",
		},
		{
			name: "malformed id",
			cfg: CatalogConfig{Safeguards: []SafeguardEntry{
				{ID: "abc", Title: "Bad"},
			}},
			wantErr: "does not match N.N",
		},
		{
			name: "duplicate id",
			cfg: CatalogConfig{Safeguards: []SafeguardEntry{
				{ID: "1.1", Title: "One"},
				{ID: "1.1", Title: "Two"},
			}},
			wantErr: "duplicate safeguard id",
		},
		{
			name: "missing title",
			cfg: CatalogConfig{Safeguards: []SafeguardEntry{
				{ID: "1.1"},
			}},
			wantErr: "missing title",
		},
		{
			name: "restriction without domain",
			cfg: CatalogConfig{Safeguards: []SafeguardEntry{
				{ID: "1.1", Title: "One", RequiredToolTypes: []string{"inventory"}},
			}},
			wantErr: "names no domain",
		},
		{
			name: "unknown tool category",
			cfg: CatalogConfig{Safeguards: []SafeguardEntry{
				{ID: "1.1", Title: "One", Domain: "asset_management", RequiredToolTypes: []string{"time_machine"}},
			}},
			wantErr: "unknown tool category",
		},
		{
			name: "valid catalog",
			cfg: CatalogConfig{Safeguards: []SafeguardEntry{
				{ID: "1.1", Title: "One", Domain: "asset_management", RequiredToolTypes: []string{"inventory"}},
				{ID: "5.1", Title: "Two"},
			}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.cfg.Validate()
			if test.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() error = nil, want %q", test.wantErr)
			}
			if !strings.Contains(err.Error(), test.wantErr) {
				t.Errorf("Validate() error = %v, want %q", err, test.wantErr)
			}
		})
	}
}
