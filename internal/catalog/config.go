package catalog

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/secmap/capmap-agent/internal/classifier"
)

// CatalogConfig is the YAML safeguard reference data loaded once at startup.
type CatalogConfig struct {
	Safeguards []SafeguardEntry `yaml:"safeguards"`
}

type SafeguardEntry struct {
	ID                string   `yaml:"id"`
	Title             string   `yaml:"title"`
	Description       string   `yaml:"description"`
	Domain            string   `yaml:"domain"`
	RequiredToolTypes []string `yaml:"required_tool_types"`
}

var safeguardIDPattern = regexp.MustCompile(`^\d+\.\d+$`)

// LoadCatalogConfig reads the safeguard catalog from CATALOG_CONFIG_PATH,
// falling back to configs/catalog.yaml.
func LoadCatalogConfig() (*CatalogConfig, error) {
	path := os.Getenv("CATALOG_CONFIG_PATH")
	if path == "" {
		path = "configs/catalog.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg CatalogConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *CatalogConfig) Validate() error {
	if len(c.Safeguards) == 0 {
		return fmt.Errorf("no safeguards configured")
	}

	seen := make(map[string]bool, len(c.Safeguards))
	for _, entry := range c.Safeguards {
		if entry.ID == "" {
			return fmt.Errorf("safeguard missing id")
		}
		if !safeguardIDPattern.MatchString(entry.ID) {
			return fmt.Errorf("safeguard id %q does not match N.N", entry.ID)
		}
		if seen[entry.ID] {
			return fmt.Errorf("duplicate safeguard id %q", entry.ID)
		}
		seen[entry.ID] = true

		if entry.Title == "" {
			return fmt.Errorf("safeguard %s missing title", entry.ID)
		}

		if len(entry.RequiredToolTypes) > 0 && entry.Domain == "" {
			return fmt.Errorf("safeguard %s restricts tool types but names no domain", entry.ID)
		}
		for _, toolType := range entry.RequiredToolTypes {
			if !classifier.KnownToolCategory(toolType) {
				return fmt.Errorf("safeguard %s requires unknown tool category %q", entry.ID, toolType)
			}
		}
	}

	return nil
}
