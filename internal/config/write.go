package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default returns the config skeleton written by `blobtidy init`.
func Default() *Config {
	return &Config{
		Backend:   BackendAzure,
		Container: "web",
		Azure:     &AzureConfig{ConnectionString: ""},
		Output:    OutputConfig{Dir: "reports"},
		Retention: RetentionConfig{Order: OrderListing},
	}
}

func Write(cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config dir %s: %w", dir, err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
