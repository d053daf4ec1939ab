package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadJumper loads the jumper configuration.
// Search order: customPath -> ~/.jumper/configs/jumper.yaml -> ./configs/jumper.yaml -> embedded default
//
// A custom path that cannot be read or parsed is an error; the implicit
// locations are skipped silently when missing or malformed.
func LoadJumper(customPath string) (JumperConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	if userCfgPath := userConfigPath("jumper.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	if cfg, err := loadFile(filepath.Join("configs", "jumper.yaml")); err == nil && cfg.Validate() == nil {
		return cfg, nil
	}

	cfg, err := Parse(defaultJumperYAML)
	if err != nil {
		return DefaultJumperConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the hardcoded defaults, so partial files only
// override the keys they name.
func Parse(data []byte) (JumperConfig, error) {
	cfg := DefaultJumperConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse yaml: %w", err)
	}
	return cfg, nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg JumperConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode yaml: %w", err)
	}
	return data, nil
}

func loadFile(path string) (JumperConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultJumperConfig(), fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jumper", "configs", filename)
}
