package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadConfig loads configuration with priority:
// CLI flags > environment > config file > defaults
func LoadConfig() (*Config, error) {
	// 1. Start with defaults
	cfg := DefaultConfig()

	// 2. Check if -config flag was provided (quick parse to extract it)
	configPath := ""
	for i, arg := range os.Args {
		if arg == "-config" && i+1 < len(os.Args) {
			configPath = os.Args[i+1]
			break
		}
	}

	// If no config flag, try to find config file in standard locations
	if configPath == "" {
		configPath = FindConfigFile()
	}

	// Load config file if found
	if configPath != "" {
		fileCfg, err := LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg = fileCfg
	}

	// 3. Merge environment overrides
	if err := cfg.MergeFromEnv(); err != nil {
		return nil, err
	}

	// 4. Merge CLI flags (highest priority, overwrites everything)
	if err := cfg.MergeFromFlags(); err != nil {
		return nil, err
	}

	// Derive the display name from the first input if not set
	if cfg.VideoName == "" && len(cfg.Inputs) > 0 {
		base := filepath.Base(cfg.Inputs[0])
		cfg.VideoName = strings.TrimSuffix(base, filepath.Ext(base))
	}

	// Validate final configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
