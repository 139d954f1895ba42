package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"zkdiff/internal/common"
)

// GlobalConfig contains all configuration sections for the application
type GlobalConfig struct {
	LogConfig      LogConfig      `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	ProverConfig   ProverConfig   `json:"prover_config,omitempty" yaml:"prover_config,omitempty"`
	ReporterConfig ReporterConfig `json:"reporter_config,omitempty" yaml:"reporter_config,omitempty"`
	StorageConfig  StorageConfig  `json:"storage_config,omitempty" yaml:"storage_config,omitempty"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		LogConfig:      NewDefaultLogConfig(),
		ProverConfig:   NewDefaultProverConfig(),
		ReporterConfig: NewDefaultReporterConfig(),
		StorageConfig:  NewDefaultStorageConfig(),
	}
}

// LoadGlobalConfig loads the configuration from a file or default locations.
// It determines the config file path using GetConfigPath and supports both
// JSON and YAML formats; YAML is preferred for .yaml/.yml extensions. When no
// config file exists, defaults are returned.
func LoadGlobalConfig(providedPath string) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, common.WrapErrorf(err, "failed to read config file '%s'", filePath)
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, common.WrapError(err, "failed to parse config content")
	}

	return cfg, nil
}

// parseConfigContent unmarshals config data based on the file extension.
func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return common.WrapError(err, "invalid YAML config")
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return common.WrapError(err, "invalid JSON config")
		}
	default:
		// Unknown extension: try YAML first, then JSON.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
				return common.WrapError(err, "config is neither valid YAML nor JSON")
			}
		}
	}
	return nil
}
