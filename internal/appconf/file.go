package appconf

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// FileConfig mirrors the optional YAML configuration file accepted by the
// server binary. Every field can also be set through command-line flags;
// values from the file act as defaults.
type FileConfig struct {
	Server struct {
		Port      int    `yaml:"port" validate:"omitempty,gt=0,lte=65535"`
		Env       string `yaml:"env" validate:"omitempty,oneof=development test production"`
		RateLimit int    `yaml:"rate_limit" validate:"omitempty,gte=0"`
	} `yaml:"server"`
	Map struct {
		Path   string `yaml:"path"`
		DBPath string `yaml:"db_path"`
	} `yaml:"map"`
	ApiKeys []string `yaml:"api_keys"`
}

// LoadConfigFile reads and validates a YAML configuration file.
func LoadConfigFile(path string) (FileConfig, error) {
	var cfg FileConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return cfg, fmt.Errorf("validating config file: %w", err)
	}

	for i := range cfg.ApiKeys {
		cfg.ApiKeys[i] = strings.TrimSpace(cfg.ApiKeys[i])
	}

	return cfg, nil
}
