package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Input struct {
		Word string `yaml:"word"`
	} `yaml:"input"`

	Dataset struct {
		Dir    string `yaml:"dir"`
		NTotal int    `yaml:"n_total"`
		Ratio  string `yaml:"ratio"`
	} `yaml:"dataset"`

	UI struct {
		Progress *bool `yaml:"progress"`
		Color    *bool `yaml:"color"`
	} `yaml:"ui"`
}

func LoadConfig(path string) (*Config, error) {
	// If no path provided, try default locations
	if path == "" {
		locations := []string{
			"medqa.yaml",
			"medqa.yml",
			filepath.Join(os.Getenv("HOME"), ".config/medqa/config.yaml"),
			"/etc/medqa/config.yaml",
		}

		for _, loc := range locations {
			if _, err := os.Stat(loc); err == nil {
				path = loc
				break
			}
		}
	}

	if path == "" {
		return getDefaultConfig()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %v", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %v", err)
	}

	// Merge with environment variables
	mergeWithEnv(&config)

	// Apply defaults for unset values
	applyDefaults(&config)

	return &config, nil
}

func getDefaultConfig() (*Config, error) {
	config := &Config{}
	mergeWithEnv(config)
	applyDefaults(config)
	return config, nil
}

func applyDefaults(config *Config) {
	if config.Dataset.NTotal == 0 {
		config.Dataset.NTotal = 50
	}

	if config.UI.Progress == nil {
		config.UI.Progress = boolPtr(true)
	}
	if config.UI.Color == nil {
		config.UI.Color = boolPtr(true)
	}
}

func mergeWithEnv(config *Config) {
	if word := os.Getenv("MEDQA_INPUT_WORD"); word != "" {
		config.Input.Word = word
	}
	if dir := os.Getenv("MEDQA_DATASET_DIR"); dir != "" {
		config.Dataset.Dir = dir
	}
	if ratio := os.Getenv("MEDQA_RATIO"); ratio != "" {
		config.Dataset.Ratio = ratio
	}
}

// ShowProgress and UseColor read the UI switches, which default to on.
func (c *Config) ShowProgress() bool {
	return c.UI.Progress == nil || *c.UI.Progress
}

func (c *Config) UseColor() bool {
	return c.UI.Color == nil || *c.UI.Color
}

func boolPtr(b bool) *bool {
	return &b
}
