package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "medqa.yaml")

	configData := `
input:
  word: "cases/case01.docx"

dataset:
  dir: "/data/medinfo"
  n_total: 100
  ratio: "1:3"

ui:
  progress: false
`
	err := os.WriteFile(configPath, []byte(configData), 0644)
	require.NoError(t, err)

	// Test loading config
	config, err := LoadConfig(configPath)
	require.NoError(t, err)

	// Verify loaded values
	assert.Equal(t, "cases/case01.docx", config.Input.Word)
	assert.Equal(t, "/data/medinfo", config.Dataset.Dir)
	assert.Equal(t, 100, config.Dataset.NTotal)
	assert.Equal(t, "1:3", config.Dataset.Ratio)
	assert.False(t, config.ShowProgress())
	assert.True(t, config.UseColor())
	assert.Empty(t, config.Validate())
}

func TestLoadConfigDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("input: {}\n"), 0644))

	config, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, 50, config.Dataset.NTotal)
	assert.Equal(t, "", config.Dataset.Ratio)
	assert.True(t, config.ShowProgress())
	assert.True(t, config.UseColor())
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	badPath := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(badPath, []byte("dataset: [unclosed"), 0644))
	_, err = LoadConfig(badPath)
	assert.Error(t, err)
}

func TestConfigValidation(t *testing.T) {
	valid := func() Config {
		var c Config
		c.Input.Word = "case.docx"
		c.Dataset.Dir = "out"
		c.Dataset.NTotal = 50
		return c
	}

	tests := []struct {
		name          string
		mutate        func(c *Config)
		expectedErrs  int
		errorMessages []string
	}{
		{
			name:         "valid config",
			mutate:       func(c *Config) {},
			expectedErrs: 0,
		},
		{
			name: "every ratio accepted",
			mutate: func(c *Config) {
				c.Dataset.Ratio = "wrong"
			},
			expectedErrs: 0,
		},
		{
			name: "invalid config",
			mutate: func(c *Config) {
				c.Input.Word = ""
				c.Dataset.Dir = ""
				c.Dataset.NTotal = 0
				c.Dataset.Ratio = "4:1"
			},
			expectedErrs: 4,
			errorMessages: []string{
				"input.word: input document is required",
				"dataset.dir: dataset directory is required",
				"dataset.n_total: n_total must be positive",
				`dataset.ratio: invalid ratio "4:1"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := valid()
			tt.mutate(&config)

			errors := config.Validate()
			assert.Len(t, errors, tt.expectedErrs)

			for i, msg := range tt.errorMessages {
				assert.Contains(t, errors[i].Error(), msg)
			}
		})
	}
}

func TestValidRatio(t *testing.T) {
	for _, r := range append([]string{""}, Ratios...) {
		assert.True(t, ValidRatio(r), r)
	}
	assert.False(t, ValidRatio("1_3"))
	assert.False(t, ValidRatio("none"))
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("MEDQA_INPUT_WORD", "/env/case.docx")
	t.Setenv("MEDQA_DATASET_DIR", "/env/dataset")
	t.Setenv("MEDQA_RATIO", "2:1")

	config := &Config{}
	mergeWithEnv(config)

	assert.Equal(t, "/env/case.docx", config.Input.Word)
	assert.Equal(t, "/env/dataset", config.Dataset.Dir)
	assert.Equal(t, "2:1", config.Dataset.Ratio)
}
