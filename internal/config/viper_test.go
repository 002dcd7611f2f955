package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "xlsx", cfg.Output.Format)
	assert.Equal(t, ",", cfg.Output.Delimiter)
	assert.False(t, cfg.Output.OpenFiles)
	assert.Equal(t, 10, cfg.Output.MaxOpen)
	assert.True(t, cfg.Classifier.Strict)
	assert.Equal(t, "institution-name", cfg.Dedup.Policy)
	assert.InDelta(t, 0.5, cfg.Extractor.MinConfidence, 1e-9)
	assert.Empty(t, cfg.Vocab.File)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("ROSTER_OUTPUT_FORMAT", "csv")
	t.Setenv("ROSTER_LOG_LEVEL", "debug")
	t.Setenv("ROSTER_DEDUP_POLICY", "name-serial")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "csv", cfg.Output.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "name-serial", cfg.Dedup.Policy)
}

func TestInitializeConfigInvalidEnv(t *testing.T) {
	t.Setenv("ROSTER_OUTPUT_FORMAT", "pdf")

	_, err := InitializeConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		c := &Config{}
		c.Log.Level = "info"
		c.Log.Format = "text"
		c.Output.Format = "xlsx"
		c.Output.Delimiter = ","
		c.Output.MaxOpen = 10
		c.Dedup.Policy = "institution-name"
		c.Extractor.MinConfidence = 0.5
		return c
	}

	assert.NoError(t, validateConfig(valid()))

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
		{"bad output format", func(c *Config) { c.Output.Format = "pdf" }},
		{"long delimiter", func(c *Config) { c.Output.Delimiter = ";;" }},
		{"empty delimiter", func(c *Config) { c.Output.Delimiter = "" }},
		{"negative max open", func(c *Config) { c.Output.MaxOpen = -1 }},
		{"bad dedup policy", func(c *Config) { c.Dedup.Policy = "fuzzy" }},
		{"confidence above one", func(c *Config) { c.Extractor.MinConfidence = 1.5 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mutate(c)
			assert.Error(t, validateConfig(c))
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	c := &Config{}
	c.Log.Level = "debug"
	c.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(c)
	assert.Equal(t, "debug", logger.GetLevel().String())
}
