// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"rosterxtract/pdf-roster/internal/assembler"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Output struct {
		Format    string `mapstructure:"format" yaml:"format"`
		Directory string `mapstructure:"directory" yaml:"directory"`
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
		OpenFiles bool   `mapstructure:"open_files" yaml:"open_files"`
		MaxOpen   int    `mapstructure:"max_open" yaml:"max_open"`
	} `mapstructure:"output" yaml:"output"`

	Classifier struct {
		Strict bool `mapstructure:"strict" yaml:"strict"`
	} `mapstructure:"classifier" yaml:"classifier"`

	Dedup struct {
		Policy string `mapstructure:"policy" yaml:"policy"`
	} `mapstructure:"dedup" yaml:"dedup"`

	Extractor struct {
		MinConfidence float64 `mapstructure:"min_confidence" yaml:"min_confidence"`
	} `mapstructure:"extractor" yaml:"extractor"`

	Vocab struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"vocab" yaml:"vocab"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then ROSTER_* environment
// variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.pdf-roster")
	v.AddConfigPath(".pdf-roster")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("ROSTER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Output defaults
	v.SetDefault("output.format", "xlsx")
	v.SetDefault("output.directory", "")
	v.SetDefault("output.delimiter", ",")
	v.SetDefault("output.open_files", false)
	v.SetDefault("output.max_open", 10)

	// Heuristic defaults
	v.SetDefault("classifier.strict", true)
	v.SetDefault("dedup.policy", string(assembler.PolicyInstitutionName))
	v.SetDefault("extractor.min_confidence", 0.5)
	v.SetDefault("vocab.file", "")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Output.Format != "xlsx" && config.Output.Format != "csv" {
		return fmt.Errorf("invalid output format: %s (must be 'xlsx' or 'csv')", config.Output.Format)
	}

	if len(config.Output.Delimiter) != 1 {
		return fmt.Errorf("output delimiter must be a single character, got: %s", config.Output.Delimiter)
	}

	if config.Output.MaxOpen < 0 {
		return fmt.Errorf("output.max_open must not be negative, got: %d", config.Output.MaxOpen)
	}

	policy := config.Dedup.Policy
	if policy != string(assembler.PolicyInstitutionName) && policy != string(assembler.PolicyNameSerial) {
		return fmt.Errorf("invalid dedup policy: %s (must be '%s' or '%s')",
			policy, assembler.PolicyInstitutionName, assembler.PolicyNameSerial)
	}

	if config.Extractor.MinConfidence < 0.0 || config.Extractor.MinConfidence > 1.0 {
		return fmt.Errorf("extractor.min_confidence must be between 0.0 and 1.0, got: %f",
			config.Extractor.MinConfidence)
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
