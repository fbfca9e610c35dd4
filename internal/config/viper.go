// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Upload struct {
		MaxFiles  int `mapstructure:"max_files" yaml:"max_files"`
		MaxSizeMB int `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	} `mapstructure:"upload" yaml:"upload"`

	Parsers struct {
		Roela struct {
			SplitRatio float64 `mapstructure:"split_ratio" yaml:"split_ratio"`
			HeaderCut  float64 `mapstructure:"header_cut" yaml:"header_cut"`
			FooterCut  float64 `mapstructure:"footer_cut" yaml:"footer_cut"`
		} `mapstructure:"roela" yaml:"roela"`
	} `mapstructure:"parsers" yaml:"parsers"`

	Report struct {
		SheetPrefix      string `mapstructure:"sheet_prefix" yaml:"sheet_prefix"`
		IncludeAnalysis  bool   `mapstructure:"include_analysis" yaml:"include_analysis"`
		IncludeMonthly   bool   `mapstructure:"include_monthly" yaml:"include_monthly"`
		CategoryFallback string `mapstructure:"category_fallback" yaml:"category_fallback"`
	} `mapstructure:"report" yaml:"report"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.statement-csv")
	v.AddConfigPath(".statement-csv")
	v.AddConfigPath(".")

	v.SetEnvPrefix("STMT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
		// Missing config file is fine, defaults and env vars apply
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
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("upload.max_files", 10)
	v.SetDefault("upload.max_size_mb", 50)

	v.SetDefault("parsers.roela.split_ratio", 0.515)
	v.SetDefault("parsers.roela.header_cut", 260.0)
	v.SetDefault("parsers.roela.footer_cut", 30.0)

	v.SetDefault("report.sheet_prefix", "")
	v.SetDefault("report.include_analysis", true)
	v.SetDefault("report.include_monthly", true)
	v.SetDefault("report.category_fallback", "Other")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.Upload.MaxFiles < 1 {
		return fmt.Errorf("upload.max_files must be at least 1, got: %d", config.Upload.MaxFiles)
	}
	if config.Upload.MaxSizeMB < 1 {
		return fmt.Errorf("upload.max_size_mb must be at least 1, got: %d", config.Upload.MaxSizeMB)
	}

	r := config.Parsers.Roela
	if r.SplitRatio <= 0 || r.SplitRatio >= 1 {
		return fmt.Errorf("parsers.roela.split_ratio must be between 0 and 1, got: %f", r.SplitRatio)
	}
	if r.HeaderCut < 0 || r.FooterCut < 0 {
		return fmt.Errorf("parsers.roela header and footer cuts must not be negative")
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
