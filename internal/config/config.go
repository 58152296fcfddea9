// Package config provides configuration types, defaults, and persistence
// for tagconv.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"type-transformer/options"
)

// Config holds the tagconv settings. Field tags serve both viper
// (mapstructure) and the YAML file written by WriteDefaultConfig.
type Config struct {
	Prefix     string `mapstructure:"prefix" yaml:"prefix"`
	From       string `mapstructure:"from" yaml:"from"`             // input format
	To         string `mapstructure:"to" yaml:"to"`                 // output format
	Categories string `mapstructure:"categories" yaml:"categories"` // comma separated builtin categories
	LogLevel   string `mapstructure:"log_level" yaml:"log_level"`   // zap level name
}

// Defaults returns the settings used when neither a config file nor a flag
// says otherwise.
func Defaults() Config {
	return Config{
		Prefix:     "$",
		From:       "json",
		To:         "json",
		Categories: "all",
		LogLevel:   "warn",
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error

	if c.Prefix == "" {
		errs = append(errs, errors.New("prefix must not be empty"))
	}

	if _, err := SerializerFor(c.From); err != nil {
		errs = append(errs, fmt.Errorf("from: %w", err))
	}

	if _, err := SerializerFor(c.To); err != nil {
		errs = append(errs, fmt.Errorf("to: %w", err))
	}

	if _, err := c.CategoryMask(); err != nil {
		errs = append(errs, fmt.Errorf("categories: %w", err))
	}

	if _, err := c.Level(); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}

	return errors.Join(errs...)
}

// CategoryMask parses Categories.
func (c Config) CategoryMask() (options.CategoryEnum, error) {
	return options.ParseCategory(c.Categories)
}

// Level parses LogLevel.
func (c Config) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.LogLevel)
}

// WriteDefaultConfig writes the default settings to path, creating parent
// directories as needed. An existing file is left alone.
func WriteDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	}

	data, err := yaml.Marshal(Defaults())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
