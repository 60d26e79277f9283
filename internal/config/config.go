// Package config defines the application configuration structures and
// loads them from the YAML config file.
package config

import (
	"fmt"

	"github.com/autofi/finance-estimator/internal/state"
	"github.com/autofi/finance-estimator/pkg/adapters"
	"github.com/autofi/finance-estimator/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for finance-estimator.
type Configuration struct {
	Defaults DefaultsConfig `yaml:"defaults,omitempty"`
	Deal     *adapters.Deal `yaml:"deal,omitempty"`
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
	Output   OutputConfig   `yaml:"output,omitempty"`
}

// DefaultsConfig overrides the session starting values. Deployments quote
// different baseline vehicle prices (for example 25000 or 35000), so the
// default is configuration rather than code.
type DefaultsConfig struct {
	CarPrice float64 `yaml:"carPrice,omitempty"`
	ZipCode  string  `yaml:"zipCode,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// StateDefaults converts the configured defaults into the state package's
// form; zero values fall back to the built-in defaults there.
func (c *Configuration) StateDefaults() state.Defaults {
	return state.Defaults{
		CarPrice: c.Defaults.CarPrice,
		ZipCode:  c.Defaults.ZipCode,
	}
}

// ValidateConfiguration performs general validation of the configuration
// and returns warnings. Warnings never block an estimate.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if c.Defaults.ZipCode != "" {
		if err := validation.ValidateZipCode(c.Defaults.ZipCode); err != nil {
			warnings = append(warnings, fmt.Sprintf("defaults: %v", err))
		}
	}
	if c.Defaults.CarPrice < 0 {
		warnings = append(warnings, fmt.Sprintf("defaults: car price %.2f is negative", c.Defaults.CarPrice))
	}

	if c.Deal != nil {
		warnings = append(warnings, validation.ValidateDeal(adapters.ValidationInfo(*c.Deal))...)
	}

	return warnings
}
