package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const defaultRouteCacheSize = 256

// Config is the global application configuration
var Config = Default()

var validate = validator.New()

// Default returns the configuration used when no config.yml is found
func Default() AppConfig {
	return AppConfig{
		Cache:   CacheConfig{RouteCacheSize: defaultRouteCacheSize},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// LoadAppConfig loads and validates the application configuration.
// An explicit path must exist; otherwise config.yml and ./config/config.yml
// are tried and defaults apply when neither exists.
func LoadAppConfig(path string) error {
	paths := []string{"config.yml", "./config/config.yml"}
	if path != "" {
		paths = []string{path}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		if path != "" {
			return err
		}
		Config = Default()
		return nil
	}
	cfg, err := Parse(data)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// Parse decodes and validates a YAML document on top of the defaults
func Parse(data []byte) (AppConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the struct tags of any configuration value, e.g. an
// AppConfig or routing settings read from a request document
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
