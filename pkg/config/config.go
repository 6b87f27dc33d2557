// Package config contains the chiactl application configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Version is the version of the tool, set at build time.
var Version string

// DefaultCLI is the wallet command used when no other is configured.
const DefaultCLI = "chia"

// Config is the top-level structure of the yaml configuration file.
type Config struct {
	ApplicationConfiguration ApplicationConfiguration `yaml:"ApplicationConfiguration"`
}

// ApplicationConfiguration holds the tool settings.
type ApplicationConfiguration struct {
	// ChiaCLI is the command used to reach the wallet binary. It can carry
	// arguments ("ssh farm chia"), it is split according to shell quoting
	// rules.
	ChiaCLI  string `yaml:"ChiaCLI"`
	LogLevel string `yaml:"LogLevel"`
	LogPath  string `yaml:"LogPath"`
}

// Default returns the configuration used when no config file is given.
func Default() Config {
	return Config{
		ApplicationConfiguration: ApplicationConfiguration{
			ChiaCLI: DefaultCLI,
		},
	}
}

// LoadFile loads the configuration from the given path, filling unset
// fields with defaults.
func LoadFile(path string) (Config, error) {
	configData, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read config: %w", err)
	}
	config := Default()
	err = yaml.Unmarshal(configData, &config)
	if err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}
	if config.ApplicationConfiguration.ChiaCLI == "" {
		config.ApplicationConfiguration.ChiaCLI = DefaultCLI
	}
	return config, nil
}
