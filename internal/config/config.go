// Copyright 2023 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
	Debug   DebugConfig   `yaml:"debug"`
	Network NetworkConfig `yaml:"network"`
	State   StateConfig   `yaml:"state"`
	Seeds   SeedsConfig   `yaml:"seeds"`
}

type LoggingConfig struct {
	Level      string `yaml:"level"      envconfig:"LOGGING_LEVEL"`
	File       string `yaml:"file"       envconfig:"LOGGING_FILE"`
	MaxSizeMB  int    `yaml:"maxSizeMB"  envconfig:"LOGGING_MAX_SIZE_MB"`
	MaxBackups int    `yaml:"maxBackups" envconfig:"LOGGING_MAX_BACKUPS"`
	MaxAgeDays int    `yaml:"maxAgeDays" envconfig:"LOGGING_MAX_AGE_DAYS"`
}

type DebugConfig struct {
	ListenAddress string `yaml:"address" envconfig:"DEBUG_ADDRESS"`
	ListenPort    uint   `yaml:"port"    envconfig:"DEBUG_PORT"`
}

type MetricsConfig struct {
	ListenAddress string `yaml:"address" envconfig:"METRICS_LISTEN_ADDRESS"`
	ListenPort    uint   `yaml:"port"    envconfig:"METRICS_LISTEN_PORT"`
}

// NetworkConfig selects the network. Setting both switches is rejected when
// the network is selected.
type NetworkConfig struct {
	Testnet bool `yaml:"testnet" envconfig:"NETWORK_TESTNET"`
	Regtest bool `yaml:"regtest" envconfig:"NETWORK_REGTEST"`
}

type StateConfig struct {
	Directory string `yaml:"dir" envconfig:"STATE_DIR"`
}

type SeedsConfig struct {
	Enabled     bool          `yaml:"enabled"     envconfig:"SEEDS_ENABLED"`
	Nameservers []string      `yaml:"nameservers" envconfig:"SEEDS_NAMESERVERS"`
	Timeout     time.Duration `yaml:"timeout"     envconfig:"SEEDS_TIMEOUT"`
}

// Singleton config instance with default values
var globalConfig = defaultConfig()

func defaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Debug: DebugConfig{
			ListenAddress: "localhost",
			ListenPort:    0,
		},
		Metrics: MetricsConfig{
			ListenAddress: "",
			ListenPort:    8081,
		},
		State: StateConfig{
			Directory: "./.state",
		},
		Seeds: SeedsConfig{
			Enabled: true,
			Nameservers: []string{
				"1.1.1.1:53",
				"8.8.8.8:53",
			},
			Timeout: 5 * time.Second,
		},
	}
}

func Load(configFile string) (*Config, error) {
	// Load config file as YAML if provided
	if configFile != "" {
		buf, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		err = yaml.Unmarshal(buf, globalConfig)
		if err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}
	// Load config values from environment variables
	// We use "dummy" as the app name here to (mostly) prevent picking up env
	// vars that we hadn't explicitly specified in annotations above
	err := envconfig.Process("dummy", globalConfig)
	if err != nil {
		return nil, fmt.Errorf("error processing environment: %w", err)
	}
	if globalConfig.Seeds.Timeout <= 0 {
		return nil, fmt.Errorf(
			"invalid seed lookup timeout: %s",
			globalConfig.Seeds.Timeout,
		)
	}
	return globalConfig, nil
}

// GetConfig returns the global config instance
func GetConfig() *Config {
	return globalConfig
}

// Reset restores the default configuration. It is intended for tests.
func Reset() {
	globalConfig = defaultConfig()
}
