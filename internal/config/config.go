// Package config loads drills settings from config.yaml with Viper.
// A missing config.yaml is not an error; defaults apply.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/drills/internal/logging"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// FileName is the config file created by WriteDefault.
	FileName = "config.yaml"

	envPrefix = "DRILLS"
)

// Config keys.
const (
	KeyLogLevel = "log_level"
	KeyOutput   = "output"
)

// Output formats for the run command.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// ErrOutputUnknown is returned by Validate for an unrecognized output format.
var ErrOutputUnknown = errors.New("unknown output format")

// Config holds the settings read from config.yaml.
type Config struct {
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
	Output   string `yaml:"output" mapstructure:"output"`
}

// Defaults returns the configuration used when config.yaml sets nothing.
func Defaults() Config {
	return Config{
		LogLevel: logging.DefaultLevel,
		Output:   OutputText,
	}
}

// Validate checks that the output format is known.
func (c Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrOutputUnknown, c.Output)
	}
}

// Load reads config.yaml from configDir. Values may also come from
// DRILLS_LOG_LEVEL and DRILLS_OUTPUT, which override the file.
func Load(configDir string) (Config, error) {
	defaults := Defaults()

	v := viper.New()
	v.SetDefault(KeyLogLevel, defaults.LogLevel)
	v.SetDefault(KeyOutput, defaults.Output)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WriteDefault creates configDir and writes config.yaml with default values
// if the file does not exist. It returns the file path and whether the file
// was created; an existing file is left untouched.
func WriteDefault(configDir string) (string, bool, error) {
	path := filepath.Join(configDir, FileName)

	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	} else if !os.IsNotExist(err) {
		return "", false, fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", false, fmt.Errorf("create config directory: %w", err)
	}

	cfg := Defaults()
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return "", false, fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", false, fmt.Errorf("write config: %w", err)
	}
	return path, true, nil
}
