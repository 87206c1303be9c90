// Package config loads table settings from config.yaml and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/hashtable/internal/paths"
	"github.com/mesh-intelligence/hashtable/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Environment variables are HASHTABLE_INITIAL_CAPACITY and
	// HASHTABLE_KEY_HASH.
	envPrefix = "HASHTABLE"

	cfgKeyInitialCapacity = "initial_capacity"
	cfgKeyKeyHash         = "key_hash"
)

const defaultConfigHeader = `# Hash table configuration
# key_hash is one of djb2, xxhash, maphash.
`

// Load reads config.yaml from dir, falling back to HASHTABLE_CONFIG_DIR and
// then the platform config directory when dir is empty. Environment
// variables override file values. A missing config.yaml is not an error;
// defaults apply. The result is validated.
func Load(dir string) (types.Config, error) {
	configDir, err := paths.ResolveConfigDir(dir)
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve config dir: %w", err)
	}

	defaults := types.DefaultConfig()
	v := viper.New()
	v.SetDefault(cfgKeyInitialCapacity, defaults.InitialCapacity)
	v.SetDefault(cfgKeyKeyHash, defaults.KeyHash)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := types.Config{
		InitialCapacity: v.GetInt(cfgKeyInitialCapacity),
		KeyHash:         v.GetString(cfgKeyKeyHash),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config in %s: %w", configDir, err)
	}
	return cfg, nil
}

// WriteDefault creates dir and writes a config.yaml holding
// types.DefaultConfig. An existing file is left untouched.
func WriteDefault(dir string) error {
	configDir, err := paths.ResolveConfigDir(dir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	path := filepath.Join(configDir, configFileExt)
	_, err = os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	cfg := types.DefaultConfig()
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, append([]byte(defaultConfigHeader), data...), 0o644)
}
