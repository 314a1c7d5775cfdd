// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	KeyTypeInt    = "int"
	KeyTypeString = "string"

	PrintModeFlat   = "flat"
	PrintModeLevels = "levels"
)

type TreeConfig struct {
	KeyType   string `yaml:"key_type"`
	PrintMode string `yaml:"print_mode"`
}

type SessionConfig struct {
	Prompt         string        `yaml:"prompt"`
	Color          bool          `yaml:"color"`
	RenderCacheTTL time.Duration `yaml:"render_cache_ttl"`
}

type Config struct {
	Tree    TreeConfig    `yaml:"tree"`
	Session SessionConfig `yaml:"session"`
}

var defaultConfig = Config{
	Tree: TreeConfig{
		KeyType:   KeyTypeInt,
		PrintMode: PrintModeFlat,
	},
	Session: SessionConfig{
		Prompt:         "avl> ",
		Color:          true,
		RenderCacheTTL: 5 * time.Minute,
	},
}

// DefaultConfig returns a copy of the built-in settings.
func DefaultConfig() *Config {
	c := defaultConfig
	return &c
}

// LoadConfig reads the YAML config at path. A missing file is not an error
// and yields the defaults. On a broken file the defaults are returned along
// with the error so callers can report it and carry on.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("failed to read config %s: %w", path, err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.Tree.KeyType {
	case KeyTypeInt, KeyTypeString:
	default:
		return fmt.Errorf("unknown key_type %q (want %s or %s)", c.Tree.KeyType, KeyTypeInt, KeyTypeString)
	}
	switch c.Tree.PrintMode {
	case PrintModeFlat, PrintModeLevels:
	default:
		return fmt.Errorf("unknown print_mode %q (want %s or %s)", c.Tree.PrintMode, PrintModeFlat, PrintModeLevels)
	}
	if c.Session.RenderCacheTTL < 0 {
		return fmt.Errorf("render_cache_ttl must not be negative, got %v", c.Session.RenderCacheTTL)
	}
	return nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".avltree.yaml"), nil
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displaySettings(configPath string, styles Styles) error {
	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			return err
		}
		fmt.Printf("Created default configuration at: %s\n\n", configPath)
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n\n", styles.title("avltree configuration"))
	if configExists {
		fmt.Printf("Config file: %s\n\n", configPath)
	} else {
		fmt.Printf("Config file: %s (newly created)\n\n", configPath)
	}

	fmt.Printf("%s\n", styles.info("tree:"))
	fmt.Printf("  key_type: %s\n", config.Tree.KeyType)
	fmt.Printf("  print_mode: %s\n\n", config.Tree.PrintMode)
	fmt.Printf("%s\n", styles.info("session:"))
	fmt.Printf("  prompt: %q\n", config.Session.Prompt)
	fmt.Printf("  color: %t\n", config.Session.Color)
	fmt.Printf("  render_cache_ttl: %s\n", config.Session.RenderCacheTTL)
	return nil
}
