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
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".avltree.yaml"

type DisplayConfig struct {
	ShowShape bool `yaml:"show_shape"`
	Color     bool `yaml:"color"`
}

type LoadConfig struct {
	ShowProgress bool `yaml:"show_progress"`
}

type ReplConfig struct {
	HistorySize int `yaml:"history_size"`
	WrapWidth   int `yaml:"wrap_width"`
}

type Config struct {
	Display DisplayConfig `yaml:"display"`
	Load    LoadConfig    `yaml:"load"`
	Repl    ReplConfig    `yaml:"repl"`
}

var defaultConfig = Config{
	Display: DisplayConfig{
		ShowShape: false,
		Color:     true,
	},
	Load: LoadConfig{
		ShowProgress: true,
	},
	Repl: ReplConfig{
		HistorySize: 200,
		WrapWidth:   72,
	},
}

// DefaultConfig returns a copy of the built-in settings
func DefaultConfig() *Config {
	config := defaultConfig
	return &config
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadUserConfig reads ~/.avltree.yaml. A missing or unreadable file
// falls back to the defaults.
func LoadUserConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	return LoadConfigFrom(configPath)
}

// LoadConfigFrom reads a config file over the defaults, so settings the
// file omits keep their default value. Non-positive sizes are reset to
// the default as well.
func LoadConfigFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("failed to read config %s: %w", path, err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if config.Repl.HistorySize <= 0 {
		config.Repl.HistorySize = defaultConfig.Repl.HistorySize
	}
	if config.Repl.WrapWidth <= 0 {
		config.Repl.WrapWidth = defaultConfig.Repl.WrapWidth
	}

	return config, nil
}

func writeConfigFile(path string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displaySettings(w io.Writer) error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")

		if err := writeConfigFile(configPath, DefaultConfig()); err != nil {
			return err
		}
		fmt.Fprintf(w, "✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := LoadConfigFrom(configPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "🔧 avltree Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════════\n\n")

	if configExists {
		fmt.Fprintf(w, "📍 Config file: %s\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Fprintf(w, "📊 Current settings:\n\n")
	fmt.Fprintf(w, "  • %sdisplay.show_shape%s: %t\n", Green, Reset, config.Display.ShowShape)
	fmt.Fprintf(w, "  • %sdisplay.color%s: %t\n", Green, Reset, config.Display.Color)
	fmt.Fprintf(w, "  • %sload.show_progress%s: %t\n", Green, Reset, config.Load.ShowProgress)
	fmt.Fprintf(w, "  • %srepl.history_size%s: %d\n", Green, Reset, config.Repl.HistorySize)
	fmt.Fprintf(w, "  • %srepl.wrap_width%s: %d\n\n", Green, Reset, config.Repl.WrapWidth)

	fmt.Fprintf(w, "💡 Edit %s to change these values.\n", configPath)
	return nil
}
