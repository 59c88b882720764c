// Copyright 2025 Poiesic Systems
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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds settings read from the optional config file.
// Command-line flags take precedence over every value here.
type Config struct {
	Dictionary    string              `mapstructure:"dictionary"`
	Rules         string              `mapstructure:"rules"`
	LLM           LLMConfig           `mapstructure:"llm"`
	FunctionWords map[string][]string `mapstructure:"function_words"`
}

// LLMConfig holds settings for the LLM morphology provider.
type LLMConfig struct {
	Host  string `mapstructure:"host"`
	Model string `mapstructure:"model"`
	Token string `mapstructure:"token"`
}

// loadConfig reads configuration from path, or from
// $HOME/.config/prosecheck/config.{yaml,toml,json} when path is empty.
// A missing default file is not an error. Env var overrides use the
// PROSECHECK_ prefix, e.g. PROSECHECK_LLM_MODEL.
func loadConfig(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("dictionary", "")
	v.SetDefault("rules", "")
	v.SetDefault("llm.host", "")
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.token", "")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "prosecheck"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PROSECHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return c, nil
}
