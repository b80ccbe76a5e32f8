// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 the flameconnect authors

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Config holds everything the CLI needs to reach the FlameConnect cloud.
type Config struct {
	LogLevel zapcore.Level

	Cloud CloudConfig `mapstructure:"cloud"`

	// FireID is the default fire for commands that take none.
	FireID string `mapstructure:"fire_id"`

	HTTPLog bool `mapstructure:"http_log"`
}

// CloudConfig configures the relay API and the token endpoint.
type CloudConfig struct {
	APIBaseURL string `mapstructure:"api_base_url"`
	TokenURL   string `mapstructure:"token_url"`
	ClientID   string `mapstructure:"client_id"`
	Scope      string `mapstructure:"scope"`
	Email      string `mapstructure:"email"`

	// Password is only ever read from the environment or an interactive
	// prompt; it is not a config-file field and is never printed.
	Password string `mapstructure:"-"`
}

// Load reads configuration from the environment (prefix FLAMECONNECT) and,
// when configFile is non-empty, from a YAML file. Environment wins.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// FLAMECONNECT_CLOUD_API_BASE_URL etc. map onto the nested keys
	v.SetEnvPrefix("flameconnect")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	level, err := zapcore.ParseLevel(v.GetString("log_level"))
	if err != nil {
		return nil, fmt.Errorf("invalid log_level: %w", err)
	}
	cfg.LogLevel = level

	// Unmarshal only reads keys that were set or defaulted; make sure the
	// env-only keys land even when no file was read.
	cfg.Cloud.APIBaseURL = v.GetString("cloud.api_base_url")
	cfg.Cloud.TokenURL = v.GetString("cloud.token_url")
	cfg.Cloud.ClientID = v.GetString("cloud.client_id")
	cfg.Cloud.Scope = v.GetString("cloud.scope")
	if s := v.GetString("cloud.email"); s != "" {
		cfg.Cloud.Email = s
	}
	if s := v.GetString("fire_id"); s != "" {
		cfg.FireID = s
	}

	if cfg.Cloud.APIBaseURL == "" {
		return nil, fmt.Errorf("cloud api_base_url is required")
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "warn")
	v.SetDefault("http_log", false)
	v.SetDefault("cloud.api_base_url", "https://api.flameconnect.com/v1")
	v.SetDefault("cloud.token_url", "https://auth.flameconnect.com/oauth2/token")
	v.SetDefault("cloud.client_id", "flameconnect-cli")
	v.SetDefault("cloud.scope", "fires.readwrite")
}
