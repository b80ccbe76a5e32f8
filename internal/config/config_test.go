// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 the flameconnect authors

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, zapcore.WarnLevel, cfg.LogLevel)
	assert.Equal(t, "https://api.flameconnect.com/v1", cfg.Cloud.APIBaseURL)
	assert.Equal(t, "flameconnect-cli", cfg.Cloud.ClientID)
	assert.Equal(t, "fires.readwrite", cfg.Cloud.Scope)
	assert.False(t, cfg.HTTPLog)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("FLAMECONNECT_LOG_LEVEL", "debug")
	t.Setenv("FLAMECONNECT_CLOUD_API_BASE_URL", "https://staging.example.com/v1")
	t.Setenv("FLAMECONNECT_FIRE_ID", "fire-42")
	t.Setenv("FLAMECONNECT_CLOUD_EMAIL", "user@example.com")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, zapcore.DebugLevel, cfg.LogLevel)
	assert.Equal(t, "https://staging.example.com/v1", cfg.Cloud.APIBaseURL)
	assert.Equal(t, "fire-42", cfg.FireID)
	assert.Equal(t, "user@example.com", cfg.Cloud.Email)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("FLAMECONNECT_LOG_LEVEL", "noisy")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
}
