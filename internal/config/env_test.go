// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION":   "1.2.3",
		"APP_LOG_LEVEL": "info",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",
		"SERVER_URL_PREFIX":      "/api/holidays",

		"PROVIDER_HOLIDAYS_URL":            "https://provider.test/{year}/{countryCode}",
		"PROVIDER_AVAILABLE_COUNTRIES_URL": "https://provider.test/countries",
		"PROVIDER_REQUEST_TIMEOUT":         "5s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/api/holidays", cfg.Server.URLPrefix)
	assert.Equal(t, "https://provider.test/{year}/{countryCode}", cfg.Provider.HolidaysURL)
	assert.Equal(t, "https://provider.test/countries", cfg.Provider.AvailableCountriesURL)
	assert.Equal(t, 5*time.Second, cfg.Provider.RequestTimeout)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"PROVIDER_HOLIDAYS_URL": "https://provider.test/{year}/{countryCode}",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "https://provider.test/{year}/{countryCode}", cfg.Provider.HolidaysURL)
	assert.Empty(t, cfg.Provider.AvailableCountriesURL)
	assert.Zero(t, cfg.Provider.RequestTimeout)
	assert.Equal(t, Server{}, cfg.Server)
	assert.Equal(t, App{}, cfg.App)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"PROVIDER_REQUEST_TIMEOUT": "invalid_duration",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_VERSION",
		"APP_LOG_LEVEL",

		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",
		"SERVER_URL_PREFIX",

		"PROVIDER_HOLIDAYS_URL",
		"PROVIDER_AVAILABLE_COUNTRIES_URL",
		"PROVIDER_REQUEST_TIMEOUT",
	}
	for _, k := range keys {
		// t.Setenv registers a cleanup restoring the previous value.
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
