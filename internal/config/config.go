// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// next-holiday server. It aggregates all sub-configurations and is populated
// by merging defaults, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version and log level.
	App App `envPrefix:"APP_"`

	// Server holds the inbound HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Provider holds the endpoints of the external holiday-data provider.
	Provider Provider `envPrefix:"PROVIDER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from defaults, environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version overrides the build version reported by the version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimal zerolog level that is emitted
	// ("debug", "info", "warn", "error").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// URLPrefix is the path prefix under which the API routes are mounted
	// (e.g. "/api/holidays").
	// Env: SERVER_URL_PREFIX
	URLPrefix string `env:"URL_PREFIX"`
}

// Provider holds the holiday-data provider endpoints.
type Provider struct {
	// HolidaysURL is the URL template of the public holidays endpoint. It must
	// contain the {year} and {countryCode} placeholders.
	// Env: PROVIDER_HOLIDAYS_URL
	HolidaysURL string `env:"HOLIDAYS_URL"`

	// AvailableCountriesURL is the URL of the supported-countries endpoint.
	// Env: PROVIDER_AVAILABLE_COUNTRIES_URL
	AvailableCountriesURL string `env:"AVAILABLE_COUNTRIES_URL"`

	// RequestTimeout bounds every single outbound provider request.
	// Env: PROVIDER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Placeholders substituted in [Provider.HolidaysURL].
const (
	YearPlaceholder        = "{year}"
	CountryCodePlaceholder = "{countryCode}"
)

// defaultConfig returns the values used for every field that no other
// source sets.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: "debug",
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
			URLPrefix:      "/api/holidays",
		},
		Provider: Provider{
			HolidaysURL:           "https://date.nager.at/api/v3/PublicHolidays/" + YearPlaceholder + "/" + CountryCodePlaceholder,
			AvailableCountriesURL: "https://date.nager.at/api/v2/AvailableCountries",
			RequestTimeout:        10 * time.Second,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
