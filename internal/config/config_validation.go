// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants required at startup: the server has an address to listen on and
// both provider endpoints are present, absolute, and the holidays endpoint
// carries the {year} and {countryCode} placeholders.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Server.HTTPAddress) == "" {
		return fmt.Errorf("%w: empty server address", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}
	if cfg.Server.URLPrefix != "" && !strings.HasPrefix(cfg.Server.URLPrefix, "/") {
		return fmt.Errorf("%w: url prefix must start with '/'", ErrInvalidServerConfigs)
	}

	if err := validateProviderURL(cfg.Provider.HolidaysURL); err != nil {
		return fmt.Errorf("%w: holidays url: %w", ErrInvalidProviderConfigs, err)
	}
	if !strings.Contains(cfg.Provider.HolidaysURL, YearPlaceholder) ||
		!strings.Contains(cfg.Provider.HolidaysURL, CountryCodePlaceholder) {
		return fmt.Errorf("%w: holidays url must contain %s and %s",
			ErrInvalidProviderConfigs, YearPlaceholder, CountryCodePlaceholder)
	}
	if err := validateProviderURL(cfg.Provider.AvailableCountriesURL); err != nil {
		return fmt.Errorf("%w: available countries url: %w", ErrInvalidProviderConfigs, err)
	}

	switch cfg.App.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
	}

	return nil
}

func validateProviderURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return errEmptyURL
	}

	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return errURLNotAbsolute
	}

	return nil
}
