package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid listener settings
	// (for example, an empty address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidProviderConfigs indicates a missing or malformed holiday
	// provider endpoint.
	ErrInvalidProviderConfigs = errors.New("invalid provider configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)

var (
	errEmptyURL       = errors.New("url is empty")
	errURLNotAbsolute = errors.New("url must include scheme and host")
)
