// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the generic JSON error body returned by the API.
type ErrorResponse struct {
	ErrorMessage string `json:"errorMessage"`
}

// CountryNotSupportedResponse is returned with HTTP 400 when at least one of
// the requested country codes is unknown to the provider. It carries the full
// list of supported countries so the caller can pick a valid one.
type CountryNotSupportedResponse struct {
	ErrorMessage       string    `json:"errorMessage"`
	SupportedCountries []Country `json:"supportedCountries"`
}
