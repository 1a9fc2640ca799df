// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client of the external holiday-data provider.
//
// The primary abstraction is [HolidayProvider], which decouples the service
// layer from the provider's transport. The package ships an HTTP/REST
// implementation built on resty ([NewHTTPHolidayProvider]) that talks to a
// Nager.Date compatible API.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnexpectedStatus] for any non-2xx response).
package adapter

import (
	"context"

	"github.com/MKhiriev/next-holiday/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/holiday_provider_mock.go -package=mock

// HolidayProvider fetches raw holiday and country data from the external
// holiday-data provider. Implementations perform no caching and no retries:
// each call is exactly one upstream request.
type HolidayProvider interface {
	// FetchHolidays returns the public holidays of the country identified by
	// countryCode in the given year. An empty upstream body yields an empty
	// slice and no error. Any non-2xx response or transport failure is
	// returned as an error.
	FetchHolidays(ctx context.Context, countryCode string, year int) ([]models.Holiday, error)

	// FetchSupportedCountries returns the full list of countries the
	// provider has holiday data for.
	FetchSupportedCountries(ctx context.Context) ([]models.Country, error)
}
