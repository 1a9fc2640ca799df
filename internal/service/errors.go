package service

import (
	"errors"

	"github.com/MKhiriev/next-holiday/models"
)

var (
	// ErrCountryNotSupported is matched by every *UnsupportedCountryError.
	ErrCountryNotSupported = errors.New("country not supported")

	// ErrNextHolidayNotFound means no shared holiday exists in the search window.
	ErrNextHolidayNotFound = errors.New("next holiday not found")

	// ErrHolidayProvider wraps every failure of the external holiday provider.
	ErrHolidayProvider = errors.New("holiday provider error")
)

// UnsupportedCountryError is returned by [CountryService.VerifyCountries]
// when at least one requested country code is unknown to the provider.
type UnsupportedCountryError struct {
	// Message lists every unsupported code in request order.
	Message string

	// SupportedCountries is the full list the provider supports.
	SupportedCountries []models.Country
}

func (e *UnsupportedCountryError) Error() string {
	return e.Message
}

func (e *UnsupportedCountryError) Unwrap() error {
	return ErrCountryNotSupported
}
