package service

import (
	"context"

	"github.com/MKhiriev/next-holiday/models"
)

// CountryService validates country codes against the provider's list of
// supported countries.
type CountryService interface {
	// VerifyCountries checks both codes case-insensitively. If either is
	// unsupported it returns an *UnsupportedCountryError describing every
	// unsupported code and carrying the full supported-country list.
	VerifyCountries(ctx context.Context, countryCode1, countryCode2 string) error
}

// HolidayService finds holidays shared by two countries.
type HolidayService interface {
	// FindNextHoliday returns the earliest date strictly after date that is a
	// public holiday in both countries. Only the year of date and the
	// following year are searched; if nothing is found ErrNextHolidayNotFound
	// is returned.
	FindNextHoliday(ctx context.Context, date models.Date, countryCode1, countryCode2 string) (models.HolidayMatch, error)
}

// AppInfoService exposes static information about the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
