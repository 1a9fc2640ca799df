package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/next-holiday/internal/adapter"
	"github.com/MKhiriev/next-holiday/internal/logger"
)

type countryService struct {
	provider adapter.HolidayProvider

	logger *logger.Logger
}

func NewCountryService(provider adapter.HolidayProvider, logger *logger.Logger) CountryService {
	return &countryService{
		provider: provider,
		logger:   logger,
	}
}

// VerifyCountries implements [CountryService]. The supported list is fetched
// on every call.
func (s *countryService) VerifyCountries(ctx context.Context, countryCode1, countryCode2 string) error {
	countries, err := s.provider.FetchSupportedCountries(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrHolidayProvider, err)
	}

	keys := make(map[string]struct{}, len(countries))
	for _, country := range countries {
		keys[strings.ToUpper(country.Key)] = struct{}{}
	}

	var problems []string
	for _, code := range []string{countryCode1, countryCode2} {
		if _, ok := keys[CanonicalCountryCode(code)]; !ok {
			problems = append(problems, fmt.Sprintf("Country code: %s is not supported.", code))
		}
	}

	if len(problems) > 0 {
		logger.FromContext(ctx).Debug().
			Str("country1", countryCode1).
			Str("country2", countryCode2).
			Int("supported", len(countries)).
			Msg("unsupported country code requested")

		return &UnsupportedCountryError{
			Message:            strings.Join(problems, " "),
			SupportedCountries: countries,
		}
	}

	return nil
}

// CanonicalCountryCode returns code trimmed and upper-cased, the form used
// for lookups and provider requests.
func CanonicalCountryCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
