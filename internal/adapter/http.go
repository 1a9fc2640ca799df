package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/MKhiriev/next-holiday/internal/config"
	"github.com/MKhiriev/next-holiday/internal/logger"
	"github.com/MKhiriev/next-holiday/internal/utils"
	"github.com/MKhiriev/next-holiday/models"
)

// Path parameter names substituted into [config.Provider.HolidaysURL].
const (
	yearPathParam        = "year"
	countryCodePathParam = "countryCode"
)

type httpHolidayProvider struct {
	client *utils.HTTPClient

	holidaysURL           string
	availableCountriesURL string

	logger *logger.Logger
}

// NewHTTPHolidayProvider constructs an HTTP/REST implementation of
// [HolidayProvider] using the endpoints and timeout from cfg.
func NewHTTPHolidayProvider(cfg config.Provider, logger *logger.Logger) HolidayProvider {
	return &httpHolidayProvider{
		client:                utils.NewHTTPClient(cfg.RequestTimeout, logger),
		holidaysURL:           cfg.HolidaysURL,
		availableCountriesURL: cfg.AvailableCountriesURL,
		logger:                logger,
	}
}

// FetchHolidays implements [HolidayProvider]. It GETs the holidays URL with
// the {year} and {countryCode} placeholders substituted.
func (p *httpHolidayProvider) FetchHolidays(ctx context.Context, countryCode string, year int) ([]models.Holiday, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			yearPathParam:        strconv.Itoa(year),
			countryCodePathParam: countryCode,
		}).
		Get(p.holidaysURL)
	if err != nil {
		return nil, fmt.Errorf("fetch holidays request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("fetch holidays for %s/%d: %w", countryCode, year, err)
	}

	var holidays []models.Holiday
	if err = decodeBody(resp.Body(), &holidays); err != nil {
		return nil, fmt.Errorf("decode holidays for %s/%d: %w", countryCode, year, err)
	}

	p.logger.Debug().
		Str("country_code", countryCode).
		Int("year", year).
		Int("holidays", len(holidays)).
		Dur("duration", resp.Time()).
		Msg("holidays fetched from provider")

	if holidays == nil {
		return []models.Holiday{}, nil
	}
	return holidays, nil
}

// FetchSupportedCountries implements [HolidayProvider]. It GETs the available
// countries URL.
func (p *httpHolidayProvider) FetchSupportedCountries(ctx context.Context) ([]models.Country, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		Get(p.availableCountriesURL)
	if err != nil {
		return nil, fmt.Errorf("fetch available countries request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("fetch available countries: %w", err)
	}

	var countries []models.Country
	if err = decodeBody(resp.Body(), &countries); err != nil {
		return nil, fmt.Errorf("decode available countries: %w", err)
	}

	p.logger.Debug().
		Int("countries", len(countries)).
		Dur("duration", resp.Time()).
		Msg("available countries fetched from provider")

	if countries == nil {
		return []models.Country{}, nil
	}
	return countries, nil
}

// decodeBody unmarshals a JSON body whatever Content-Type the provider sent.
// An empty body leaves v untouched; anything that is not valid JSON for v
// wraps [ErrMalformedResponse].
func decodeBody(body []byte, v any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}
