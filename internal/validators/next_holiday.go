package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/next-holiday/models"
)

// Field name constants used to restrict validation of a
// models.NextHolidayRequest to a subset of its query parameters.
const (
	// FieldDate targets the query date, which must be in models.DateLayout.
	FieldDate = "date"

	// FieldCountry1 targets the first country code.
	FieldCountry1 = "country1"

	// FieldCountry2 targets the second country code.
	FieldCountry2 = "country2"
)

// NextHolidayValidator implements the Validator interface for
// models.NextHolidayRequest. It checks syntax only: whether a country code is
// actually supported is decided later against the provider's list.
type NextHolidayValidator struct {
}

func NewNextHolidayValidator() Validator {
	return &NextHolidayValidator{}
}

// Validate accepts models.NextHolidayRequest by value or pointer. Fields are
// checked in the given order and the first failure is returned; with no fields
// all three are checked.
func (v *NextHolidayValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NextHolidayRequest:
		return v.validateNextHolidayRequest(ctx, value, fields...)
	case *models.NextHolidayRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateNextHolidayRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *NextHolidayValidator) validateNextHolidayRequest(_ context.Context, request models.NextHolidayRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDate, FieldCountry1, FieldCountry2}
	}

	for _, f := range fields {
		switch f {
		case FieldDate:
			if err := validateDate(request.Date); err != nil {
				return err
			}
		case FieldCountry1:
			if err := validateCountryCode(FieldCountry1, request.Country1); err != nil {
				return err
			}
		case FieldCountry2:
			if err := validateCountryCode(FieldCountry2, request.Country2); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateDate(date string) error {
	_, err := ParseDate(date)
	return err
}

// ParseDate parses the raw date query parameter, returning the same errors
// as validating [FieldDate]. Handlers use it to get the date without parsing
// twice.
func ParseDate(raw string) (models.Date, error) {
	if strings.TrimSpace(raw) == "" {
		return models.Date{}, fmt.Errorf("%w: %s", ErrMissingParameter, FieldDate)
	}
	date, err := models.ParseDate(raw)
	if err != nil {
		return models.Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return date, nil
}

// validateCountryCode only requires a value. Whether the code names a
// supported country is decided against the provider's list, so unknown codes
// of any shape still get that list back.
func validateCountryCode(field, code string) error {
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("%w: %s", ErrMissingParameter, field)
	}
	return nil
}
