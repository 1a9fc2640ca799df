package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingParameter = errors.New("missing required parameter")
	ErrInvalidDate      = errors.New("invalid date, expected format YYYY-MM-DD")
)
