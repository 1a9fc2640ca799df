package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/next-holiday/internal/app"
	"github.com/MKhiriev/next-holiday/internal/service"
	"github.com/MKhiriev/next-holiday/internal/utils"
	"github.com/MKhiriev/next-holiday/internal/validators"
	"github.com/MKhiriev/next-holiday/models"
)

var errorStatusMap = map[error]int{
	service.ErrCountryNotSupported: http.StatusBadRequest,
	service.ErrNextHolidayNotFound: http.StatusNotFound,
	service.ErrHolidayProvider:     http.StatusInternalServerError,

	validators.ErrMissingParameter: http.StatusBadRequest,
	validators.ErrInvalidDate:      http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError renders err as the JSON error body matching its status.
// Unsupported countries also carry the supported-country list.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	var unsupported *service.UnsupportedCountryError
	if errors.As(err, &unsupported) {
		utils.WriteJSON(w, models.CountryNotSupportedResponse{
			ErrorMessage:       unsupported.Message,
			SupportedCountries: unsupported.SupportedCountries,
		}, http.StatusBadRequest)
		return
	}

	status := statusFromError(err)
	switch {
	case errors.Is(err, service.ErrNextHolidayNotFound):
		utils.WriteError(w, app.MsgNextHolidayNotFound, status)
	case errors.Is(err, service.ErrHolidayProvider):
		utils.WriteError(w, app.MsgHolidayProviderError, status)
	case status == http.StatusInternalServerError:
		utils.WriteError(w, app.MsgInternalServerError, status)
	default:
		utils.WriteError(w, err.Error(), status)
	}
}
