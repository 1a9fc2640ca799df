// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/next-holiday/internal/logger"
	"github.com/MKhiriev/next-holiday/internal/utils"
	"github.com/MKhiriev/next-holiday/internal/validators"
	"github.com/MKhiriev/next-holiday/models"
)

// getNextHoliday serves GET {prefix}/next-holiday?date=&country1=&country2=.
func (h *Handler) getNextHoliday(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	query := r.URL.Query()
	request := models.NextHolidayRequest{
		Date:     query.Get("date"),
		Country1: query.Get("country1"),
		Country2: query.Get("country2"),
	}

	date, err := validators.ParseDate(request.Date)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getNextHoliday").Msg("invalid date parameter")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err = h.validator.Validate(ctx, request, validators.FieldCountry1, validators.FieldCountry2); err != nil {
		log.Err(err).Str("func", "*Handler.getNextHoliday").Msg("invalid country parameters")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err = h.services.CountryService.VerifyCountries(ctx, request.Country1, request.Country2); err != nil {
		log.Err(err).Str("func", "*Handler.getNextHoliday").Msg("country verification failed")
		h.writeServiceError(w, err)
		return
	}

	match, err := h.services.HolidayService.FindNextHoliday(ctx, date, request.Country1, request.Country2)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getNextHoliday").Msg("error finding next holiday")
		h.writeServiceError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, match, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getNextHoliday").Msg("error writing response")
	}
}
