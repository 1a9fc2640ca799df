// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// next-holiday server handlers.
//
// All Msg* constants are human-readable message strings written into the
// errorMessage field of HTTP error responses.
package app

const (
	// MsgNextHolidayNotFound is returned when the two countries share no
	// holiday in the searched years.
	MsgNextHolidayNotFound = "Could not find the next holiday for given countries."

	// MsgHolidayProviderError is returned when the external holiday provider
	// fails or answers with a non-2xx status.
	MsgHolidayProviderError = "Internal error from the holiday's provider."

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error."
)
