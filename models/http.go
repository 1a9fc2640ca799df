// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NextHolidayRequest holds the raw query parameters of the next-holiday
// endpoint before validation.
type NextHolidayRequest struct {
	// Date is the query date in [DateLayout] form. Holidays on this date are
	// not considered, only strictly later ones.
	Date string

	// Country1 is the first country code, case-insensitive.
	Country1 string

	// Country2 is the second country code, case-insensitive.
	Country2 string
}
