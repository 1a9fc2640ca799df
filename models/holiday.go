// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Holiday is a single public holiday observed by one country on one date,
// as returned by the holiday provider. Two holidays are equal when both the
// date and the local name are equal.
type Holiday struct {
	// Date is the calendar day of the holiday.
	Date Date `json:"date"`

	// LocalName is the holiday name in the country's own language. After
	// same-date merging it may hold several names joined by [HolidayNameSeparator].
	LocalName string `json:"localName"`
}

// HolidayNameSeparator joins the names of holidays that fall on the same date
// in one country.
const HolidayNameSeparator = " | "

// HolidayMatch is the first date that is a holiday in both requested
// countries together with the (possibly merged) local names on each side.
type HolidayMatch struct {
	// Date is the shared holiday date.
	Date Date `json:"nextHolidayDate"`

	// Name1 is the holiday name in the first country.
	Name1 string `json:"holidayName1"`

	// Name2 is the holiday name in the second country.
	Name2 string `json:"holidayName2"`
}
