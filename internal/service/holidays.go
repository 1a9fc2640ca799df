// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"slices"
	"strings"

	"github.com/MKhiriev/next-holiday/models"
)

// reduceHolidays returns the holidays strictly after date, sorted by date,
// with at most one entry per date. Holidays sharing a date are merged into one
// whose name joins the original names in lexicographic order with
// [models.HolidayNameSeparator]. Exact duplicates are counted once.
func reduceHolidays(date models.Date, holidays []models.Holiday) []models.Holiday {
	upcoming := make([]models.Holiday, 0, len(holidays))
	for _, holiday := range holidays {
		if holiday.Date.After(date) {
			upcoming = append(upcoming, holiday)
		}
	}

	slices.SortFunc(upcoming, compareHolidays)
	upcoming = slices.Compact(upcoming)

	reduced := make([]models.Holiday, 0, len(upcoming))
	for _, holiday := range upcoming {
		last := len(reduced) - 1
		if last >= 0 && reduced[last].Date.Equal(holiday.Date) {
			reduced[last].LocalName += models.HolidayNameSeparator + holiday.LocalName
			continue
		}
		reduced = append(reduced, holiday)
	}

	return reduced
}

func compareHolidays(a, b models.Holiday) int {
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	return strings.Compare(a.LocalName, b.LocalName)
}

// matchFirstHoliday returns the earliest date present in both reduced sets.
// Each set must hold at most one holiday per date; Name1 comes from
// holidays1 and Name2 from holidays2.
func matchFirstHoliday(holidays1, holidays2 []models.Holiday) (models.HolidayMatch, bool) {
	merged := make([]models.Holiday, 0, len(holidays1)+len(holidays2))
	merged = append(merged, holidays1...)
	merged = append(merged, holidays2...)
	if len(merged) < 2 {
		return models.HolidayMatch{}, false
	}

	// stable: on equal dates the holidays1 entry stays first
	slices.SortStableFunc(merged, func(a, b models.Holiday) int {
		return a.Date.Compare(b.Date)
	})

	for i := 0; i < len(merged)-1; i++ {
		if merged[i].Date.Equal(merged[i+1].Date) {
			return models.HolidayMatch{
				Date:  merged[i].Date,
				Name1: merged[i].LocalName,
				Name2: merged[i+1].LocalName,
			}, true
		}
	}

	return models.HolidayMatch{}, false
}
