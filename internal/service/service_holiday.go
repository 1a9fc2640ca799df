// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/next-holiday/internal/adapter"
	"github.com/MKhiriev/next-holiday/internal/logger"
	"github.com/MKhiriev/next-holiday/models"
	"golang.org/x/sync/errgroup"
)

// searchYears is the width of the match window: the year of the query date
// and the one after it.
const searchYears = 2

type holidayService struct {
	provider adapter.HolidayProvider

	logger *logger.Logger
}

func NewHolidayService(provider adapter.HolidayProvider, logger *logger.Logger) HolidayService {
	return &holidayService{
		provider: provider,
		logger:   logger,
	}
}

// FindNextHoliday implements [HolidayService].
func (s *holidayService) FindNextHoliday(ctx context.Context, date models.Date, countryCode1, countryCode2 string) (models.HolidayMatch, error) {
	log := logger.FromContext(ctx)
	code1 := CanonicalCountryCode(countryCode1)
	code2 := CanonicalCountryCode(countryCode2)

	for year := date.Year(); year < date.Year()+searchYears; year++ {
		holidays1, holidays2, err := s.fetchHolidays(ctx, code1, code2, year)
		if err != nil {
			return models.HolidayMatch{}, err
		}

		match, ok := matchFirstHoliday(reduceHolidays(date, holidays1), reduceHolidays(date, holidays2))
		if ok {
			log.Debug().
				Str("country1", code1).
				Str("country2", code2).
				Stringer("date", match.Date).
				Msg("shared holiday found")
			return match, nil
		}

		log.Debug().
			Str("country1", code1).
			Str("country2", code2).
			Int("year", year).
			Msg("no shared holiday in year")
	}

	return models.HolidayMatch{}, ErrNextHolidayNotFound
}

// fetchHolidays requests both countries' holidays for year concurrently.
// The first failure cancels the other request.
func (s *holidayService) fetchHolidays(ctx context.Context, code1, code2 string, year int) ([]models.Holiday, []models.Holiday, error) {
	var holidays1, holidays2 []models.Holiday

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		holidays1, err = s.provider.FetchHolidays(gctx, code1, year)
		return err
	})
	g.Go(func() error {
		var err error
		holidays2, err = s.provider.FetchHolidays(gctx, code2, year)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrHolidayProvider, err)
	}

	return holidays1, holidays2, nil
}
