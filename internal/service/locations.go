package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pribylovaa/party-one/internal/models"
)

// Countries возвращает справочник стран.
func (s *Service) Countries(ctx context.Context) ([]models.Country, error) {
	const op = "service.locations.Countries"

	out, err := s.accounts.Countries(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// States возвращает регионы страны.
func (s *Service) States(ctx context.Context, countryID string) ([]models.State, error) {
	const op = "service.locations.States"

	countryID = strings.TrimSpace(countryID)
	if countryID == "" {
		return nil, fmt.Errorf("%s: %w: country id is required", op, ErrInvalidArgument)
	}

	out, err := s.accounts.States(ctx, countryID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// Cities возвращает города региона.
func (s *Service) Cities(ctx context.Context, countryID, stateID string) ([]models.City, error) {
	const op = "service.locations.Cities"

	countryID = strings.TrimSpace(countryID)
	stateID = strings.TrimSpace(stateID)
	if countryID == "" || stateID == "" {
		return nil, fmt.Errorf("%s: %w: country and state ids are required", op, ErrInvalidArgument)
	}

	out, err := s.accounts.Cities(ctx, countryID, stateID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}
