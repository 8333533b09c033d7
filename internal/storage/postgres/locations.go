package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/party-one/internal/models"
)

// Countries возвращает все страны по алфавиту.
func (s *Storage) Countries(ctx context.Context) ([]models.Country, error) {
	const op = "storage.postgres.Countries"

	rows, err := s.db.Query(ctx, `SELECT id, name, iso2 FROM countries ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Country, error) {
		var c models.Country
		err := row.Scan(&c.ID, &c.Name, &c.ISO2)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// States возвращает регионы страны. Пустой список для неизвестной страны.
func (s *Storage) States(ctx context.Context, countryID string) ([]models.State, error) {
	const op = "storage.postgres.States"

	rows, err := s.db.Query(ctx,
		`SELECT id, country_id, name FROM states WHERE country_id = $1 ORDER BY name`,
		countryID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.State, error) {
		var st models.State
		err := row.Scan(&st.ID, &st.CountryID, &st.Name)
		return st, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// Cities возвращает города региона.
func (s *Storage) Cities(ctx context.Context, countryID, stateID string) ([]models.City, error) {
	const op = "storage.postgres.Cities"

	rows, err := s.db.Query(ctx,
		`SELECT id, country_id, state_id, name FROM cities WHERE country_id = $1 AND state_id = $2 ORDER BY name`,
		countryID, stateID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.City, error) {
		var c models.City
		err := row.Scan(&c.ID, &c.CountryID, &c.StateID, &c.Name)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}
