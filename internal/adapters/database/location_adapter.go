package database

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/repositories"
	"github.com/AlexSchroder3798/FlyFishing3/internal/infrastructure/clients/postgres"
	apperrors "github.com/AlexSchroder3798/FlyFishing3/pkg/errors"
)

const tableLocations = "fishing_locations"

// LocationAdapter implements LocationRepository on Postgres
type LocationAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewLocationAdapter creates a new location adapter
func NewLocationAdapter(client *postgres.Client) repositories.LocationRepository {
	return &LocationAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create persists a new location and returns the stored row, picking up
// the store-assigned id and any column defaults
func (a *LocationAdapter) Create(ctx context.Context, location *entities.FishingLocation) (*entities.FishingLocation, error) {
	query, args, err := a.db.Insert(tableLocations).
		Rows(locationRecord(location)).
		Returning(goqu.Star()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build insert query", err)
	}

	row, err := selectRow(ctx, a.client.DB(), query, args)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperrors.NewStoreError("insert returned no row", nil)
	}

	return rowToLocation(row), nil
}

// GetByID retrieves a location by ID
func (a *LocationAdapter) GetByID(ctx context.Context, id string) (*entities.FishingLocation, error) {
	query, args, err := a.db.From(tableLocations).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	row, err := selectRow(ctx, a.client.DB(), query, args)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("location with id %s not found", id))
	}

	return rowToLocation(row), nil
}

// List retrieves locations sorted by rating descending
func (a *LocationAdapter) List(ctx context.Context, filter repositories.LocationFilter) ([]*entities.FishingLocation, error) {
	ds := a.db.From(tableLocations).
		Order(goqu.I("rating").Desc())

	if filter.Type != "" {
		ds = ds.Where(goqu.Ex{"type": string(filter.Type)})
	}
	if filter.Difficulty != "" {
		ds = ds.Where(goqu.Ex{"difficulty": string(filter.Difficulty)})
	}
	if filter.Access != "" {
		ds = ds.Where(goqu.Ex{"access": string(filter.Access)})
	}
	if filter.Limit > 0 {
		ds = ds.Limit(uint(filter.Limit))
	}
	if filter.Offset > 0 {
		ds = ds.Offset(uint(filter.Offset))
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := selectRows(ctx, a.client.DB(), query, args)
	if err != nil {
		return nil, err
	}

	locations := make([]*entities.FishingLocation, 0, len(rows))
	for _, row := range rows {
		locations = append(locations, rowToLocation(row))
	}

	return locations, nil
}
