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

const tableWaterConditions = "water_conditions"

// WaterConditionAdapter implements WaterConditionRepository on Postgres.
// Observations are append-only; there is no update path.
type WaterConditionAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewWaterConditionAdapter creates a new water condition adapter
func NewWaterConditionAdapter(client *postgres.Client) repositories.WaterConditionRepository {
	return &WaterConditionAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create persists a new observation and returns the stored row
func (a *WaterConditionAdapter) Create(ctx context.Context, condition *entities.WaterCondition) (*entities.WaterCondition, error) {
	query, args, err := a.db.Insert(tableWaterConditions).
		Rows(waterConditionRecord(condition)).
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

	return rowToWaterCondition(row), nil
}

// List retrieves observations sorted by last_updated descending
func (a *WaterConditionAdapter) List(ctx context.Context, filter repositories.WaterConditionFilter) ([]*entities.WaterCondition, error) {
	ds := a.db.From(tableWaterConditions).
		Order(goqu.I("last_updated").Desc())

	if filter.LocationID != "" {
		ds = ds.Where(goqu.Ex{"location_id": filter.LocationID})
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

	conditions := make([]*entities.WaterCondition, 0, len(rows))
	for _, row := range rows {
		conditions = append(conditions, rowToWaterCondition(row))
	}

	return conditions, nil
}

// LatestByLocation retrieves the most recent observation for a location
func (a *WaterConditionAdapter) LatestByLocation(ctx context.Context, locationID string) (*entities.WaterCondition, error) {
	query, args, err := a.db.From(tableWaterConditions).
		Where(goqu.Ex{"location_id": locationID}).
		Order(goqu.I("last_updated").Desc()).
		Limit(1).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	row, err := selectRow(ctx, a.client.DB(), query, args)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no conditions recorded for location %s", locationID))
	}

	return rowToWaterCondition(row), nil
}
