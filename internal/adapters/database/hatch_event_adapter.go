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

const tableHatchEvents = "hatch_events"

// HatchEventAdapter implements HatchEventRepository on Postgres
type HatchEventAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewHatchEventAdapter creates a new hatch event adapter
func NewHatchEventAdapter(client *postgres.Client) repositories.HatchEventRepository {
	return &HatchEventAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create persists a new hatch event and returns the stored row
func (a *HatchEventAdapter) Create(ctx context.Context, event *entities.HatchEvent) (*entities.HatchEvent, error) {
	query, args, err := a.db.Insert(tableHatchEvents).
		Rows(hatchEventRecord(event)).
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

	return rowToHatchEvent(row), nil
}

// GetByID retrieves a hatch event by ID
func (a *HatchEventAdapter) GetByID(ctx context.Context, id string) (*entities.HatchEvent, error) {
	query, args, err := a.db.From(tableHatchEvents).
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
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("hatch event with id %s not found", id))
	}

	return rowToHatchEvent(row), nil
}

// List retrieves hatch events sorted by start date ascending
func (a *HatchEventAdapter) List(ctx context.Context, filter repositories.HatchEventFilter) ([]*entities.HatchEvent, error) {
	ds := a.db.From(tableHatchEvents).
		Order(goqu.I("start_date").Asc())

	if filter.Region != "" {
		ds = ds.Where(goqu.Ex{"region": filter.Region})
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

	events := make([]*entities.HatchEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, rowToHatchEvent(row))
	}

	return events, nil
}
