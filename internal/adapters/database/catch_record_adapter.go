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

const tableCatchRecords = "catch_records"

// CatchRecordAdapter implements CatchRecordRepository on Postgres
type CatchRecordAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewCatchRecordAdapter creates a new catch record adapter
func NewCatchRecordAdapter(client *postgres.Client) repositories.CatchRecordRepository {
	return &CatchRecordAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create persists a new catch record and returns the stored row
func (a *CatchRecordAdapter) Create(ctx context.Context, record *entities.CatchRecord) (*entities.CatchRecord, error) {
	query, args, err := a.db.Insert(tableCatchRecords).
		Rows(catchRecordRecord(record)).
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

	return rowToCatchRecord(row), nil
}

// GetByID retrieves a catch record by ID
func (a *CatchRecordAdapter) GetByID(ctx context.Context, id string) (*entities.CatchRecord, error) {
	query, args, err := a.db.From(tableCatchRecords).
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
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("catch record with id %s not found", id))
	}

	return rowToCatchRecord(row), nil
}

// List retrieves catch records sorted by timestamp descending
func (a *CatchRecordAdapter) List(ctx context.Context, filter repositories.CatchRecordFilter) ([]*entities.CatchRecord, error) {
	ds := a.db.From(tableCatchRecords).
		Order(goqu.I("timestamp").Desc())

	if filter.UserID != "" {
		ds = ds.Where(goqu.Ex{"user_id": filter.UserID})
	}
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

	records := make([]*entities.CatchRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, rowToCatchRecord(row))
	}

	return records, nil
}
