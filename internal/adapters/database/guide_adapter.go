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

const tableGuides = "guides"

// GuideAdapter implements GuideRepository on Postgres
type GuideAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewGuideAdapter creates a new guide adapter
func NewGuideAdapter(client *postgres.Client) repositories.GuideRepository {
	return &GuideAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create persists a new guide and returns the stored row
func (a *GuideAdapter) Create(ctx context.Context, guide *entities.Guide) (*entities.Guide, error) {
	query, args, err := a.db.Insert(tableGuides).
		Rows(guideRecord(guide)).
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

	return rowToGuide(row), nil
}

// GetByID retrieves a guide by ID
func (a *GuideAdapter) GetByID(ctx context.Context, id string) (*entities.Guide, error) {
	query, args, err := a.db.From(tableGuides).
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
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("guide with id %s not found", id))
	}

	return rowToGuide(row), nil
}

// List retrieves guides sorted by rating descending
func (a *GuideAdapter) List(ctx context.Context, filter repositories.GuideFilter) ([]*entities.Guide, error) {
	ds := a.db.From(tableGuides).
		Order(goqu.I("rating").Desc())

	if filter.Verified != nil {
		ds = ds.Where(goqu.Ex{"verified": *filter.Verified})
	}
	if filter.Location != "" {
		ds = ds.Where(goqu.Ex{"location": filter.Location})
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

	guides := make([]*entities.Guide, 0, len(rows))
	for _, row := range rows {
		guides = append(guides, rowToGuide(row))
	}

	return guides, nil
}
