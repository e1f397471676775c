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

const tableUsers = "users"

// UserAdapter implements UserRepository on Postgres. The profile id is
// the identity provider's user id, so inserts carry it explicitly.
type UserAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewUserAdapter creates a new user adapter
func NewUserAdapter(client *postgres.Client) repositories.UserRepository {
	return &UserAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create persists a new profile and returns the stored row
func (a *UserAdapter) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	query, args, err := a.db.Insert(tableUsers).
		Rows(userRecord(user)).
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

	return rowToUser(row), nil
}

// GetByID retrieves a profile by the shared identity id
func (a *UserAdapter) GetByID(ctx context.Context, id string) (*entities.User, error) {
	query, args, err := a.db.From(tableUsers).
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
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("user with id %s not found", id))
	}

	return rowToUser(row), nil
}

// Update updates mutable profile fields and returns the stored row
func (a *UserAdapter) Update(ctx context.Context, user *entities.User) (*entities.User, error) {
	record := userRecord(user)
	delete(record, "id")
	delete(record, "join_date")
	delete(record, "total_catches")

	query, args, err := a.db.Update(tableUsers).
		Set(record).
		Where(goqu.Ex{"id": user.ID}).
		Returning(goqu.Star()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build update query", err)
	}

	row, err := selectRow(ctx, a.client.DB(), query, args)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("user with id %s not found", user.ID))
	}

	return rowToUser(row), nil
}

// IncrementTotalCatches bumps the denormalized catch counter
func (a *UserAdapter) IncrementTotalCatches(ctx context.Context, id string) error {
	query, args, err := a.db.Update(tableUsers).
		Set(goqu.Record{"total_catches": goqu.L("total_catches + 1")}).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewStoreError("failed to increment total catches", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewStoreError("failed to check update result", err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("user with id %s not found", id))
	}

	return nil
}
