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

const (
	tableReports  = "fishing_reports"
	tableComments = "report_comments"
)

// ReportAdapter implements ReportRepository on Postgres
type ReportAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewReportAdapter creates a new report adapter
func NewReportAdapter(client *postgres.Client) repositories.ReportRepository {
	return &ReportAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create persists a new report and returns the stored row with an empty
// comment collection
func (a *ReportAdapter) Create(ctx context.Context, report *entities.FishingReport) (*entities.FishingReport, error) {
	query, args, err := a.db.Insert(tableReports).
		Rows(reportRecord(report)).
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

	return rowToReport(row), nil
}

// GetByID retrieves a report with its comments
func (a *ReportAdapter) GetByID(ctx context.Context, id string) (*entities.FishingReport, error) {
	query, args, err := a.db.From(tableReports).
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
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("report with id %s not found", id))
	}

	report := rowToReport(row)
	comments, err := a.commentsForReports(ctx, []string{report.ID})
	if err != nil {
		return nil, err
	}
	report.Comments = append(report.Comments, comments[report.ID]...)

	return report, nil
}

// List retrieves reports sorted by timestamp descending, comments included
func (a *ReportAdapter) List(ctx context.Context, filter repositories.ReportFilter) ([]*entities.FishingReport, error) {
	ds := a.db.From(tableReports).
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

	reports := make([]*entities.FishingReport, 0, len(rows))
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		report := rowToReport(row)
		reports = append(reports, report)
		ids = append(ids, report.ID)
	}

	if len(ids) > 0 {
		comments, err := a.commentsForReports(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, report := range reports {
			report.Comments = append(report.Comments, comments[report.ID]...)
		}
	}

	return reports, nil
}

// CreateComment persists a comment and returns the stored row with the
// commenting user's username resolved from their profile
func (a *ReportAdapter) CreateComment(ctx context.Context, comment *entities.Comment) (*entities.Comment, error) {
	query, args, err := a.db.Insert(tableComments).
		Rows(commentRecord(comment)).
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

	stored := rowToComment(row)

	nameQuery, nameArgs, err := a.db.Select("username").
		From(tableUsers).
		Where(goqu.Ex{"id": stored.UserID}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}
	nameRow, err := selectRow(ctx, a.client.DB(), nameQuery, nameArgs)
	if err != nil {
		return nil, err
	}
	if nameRow != nil {
		stored.Username = nameRow.String("username")
	}

	return &stored, nil
}

// AddLike increments a report's like counter
func (a *ReportAdapter) AddLike(ctx context.Context, reportID string) error {
	query, args, err := a.db.Update(tableReports).
		Set(goqu.Record{"likes": goqu.L("likes + 1")}).
		Where(goqu.Ex{"id": reportID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewStoreError("failed to add like", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewStoreError("failed to check update result", err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("report with id %s not found", reportID))
	}

	return nil
}

// commentsForReports loads comments for a set of reports in one query,
// joining usernames from the profile table, grouped by report id
func (a *ReportAdapter) commentsForReports(ctx context.Context, reportIDs []string) (map[string][]entities.Comment, error) {
	query, args, err := a.db.Select(
		goqu.I("c.id"),
		goqu.I("c.report_id"),
		goqu.I("c.user_id"),
		goqu.I("c.content"),
		goqu.I("c.timestamp"),
		goqu.I("u.username"),
	).From(goqu.T(tableComments).As("c")).
		LeftJoin(
			goqu.T(tableUsers).As("u"),
			goqu.On(goqu.Ex{"u.id": goqu.I("c.user_id")}),
		).
		Where(goqu.Ex{"c.report_id": reportIDs}).
		Order(goqu.I("c.timestamp").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := selectRows(ctx, a.client.DB(), query, args)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]entities.Comment, len(reportIDs))
	for _, row := range rows {
		comment := rowToComment(row)
		grouped[comment.ReportID] = append(grouped[comment.ReportID], comment)
	}

	return grouped, nil
}
