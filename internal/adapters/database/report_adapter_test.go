package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexSchroder3798/FlyFishing3/internal/adapters/database"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/repositories"
	"github.com/AlexSchroder3798/FlyFishing3/internal/infrastructure/clients/postgres"
	apperrors "github.com/AlexSchroder3798/FlyFishing3/pkg/errors"
)

func newMockedReportAdapter(t *testing.T) (repositories.ReportRepository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return database.NewReportAdapter(postgres.NewClientFromDB(mockDB)), mock
}

func reportColumns() []string {
	return []string{
		"id", "user_id", "location_id", "title", "description",
		"conditions", "success", "timestamp", "photos", "likes",
	}
}

func TestReportAdapter_List_CommentsWithUsernames(t *testing.T) {
	adapter, mock := newMockedReportAdapter(t)

	newer := time.Date(2024, 5, 21, 19, 0, 0, 0, time.UTC)
	older := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "fishing_reports" ORDER BY "timestamp" DESC`).
		WillReturnRows(sqlmock.NewRows(reportColumns()).
			AddRow("report-2", "user-1", "loc-1", "Evening hatch", "", "", 4, newer, []byte(`[]`), 3).
			AddRow("report-1", "user-2", "loc-1", "Slow morning", "", "", 2, older, []byte(`[]`), 0))

	mock.ExpectQuery(`SELECT .* FROM "report_comments" AS "c" LEFT JOIN "users" AS "u"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "report_id", "user_id", "content", "timestamp", "username"}).
			AddRow("comment-1", "report-2", "user-3", "What fly?", newer.Add(time.Hour), "riverjane"))

	reports, err := adapter.List(context.Background(), repositories.ReportFilter{})

	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "report-2", reports[0].ID)
	require.Len(t, reports[0].Comments, 1)
	assert.Equal(t, "riverjane", reports[0].Comments[0].Username)
	require.NotNil(t, reports[1].Comments)
	assert.Empty(t, reports[1].Comments)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportAdapter_AddLike_NotFound(t *testing.T) {
	adapter, mock := newMockedReportAdapter(t)

	mock.ExpectExec(`UPDATE "fishing_reports" SET "likes"=likes \+ 1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := adapter.AddLike(context.Background(), "missing")

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestReportAdapter_AddLike_Increments(t *testing.T) {
	adapter, mock := newMockedReportAdapter(t)

	mock.ExpectExec(`UPDATE "fishing_reports" SET "likes"=likes \+ 1 WHERE \("id" = 'report-1'\)`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, adapter.AddLike(context.Background(), "report-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
