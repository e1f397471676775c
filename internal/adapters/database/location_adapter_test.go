package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexSchroder3798/FlyFishing3/internal/adapters/database"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/repositories"
	"github.com/AlexSchroder3798/FlyFishing3/internal/infrastructure/clients/postgres"
	apperrors "github.com/AlexSchroder3798/FlyFishing3/pkg/errors"
)

func newMockedLocationAdapter(t *testing.T) (repositories.LocationRepository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return database.NewLocationAdapter(postgres.NewClientFromDB(mockDB)), mock
}

func locationColumns() []string {
	return []string{
		"id", "name", "latitude", "longitude", "type", "difficulty",
		"species", "access", "regulations", "rating", "review_count",
	}
}

func TestLocationAdapter_List_SortedByRatingDescending(t *testing.T) {
	adapter, mock := newMockedLocationAdapter(t)

	// The store applies the ordering; rows come back highest rated first
	rows := sqlmock.NewRows(locationColumns()).
		AddRow("loc-2", "Henrys Fork", 44.1, -111.4, "river", "advanced", []byte(`["rainbow trout"]`), "public", "", 4.8, 30).
		AddRow("loc-3", "Slough Creek", 44.9, -110.3, "stream", "intermediate", []byte(`["cutthroat trout"]`), "public", "", 4.1, 18).
		AddRow("loc-1", "Mill Pond", 44.2, -110.9, "pond", "beginner", []byte(`[]`), "private", "", 3.2, 4)

	mock.ExpectQuery(`SELECT \* FROM "fishing_locations" ORDER BY "rating" DESC`).
		WillReturnRows(rows)

	locations, err := adapter.List(context.Background(), repositories.LocationFilter{})

	require.NoError(t, err)
	require.Len(t, locations, 3)
	assert.Equal(t, []float64{4.8, 4.1, 3.2}, []float64{
		locations[0].Rating, locations[1].Rating, locations[2].Rating,
	})
	assert.Equal(t, "Henrys Fork", locations[0].Name)
	assert.Equal(t, []string{"rainbow trout"}, locations[0].Species)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocationAdapter_List_EmptyResult(t *testing.T) {
	adapter, mock := newMockedLocationAdapter(t)

	mock.ExpectQuery(`SELECT \* FROM "fishing_locations"`).
		WillReturnRows(sqlmock.NewRows(locationColumns()))

	locations, err := adapter.List(context.Background(), repositories.LocationFilter{})

	require.NoError(t, err)
	require.NotNil(t, locations)
	assert.Empty(t, locations)
}

func TestLocationAdapter_List_FilterAppliedInQuery(t *testing.T) {
	adapter, mock := newMockedLocationAdapter(t)

	mock.ExpectQuery(`SELECT \* FROM "fishing_locations" WHERE .*"type" = 'river'.*ORDER BY "rating" DESC`).
		WillReturnRows(sqlmock.NewRows(locationColumns()))

	_, err := adapter.List(context.Background(), repositories.LocationFilter{
		Type: entities.WaterTypeRiver,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocationAdapter_List_StoreFailure(t *testing.T) {
	adapter, mock := newMockedLocationAdapter(t)

	mock.ExpectQuery(`SELECT \* FROM "fishing_locations"`).
		WillReturnError(errors.New("connection reset"))

	locations, err := adapter.List(context.Background(), repositories.LocationFilter{})

	require.Error(t, err)
	assert.Nil(t, locations)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeStore))
}

func TestLocationAdapter_GetByID_Found(t *testing.T) {
	adapter, mock := newMockedLocationAdapter(t)

	mock.ExpectQuery(`SELECT \* FROM "fishing_locations" WHERE \("id" = 'loc-1'\)`).
		WillReturnRows(sqlmock.NewRows(locationColumns()).
			AddRow("loc-1", "Madison River", 44.65, -111.1, "river", "intermediate",
				[]byte(`["rainbow trout","brown trout"]`), "public", "Catch and release only", 4.8, 204))

	location, err := adapter.GetByID(context.Background(), "loc-1")

	require.NoError(t, err)
	assert.Equal(t, "Madison River", location.Name)
	assert.Equal(t, entities.WaterTypeRiver, location.Type)
	assert.Equal(t, 44.65, location.Coordinates.Latitude)
	assert.Equal(t, []string{"rainbow trout", "brown trout"}, location.Species)
}

func TestLocationAdapter_GetByID_NotFound(t *testing.T) {
	adapter, mock := newMockedLocationAdapter(t)

	mock.ExpectQuery(`SELECT \* FROM "fishing_locations"`).
		WillReturnRows(sqlmock.NewRows(locationColumns()))

	location, err := adapter.GetByID(context.Background(), "missing")

	require.Error(t, err)
	assert.Nil(t, location)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestLocationAdapter_Create_ReturnsStoredRow(t *testing.T) {
	adapter, mock := newMockedLocationAdapter(t)

	// The store assigns the id and defaults rating and review_count
	mock.ExpectQuery(`INSERT INTO "fishing_locations" .* RETURNING \*`).
		WillReturnRows(sqlmock.NewRows(locationColumns()).
			AddRow("loc-9", "Firehole River", 44.5, -110.8, "river", "beginner",
				[]byte(`["brown trout"]`), "public", "", 0.0, 0))

	created, err := adapter.Create(context.Background(), &entities.FishingLocation{
		Name:        "Firehole River",
		Coordinates: entities.Coordinates{Latitude: 44.5, Longitude: -110.8},
		Type:        entities.WaterTypeRiver,
		Difficulty:  entities.DifficultyBeginner,
		Species:     []string{"brown trout"},
		Access:      entities.AccessPublic,
	})

	require.NoError(t, err)
	assert.Equal(t, "loc-9", created.ID)
	assert.Equal(t, 0, created.ReviewCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}
