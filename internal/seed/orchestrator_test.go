package seed_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
	"github.com/AlexSchroder3798/FlyFishing3/internal/seed"
	apperrors "github.com/AlexSchroder3798/FlyFishing3/pkg/errors"
	"github.com/AlexSchroder3798/FlyFishing3/tests/mocks"
)

func newMockedRepos() (seed.Repositories, *mocks.MockLocationRepository, *mocks.MockWaterConditionRepository, *mocks.MockCatchRecordRepository, *mocks.MockReportRepository, *mocks.MockHatchEventRepository, *mocks.MockGuideRepository, *mocks.MockUserRepository) {
	locations := new(mocks.MockLocationRepository)
	conditions := new(mocks.MockWaterConditionRepository)
	catches := new(mocks.MockCatchRecordRepository)
	reports := new(mocks.MockReportRepository)
	hatches := new(mocks.MockHatchEventRepository)
	guides := new(mocks.MockGuideRepository)
	users := new(mocks.MockUserRepository)

	repos := seed.Repositories{
		Locations:  locations,
		Conditions: conditions,
		Catches:    catches,
		Reports:    reports,
		Hatches:    hatches,
		Guides:     guides,
		Users:      users,
	}
	return repos, locations, conditions, catches, reports, hatches, guides, users
}

func TestOrchestrator_HappyPathCounts(t *testing.T) {
	repos, locations, conditions, catches, reports, hatches, guides, users := newMockedRepos()

	users.On("Create", mock.Anything, mock.AnythingOfType("*entities.User")).
		Return(&entities.User{ID: uuid.New().String()}, nil)
	locations.On("Create", mock.Anything, mock.AnythingOfType("*entities.FishingLocation")).
		Return(&entities.FishingLocation{ID: uuid.New().String()}, nil)
	hatches.On("Create", mock.Anything, mock.AnythingOfType("*entities.HatchEvent")).
		Return(&entities.HatchEvent{ID: uuid.New().String()}, nil)
	guides.On("Create", mock.Anything, mock.AnythingOfType("*entities.Guide")).
		Return(&entities.Guide{ID: uuid.New().String()}, nil)
	conditions.On("Create", mock.Anything, mock.AnythingOfType("*entities.WaterCondition")).
		Return(&entities.WaterCondition{ID: uuid.New().String()}, nil)
	catches.On("Create", mock.Anything, mock.AnythingOfType("*entities.CatchRecord")).
		Return(&entities.CatchRecord{ID: uuid.New().String()}, nil)
	reports.On("Create", mock.Anything, mock.AnythingOfType("*entities.FishingReport")).
		Return(&entities.FishingReport{ID: uuid.New().String()}, nil)
	reports.On("CreateComment", mock.Anything, mock.AnythingOfType("*entities.Comment")).
		Return(&entities.Comment{ID: uuid.New().String()}, nil)

	summary := seed.New(repos).Run(context.Background())

	assert.Equal(t, 3, summary.Users)
	assert.Equal(t, 5, summary.Locations)
	assert.Equal(t, 4, summary.HatchEvents)
	assert.Equal(t, 3, summary.Guides)
	assert.Equal(t, 10, summary.WaterConditions)
	assert.Equal(t, 2, summary.CatchRecords)
	assert.Equal(t, 2, summary.Reports)
	assert.Equal(t, 2, summary.Comments)
	assert.Empty(t, summary.SkippedSteps)
}

func TestOrchestrator_AllLocationsFailingSkipsDependents(t *testing.T) {
	repos, locations, conditions, catches, reports, hatches, guides, users := newMockedRepos()

	users.On("Create", mock.Anything, mock.AnythingOfType("*entities.User")).
		Return(&entities.User{ID: uuid.New().String()}, nil)
	locations.On("Create", mock.Anything, mock.AnythingOfType("*entities.FishingLocation")).
		Return(nil, apperrors.NewStoreError("insert failed", nil))
	hatches.On("Create", mock.Anything, mock.AnythingOfType("*entities.HatchEvent")).
		Return(&entities.HatchEvent{ID: uuid.New().String()}, nil)
	guides.On("Create", mock.Anything, mock.AnythingOfType("*entities.Guide")).
		Return(&entities.Guide{ID: uuid.New().String()}, nil)

	summary := seed.New(repos).Run(context.Background())

	assert.Equal(t, 0, summary.Locations)
	assert.Equal(t, 3, summary.Users)
	// Independent catalog steps still run
	assert.Equal(t, 4, summary.HatchEvents)
	assert.Equal(t, 3, summary.Guides)
	assert.Equal(t, []string{"water_conditions", "catch_records", "reports", "comments"}, summary.SkippedSteps)

	conditions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	catches.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	reports.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	reports.AssertNotCalled(t, "CreateComment", mock.Anything, mock.Anything)
}

func TestOrchestrator_AllUsersFailingSkipsUserOwnedData(t *testing.T) {
	repos, locations, conditions, catches, reports, hatches, guides, users := newMockedRepos()

	users.On("Create", mock.Anything, mock.AnythingOfType("*entities.User")).
		Return(nil, apperrors.NewStoreError("insert failed", nil))
	locations.On("Create", mock.Anything, mock.AnythingOfType("*entities.FishingLocation")).
		Return(&entities.FishingLocation{ID: uuid.New().String()}, nil)
	hatches.On("Create", mock.Anything, mock.AnythingOfType("*entities.HatchEvent")).
		Return(&entities.HatchEvent{ID: uuid.New().String()}, nil)
	guides.On("Create", mock.Anything, mock.AnythingOfType("*entities.Guide")).
		Return(&entities.Guide{ID: uuid.New().String()}, nil)
	conditions.On("Create", mock.Anything, mock.AnythingOfType("*entities.WaterCondition")).
		Return(&entities.WaterCondition{ID: uuid.New().String()}, nil)

	summary := seed.New(repos).Run(context.Background())

	assert.Equal(t, 0, summary.Users)
	assert.Equal(t, 5, summary.Locations)
	// Location-scoped data still seeds
	assert.Equal(t, 10, summary.WaterConditions)
	assert.Equal(t, []string{"catch_records", "reports", "comments"}, summary.SkippedSteps)

	catches.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	reports.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrchestrator_PartialFailuresKeepGoing(t *testing.T) {
	repos, locations, conditions, catches, reports, hatches, guides, users := newMockedRepos()

	users.On("Create", mock.Anything, mock.AnythingOfType("*entities.User")).
		Return(&entities.User{ID: uuid.New().String()}, nil)
	// First location insert fails, the rest succeed
	locations.On("Create", mock.Anything, mock.AnythingOfType("*entities.FishingLocation")).
		Return(nil, apperrors.NewStoreError("insert failed", nil)).Once()
	locations.On("Create", mock.Anything, mock.AnythingOfType("*entities.FishingLocation")).
		Return(&entities.FishingLocation{ID: uuid.New().String()}, nil)
	hatches.On("Create", mock.Anything, mock.AnythingOfType("*entities.HatchEvent")).
		Return(&entities.HatchEvent{ID: uuid.New().String()}, nil)
	guides.On("Create", mock.Anything, mock.AnythingOfType("*entities.Guide")).
		Return(&entities.Guide{ID: uuid.New().String()}, nil)
	conditions.On("Create", mock.Anything, mock.AnythingOfType("*entities.WaterCondition")).
		Return(&entities.WaterCondition{ID: uuid.New().String()}, nil)
	catches.On("Create", mock.Anything, mock.AnythingOfType("*entities.CatchRecord")).
		Return(&entities.CatchRecord{ID: uuid.New().String()}, nil)
	reports.On("Create", mock.Anything, mock.AnythingOfType("*entities.FishingReport")).
		Return(&entities.FishingReport{ID: uuid.New().String()}, nil)
	reports.On("CreateComment", mock.Anything, mock.AnythingOfType("*entities.Comment")).
		Return(&entities.Comment{ID: uuid.New().String()}, nil)

	summary := seed.New(repos).Run(context.Background())

	assert.Equal(t, 4, summary.Locations)
	// Four surviving locations, two conditions each
	assert.Equal(t, 8, summary.WaterConditions)
	assert.Equal(t, 2, summary.CatchRecords)
	assert.Empty(t, summary.SkippedSteps)
}
