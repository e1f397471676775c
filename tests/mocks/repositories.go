// Package mocks provides testify mocks for the domain repository and
// provider interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/repositories"
)

// MockLocationRepository mocks repositories.LocationRepository
type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) Create(ctx context.Context, location *entities.FishingLocation) (*entities.FishingLocation, error) {
	args := m.Called(ctx, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.FishingLocation), args.Error(1)
}

func (m *MockLocationRepository) GetByID(ctx context.Context, id string) (*entities.FishingLocation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.FishingLocation), args.Error(1)
}

func (m *MockLocationRepository) List(ctx context.Context, filter repositories.LocationFilter) ([]*entities.FishingLocation, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.FishingLocation), args.Error(1)
}

// MockLocationSearchRepository mocks repositories.LocationSearchRepository
type MockLocationSearchRepository struct {
	mock.Mock
}

func (m *MockLocationSearchRepository) Index(ctx context.Context, location *entities.FishingLocation) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

func (m *MockLocationSearchRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLocationSearchRepository) Search(ctx context.Context, params repositories.LocationSearchParams) ([]*entities.FishingLocation, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.FishingLocation), args.Error(1)
}

// MockWaterConditionRepository mocks repositories.WaterConditionRepository
type MockWaterConditionRepository struct {
	mock.Mock
}

func (m *MockWaterConditionRepository) Create(ctx context.Context, condition *entities.WaterCondition) (*entities.WaterCondition, error) {
	args := m.Called(ctx, condition)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.WaterCondition), args.Error(1)
}

func (m *MockWaterConditionRepository) List(ctx context.Context, filter repositories.WaterConditionFilter) ([]*entities.WaterCondition, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.WaterCondition), args.Error(1)
}

func (m *MockWaterConditionRepository) LatestByLocation(ctx context.Context, locationID string) (*entities.WaterCondition, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.WaterCondition), args.Error(1)
}

// MockCatchRecordRepository mocks repositories.CatchRecordRepository
type MockCatchRecordRepository struct {
	mock.Mock
}

func (m *MockCatchRecordRepository) Create(ctx context.Context, record *entities.CatchRecord) (*entities.CatchRecord, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CatchRecord), args.Error(1)
}

func (m *MockCatchRecordRepository) GetByID(ctx context.Context, id string) (*entities.CatchRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CatchRecord), args.Error(1)
}

func (m *MockCatchRecordRepository) List(ctx context.Context, filter repositories.CatchRecordFilter) ([]*entities.CatchRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.CatchRecord), args.Error(1)
}

// MockReportRepository mocks repositories.ReportRepository
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Create(ctx context.Context, report *entities.FishingReport) (*entities.FishingReport, error) {
	args := m.Called(ctx, report)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.FishingReport), args.Error(1)
}

func (m *MockReportRepository) GetByID(ctx context.Context, id string) (*entities.FishingReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.FishingReport), args.Error(1)
}

func (m *MockReportRepository) List(ctx context.Context, filter repositories.ReportFilter) ([]*entities.FishingReport, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.FishingReport), args.Error(1)
}

func (m *MockReportRepository) CreateComment(ctx context.Context, comment *entities.Comment) (*entities.Comment, error) {
	args := m.Called(ctx, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Comment), args.Error(1)
}

func (m *MockReportRepository) AddLike(ctx context.Context, reportID string) error {
	args := m.Called(ctx, reportID)
	return args.Error(0)
}

// MockHatchEventRepository mocks repositories.HatchEventRepository
type MockHatchEventRepository struct {
	mock.Mock
}

func (m *MockHatchEventRepository) Create(ctx context.Context, event *entities.HatchEvent) (*entities.HatchEvent, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.HatchEvent), args.Error(1)
}

func (m *MockHatchEventRepository) GetByID(ctx context.Context, id string) (*entities.HatchEvent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.HatchEvent), args.Error(1)
}

func (m *MockHatchEventRepository) List(ctx context.Context, filter repositories.HatchEventFilter) ([]*entities.HatchEvent, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.HatchEvent), args.Error(1)
}

// MockGuideRepository mocks repositories.GuideRepository
type MockGuideRepository struct {
	mock.Mock
}

func (m *MockGuideRepository) Create(ctx context.Context, guide *entities.Guide) (*entities.Guide, error) {
	args := m.Called(ctx, guide)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Guide), args.Error(1)
}

func (m *MockGuideRepository) GetByID(ctx context.Context, id string) (*entities.Guide, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Guide), args.Error(1)
}

func (m *MockGuideRepository) List(ctx context.Context, filter repositories.GuideFilter) ([]*entities.Guide, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Guide), args.Error(1)
}

// MockUserRepository mocks repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) IncrementTotalCatches(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
