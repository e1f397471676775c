// Package seed populates a development database with realistic sample
// data. Steps run in dependency order and are best-effort per item: a
// failed row is logged and skipped, but a step whose prerequisites
// produced no rows at all is skipped entirely.
package seed

import (
	"context"

	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/repositories"
	"github.com/AlexSchroder3798/FlyFishing3/internal/infrastructure/observability"
)

// Repositories collects everything the orchestrator writes through
type Repositories struct {
	Locations  repositories.LocationRepository
	Conditions repositories.WaterConditionRepository
	Catches    repositories.CatchRecordRepository
	Reports    repositories.ReportRepository
	Hatches    repositories.HatchEventRepository
	Guides     repositories.GuideRepository
	Users      repositories.UserRepository
}

// Summary reports what a seeding run created, per type
type Summary struct {
	Users           int      `json:"users"`
	Locations       int      `json:"locations"`
	WaterConditions int      `json:"waterConditions"`
	CatchRecords    int      `json:"catchRecords"`
	Reports         int      `json:"reports"`
	Comments        int      `json:"comments"`
	HatchEvents     int      `json:"hatchEvents"`
	Guides          int      `json:"guides"`
	SkippedSteps    []string `json:"skippedSteps,omitempty"`
}

// Orchestrator seeds the database through the repository layer so every
// row passes the same mapping code the application uses
type Orchestrator struct {
	repos Repositories
}

// New creates a new seed orchestrator
func New(repos Repositories) *Orchestrator {
	return &Orchestrator{repos: repos}
}

// Run seeds everything in dependency order and returns the per-type
// summary. Only a fully failed prerequisite step stops its dependents.
func (o *Orchestrator) Run(ctx context.Context) *Summary {
	summary := &Summary{SkippedSteps: []string{}}
	logger := observability.LoggerFromContext(ctx)

	userIDs := o.seedUsers(ctx, summary)
	locationIDs := o.seedLocations(ctx, summary)
	o.seedHatchEvents(ctx, summary)
	o.seedGuides(ctx, summary)

	if len(locationIDs) == 0 {
		logger.Warn().Msg("no locations created, skipping water conditions, catches, and reports")
		summary.SkippedSteps = append(summary.SkippedSteps, "water_conditions", "catch_records", "reports", "comments")
		return summary
	}

	o.seedWaterConditions(ctx, summary, locationIDs)

	if len(userIDs) == 0 {
		logger.Warn().Msg("no users created, skipping catches and reports")
		summary.SkippedSteps = append(summary.SkippedSteps, "catch_records", "reports", "comments")
		return summary
	}

	o.seedCatchRecords(ctx, summary, userIDs, locationIDs)
	reportIDs := o.seedReports(ctx, summary, userIDs, locationIDs)

	if len(reportIDs) == 0 {
		logger.Warn().Msg("no reports created, skipping comments")
		summary.SkippedSteps = append(summary.SkippedSteps, "comments")
		return summary
	}

	o.seedComments(ctx, summary, userIDs, reportIDs)

	return summary
}

func (o *Orchestrator) seedUsers(ctx context.Context, summary *Summary) []string {
	logger := observability.LoggerFromContext(ctx)
	ids := make([]string, 0)
	for _, user := range sampleUsers() {
		created, err := o.repos.Users.Create(ctx, user)
		if err != nil {
			logger.Warn().Err(err).Str("username", user.Username).Msg("failed to seed user")
			continue
		}
		ids = append(ids, created.ID)
		summary.Users++
	}
	return ids
}

func (o *Orchestrator) seedLocations(ctx context.Context, summary *Summary) []string {
	logger := observability.LoggerFromContext(ctx)
	ids := make([]string, 0)
	for _, location := range sampleLocations() {
		created, err := o.repos.Locations.Create(ctx, location)
		if err != nil {
			logger.Warn().Err(err).Str("name", location.Name).Msg("failed to seed location")
			continue
		}
		ids = append(ids, created.ID)
		summary.Locations++
	}
	return ids
}

func (o *Orchestrator) seedHatchEvents(ctx context.Context, summary *Summary) {
	logger := observability.LoggerFromContext(ctx)
	for _, event := range sampleHatchEvents() {
		if _, err := o.repos.Hatches.Create(ctx, event); err != nil {
			logger.Warn().Err(err).Str("insect", event.Insect).Msg("failed to seed hatch event")
			continue
		}
		summary.HatchEvents++
	}
}

func (o *Orchestrator) seedGuides(ctx context.Context, summary *Summary) {
	logger := observability.LoggerFromContext(ctx)
	for _, guide := range sampleGuides() {
		if _, err := o.repos.Guides.Create(ctx, guide); err != nil {
			logger.Warn().Err(err).Str("name", guide.Name).Msg("failed to seed guide")
			continue
		}
		summary.Guides++
	}
}

func (o *Orchestrator) seedWaterConditions(ctx context.Context, summary *Summary, locationIDs []string) {
	logger := observability.LoggerFromContext(ctx)
	for _, condition := range sampleWaterConditions(locationIDs) {
		if _, err := o.repos.Conditions.Create(ctx, condition); err != nil {
			logger.Warn().Err(err).Str("location_id", condition.LocationID).Msg("failed to seed water condition")
			continue
		}
		summary.WaterConditions++
	}
}

func (o *Orchestrator) seedCatchRecords(ctx context.Context, summary *Summary, userIDs, locationIDs []string) {
	logger := observability.LoggerFromContext(ctx)
	for _, record := range sampleCatchRecords(userIDs, locationIDs) {
		if _, err := o.repos.Catches.Create(ctx, record); err != nil {
			logger.Warn().Err(err).Str("species", record.Species).Msg("failed to seed catch record")
			continue
		}
		summary.CatchRecords++
	}
}

func (o *Orchestrator) seedReports(ctx context.Context, summary *Summary, userIDs, locationIDs []string) []string {
	logger := observability.LoggerFromContext(ctx)
	ids := make([]string, 0)
	for _, report := range sampleReports(userIDs, locationIDs) {
		created, err := o.repos.Reports.Create(ctx, report)
		if err != nil {
			logger.Warn().Err(err).Str("title", report.Title).Msg("failed to seed report")
			continue
		}
		ids = append(ids, created.ID)
		summary.Reports++
	}
	return ids
}

func (o *Orchestrator) seedComments(ctx context.Context, summary *Summary, userIDs, reportIDs []string) {
	logger := observability.LoggerFromContext(ctx)
	for _, comment := range sampleComments(userIDs, reportIDs) {
		if _, err := o.repos.Reports.CreateComment(ctx, comment); err != nil {
			logger.Warn().Err(err).Str("report_id", comment.ReportID).Msg("failed to seed comment")
			continue
		}
		summary.Comments++
	}
}
