package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/AlexSchroder3798/FlyFishing3/internal/adapters/database"
	"github.com/AlexSchroder3798/FlyFishing3/internal/infrastructure/clients/postgres"
	"github.com/AlexSchroder3798/FlyFishing3/internal/infrastructure/observability"
	"github.com/AlexSchroder3798/FlyFishing3/internal/seed"
	"github.com/AlexSchroder3798/FlyFishing3/pkg/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Seeding is strictly a development tool
	if !cfg.App.IsDevelopment() {
		log.Fatal("Refusing to seed: APP_ENV is production")
	}

	observability.InitLogger("flyfishing-seed", cfg.App.Environment)
	logger := observability.GetLogger()

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pgClient.Close()

	ctx := context.Background()

	if os.Getenv("RESET_DB") == "true" {
		logger.Info().Msg("RESET_DB=true detected, truncating tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE
				report_comments,
				fishing_reports,
				catch_records,
				water_conditions,
				fishing_locations,
				hatch_events,
				guides,
				users
			RESTART IDENTITY CASCADE
		`)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to reset database")
		}
	}

	orchestrator := seed.New(seed.Repositories{
		Locations:  database.NewLocationAdapter(pgClient),
		Conditions: database.NewWaterConditionAdapter(pgClient),
		Catches:    database.NewCatchRecordAdapter(pgClient),
		Reports:    database.NewReportAdapter(pgClient),
		Hatches:    database.NewHatchEventAdapter(pgClient),
		Guides:     database.NewGuideAdapter(pgClient),
		Users:      database.NewUserAdapter(pgClient),
	})

	summary := orchestrator.Run(ctx)

	logger.Info().
		Int("users", summary.Users).
		Int("locations", summary.Locations).
		Int("water_conditions", summary.WaterConditions).
		Int("catch_records", summary.CatchRecords).
		Int("reports", summary.Reports).
		Int("comments", summary.Comments).
		Int("hatch_events", summary.HatchEvents).
		Int("guides", summary.Guides).
		Strs("skipped_steps", summary.SkippedSteps).
		Msg("seeding complete")
}
