package seed

import (
	"time"

	"github.com/google/uuid"

	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
)

func sampleUsers() []*entities.User {
	return []*entities.User{
		{
			ID:              uuid.New().String(),
			Username:        "troutbum_mt",
			Email:           "troutbum@example.com",
			Location:        "Bozeman, MT",
			Experience:      entities.ExperienceAdvanced,
			FavoriteSpecies: []string{"brown trout", "rainbow trout"},
			JoinDate:        time.Now().AddDate(-2, 0, 0),
		},
		{
			ID:              uuid.New().String(),
			Username:        "riverjane",
			Email:           "jane@example.com",
			Location:        "Missoula, MT",
			Experience:      entities.ExperienceExpert,
			FavoriteSpecies: []string{"cutthroat trout"},
			JoinDate:        time.Now().AddDate(-4, 0, 0),
		},
		{
			ID:              uuid.New().String(),
			Username:        "first_cast",
			Email:           "newbie@example.com",
			Location:        "Denver, CO",
			Experience:      entities.ExperienceBeginner,
			FavoriteSpecies: []string{},
			JoinDate:        time.Now().AddDate(0, -3, 0),
		},
	}
}

func sampleLocations() []*entities.FishingLocation {
	return []*entities.FishingLocation{
		{
			Name:        "Madison River - Fifty Mile Riffle",
			Coordinates: entities.Coordinates{Latitude: 44.8241, Longitude: -111.5763},
			Type:        entities.WaterTypeRiver,
			Difficulty:  entities.DifficultyIntermediate,
			Species:     []string{"rainbow trout", "brown trout", "mountain whitefish"},
			Access:      entities.AccessPublic,
			Regulations: "Artificial lures only between Quake Lake and Lyons Bridge",
			Rating:      4.8,
			ReviewCount: 211,
		},
		{
			Name:        "Henrys Fork - Railroad Ranch",
			Coordinates: entities.Coordinates{Latitude: 44.4969, Longitude: -111.3344},
			Type:        entities.WaterTypeRiver,
			Difficulty:  entities.DifficultyAdvanced,
			Species:     []string{"rainbow trout"},
			Access:      entities.AccessPublic,
			Regulations: "Catch and release, fly fishing only",
			Rating:      4.9,
			ReviewCount: 178,
		},
		{
			Name:        "Slough Creek - First Meadow",
			Coordinates: entities.Coordinates{Latitude: 44.9442, Longitude: -110.3073},
			Type:        entities.WaterTypeStream,
			Difficulty:  entities.DifficultyIntermediate,
			Species:     []string{"cutthroat trout"},
			Access:      entities.AccessPublic,
			Regulations: "Yellowstone NP permit required, barbless hooks",
			Rating:      4.7,
			ReviewCount: 96,
		},
		{
			Name:        "Hebgen Lake - Gull Flats",
			Coordinates: entities.Coordinates{Latitude: 44.8710, Longitude: -111.2690},
			Type:        entities.WaterTypeLake,
			Difficulty:  entities.DifficultyBeginner,
			Species:     []string{"rainbow trout", "brown trout"},
			Access:      entities.AccessPublic,
			Regulations: "Standard Montana regulations",
			Rating:      4.2,
			ReviewCount: 64,
		},
		{
			Name:        "Spring Creek at Miller Ranch",
			Coordinates: entities.Coordinates{Latitude: 45.6333, Longitude: -110.5608},
			Type:        entities.WaterTypeStream,
			Difficulty:  entities.DifficultyAdvanced,
			Species:     []string{"brown trout", "rainbow trout"},
			Access:      entities.AccessPrivate,
			Regulations: "Rod fee required, book ahead",
			Rating:      4.6,
			ReviewCount: 42,
		},
	}
}

func sampleWaterConditions(locationIDs []string) []*entities.WaterCondition {
	conditions := make([]*entities.WaterCondition, 0, len(locationIDs)*2)
	clarities := []entities.WaterClarity{entities.ClarityClear, entities.ClaritySlightlyStained, entities.ClarityStained}
	flows := []entities.FlowLevel{entities.FlowNormal, entities.FlowHigh, entities.FlowLow}

	for i, id := range locationIDs {
		// Two observations per location so "current" actually selects
		conditions = append(conditions,
			&entities.WaterCondition{
				LocationID:  id,
				Temperature: 48 + float64(i)*2,
				Clarity:     clarities[i%len(clarities)],
				Flow:        flows[i%len(flows)],
				Level:       2.1,
				LastUpdated: time.Now().Add(-36 * time.Hour),
			},
			&entities.WaterCondition{
				LocationID:  id,
				Temperature: 50 + float64(i)*2,
				Clarity:     clarities[(i+1)%len(clarities)],
				Flow:        flows[i%len(flows)],
				Level:       2.3,
				LastUpdated: time.Now().Add(-2 * time.Hour),
			},
		)
	}
	return conditions
}

func sampleCatchRecords(userIDs, locationIDs []string) []*entities.CatchRecord {
	length := 18.5
	weight := 2.4
	smallLength := 12.0

	return []*entities.CatchRecord{
		{
			UserID:     userIDs[0],
			LocationID: locationIDs[0],
			Species:    "brown trout",
			Length:     &length,
			Weight:     &weight,
			Photos:     []string{},
			FlyPattern: "Elk Hair Caddis #14",
			Weather: entities.WeatherSnapshot{
				Temperature: 58, Humidity: 55, Pressure: 1014,
				WindSpeed: 6, WindDirection: "SW", CloudCover: 70, Condition: "overcast",
			},
			Notes:      "Rising fish in the tailout just before dark",
			IsReleased: true,
			Timestamp:  time.Now().Add(-20 * time.Hour),
		},
		{
			UserID:     userIDs[1%len(userIDs)],
			LocationID: locationIDs[len(locationIDs)-1],
			Species:    "rainbow trout",
			Length:     &smallLength,
			Photos:     []string{},
			FlyPattern: "Zebra Midge #18",
			Weather: entities.WeatherSnapshot{
				Temperature: 44, Humidity: 70, Pressure: 1009,
				WindSpeed: 12, WindDirection: "W", CloudCover: 95, Condition: "rain",
			},
			Notes:      "Slow morning, midges under an indicator",
			IsReleased: true,
			Timestamp:  time.Now().Add(-3 * 24 * time.Hour),
		},
	}
}

func sampleReports(userIDs, locationIDs []string) []*entities.FishingReport {
	return []*entities.FishingReport{
		{
			UserID:      userIDs[0],
			LocationID:  locationIDs[0],
			Title:       "Evening caddis are on",
			Description: "Steady dry fly action from 7pm until dark. Size 14 tan caddis matched the naturals.",
			Conditions:  "Clear water, normal flows, 58F air",
			Success:     4,
			Timestamp:   time.Now().Add(-18 * time.Hour),
			Photos:      []string{},
		},
		{
			UserID:      userIDs[1%len(userIDs)],
			LocationID:  locationIDs[1%len(locationIDs)],
			Title:       "Tough, technical, worth it",
			Description: "PMD spinner fall at first light. One good fish on a 6x tippet, lost two more.",
			Conditions:  "Glassy water, bright sun by 9am",
			Success:     3,
			Timestamp:   time.Now().Add(-2 * 24 * time.Hour),
			Photos:      []string{},
		},
	}
}

func sampleComments(userIDs, reportIDs []string) []*entities.Comment {
	return []*entities.Comment{
		{
			ReportID:  reportIDs[0],
			UserID:    userIDs[len(userIDs)-1],
			Content:   "What size tippet were you throwing?",
			Timestamp: time.Now().Add(-12 * time.Hour),
		},
		{
			ReportID:  reportIDs[0],
			UserID:    userIDs[0],
			Content:   "5x to the caddis, never felt undergunned.",
			Timestamp: time.Now().Add(-10 * time.Hour),
		},
	}
}

func sampleHatchEvents() []*entities.HatchEvent {
	year := time.Now().Year()
	return []*entities.HatchEvent{
		{
			Insect:           "Mother's Day Caddis",
			Region:           "Southwest Montana",
			StartDate:        time.Date(year, 4, 15, 0, 0, 0, 0, time.UTC),
			EndDate:          time.Date(year, 5, 30, 0, 0, 0, 0, time.UTC),
			PeakTime:         "Afternoon",
			RecommendedFlies: []string{"Elk Hair Caddis #14", "X-Caddis #14", "Sparkle Pupa #16"},
			Notes:            "Thickest on warm afternoons before runoff muddies the water",
		},
		{
			Insect:           "Salmonfly",
			Region:           "Southwest Montana",
			StartDate:        time.Date(year, 6, 10, 0, 0, 0, 0, time.UTC),
			EndDate:          time.Date(year, 7, 5, 0, 0, 0, 0, time.UTC),
			PeakTime:         "Midday",
			RecommendedFlies: []string{"Chubby Chernobyl #6", "Rogue Stone #8"},
			Notes:            "Follow the hatch upriver as the water warms",
		},
		{
			Insect:           "Pale Morning Dun",
			Region:           "Henrys Fork",
			StartDate:        time.Date(year, 6, 15, 0, 0, 0, 0, time.UTC),
			EndDate:          time.Date(year, 8, 15, 0, 0, 0, 0, time.UTC),
			PeakTime:         "Late morning",
			RecommendedFlies: []string{"PMD Sparkle Dun #16", "Rusty Spinner #18"},
			Notes:            "Best on overcast, humid mornings",
		},
		{
			Insect:           "Trico",
			Region:           "Missouri River",
			StartDate:        time.Date(year, 7, 15, 0, 0, 0, 0, time.UTC),
			EndDate:          time.Date(year, 9, 15, 0, 0, 0, 0, time.UTC),
			PeakTime:         "Early morning",
			RecommendedFlies: []string{"Trico Spinner #20", "Griffith's Gnat #22"},
			Notes:            "Spinner falls end by mid-morning, be early",
		},
	}
}

func sampleGuides() []*entities.Guide {
	return []*entities.Guide{
		{
			Name:        "Sara Hollins",
			Location:    "Ennis, MT",
			Rating:      4.9,
			Specialties: []string{"dry fly", "walk and wade", "Madison River"},
			PriceRange:  "$550-600/day",
			Contact:     "sara@madisonflyguides.example.com",
			Verified:    true,
			Bio:         "Fifteen seasons rowing the upper Madison. Obsessive about hatches.",
			Photos:      []string{},
		},
		{
			Name:        "Tom Berrigan",
			Location:    "Island Park, ID",
			Rating:      4.7,
			Specialties: []string{"technical dry fly", "Henrys Fork"},
			PriceRange:  "$500-550/day",
			Contact:     "tom@railroadranch.example.com",
			Verified:    true,
			Bio:         "Railroad Ranch specialist. If you want a PhD fish, this is your trip.",
			Photos:      []string{},
		},
		{
			Name:        "Casey Nguyen",
			Location:    "Bozeman, MT",
			Rating:      4.5,
			Specialties: []string{"beginner friendly", "euro nymphing"},
			PriceRange:  "$450-500/day",
			Contact:     "casey@bridgerflyco.example.com",
			Verified:    false,
			Bio:         "Patient teacher, happiest putting first-timers on fish.",
			Photos:      []string{},
		},
	}
}
