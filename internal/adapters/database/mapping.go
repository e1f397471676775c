package database

import (
	"github.com/doug-martin/goqu/v9"

	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
)

// This file is the single place where storage columns (snake_case) are
// mapped to and from domain fields (camelCase). Adapters never touch
// column names directly; they go through a record/row pair per entity.
// List columns are JSONB arrays and always map to empty slices, never
// nil; embedded objects are JSONB documents.

func locationRecord(l *entities.FishingLocation) goqu.Record {
	return goqu.Record{
		"name":         l.Name,
		"latitude":     l.Coordinates.Latitude,
		"longitude":    l.Coordinates.Longitude,
		"type":         string(l.Type),
		"difficulty":   string(l.Difficulty),
		"species":      jsonValue(l.Species),
		"access":       string(l.Access),
		"regulations":  l.Regulations,
		"rating":       l.Rating,
		"review_count": l.ReviewCount,
	}
}

func rowToLocation(r Row) *entities.FishingLocation {
	return &entities.FishingLocation{
		ID:   r.String("id"),
		Name: r.String("name"),
		Coordinates: entities.Coordinates{
			Latitude:  r.Float("latitude"),
			Longitude: r.Float("longitude"),
		},
		Type:        entities.WaterType(r.String("type")),
		Difficulty:  entities.Difficulty(r.String("difficulty")),
		Species:     r.StringSlice("species"),
		Access:      entities.AccessType(r.String("access")),
		Regulations: r.String("regulations"),
		Rating:      r.Float("rating"),
		ReviewCount: r.Int("review_count"),
	}
}

func waterConditionRecord(w *entities.WaterCondition) goqu.Record {
	return goqu.Record{
		"location_id":  w.LocationID,
		"temperature":  w.Temperature,
		"clarity":      string(w.Clarity),
		"flow":         string(w.Flow),
		"level":        w.Level,
		"last_updated": w.LastUpdated,
	}
}

func rowToWaterCondition(r Row) *entities.WaterCondition {
	return &entities.WaterCondition{
		ID:          r.String("id"),
		LocationID:  r.String("location_id"),
		Temperature: r.Float("temperature"),
		Clarity:     entities.WaterClarity(r.String("clarity")),
		Flow:        entities.FlowLevel(r.String("flow")),
		Level:       r.Float("level"),
		LastUpdated: r.Time("last_updated"),
	}
}

func catchRecordRecord(c *entities.CatchRecord) goqu.Record {
	rec := goqu.Record{
		"user_id":         c.UserID,
		"location_id":     c.LocationID,
		"species":         c.Species,
		"length":          c.Length,
		"weight":          c.Weight,
		"photos":          jsonValue(c.Photos),
		"fly_pattern":     c.FlyPattern,
		"weather":         jsonValue(c.Weather),
		"water_condition": jsonValue(c.WaterCondition),
		"notes":           c.Notes,
		"is_released":     c.IsReleased,
		"timestamp":       c.Timestamp,
	}
	if c.Coordinates != nil {
		rec["coordinates"] = jsonValue(c.Coordinates)
	} else {
		rec["coordinates"] = nil
	}
	return rec
}

func rowToCatchRecord(r Row) *entities.CatchRecord {
	c := &entities.CatchRecord{
		ID:         r.String("id"),
		UserID:     r.String("user_id"),
		LocationID: r.String("location_id"),
		Species:    r.String("species"),
		Length:     r.FloatPtr("length"),
		Weight:     r.FloatPtr("weight"),
		Photos:     r.StringSlice("photos"),
		FlyPattern: r.String("fly_pattern"),
		Notes:      r.String("notes"),
		IsReleased: r.Bool("is_released"),
		Timestamp:  r.Time("timestamp"),
	}
	r.Object("weather", &c.Weather)
	r.Object("water_condition", &c.WaterCondition)
	var coords entities.Coordinates
	if r.Object("coordinates", &coords) {
		c.Coordinates = &coords
	}
	return c
}

func reportRecord(rep *entities.FishingReport) goqu.Record {
	return goqu.Record{
		"user_id":     rep.UserID,
		"location_id": rep.LocationID,
		"title":       rep.Title,
		"description": rep.Description,
		"conditions":  rep.Conditions,
		"success":     rep.Success,
		"timestamp":   rep.Timestamp,
		"photos":      jsonValue(rep.Photos),
		"likes":       rep.Likes,
	}
}

func rowToReport(r Row) *entities.FishingReport {
	return &entities.FishingReport{
		ID:          r.String("id"),
		UserID:      r.String("user_id"),
		LocationID:  r.String("location_id"),
		Title:       r.String("title"),
		Description: r.String("description"),
		Conditions:  r.String("conditions"),
		Success:     r.Int("success"),
		Timestamp:   r.Time("timestamp"),
		Photos:      r.StringSlice("photos"),
		Likes:       r.Int("likes"),
		Comments:    []entities.Comment{},
	}
}

func commentRecord(c *entities.Comment) goqu.Record {
	return goqu.Record{
		"report_id": c.ReportID,
		"user_id":   c.UserID,
		"content":   c.Content,
		"timestamp": c.Timestamp,
	}
}

// rowToComment maps a comment row; the username column comes from the
// users join, not the comments table
func rowToComment(r Row) entities.Comment {
	return entities.Comment{
		ID:        r.String("id"),
		ReportID:  r.String("report_id"),
		UserID:    r.String("user_id"),
		Username:  r.String("username"),
		Content:   r.String("content"),
		Timestamp: r.Time("timestamp"),
	}
}

func hatchEventRecord(h *entities.HatchEvent) goqu.Record {
	return goqu.Record{
		"insect":            h.Insect,
		"region":            h.Region,
		"start_date":        h.StartDate,
		"end_date":          h.EndDate,
		"peak_time":         h.PeakTime,
		"recommended_flies": jsonValue(h.RecommendedFlies),
		"notes":             h.Notes,
	}
}

func rowToHatchEvent(r Row) *entities.HatchEvent {
	return &entities.HatchEvent{
		ID:               r.String("id"),
		Insect:           r.String("insect"),
		Region:           r.String("region"),
		StartDate:        r.Time("start_date"),
		EndDate:          r.Time("end_date"),
		PeakTime:         r.String("peak_time"),
		RecommendedFlies: r.StringSlice("recommended_flies"),
		Notes:            r.String("notes"),
	}
}

func guideRecord(g *entities.Guide) goqu.Record {
	return goqu.Record{
		"name":        g.Name,
		"location":    g.Location,
		"rating":      g.Rating,
		"specialties": jsonValue(g.Specialties),
		"price_range": g.PriceRange,
		"contact":     g.Contact,
		"verified":    g.Verified,
		"bio":         g.Bio,
		"photos":      jsonValue(g.Photos),
	}
}

func rowToGuide(r Row) *entities.Guide {
	return &entities.Guide{
		ID:          r.String("id"),
		Name:        r.String("name"),
		Location:    r.String("location"),
		Rating:      r.Float("rating"),
		Specialties: r.StringSlice("specialties"),
		PriceRange:  r.String("price_range"),
		Contact:     r.String("contact"),
		Verified:    r.Bool("verified"),
		Bio:         r.String("bio"),
		Photos:      r.StringSlice("photos"),
	}
}

func userRecord(u *entities.User) goqu.Record {
	return goqu.Record{
		"id":               u.ID,
		"username":         u.Username,
		"email":            u.Email,
		"avatar":           u.Avatar,
		"location":         u.Location,
		"experience":       string(u.Experience),
		"total_catches":    u.TotalCatches,
		"favorite_species": jsonValue(u.FavoriteSpecies),
		"join_date":        u.JoinDate,
	}
}

func rowToUser(r Row) *entities.User {
	return &entities.User{
		ID:              r.String("id"),
		Username:        r.String("username"),
		Email:           r.String("email"),
		Avatar:          r.String("avatar"),
		Location:        r.String("location"),
		Experience:      entities.ExperienceLevel(r.String("experience")),
		TotalCatches:    r.Int("total_catches"),
		FavoriteSpecies: r.StringSlice("favorite_species"),
		JoinDate:        r.Time("join_date"),
	}
}
