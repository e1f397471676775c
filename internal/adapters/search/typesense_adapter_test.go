package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
)

func TestDocumentToLocation(t *testing.T) {
	location := documentToLocation(map[string]interface{}{
		"id":           "loc-1",
		"name":         "Madison River",
		"type":         "river",
		"difficulty":   "intermediate",
		"access":       "public",
		"species":      []interface{}{"rainbow trout", "brown trout"},
		"coordinates":  []interface{}{44.65, -111.1},
		"rating":       4.8,
		"review_count": 204.0,
	})

	assert.Equal(t, "loc-1", location.ID)
	assert.Equal(t, entities.WaterTypeRiver, location.Type)
	assert.Equal(t, 44.65, location.Coordinates.Latitude)
	assert.Equal(t, -111.1, location.Coordinates.Longitude)
	assert.Equal(t, []string{"rainbow trout", "brown trout"}, location.Species)
	assert.Equal(t, 204, location.ReviewCount)
}

func TestDocumentToLocationPartialDocument(t *testing.T) {
	location := documentToLocation(map[string]interface{}{
		"id":   "loc-2",
		"name": "Quiet Pond",
	})

	assert.Equal(t, "Quiet Pond", location.Name)
	require.NotNil(t, location.Species)
	assert.Empty(t, location.Species)
	assert.Zero(t, location.Rating)
}
