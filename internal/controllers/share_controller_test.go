package controllers_test

import (
	"fmt"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eswar0113/travel/internal/config"
	"github.com/eswar0113/travel/internal/models"
)

func shareTrip(t *testing.T, r *gin.Engine, token string, tripID uint, public bool) string {
	t.Helper()
	w := doJSON(t, r, "POST", fmt.Sprintf("/trips/%d/share", tripID), token, gin.H{"is_public": public})
	require.Equal(t, 200, w.Code, w.Body.String())
	return decode(t, w)["share_id"].(string)
}

func TestShareTripKeepsStableToken(t *testing.T) {
	r := setupRouter(t)
	token := signup(t, r, "alice@example.com")
	tripID := createTrip(t, r, token, "Summer Trip", "2026-07-01", "2026-07-11")

	first := shareTrip(t, r, token, tripID, true)
	require.NotEmpty(t, first)

	// Toggling visibility reuses the record and its token.
	second := shareTrip(t, r, token, tripID, false)
	assert.Equal(t, first, second)

	var count int64
	config.DB.Model(&models.SharedTrip{}).Where("trip_id = ?", tripID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGetSharedTripAnonymous(t *testing.T) {
	r := setupRouter(t)
	token := signup(t, r, "alice@example.com")
	tripID := createTrip(t, r, token, "Summer Trip", "2026-07-01", "2026-07-11")
	addStop(t, r, token, tripID, "Paris", "France", "2026-07-02", "2026-07-05")
	shareID := shareTrip(t, r, token, tripID, true)

	// No token at all.
	w := doJSON(t, r, "GET", "/shared/"+shareID, "", nil)
	require.Equal(t, 200, w.Code)
	body := decode(t, w)
	trip := body["trip"].(map[string]interface{})
	assert.Equal(t, "Summer Trip", trip["name"])
	assert.Len(t, trip["stops"].([]interface{}), 1)
}

func TestGetSharedTripPrivateAndMissing(t *testing.T) {
	r := setupRouter(t)
	token := signup(t, r, "alice@example.com")
	tripID := createTrip(t, r, token, "Summer Trip", "2026-07-01", "2026-07-11")
	shareID := shareTrip(t, r, token, tripID, false)

	w := doJSON(t, r, "GET", "/shared/"+shareID, "", nil)
	assert.Equal(t, 403, w.Code)

	w = doJSON(t, r, "GET", "/shared/doesnotexist", "", nil)
	assert.Equal(t, 404, w.Code)
}

func TestCopyTrip(t *testing.T) {
	r := setupRouter(t)
	alice := signup(t, r, "alice@example.com")
	bob := signup(t, r, "bob@example.com")

	tripID := createTrip(t, r, alice, "Euro Tour", "2026-07-01", "2026-07-20")
	stopID := addStop(t, r, alice, tripID, "Paris", "France", "2026-07-01", "2026-07-05")
	w := doJSON(t, r, "POST", "/activities", alice, gin.H{
		"stop_id": stopID,
		"name":    "Louvre Museum",
		"date":    "2026-07-02",
		"cost":    20,
	})
	require.Equal(t, 201, w.Code)
	w = doJSON(t, r, "POST", fmt.Sprintf("/trips/%d/expenses", tripID), alice, gin.H{
		"category":    "food",
		"description": "Croissants",
		"amount":      12.5,
		"date":        "2026-07-02",
	})
	require.Equal(t, 201, w.Code)
	shareID := shareTrip(t, r, alice, tripID, true)

	w = doJSON(t, r, "POST", "/trips/copy", bob, gin.H{"share_id": shareID})
	require.Equal(t, 201, w.Code)
	copied := decode(t, w)["trip"].(map[string]interface{})
	assert.Equal(t, "Euro Tour (Copy)", copied["name"])
	copyID := uint(copied["ID"].(float64))
	require.NotEqual(t, tripID, copyID)

	var bobUser models.User
	require.NoError(t, config.DB.Where("email = ?", "bob@example.com").First(&bobUser).Error)

	var clone models.Trip
	require.NoError(t, config.DB.Preload("Stops").Preload("Stops.Activities").Preload("Expenses").First(&clone, copyID).Error)
	assert.Equal(t, bobUser.ID, clone.UserID)
	require.Len(t, clone.Stops, 1)
	assert.Equal(t, "Paris", clone.Stops[0].CityName)
	require.Len(t, clone.Stops[0].Activities, 1)
	assert.Equal(t, "Louvre Museum", clone.Stops[0].Activities[0].Name)
	assert.Equal(t, float64(20), clone.Stops[0].Activities[0].Cost)
	require.Len(t, clone.Expenses, 1)
	assert.Equal(t, 12.5, clone.Expenses[0].Amount)

	// The copy does not inherit the share record.
	var shareCount int64
	config.DB.Model(&models.SharedTrip{}).Where("trip_id = ?", copyID).Count(&shareCount)
	assert.Zero(t, shareCount)

	// The source trip is untouched.
	var source models.Trip
	require.NoError(t, config.DB.Preload("Stops").Preload("Expenses").First(&source, tripID).Error)
	assert.Equal(t, "Euro Tour", source.Name)
	assert.Len(t, source.Stops, 1)
	assert.Len(t, source.Expenses, 1)
}

func TestCopyPrivateTripForbidden(t *testing.T) {
	r := setupRouter(t)
	alice := signup(t, r, "alice@example.com")
	bob := signup(t, r, "bob@example.com")
	tripID := createTrip(t, r, alice, "Secret Trip", "2026-07-01", "2026-07-11")
	shareID := shareTrip(t, r, alice, tripID, false)

	w := doJSON(t, r, "POST", "/trips/copy", bob, gin.H{"share_id": shareID})
	assert.Equal(t, 403, w.Code)
}

func TestDeleteShareDisablesLink(t *testing.T) {
	r := setupRouter(t)
	token := signup(t, r, "alice@example.com")
	tripID := createTrip(t, r, token, "Summer Trip", "2026-07-01", "2026-07-11")
	shareID := shareTrip(t, r, token, tripID, true)

	w := doJSON(t, r, "DELETE", fmt.Sprintf("/trips/%d/share", tripID), token, nil)
	require.Equal(t, 200, w.Code)

	w = doJSON(t, r, "GET", "/shared/"+shareID, "", nil)
	assert.Equal(t, 404, w.Code)
}

func TestReshareAfterDelete(t *testing.T) {
	r := setupRouter(t)
	token := signup(t, r, "alice@example.com")
	tripID := createTrip(t, r, token, "Summer Trip", "2026-07-01", "2026-07-11")
	oldID := shareTrip(t, r, token, tripID, true)

	w := doJSON(t, r, "DELETE", fmt.Sprintf("/trips/%d/share", tripID), token, nil)
	require.Equal(t, 200, w.Code)

	// Deleting the link must not block sharing the trip again.
	newID := shareTrip(t, r, token, tripID, true)
	require.NotEmpty(t, newID)
	assert.NotEqual(t, oldID, newID)

	var count int64
	config.DB.Model(&models.SharedTrip{}).Where("trip_id = ?", tripID).Count(&count)
	assert.Equal(t, int64(1), count)

	w = doJSON(t, r, "GET", "/shared/"+newID, "", nil)
	assert.Equal(t, 200, w.Code)
	w = doJSON(t, r, "GET", "/shared/"+oldID, "", nil)
	assert.Equal(t, 404, w.Code)
}
