package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"local-guide/models"
	"local-guide/repositories"
)

// fakeBroadcaster records every published count instead of pushing to
// websocket clients.
type fakeBroadcaster struct {
	itemIDs []string
	counts  []int64
}

func (f *fakeBroadcaster) BroadcastFavoritesUpdated(itemID string, newCount int64) {
	f.itemIDs = append(f.itemIDs, itemID)
	f.counts = append(f.counts, newCount)
}

func setupFavoriteTest(t *testing.T) (IFavoriteService, *fakeBroadcaster, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Item{}, &models.Review{}, &models.Favorite{}))

	broadcaster := &fakeBroadcaster{}
	service := NewFavoriteService(repositories.NewFavoriteRepository(db), broadcaster)
	return service, broadcaster, db
}

func favoriteCount(t *testing.T, db *gorm.DB, itemID string) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Favorite{}).Where("item_id = ?", itemID).Count(&count).Error)
	return count
}

func TestAddFavoriteBroadcastsNewCount(t *testing.T) {
	service, broadcaster, db := setupFavoriteTest(t)

	require.NoError(t, service.Add("res-1", "user-a"))

	assert.Equal(t, int64(1), favoriteCount(t, db, "res-1"))
	require.Len(t, broadcaster.counts, 1)
	assert.Equal(t, "res-1", broadcaster.itemIDs[0])
	assert.Equal(t, int64(1), broadcaster.counts[0])

	require.NoError(t, service.Add("res-1", "user-b"))
	require.Len(t, broadcaster.counts, 2)
	assert.Equal(t, int64(2), broadcaster.counts[1])
}

func TestAddFavoriteTwiceConflicts(t *testing.T) {
	service, broadcaster, db := setupFavoriteTest(t)

	require.NoError(t, service.Add("res-1", "user-a"))

	err := service.Add("res-1", "user-a")
	assert.ErrorIs(t, err, repositories.ErrAlreadyFavorited)

	// the failed insert changed nothing and broadcast nothing
	assert.Equal(t, int64(1), favoriteCount(t, db, "res-1"))
	assert.Len(t, broadcaster.counts, 1)
}

func TestRemoveFavoriteIsIdempotent(t *testing.T) {
	service, broadcaster, db := setupFavoriteTest(t)

	require.NoError(t, service.Add("res-1", "user-a"))
	require.NoError(t, service.Remove("res-1", "user-a"))

	assert.Equal(t, int64(0), favoriteCount(t, db, "res-1"))
	require.Len(t, broadcaster.counts, 2)
	assert.Equal(t, int64(0), broadcaster.counts[1])

	// removing again is still a success and still publishes the count
	require.NoError(t, service.Remove("res-1", "user-a"))
	require.Len(t, broadcaster.counts, 3)
	assert.Equal(t, int64(0), broadcaster.counts[2])
}
