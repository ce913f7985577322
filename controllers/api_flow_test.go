package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"local-guide/middlewares"
	"local-guide/models"
	"local-guide/repositories"
	"local-guide/services"
)

type recordingBroadcaster struct {
	itemIDs []string
	counts  []int64
}

func (r *recordingBroadcaster) BroadcastFavoritesUpdated(itemID string, newCount int64) {
	r.itemIDs = append(r.itemIDs, itemID)
	r.counts = append(r.counts, newCount)
}

// setupAPIRouter wires the full route table against an in-memory store,
// the same shape main.go builds in production.
func setupAPIRouter(t *testing.T) (*gin.Engine, *recordingBroadcaster) {
	t.Helper()
	t.Setenv("SECRET_KEY", "test-secret-key")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Item{}, &models.Review{}, &models.Favorite{}))

	require.NoError(t, db.Create(&[]models.Item{
		{ID: "res-1", Name: "Palaty", Type: "restaurant", Location: "Kutaisi", Photos: []string{"p.jpg"}},
		{ID: "mus-1", Name: "Museum", Type: "museum", Location: "Kutaisi", Photos: []string{"m.jpg"}},
	}).Error)

	broadcaster := &recordingBroadcaster{}

	authService := services.NewAuthService(repositories.NewAuthRepository(db))
	itemService := services.NewItemService(repositories.NewItemRepository(db))
	reviewService := services.NewReviewService(repositories.NewReviewRepository(db))
	favoriteService := services.NewFavoriteService(repositories.NewFavoriteRepository(db), broadcaster)

	authController := NewAuthController(authService)
	itemController := NewItemController(itemService)
	reviewController := NewReviewController(reviewService)
	favoriteController := NewFavoriteController(favoriteService)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/auth/register", authController.Register)
	api.POST("/auth/login", authController.Login)
	api.GET("/local-items", middlewares.OptionalAuthMiddleware(authService), itemController.FindAll)
	api.GET("/items/:itemId/reviews", reviewController.FindByItem)

	withAuth := api.Group("/items/:itemId", middlewares.AuthMiddleware(authService))
	withAuth.POST("/reviews", reviewController.Create)
	withAuth.POST("/favorite", favoriteController.Add)
	withAuth.DELETE("/favorite", favoriteController.Remove)

	return r, broadcaster
}

func registerAndLogin(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	register := gin.H{"name": "Jo Lee", "email": email, "password": "password123", "passwordConfirm": "password123"}
	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/api/auth/register", register, nil).Code)

	w := doJSON(r, http.MethodPost, "/api/auth/login", gin.H{"email": email, "password": "password123"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	return login.Token
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestListItemsAnonymous(t *testing.T) {
	r, _ := setupAPIRouter(t)

	w := doJSON(r, http.MethodGet, "/api/local-items", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []models.ItemWithFavorites
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Museum", items[0].Name)
	assert.Equal(t, "Palaty", items[1].Name)
	assert.Nil(t, items[1].Rating)
}

func TestListItemsRejectsBadTokenWhenPresented(t *testing.T) {
	r, _ := setupAPIRouter(t)

	// optional auth only skips verification when no header is presented
	w := doJSON(r, http.MethodGet, "/api/local-items", nil, bearer("garbage"))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestReviewSubmissionUpdatesRating(t *testing.T) {
	r, _ := setupAPIRouter(t)
	token := registerAndLogin(t, r, "jo@x.com")

	w := doJSON(r, http.MethodPost, "/api/items/res-1/reviews", gin.H{"rating": 4, "comment": "good"}, bearer(token))
	require.Equal(t, http.StatusCreated, w.Code)

	var review models.Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &review))
	assert.Equal(t, 4, review.Rating)
	assert.Equal(t, "res-1", review.ItemID)

	// second attempt by the same user conflicts
	w = doJSON(r, http.MethodPost, "/api/items/res-1/reviews", gin.H{"rating": 5}, bearer(token))
	assert.Equal(t, http.StatusConflict, w.Code)

	// rating is visible on the list endpoint
	w = doJSON(r, http.MethodGet, "/api/local-items", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var items []models.ItemWithFavorites
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	for _, item := range items {
		if item.ID == "res-1" {
			require.NotNil(t, item.Rating)
			assert.Equal(t, "4.0", *item.Rating)
		}
	}
}

func TestReviewValidationAndMissingItem(t *testing.T) {
	r, _ := setupAPIRouter(t)
	token := registerAndLogin(t, r, "jo@x.com")

	w := doJSON(r, http.MethodPost, "/api/items/res-1/reviews", gin.H{"rating": 6}, bearer(token))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/api/items/missing/reviews", gin.H{"rating": 3}, bearer(token))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodPost, "/api/items/res-1/reviews", gin.H{"rating": 3}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFavoriteLifecycle(t *testing.T) {
	r, broadcaster := setupAPIRouter(t)
	token := registerAndLogin(t, r, "jo@x.com")

	w := doJSON(r, http.MethodPost, "/api/items/res-1/favorite", nil, bearer(token))
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, broadcaster.counts, 1)
	assert.Equal(t, "res-1", broadcaster.itemIDs[0])
	assert.Equal(t, int64(1), broadcaster.counts[0])

	// duplicate favorite conflicts and does not broadcast
	w = doJSON(r, http.MethodPost, "/api/items/res-1/favorite", nil, bearer(token))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Len(t, broadcaster.counts, 1)

	// personalized listing reflects the favorite
	w = doJSON(r, http.MethodGet, "/api/local-items", nil, bearer(token))
	require.Equal(t, http.StatusOK, w.Code)
	var items []models.ItemWithFavorites
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	for _, item := range items {
		if item.ID == "res-1" {
			assert.Equal(t, int64(1), item.FavoriteCount)
			assert.True(t, item.IsFavoritedByUser)
		} else {
			assert.False(t, item.IsFavoritedByUser)
		}
	}

	// unfavorite, then unfavorite again: both 204, both broadcast
	w = doJSON(r, http.MethodDelete, "/api/items/res-1/favorite", nil, bearer(token))
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(r, http.MethodDelete, "/api/items/res-1/favorite", nil, bearer(token))
	assert.Equal(t, http.StatusNoContent, w.Code)

	require.Len(t, broadcaster.counts, 3)
	assert.Equal(t, int64(0), broadcaster.counts[1])
	assert.Equal(t, int64(0), broadcaster.counts[2])
}
