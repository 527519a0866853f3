package userControllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aliroohan/TagHeuer-Backend/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeAuth stands in for the JWT middleware.
func fakeAuth(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("is_admin", false)
		c.Next()
	}
}

func setupWishlistRouter(db *gorm.DB, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/users/wishlist/:watchId", fakeAuth(userID), AddToWishlist(db))
	r.DELETE("/api/users/wishlist/:watchId", fakeAuth(userID), RemoveFromWishlist(db))
	return r
}

func seedWatch(t *testing.T, db *gorm.DB, name string) models.Watch {
	t.Helper()
	watch := models.Watch{
		Name:      name,
		Reference: "REF-" + name,
		Brand:     "TAG Heuer",
		Price:     100,
		Quantity:  5,
	}
	require.NoError(t, db.Create(&watch).Error)
	return watch
}

func wishlistDo(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func wishlistCount(t *testing.T, db *gorm.DB, userID uint) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.WishlistItem{}).
		Where("user_id = ?", userID).Count(&count).Error)
	return count
}

func TestWishlistRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	watch := seedWatch(t, db, "Carrera")
	r := setupWishlistRouter(db, 1)

	w := wishlistDo(r, http.MethodPost, fmt.Sprintf("/api/users/wishlist/%d", watch.ID))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), wishlistCount(t, db, 1))

	w = wishlistDo(r, http.MethodDelete, fmt.Sprintf("/api/users/wishlist/%d", watch.ID))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, wishlistCount(t, db, 1))
}

func TestWishlistDuplicateAddIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	watch := seedWatch(t, db, "Monaco")
	r := setupWishlistRouter(db, 1)

	for i := 0; i < 2; i++ {
		w := wishlistDo(r, http.MethodPost, fmt.Sprintf("/api/users/wishlist/%d", watch.ID))
		require.Equal(t, http.StatusOK, w.Code)
	}
	assert.Equal(t, int64(1), wishlistCount(t, db, 1))
}

func TestWishlistAddUnknownWatch(t *testing.T) {
	db := setupTestDB(t)
	r := setupWishlistRouter(db, 1)

	w := wishlistDo(r, http.MethodPost, "/api/users/wishlist/999")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = wishlistDo(r, http.MethodPost, "/api/users/wishlist/not-a-number")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWishlistRemoveAbsent(t *testing.T) {
	db := setupTestDB(t)
	watch := seedWatch(t, db, "Link")
	r := setupWishlistRouter(db, 1)

	w := wishlistDo(r, http.MethodDelete, fmt.Sprintf("/api/users/wishlist/%d", watch.ID))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWishlistScopedToUser(t *testing.T) {
	db := setupTestDB(t)
	watch := seedWatch(t, db, "Aquaracer")

	first := setupWishlistRouter(db, 1)
	second := setupWishlistRouter(db, 2)

	require.Equal(t, http.StatusOK,
		wishlistDo(first, http.MethodPost, fmt.Sprintf("/api/users/wishlist/%d", watch.ID)).Code)

	// another user removing the same watch does not touch the first list
	w := wishlistDo(second, http.MethodDelete, fmt.Sprintf("/api/users/wishlist/%d", watch.ID))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, int64(1), wishlistCount(t, db, 1))
}
