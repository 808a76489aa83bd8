package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shelfshare/shelfshare-backend/internal/config"
	"github.com/shelfshare/shelfshare-backend/internal/models"
	"github.com/shelfshare/shelfshare-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init()
}

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Review{}, &models.ReviewLike{}, &models.Follow{}))

	cfg := &config.Config{
		Environment:        "test",
		JWTSecret:          "test-secret",
		RateLimitRPS:       1000,
		RateLimitBurst:     1000,
		CORSAllowedOrigins: []string{"http://localhost:3000"},
	}

	router := gin.New()
	SetupRoutes(router, db, cfg)
	return router
}

func TestUnmatchedRouteReturns404(t *testing.T) {
	router := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/nonexistent-route", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(404), body["error"]["status"])
	assert.Equal(t, "Not Found", body["error"]["message"])
}

func TestHealthCheck(t *testing.T) {
	router := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReviewLifecycle(t *testing.T) {
	router := newTestServer(t)

	payload, _ := json.Marshal(map[string]interface{}{
		"username":            "alice",
		"google_books_api_id": "abc123",
		"rating":              15,
		"review_text":         "great",
	})
	req := httptest.NewRequest(http.MethodPost, "/reviews", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created map[string]models.Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	review := created["review"]
	assert.Equal(t, 10, review.Rating, "rating should be clamped")
	require.NotZero(t, review.ReviewID)

	req = httptest.NewRequest(http.MethodGet, "/reviews/user/alice", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var listed map[string][]models.Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed["reviews"], 1)
	assert.Equal(t, "abc123", listed["reviews"][0].GoogleBooksAPIID)
}

func TestBookLogRequiresAuth(t *testing.T) {
	router := newTestServer(t)

	payload, _ := json.Marshal(map[string]interface{}{
		"username":         "alice",
		"googleBooksApiId": "abc123",
	})
	req := httptest.NewRequest(http.MethodPost, "/book-log/read", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
