package api_test

import (
	"fmt"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/blendbase/backend/internal/api"
	"github.com/blendbase/backend/internal/database"
	"github.com/blendbase/backend/internal/router"
	"github.com/blendbase/backend/internal/service"
)

const testJWTSecret = "test-secret"

// setupTestRouter builds the full route table over an in-memory SQLite
// database. No rate limiter, health DB or image service is attached.
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db, ""))

	authService := service.NewAuthService(db, testJWTSecret)
	recipeService := service.NewRecipeService(db)
	reviewService := service.NewReviewService(db)

	handlers := router.Handlers{
		Auth:      api.NewAuthHandler(authService),
		Recipe:    api.NewRecipeHandler(recipeService, reviewService),
		Review:    api.NewReviewHandler(reviewService),
		Dashboard: api.NewDashboardHandler(recipeService),
	}

	return router.SetupRouter(handlers, authService, nil, nil), db
}

// createTestUserAndToken registers a user and returns their ID and a
// valid JWT token.
func createTestUserAndToken(t *testing.T, db *gorm.DB, username string) (uuid.UUID, string) {
	t.Helper()

	authService := service.NewAuthService(db, testJWTSecret)
	token, err := authService.Register(username+"@example.com", "password123", username)
	require.NoError(t, err)

	claims, err := authService.ValidateToken(token)
	require.NoError(t, err)
	return claims.UserID, token
}
