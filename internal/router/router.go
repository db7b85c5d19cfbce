package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/blendbase/backend/internal/api"
	"github.com/blendbase/backend/internal/database"
	"github.com/blendbase/backend/internal/middleware"
	"github.com/blendbase/backend/internal/service"
)

// Handlers bundles the API handlers the router mounts.
type Handlers struct {
	Auth      *api.AuthHandler
	Recipe    *api.RecipeHandler
	Review    *api.ReviewHandler
	Dashboard *api.DashboardHandler
	Image     *api.ImageHandler
}

// SetupRouter configures the application routes. The rate limiter and
// health-check DB are optional; tests run without them.
func SetupRouter(h Handlers, authService service.IAuthService, limiter *middleware.RateLimiter, healthDB *database.DB) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://frontend:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		if healthDB != nil {
			if err := healthDB.HealthCheck(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authRequired := middleware.AuthMiddleware(authService)
	guarded := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		chain := []gin.HandlerFunc{authRequired}
		if limiter != nil {
			chain = append(chain, limiter.Middleware())
		}
		return append(chain, handler)
	}

	// API v1 routes
	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
	}

	recipes := v1.Group("/recipes")
	{
		recipes.GET("", h.Recipe.ListRecipes)
		recipes.GET("/:id", h.Recipe.GetRecipe)
		recipes.POST("", guarded(h.Recipe.CreateRecipe)...)
		recipes.PUT("/:id", guarded(h.Recipe.UpdateRecipe)...)
		recipes.DELETE("/:id", guarded(h.Recipe.DeleteRecipe)...)

		recipes.GET("/:id/reviews", h.Review.ListReviews)
		recipes.POST("/:id/reviews", guarded(h.Review.SubmitReview)...)
		recipes.PUT("/:id/rating", guarded(h.Review.UpsertRating)...)
	}

	dashboard := v1.Group("/dashboard")
	dashboard.Use(authRequired)
	{
		dashboard.GET("/recipes", h.Dashboard.ListOwnRecipes)
	}

	if h.Image != nil {
		v1.POST("/images", guarded(h.Image.UploadImage)...)
	}

	return router
}
