package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/blendbase/backend/config"
	"github.com/blendbase/backend/internal/api"
	"github.com/blendbase/backend/internal/database"
	"github.com/blendbase/backend/internal/middleware"
	"github.com/blendbase/backend/internal/router"
	"github.com/blendbase/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// Options carries the wired collaborators. Redis, the image service and
// the health-check DB are optional.
type Options struct {
	DB       *gorm.DB
	HealthDB *database.DB
	Redis    *redis.Client
	Images   service.IImageService
	Config   *config.Config
}

// New creates a new server instance
func New(opts Options) *Server {
	authService := service.NewAuthService(opts.DB, opts.Config.JWTSecret)
	recipeService := service.NewRecipeService(opts.DB)
	reviewService := service.NewReviewService(opts.DB)

	handlers := router.Handlers{
		Auth:      api.NewAuthHandler(authService),
		Recipe:    api.NewRecipeHandler(recipeService, reviewService),
		Review:    api.NewReviewHandler(reviewService),
		Dashboard: api.NewDashboardHandler(recipeService),
	}
	if opts.Images != nil {
		handlers.Image = api.NewImageHandler(opts.Images)
	}

	var limiter *middleware.RateLimiter
	if opts.Redis != nil {
		limiter = middleware.NewRateLimiter(opts.Redis, middleware.RateLimitConfig{
			Window:    time.Minute,
			Limit:     30,
			KeyPrefix: "ratelimit:writes",
		})
	}

	engine := router.SetupRouter(handlers, authService, limiter, opts.HealthDB)

	return &Server{
		router: engine,
		http: &http.Server{
			Addr:    fmt.Sprintf("%s:%s", opts.Config.ServerHost, opts.Config.ServerPort),
			Handler: engine,
		},
	}
}

// Start starts the server and blocks until it stops.
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}
