package api

import (
	"github.com/gin-gonic/gin"

	"github.com/dana/castmatch/internal/api/handler"
	"github.com/dana/castmatch/internal/api/middleware"
	"github.com/dana/castmatch/internal/cache"
	"github.com/dana/castmatch/internal/logger"
	"github.com/dana/castmatch/internal/roster"
	"github.com/dana/castmatch/internal/service"
	"github.com/dana/castmatch/internal/storage"
)

// RouterConfig holds the HTTP surface configuration.
type RouterConfig struct {
	Mode       string
	CORS       middleware.CORSConfig
	CookieName string
}

// SetupRouter configures the Gin router with all routes
func SetupRouter(
	manager *cache.Manager,
	analysis *service.AnalysisService,
	recommend *service.RecommendService,
	loader roster.Loader,
	imageStore storage.ObjectStorage,
	log *logger.Logger,
	cfg RouterConfig,
) *gin.Engine {
	// Set Gin mode
	switch cfg.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	// Add middleware
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware(log))
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.Session(manager, cfg.CookieName))

	// Create handlers
	healthHandler := handler.NewHealthHandler()
	characterHandler := handler.NewCharacterHandler(analysis, imageStore)
	recommendHandler := handler.NewRecommendHandler(recommend)
	actorsHandler := handler.NewActorsHandler(loader)
	resultsHandler := handler.NewResultsHandler()
	sessionHandler := handler.NewSessionHandler()

	// Health check
	r.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		// Character analysis
		v1.POST("/character/analyze", characterHandler.Analyze)
		v1.POST("/character/image", characterHandler.UploadImage)

		// Roster
		v1.GET("/actors", actorsHandler.List)
		v1.GET("/actors/agencies", actorsHandler.Agencies)

		// Recommendation
		v1.POST("/recommend", recommendHandler.Recommend)
		v1.GET("/results", resultsHandler.Results)

		// Session hand-off slots
		v1.GET("/session/:key", sessionHandler.Get)
		v1.PUT("/session/:key", sessionHandler.Put)
	}

	return r
}
