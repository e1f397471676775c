package routes

import (
	"net/http"

	"github.com/AlexSchroder3798/FlyFishing3/internal/api/handlers"
	"github.com/AlexSchroder3798/FlyFishing3/internal/api/middleware"
	"github.com/AlexSchroder3798/FlyFishing3/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	locationHandler       *handlers.LocationHandler
	waterConditionHandler *handlers.WaterConditionHandler
	catchHandler          *handlers.CatchHandler
	reportHandler         *handlers.ReportHandler
	hatchHandler          *handlers.HatchHandler
	guideHandler          *handlers.GuideHandler
	userHandler           *handlers.UserHandler
	authHandler           *handlers.AuthHandler
	toolsHandler          *handlers.ToolsHandler
	healthHandler         *handlers.HealthHandler

	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	locationHandler *handlers.LocationHandler,
	waterConditionHandler *handlers.WaterConditionHandler,
	catchHandler *handlers.CatchHandler,
	reportHandler *handlers.ReportHandler,
	hatchHandler *handlers.HatchHandler,
	guideHandler *handlers.GuideHandler,
	userHandler *handlers.UserHandler,
	authHandler *handlers.AuthHandler,
	toolsHandler *handlers.ToolsHandler,
	healthHandler *handlers.HealthHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		locationHandler:       locationHandler,
		waterConditionHandler: waterConditionHandler,
		catchHandler:          catchHandler,
		reportHandler:         reportHandler,
		hatchHandler:          hatchHandler,
		guideHandler:          guideHandler,
		userHandler:           userHandler,
		authHandler:           authHandler,
		toolsHandler:          toolsHandler,
		healthHandler:         healthHandler,

		cacheMiddleware: cacheMiddleware,
		metrics:         metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", r.healthHandler.GetHealth)

	// Location endpoints
	r.mux.HandleFunc("GET /api/locations", r.locationHandler.ListLocations)
	r.mux.HandleFunc("POST /api/locations", r.locationHandler.CreateLocation)
	r.mux.HandleFunc("GET /api/locations/search", r.locationHandler.SearchLocations)
	r.mux.HandleFunc("GET /api/locations/{id}", r.locationHandler.GetLocation)
	r.mux.HandleFunc("GET /api/locations/{id}/conditions", r.locationHandler.GetCurrentConditions)
	r.mux.HandleFunc("GET /api/locations/{id}/water-conditions/latest", r.waterConditionHandler.GetLatestCondition)

	// Water condition endpoints
	r.mux.HandleFunc("GET /api/water-conditions", r.waterConditionHandler.ListConditions)
	r.mux.HandleFunc("POST /api/water-conditions", r.waterConditionHandler.RecordCondition)

	// Catch record endpoints
	r.mux.HandleFunc("GET /api/catches", r.catchHandler.ListCatches)
	r.mux.HandleFunc("POST /api/catches", r.catchHandler.LogCatch)
	r.mux.HandleFunc("GET /api/catches/{id}", r.catchHandler.GetCatch)

	// Report endpoints
	r.mux.HandleFunc("GET /api/reports", r.reportHandler.ListReports)
	r.mux.HandleFunc("POST /api/reports", r.reportHandler.CreateReport)
	r.mux.HandleFunc("GET /api/reports/{id}", r.reportHandler.GetReport)
	r.mux.HandleFunc("POST /api/reports/{id}/comments", r.reportHandler.AddComment)
	r.mux.HandleFunc("POST /api/reports/{id}/likes", r.reportHandler.LikeReport)

	// Hatch calendar endpoints
	r.mux.HandleFunc("GET /api/hatches", r.hatchHandler.ListHatches)
	r.mux.HandleFunc("GET /api/hatches/active", r.hatchHandler.ListActiveHatches)
	r.mux.HandleFunc("POST /api/hatches", r.hatchHandler.CreateHatch)

	// Guide directory endpoints
	r.mux.HandleFunc("GET /api/guides", r.guideHandler.ListGuides)
	r.mux.HandleFunc("POST /api/guides", r.guideHandler.CreateGuide)
	r.mux.HandleFunc("GET /api/guides/{id}", r.guideHandler.GetGuide)

	// User profile endpoints
	r.mux.HandleFunc("GET /api/users/{id}", r.userHandler.GetProfile)
	r.mux.HandleFunc("PATCH /api/users/{id}", r.userHandler.UpdateProfile)

	// Auth endpoints
	r.mux.HandleFunc("POST /api/auth/signup", r.authHandler.SignUp)
	r.mux.HandleFunc("POST /api/auth/signin", r.authHandler.SignIn)
	r.mux.HandleFunc("GET /api/auth/oauth/{provider}", r.authHandler.OAuthStart)
	r.mux.HandleFunc("GET /auth/callback", r.authHandler.Callback)
	r.mux.HandleFunc("GET /api/auth/session", r.authHandler.GetSession)
	r.mux.HandleFunc("POST /api/auth/signout", r.authHandler.SignOut)

	// Angling tools
	r.mux.HandleFunc("GET /api/tools/weather", r.toolsHandler.GetWeather)
	r.mux.HandleFunc("GET /api/tools/streamflow", r.toolsHandler.GetStreamFlow)
	r.mux.HandleFunc("GET /api/tools/solunar", r.toolsHandler.GetSolunar)

	// Apply middleware in reverse order (last middleware wraps first).
	// CORS must be outermost so cached responses also get CORS headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	handler = middleware.ResponseOptimization(handler)

	handler = middleware.CORSMiddleware(handler)

	return handler
}
