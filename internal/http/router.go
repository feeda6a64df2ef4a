// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging/redaction, panic recovery, metrics,
// CORS, security headers, and rate limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Production-ready CORS and security header posture
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/tabletap/go-table-backend/internal/config"
	"github.com/tabletap/go-table-backend/internal/domain"
	"github.com/tabletap/go-table-backend/internal/http/handlers"
	"github.com/tabletap/go-table-backend/internal/http/middleware"
	"github.com/tabletap/go-table-backend/internal/realtime"
	"github.com/tabletap/go-table-backend/internal/repo"
	"github.com/tabletap/go-table-backend/internal/services"
)

// sessionRepoShim adapts the repository free functions to the
// services.SessionRepo interface expected by the SessionService. This keeps
// services decoupled from the concrete repo package while reusing existing
// functions.
type sessionRepoShim struct{}

// FindActiveByTable proxies repo.FindActiveByTable.
func (sessionRepoShim) FindActiveByTable(ctx context.Context, db *gorm.DB, restaurantID, tableID string, now time.Time) (*domain.Session, error) {
	return repo.FindActiveByTable(ctx, db, restaurantID, tableID, now)
}

// FindByToken proxies repo.FindByToken.
func (sessionRepoShim) FindByToken(ctx context.Context, db *gorm.DB, tok string) (*domain.Session, error) {
	return repo.FindByToken(ctx, db, tok)
}

// ExistsToken proxies repo.ExistsSessionToken.
func (sessionRepoShim) ExistsToken(ctx context.Context, db *gorm.DB, tok string) (bool, error) {
	return repo.ExistsSessionToken(ctx, db, tok)
}

// Insert proxies repo.InsertSession.
func (sessionRepoShim) Insert(ctx context.Context, db *gorm.DB, s *domain.Session) error {
	return repo.InsertSession(ctx, db, s)
}

// Save proxies repo.SaveSession.
func (sessionRepoShim) Save(ctx context.Context, db *gorm.DB, s *domain.Session) error {
	return repo.SaveSession(ctx, db, s)
}

// directoryShim adapts the table/restaurant lookups to services.Directory.
type directoryShim struct{}

// FindActiveTableByQRToken proxies repo.FindActiveTableByQRToken.
func (directoryShim) FindActiveTableByQRToken(ctx context.Context, db *gorm.DB, qrToken string) (*domain.Table, error) {
	return repo.FindActiveTableByQRToken(ctx, db, qrToken)
}

// GetTableByID proxies repo.GetTableByID.
func (directoryShim) GetTableByID(ctx context.Context, db *gorm.DB, id string) (*domain.Table, error) {
	return repo.GetTableByID(ctx, db, id)
}

// GetRestaurant proxies repo.GetRestaurant.
func (directoryShim) GetRestaurant(ctx context.Context, db *gorm.DB, id string) (*domain.Restaurant, error) {
	return repo.GetRestaurant(ctx, db, id)
}

// restaurantRepoShim adapts the repository free functions to
// services.RestaurantRepo.
type restaurantRepoShim struct{}

func (restaurantRepoShim) CreateRestaurant(ctx context.Context, db *gorm.DB, r *domain.Restaurant) (*domain.Restaurant, error) {
	return repo.CreateRestaurant(ctx, db, r)
}

func (restaurantRepoShim) CountRestaurants(ctx context.Context, db *gorm.DB, includeInactive bool, search string) (int64, error) {
	return repo.CountRestaurants(ctx, db, includeInactive, search)
}

func (restaurantRepoShim) ListRestaurantsPage(ctx context.Context, db *gorm.DB, includeInactive bool, search string, offset, limit int) ([]domain.Restaurant, error) {
	return repo.ListRestaurantsPage(ctx, db, includeInactive, search, offset, limit)
}

func (restaurantRepoShim) GetRestaurant(ctx context.Context, db *gorm.DB, id string) (*domain.Restaurant, error) {
	return repo.GetRestaurant(ctx, db, id)
}

func (restaurantRepoShim) GetRestaurantBySlug(ctx context.Context, db *gorm.DB, slug string) (*domain.Restaurant, error) {
	return repo.GetRestaurantBySlug(ctx, db, slug)
}

func (restaurantRepoShim) ExistsSlug(ctx context.Context, db *gorm.DB, slug, excludeID string) (bool, error) {
	return repo.ExistsSlug(ctx, db, slug, excludeID)
}

func (restaurantRepoShim) SaveRestaurant(ctx context.Context, db *gorm.DB, r *domain.Restaurant) error {
	return repo.SaveRestaurant(ctx, db, r)
}

// tableRepoShim adapts the repository free functions to services.TableRepo.
type tableRepoShim struct{}

func (tableRepoShim) CreateTable(ctx context.Context, db *gorm.DB, restaurantID, tableNumber, qrToken string, capacity int) (*domain.Table, error) {
	return repo.CreateTable(ctx, db, restaurantID, tableNumber, qrToken, capacity)
}

func (tableRepoShim) ListTables(ctx context.Context, db *gorm.DB, restaurantID string, includeInactive bool) ([]domain.Table, error) {
	return repo.ListTables(ctx, db, restaurantID, includeInactive)
}

func (tableRepoShim) GetTable(ctx context.Context, db *gorm.DB, id, restaurantID string) (*domain.Table, error) {
	return repo.GetTable(ctx, db, id, restaurantID)
}

func (tableRepoShim) ExistsQRToken(ctx context.Context, db *gorm.DB, qrToken string) (bool, error) {
	return repo.ExistsQRToken(ctx, db, qrToken)
}

func (tableRepoShim) ExistsTableNumber(ctx context.Context, db *gorm.DB, restaurantID, tableNumber, excludeID string) (bool, error) {
	return repo.ExistsTableNumber(ctx, db, restaurantID, tableNumber, excludeID)
}

func (tableRepoShim) SaveTable(ctx context.Context, db *gorm.DB, t *domain.Table) error {
	return repo.SaveTable(ctx, db, t)
}

func (tableRepoShim) DeleteTable(ctx context.Context, db *gorm.DB, id, restaurantID string) error {
	return repo.DeleteTable(ctx, db, id, restaurantID)
}

func (tableRepoShim) ExistsActiveRestaurant(ctx context.Context, db *gorm.DB, id string) (bool, error) {
	return repo.ExistsActiveRestaurant(ctx, db, id)
}

// menuRepoShim adapts the repository free functions to services.MenuRepo.
type menuRepoShim struct{}

func (menuRepoShim) CreateMenuItem(ctx context.Context, db *gorm.DB, item *domain.MenuItem) (*domain.MenuItem, error) {
	return repo.CreateMenuItem(ctx, db, item)
}

func (menuRepoShim) ListMenuItems(ctx context.Context, db *gorm.DB, restaurantID string, f repo.MenuFilter) ([]domain.MenuItem, error) {
	return repo.ListMenuItems(ctx, db, restaurantID, f)
}

func (menuRepoShim) GetMenuItem(ctx context.Context, db *gorm.DB, id, restaurantID string) (*domain.MenuItem, error) {
	return repo.GetMenuItem(ctx, db, id, restaurantID)
}

func (menuRepoShim) SaveMenuItem(ctx context.Context, db *gorm.DB, item *domain.MenuItem) error {
	return repo.SaveMenuItem(ctx, db, item)
}

func (menuRepoShim) DeleteMenuItem(ctx context.Context, db *gorm.DB, id, restaurantID string) error {
	return repo.DeleteMenuItem(ctx, db, id, restaurantID)
}

func (menuRepoShim) ExistsActiveRestaurant(ctx context.Context, db *gorm.DB, id string) (bool, error) {
	return repo.ExistsActiveRestaurant(ctx, db, id)
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), rate limiting,
// CORS and security headers, health and metrics endpoints, and then mounts
// the versioned public API under /api/v* plus the WebSocket endpoint.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. RedactingLogger: structured logs with PII and token scrubbing
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. Rate limiter (per IP; diners are anonymous)
//  8. CORS and Security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, hub *realtime.Hub, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging with redaction
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{
		MaskHeaders: []string{
			"X-API-Key", // project-specific sensitive header example
		},
	}))

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// Compress responses except on the WebSocket upgrade and metrics scrape.
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/ws/", "/metrics"})))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Token-bucket rate limiter per client IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByIP())
	r.Use(rl.Handler())

	// 8) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header (helps tests and simple health checks).
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length", "ETag"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		// Echo ACAO with the request Origin when it is in the allowlist (in addition to gin-contrib/cors).
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length", "ETag"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Swagger UI (off by default; enable via SWAGGER_ENABLED)
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: services ← repo/db/hub
	sessionSvc := services.NewSessionService(db, sessionRepoShim{}, directoryShim{}, cfg.Session.TTL)
	sessionSvc.Notifier = hub
	restaurantSvc := services.NewRestaurantService(db, restaurantRepoShim{})
	tableSvc := services.NewTableService(db, tableRepoShim{})
	menuSvc := services.NewMenuService(db, menuRepoShim{})

	sh := handlers.NewSessionHandlers(sessionSvc)
	rh := handlers.NewRestaurantHandlers(restaurantSvc)
	th := handlers.NewTableHandlers(tableSvc)
	mh := handlers.NewMenuHandlers(menuSvc)

	// WebSocket subscriptions on session rooms. The checker reuses the full
	// lifecycle validation, so a subscribe also counts as session activity.
	if hub != nil {
		check := func(ctx context.Context, tok string) error {
			_, err := sessionSvc.GetByToken(ctx, tok)
			return err
		}
		r.GET("/ws/sessions/:sessionToken", realtime.Handler(hub, check, services.ErrSessionNotFound, services.ErrSessionExpired, services.ErrSessionNotActive))
	}

	// Public API
	apiBase := cfg.APIBasePath // e.g. "/api/v1"
	api := groupWithPrefix(r, apiBase)
	{
		// Sessions (diner-facing)
		api.POST("/sessions", sh.CreateOrJoinSession)
		api.GET("/sessions/:sessionToken", sh.GetSession)
		api.POST("/sessions/:sessionToken/participants", sh.AddParticipant)
		api.PATCH("/sessions/:sessionToken/mode", sh.UpdateSessionMode)

		// Restaurants
		api.POST("/restaurants", rh.CreateRestaurant)
		api.GET("/restaurants", rh.ListRestaurants)
		api.GET("/restaurants/slug/:slug", rh.GetRestaurantBySlug)
		api.GET("/restaurants/:id", rh.GetRestaurant)
		api.PATCH("/restaurants/:id", rh.UpdateRestaurant)
		api.DELETE("/restaurants/:id", rh.DeactivateRestaurant)

		// Tables
		api.POST("/restaurants/:id/tables", th.CreateTable)
		api.GET("/restaurants/:id/tables", th.ListTables)
		api.GET("/restaurants/:id/tables/:tableId", th.GetTable)
		api.PATCH("/restaurants/:id/tables/:tableId", th.UpdateTable)
		api.DELETE("/restaurants/:id/tables/:tableId", th.DeleteTable)

		// Menu
		api.POST("/restaurants/:id/menu", mh.CreateMenuItem)
		api.GET("/restaurants/:id/menu", mh.ListMenu)
		api.GET("/restaurants/:id/menu/:itemId", mh.GetMenuItem)
		api.PATCH("/restaurants/:id/menu/:itemId", mh.UpdateMenuItem)
		api.DELETE("/restaurants/:id/menu/:itemId", mh.DeleteMenuItem)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
