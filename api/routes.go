package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/time/rate"

	"github.com/fightpulse/combat-api/api/clubs"
	"github.com/fightpulse/combat-api/api/events"
	"github.com/fightpulse/combat-api/api/fighters"
	"github.com/fightpulse/combat-api/api/health"
	"github.com/fightpulse/combat-api/api/middleware"
	"github.com/fightpulse/combat-api/api/news"
	"github.com/fightpulse/combat-api/api/search"
	"github.com/fightpulse/combat-api/api/types"
	"github.com/fightpulse/combat-api/api/version"
	_ "github.com/fightpulse/combat-api/docs/swagger"
	cacheService "github.com/fightpulse/combat-api/internal/services/cache"
	"github.com/fightpulse/combat-api/internal/services/catalog"
	searchService "github.com/fightpulse/combat-api/internal/services/search"
	"github.com/fightpulse/combat-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Public routes, no rate limiting
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Swagger documentation
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Wire the data-backed services when a database is available
	if deps.DB != nil && deps.DB.DB != nil {
		if deps.Catalog == nil || deps.Search == nil {
			repo := catalog.NewRepository(deps.DB.DB)
			deps.Catalog = repo
			deps.Search = searchService.NewService(repo,
				searchService.WithLookupTimeout(cfg.Search.LookupTimeout))
		}
	}

	if deps.Cache == nil && cfg.Cache.Enabled {
		deps.Cache = cacheService.NewMemoryCache(cfg.Cache.MaxSizeMB)
	}

	v1 := engine.Group("/api/v1")

	searchLimit := rate.Limit(float64(cfg.RateLimiting.SearchPerMinute) / 60.0)
	generalLimit := rate.Limit(cfg.RateLimiting.GeneralRPS)

	limiterFor := func(limit rate.Limit, burst int) gin.HandlerFunc {
		if !cfg.RateLimiting.Enabled {
			return func(c *gin.Context) { c.Next() }
		}
		return PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, limit, burst)
	}

	// Search routes carry their own, tighter budget
	searchGroup := v1.Group("/search")
	searchGroup.Use(limiterFor(searchLimit, cfg.RateLimiting.SearchBurst))
	search.RegisterRoutes(searchGroup, deps)

	if deps.Catalog != nil {
		entityCache := middleware.ResponseCache(middleware.CacheConfig{
			Cache:      deps.Cache,
			DefaultTTL: cfg.Cache.EntityTTL,
			Enabled:    cfg.Cache.Enabled && deps.Cache != nil,
		})

		fighterGroup := v1.Group("/fighters")
		fighterGroup.Use(limiterFor(generalLimit, cfg.RateLimiting.GeneralBurst), entityCache)
		fighters.RegisterRoutes(fighterGroup, deps)

		eventGroup := v1.Group("/events")
		eventGroup.Use(limiterFor(generalLimit, cfg.RateLimiting.GeneralBurst), entityCache)
		events.RegisterRoutes(eventGroup, deps)

		newsGroup := v1.Group("/news")
		newsGroup.Use(limiterFor(generalLimit, cfg.RateLimiting.GeneralBurst), entityCache)
		news.RegisterRoutes(newsGroup, deps)

		clubGroup := v1.Group("/clubs")
		clubGroup.Use(limiterFor(generalLimit, cfg.RateLimiting.GeneralBurst), entityCache)
		clubs.RegisterRoutes(clubGroup, deps)
	}

	return nil
}
