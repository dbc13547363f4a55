package container

import (
	"context"
	"fmt"
	"time"

	"bookadmin-backend/internal/config"
	infraCache "bookadmin-backend/internal/infrastructure/cache"
	"bookadmin-backend/internal/mockapi"
	"bookadmin-backend/internal/query"
	"bookadmin-backend/internal/state"
	"bookadmin-backend/pkg/cache"
	"bookadmin-backend/pkg/jwt"
	"bookadmin-backend/pkg/logger"

	authFacade "bookadmin-backend/internal/domains/auth/facade"
	authHandler "bookadmin-backend/internal/domains/auth/handler"
	authService "bookadmin-backend/internal/domains/auth/service"

	bookFacade "bookadmin-backend/internal/domains/book/facade"
	bookHandler "bookadmin-backend/internal/domains/book/handler"
	bookService "bookadmin-backend/internal/domains/book/service"

	categoryFacade "bookadmin-backend/internal/domains/category/facade"
	categoryHandler "bookadmin-backend/internal/domains/category/handler"
	categoryService "bookadmin-backend/internal/domains/category/service"

	dashboardFacade "bookadmin-backend/internal/domains/dashboard/facade"
	dashboardHandler "bookadmin-backend/internal/domains/dashboard/handler"
	dashboardService "bookadmin-backend/internal/domains/dashboard/service"

	recommendationFacade "bookadmin-backend/internal/domains/recommendation/facade"
	recommendationHandler "bookadmin-backend/internal/domains/recommendation/handler"
	recommendationService "bookadmin-backend/internal/domains/recommendation/service"

	uploadFacade "bookadmin-backend/internal/domains/upload/facade"
	uploadHandler "bookadmin-backend/internal/domains/upload/handler"
	uploadService "bookadmin-backend/internal/domains/upload/service"

	userFacade "bookadmin-backend/internal/domains/user/facade"
	userHandler "bookadmin-backend/internal/domains/user/handler"
	userService "bookadmin-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in dependency order: config, then
// infrastructure, then the simulated backend, then state, services and
// handlers.
type Container struct {
	Config     *config.Config
	JWTManager *jwt.Manager

	// QueryCache backs the request-keyed read cache. SessionCache is the
	// durable store for the auth session; it is nil when redis is
	// unreachable and the session degrades to memory-only.
	QueryCache   cache.Cache
	SessionCache *infraCache.RedisCache

	Store  *mockapi.Store
	Client *mockapi.Client

	Querier       *query.Querier
	AuthStore     *state.AuthStore
	BookListStore *state.BookListStore

	AuthService           authService.ServiceInterface
	BookService           bookService.ServiceInterface
	CategoryService       categoryService.ServiceInterface
	UserService           userService.ServiceInterface
	DashboardService      dashboardService.ServiceInterface
	RecommendationService recommendationService.ServiceInterface
	UploadService         uploadService.ServiceInterface

	AuthHandler           *authHandler.Handler
	BookHandler           *bookHandler.Handler
	CategoryHandler       *categoryHandler.Handler
	UserHandler           *userHandler.Handler
	DashboardHandler      *dashboardHandler.Handler
	RecommendationHandler *recommendationHandler.Handler
	UploadHandler         *uploadHandler.Handler
}

// NewContainer builds and wires the whole application.
func NewContainer() (*Container, error) {
	c := &Container{}

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	logger.Init(cfg.App.Environment)
	logger.Info("configuration loaded", map[string]interface{}{
		"environment": cfg.App.Environment,
		"port":        cfg.App.Port,
	})

	// 2. Infrastructure
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	c.QueryCache = cache.NewMemoryCache()

	// Redis only carries the durable session record. Losing it is not
	// fatal: sessions just stop surviving restarts.
	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisCache.Connect(ctx); err != nil {
		logger.Warn("redis unavailable, sessions will not survive restarts", err)
	} else {
		c.SessionCache = redisCache
	}

	// 3. Simulated backend
	c.Store = mockapi.NewStore()
	c.Client = mockapi.NewClient(c.Store, cfg.Mock.LatencyScale)

	// 4. Coordination and state
	c.Querier = query.NewQuerier(c.QueryCache)
	if c.SessionCache != nil {
		c.AuthStore = state.NewAuthStore(ctx, c.SessionCache)
	} else {
		c.AuthStore = state.NewAuthStore(ctx, nil)
	}
	c.BookListStore = state.NewBookListStore()

	// 5. Services
	c.AuthService = authService.NewService(authFacade.New(c.Client), c.JWTManager, c.AuthStore)
	c.BookService = bookService.NewService(bookFacade.New(c.Client), c.Querier, c.BookListStore)
	c.CategoryService = categoryService.NewService(categoryFacade.New(c.Client), c.Querier)
	c.UserService = userService.NewService(userFacade.New(c.Client), c.Querier)
	c.DashboardService = dashboardService.NewService(dashboardFacade.New(c.Client), c.Querier)
	c.RecommendationService = recommendationService.NewService(recommendationFacade.New(c.Client), c.Querier)
	c.UploadService = uploadService.NewService(uploadFacade.New(c.Client), c.Querier)

	// 6. Handlers
	c.AuthHandler = authHandler.NewHandler(c.AuthService)
	c.BookHandler = bookHandler.NewHandler(c.BookService)
	c.CategoryHandler = categoryHandler.NewHandler(c.CategoryService)
	c.UserHandler = userHandler.NewHandler(c.UserService)
	c.DashboardHandler = dashboardHandler.NewHandler(c.DashboardService)
	c.RecommendationHandler = recommendationHandler.NewHandler(c.RecommendationService)
	c.UploadHandler = uploadHandler.NewHandler(c.UploadService)

	logger.Info("container initialized", nil)
	return c, nil
}

// Cleanup releases external resources.
func (c *Container) Cleanup() {
	if c.SessionCache != nil {
		if err := c.SessionCache.Close(); err != nil {
			logger.Warn("failed to close redis connection", err)
		}
	}
}
