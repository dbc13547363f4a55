package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookadmin-backend/internal/shared/middleware"
	"bookadmin-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupBookRoutes(v1, c)
		setupCategoryRoutes(v1, c)
		setupUserRoutes(v1, c)
		setupDashboardRoutes(v1, c)
		setupSettingsRoutes(v1, c)
		setupUploadRoutes(v1, c)
	}

	return router
}

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.AuthHandler.Login)
		auth.POST("/logout", middleware.Auth(c.JWTManager), c.AuthHandler.Logout)
		auth.GET("/me", middleware.Auth(c.JWTManager), c.AuthHandler.Me)
		auth.PATCH("/me", middleware.Auth(c.JWTManager), c.AuthHandler.UpdateProfile)
	}
}

func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	books := v1.Group("/books")
	books.Use(middleware.Auth(c.JWTManager))
	{
		books.GET("", c.BookHandler.ListBooks)
		books.GET("/:id", c.BookHandler.GetBook)
		books.POST("", c.BookHandler.CreateBook)
		books.PUT("/:id", c.BookHandler.UpdateBook)
		books.DELETE("/:id", c.BookHandler.DeleteBook)
		books.POST("/batch-delete", c.BookHandler.BatchDeleteBooks)
		books.POST("/restore", c.BookHandler.RestoreBooks)
	}
}

func setupCategoryRoutes(v1 *gin.RouterGroup, c *container.Container) {
	categories := v1.Group("/categories")
	categories.Use(middleware.Auth(c.JWTManager))
	{
		categories.GET("", c.CategoryHandler.ListCategories)
		categories.GET("/all", c.CategoryHandler.ListAllCategories)
		categories.GET("/:id", c.CategoryHandler.GetCategory)
		categories.POST("", c.CategoryHandler.CreateCategory)
		categories.PUT("/:id", c.CategoryHandler.UpdateCategory)
		categories.DELETE("/:id", c.CategoryHandler.DeleteCategory)
	}
}

func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	// User management is admin-only.
	users := v1.Group("/users")
	users.Use(middleware.Auth(c.JWTManager), middleware.AdminOnly())
	{
		users.GET("", c.UserHandler.ListUsers)
		users.GET("/:id", c.UserHandler.GetUser)
		users.PATCH("/:id", c.UserHandler.UpdateUser)
		users.POST("/:id/toggle-status", c.UserHandler.ToggleUserStatus)
		users.DELETE("/:id", c.UserHandler.DeleteUser)
		users.POST("/batch-delete", c.UserHandler.BatchDeleteUsers)
		users.POST("/restore", c.UserHandler.RestoreUsers)
		users.PATCH("/:id/role", c.UserHandler.ChangeUserRole)
	}
}

func setupDashboardRoutes(v1 *gin.RouterGroup, c *container.Container) {
	dashboard := v1.Group("/dashboard")
	dashboard.Use(middleware.Auth(c.JWTManager))
	{
		dashboard.GET("/stats", c.DashboardHandler.GetStats)
	}
}

func setupSettingsRoutes(v1 *gin.RouterGroup, c *container.Container) {
	settings := v1.Group("/settings")
	settings.Use(middleware.Auth(c.JWTManager))
	{
		settings.GET("/recommendations", c.RecommendationHandler.GetSettings)
		settings.PUT("/recommendations", c.RecommendationHandler.UpdateSettings)
	}
}

func setupUploadRoutes(v1 *gin.RouterGroup, c *container.Container) {
	uploads := v1.Group("/uploads")
	uploads.Use(middleware.Auth(c.JWTManager))
	{
		uploads.POST("", c.UploadHandler.UploadFile)
		uploads.GET("", c.UploadHandler.ListFiles)
		uploads.DELETE("/:id", c.UploadHandler.DeleteFile)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sessionStore := "memory"
		if c.SessionCache != nil {
			if err := c.SessionCache.Ping(ctx.Request.Context()); err == nil {
				sessionStore = "redis"
			} else {
				sessionStore = "redis (unreachable)"
			}
		}
		ctx.JSON(http.StatusOK, gin.H{
			"status":       "ok",
			"version":      c.Config.App.Version,
			"environment":  c.Config.App.Environment,
			"sessionStore": sessionStore,
		})
	}
}
