package api

import (
	"net/http"

	"github.com/whoisanshul/insight-dump/internal/auth/delivery"
	authUsecase "github.com/whoisanshul/insight-dump/internal/auth/usecase"
	entryDelivery "github.com/whoisanshul/insight-dump/internal/entry/delivery"
	entryUsecase "github.com/whoisanshul/insight-dump/internal/entry/usecase"
	insightDelivery "github.com/whoisanshul/insight-dump/internal/insight/delivery"
	insightUsecase "github.com/whoisanshul/insight-dump/internal/insight/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, entryUc entryUsecase.EntryUsecase, categoryUc entryUsecase.CategoryUsecase, insightUc insightUsecase.InsightUsecase) {
	authHandler := delivery.NewAuthHandler(authUc)
	entryHandler := entryDelivery.NewEntryHandler(entryUc, categoryUc)
	insightHandler := insightDelivery.NewInsightHandler(insightUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", delivery.AuthMiddleware(authUc), authHandler.Me)
			auth.PUT("/me", delivery.AuthMiddleware(authUc), authHandler.UpdateMe)
		}

		// AI task routes - categorization is public (no account needed to
		// try it), insight generation reads the caller's own entries
		ai := api.Group("/ai")
		{
			ai.POST("/categorize-entry", entryHandler.CategorizeEntry)
			ai.POST("/generate-insights", delivery.AuthMiddleware(authUc), insightHandler.GenerateInsights)
		}

		// Entry routes (protected)
		entries := api.Group("/entries")
		entries.Use(delivery.AuthMiddleware(authUc))
		{
			entries.GET("", entryHandler.GetEntries)
			entries.POST("", entryHandler.CreateEntry)
			entries.GET("/search", entryHandler.SearchEntries)
			entries.DELETE("/:id", entryHandler.DeleteEntry)
		}

		// Category routes (protected)
		categories := api.Group("/categories")
		categories.Use(delivery.AuthMiddleware(authUc))
		{
			categories.GET("", entryHandler.GetCategories)
			categories.POST("", entryHandler.CreateCategory)
			categories.PUT("/:id", entryHandler.UpdateCategory)
			categories.DELETE("/:id", entryHandler.DeleteCategory)
		}

		// Insight routes (protected)
		insights := api.Group("/insights")
		insights.Use(delivery.AuthMiddleware(authUc))
		{
			insights.GET("", insightHandler.GetInsights)
			insights.DELETE("/:id", insightHandler.DeleteInsight)
		}
	}
}
