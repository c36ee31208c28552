package main

import (
	"log"

	api "github.com/whoisanshul/insight-dump/cmd/api"
	authdomain "github.com/whoisanshul/insight-dump/internal/auth/domain"
	authRepo "github.com/whoisanshul/insight-dump/internal/auth/repository"
	authUsecase "github.com/whoisanshul/insight-dump/internal/auth/usecase"
	entrydomain "github.com/whoisanshul/insight-dump/internal/entry/domain"
	entryRepo "github.com/whoisanshul/insight-dump/internal/entry/repository"
	entryUsecase "github.com/whoisanshul/insight-dump/internal/entry/usecase"
	insightdomain "github.com/whoisanshul/insight-dump/internal/insight/domain"
	insightRepo "github.com/whoisanshul/insight-dump/internal/insight/repository"
	insightUsecase "github.com/whoisanshul/insight-dump/internal/insight/usecase"
	"github.com/whoisanshul/insight-dump/pkg/config"
	"github.com/whoisanshul/insight-dump/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &authdomain.RefreshToken{}, &entrydomain.Category{}, &entrydomain.Entry{}, &insightdomain.Insight{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	entryRepository := entryRepo.NewEntryRepository(db)
	categoryRepository := entryRepo.NewCategoryRepository(db)
	insightRepository := insightRepo.NewInsightRepository(db)

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, cfg)
	categoryUsecaseInstance := entryUsecase.NewCategoryUsecase(categoryRepository, entryRepository)
	entryUsecaseInstance := entryUsecase.NewEntryUsecase(entryRepository, categoryRepository, categoryUsecaseInstance)
	insightUsecaseInstance := insightUsecase.NewInsightUsecase(insightRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, entryUsecaseInstance, categoryUsecaseInstance, insightUsecaseInstance, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
