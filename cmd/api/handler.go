package api

import (
	"log"

	authUsecase "github.com/whoisanshul/insight-dump/internal/auth/usecase"
	entryUsecasePkg "github.com/whoisanshul/insight-dump/internal/entry/usecase"
	insightUsecasePkg "github.com/whoisanshul/insight-dump/internal/insight/usecase"
	"github.com/whoisanshul/insight-dump/pkg/ai"
	"github.com/whoisanshul/insight-dump/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase     authUsecase.AuthUsecase
	entryUsecase    entryUsecasePkg.EntryUsecase
	categoryUsecase entryUsecasePkg.CategoryUsecase
	insightUsecase  insightUsecasePkg.InsightUsecase
	config          *config.Config
}

// entryFetcherAdapter adapts EntryUsecase to InsightUsecase.EntryFetcher
type entryFetcherAdapter struct {
	entryUc entryUsecasePkg.EntryUsecase
}

func (a *entryFetcherAdapter) RecentEntries(userID string, limit int) ([]ai.EntryContext, error) {
	return a.entryUc.RecentEntryContexts(userID, limit)
}

func NewHandler(authUc authUsecase.AuthUsecase, entryUc entryUsecasePkg.EntryUsecase, categoryUc entryUsecasePkg.CategoryUsecase, insightUc insightUsecasePkg.InsightUsecase, cfg *config.Config) *Handler {
	// Select the AI provider from the configured credentials.
	// Missing keys are not fatal at startup; the AI endpoints surface the error.
	chatClient, err := ai.NewChatClient(ai.Config{
		OpenAIAPIKey: cfg.OpenAIAPIKey,
		ClaudeAPIKey: cfg.ClaudeAPIKey,
		OpenAIModel:  cfg.OpenAIModel,
		ClaudeModel:  cfg.ClaudeModel,
	})
	if err != nil {
		log.Printf("Warning: Failed to initialize AI client: %v", err)
	} else {
		log.Printf("AI client initialized with provider: %s", chatClient.Provider())
		entryUc.SetChatClient(chatClient)
		insightUc.SetChatClient(chatClient)
	}

	insightUc.SetEntryFetcher(&entryFetcherAdapter{entryUc: entryUc})

	return &Handler{
		authUsecase:     authUc,
		entryUsecase:    entryUc,
		categoryUsecase: categoryUc,
		insightUsecase:  insightUc,
		config:          cfg,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Setup routes
	SetupRoutes(r, h.authUsecase, h.entryUsecase, h.categoryUsecase, h.insightUsecase)

	return r.Run(addr)
}
