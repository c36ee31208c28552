package delivery

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/whoisanshul/insight-dump/internal/entry/dto"
	"github.com/whoisanshul/insight-dump/internal/entry/usecase"

	"github.com/gin-gonic/gin"
)

// EntryHandler handles entry and category HTTP requests
type EntryHandler struct {
	entryUsecase    usecase.EntryUsecase
	categoryUsecase usecase.CategoryUsecase
}

// NewEntryHandler creates a new EntryHandler
func NewEntryHandler(entryUsecase usecase.EntryUsecase, categoryUsecase usecase.CategoryUsecase) *EntryHandler {
	return &EntryHandler{
		entryUsecase:    entryUsecase,
		categoryUsecase: categoryUsecase,
	}
}

// CategorizeEntry runs a single AI categorization call without persistence
// POST /api/ai/categorize-entry
func (h *EntryHandler) CategorizeEntry(c *gin.Context) {
	var req dto.CategorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content is required"})
		return
	}

	result, err := h.entryUsecase.Categorize(c.Request.Context(), req.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.CategorizeResponse{
		CategoryName: result.CategoryName,
		Reasoning:    result.Reasoning,
	})
}

// CreateEntry logs a new thought through the categorization pipeline
// POST /api/entries
func (h *EntryHandler) CreateEntry(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content is required"})
		return
	}

	entry, err := h.entryUsecase.CreateEntry(c.Request.Context(), userID, req.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GetEntries returns the user's entries, newest first
// GET /api/entries?limit=50
func (h *EntryHandler) GetEntries(c *gin.Context) {
	userID := c.GetString("userID")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	entries, err := h.entryUsecase.ListEntries(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// SearchEntries fuzzy-searches the user's entries
// GET /api/entries/search?q=gym
func (h *EntryHandler) SearchEntries(c *gin.Context) {
	userID := c.GetString("userID")

	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	entries, err := h.entryUsecase.SearchEntries(userID, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// DeleteEntry deletes one of the user's entries
// DELETE /api/entries/:id
func (h *EntryHandler) DeleteEntry(c *gin.Context) {
	userID := c.GetString("userID")
	entryID := c.Param("id")

	if err := h.entryUsecase.DeleteEntry(userID, entryID); err != nil {
		writeOwnershipError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "entry deleted"})
}

// GetCategories lists the user's categories with entry counts
// GET /api/categories
func (h *EntryHandler) GetCategories(c *gin.Context) {
	userID := c.GetString("userID")

	categories, err := h.categoryUsecase.ListCategories(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// CreateCategory creates a category manually
// POST /api/categories
func (h *EntryHandler) CreateCategory(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.categoryUsecase.CreateCategory(userID, req.Name, req.Description, req.Color)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, category)
}

// UpdateCategory updates a category
// PUT /api/categories/:id
func (h *EntryHandler) UpdateCategory(c *gin.Context) {
	userID := c.GetString("userID")
	categoryID := c.Param("id")

	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.categoryUsecase.UpdateCategory(userID, categoryID, req.Name, req.Description, req.Color)
	if err != nil {
		writeOwnershipError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// DeleteCategory deletes a category
// DELETE /api/categories/:id
func (h *EntryHandler) DeleteCategory(c *gin.Context) {
	userID := c.GetString("userID")
	categoryID := c.Param("id")

	if err := h.categoryUsecase.DeleteCategory(userID, categoryID); err != nil {
		writeOwnershipError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}

// writeOwnershipError maps the usecase's not-found/unauthorized errors
func writeOwnershipError(c *gin.Context, err error) {
	switch {
	case strings.HasSuffix(err.Error(), "not found"):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case err.Error() == "unauthorized":
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
