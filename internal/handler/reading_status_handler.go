package handler

import (
	"errors"
	"net/http"

	"bookhive/internal/catalog"
	"bookhive/internal/dto"
	"bookhive/internal/middleware"
	"bookhive/internal/service"

	"github.com/gin-gonic/gin"
)

type ReadingStatusHandler struct {
	statusService service.ReadingStatusService
	statsService  service.StatsService
	books         *catalog.Catalog
}

func NewReadingStatusHandler(statusService service.ReadingStatusService, statsService service.StatsService, books *catalog.Catalog) *ReadingStatusHandler {
	return &ReadingStatusHandler{
		statusService: statusService,
		statsService:  statsService,
		books:         books,
	}
}

// RegisterRoutes registers reading status routes (parent group is authenticated)
func (h *ReadingStatusHandler) RegisterRoutes(router *gin.RouterGroup) {
	status := router.Group("/reading-status")
	{
		status.GET("", h.Get)
		status.PUT("", h.Set)
		status.DELETE("", h.Clear)
	}
}

// Get returns what the user is currently reading; "reading" is null when
// nothing is set.
// GET /api/reading-status
func (h *ReadingStatusHandler) Get(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	isbn, err := h.statusService.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := dto.ReadingStatusResponse{}
	if book, found := h.books.Get(isbn); found {
		stats, err := h.statsService.Aggregate(c.Request.Context(), []string{isbn})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		r := dto.FromCatalogBook(book, stats[isbn])
		resp.Reading = &r
	}

	c.JSON(http.StatusOK, resp)
}

// Set replaces the current-reading pointer.
// PUT /api/reading-status
func (h *ReadingStatusHandler) Set(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.SetReadingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.statusService.Set(c.Request.Context(), userID, req.ISBN); err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reading status updated"})
}

// Clear removes the current-reading pointer.
// DELETE /api/reading-status
func (h *ReadingStatusHandler) Clear(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.statusService.Clear(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reading status cleared"})
}
