package handler

import (
	"net/http"
	"strconv"

	"bookhive/internal/catalog"
	"bookhive/internal/dto"
	"bookhive/internal/service"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	books        *catalog.Catalog
	statsService service.StatsService
}

func NewCatalogHandler(books *catalog.Catalog, statsService service.StatsService) *CatalogHandler {
	return &CatalogHandler{
		books:        books,
		statsService: statsService,
	}
}

// RegisterRoutes registers public catalog routes
func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	cat := router.Group("/catalog")
	{
		cat.GET("/search", h.Search)
		cat.GET("/:isbn", h.Get)
	}
}

// Search matches title or author case-insensitively. An empty or unmatched
// query returns an empty list.
// GET /api/catalog/search?q=tolkien&limit=20
func (h *CatalogHandler) Search(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	books := h.books.Search(c.Query("q"), limit)

	isbns := make([]string, 0, len(books))
	for _, b := range books {
		isbns = append(isbns, b.ISBN)
	}
	stats, err := h.statsService.Aggregate(c.Request.Context(), isbns)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]dto.BookResponse, 0, len(books))
	for _, b := range books {
		responses = append(responses, dto.FromCatalogBook(b, stats[b.ISBN]))
	}

	c.JSON(http.StatusOK, dto.NewBookListResponse(responses))
}

// Get returns one catalog record with its community stats.
// GET /api/catalog/:isbn
func (h *CatalogHandler) Get(c *gin.Context) {
	isbn := c.Param("isbn")
	book, ok := h.books.Get(isbn)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
		return
	}

	stats, err := h.statsService.Aggregate(c.Request.Context(), []string{isbn})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromCatalogBook(book, stats[isbn]))
}
