package handler

import (
	"net/http"
	"strconv"

	"bookhive/internal/catalog"
	"bookhive/internal/dto"
	"bookhive/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsService service.StatsService
	books        *catalog.Catalog
}

func NewStatsHandler(statsService service.StatsService, books *catalog.Catalog) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		books:        books,
	}
}

// RegisterRoutes registers public stats routes
func (h *StatsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/top-rated", h.TopRated)
	router.GET("/books/:isbn/rating", h.BookRating)
}

// TopRated returns the globally ranked feed.
// GET /api/top-rated?min_count=1&limit=10
func (h *StatsHandler) TopRated(c *gin.Context) {
	minCount, _ := strconv.Atoi(c.DefaultQuery("min_count", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if minCount < 1 {
		minCount = service.DefaultMinRatingCount
	}
	if limit < 1 || limit > 100 {
		limit = service.DefaultTopRatedLimit
	}

	isbns, err := h.statsService.TopRated(c.Request.Context(), minCount, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	stats, err := h.statsService.Aggregate(c.Request.Context(), isbns)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]dto.BookResponse, 0, len(isbns))
	for _, isbn := range isbns {
		if book, ok := h.books.Get(isbn); ok {
			responses = append(responses, dto.FromCatalogBook(book, stats[isbn]))
		}
	}

	c.JSON(http.StatusOK, dto.NewBookListResponse(responses))
}

// BookRating returns community stats for a single book. A book nobody rated
// reports zero stats rather than 404ing, as long as it exists in the catalog.
// GET /api/books/:isbn/rating
func (h *StatsHandler) BookRating(c *gin.Context) {
	isbn := c.Param("isbn")
	if !h.books.Has(isbn) {
		c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
		return
	}

	stats, err := h.statsService.Aggregate(c.Request.Context(), []string{isbn})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	stat := stats[isbn]
	c.JSON(http.StatusOK, gin.H{
		"isbn":           isbn,
		"sum_ratings":    stat.Sum,
		"rating_count":   stat.Count,
		"average_rating": stat.Average,
	})
}
