package handler

import (
	"net/http"

	"bookhive/internal/dto"
	"bookhive/internal/middleware"
	"bookhive/internal/service"

	"github.com/gin-gonic/gin"
)

type RecommendHandler struct {
	recommendService service.RecommendService
	statsService     service.StatsService
}

func NewRecommendHandler(recommendService service.RecommendService, statsService service.StatsService) *RecommendHandler {
	return &RecommendHandler{
		recommendService: recommendService,
		statsService:     statsService,
	}
}

// RegisterRoutes registers recommendation routes (parent group is authenticated)
func (h *RecommendHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/recommendations", h.List)
}

// List returns author-affinity recommendations for the current user. A user
// whose ratings yield no candidates gets an empty feed, not an error.
// GET /api/recommendations
func (h *RecommendHandler) List(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	books, err := h.recommendService.Recommend(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

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
