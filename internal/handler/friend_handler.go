package handler

import (
	"net/http"
	"strconv"

	"bookhive/internal/catalog"
	"bookhive/internal/dto"
	"bookhive/internal/service"

	"github.com/gin-gonic/gin"
)

type FriendHandler struct {
	ratingService service.RatingService
	statusService service.ReadingStatusService
	statsService  service.StatsService
	books         *catalog.Catalog
}

func NewFriendHandler(ratingService service.RatingService, statusService service.ReadingStatusService, statsService service.StatsService, books *catalog.Catalog) *FriendHandler {
	return &FriendHandler{
		ratingService: ratingService,
		statusService: statusService,
		statsService:  statsService,
		books:         books,
	}
}

// RegisterRoutes registers friend routes (parent group is authenticated)
func (h *FriendHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/friends/:user_id", h.Profile)
}

// Profile is the read-only view of another reader: current book and
// interests. A friend id nobody has logged in with yields empty fields.
// GET /api/friends/:user_id
func (h *FriendHandler) Profile(c *gin.Context) {
	friendID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "friend's user id must be a numeric value"})
		return
	}

	resp := dto.FriendProfileResponse{UserID: friendID, Interests: []dto.BookResponse{}}

	isbn, err := h.statusService.Get(c.Request.Context(), friendID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if book, ok := h.books.Get(isbn); ok {
		stats, err := h.statsService.Aggregate(c.Request.Context(), []string{isbn})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		r := dto.FromCatalogBook(book, stats[isbn])
		resp.Reading = &r
	}

	interests, err := h.ratingService.InterestsWithStats(c.Request.Context(), friendID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if interests != nil {
		resp.Interests = interests
	}

	c.JSON(http.StatusOK, resp)
}
