package handler

import (
	"errors"
	"net/http"

	"bookhive/internal/dto"
	"bookhive/internal/middleware"
	"bookhive/internal/service"

	"github.com/gin-gonic/gin"
)

type InterestHandler struct {
	ratingService service.RatingService
}

func NewInterestHandler(ratingService service.RatingService) *InterestHandler {
	return &InterestHandler{ratingService: ratingService}
}

// RegisterRoutes registers interest routes (parent group is authenticated)
func (h *InterestHandler) RegisterRoutes(router *gin.RouterGroup) {
	interests := router.Group("/interests")
	{
		interests.GET("", h.List)                     // Interest set with community stats
		interests.POST("", h.Add)                     // Add at the default score
		interests.PUT("/:isbn/rating", h.SetRating)   // Adjust the score
		interests.DELETE("/:isbn", h.Remove)          // Drop from interests
	}
}

// List returns the user's interests resolved through the catalog.
// GET /api/interests
func (h *InterestHandler) List(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	interests, err := h.ratingService.InterestsWithStats(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.NewBookListResponse(interests))
}

// Add puts a catalog book into the user's interests with the default score.
// POST /api/interests
func (h *InterestHandler) Add(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.AddInterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.ratingService.AddInterest(c.Request.Context(), userID, req.ISBN); err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Book added to interests"})
}

// SetRating adjusts the user's score for an interest.
// PUT /api/interests/:isbn/rating
func (h *InterestHandler) SetRating(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.SetRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.ratingService.SetRating(c.Request.Context(), userID, c.Param("isbn"), req.Score)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidScore):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrBookNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rating updated"})
}

// Remove drops a book from the user's interests. Removing a book that is not
// in the set succeeds quietly.
// DELETE /api/interests/:isbn
func (h *InterestHandler) Remove(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.ratingService.RemoveRating(c.Request.Context(), userID, c.Param("isbn")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Book removed from interests"})
}
