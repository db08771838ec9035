package ratings

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JonathanSerafinCM/OCR/internal/menu"
)

type Handler struct {
	repo     Repository
	menuRepo menu.Repository
}

func NewHandler(repo Repository, menuRepo menu.Repository) *Handler {
	return &Handler{repo: repo, menuRepo: menuRepo}
}

// --------------------------------------------------
// Rate a dish (one rating per user+dish, upsert)
// --------------------------------------------------
func (h *Handler) RateDish(c *gin.Context) {
	dishID := c.Param("id")

	var req struct {
		UserID string `json:"user_id"`
		Rating int    `json:"rating"`
	}
	if err := c.BindJSON(&req); err != nil || req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and rating are required"})
		return
	}

	dish, err := h.menuRepo.GetMenuItem(c.Request.Context(), dishID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if dish == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "dish not found"})
		return
	}

	if err := h.repo.Rate(c.Request.Context(), req.UserID, dishID, req.Rating); err != nil {
		if errors.Is(err, ErrInvalidRating) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "rating saved"})
}

// --------------------------------------------------
// Read a dish's aggregate rating
// --------------------------------------------------
func (h *Handler) GetDishRating(c *gin.Context) {
	dishID := c.Param("id")

	dish, err := h.menuRepo.GetMenuItem(c.Request.Context(), dishID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if dish == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "dish not found"})
		return
	}

	summary, err := h.repo.GetSummary(c.Request.Context(), dishID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
