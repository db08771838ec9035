package views

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	defaultPopularLimit = 10
	popularWindowDays   = 30
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// --------------------------------------------------
// Record a dish view
// --------------------------------------------------
func (h *Handler) RecordDishView(c *gin.Context) {
	var req struct {
		DishID string `json:"dish_id"`
		UserID string `json:"user_id"`
	}
	if err := c.BindJSON(&req); err != nil || req.DishID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dish_id is required"})
		return
	}

	if err := h.repo.Record(c.Request.Context(), req.DishID, req.UserID, time.Now().UTC()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "view recorded"})
}

// --------------------------------------------------
// Most viewed dishes over the trailing month
// --------------------------------------------------
func (h *Handler) GetPopularDishes(c *gin.Context) {
	limit := defaultPopularLimit
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	popular, err := h.repo.MostViewed(c.Request.Context(), limit, popularWindowDays*24*time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if popular == nil {
		popular = []PopularDish{}
	}

	c.JSON(http.StatusOK, gin.H{"popular": popular})
}
