package prefs

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// --------------------------------------------------
// Read current snapshot
// --------------------------------------------------
func (h *Handler) GetPreferences(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	p, err := h.repo.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if p == nil {
		p = &Preferences{UserID: userID}
	}

	c.JSON(http.StatusOK, p)
}

// --------------------------------------------------
// Replace snapshot
// --------------------------------------------------
func (h *Handler) UpdatePreferences(c *gin.Context) {
	var req Preferences
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	if err := h.repo.Upsert(c.Request.Context(), &req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "preferences updated"})
}

// --------------------------------------------------
// Append to order history (idempotent)
// --------------------------------------------------
func (h *Handler) AppendOrderHistory(c *gin.Context) {
	var req struct {
		UserID   string `json:"user_id"`
		DishName string `json:"dish_name"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.UserID == "" || req.DishName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and dish_name are required"})
		return
	}

	if err := h.repo.AppendOrderHistory(c.Request.Context(), req.UserID, req.DishName); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "order history updated"})
}
