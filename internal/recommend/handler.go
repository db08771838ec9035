package recommend

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JonathanSerafinCM/OCR/internal/menu"
	"github.com/JonathanSerafinCM/OCR/internal/prefs"
)

type Handler struct {
	menuRepo  menu.Repository
	prefsRepo prefs.Repository
}

func NewHandler(menuRepo menu.Repository, prefsRepo prefs.Repository) *Handler {
	return &Handler{menuRepo: menuRepo, prefsRepo: prefsRepo}
}

// GetRecommendations returns the whole menu ranked for one user.
// Without a user_id (or without a stored snapshot) the menu comes back
// in stored order with default ranking fields.
func (h *Handler) GetRecommendations(c *gin.Context) {
	items, err := h.menuRepo.QueryMenuItems(c.Request.Context(), menu.Filter{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var snapshot *prefs.Preferences
	if userID := c.Query("user_id"); userID != "" {
		snapshot, err = h.prefsRepo.Get(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	ranked := Rank(items, snapshot)
	c.JSON(http.StatusOK, gin.H{"items": ranked, "count": len(ranked)})
}
