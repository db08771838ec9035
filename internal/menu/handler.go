package menu

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/JonathanSerafinCM/OCR/internal/ocr"
)

type Handler struct {
	service *Service
	repo    Repository
}

func NewHandler(service *Service, repo Repository) *Handler {
	return &Handler{service: service, repo: repo}
}

// --------------------------------------------------
// Process a menu document through the pipeline
// --------------------------------------------------
func (h *Handler) ProcessMenu(c *gin.Context) {
	var req struct {
		FilePath string `json:"file_path"`
	}
	if err := c.BindJSON(&req); err != nil || req.FilePath == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_path is required"})
		return
	}

	result, err := h.service.ProcessFile(c.Request.Context(), req.FilePath)
	if err != nil {
		switch {
		case errors.Is(err, ocr.ErrConversionFailed),
			errors.Is(err, ocr.ErrEmptyText),
			errors.Is(err, ErrNoDishes):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}

// --------------------------------------------------
// List menu items (filters via query string)
// --------------------------------------------------
func (h *Handler) GetMenuItems(c *gin.Context) {
	f := Filter{Category: c.Query("category")}

	if v := c.Query("min_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_price"})
			return
		}
		f.MinPrice = &p
	}
	if v := c.Query("max_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max_price"})
			return
		}
		f.MaxPrice = &p
	}
	if v := c.Query("exclude_allergens"); v != "" {
		for _, a := range strings.Split(v, ",") {
			if a = strings.TrimSpace(a); a != "" {
				f.ExcludeAllergens = append(f.ExcludeAllergens, a)
			}
		}
	}

	items, err := h.repo.QueryMenuItems(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if items == nil {
		items = []Item{}
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

// --------------------------------------------------
// Filter menu items (filters via JSON body)
// --------------------------------------------------
func (h *Handler) FilterMenuItems(c *gin.Context) {
	var f Filter
	if err := c.BindJSON(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter"})
		return
	}

	items, err := h.repo.QueryMenuItems(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if items == nil {
		items = []Item{}
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}
