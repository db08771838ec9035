package menu

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NoDescription is the sentinel stored when neither the structuring
// service nor the menu text provided one.
const NoDescription = "no description"

// Item is a persisted dish record. Immutable once stored; price is kept
// as the canonical string ("12.50" or "10.50-15.00") with numeric
// bounds derived at insert for range filtering.
type Item struct {
	ID           string    `json:"id"`
	DishName     string    `json:"dish_name"`
	Price        string    `json:"price"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Subcategory  string    `json:"subcategory,omitempty"`
	Allergens    []string  `json:"allergens"`
	SpecialNotes string    `json:"special_notes,omitempty"`
	Discount     string    `json:"discount,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Filter selects persisted items. A stored price range matches a filter
// window when the two intervals overlap; items are excluded when their
// allergen set intersects ExcludeAllergens.
type Filter struct {
	Category         string   `json:"category"`
	MinPrice         *float64 `json:"min_price"`
	MaxPrice         *float64 `json:"max_price"`
	ExcludeAllergens []string `json:"exclude_allergens"`
}

// ProcessResult is what the pipeline hands back to its caller. RawText
// is only populated outside production for diagnostics.
type ProcessResult struct {
	Count   int    `json:"count"`
	Items   []Item `json:"items"`
	RawText string `json:"raw_text,omitempty"`
}

// PriceBounds parses a canonical price string into its numeric low and
// high bounds (equal for a single value).
func PriceBounds(price string) (float64, float64, error) {
	lo, hi, found := strings.Cut(price, "-")
	low, err := strconv.ParseFloat(lo, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid price %q", price)
	}
	if !found {
		return low, low, nil
	}
	high, err := strconv.ParseFloat(hi, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid price %q", price)
	}
	return low, high, nil
}
