package recommend

import (
	"sort"
	"strings"

	"github.com/JonathanSerafinCM/OCR/internal/classify"
	"github.com/JonathanSerafinCM/OCR/internal/menu"
	"github.com/JonathanSerafinCM/OCR/internal/prefs"
)

const (
	favoriteCategoryBonus = 5
	orderHistoryBonus     = 2
)

// RankedItem is a menu item with per-user ranking fields. Recomputed on
// every request, never persisted.
type RankedItem struct {
	menu.Item
	HasAllergenConflict bool `json:"has_allergen_conflict"`
	IsFavoriteCategory  bool `json:"is_favorite_category"`
	RecommendationScore int  `json:"recommendation_score"`
}

// categorySynonyms normalizes the many names menus and users give the
// same category before comparison.
var categorySynonyms = map[string]string{
	"starter":     "appetizers",
	"starters":    "appetizers",
	"appetizer":   "appetizers",
	"entrante":    "appetizers",
	"entrantes":   "appetizers",
	"ensaladas":   "appetizers",
	"main":        "meats",
	"mains":       "meats",
	"main course": "meats",
	"principal":   "meats",
	"principales": "meats",
	"carnes":      "meats",
	"meat":        "meats",
	"pescados":    "fish",
	"seafood":     "fish",
	"mariscos":    "fish",
	"pastas":      "pasta",
	"pizza":       "pizzas",
	"postre":      "desserts",
	"postres":     "desserts",
	"dessert":     "desserts",
	"bebida":      "drinks",
	"bebidas":     "drinks",
	"drink":       "drinks",
}

// restrictionEquivalence expands a user-facing restriction label into
// the internal allergen tags it should match.
var restrictionEquivalence = map[string][]string{
	"seafood":      {"fish", "crustaceans", "molluscs"},
	"shellfish":    {"crustaceans", "molluscs"},
	"marisco":      {"fish", "crustaceans", "molluscs"},
	"mariscos":     {"fish", "crustaceans", "molluscs"},
	"lactose":      {"dairy"},
	"lactosa":      {"dairy"},
	"milk":         {"dairy"},
	"leche":        {"dairy"},
	"nuts":         {"tree nuts"},
	"frutos secos": {"tree nuts"},
	"egg":          {"eggs"},
	"huevo":        {"eggs"},
	"soja":         {"soy"},
}

// Rank scores every item against the user's snapshot and orders the
// menu by category affinity first, numeric score second. Stable on
// ties. A nil snapshot is an identity pass-through.
func Rank(items []menu.Item, p *prefs.Preferences) []RankedItem {
	ranked := make([]RankedItem, len(items))
	for i, it := range items {
		ranked[i] = RankedItem{Item: it}
	}
	if p == nil {
		return ranked
	}

	favorites := make(map[string]bool, len(p.FavoriteTags))
	for _, tag := range p.FavoriteTags {
		favorites[normalizeCategory(tag)] = true
	}

	restricted := make(map[string]bool)
	for _, r := range p.DietaryRestrictions {
		for _, tag := range expandRestriction(r) {
			restricted[tag] = true
		}
	}

	for i := range ranked {
		it := &ranked[i]

		for _, a := range it.Allergens {
			if restricted[strings.ToLower(strings.TrimSpace(a))] {
				it.HasAllergenConflict = true
				break
			}
		}

		if favorites[normalizeCategory(it.Category)] {
			it.IsFavoriteCategory = true
			it.RecommendationScore += favoriteCategoryBonus
		}
		for _, name := range p.OrderHistory {
			if strings.EqualFold(strings.TrimSpace(name), it.DishName) {
				it.RecommendationScore += orderHistoryBonus
				break
			}
		}
	}

	// Category affinity outranks the raw score; score breaks ties
	// within the favorite and non-favorite groups.
	sort.SliceStable(ranked, func(a, b int) bool {
		if ranked[a].IsFavoriteCategory != ranked[b].IsFavoriteCategory {
			return ranked[a].IsFavoriteCategory
		}
		return ranked[a].RecommendationScore > ranked[b].RecommendationScore
	})

	return ranked
}

func normalizeCategory(s string) string {
	s = classify.Fold(strings.ToLower(strings.TrimSpace(s)))
	if canonical, ok := categorySynonyms[s]; ok {
		return canonical
	}
	return s
}

func expandRestriction(r string) []string {
	r = classify.Fold(strings.ToLower(strings.TrimSpace(r)))
	if tags, ok := restrictionEquivalence[r]; ok {
		return tags
	}
	return []string{r}
}
