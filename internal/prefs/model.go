package prefs

// Preferences is one user's dietary snapshot. The ranker only ever
// reads it; mutation happens through the update/history endpoints.
type Preferences struct {
	UserID              string   `json:"user_id"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	FavoriteTags        []string `json:"favorite_tags"`
	OrderHistory        []string `json:"order_history"`
}
