package llm

// Dish is one structured menu entry as recovered from the
// text-generation service (or, minimally, from the fallback parser).
// Name and Price are always present and valid; Price is "D.DD" or a
// "D.DD-D.DD" range, kept as a string end to end.
type Dish struct {
	Name         string   `json:"name"`
	Price        string   `json:"price"`
	Description  string   `json:"description,omitempty"`
	Category     string   `json:"category,omitempty"`
	Subcategory  string   `json:"subcategory,omitempty"`
	Allergens    []string `json:"allergens,omitempty"`
	SpecialNotes string   `json:"special_notes,omitempty"`
	Discount     string   `json:"discount,omitempty"`
}
