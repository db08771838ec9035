package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// rePrice is the canonical price shape: single value or low-high range.
var rePrice = regexp.MustCompile(`^\d+(\.\d{1,2})?(-\d+(\.\d{1,2})?)?$`)

var rePriceJunk = regexp.MustCompile(`[^0-9.\-]`)

// SchemaError reports which item of the extracted document violated the
// required shape, and why.
type SchemaError struct {
	Reason string
	Item   int
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema violation at item %d: %s", e.Item, e.Reason)
}

// rawDish tolerates the service's loose typing: price may arrive as a
// string or a number, and a missing allergens key is distinguishable
// from an empty list.
type rawDish struct {
	Name         string          `json:"name"`
	Price        json.RawMessage `json:"price"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	Subcategory  string          `json:"subcategory"`
	Allergens    *[]string       `json:"allergens"`
	SpecialNotes string          `json:"special_notes"`
	Discount     string          `json:"discount"`
}

// ValidateDishes checks an extracted JSON document against the required
// dish shape and normalizes field values. With requireEnrichment set,
// description and category must be non-empty and the allergens key must
// be present (an empty list is fine, a missing key is not).
func ValidateDishes(doc []byte, requireEnrichment bool) ([]Dish, error) {
	var raw []rawDish
	if err := json.Unmarshal(doc, &raw); err != nil {
		return nil, &SchemaError{Reason: fmt.Sprintf("not a dish array: %v", err), Item: -1}
	}

	dishes := make([]Dish, 0, len(raw))
	for i, r := range raw {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			return nil, &SchemaError{Reason: "missing or empty name", Item: i}
		}

		price, err := normalizePrice(r.Price)
		if err != nil {
			return nil, &SchemaError{Reason: err.Error(), Item: i}
		}

		d := Dish{
			Name:         name,
			Price:        price,
			Description:  strings.TrimSpace(r.Description),
			Category:     strings.TrimSpace(r.Category),
			Subcategory:  strings.TrimSpace(r.Subcategory),
			SpecialNotes: strings.TrimSpace(r.SpecialNotes),
			Discount:     strings.TrimSpace(r.Discount),
		}

		if requireEnrichment {
			if d.Description == "" {
				return nil, &SchemaError{Reason: "missing description", Item: i}
			}
			if d.Category == "" {
				return nil, &SchemaError{Reason: "missing category", Item: i}
			}
			if r.Allergens == nil {
				return nil, &SchemaError{Reason: "missing allergens list", Item: i}
			}
		}

		if r.Allergens != nil {
			d.Allergens = normalizeAllergens(*r.Allergens)
		}

		dishes = append(dishes, d)
	}

	return dishes, nil
}

func normalizePrice(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", fmt.Errorf("missing price")
	}

	var price string
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &price); err != nil {
			return "", fmt.Errorf("unreadable price: %v", err)
		}
	} else {
		var n float64
		if err := json.Unmarshal(raw, &n); err != nil {
			return "", fmt.Errorf("unreadable price: %v", err)
		}
		price = strconv.FormatFloat(n, 'f', -1, 64)
	}

	// Decimal commas show up when the service echoes European prices.
	if strings.Count(price, ",") == 1 {
		price = strings.Replace(price, ",", ".", 1)
	}
	price = rePriceJunk.ReplaceAllString(strings.TrimSpace(price), "")
	if price == "" {
		return "", fmt.Errorf("empty price")
	}
	if !rePrice.MatchString(price) {
		return "", fmt.Errorf("invalid price %q", price)
	}
	return price, nil
}

func normalizeAllergens(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, a := range in {
		a = strings.ToLower(strings.TrimSpace(a))
		if a == "" || seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}
	return out
}
