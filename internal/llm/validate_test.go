package llm

import (
	"errors"
	"testing"
)

func TestValidateDishesAcceptsCanonicalPrices(t *testing.T) {
	doc := `[
		{"name":"Sopa","price":"10.50","description":"d","category":"appetizers","allergens":[]},
		{"name":"Paella","price":"10.50-15.00","description":"d","category":"fish","allergens":["fish"]},
		{"name":"Flan","price":3,"description":"d","category":"desserts","allergens":[]},
		{"name":"Tarta","price":8.5,"description":"d","category":"desserts","allergens":[]}
	]`

	dishes, err := ValidateDishes([]byte(doc), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dishes) != 4 {
		t.Fatalf("expected 4 dishes, got %d", len(dishes))
	}

	wantPrices := []string{"10.50", "10.50-15.00", "3", "8.5"}
	for i, want := range wantPrices {
		if dishes[i].Price != want {
			t.Fatalf("dish %d: price = %q, want %q", i, dishes[i].Price, want)
		}
	}
}

func TestValidateDishesStripsCurrency(t *testing.T) {
	doc := `[{"name":"Sopa","price":"10.50 €","description":"d","category":"c","allergens":[]}]`
	dishes, err := ValidateDishes([]byte(doc), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dishes[0].Price != "10.50" {
		t.Fatalf("price = %q, want 10.50", dishes[0].Price)
	}
}

func TestValidateDishesDecimalComma(t *testing.T) {
	doc := `[{"name":"Sopa","price":"10,50","description":"d","category":"c","allergens":[]}]`
	dishes, err := ValidateDishes([]byte(doc), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dishes[0].Price != "10.50" {
		t.Fatalf("price = %q, want 10.50", dishes[0].Price)
	}
}

func TestValidateDishesViolations(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"missing name", `[{"price":"5.00","description":"d","category":"c","allergens":[]}]`},
		{"blank name", `[{"name":"  ","price":"5.00","description":"d","category":"c","allergens":[]}]`},
		{"missing price", `[{"name":"A","description":"d","category":"c","allergens":[]}]`},
		{"letters in price", `[{"name":"A","price":"cinco","description":"d","category":"c","allergens":[]}]`},
		{"triple decimals", `[{"name":"A","price":"5.000","description":"d","category":"c","allergens":[]}]`},
		{"missing description", `[{"name":"A","price":"5.00","category":"c","allergens":[]}]`},
		{"missing category", `[{"name":"A","price":"5.00","description":"d","allergens":[]}]`},
		{"missing allergens key", `[{"name":"A","price":"5.00","description":"d","category":"c"}]`},
		{"not an array", `{"name":"A"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateDishes([]byte(tc.doc), true)
			var serr *SchemaError
			if !errors.As(err, &serr) {
				t.Fatalf("expected SchemaError, got %v", err)
			}
		})
	}
}

func TestValidateDishesEmptyAllergensIsNotMissing(t *testing.T) {
	doc := `[{"name":"A","price":"5.00","description":"d","category":"c","allergens":[]}]`
	dishes, err := ValidateDishes([]byte(doc), true)
	if err != nil {
		t.Fatalf("empty allergens list must be accepted: %v", err)
	}
	if dishes[0].Allergens == nil || len(dishes[0].Allergens) != 0 {
		t.Fatalf("expected empty allergen set, got %#v", dishes[0].Allergens)
	}
}

func TestValidateDishesWithoutEnrichment(t *testing.T) {
	doc := `[{"name":"A","price":"5.00"}]`
	dishes, err := ValidateDishes([]byte(doc), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dishes[0].Description != "" || dishes[0].Category != "" {
		t.Fatalf("expected bare dish, got %+v", dishes[0])
	}
	if dishes[0].Allergens != nil {
		t.Fatalf("missing allergens key should stay nil, got %#v", dishes[0].Allergens)
	}
}

func TestValidateDishesNormalizesAllergens(t *testing.T) {
	doc := `[{"name":"A","price":"5.00","description":"d","category":"c","allergens":[" Gluten","gluten","DAIRY",""]}]`
	dishes, err := ValidateDishes([]byte(doc), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := dishes[0].Allergens
	if len(got) != 2 || got[0] != "gluten" || got[1] != "dairy" {
		t.Fatalf("got %#v, want [gluten dairy]", got)
	}
}
