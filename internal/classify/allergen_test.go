package classify

import (
	"reflect"
	"testing"
)

func TestAllergens(t *testing.T) {
	cases := []struct {
		name        string
		dish        string
		description string
		want        []string
	}{
		{"single keyword", "Pasta con gluten", "", []string{"gluten"}},
		{"negated keyword", "Ensalada sin gluten", "", nil},
		{"negation is local", "Tarta sin sal con gluten", "", []string{"gluten"}},
		{"libre de", "Bizcocho libre de lactosa", "", nil},
		{"no contiene", "Galleta especial", "no contiene gluten", nil},
		{"diacritics folded", "Tataki de atún", "", []string{"fish"}},
		{"description counts", "Plato del día", "merluza a la plancha con gambas", []string{"fish", "crustaceans"}},
		{"multiple tags ordered", "Espaguetis a la carbonara", "pasta con nata y huevo", []string{"gluten", "dairy", "eggs"}},
		{"whole word only", "Pancarta", "", nil},
		{"no match", "Arroz blanco", "", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Allergens(tc.dish, tc.description)
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Allergens(%q, %q) = %v, want %v", tc.dish, tc.description, got, tc.want)
			}
		})
	}
}

func TestAllergensNegatedAndPresentElsewhere(t *testing.T) {
	// One negated mention must not mask a separate positive one.
	got := Allergens("Croquetas", "rebozado de pan, salsa sin gluten")
	if len(got) != 1 || got[0] != "gluten" {
		t.Fatalf("got %v, want [gluten]", got)
	}
}
