package classify

import "testing"

func TestCategory(t *testing.T) {
	cases := []struct {
		dish        string
		description string
		want        string
	}{
		{"Pizza cuatro quesos", "", "pizzas"},
		{"Espaguetis carbonara", "pasta fresca", "pasta"},
		{"Ensalada mixta", "", "appetizers"},
		{"Merluza a la romana", "", "fish"},
		{"Solomillo de ternera", "", "meats"},
		{"Tarta de queso", "", "desserts"},
		{"Zumo de naranja", "", "drinks"},
		// Diacritics in the input still hit the folded table.
		{"Atún rojo", "", "fish"},
		// Order: the specific cuisine beats the broad ingredient bucket.
		{"Pizza de atún", "", "pizzas"},
	}

	for _, tc := range cases {
		got, ok := Category(tc.dish, tc.description)
		if !ok || got != tc.want {
			t.Fatalf("Category(%q, %q) = %q, %v; want %q", tc.dish, tc.description, got, ok, tc.want)
		}
	}
}

func TestCategoryNoMatch(t *testing.T) {
	got, ok := Category("Menú degustación", "siete pases")
	if ok || got != "" {
		t.Fatalf("expected no match, got %q, %v", got, ok)
	}
}

func TestFold(t *testing.T) {
	if got := Fold("atún añejo crème"); got != "atun anejo creme" {
		t.Fatalf("Fold = %q", got)
	}
}
