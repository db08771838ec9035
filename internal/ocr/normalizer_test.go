package ocr

import (
	"strings"
	"testing"
)

func TestNormalizePriceCanonicalization(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			"comma decimal with currency",
			"Sopa de tomate 5,00 €",
			"Sopa de tomate 5.00",
		},
		{
			"euros word",
			"Tortilla de patatas 4,50 euros",
			"Tortilla de patatas 4.50",
		},
		{
			"price boundary breaks dishes",
			"Sopa de tomate 5,00 € Ensalada César 8.50",
			"Sopa de tomate 5.00\nEnsalada César 8.50",
		},
		{
			"dash range",
			"Paella mixta 10,50-15,00",
			"Paella mixta 10.50-15.00",
		},
		{
			"slash range",
			"Vino de la casa 3,50/4,50",
			"Vino de la casa 3.50-4.50",
		},
		{
			"range then next dish",
			"Paella 10,50-15,00 Ensalada 8,00",
			"Paella 10.50-15.00\nEnsalada 8.00",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.in)
			if got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeCleanup(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			"control characters stripped",
			"Caf\x03é con leche 1,50",
			"Café con leche 1.50",
		},
		{
			"box drawing stripped",
			"─── Pollo asado 9,00 ───",
			"Pollo asado 9.00",
		},
		{
			"underscores become spaces",
			"Pollo__asado 9,99",
			"Pollo asado 9.99",
		},
		{
			"word slash becomes space",
			"Pan/tostada 2,00",
			"Pan tostada 2.00",
		},
		{
			"stopwords dropped",
			"Tortilla 4,50 IVA incluido Bravas 6,00",
			"Tortilla 4.50\nBravas 6.00",
		},
		{
			"whitespace collapsed",
			"Gazpacho   andaluz \t 6,50",
			"Gazpacho andaluz 6.50",
		},
		{
			"empty input",
			"",
			"",
		},
		{
			"only garbage",
			"\x01\x02 ###",
			"",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.in)
			if got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Sopa de tomate 5,00 € Ensalada César 8.50",
		"Paella 10,50-15,00 euros Flan 3,00",
		"*ENTRANTES* Croquetas 6,50 *POSTRES* Tarta 4,00",
		"Tortilla 4,50 IVA incluido Bravas 6,00",
		"linea sin precio alguno",
		"\x01\x02 ruido ### 12,34",
		"Menú_del/día \\ 9,90 € Café 1,20",
		"precio suelto 7.00 2 unidades 3.00",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("Normalize not idempotent for %q:\n once=%q\ntwice=%q", in, once, twice)
		}
	}
}

func TestNormalizeKeepsCategoryMarkers(t *testing.T) {
	got := Normalize("*ENTRANTES* Croquetas 6,50")
	if !strings.Contains(got, "*ENTRANTES*") {
		t.Fatalf("category marker lost: %q", got)
	}
}
