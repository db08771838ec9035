package classify

import (
	"regexp"
	"strings"
)

// allergenEntry keeps table order stable so results are deterministic.
type allergenEntry struct {
	tag      string
	keywords []*regexp.Regexp
}

// Keywords are stored diacritic-folded and lowercase; input text is
// folded the same way before matching, so "atún" matches "atun".
var allergenTable = buildAllergenTable([]struct {
	tag      string
	keywords []string
}{
	{"gluten", []string{"gluten", "trigo", "harina", "pan", "pasta", "rebozado", "empanado", "cerveza", "wheat", "bread"}},
	{"fish", []string{"pescado", "atun", "salmon", "merluza", "bacalao", "anchoa", "boqueron", "dorada", "lubina", "fish"}},
	{"crustaceans", []string{"gamba", "gambas", "langostino", "cangrejo", "camaron", "bogavante", "cigala", "shrimp", "prawn"}},
	{"molluscs", []string{"mejillon", "mejillones", "almeja", "almejas", "calamar", "calamares", "pulpo", "sepia", "ostra"}},
	{"dairy", []string{"leche", "lactosa", "queso", "nata", "mantequilla", "crema", "lacteo", "lacteos", "yogur", "bechamel", "milk", "cheese", "butter"}},
	{"eggs", []string{"huevo", "huevos", "mayonesa", "tortilla", "alioli", "egg"}},
	{"tree nuts", []string{"nuez", "nueces", "almendra", "almendras", "avellana", "avellanas", "pistacho", "anacardo", "frutos secos", "nuts"}},
	{"soy", []string{"soja", "tofu", "edamame", "soy"}},
	{"mustard", []string{"mostaza", "mustard"}},
	{"celery", []string{"apio", "celery"}},
	{"sesame", []string{"sesamo", "tahini", "sesame"}},
})

// Negation tokens suppress a keyword match when directly adjacent to it
// ("ensalada sin gluten" carries no gluten tag).
var negationTokens = []string{"sin", "no contiene", "no lleva", "libre de", "without", "free of", "does not contain"}

func buildAllergenTable(src []struct {
	tag      string
	keywords []string
}) []allergenEntry {
	table := make([]allergenEntry, 0, len(src))
	for _, e := range src {
		entry := allergenEntry{tag: e.tag}
		for _, kw := range e.keywords {
			entry.keywords = append(entry.keywords, regexp.MustCompile(`\b`+regexp.QuoteMeta(kw)+`\b`))
		}
		table = append(table, entry)
	}
	return table
}

// Allergens infers allergen tags from a dish's name and description.
// Whole-word, case- and diacritic-insensitive keyword lookup; absence
// of any match is a normal empty result, not an error.
func Allergens(name, description string) []string {
	text := Fold(strings.ToLower(name + " " + description))

	tags := make([]string, 0, 2)
	for _, entry := range allergenTable {
		for _, kw := range entry.keywords {
			if hasUnnegatedMatch(text, kw) {
				tags = append(tags, entry.tag)
				break
			}
		}
	}
	return tags
}

func hasUnnegatedMatch(text string, kw *regexp.Regexp) bool {
	for _, loc := range kw.FindAllStringIndex(text, -1) {
		if !negated(text[:loc[0]]) {
			return true
		}
	}
	return false
}

// negated reports whether the text leading up to a keyword ends with a
// negation token directly adjacent to it.
func negated(prefix string) bool {
	prefix = strings.TrimRight(prefix, " ")
	for _, tok := range negationTokens {
		if !strings.HasSuffix(prefix, tok) {
			continue
		}
		cut := len(prefix) - len(tok)
		if cut == 0 || prefix[cut-1] == ' ' {
			return true
		}
	}
	return false
}
