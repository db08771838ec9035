package classify

import "strings"

// Uncategorized is the sentinel callers substitute when no keyword
// matches a dish.
const Uncategorized = "uncategorized"

type categoryEntry struct {
	name     string
	keywords []string
}

// First-match-wins: order matters. More specific cuisines sit above the
// broad meat/fish buckets so "pizza de atun" lands in pizzas.
var categoryTable = []categoryEntry{
	{"pizzas", []string{"pizza", "calzone"}},
	{"pasta", []string{"pasta", "espagueti", "spaghetti", "macarrones", "lasana", "tallarines", "ravioli"}},
	{"appetizers", []string{"ensalada", "sopa", "crema", "entrante", "tapa", "croqueta", "gazpacho", "hummus"}},
	{"fish", []string{"pescado", "merluza", "atun", "salmon", "bacalao", "dorada", "lubina", "marisco", "gamba", "calamar", "pulpo", "paella"}},
	{"meats", []string{"carne", "pollo", "ternera", "cerdo", "cordero", "solomillo", "entrecot", "chuleta", "hamburguesa", "costilla"}},
	{"desserts", []string{"tarta", "helado", "flan", "postre", "brownie", "natillas", "fruta"}},
	{"drinks", []string{"agua", "refresco", "cerveza", "vino", "cafe", "zumo", "batido", "bebida"}},
}

// Category assigns a fallback category from dish name and description
// by case- and diacritic-insensitive substring lookup. The second
// return is false when nothing matched.
func Category(name, description string) (string, bool) {
	text := Fold(strings.ToLower(name + " " + description))
	for _, entry := range categoryTable {
		for _, kw := range entry.keywords {
			if strings.Contains(text, kw) {
				return entry.name, true
			}
		}
	}
	return "", false
}
