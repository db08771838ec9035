package llm

import (
	"regexp"
	"strings"
)

// reFallbackLine captures a dish name terminated by the first canonical
// D.DD price on the line. Deliberately conservative: this is the last
// line of defense and a false positive is worse than a missed dish.
var reFallbackLine = regexp.MustCompile(`^(.+?)\s*(\d+\.\d{2})`)

// FallbackParse extracts bare (name, price) pairs from normalized chunk
// text without any remote dependency. Total: any input yields a
// (possibly empty) list. Description and category are left for the
// classification pass.
func FallbackParse(text string) []Dish {
	var dishes []Dish
	for _, line := range strings.Split(text, "\n") {
		m := reFallbackLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := strings.Trim(strings.TrimSpace(m[1]), "-.,*")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		dishes = append(dishes, Dish{Name: name, Price: m[2]})
	}
	return dishes
}
