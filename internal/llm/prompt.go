package llm

import "fmt"

// SystemJSONOnly is the fixed system instruction used on every
// structuring attempt.
const SystemJSONOnly = "Respond with JSON only. No prose, no markdown, no explanations."

// attemptVariations progressively tighten extraction discipline.
// Repeating an identical prompt against a non-deterministic service
// wastes attempts, so each retry changes the instructions instead.
var attemptVariations = []string{
	"",
	"IMPORTANT: each price belongs to exactly one dish. A price terminates a dish; the text after a price (until the next price) is the NEXT dish's name and description. Re-check every price boundary before answering.",
	"IMPORTANT: be strict. If you are not certain a fragment is a real dish with a real price, OMIT it entirely. Fewer correct dishes are better than guessed ones.",
}

// BuildStructurePrompt renders the structuring instructions for one
// category chunk. attempt selects the retry variation (0-based, clamped).
func BuildStructurePrompt(category, content string, attempt int) string {
	if attempt < 0 {
		attempt = 0
	}
	if attempt >= len(attemptVariations) {
		attempt = len(attemptVariations) - 1
	}

	variation := ""
	if attemptVariations[attempt] != "" {
		variation = attemptVariations[attempt] + "\n\n"
	}

	return fmt.Sprintf(`You are a data extraction engine for restaurant menus.

Your task:
- Convert the menu text below into STRICT JSON.
- Output MUST be a JSON array and nothing else.
- Every dish MUST have "name" and "price".
- "price" is a string: "12.50" for a single price, "10.50-15.00" for a range. No currency symbols.
- Every dish MUST have a non-empty "description" (write a short one if the menu has none) and a non-empty "category".
- Every dish MUST have "allergens": a JSON array of allergen tags, [] when none apply.
- Optional fields when present in the text: "subcategory", "special_notes", "discount".

%sIf you cannot extract any dish, return exactly: []

Required JSON schema:
[
  {
    "name": "string",
    "price": "string",
    "description": "string",
    "category": "string",
    "allergens": ["string"],
    "subcategory": "string",
    "special_notes": "string",
    "discount": "string"
  }
]

Menu category: %s

Menu text:
%s`, variation, category, content)
}
