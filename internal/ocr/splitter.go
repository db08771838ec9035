package ocr

import (
	"regexp"
	"strings"
)

// DefaultCategory names the chunk that precedes any category marker, or
// the whole document when no marker is present.
const DefaultCategory = "general"

// Chunk is a category-scoped slice of normalized menu text. Each chunk
// is submitted to the structuring step as one unit.
type Chunk struct {
	Category string
	Content  string
}

var reCategoryMarker = regexp.MustCompile(`\*\s*([^*\n]+?)\s*\*`)

// SplitCategories splits normalized text on *NAME* markers. Everything
// between two markers belongs to the preceding marker's category; text
// before the first marker falls under DefaultCategory. Never fails: a
// document without markers yields exactly one chunk.
func SplitCategories(text string) []Chunk {
	matches := reCategoryMarker.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return []Chunk{{Category: DefaultCategory, Content: strings.TrimSpace(text)}}
	}

	var chunks []Chunk
	if lead := strings.TrimSpace(text[:matches[0][0]]); lead != "" {
		chunks = append(chunks, Chunk{Category: DefaultCategory, Content: lead})
	}

	for i, m := range matches {
		name := text[m[2]:m[3]]
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		content := strings.TrimSpace(text[m[1]:end])
		if content == "" {
			continue
		}
		chunks = append(chunks, Chunk{Category: name, Content: content})
	}

	if len(chunks) == 0 {
		return []Chunk{{Category: DefaultCategory, Content: ""}}
	}
	return chunks
}
