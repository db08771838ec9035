package ocr

import (
	"regexp"
	"strings"
	"unicode"
)

// Normalization is built around price tokens: OCR line structure is
// unreliable, so the text is flattened first, prices are canonicalized
// to D.DD (or D.DD-D.DD for ranges), and line breaks are re-inserted
// after each price. A price terminates a dish entry; whatever follows
// it belongs to the next dish.
var (
	reControlChars = regexp.MustCompile(`[\x00-\x08\x0b-\x1f\x7f]|[\x{2500}-\x{259f}]`)

	reUnderscoreBackslash = regexp.MustCompile(`[_\\]`)
	// A slash between two digits may be a price range separator, keep it.
	reSlashLeft  = regexp.MustCompile(`(^|[^0-9])/`)
	reSlashRight = regexp.MustCompile(`/([^0-9]|$)`)

	reWhitespace = regexp.MustCompile(`\s+`)
	rePunctSpace = regexp.MustCompile(`\s*([-,:;.])\s*`)

	reCurrency     = regexp.MustCompile(`(\d+[.,]\d{2})\s*(?:€|\$|£|(?i:euros?))`)
	reCommaDecimal = regexp.MustCompile(`(\d+),(\d{2})\b`)
	reSlashRange   = regexp.MustCompile(`(\d+\.\d{2})/(\d+\.\d{2})`)

	rePriceBoundary = regexp.MustCompile(`(\d+\.\d{2}(?:-\d+\.\d{2})?)\s*([\p{L}])`)

	reStopWords = regexp.MustCompile(`(?i)\b(?:iva incluido|vat included|precios en euros|informacion de alergenos|información de alérgenos|allergen info|servicio incluido|consultar alergenos|consultar alérgenos|unidad|unit|racion|ración|euros|euro)\b`)

	reWhitelist = regexp.MustCompile(`[^\p{L}\p{N}\s*\-.,]`)

	reSpaces = regexp.MustCompile(`[ \t]+`)
)

// Normalize cleans raw OCR text into the canonical form the rest of the
// pipeline works on. Total: never fails, worst case returns "".
// Running it on its own output is a no-op.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	// Step 1: control characters and box-drawing glyphs
	text := reControlChars.ReplaceAllString(raw, "")

	// Step 2: structural punctuation that confuses price detection
	text = reUnderscoreBackslash.ReplaceAllString(text, " ")
	text = reSlashLeft.ReplaceAllString(text, "$1 ")
	text = reSlashRight.ReplaceAllString(text, " $1")

	// Step 3: flatten to one line, tighten punctuation
	text = reWhitespace.ReplaceAllString(text, " ")
	text = rePunctSpace.ReplaceAllString(text, "$1")

	// Step 4: canonical price tokens
	text = reCurrency.ReplaceAllString(text, "$1")
	text = reCommaDecimal.ReplaceAllString(text, "$1.$2")
	text = reSlashRange.ReplaceAllString(text, "$1-$2")

	// Step 5: a price ends a dish, break before the next one
	text = rePriceBoundary.ReplaceAllString(text, "$1\n$2")

	// Step 6: boilerplate menu words
	text = reStopWords.ReplaceAllString(text, " ")

	// Step 7: character whitelist
	text = reWhitelist.ReplaceAllString(text, "")

	return tidyLines(text)
}

func tidyLines(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(reSpaces.ReplaceAllString(line, " "))
		if line == "" {
			continue
		}
		// Price boundaries only ever break before a letter. A line left
		// starting with anything else (stoplist removal residue) is merged
		// back so normalization stays a fixed point.
		if len(out) > 0 && !startsWithLetter(line) {
			out[len(out)-1] += " " + line
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func startsWithLetter(s string) bool {
	for _, r := range s {
		return unicode.IsLetter(r)
	}
	return false
}
