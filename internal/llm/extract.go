package llm

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrMalformedResponse means no well-formed JSON document could be
// recovered from the service response.
var ErrMalformedResponse = errors.New("malformed response")

var reResponseControl = regexp.MustCompile(`[\x00-\x08\x0b-\x1f\x7f]`)

// ExtractJSON recovers a JSON array from free-form response text. The
// service is known to wrap its payload in prose, so this only excises
// structure: first top-level array if present, otherwise a single
// object wrapped in an array. No semantic parsing happens here.
func ExtractJSON(raw string) (string, error) {
	text := reResponseControl.ReplaceAllString(raw, "")

	if doc, ok := excise(text, '[', ']'); ok {
		if balanced(doc) {
			return doc, nil
		}
	}

	if doc, ok := excise(text, '{', '}'); ok {
		if balanced(doc) {
			return "[" + doc + "]", nil
		}
	}

	return "", fmt.Errorf("%w: no balanced JSON document found", ErrMalformedResponse)
}

func excise(text string, open, closing byte) (string, bool) {
	start := strings.IndexByte(text, open)
	if start == -1 {
		return "", false
	}
	end := strings.LastIndexByte(text, closing)
	if end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// balanced verifies brace/bracket nesting with a stack scan, skipping
// over string literals and their escapes.
func balanced(doc string) bool {
	var stack []byte
	inString := false
	escaped := false

	for i := 0; i < len(doc); i++ {
		c := doc[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{', '[':
			stack = append(stack, c)
		case '}':
			if len(stack) == 0 || stack[len(stack)-1] != '{' {
				return false
			}
			stack = stack[:len(stack)-1]
		case ']':
			if len(stack) == 0 || stack[len(stack)-1] != '[' {
				return false
			}
			stack = stack[:len(stack)-1]
		}
	}

	return len(stack) == 0 && !inString
}
