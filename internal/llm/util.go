// Package llm - util.go provides shared utilities for provider response cleanup.
package llm

import "strings"

// CleanJSONBlock removes markdown code fence markers from a response and
// trims surrounding whitespace. Fence markers are removed wherever they
// appear, since models sometimes emit commentary around the fenced block.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// ExtractJSONObject returns the first balanced JSON object in text, or ""
// when none is found. Braces inside string literals are ignored.
func ExtractJSONObject(text string) string {
	return extractBalanced(text, '{', '}')
}

// ExtractJSONArray returns the first balanced JSON array in text, or ""
// when none is found.
func ExtractJSONArray(text string) string {
	return extractBalanced(text, '[', ']')
}

func extractBalanced(text string, open, close byte) string {
	start := strings.IndexByte(text, open)
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
			// Structural characters inside strings don't count.
		case c == open:
			depth++
		case c == close:
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}

	return ""
}
