// Package sentiment provides the sentiment classification collaborator for
// the CX Insights service: text preprocessing and a deterministic lexicon
// classifier behind a dependency-injected Classifier interface.
package sentiment

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultMaxTextLength is the upper bound accepted for raw input text.
const DefaultMaxTextLength = 10000

// DefaultTruncateLength keeps preprocessed text short enough to stay within
// the prediction latency budget.
const DefaultTruncateLength = 1000

var (
	urlRegex = regexp.MustCompile(`(?:https?://|www\.)\S+`)
	// Case handled by lowercasing first, so the pattern only needs lowercase.
	emailRegex      = regexp.MustCompile(`\b[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}\b`)
	numberRegex     = regexp.MustCompile(`\b\d+(?:\.\d+)?\b`)
	specialRegex    = regexp.MustCompile(`[^a-z0-9\s.,!?;:'"\-\[\]]`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// Preprocess normalizes text for classification: lowercases, replaces URLs,
// email addresses, and numbers with placeholder tokens, strips special
// characters except common punctuation, and collapses whitespace. Empty or
// whitespace-only input is a validation error.
func Preprocess(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("text cannot be empty or whitespace only")
	}

	processed := strings.ToLower(text)
	processed = urlRegex.ReplaceAllString(processed, "[URL]")
	processed = emailRegex.ReplaceAllString(processed, "[EMAIL]")
	processed = numberRegex.ReplaceAllString(processed, "[NUM]")
	// Placeholder tokens were inserted uppercase; lowercase them so the
	// special-character strip leaves them intact.
	processed = strings.NewReplacer("[URL]", "[url]", "[EMAIL]", "[email]", "[NUM]", "[num]").Replace(processed)
	processed = specialRegex.ReplaceAllString(processed, "")
	processed = whitespaceRegex.ReplaceAllString(processed, " ")
	processed = strings.TrimSpace(processed)

	if processed == "" {
		return "", fmt.Errorf("preprocessed text is empty")
	}

	return processed, nil
}

// ValidateTextLength reports whether text is non-empty and within maxLength.
func ValidateTextLength(text string, maxLength int) bool {
	return text != "" && len(text) <= maxLength
}

// Truncate cuts text to at most maxLength bytes.
func Truncate(text string, maxLength int) string {
	if len(text) <= maxLength {
		return text
	}
	return text[:maxLength]
}
