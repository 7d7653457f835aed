// Package article holds the article request model, the token budget
// estimator and the prompt builders for every generation task.
package article

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Length classes accepted from the console.
const (
	LengthShort  = "short"
	LengthMedium = "medium"
	LengthLong   = "long"
)

const (
	defaultWordCount = 1000
	tokensPerWord    = 1.3
	maxTokenBudget   = 3000
)

var wordCounts = map[string]int{
	LengthShort:  500,
	LengthMedium: 1000,
	LengthLong:   2000,
}

// ErrMissingField is returned when a required request field is blank.
var ErrMissingField = errors.New("title, primary keyword, tone, and length are required fields")

// Request holds the parameters of one article.
type Request struct {
	Title             string
	PrimaryKeyword    string
	SecondaryKeywords []string
	Tone              string
	Length            string
}

// Validate checks that every required field is non-empty after trimming.
func (r Request) Validate() error {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"title", r.Title},
		{"primary keyword", r.PrimaryKeyword},
		{"tone", r.Tone},
		{"length", r.Length},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w (missing: %s)", ErrMissingField, strings.Join(missing, ", "))
	}
	return nil
}

// WordCount maps a length class to a target word count. Unrecognised classes
// fall back to the medium count and report known=false.
func WordCount(length string) (words int, known bool) {
	words, known = wordCounts[strings.ToLower(strings.TrimSpace(length))]
	if !known {
		return defaultWordCount, false
	}
	return words, true
}

// TokenBudget converts a word count into a completion token limit,
// capped at maxTokenBudget.
func TokenBudget(words int) int {
	return min(int(math.Round(float64(words)*tokensPerWord)), maxTokenBudget)
}

// ParseKeywords splits comma-separated keywords, trimming each entry and
// dropping empty ones. Order is preserved.
func ParseKeywords(input string) []string {
	var keywords []string
	for _, kw := range strings.Split(input, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

// FormatKeywords joins keywords for prompt text, rendering an empty list as "None".
func FormatKeywords(keywords []string) string {
	if len(keywords) == 0 {
		return "None"
	}
	return strings.Join(keywords, ", ")
}
