// Package readability computes Flesch Reading Ease and Flesch-Kincaid Grade
// scores for generated articles.
package readability

import (
	"errors"
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var md = goldmark.New()

// Terminal punctuation only ends a sentence before whitespace or the end of
// the block, so "3.5" and "e.g" stay inside one sentence.
var sentenceEnd = regexp.MustCompile(`[.!?]+(\s|$)`)

// ErrNoText is returned when there are no words to score.
var ErrNoText = errors.New("no scorable text")

// Scores holds the two readability indices.
type Scores struct {
	ReadingEase float64
	Grade       float64
}

// Counts are the raw statistics the formulas are computed from.
type Counts struct {
	Words     int
	Sentences int
	Syllables int
}

// Score reduces markdown to plain text and scores it.
func Score(markdown string) (*Scores, error) {
	if strings.TrimSpace(markdown) == "" {
		return nil, ErrNoText
	}
	return FromCounts(Count(markdown))
}

// FromCounts applies the published Flesch formulas.
func FromCounts(c Counts) (*Scores, error) {
	if c.Words <= 0 || c.Sentences <= 0 {
		return nil, ErrNoText
	}
	wordsPerSentence := float64(c.Words) / float64(c.Sentences)
	syllablesPerWord := float64(c.Syllables) / float64(c.Words)

	s := &Scores{
		ReadingEase: 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord,
		Grade:       0.39*wordsPerSentence + 11.8*syllablesPerWord - 15.59,
	}
	if math.IsNaN(s.ReadingEase) || math.IsNaN(s.Grade) {
		return nil, errors.New("readability formula produced NaN")
	}
	return s, nil
}

// Count tallies words, sentences and syllables. Every text block counts as
// at least one sentence so headings and list items without final
// punctuation are not merged into their neighbours.
func Count(markdown string) Counts {
	var c Counts
	for _, block := range PlainText(markdown) {
		for _, fragment := range sentenceEnd.Split(block, -1) {
			words := splitWords(fragment)
			if len(words) == 0 {
				continue
			}
			c.Sentences++
			c.Words += len(words)
			for _, w := range words {
				c.Syllables += CountSyllables(w)
			}
		}
	}
	return c
}

// PlainText returns the text of each heading, paragraph and list item in
// the markdown document. Code and raw HTML are dropped.
func PlainText(markdown string) []string {
	src := []byte(markdown)
	doc := md.Parser().Parse(text.NewReader(src))

	var blocks []string
	var cur strings.Builder
	flush := func() {
		if s := strings.TrimSpace(cur.String()); s != "" {
			blocks = append(blocks, s)
		}
		cur.Reset()
	}

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			if entering {
				cur.Write(node.Segment.Value(src))
				if node.SoftLineBreak() || node.HardLineBreak() {
					cur.WriteByte(' ')
				}
			}
		case *ast.String:
			if entering {
				cur.Write(node.Value)
			}
		case *ast.Paragraph, *ast.Heading, *ast.TextBlock:
			if !entering {
				flush()
			}
		}
		return ast.WalkContinue, nil
	})
	flush()

	return blocks
}

// splitWords returns whitespace-separated tokens that contain a letter or digit.
func splitWords(s string) []string {
	var words []string
	for _, tok := range strings.Fields(s) {
		if strings.IndexFunc(tok, func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }) >= 0 {
			words = append(words, tok)
		}
	}
	return words
}

// CountSyllables estimates English syllables by counting vowel groups,
// discounting a silent trailing "e". Every word has at least one.
func CountSyllables(word string) int {
	var letters []rune
	for _, r := range strings.ToLower(word) {
		if unicode.IsLetter(r) {
			letters = append(letters, r)
		}
	}
	if len(letters) <= 3 {
		return 1
	}

	count := 0
	prevVowel := false
	for _, r := range letters {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	n := len(letters)
	if letters[n-1] == 'e' && letters[n-2] != 'l' && count > 1 {
		count--
	}
	return max(count, 1)
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
