// Package report formats a generation run into the six-section text artifact.
package report

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/TobiSchelling/seowriter/internal/readability"
)

const notAvailable = "Not available."

// Report aggregates everything a run produced. Nil fields were not produced.
type Report struct {
	SEOTitle        *string
	MetaDescription *string
	Outline         *string
	Article         *string
	Readability     *readability.Scores
	Evaluation      *string
}

// Render writes the six labelled sections to w.
func Render(w io.Writer, r *Report) error {
	var b bytes.Buffer

	section(&b, "SEO Title", r.SEOTitle)
	section(&b, "Meta Description", r.MetaDescription)
	section(&b, "Article Outline", r.Outline)
	section(&b, "Generated Article", r.Article)

	b.WriteString("--- Article Quality Assessment ---\n")
	if r.Readability != nil {
		fmt.Fprintf(&b, "Flesch Reading Ease Score: %.2f\n", r.Readability.ReadingEase)
		fmt.Fprintf(&b, "Flesch-Kincaid Grade Level: %.2f\n", r.Readability.Grade)
	} else {
		b.WriteString("Unable to calculate readability scores.\n")
	}

	b.WriteString("\n--- Content Evaluation ---\n")
	b.WriteString(valueOr(r.Evaluation))
	b.WriteString("\n")

	_, err := w.Write(b.Bytes())
	return err
}

// WriteFile renders the report to path, replacing any previous content.
func WriteFile(path string, r *Report) error {
	var b bytes.Buffer
	if err := Render(&b, r); err != nil {
		return err
	}
	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func section(b *bytes.Buffer, label string, value *string) {
	fmt.Fprintf(b, "--- %s ---\n%s\n\n", label, valueOr(value))
}

func valueOr(s *string) string {
	if s == nil {
		return notAvailable
	}
	return *s
}
