// Package console collects an article request interactively.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/TobiSchelling/seowriter/internal/article"
)

// Prompter reads answers line by line, printing questions only when asked to.
type Prompter struct {
	in   *bufio.Reader
	out  io.Writer
	echo bool
}

// NewPrompter creates a prompter. Questions are written to out only if echo is set.
func NewPrompter(in io.Reader, out io.Writer, echo bool) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, echo: echo}
}

// Stdin returns a prompter on the process console. Questions are printed
// only when stdin is a terminal, so piped input stays quiet.
func Stdin() *Prompter {
	return NewPrompter(os.Stdin, os.Stdout, term.IsTerminal(int(os.Stdin.Fd())))
}

// Ask prints the question and returns the trimmed answer. A missing final
// newline is accepted; EOF before any input yields an empty answer.
func (p *Prompter) Ask(question string) (string, error) {
	if p.echo {
		fmt.Fprint(p.out, question)
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// ReadRequest asks for the article fields in order: title, primary keyword,
// secondary keywords, tone, length. It does not validate the answers.
func (p *Prompter) ReadRequest() (article.Request, error) {
	var req article.Request
	var secondary string

	fields := []struct {
		question string
		dest     *string
	}{
		{"Enter the article title: ", &req.Title},
		{"Enter the primary keyword: ", &req.PrimaryKeyword},
		{"Enter secondary keywords (comma-separated, optional): ", &secondary},
		{"Enter the desired tone (e.g., formal, informal, professional): ", &req.Tone},
		{"Enter the article length (short, medium, long): ", &req.Length},
	}
	for _, f := range fields {
		answer, err := p.Ask(f.question)
		if err != nil {
			return article.Request{}, err
		}
		*f.dest = answer
	}

	req.Length = strings.ToLower(req.Length)
	req.SecondaryKeywords = article.ParseKeywords(secondary)
	return req, nil
}
