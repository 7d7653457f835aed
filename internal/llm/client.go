package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrNoProvider is reported when the client was built without a backend.
	ErrNoProvider = errors.New("no llm provider available")
	// ErrEmptyResponse is reported when the service answered with blank text.
	ErrEmptyResponse = errors.New("empty response from llm")
)

// Result is the outcome of one generation call: trimmed text, or the error
// that made the value absent.
type Result struct {
	Text string
	Err  error
}

// OK reports whether the call produced text.
func (r Result) OK() bool {
	return r.Err == nil
}

// Value returns the text, or nil when the result is absent.
func (r Result) Value() *string {
	if r.Err != nil {
		return nil
	}
	s := r.Text
	return &s
}

// DefaultTimeout bounds a single generation call when none is configured.
const DefaultTimeout = 120 * time.Second

// Client issues exactly one provider request per task and never lets a
// failure escape as an error; it is logged and returned inside the Result.
type Client struct {
	provider Provider
	timeout  time.Duration
	log      *zap.SugaredLogger
}

// NewClient creates a generation client. A zero timeout uses DefaultTimeout.
func NewClient(provider Provider, timeout time.Duration, log *zap.SugaredLogger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{provider: provider, timeout: timeout, log: log}
}

// Complete runs the prompt for the named task.
func (c *Client) Complete(ctx context.Context, task string, prompt Prompt, maxTokens int) Result {
	if c.provider == nil {
		c.log.Errorf("An error occurred while generating the %s: %v", task, ErrNoProvider)
		return Result{Err: ErrNoProvider}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	text, err := c.provider.Generate(ctx, prompt, maxTokens)
	if err != nil {
		c.log.Errorf("An error occurred while generating the %s: %v", task, err)
		return Result{Err: err}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		c.log.Errorf("An error occurred while generating the %s: %v", task, ErrEmptyResponse)
		return Result{Err: ErrEmptyResponse}
	}

	c.log.Debugw("generation complete", "task", task, "chars", len(text), "elapsed", time.Since(start))
	return Result{Text: text}
}
