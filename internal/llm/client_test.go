package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type mockProvider struct {
	response string
	err      error
	calls    int
	block    bool
}

func (m *mockProvider) Generate(ctx context.Context, _ Prompt, _ int) (string, error) {
	m.calls++
	if m.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return m.response, m.err
}

func (m *mockProvider) IsConfigured() bool { return true }

func TestCompleteTrimsResponse(t *testing.T) {
	mock := &mockProvider{response: "\n  An SEO title \n"}
	c := NewClient(mock, time.Second, zaptest.NewLogger(t).Sugar())

	r := c.Complete(context.Background(), "SEO title", Prompt{}, 0)
	require.True(t, r.OK())
	assert.Equal(t, "An SEO title", r.Text)
	require.NotNil(t, r.Value())
	assert.Equal(t, "An SEO title", *r.Value())
	assert.Equal(t, 1, mock.calls)
}

func TestCompleteSwallowsProviderError(t *testing.T) {
	mock := &mockProvider{err: errors.New("quota exceeded")}
	c := NewClient(mock, time.Second, zaptest.NewLogger(t).Sugar())

	r := c.Complete(context.Background(), "outline", Prompt{}, 0)
	assert.False(t, r.OK())
	assert.Nil(t, r.Value())
	assert.EqualError(t, r.Err, "quota exceeded")
	assert.Equal(t, 1, mock.calls, "failures are never retried")
}

func TestCompleteEmptyResponseIsAbsent(t *testing.T) {
	c := NewClient(&mockProvider{response: "   "}, time.Second, zaptest.NewLogger(t).Sugar())

	r := c.Complete(context.Background(), "article", Prompt{}, 1300)
	assert.ErrorIs(t, r.Err, ErrEmptyResponse)
	assert.Nil(t, r.Value())
}

func TestCompleteTimeoutIsAbsent(t *testing.T) {
	c := NewClient(&mockProvider{block: true}, 20*time.Millisecond, zaptest.NewLogger(t).Sugar())

	r := c.Complete(context.Background(), "article", Prompt{}, 0)
	assert.ErrorIs(t, r.Err, context.DeadlineExceeded)
	assert.Nil(t, r.Value())
}

func TestNewClientDefaultsTimeout(t *testing.T) {
	c := NewClient(&mockProvider{}, 0, zaptest.NewLogger(t).Sugar())
	assert.Equal(t, DefaultTimeout, c.timeout)

	c = NewClient(&mockProvider{}, time.Minute, zaptest.NewLogger(t).Sugar())
	assert.Equal(t, time.Minute, c.timeout)
}

func TestCompleteWithoutProvider(t *testing.T) {
	c := NewClient(nil, 0, zaptest.NewLogger(t).Sugar())

	r := c.Complete(context.Background(), "meta description", Prompt{}, 0)
	assert.ErrorIs(t, r.Err, ErrNoProvider)
}
