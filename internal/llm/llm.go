package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Prompt is the system/user message pair sent for one generation task.
type Prompt struct {
	System string
	User   string
}

// Provider is the interface for chat-completion backends.
// A maxTokens of 0 leaves the completion length to the service default.
type Provider interface {
	Generate(ctx context.Context, prompt Prompt, maxTokens int) (string, error)
	IsConfigured() bool
}

// Settings configures an OpenAI-compatible provider.
type Settings struct {
	Provider    string
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float64
}

// OpenAIProvider talks to the OpenAI chat completions API, or any endpoint
// speaking the same protocol, through the official SDK.
type OpenAIProvider struct {
	Model       string
	Temperature float64
	apiKey      string
	client      openai.Client
}

// NewOpenAIProvider creates a new OpenAI provider. An empty API key is
// accepted; Generate reports it on every call.
func NewOpenAIProvider(s Settings) *OpenAIProvider {
	opts := []option.RequestOption{
		option.WithAPIKey(s.APIKey),
		option.WithMaxRetries(0),
	}
	if s.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(s.BaseURL))
	}
	return &OpenAIProvider{
		Model:       s.Model,
		Temperature: s.Temperature,
		apiKey:      s.APIKey,
		client:      openai.NewClient(opts...),
	}
}

// IsConfigured checks if the API key is set.
func (o *OpenAIProvider) IsConfigured() bool {
	return o.apiKey != ""
}

// Generate sends the prompt and returns the first choice's content.
func (o *OpenAIProvider) Generate(ctx context.Context, prompt Prompt, maxTokens int) (string, error) {
	if o.apiKey == "" {
		return "", fmt.Errorf("API key not configured")
	}

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt.System),
			openai.UserMessage(prompt.User),
		},
		Temperature: openai.Float(o.Temperature),
	}
	if maxTokens > 0 {
		params.MaxTokens = openai.Int(int64(maxTokens))
	}

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices in chat completion response")
	}
	return resp.Choices[0].Message.Content, nil
}

// CreateProvider creates a provider based on configuration. Ollama and
// DeepSeek are reached through their OpenAI-compatible endpoints.
func CreateProvider(s Settings) (Provider, error) {
	if s.Model == "" {
		return nil, errors.New("llm model is required")
	}
	switch strings.ToLower(s.Provider) {
	case "", "openai":
		return NewOpenAIProvider(s), nil
	case "ollama":
		if s.BaseURL == "" {
			s.BaseURL = "http://localhost:11434/v1"
		}
		if s.APIKey == "" {
			// Ollama ignores the key but the SDK expects one.
			s.APIKey = "ollama"
		}
		return NewOpenAIProvider(s), nil
	case "deepseek":
		if s.BaseURL == "" {
			return nil, errors.New("llm provider deepseek requires base_url (OpenAI-compatible endpoint)")
		}
		return NewOpenAIProvider(s), nil
	default:
		return nil, fmt.Errorf("llm provider %s not supported", s.Provider)
	}
}
