package llm

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/searchmark/searchmark/internal/x"
)

// Client talks to an OpenAI-compatible chat API and caches responses on
// disk, so repeated runs against the same page and folder tree are free.
type Client struct {
	client *openai.Client
	cache  x.Cache
	model  string
}

// NewClient creates a chat client for the given endpoint and model. The
// cache may be nil to disable response caching.
func NewClient(apiKey, baseURL, model string, httpClient *http.Client, cache x.Cache) (*Client, error) {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithHTTPClient(httpClient),
	)

	return &Client{
		client: client,
		cache:  cache,
		model:  model,
	}, nil
}

func (c *Client) callLLM(ctx context.Context, system, prompt string) (string, error) {
	key := fmt.Sprintf("%s\n---\n%s\n---\n%s", c.model, system, prompt)
	if c.cache != nil {
		if cached, ok := c.cache.Get(key); ok {
			slog.Debug("using cached LLM response")
			return cached, nil
		}
	}

	chatCompletion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(prompt),
		}),
		Model:       openai.F(c.model),
		Temperature: openai.F(0.1),
	})
	if err != nil {
		return "", fmt.Errorf("LLM request failed: %w", err)
	}
	if len(chatCompletion.Choices) == 0 {
		return "", fmt.Errorf("LLM returned no choices")
	}

	response := trimFences(chatCompletion.Choices[0].Message.Content)

	if c.cache != nil {
		if err := c.cache.Set(key, response); err != nil {
			slog.Warn("failed to cache LLM response", "error", err)
		}
	}

	return response, nil
}

// trimFences strips the markdown code fences models like to wrap JSON in.
func trimFences(response string) string {
	response = strings.TrimSpace(response)
	response = strings.TrimPrefix(response, "```json\n")
	response = strings.TrimPrefix(response, "```\n")
	response = strings.TrimSuffix(response, "\n```")
	return strings.TrimSpace(response)
}
