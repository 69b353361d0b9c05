package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// maxContentChars caps how much page text goes into the prompt.
const maxContentChars = 16000

// Analysis is the model's reading of a webpage.
type Analysis struct {
	URL      string   `json:"url"`
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Keywords []string `json:"keywords"`
}

const analyzeSystemPrompt = `You are a webpage analyst. You read page content and produce a concise, factual analysis as JSON. Return only a JSON object, with no surrounding text or markdown fences.`

const analyzePrompt = `Analyze this webpage and return a JSON object with exactly these fields:
- "title": the page title (use the provided title unless the content shows a better one)
- "summary": a 2-3 sentence summary of the page content
- "keywords": an array of 5-10 keywords/tags describing the page

URL: %s
Title: %s

Page content:
%s
`

// AnalyzePage asks the model for a title, summary and keywords for a page.
func (c *Client) AnalyzePage(ctx context.Context, url, title, content string) (*Analysis, error) {
	slog.Info("analyzing page", "model", c.model, "url", url)

	if len(content) > maxContentChars {
		content = content[:maxContentChars]
	}

	response, err := c.callLLM(ctx, analyzeSystemPrompt, fmt.Sprintf(analyzePrompt, url, title, content))
	if err != nil {
		return nil, err
	}

	var analysis Analysis
	if err := json.Unmarshal([]byte(response), &analysis); err != nil {
		return nil, fmt.Errorf("malformed analysis response: %w", err)
	}

	analysis.URL = url
	if analysis.Title == "" {
		analysis.Title = title
	}
	return &analysis, nil
}
