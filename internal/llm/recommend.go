package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Recommendation is the model's folder choice for a bookmark.
type Recommendation struct {
	RecommendedFolder string `json:"recommended_folder"`
	NewFolderName     string `json:"new_folder_name,omitempty"`
	Reasoning         string `json:"reasoning"`
}

const existingFolderSystemPrompt = `You are a bookmark organization assistant. Based on the webpage analysis and the user's folder structure, recommend the best existing folder for this bookmark.
Rules:
1. Choose folders based on semantic relevance to the page content (title, summary, keywords).
2. Prefer more specific folders over general ones when the content clearly fits.
3. When multiple folders match a keyword (e.g., "Security"), prefer the one whose full path best reflects the page's PRIMARY topic. For example, a Django security tool belongs under a Django folder, not a generic Security folder.
4. Consider all levels of the folder hierarchy. A folder path like "Django/Admin/Security" matching multiple aspects of the content is better than "Articles/Security" matching only one.
5. Return the FULL path of the chosen folder exactly as it appears in the folder structure.
Respond with only a JSON object: {"recommended_folder": "...", "reasoning": "..."}.`

const newFolderSystemPrompt = `You are a bookmark organization assistant. Based on the webpage analysis, create a new category folder for this bookmark.
Rules:
1. Choose a "recommended_folder" from the existing folder structure as the parent where the new folder will be created.
2. Choose folders based on semantic relevance to the page content (title, summary, keywords).
3. Prefer more specific folders over general ones when the content clearly fits.
4. When multiple folders match a keyword (e.g., "Security"), prefer the one whose full path best reflects the page's PRIMARY topic. For example, a Django security tool belongs under a Django folder, not a generic Security folder.
5. Consider all levels of the folder hierarchy. A folder path like "Django/Admin/Security" matching multiple aspects of the content is better than "Articles/Security" matching only one.
6. Return the FULL path of the chosen folder exactly as it appears in the folder structure.
Respond with only a JSON object: {"recommended_folder": "...", "new_folder_name": "...", "reasoning": "..."}.`

const recommendPrompt = `Webpage analysis:
%s

Folder structure:
%s
`

// RecommendFolder asks the model where the analyzed page belongs in the
// user's folder tree. foldersJSON is the canonical serialization of the
// tree. When newFolder is set, the model proposes a new folder name under
// an existing parent instead of picking a leaf.
func (c *Client) RecommendFolder(ctx context.Context, analysis *Analysis, foldersJSON string, newFolder bool) (*Recommendation, error) {
	slog.Info("getting folder recommendation", "model", c.model, "url", analysis.URL, "new_folder", newFolder)

	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return nil, fmt.Errorf("failed to encode analysis: %w", err)
	}

	system := existingFolderSystemPrompt
	if newFolder {
		system = newFolderSystemPrompt
	}

	response, err := c.callLLM(ctx, system, fmt.Sprintf(recommendPrompt, analysisJSON, foldersJSON))
	if err != nil {
		return nil, err
	}

	var rec Recommendation
	if err := json.Unmarshal([]byte(response), &rec); err != nil {
		return nil, fmt.Errorf("malformed recommendation response: %w", err)
	}
	if rec.RecommendedFolder == "" {
		return nil, fmt.Errorf("recommendation response missing recommended_folder")
	}
	return &rec, nil
}
