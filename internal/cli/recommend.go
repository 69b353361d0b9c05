package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/spf13/cobra"

	"github.com/searchmark/searchmark/internal/bookmarks"
	"github.com/searchmark/searchmark/internal/detect"
	"github.com/searchmark/searchmark/internal/llm"
	"github.com/searchmark/searchmark/internal/web"
	"github.com/searchmark/searchmark/internal/x"
)

var (
	flagBookmarks string
	flagNewFolder bool
	flagLLMKey    string
	flagLLMURL    string
	flagLLMModel  string
	flagNoCache   bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend <url>",
	Short: "Recommend a bookmark folder for a URL",
	Long: `Recommend fetches the page, has the LLM analyze it, and picks the best
folder for it from your bookmark file.

Examples:
  searchmark recommend https://example.com -b bookmarks.html
  searchmark recommend https://example.com -b Bookmarks.json --new-folder`,
	Args: cobra.ExactArgs(1),
	RunE: runRecommend,
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().StringVarP(&flagBookmarks, "bookmarks", "b", "bookmarks.json", "Bookmarks file (JSON or HTML)")
	recommendCmd.Flags().BoolVarP(&flagNewFolder, "new-folder", "n", false, "Suggest creating a new folder")
	recommendCmd.Flags().StringVar(&flagLLMKey, "llm-key", "", "API key for LLM service (default $GEMINI_API_KEY)")
	recommendCmd.Flags().StringVar(&flagLLMURL, "llm-url", "https://generativelanguage.googleapis.com/v1beta/openai/", "Base URL for LLM service")
	recommendCmd.Flags().StringVar(&flagLLMModel, "llm-model", "gemini-2.0-flash", "Model to use for LLM service")
	recommendCmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "Disable the LLM response cache")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	rawURL := args[0]

	if flagLLMKey == "" {
		flagLLMKey = os.Getenv("GEMINI_API_KEY")
	}
	if flagLLMKey == "" {
		return fmt.Errorf("no LLM API key: pass --llm-key or set GEMINI_API_KEY")
	}

	forest, err := detect.File(flagBookmarks)
	if err != nil {
		return err
	}
	foldersJSON, err := bookmarks.Encode(forest)
	if err != nil {
		return fmt.Errorf("failed to encode folder tree: %w", err)
	}

	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.Logger = nil

	var cache x.Cache
	if !flagNoCache {
		cache = openCache()
	}

	llmClient, err := llm.NewClient(flagLLMKey, flagLLMURL, flagLLMModel, client.StandardClient(), cache)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}

	fetcher := web.NewPageFetcher(client.StandardClient())
	page, err := fetcher.Fetch(rawURL)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	analysis, err := llmClient.AnalyzePage(ctx, page.URL, page.Title, page.Text)
	if err != nil {
		return err
	}

	rec, err := llmClient.RecommendFolder(ctx, analysis, string(foldersJSON), flagNewFolder)
	if err != nil {
		return err
	}

	fmt.Printf("Title:   %s\n", analysis.Title)
	fmt.Printf("Summary: %s\n", analysis.Summary)
	fmt.Printf("Folder:  %s\n", rec.RecommendedFolder)
	if rec.NewFolderName != "" {
		fmt.Printf("New folder: %s\n", rec.NewFolderName)
	}
	if rec.Reasoning != "" {
		fmt.Printf("Reasoning: %s\n", rec.Reasoning)
	}
	return nil
}

// openCache returns the shared file cache, or nil if it cannot be created.
func openCache() x.Cache {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		slog.Warn("failed to get home directory", "error", err)
		return nil
	}
	cache, err := x.NewFileCache(filepath.Join(homeDir, ".cache", "searchmark"))
	if err != nil {
		slog.Warn("failed to initialize cache", "error", err)
		return nil
	}
	return cache
}
