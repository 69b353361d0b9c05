package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/searchmark/searchmark/internal/bookmarks"
	"github.com/searchmark/searchmark/internal/detect"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Normalize a bookmark export to canonical JSON",
	Long: `Convert parses any supported bookmark export (Netscape HTML, Chrome JSON,
or a plain JSON folder tree) and prints the canonical JSON folder tree on
stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	forest, err := detect.File(args[0])
	if err != nil {
		return err
	}

	data, err := bookmarks.Encode(forest)
	if err != nil {
		return fmt.Errorf("failed to encode folder tree: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
