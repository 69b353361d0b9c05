package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/searchmark/searchmark/internal/bookmarks"
	"github.com/searchmark/searchmark/internal/detect"
	"github.com/searchmark/searchmark/internal/x"
)

var flagPathsBookmarks string

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "List every folder path in a bookmark file",
	Long: `Paths parses a bookmark export and prints the full slash-joined path of
every folder, parents before children, in document order.`,
	Args: cobra.NoArgs,
	RunE: runPaths,
}

func init() {
	rootCmd.AddCommand(pathsCmd)

	pathsCmd.Flags().StringVarP(&flagPathsBookmarks, "bookmarks", "b", "bookmarks.json", "Bookmarks file (JSON or HTML)")
}

func runPaths(cmd *cobra.Command, args []string) error {
	forest, err := detect.File(flagPathsBookmarks)
	if err != nil {
		return err
	}

	// The model permits empty names; they make no usable path.
	named := x.Filter2(forest.All(), func(_ string, f *bookmarks.Folder) bool {
		return f.Name != ""
	})
	for path := range named {
		fmt.Println(path)
	}
	return nil
}
