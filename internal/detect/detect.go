// Package detect picks the right bookmark parser for a file based on its
// extension and, failing that, its content.
package detect

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/searchmark/searchmark/internal/bookmarks"
	"github.com/searchmark/searchmark/internal/chrome"
	"github.com/searchmark/searchmark/internal/netscape"
)

// Detection failures. Element-level anomalies inside the parsers are
// absorbed there; only these top-level failures reach the caller.
var (
	// ErrFileNotFound reports a bookmark file path that does not exist.
	ErrFileNotFound = errors.New("bookmark file not found")
	// ErrInvalidFormat reports content that claims a format but fails to
	// decode as it (e.g. a .json file holding malformed JSON).
	ErrInvalidFormat = errors.New("invalid bookmark file")
	// ErrEmptyResult reports a parse that succeeded but found no folders
	// where at least one was expected.
	ErrEmptyResult = errors.New("no folders found")
	// ErrUnknownFormat reports input no detection rule matched.
	ErrUnknownFormat = errors.New("cannot detect bookmark format")
)

var netscapeDoctype = regexp.MustCompile(`(?i)<!DOCTYPE\s+NETSCAPE-Bookmark-file`)

// File reads and parses a bookmark file, detecting its format from the
// filename and content.
func File(path string) (bookmarks.Forest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	return Detect(content, filepath.Base(path))
}

// Detect chooses and runs exactly one parser for the given content. The
// name is an optional filename or declared extension hint; pass "" when
// none is known. Detection order: a recognized extension wins, then the
// Netscape doctype marker, then a JSON decode attempt.
func Detect(content []byte, name string) (bookmarks.Forest, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		forest := netscape.Parse(string(content))
		if len(forest) == 0 {
			// Distinguish "parsed nothing" from "wrong format".
			return nil, fmt.Errorf("%w in HTML bookmark file %s", ErrEmptyResult, name)
		}
		return forest, nil
	case ".json":
		if !gjson.ValidBytes(content) {
			return nil, fmt.Errorf("%w: invalid JSON in %s", ErrInvalidFormat, name)
		}
		return dispatchJSON(content), nil
	}

	if netscapeDoctype.Match(content) {
		return netscape.Parse(string(content)), nil
	}
	if gjson.ValidBytes(content) {
		return dispatchJSON(content), nil
	}

	return nil, fmt.Errorf("%w: %s (%d bytes)", ErrUnknownFormat, name, len(content))
}

// dispatchJSON routes valid JSON to the Chrome parser when the document is
// rooted under a "roots" key, and to the generic canonical-schema parser
// otherwise.
func dispatchJSON(content []byte) bookmarks.Forest {
	if gjson.GetBytes(content, "roots").Exists() {
		return chrome.Parse(content)
	}
	return bookmarks.FromJSON(content)
}
