// Package netscape parses the Netscape bookmark HTML format used by Chrome,
// Firefox, Edge and most browsers when exporting bookmarks.
//
// The format has no explicit tree container per node: folder nesting is
// implied only by the open/close order of DL tags relative to the preceding
// H3 header. The parser reconstructs the hierarchy from a streaming token
// pass with an explicit stack of open containers.
package netscape

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/net/html"

	"github.com/searchmark/searchmark/internal/bookmarks"
)

// parser holds the state for one document. It is not reusable: Parse
// constructs a fresh one per call.
type parser struct {
	forest   bookmarks.Forest
	stack    []*bookmarks.Folder // open DL containers, root to innermost
	pending  *bookmarks.Folder   // completed header awaiting its DL, if any
	inHeader bool
	text     strings.Builder
}

// Parse extracts the folder hierarchy from a Netscape bookmark document.
// The tokenizer is best-effort: unmatched closing tags are no-ops, unclosed
// containers are abandoned at end of input, and byte-level garbage never
// raises. Empty or folder-free input yields an empty forest.
func Parse(content string) bookmarks.Forest {
	p := parser{forest: bookmarks.Forest{}}

	z := html.NewTokenizer(strings.NewReader(content))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// End of input, or markup the tokenizer gave up on.
			p.flushPending()
			return p.forest
		case html.StartTagToken:
			name, _ := z.TagName()
			p.open(string(name))
		case html.EndTagToken:
			name, _ := z.TagName()
			p.close(string(name))
		case html.TextToken:
			if p.inHeader {
				p.text.Write(z.Text())
			}
		}
	}
}

func (p *parser) open(tag string) {
	switch tag {
	case "h3":
		// A new header finalizes any folder still waiting for a DL:
		// that folder is childless and belongs at the current level.
		p.flushPending()
		p.inHeader = true
		p.text.Reset()
	case "dl":
		// The DL immediately following an H3 is that folder's child
		// container. A top-level DL with no preceding header opens no
		// new level.
		if p.pending != nil {
			p.stack = append(p.stack, p.pending)
			p.pending = nil
		}
	}
}

func (p *parser) close(tag string) {
	switch tag {
	case "h3":
		p.inHeader = false
		name := strings.TrimSpace(p.text.String())
		p.text.Reset()
		if name != "" {
			folder := bookmarks.New(uuid.New().String(), name)
			p.pending = &folder
		}
	case "dl":
		p.flushPending()
		if n := len(p.stack); n > 0 {
			done := p.stack[n-1]
			p.stack = p.stack[:n-1]
			p.attach(*done)
		}
	}
}

// flushPending attaches a header that never got a child container, as a
// childless folder at the current nesting level.
func (p *parser) flushPending() {
	if p.pending != nil {
		p.attach(*p.pending)
		p.pending = nil
	}
}

// attach appends a fully built folder to the innermost open container, or
// to the forest root when no DL is open. Each folder is attached exactly
// once, in document order.
func (p *parser) attach(folder bookmarks.Folder) {
	if n := len(p.stack); n > 0 {
		p.stack[n-1].Children = append(p.stack[n-1].Children, folder)
		return
	}
	p.forest = append(p.forest, folder)
}
