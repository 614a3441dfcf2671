// Package feed reads a Blogger Atom export into normalized entries. It owns
// all syntax-level parsing; everything downstream works on model.FeedEntry
// values and never touches the wire format.
package feed

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/phawley/blogger2md/internal/model"
)

// Export is one parsed Blogger export document.
type Export struct {
	Title    string
	SiteRoot string // the blog's own root URL as declared by the feed
	Entries  []model.FeedEntry
}

// Parser wraps the underlying feed parser.
type Parser struct {
	fp *gofeed.Parser
}

// NewParser creates a new export parser.
func NewParser() *Parser {
	return &Parser{fp: gofeed.NewParser()}
}

// ParseFile reads and parses the export at path.
func (p *Parser) ParseFile(path string) (*Export, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open export: %w", err)
	}
	defer f.Close()
	return p.Parse(f)
}

// Parse parses an export document from r.
func (p *Parser) Parse(r io.Reader) (*Export, error) {
	raw, err := p.fp.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	export := &Export{
		Title:    raw.Title,
		SiteRoot: raw.Link,
		Entries:  make([]model.FeedEntry, 0, len(raw.Items)),
	}

	for _, item := range raw.Items {
		export.Entries = append(export.Entries, entryFromItem(item))
	}

	return export, nil
}

// ParseString parses an export document held in memory.
func (p *Parser) ParseString(s string) (*Export, error) {
	return p.Parse(strings.NewReader(s))
}

// entryFromItem normalizes one feed item. Absent fields stay zero-valued;
// the classifier decides what is required.
func entryFromItem(item *gofeed.Item) model.FeedEntry {
	e := model.FeedEntry{
		Link:       item.Link,
		AltRef:     item.Link,
		Categories: item.Categories,
		Published:  item.Published,
		Title:      item.Title,
		BodyHTML:   item.Content,
	}

	// Blogger exports carry the post body in <content>; fall back to the
	// summary for entries that only have one.
	if e.BodyHTML == "" {
		e.BodyHTML = item.Description
	}

	if item.Author != nil {
		e.AuthorName = item.Author.Name
	}

	// Comments point at their parent post through the Atom threading
	// extension: <thr:in-reply-to href="..."/>.
	if thr, ok := item.Extensions["thr"]; ok {
		if replies, ok := thr["in-reply-to"]; ok && len(replies) > 0 {
			e.ReplyTarget = replies[0].Attrs["href"]
		}
	}

	return e
}
