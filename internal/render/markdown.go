package render

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/phawley/blogger2md/internal/model"
)

// Document is one rendered output file, ready to be written.
type Document struct {
	Filename string
	Content  string
}

// Renderer serializes posts into final Markdown documents.
type Renderer struct {
	showOriginal bool
}

// NewRenderer creates a renderer. When showOriginal is set, each document
// links back to the post's original location on Blogger.
func NewRenderer(showOriginal bool) *Renderer {
	return &Renderer{showOriginal: showOriginal}
}

// Render produces the document text for one post: front matter, optional
// backlink, the body HTML verbatim, and the comment thread when the post
// has one.
func (r *Renderer) Render(post *model.Post, name Name, fm FrontMatter) (Document, error) {
	meta, err := yaml.Marshal(fm)
	if err != nil {
		return Document{}, fmt.Errorf("marshal front matter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(meta)
	b.WriteString("---\n\n")

	if r.showOriginal {
		fmt.Fprintf(&b, "*This was originally posted on blogger [here](%s)*.\n\n", post.Entry.Link)
	}

	b.WriteString(post.Entry.BodyHTML)

	if len(post.Comments) > 0 {
		b.WriteString("\n\n---\n\n")
		fmt.Fprintf(&b, "## %d comments captured from [original post](%s) on Blogger\n\n",
			len(post.Comments), post.Entry.Link)
		for _, c := range post.Comments {
			fmt.Fprintf(&b, "**%s said on %s**\n\n", c.Author, commentDate(c.Published))
			b.WriteString(c.BodyHTML)
			b.WriteString("\n\n")
		}
	}

	return Document{Filename: name.Filename, Content: b.String()}, nil
}

// commentDate keeps the calendar-date portion of a timestamp, i.e. the
// first ten characters of 2011-01-02T10:00:00Z.
func commentDate(published string) string {
	if len(published) > 10 {
		return published[:10]
	}
	return published
}
