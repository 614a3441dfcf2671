package render

import (
	"github.com/phawley/blogger2md/internal/model"
)

// Blogger marks each entry's kind with a schema URI in its categories.
// Exports carry the http form; older tooling matched the https form, so
// both are filtered out of the tag list.
var postKindTerms = map[string]bool{
	"http://schemas.google.com/blogger/2008/kind#post":  true,
	"https://schemas.google.com/blogger/2008/kind#post": true,
}

// timeToRead is a placeholder constant, not computed from content length.
const timeToRead = 5

// FrontMatter is the metadata block of one output document. Field order
// here is the serialization order of the YAML block, so it must not change.
type FrontMatter struct {
	Date        string   `yaml:"date"`
	Published   bool     `yaml:"published"`
	Slug        string   `yaml:"slug"`
	Tags        []string `yaml:"tags"`
	TimeToRead  int      `yaml:"time_to_read"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
}

// BuildFrontMatter assembles the metadata for one post. The post's category
// terms become tags, minus the kind marker, with userTag appended last.
// Order is preserved and duplicates are kept as-is. The date passes through
// exactly as the feed published it.
func BuildFrontMatter(post *model.Post, slug, userTag string) FrontMatter {
	tags := make([]string, 0, len(post.Entry.Categories)+1)
	for _, term := range post.Entry.Categories {
		if postKindTerms[term] {
			continue
		}
		tags = append(tags, term)
	}
	tags = append(tags, userTag)

	return FrontMatter{
		Date:        post.Entry.Published,
		Published:   true,
		Slug:        slug,
		Tags:        tags,
		TimeToRead:  timeToRead,
		Title:       post.Entry.Title,
		Description: "",
	}
}
