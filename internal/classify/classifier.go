// Package classify sorts raw feed entries into posts, comments, and junk.
// Blogger exports mix real content with settings blobs, template entries,
// and comment-count metadata; the classifier is the single place that knows
// how to tell them apart.
package classify

import (
	"strings"

	"github.com/phawley/blogger2md/internal/model"
)

// Blogger export markers. The kind terms appear as category values on every
// entry; the settings namespace shows up in the links of config entries.
const (
	settingsLinkMarker = "tag:blogger.com"
	commentsRefMarker  = "comments"
	settingsTermMarker = "#settings"
	commentTermMarker  = "#comment"
)

// rule is one classification heuristic. Rules are evaluated in order and
// the first match wins.
type rule struct {
	name  string
	match func(model.FeedEntry) bool
	kind  model.EntryKind
}

// Classifier assigns each entry exactly one EntryKind.
type Classifier struct {
	rules []rule
}

// NewClassifier creates a classifier with the standard Blogger-export rules.
func NewClassifier() *Classifier {
	return &Classifier{
		rules: []rule{
			{
				name: "settings-link",
				match: func(e model.FeedEntry) bool {
					return strings.Contains(e.Link, settingsLinkMarker)
				},
				kind: model.KindDiscard,
			},
			{
				name: "comment-count-metadata",
				match: func(e model.FeedEntry) bool {
					return strings.Contains(e.AltRef, commentsRefMarker)
				},
				kind: model.KindDiscard,
			},
			{
				name: "settings-category",
				match: func(e model.FeedEntry) bool {
					return anyTermContains(e.Categories, settingsTermMarker)
				},
				kind: model.KindDiscard,
			},
			{
				name: "comment-category",
				match: func(e model.FeedEntry) bool {
					return anyTermContains(e.Categories, commentTermMarker)
				},
				kind: model.KindComment,
			},
		},
	}
}

// Classify returns the kind of a single entry. Anything no rule claims is a
// post.
func (c *Classifier) Classify(e model.FeedEntry) model.EntryKind {
	for _, r := range c.rules {
		if r.match(e) {
			return r.kind
		}
	}
	return model.KindPost
}

func anyTermContains(terms []string, marker string) bool {
	for _, t := range terms {
		if strings.Contains(t, marker) {
			return true
		}
	}
	return false
}
