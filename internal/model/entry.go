package model

// FeedEntry is the normalized in-memory form of one syndication entry from
// a Blogger export. Field presence varies by entry kind: AuthorName and
// ReplyTarget are only meaningful on comments.
type FeedEntry struct {
	Link        string   // alternate permalink, identity key for posts
	AltRef      string   // alternate reference href, used for classification
	Categories  []string // category terms: schema kind markers plus real tags
	Published   string   // ISO-8601-ish timestamp, passed through verbatim
	Title       string
	BodyHTML    string // raw HTML, never parsed or rewritten
	AuthorName  string
	ReplyTarget string // href of the parent post, comments only
}

// EntryKind is the classification tag assigned to an entry exactly once.
// Downstream code switches on the kind instead of re-inspecting raw fields.
type EntryKind string

const (
	KindPost    EntryKind = "post"
	KindComment EntryKind = "comment"
	KindDiscard EntryKind = "discard"
)

// Post is a classified post entry plus its attached comments, in the order
// the correlator encountered them in the feed.
type Post struct {
	Entry    FeedEntry
	Comments []Comment
}

// Comment is a classified comment entry reduced to the fields the renderer
// needs. A comment belongs to exactly one post.
type Comment struct {
	Author      string
	Published   string
	Title       string
	BodyHTML    string
	ReplyTarget string
}

// CommentFromEntry builds a Comment from a classified comment entry.
func CommentFromEntry(e FeedEntry) Comment {
	return Comment{
		Author:      e.AuthorName,
		Published:   e.Published,
		Title:       e.Title,
		BodyHTML:    e.BodyHTML,
		ReplyTarget: e.ReplyTarget,
	}
}
