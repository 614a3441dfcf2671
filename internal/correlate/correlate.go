// Package correlate attaches classified comments to their parent posts.
package correlate

import "github.com/phawley/blogger2md/internal/model"

// Stats reports what happened to the comments of one export. The invariant
// Attached + Orphaned == len(comments) always holds.
type Stats struct {
	Attached int
	Orphaned int
}

// Attach walks the comments once, in feed order, and appends each to the
// post its reply target names. Comments with no matching post (or no reply
// target at all) are dropped with a warning; they are never buffered for a
// second pass.
func Attach(posts map[string]*model.Post, comments []model.FeedEntry) (Stats, []model.Warning) {
	var stats Stats
	var warnings []model.Warning

	for _, c := range comments {
		post, ok := posts[c.ReplyTarget]
		if !ok {
			stats.Orphaned++
			warnings = append(warnings, model.OrphanedCommentWarning(c.Title))
			continue
		}
		post.Comments = append(post.Comments, model.CommentFromEntry(c))
		stats.Attached++
	}

	return stats, warnings
}
