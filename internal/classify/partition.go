package classify

import "github.com/phawley/blogger2md/internal/model"

// Partition is the result of classifying a whole export.
type Partition struct {
	// Posts maps a post's permalink to its record. On a duplicate permalink
	// the later entry replaces the earlier one (last write wins) while the
	// earlier one keeps its place in Order.
	Posts map[string]*model.Post

	// Order lists post permalinks in first-encounter order, giving the
	// pipeline a deterministic iteration order over Posts.
	Order []string

	// Comments holds classified comment entries in feed document order,
	// waiting for the correlator.
	Comments []model.FeedEntry

	// Warnings collects per-entry problems (missing fields).
	Warnings []model.Warning

	Discarded int
}

// Partition classifies every entry in feed order. Entries without a
// permalink cannot be classified and are skipped with a warning; nothing
// here is fatal.
func (c *Classifier) Partition(entries []model.FeedEntry) *Partition {
	p := &Partition{Posts: make(map[string]*model.Post)}

	for _, e := range entries {
		if e.Link == "" {
			p.Warnings = append(p.Warnings, model.MissingFieldWarning("link", e.Title))
			continue
		}

		switch c.Classify(e) {
		case model.KindDiscard:
			p.Discarded++
		case model.KindComment:
			p.Comments = append(p.Comments, e)
		case model.KindPost:
			if _, seen := p.Posts[e.Link]; !seen {
				p.Order = append(p.Order, e.Link)
			}
			p.Posts[e.Link] = &model.Post{Entry: e}
		}
	}

	return p
}
