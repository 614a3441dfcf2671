// Package pipeline wires the conversion stages together.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/phawley/blogger2md/internal/classify"
	"github.com/phawley/blogger2md/internal/correlate"
	"github.com/phawley/blogger2md/internal/feed"
	"github.com/phawley/blogger2md/internal/model"
	"github.com/phawley/blogger2md/internal/render"
)

// Pipeline orchestrates the complete conversion: classify entries, attach
// comments, derive filenames, build front matter, render documents.
type Pipeline struct {
	classifier *classify.Classifier
	renderer   *render.Renderer
	config     *model.Config
}

// NewPipeline creates a pipeline with the given configuration.
func NewPipeline(cfg *model.Config) *Pipeline {
	return &Pipeline{
		classifier: classify.NewClassifier(),
		renderer:   render.NewRenderer(cfg.ShowOriginal),
		config:     cfg,
	}
}

// Summary exposes the counters a caller needs to report a run.
type Summary struct {
	Entries   int // entries in the export
	Posts     int // entries classified as posts (after dedup by permalink)
	Comments  int // entries classified as comments
	Discarded int // settings/metadata entries dropped by the classifier
	Attached  int // comments attached to a post
	Orphaned  int // comments with no matching post
	Skipped   int // posts filtered at filename derivation
	Documents int // documents rendered
}

// Result contains everything produced from one export.
type Result struct {
	Documents []render.Document
	Summary   Summary
	Warnings  []model.Warning
}

// Convert runs the full conversion over a parsed export. Per-entry problems
// are collected as warnings; a single bad entry never stops the batch.
func (p *Pipeline) Convert(export *feed.Export) (*Result, error) {
	result := &Result{}
	result.Summary.Entries = len(export.Entries)

	// 1. Classify entries into posts, comments, and junk.
	part := p.classifier.Partition(export.Entries)
	result.Warnings = append(result.Warnings, part.Warnings...)
	result.Summary.Posts = len(part.Posts)
	result.Summary.Comments = len(part.Comments)
	result.Summary.Discarded = part.Discarded

	// 2. Attach comments to their parent posts.
	stats, warnings := correlate.Attach(part.Posts, part.Comments)
	result.Warnings = append(result.Warnings, warnings...)
	result.Summary.Attached = stats.Attached
	result.Summary.Orphaned = stats.Orphaned

	// 3. Render each retained post, in first-encounter order.
	for _, link := range part.Order {
		post := part.Posts[link]

		name, ok := render.DeriveName(post.Entry.Link, export.SiteRoot)
		if !ok {
			// Configuration artifact or static page, not an error.
			result.Summary.Skipped++
			continue
		}

		fm := render.BuildFrontMatter(post, name.Slug, p.config.Tag)

		doc, err := p.renderer.Render(post, name, fm)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", name.Filename, err)
		}
		result.Documents = append(result.Documents, doc)
	}
	result.Summary.Documents = len(result.Documents)

	return result, nil
}

// WriteDocuments persists every rendered document into dir, overwriting
// silently. It returns the number of files written.
func (p *Pipeline) WriteDocuments(docs []render.Document, dir string) (int, error) {
	for i, doc := range docs {
		path := filepath.Join(dir, doc.Filename)
		if err := os.WriteFile(path, []byte(doc.Content), 0644); err != nil {
			return i, fmt.Errorf("write %s: %w", path, err)
		}
	}
	return len(docs), nil
}
