package render

import (
	"reflect"
	"testing"

	"github.com/phawley/blogger2md/internal/model"
)

func TestBuildFrontMatter_TagsDropKindMarkerAndAppendUserTag(t *testing.T) {
	post := &model.Post{Entry: model.FeedEntry{
		Categories: []string{"http://schemas.google.com/blogger/2008/kind#post", "travel"},
	}}

	fm := BuildFrontMatter(post, "2010-05-my-post", "legacy-blogger")

	want := []string{"travel", "legacy-blogger"}
	if !reflect.DeepEqual(fm.Tags, want) {
		t.Errorf("Expected tags %v, got %v", want, fm.Tags)
	}
}

func TestBuildFrontMatter_HTTPSKindMarkerAlsoDropped(t *testing.T) {
	post := &model.Post{Entry: model.FeedEntry{
		Categories: []string{"https://schemas.google.com/blogger/2008/kind#post", "food"},
	}}

	fm := BuildFrontMatter(post, "slug", "legacy-blogger")

	want := []string{"food", "legacy-blogger"}
	if !reflect.DeepEqual(fm.Tags, want) {
		t.Errorf("Expected tags %v, got %v", want, fm.Tags)
	}
}

func TestBuildFrontMatter_NoDeduplication(t *testing.T) {
	post := &model.Post{Entry: model.FeedEntry{
		Categories: []string{"travel"},
	}}

	// The user tag duplicates an existing tag; both appear.
	fm := BuildFrontMatter(post, "slug", "travel")

	want := []string{"travel", "travel"}
	if !reflect.DeepEqual(fm.Tags, want) {
		t.Errorf("Expected tags %v, got %v", want, fm.Tags)
	}
}

func TestBuildFrontMatter_FixedFields(t *testing.T) {
	post := &model.Post{Entry: model.FeedEntry{
		Title:     "My Post",
		Published: "2010-05-01T12:00:00.000-07:00",
	}}

	fm := BuildFrontMatter(post, "2010-05-my-post", "legacy-blogger")

	if fm.Date != "2010-05-01T12:00:00.000-07:00" {
		t.Errorf("Expected date passed through verbatim, got %q", fm.Date)
	}
	if !fm.Published {
		t.Error("Expected published to be true")
	}
	if fm.Slug != "2010-05-my-post" {
		t.Errorf("Expected slug 2010-05-my-post, got %q", fm.Slug)
	}
	if fm.TimeToRead != 5 {
		t.Errorf("Expected time_to_read 5, got %d", fm.TimeToRead)
	}
	if fm.Title != "My Post" {
		t.Errorf("Expected title My Post, got %q", fm.Title)
	}
	if fm.Description != "" {
		t.Errorf("Expected empty description, got %q", fm.Description)
	}
}
