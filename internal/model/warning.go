package model

import "fmt"

// WarningKind classifies a non-fatal problem surfaced during a run.
type WarningKind string

const (
	WarnMissingField    WarningKind = "missing_field"    // entry lacked a required attribute
	WarnOrphanedComment WarningKind = "orphaned_comment" // comment's reply target matched no post
)

// Warning is a recoverable per-entry problem. The core collects warnings and
// keeps going; presentation (colors, streams) is the caller's concern.
type Warning struct {
	Kind    WarningKind
	Message string
}

// MissingFieldWarning reports an entry skipped because a required field was
// absent or empty.
func MissingFieldWarning(field, title string) Warning {
	return Warning{
		Kind:    WarnMissingField,
		Message: fmt.Sprintf("entry %q skipped: missing %s", title, field),
	}
}

// OrphanedCommentWarning reports a comment whose parent post was not found.
func OrphanedCommentWarning(title string) Warning {
	return Warning{
		Kind:    WarnOrphanedComment,
		Message: fmt.Sprintf("comment %q has no corresponding post", title),
	}
}
