// Package render turns retained posts into Markdown documents: it derives
// filenames from permalinks, builds the YAML front matter, and serializes
// the final text.
package render

import "strings"

// Name is a derived output filename plus the slug used in front matter.
type Name struct {
	Filename string
	Slug     string
}

// DeriveName maps a post permalink to a flat Markdown filename. The second
// return is false when the post should be skipped: a blank remainder means
// the entry was a configuration artifact, and a "p-" prefix denotes a
// static page, which this tool does not export.
//
// The site root is removed wherever it occurs in the string, in both its
// declared form and its https-upgraded form. Inherited behavior; a stricter
// prefix-only rule would change output names for existing users.
func DeriveName(link, siteRoot string) (Name, bool) {
	name := link
	if strings.HasSuffix(name, ".html") {
		name = strings.TrimSuffix(name, ".html") + ".md"
	}

	name = strings.ReplaceAll(name, siteRoot, "")
	name = strings.ReplaceAll(name, httpsRoot(siteRoot), "")

	if strings.TrimSpace(name) == "" {
		return Name{}, false
	}
	if strings.HasPrefix(name, "p-") {
		return Name{}, false
	}

	name = strings.ReplaceAll(name, "/", "-")

	return Name{
		Filename: name,
		Slug:     strings.TrimSuffix(name, ".md"),
	}, true
}

// httpsRoot upgrades the scheme of the declared site root. Feeds declare
// the root with one scheme while permalinks may use the other.
func httpsRoot(siteRoot string) string {
	return strings.Replace(siteRoot, "http://", "https://", 1)
}
