package search

import (
	"strings"

	"github.com/sells-group/profile-scout/internal/collect"
)

// profilePathMarker distinguishes individual profile URLs from company pages
// and search-result chaff.
const profilePathMarker = "/in/"

// ParseProfile extracts the canonical profile URL and a best-effort display
// name from a raw result item. Items whose URL does not point at a profile
// carry no usable identity and report ok=false.
func ParseProfile(it collect.Item) (key, name string, ok bool) {
	if !strings.Contains(it.URL, profilePathMarker) {
		return "", "", false
	}
	return it.URL, displayName(it.Title, it.Snippet), true
}

// displayName takes the text before the first "-" of the title, falling back
// to the snippet. Result titles usually look like "Jane Doe - Title - Site".
func displayName(title, snippet string) string {
	src := title
	if src == "" {
		src = snippet
	}
	name, _, _ := strings.Cut(src, "-")
	return strings.TrimSpace(name)
}
