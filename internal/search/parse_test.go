package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/profile-scout/internal/collect"
)

func TestParseProfile(t *testing.T) {
	key, name, ok := ParseProfile(collect.Item{
		URL:   "https://www.linkedin.com/in/jane-doe",
		Title: "Jane Doe - Software Engineer - Acme",
	})
	assert.True(t, ok)
	assert.Equal(t, "https://www.linkedin.com/in/jane-doe", key)
	assert.Equal(t, "Jane Doe", name)
}

func TestParseProfile_NonProfileURL(t *testing.T) {
	_, _, ok := ParseProfile(collect.Item{
		URL:   "https://www.linkedin.com/company/acme",
		Title: "Acme",
	})
	assert.False(t, ok)
}

func TestParseProfile_SnippetFallback(t *testing.T) {
	_, name, ok := ParseProfile(collect.Item{
		URL:     "https://www.linkedin.com/in/john",
		Snippet: "John Roe - Product Manager",
	})
	assert.True(t, ok)
	assert.Equal(t, "John Roe", name)
}

func TestParseProfile_NoDelimiter(t *testing.T) {
	_, name, ok := ParseProfile(collect.Item{
		URL:   "https://www.linkedin.com/in/solo",
		Title: "Solo Name",
	})
	assert.True(t, ok)
	assert.Equal(t, "Solo Name", name)
}

func TestParseProfile_EmptyTitleAndSnippet(t *testing.T) {
	_, name, ok := ParseProfile(collect.Item{URL: "https://www.linkedin.com/in/ghost"})
	assert.True(t, ok)
	assert.Empty(t, name)
}
