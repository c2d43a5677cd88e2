package collect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeen_AddContains(t *testing.T) {
	s := NewSeen()

	assert.False(t, s.Contains("https://example.com/in/jane"))
	s.Add("https://example.com/in/jane")
	assert.True(t, s.Contains("https://example.com/in/jane"))
	assert.Equal(t, 1, s.Len())
}

func TestSeen_CaseFolded(t *testing.T) {
	s := NewSeen()

	s.Add("https://example.com/in/Jane-Doe")
	assert.True(t, s.Contains("https://example.com/in/jane-doe"))
	assert.True(t, s.Contains("https://EXAMPLE.com/in/JANE-DOE"))
	assert.Equal(t, 1, s.Len())
}

func TestSeen_Seed(t *testing.T) {
	s := NewSeen()

	s.Seed([]string{"a", "b", "a"})
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("A"))
	assert.True(t, s.Contains("b"))
	assert.False(t, s.Contains("c"))
}
