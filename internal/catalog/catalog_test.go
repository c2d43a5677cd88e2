package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cats, err := Default()
	require.NoError(t, err)
	require.NotEmpty(t, cats)

	names := make(map[string]bool)
	for _, c := range cats {
		names[c.Name] = true
		assert.NotEmpty(t, c.Keywords, "category %s", c.Name)
	}
	assert.True(t, names["Software Engineer"])
	assert.True(t, names["Data Scientist"])
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cats.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
categories:
  - name: Engineer
    keywords: ["SWE", "Backend"]
    targets: ["Acme Corp"]
  - name: Analyst
    keywords: ["Analyst"]
`), 0o644))

	cats, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "Engineer", cats[0].Name)
	assert.Equal(t, []string{"SWE", "Backend"}, cats[0].Keywords)
	assert.Equal(t, []string{"Acme Corp"}, cats[0].Targets)
	assert.Empty(t, cats[1].Targets)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestResolve_EmptyPathUsesDefault(t *testing.T) {
	cats, err := Resolve("")
	require.NoError(t, err)
	assert.NotEmpty(t, cats)
}

func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"empty catalog", `categories: []`},
		{"empty name", "categories:\n  - name: \"\"\n    keywords: [a]"},
		{"no keywords", "categories:\n  - name: X\n    keywords: []"},
		{"empty keyword", "categories:\n  - name: X\n    keywords: [\"\"]"},
		{"empty target", "categories:\n  - name: X\n    keywords: [a]\n    targets: [\"\"]"},
		{"duplicate category", "categories:\n  - name: X\n    keywords: [a]\n  - name: X\n    keywords: [b]"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cats.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.yaml), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}
