package sink

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/profile-scout/internal/model"
)

func testRecord(slug string) model.Record {
	return model.Record{
		Name:       "Name " + slug,
		ProfileURL: "https://x.com/in/" + slug,
		Keyword:    "SWE",
		Category:   "Software Engineer",
	}
}

func readAll(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSV_HeaderOnCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	c, err := NewCSV(path)
	require.NoError(t, err)
	require.NoError(t, c.Close())

	rows := readAll(t, path)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"name", "profile_url", "search_keyword", "category"}, rows[0])
}

func TestCSV_AppendFlushesEachRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	c, err := NewCSV(path)
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Append(context.Background(), testRecord("jane")))

	// Row must be on disk before Close: append-only durability.
	rows := readAll(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, "https://x.com/in/jane", rows[1][1])
}

func TestCSV_ReopenDoesNotDuplicateHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	c, err := NewCSV(path)
	require.NoError(t, err)
	require.NoError(t, c.Append(context.Background(), testRecord("one")))
	require.NoError(t, c.Close())

	c2, err := NewCSV(path)
	require.NoError(t, err)
	require.NoError(t, c2.Append(context.Background(), testRecord("two")))
	require.NoError(t, c2.Close())

	rows := readAll(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, "name", rows[0][0])
	assert.Equal(t, "https://x.com/in/one", rows[1][1])
	assert.Equal(t, "https://x.com/in/two", rows[2][1])
}

func TestCSV_Name(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	c, err := NewCSV(path)
	require.NoError(t, err)
	defer c.Close()
	assert.Equal(t, path, c.Name())
}

func TestSeedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	c, err := NewCSV(path)
	require.NoError(t, err)
	require.NoError(t, c.Append(context.Background(), testRecord("jane")))
	require.NoError(t, c.Append(context.Background(), testRecord("john")))
	require.NoError(t, c.Close())

	keys, err := SeedKeys(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://x.com/in/jane", "https://x.com/in/john"}, keys)
}

func TestSeedKeys_MissingFile(t *testing.T) {
	keys, err := SeedKeys(filepath.Join(t.TempDir(), "nope.csv"))
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestSeedKeys_NoURLColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644))

	_, err := SeedKeys(path)
	assert.Error(t, err)
}
