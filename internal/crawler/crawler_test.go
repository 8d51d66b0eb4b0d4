package crawler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, rel := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	}
	return root
}

func collect(t *testing.T, c *Crawler, root string) []string {
	t.Helper()
	var got []string
	require.NoError(t, c.Walk(root, func(rel string) error {
		got = append(got, rel)
		return nil
	}))
	return got
}

func TestCrawler_IncludeExclude(t *testing.T) {
	root := writeTree(t,
		"main.go",
		"pkg/lib.go",
		"pkg/lib_test.go",
		"README.md",
		"notes.txt",
	)

	c, err := NewCrawler([]string{"**.go", "**.md"}, []string{"**_test.go"})
	require.NoError(t, err)

	got := collect(t, c, root)
	assert.ElementsMatch(t, []string{"main.go", "pkg/lib.go", "README.md"}, got)
}

func TestCrawler_IgnoredDirectories(t *testing.T) {
	root := writeTree(t,
		"main.go",
		".git/objects/blob.go",
		"vendor/dep/dep.go",
		"testdata/fixture.go",
	)

	c, err := NewCrawler([]string{"**.go"}, nil)
	require.NoError(t, err)

	got := collect(t, c, root)
	assert.Equal(t, []string{"main.go"}, got)
}

func TestNewCrawler_BadPattern(t *testing.T) {
	_, err := NewCrawler([]string{"[unclosed"}, nil)
	assert.Error(t, err)

	_, err = NewCrawler([]string{"**.go"}, []string{"[unclosed"})
	assert.Error(t, err)
}
