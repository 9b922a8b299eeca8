package model

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/akshitb/jotter/storage"
)

func TestExportAll(t *testing.T) {
	a := storage.NewNote()
	a.Title = "Groceries"
	a.Content = "milk, eggs"
	b := storage.NewNote()
	b.Title = "Groceries"
	c := storage.NewNote()
	c.Title = "plans/2026"

	dir := filepath.Join(t.TempDir(), "out")
	got, count, err := ExportAll(storage.Collection{a, b, c}, dir)
	require.NoError(t, err)
	assert.Equal(t, dir, got)
	assert.Equal(t, 3, count)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"Groceries.md", "Groceries_1.md", "plans_2026.md"}, names)

	data, err := os.ReadFile(filepath.Join(dir, "Groceries.md"))
	require.NoError(t, err)

	text := string(data)
	require.True(t, strings.HasPrefix(text, "---\n"))
	rest := text[len("---\n"):]
	end := strings.Index(rest, "---\n")
	require.Greater(t, end, 0, "frontmatter must be fenced")

	var fm frontMatter
	require.NoError(t, yaml.Unmarshal([]byte(rest[:end]), &fm))
	assert.Equal(t, a.ID, fm.ID)
	assert.True(t, a.CreatedAt.Equal(fm.Created))

	body := rest[end+len("---\n"):]
	assert.Contains(t, body, "# Groceries")
	assert.Contains(t, body, "milk, eggs")
}

func TestExportAllDefaultDir(t *testing.T) {
	oldWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	dir, count, err := ExportAll(storage.Collection{storage.NewNote()}, "")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.True(t, strings.HasPrefix(dir, "jotter_export_"))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
