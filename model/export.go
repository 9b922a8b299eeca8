package model

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/akshitb/jotter/storage"
)

type frontMatter struct {
	ID      string    `yaml:"id"`
	Created time.Time `yaml:"created"`
}

func renderExport(n storage.Note) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(frontMatter{ID: n.ID, Created: n.CreatedAt}); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	buf.WriteString("---\n\n")
	buf.WriteString("# " + n.Title + "\n\n")
	buf.WriteString(n.Content)
	if !strings.HasSuffix(n.Content, "\n") {
		buf.WriteString("\n")
	}
	return buf.Bytes(), nil
}

// ExportAll writes every note as a markdown file with YAML frontmatter.
// An empty dir picks a timestamped directory under the working dir.
// Returns the directory written to and how many files it holds.
func ExportAll(notes storage.Collection, dir string) (string, int, error) {
	if dir == "" {
		dir = fmt.Sprintf("jotter_export_%d", time.Now().Unix())
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", 0, err
	}

	taken := make(map[string]bool, len(notes))
	count := 0
	for _, note := range notes {
		base := strings.ReplaceAll(note.Title, "/", "_")
		if base == "" {
			base = note.ID
		}
		name := base
		counter := 1
		for taken[name] {
			name = fmt.Sprintf("%s_%d", base, counter)
			counter++
		}
		taken[name] = true

		data, err := renderExport(note)
		if err != nil {
			return dir, count, err
		}
		path := filepath.Join(dir, name+".md")
		if err := os.WriteFile(path, data, 0644); err != nil {
			return dir, count, err
		}
		count++
	}
	return dir, count, nil
}
