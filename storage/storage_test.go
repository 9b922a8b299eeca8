package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "notes.json"))
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields empty collection", func(t *testing.T) {
		s := testStore(t)

		c, err := s.Load()
		require.NoError(t, err)
		assert.Empty(t, c)
	})

	t.Run("malformed data yields empty collection and ErrCorruptStore", func(t *testing.T) {
		s := testStore(t)
		require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0600))

		c, err := s.Load()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrCorruptStore))
		assert.Empty(t, c)
	})

	t.Run("wrong shape is corrupt, not fatal", func(t *testing.T) {
		s := testStore(t)
		require.NoError(t, os.WriteFile(s.Path(), []byte(`{"data":{}}`), 0600))

		c, err := s.Load()
		assert.True(t, errors.Is(err, ErrCorruptStore))
		assert.Empty(t, c)
	})
}

func TestRoundTrip(t *testing.T) {
	s := testStore(t)

	a := NewNote()
	a.Title = "Groceries"
	a.Content = "milk, eggs"
	b := NewNote()
	b.Title = "Ideas"

	original := Collection{}.Prepend(a).Prepend(b)
	require.NoError(t, s.Save(original))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	for i, n := range original {
		assert.Equal(t, n.ID, loaded[i].ID)
		assert.Equal(t, n.Title, loaded[i].Title)
		assert.Equal(t, n.Content, loaded[i].Content)
		assert.True(t, n.CreatedAt.Equal(loaded[i].CreatedAt), "timestamp should survive the round trip")
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := testStore(t)

	require.NoError(t, s.Save(Collection{NewNote(), NewNote()}))
	require.NoError(t, s.Save(Collection{}))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestCollection(t *testing.T) {
	t.Run("Prepend puts the newest first", func(t *testing.T) {
		a, b := NewNote(), NewNote()
		c := Collection{}.Prepend(a).Prepend(b)

		require.Len(t, c, 2)
		assert.Equal(t, b.ID, c[0].ID)
		assert.Equal(t, a.ID, c[1].ID)
	})

	t.Run("Get finds by id", func(t *testing.T) {
		a := NewNote()
		c := Collection{a}

		got, ok := c.Get(a.ID)
		require.True(t, ok)
		assert.Equal(t, a, got)

		_, ok = c.Get("nope")
		assert.False(t, ok)
	})

	t.Run("Replace swaps the full record", func(t *testing.T) {
		a := NewNote()
		c := Collection{a}

		edited := a
		edited.Title = "Renamed"
		edited.Content = "body"
		require.True(t, c.Replace(edited))

		got, _ := c.Get(a.ID)
		assert.Equal(t, "Renamed", got.Title)
		assert.Equal(t, "body", got.Content)
		assert.True(t, a.CreatedAt.Equal(got.CreatedAt))

		missing := NewNote()
		assert.False(t, c.Replace(missing))
	})

	t.Run("Remove drops exactly one entry", func(t *testing.T) {
		a, b := NewNote(), NewNote()
		c := Collection{a, b}

		rest, ok := c.Remove(a.ID)
		require.True(t, ok)
		require.Len(t, rest, 1)
		assert.Equal(t, b.ID, rest[0].ID)

		same, ok := rest.Remove("nope")
		assert.False(t, ok)
		assert.Len(t, same, 1)
	})
}

func TestNewNoteDefaults(t *testing.T) {
	before := time.Now()
	n := NewNote()

	assert.NotEmpty(t, n.ID)
	assert.Equal(t, DefaultTitle, n.Title)
	assert.Empty(t, n.Content)
	assert.False(t, n.CreatedAt.Before(before))
}
