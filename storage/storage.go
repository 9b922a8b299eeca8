package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// ErrCorruptStore reports that the storage slot held data that could not
// be decoded. Load recovers by returning an empty collection alongside it.
var ErrCorruptStore = errors.New("store data is corrupt")

const DefaultTitle = "New Note"

type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// NewNote returns a note with a fresh id, the default title and an
// empty body, stamped with the current time.
func NewNote() Note {
	return Note{
		ID:        uuid.NewString(),
		Title:     DefaultTitle,
		Content:   "",
		CreatedAt: time.Now(),
	}
}

// Collection is the full set of notes, newest created first.
type Collection []Note

func (c Collection) Get(id string) (Note, bool) {
	for _, n := range c {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}

func (c Collection) Prepend(n Note) Collection {
	return append(Collection{n}, c...)
}

// Replace swaps the entry matching n.ID for n. Returns false when no
// entry has that id.
func (c Collection) Replace(n Note) bool {
	for i := range c {
		if c[i].ID == n.ID {
			c[i] = n
			return true
		}
	}
	return false
}

// Remove returns the collection without the entry matching id.
func (c Collection) Remove(id string) (Collection, bool) {
	for i := range c {
		if c[i].ID == id {
			out := make(Collection, 0, len(c)-1)
			out = append(out, c[:i]...)
			out = append(out, c[i+1:]...)
			return out, true
		}
	}
	return c, false
}

// Store persists a Collection to a single JSON file.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".jotter.json"), nil
}

// Load reads the slot. A missing file is an empty collection. A file
// that fails to decode yields an empty collection and ErrCorruptStore,
// so a caller can start fresh while surfacing a warning.
func (s *Store) Load() (Collection, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Collection{}, nil
		}
		return nil, err
	}
	var c Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return Collection{}, fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}
	if c == nil {
		c = Collection{}
	}
	return c, nil
}

// Save serializes the whole collection and overwrites the slot.
func (s *Store) Save(c Collection) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}
