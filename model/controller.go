package model

import (
	"github.com/akshitb/jotter/storage"
)

// Controller owns the in-memory collection and the selection state.
// It knows nothing about the terminal; the tea model dispatches into it
// and persists after any transition that returns true.
type Controller struct {
	notes    storage.Collection
	activeID string
	editing  bool
	draft    storage.Note
}

func NewController(notes storage.Collection) *Controller {
	return &Controller{notes: notes}
}

func (c *Controller) Notes() storage.Collection {
	return c.notes
}

func (c *Controller) ActiveID() string {
	return c.activeID
}

func (c *Controller) Active() (storage.Note, bool) {
	if c.activeID == "" {
		return storage.Note{}, false
	}
	return c.notes.Get(c.activeID)
}

func (c *Controller) Editing() bool {
	return c.editing
}

func (c *Controller) Draft() (storage.Note, bool) {
	if !c.editing {
		return storage.Note{}, false
	}
	return c.draft, true
}

// Create prepends a fresh note and immediately enters edit mode on it.
func (c *Controller) Create() storage.Note {
	n := storage.NewNote()
	c.notes = c.notes.Prepend(n)
	c.activeID = n.ID
	c.draft = n
	c.editing = true
	return n
}

// Select makes id the active note. Any pending draft is discarded
// without saving. An unknown id is a no-op.
func (c *Controller) Select(id string) bool {
	if _, ok := c.notes.Get(id); !ok {
		return false
	}
	c.activeID = id
	c.editing = false
	return true
}

// BeginEdit copies the active note into the draft.
func (c *Controller) BeginEdit() bool {
	if c.editing || c.activeID == "" {
		return false
	}
	n, ok := c.notes.Get(c.activeID)
	if !ok {
		return false
	}
	c.draft = n
	c.editing = true
	return true
}

// EditDraft merges the non-nil fields into the draft. The committed
// collection is untouched until Save.
func (c *Controller) EditDraft(title, content *string) bool {
	if !c.editing {
		return false
	}
	if title != nil {
		c.draft.Title = *title
	}
	if content != nil {
		c.draft.Content = *content
	}
	return true
}

// Save commits the draft over the collection entry with the same id and
// returns to viewing it. The caller persists.
func (c *Controller) Save() bool {
	if !c.editing {
		return false
	}
	c.notes.Replace(c.draft)
	c.activeID = c.draft.ID
	c.editing = false
	return true
}

// CancelEdit throws the draft away and reverts to the committed entry.
// If the entry is gone, selection is cleared.
func (c *Controller) CancelEdit() bool {
	if !c.editing {
		return false
	}
	c.editing = false
	if _, ok := c.notes.Get(c.activeID); !ok {
		c.activeID = ""
	}
	return true
}

// Delete removes the note with id from any state. Deleting the active
// note moves selection to the first remaining entry, or clears it when
// the collection is now empty. Deleting any other note leaves selection
// and edit mode alone. The caller persists.
func (c *Controller) Delete(id string) bool {
	rest, removed := c.notes.Remove(id)
	if !removed {
		return false
	}
	c.notes = rest
	if id == c.activeID {
		c.editing = false
		if len(c.notes) > 0 {
			c.activeID = c.notes[0].ID
		} else {
			c.activeID = ""
		}
	}
	return true
}
