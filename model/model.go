package model

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akshitb/jotter/storage"
)

type state int

const (
	stateBrowse state = iota
	stateEdit
)

type editFocus int

const (
	focusTitle editFocus = iota
	focusContent
)

type Model struct {
	state state

	ctrl  *Controller
	store *storage.Store

	list         list.Model
	titleInput   textinput.Model
	contentInput textarea.Model
	focus        editFocus

	width  int
	height int

	viewContent string

	status    string
	lastError string
}

func InitialModel(store *storage.Store) Model {
	notes, err := store.Load()

	ti := textinput.New()
	ti.Placeholder = "title"
	ti.CharLimit = 120
	ti.Width = 40

	ta := textarea.New()
	ta.Placeholder = "write something..."
	ta.ShowLineNumbers = false

	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Notes"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	m := Model{
		state:        stateBrowse,
		ctrl:         NewController(notes),
		store:        store,
		list:         l,
		titleInput:   ti,
		contentInput: ta,
	}

	if err != nil {
		if errors.Is(err, storage.ErrCorruptStore) {
			m.status = "Stored notes were unreadable, starting empty"
			m.lastError = err.Error()
		} else {
			m.status = "Failed to load notes: " + err.Error()
			m.lastError = err.Error()
		}
	} else {
		m.status = fmt.Sprintf("Loaded %d notes", len(notes))
	}

	// normalize the on-disk format right away
	m.persist()
	m.refreshList()
	m.renderDetail()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) persist() {
	if err := m.store.Save(m.ctrl.Notes()); err != nil {
		m.status = "Save failed: " + err.Error()
		m.lastError = err.Error()
	}
}

// refreshList rebuilds the sidebar items in collection order and parks
// the cursor on the active note.
func (m *Model) refreshList() {
	notes := m.ctrl.Notes()
	items := make([]list.Item, 0, len(notes))
	for _, n := range notes {
		items = append(items, listItem{
			id:        n.ID,
			title:     n.Title,
			createdAt: n.CreatedAt,
		})
	}
	m.list.SetItems(items)

	if active := m.ctrl.ActiveID(); active != "" {
		for i, it := range items {
			if it.(listItem).id == active {
				m.list.Select(i)
				break
			}
		}
	}
}

func (m *Model) renderDetail() {
	note, ok := m.ctrl.Active()
	if !ok {
		m.viewContent = ""
		return
	}
	m.viewContent = renderContent(note.Content, m.detailWidth())
}

// enterEdit loads the current draft into the inputs and focuses the title.
func (m *Model) enterEdit() {
	draft, ok := m.ctrl.Draft()
	if !ok {
		return
	}
	m.titleInput.SetValue(draft.Title)
	m.contentInput.SetValue(draft.Content)
	m.focus = focusTitle
	m.titleInput.Focus()
	m.contentInput.Blur()
	m.state = stateEdit
}

func (m *Model) exitEdit() {
	m.titleInput.Blur()
	m.contentInput.Blur()
	m.state = stateBrowse
}

// syncDraft pushes the current input values into the controller's draft.
func (m *Model) syncDraft() {
	title := m.titleInput.Value()
	content := m.contentInput.Value()
	m.ctrl.EditDraft(&title, &content)
}

func (m *Model) resize() {
	m.list.SetWidth(m.sidebarWidth() - 2)
	m.list.SetHeight(m.height - 6)
	m.titleInput.Width = m.detailWidth() - 6
	m.contentInput.SetWidth(m.detailWidth() - 4)
	m.contentInput.SetHeight(m.height - 12)
}

func (m Model) sidebarWidth() int {
	w := m.width / 3
	if w < 26 {
		w = 26
	}
	if w > 42 {
		w = 42
	}
	return w
}

func (m Model) detailWidth() int {
	w := m.width - m.sidebarWidth() - 4
	if w < 40 {
		w = 40
	}
	return w
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.renderDetail()
	}

	switch m.state {
	case stateBrowse:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)

		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "n":
				n := m.ctrl.Create()
				m.persist()
				m.refreshList()
				m.enterEdit()
				m.status = "Created " + n.Title
			case "enter":
				if it := m.list.SelectedItem(); it != nil {
					m.ctrl.Select(it.(listItem).id)
					m.renderDetail()
					m.status = ""
				}
			case "e":
				if m.ctrl.BeginEdit() {
					m.enterEdit()
				}
			case "d":
				if it := m.list.SelectedItem(); it != nil {
					item := it.(listItem)
					if m.ctrl.Delete(item.id) {
						m.persist()
						m.refreshList()
						m.renderDetail()
						m.status = "Deleted " + item.title
					}
				}
			case "x":
				dir, count, err := ExportAll(m.ctrl.Notes(), "")
				if err != nil {
					m.status = "Export failed: " + err.Error()
					m.lastError = err.Error()
				} else {
					m.status = fmt.Sprintf("Exported %d notes to %s/", count, dir)
				}
			}
		}
		return m, cmd

	case stateEdit:
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "ctrl+s":
				m.syncDraft()
				m.ctrl.Save()
				m.persist()
				m.refreshList()
				m.exitEdit()
				m.renderDetail()
				if note, ok := m.ctrl.Active(); ok {
					m.status = "Saved " + note.Title
				}
				return m, nil
			case "esc":
				m.ctrl.CancelEdit()
				m.refreshList()
				m.exitEdit()
				m.renderDetail()
				m.status = "Discarded changes"
				return m, nil
			case "tab":
				if m.focus == focusTitle {
					m.focus = focusContent
					m.titleInput.Blur()
					return m, m.contentInput.Focus()
				}
				m.focus = focusTitle
				m.contentInput.Blur()
				return m, m.titleInput.Focus()
			}
		}

		var cmd tea.Cmd
		if m.focus == focusTitle {
			m.titleInput, cmd = m.titleInput.Update(msg)
		} else {
			m.contentInput, cmd = m.contentInput.Update(msg)
		}
		m.syncDraft()
		return m, cmd
	}

	return m, nil
}
