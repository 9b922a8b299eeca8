package model

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("jotter"))
	s.WriteString("\n\n")

	sidebar := sidebarStyle.Width(m.sidebarWidth()).Render(m.list.View())
	detail := detailStyle.Width(m.detailWidth()).Render(m.detailView())
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, detail))
	s.WriteString("\n")

	s.WriteString(helpStyle.Render(m.helpLine()))

	if m.status != "" {
		s.WriteString("\n")
		if m.lastError != "" {
			s.WriteString(errorStyle.Render(m.status))
		} else {
			s.WriteString(successStyle.Render(m.status))
		}
	}

	return s.String()
}

func (m Model) detailView() string {
	if m.state == stateEdit {
		var s strings.Builder
		s.WriteString(m.titleInput.View())
		s.WriteString("\n\n")
		s.WriteString(m.contentInput.View())
		return s.String()
	}

	if len(m.ctrl.Notes()) == 0 {
		return emptyStyle.Render("No notes yet. Press n to create one.")
	}

	note, ok := m.ctrl.Active()
	if !ok {
		return emptyStyle.Render("Select a note and press enter to read it.")
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render(note.Title))
	s.WriteString("\n")
	s.WriteString(helpStyle.Render(note.CreatedAt.Format("Jan 2, 2006")))
	s.WriteString("\n\n")
	s.WriteString(m.viewContent)
	return s.String()
}

func (m Model) helpLine() string {
	if m.state == stateEdit {
		return "ctrl+s:save  esc:cancel  tab:switch field"
	}
	parts := []string{"n:new", "enter:open"}
	if _, ok := m.ctrl.Active(); ok {
		parts = append(parts, "e:edit")
	}
	parts = append(parts, "d:delete", "x:export", "q:quit")
	return strings.Join(parts, "  ")
}
