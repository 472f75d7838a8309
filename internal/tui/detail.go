package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

func (m mainLoopModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q":
		m.mode = modeList
		m.status = ""
	case "c":
		if err := clipboard.WriteAll(m.detailNote.Content); err != nil {
			m.errMsg = "copy failed: " + err.Error()
			return m, nil
		}
		m.status = "copied to clipboard"
	case "e":
		if m.tab == tabCreated {
			m.startEdit(m.detailNote)
			return m, m.form.initCmd()
		}
	case "s":
		if m.tab == tabCreated {
			m.startShare(m.detailNote)
			return m, m.shareInput.initCmd()
		}
	case "d":
		if m.tab == tabCreated {
			m.mode = modeConfirmDelete
		}
	}

	return m, nil
}

func (m mainLoopModel) viewDetail() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.detailNote.Title))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.detailNote.CreatedAt.Format("2006-01-02 15:04")))
	b.WriteString("\n\n")
	b.WriteString(m.detailNote.Content)

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("error: " + m.errMsg))
	}

	help := "c: copy │ esc: back"
	if m.tab == tabCreated {
		help = "c: copy │ e: edit │ s: share │ d: delete │ esc: back"
	}

	return renderPage("NOTE", strings.TrimRight(b.String(), "\n"), help)
}

func (m mainLoopModel) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y":
		note, ok := m.noteToDelete()
		if !ok {
			m.mode = modeList
			return m, nil
		}
		return m, m.cmdDelete(note)
	case "n", "esc":
		m.mode = modeList
	}

	return m, nil
}

// noteToDelete resolves the deletion target: the opened note when the confirm
// screen was entered from the detail view, the highlighted row otherwise.
func (m mainLoopModel) noteToDelete() (int64, bool) {
	if m.detailNote.NoteID != 0 {
		return m.detailNote.NoteID, true
	}
	note, ok := m.current()
	if !ok {
		return 0, false
	}
	return note.NoteID, true
}

func (m mainLoopModel) viewConfirmDelete() string {
	title := m.detailNote.Title
	if title == "" {
		if note, ok := m.current(); ok {
			title = note.Title
		}
	}

	body := "Delete note " + titleStyle.Render(fitText(title, 40)) + "?\n\nShared access is revoked together with the note."
	return renderPage("DELETE NOTE", body, "y: delete │ n: cancel")
}
