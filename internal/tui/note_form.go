package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vmelnikv/noteshare/models"
)

// noteFormModel is the shared state of the create and edit screens: a title
// input and a content textarea. noteID is zero while creating.
type noteFormModel struct {
	title   textinput.Model
	content textarea.Model
	focus   int
	saving  bool
	errMsg  string
	noteID  int64
}

func newNoteForm(note models.Note) noteFormModel {
	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 200
	title.Width = 48
	title.SetValue(note.Title)
	title.Focus()

	content := textarea.New()
	content.Placeholder = "content"
	content.SetWidth(60)
	content.SetHeight(8)
	content.SetValue(note.Content)

	return noteFormModel{
		title:   title,
		content: content,
		noteID:  note.NoteID,
	}
}

func (f noteFormModel) initCmd() tea.Cmd {
	return textinput.Blink
}

func (m *mainLoopModel) startCreate() {
	m.form = newNoteForm(models.Note{})
	m.mode = modeCreate
	m.status = ""
}

func (m *mainLoopModel) startEdit(note models.Note) {
	m.form = newNoteForm(note)
	m.mode = modeEdit
	m.status = ""
}

func (m mainLoopModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.mode = modeList
			return m, nil
		case "tab":
			m.form.toggleFocus()
			return m, textinput.Blink
		case "ctrl+s":
			if m.form.saving {
				return m, nil
			}

			title := strings.TrimSpace(m.form.title.Value())
			content := strings.TrimSpace(m.form.content.Value())
			if title == "" || content == "" {
				m.form.errMsg = "title and content are required"
				return m, nil
			}

			m.form.saving = true
			m.form.errMsg = ""
			return m, m.cmdSaveNote(m.form.noteID, title, content)
		}
	}

	var cmd tea.Cmd
	if m.form.focus == 0 {
		m.form.title, cmd = m.form.title.Update(msg)
	} else {
		m.form.content, cmd = m.form.content.Update(msg)
	}
	return m, cmd
}

func (f *noteFormModel) toggleFocus() {
	if f.focus == 0 {
		f.focus = 1
		f.title.Blur()
		f.content.Focus()
		return
	}
	f.focus = 0
	f.content.Blur()
	f.title.Focus()
}

func (m mainLoopModel) viewForm() string {
	var b strings.Builder

	b.WriteString("Title:\n")
	b.WriteString(m.form.title.View())
	b.WriteString("\n\nContent:\n")
	b.WriteString(m.form.content.View())

	if m.form.saving {
		b.WriteString("\n\nsaving...")
	}
	if m.form.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("error: " + m.form.errMsg))
	}

	title := "NEW NOTE"
	if m.mode == modeEdit {
		title = "EDIT NOTE"
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "ctrl+s: save │ tab: switch field │ esc: cancel")
}

func (m mainLoopModel) cmdSaveNote(noteID int64, title, content string) tea.Cmd {
	return func() tea.Msg {
		if noteID == 0 {
			note, err := m.notes.Create(m.ctx, models.NoteInput{Title: title, Content: content})
			return noteSavedMsg{note: note, err: err}
		}

		note, err := m.notes.Update(m.ctx, noteID, models.NoteUpdate{Title: &title, Content: &content})
		return noteSavedMsg{note: note, err: err}
	}
}
