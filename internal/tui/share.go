package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vmelnikv/noteshare/models"
)

// shareModel is the state of the share prompt: the recipient e-mail input for
// one owned note.
type shareModel struct {
	input   textinput.Model
	noteID  int64
	title   string
	sharing bool
	errMsg  string
}

func newShareModel(note models.Note) shareModel {
	input := textinput.New()
	input.Placeholder = "recipient email"
	input.CharLimit = 254
	input.Width = 48
	input.Focus()

	return shareModel{
		input:  input,
		noteID: note.NoteID,
		title:  note.Title,
	}
}

func (s shareModel) initCmd() tea.Cmd {
	return textinput.Blink
}

func (m *mainLoopModel) startShare(note models.Note) {
	m.shareInput = newShareModel(note)
	m.detailNote = note
	m.mode = modeShare
	m.status = ""
}

func (m mainLoopModel) updateShare(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.mode = modeList
			return m, nil
		case "enter":
			if m.shareInput.sharing {
				return m, nil
			}

			email := strings.TrimSpace(m.shareInput.input.Value())
			if email == "" {
				m.shareInput.errMsg = "recipient email is required"
				return m, nil
			}

			m.shareInput.sharing = true
			m.shareInput.errMsg = ""
			return m, m.cmdShare(m.shareInput.noteID, email)
		}
	}

	var cmd tea.Cmd
	m.shareInput.input, cmd = m.shareInput.input.Update(msg)
	return m, cmd
}

func (m mainLoopModel) viewShare() string {
	var b strings.Builder

	b.WriteString("Share ")
	b.WriteString(titleStyle.Render(fitText(m.shareInput.title, 40)))
	b.WriteString(" with:\n\n")
	b.WriteString(m.shareInput.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("the recipient gets read-only access"))

	if m.shareInput.sharing {
		b.WriteString("\n\nsharing...")
	}
	if m.shareInput.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("error: " + m.shareInput.errMsg))
	}

	return renderPage("SHARE NOTE", strings.TrimRight(b.String(), "\n"), "enter: share │ esc: cancel")
}

func (m mainLoopModel) cmdShare(noteID int64, email string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.notes.Share(m.ctx, noteID, email)
		return noteSharedMsg{email: email, err: err}
	}
}
