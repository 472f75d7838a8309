package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vmelnikv/noteshare/models"
)

type viewMode int

const (
	modeList viewMode = iota
	modeDetail
	modeCreate
	modeEdit
	modeShare
	modeConfirmDelete
)

type noteTab int

const (
	tabCreated noteTab = iota
	tabShared
)

// mainLoopModel drives the authenticated part of the client: two paginated
// note listings (created and shared), a detail view and the create, edit,
// share and delete flows. Only the created tab permits mutation; shared notes
// are read-only for the recipient.
type mainLoopModel struct {
	ctx   context.Context
	notes NoteService
	user  models.User

	mode viewMode
	tab  noteTab
	page int
	data models.Page[models.Note]
	idx  int

	loading bool
	status  string
	errMsg  string

	detailNote models.Note

	form noteFormModel

	shareInput shareModel

	logout bool
}

func newMainLoopModel(ctx context.Context, notes NoteService, user models.User) mainLoopModel {
	return mainLoopModel{
		ctx:     ctx,
		notes:   notes,
		user:    user,
		page:    1,
		loading: true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadNotes()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notesLoadedMsg:
		m.loading = false
		if msg.err != nil && len(msg.page.Results) == 0 {
			m.errMsg = humanizeTransportError(msg.err)
			return m, nil
		}
		if msg.err != nil {
			// Cached fallback: show the rows, surface the reason.
			m.status = humanizeTransportError(msg.err)
		}
		m.errMsg = ""
		m.data = msg.page
		if m.idx >= len(m.data.Results) {
			m.idx = len(m.data.Results) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case noteLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeTransportError(msg.err)
			m.mode = modeList
			return m, nil
		}
		m.errMsg = ""
		m.detailNote = msg.note
		m.mode = modeDetail
		return m, nil

	case noteSavedMsg:
		m.form.saving = false
		if msg.err != nil {
			m.form.errMsg = humanizeTransportError(msg.err)
			return m, nil
		}
		if m.mode == modeEdit {
			m.status = "note updated"
		} else {
			m.status = "note created"
		}
		m.mode = modeList
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadNotes()

	case noteDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeTransportError(msg.err)
			m.mode = modeList
			return m, nil
		}
		m.status = "note deleted"
		m.errMsg = ""
		m.detailNote = models.Note{}
		m.mode = modeList
		m.loading = true
		return m, m.cmdLoadNotes()

	case noteSharedMsg:
		m.shareInput.sharing = false
		if msg.err != nil {
			m.shareInput.errMsg = humanizeTransportError(msg.err)
			return m, nil
		}
		m.status = "shared with " + msg.email
		m.mode = modeDetail
		return m, nil
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey && keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modeDetail:
		return m.updateDetail(msg)
	case modeCreate, modeEdit:
		return m.updateForm(msg)
	case modeShare:
		return m.updateShare(msg)
	case modeConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	return m.updateList(msg)
}

func (m mainLoopModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "ctrl+l":
		m.logout = true
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.data.Results)-1 {
			m.idx++
		}
	case "tab":
		if m.tab == tabCreated {
			m.tab = tabShared
		} else {
			m.tab = tabCreated
		}
		m.page = 1
		m.idx = 0
		m.status = ""
		m.loading = true
		return m, m.cmdLoadNotes()
	case "left":
		if m.data.HasPrevious && m.page > 1 {
			m.page--
			m.idx = 0
			m.loading = true
			return m, m.cmdLoadNotes()
		}
	case "right":
		if m.data.HasNext {
			m.page++
			m.idx = 0
			m.loading = true
			return m, m.cmdLoadNotes()
		}
	case "r":
		m.status = ""
		m.loading = true
		return m, m.cmdLoadNotes()
	case "enter":
		note, ok := m.current()
		if !ok {
			return m, nil
		}
		m.loading = true
		return m, m.cmdLoadNote(note.NoteID)
	case "n":
		m.startCreate()
		return m, m.form.initCmd()
	case "e":
		note, ok := m.current()
		if ok && m.tab == tabCreated {
			m.startEdit(note)
			return m, m.form.initCmd()
		}
	case "s":
		note, ok := m.current()
		if ok && m.tab == tabCreated {
			m.startShare(note)
			return m, m.shareInput.initCmd()
		}
	case "d":
		_, ok := m.current()
		if ok && m.tab == tabCreated {
			m.detailNote = models.Note{}
			m.mode = modeConfirmDelete
		}
	}

	return m, nil
}

func (m mainLoopModel) View() string {
	switch m.mode {
	case modeDetail:
		return m.viewDetail()
	case modeCreate, modeEdit:
		return m.viewForm()
	case modeShare:
		return m.viewShare()
	case modeConfirmDelete:
		return m.viewConfirmDelete()
	}
	return m.viewList()
}

func (m mainLoopModel) viewList() string {
	var b strings.Builder

	b.WriteString(m.tabsLine())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("loading...")
	case len(m.data.Results) == 0:
		b.WriteString("no notes yet")
	default:
		for i, note := range m.data.Results {
			cursor := "  "
			if i == m.idx {
				cursor = cursorStyle.Render("> ")
			}
			b.WriteString(fmt.Sprintf("%s%-4d %-40s %s\n",
				cursor, note.NoteID, fitText(note.Title, 40), note.CreatedAt.Format("2006-01-02 15:04")))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(m.pageLine()))
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("error: " + m.errMsg))
	}

	help := "enter: open │ tab: switch list │ ←/→: page │ n: new │ r: refresh │ ctrl+l: logout │ q: quit"
	if m.tab == tabCreated {
		help = "enter: open │ tab: switch list │ ←/→: page │ n: new │ e: edit │ s: share │ d: delete │ r: refresh │ q: quit"
	}

	return renderPage("NOTES — "+m.user.Username, strings.TrimRight(b.String(), "\n"), help)
}

func (m mainLoopModel) tabsLine() string {
	created, shared := " Created ", " Shared "
	if m.tab == tabCreated {
		created = titleStyle.Render("[ Created ]")
	} else {
		shared = titleStyle.Render("[ Shared ]")
	}
	return created + " " + shared
}

func (m mainLoopModel) pageLine() string {
	line := fmt.Sprintf("page %d │ %d notes total", m.page, m.data.Count)
	if m.data.HasPrevious {
		line = "← " + line
	}
	if m.data.HasNext {
		line = line + " →"
	}
	return line
}

func (m mainLoopModel) current() (models.Note, bool) {
	if m.idx < 0 || m.idx >= len(m.data.Results) {
		return models.Note{}, false
	}
	return m.data.Results[m.idx], true
}

func (m mainLoopModel) cmdLoadNotes() tea.Cmd {
	tab, page := m.tab, m.page
	return func() tea.Msg {
		var (
			result models.Page[models.Note]
			err    error
		)
		if tab == tabCreated {
			result, err = m.notes.ListCreated(m.ctx, page)
		} else {
			result, err = m.notes.ListShared(m.ctx, page)
		}
		return notesLoadedMsg{page: result, err: err}
	}
}

func (m mainLoopModel) cmdLoadNote(noteID int64) tea.Cmd {
	return func() tea.Msg {
		note, err := m.notes.Get(m.ctx, noteID)
		return noteLoadedMsg{note: note, err: err}
	}
}

func (m mainLoopModel) cmdDelete(noteID int64) tea.Cmd {
	return func() tea.Msg {
		return noteDeletedMsg{err: m.notes.Delete(m.ctx, noteID)}
	}
}
