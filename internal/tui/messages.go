package tui

import "github.com/vmelnikv/noteshare/models"

// NavigateTo asks [RootModel] to switch the active page. Payload, when set, is
// re-delivered to the target page as its first message.
type NavigateTo struct {
	Page    string
	Payload interface{}
}

// LoginResult finishes the authentication flow. [RootModel] quits the login
// program when Err is nil; the login and register screens render Err
// otherwise.
type LoginResult struct {
	User models.User
	Err  error
}

// RegisterSuccessNotice is shown on the menu after a successful registration
// that did not immediately authenticate.
type RegisterSuccessNotice struct {
	Username string
}

type notesLoadedMsg struct {
	page models.Page[models.Note]
	err  error
}

type noteLoadedMsg struct {
	note models.Note
	err  error
}

type noteSavedMsg struct {
	note models.Note
	err  error
}

type noteDeletedMsg struct {
	err error
}

type noteSharedMsg struct {
	email string
	err   error
}
