// Package tui implements the interactive terminal interface of the noteshare
// client on top of Bubble Tea.
//
// The entry point is [TUI], which runs two programs in sequence: [TUI.LoginFlow]
// (menu, login and registration screens routed by [RootModel]) and
// [TUI.MainLoop] (note listings, detail view, create/edit forms, sharing and
// deletion). Screens talk to the server through the [AuthService] and
// [NoteService] interfaces so the package stays independent of the transport
// and cache wiring.
package tui
