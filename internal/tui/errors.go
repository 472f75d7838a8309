package tui

import (
	"errors"
	"strings"
)

// ErrUserQuit is returned by [TUI.LoginFlow] when the user quits the program
// instead of authenticating.
var ErrUserQuit = errors.New("quit by user")

func humanizeTransportError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "server is unreachable"
	}

	return err.Error()
}
