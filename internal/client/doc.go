// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the server adapter and the local cache into a
// single process lifecycle: restore or establish a session, run the main
// loop, and start over on logout.
package client
