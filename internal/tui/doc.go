// Package tui is a terminal rendering of the dog list built on bubbletea and
// lipgloss. It drives the same doglist service as the Fyne screen and uses the
// views returned by each call to redraw.
package tui
