// Package doglist implements the in-memory dog list: an ordered set of unique
// names plus the subset marked as favorite. Favorites are kept at the top of the
// list through a stable partition applied on every toggle.
//
// The service is not safe for concurrent use. Hosts call it from a single
// goroutine (the Fyne UI thread or the bubbletea update loop).
package doglist
