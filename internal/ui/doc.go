// Package ui contains the Fyne-based mobile/desktop screen for the dog list.
// It renders snapshots from the doglist service and forwards taps on rows and
// buttons back to it. All UI strings come from the locale package.
package ui
