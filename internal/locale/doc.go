// Package locale holds the translated UI strings shared by the Fyne and
// terminal screens, and maps add errors to user-facing messages.
package locale
