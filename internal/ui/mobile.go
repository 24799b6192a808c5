package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/psy/internal/platform"
)

// MobileUI provides mobile-specific UI enhancements
type MobileUI struct {
	isMobile func() bool
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI() *MobileUI {
	return &MobileUI{
		isMobile: func() bool { return fyne.CurrentDevice().IsMobile() || platform.IsMobile() },
	}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.isMobile()
}

// GetMobileSpacing returns appropriate spacing for mobile devices
func (m *MobileUI) GetMobileSpacing() float32 {
	if m.IsMobileDevice() {
		return 16 // Larger spacing for mobile
	}
	return 8 // Standard spacing for desktop
}

// GetMobilePadding returns appropriate padding for mobile devices
func (m *MobileUI) GetMobilePadding() float32 {
	if m.IsMobileDevice() {
		return 16
	}
	return 8
}

// TouchSized wraps obj so it is at least a touch target high on mobile
func (m *MobileUI) TouchSized(obj fyne.CanvasObject) fyne.CanvasObject {
	if !m.IsMobileDevice() {
		return obj
	}
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(MinTouchTargetSize, MobileButtonHeight))
	return container.NewStack(spacer, obj)
}

// Spacer returns a fixed-height gap sized for the current device
func (m *MobileUI) Spacer() fyne.CanvasObject {
	gap := canvas.NewRectangle(color.Transparent)
	gap.SetMinSize(fyne.NewSize(0, m.GetMobileSpacing()))
	return gap
}

// CreateMobileEntry creates a single line entry field optimized for mobile
func (m *MobileUI) CreateMobileEntry(placeholder string) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(placeholder)
	entry.Wrapping = fyne.TextWrapOff
	return entry
}
