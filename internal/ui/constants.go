package ui

import (
	"image/color"
)

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings    = "⚙"
	IconDog         = "🐶"
	IconHearts      = "💜"
	IconFavorite    = "♥"
	IconNotFavorite = "♡"
)

// Text fragments
const (
	CounterFormat    = "%s: %d"
	CounterSeparator = "    "
)

// Layout sizing (DogRow / lists)
const (
	RowMinWidth    float32 = 260
	RowMinHeight   float32 = 56
	RowCornerRound float32 = 8
	RowVerticalGap float32 = 4

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileButtonHeight float32 = 48

	// Dialog sizing
	SettingsDialogWidth  float32 = 360
	SettingsDialogHeight float32 = 260
)

// Window sizing on desktop
const (
	WindowWidth  float32 = 420
	WindowHeight float32 = 720
)

// Material palette: purple primary, lavender cards
var (
	ColorPrimary         = color.NRGBA{R: 0x62, G: 0x00, B: 0xEE, A: 0xFF}
	ColorCard            = color.NRGBA{R: 0xED, G: 0xE7, B: 0xF6, A: 0xFF}
	ColorCardDark        = color.NRGBA{R: 0x2E, G: 0x27, B: 0x3A, A: 0xFF}
	ColorErrorBackground = color.NRGBA{R: 0xFF, G: 0xCD, B: 0xD2, A: 0xFF}
	ColorErrorText       = color.NRGBA{R: 0xE5, G: 0x39, B: 0x35, A: 0xFF}
	ColorFavorite        = color.NRGBA{R: 0xF4, G: 0x43, B: 0x36, A: 0xFF}
	ColorNotFavorite     = color.NRGBA{R: 0x9E, G: 0x9E, B: 0x9E, A: 0xFF}
)
