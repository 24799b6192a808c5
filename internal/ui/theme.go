package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/psy/internal/config"
)

// Custom colour names used by DogRow and the input row
const (
	ColorNameCard            fyne.ThemeColorName = "psyCard"
	ColorNameErrorBackground fyne.ThemeColorName = "psyErrorBackground"
	ColorNameFavorite        fyne.ThemeColorName = "psyFavorite"
	ColorNameNotFavorite     fyne.ThemeColorName = "psyNotFavorite"
)

// PsyTheme is the app theme: purple primary on white, lavender cards.
// A non-system variant pins light or dark regardless of the OS setting.
type PsyTheme struct {
	variant config.ThemeVariant
}

// NewPsyTheme creates the theme for the configured variant
func NewPsyTheme(variant config.ThemeVariant) fyne.Theme {
	return &PsyTheme{variant: variant}
}

// Color returns theme colors
func (t *PsyTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	variant = t.effectiveVariant(variant)
	dark := variant == theme.VariantDark

	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return ColorPrimary
	case theme.ColorNameError:
		return ColorErrorText
	case theme.ColorNameBackground:
		if dark {
			return color.NRGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.White
	case theme.ColorNameForeground:
		if dark {
			return color.White
		}
		return color.Black
	case ColorNameCard:
		if dark {
			return ColorCardDark
		}
		return ColorCard
	case ColorNameErrorBackground:
		if dark {
			return color.NRGBA{R: 0x5D, G: 0x1F, B: 0x25, A: 0xFF}
		}
		return ColorErrorBackground
	case ColorNameFavorite:
		return ColorFavorite
	case ColorNameNotFavorite:
		return ColorNotFavorite
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *PsyTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *PsyTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes; text is slightly larger for touch screens
func (t *PsyTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 16
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameInputRadius:
		return 8
	case theme.SizeNameSelectionRadius:
		return 8
	}

	return theme.DefaultTheme().Size(name)
}

func (t *PsyTheme) effectiveVariant(requested fyne.ThemeVariant) fyne.ThemeVariant {
	switch t.variant {
	case config.ThemeLight:
		return theme.VariantLight
	case config.ThemeDark:
		return theme.VariantDark
	}
	return requested
}

// themeColor looks up a colour in the running app's theme
func themeColor(name fyne.ThemeColorName) color.Color {
	app := fyne.CurrentApp()
	if app == nil {
		return NewPsyTheme(config.ThemeSystem).Color(name, theme.VariantLight)
	}
	settings := app.Settings()
	return settings.Theme().Color(name, settings.ThemeVariant())
}
