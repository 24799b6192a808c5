package config

// ThemeVariant selects the colour scheme
type ThemeVariant string

const (
	ThemeSystem ThemeVariant = "system"
	ThemeLight  ThemeVariant = "light"
	ThemeDark   ThemeVariant = "dark"
)

// Settings keys
const (
	KeyLanguage     = "app_language"
	KeyThemeVariant = "theme_variant"
)

// Default values
const (
	DefaultLanguage     = "system"
	DefaultThemeVariant = ThemeSystem
)

// Preferences is the key/value store behind Settings.
// fyne.Preferences satisfies it; FilePreferences is used outside Fyne.
type Preferences interface {
	StringWithFallback(key, fallback string) string
	SetString(key, value string)
}

// Settings manages application configuration
type Settings struct {
	prefs Preferences
}

// NewSettings creates a new settings manager
func NewSettings(prefs Preferences) *Settings {
	return &Settings{prefs: prefs}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.prefs.StringWithFallback(KeyLanguage, "")
	if _, ok := s.GetLanguageOptions()[lang]; !ok {
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language. Unknown codes reset to system.
func (s *Settings) SetLanguage(lang string) {
	if _, ok := s.GetLanguageOptions()[lang]; !ok {
		lang = DefaultLanguage
	}
	s.prefs.SetString(KeyLanguage, lang)
}

// GetThemeVariant returns the configured theme variant
func (s *Settings) GetThemeVariant() ThemeVariant {
	variant := ThemeVariant(s.prefs.StringWithFallback(KeyThemeVariant, string(DefaultThemeVariant)))
	if !isValidThemeVariant(variant) {
		return DefaultThemeVariant
	}
	return variant
}

// SetThemeVariant sets the theme variant. Unknown values reset to system.
func (s *Settings) SetThemeVariant(variant ThemeVariant) {
	if !isValidThemeVariant(variant) {
		variant = DefaultThemeVariant
	}
	s.prefs.SetString(KeyThemeVariant, string(variant))
}

// GetThemeVariantOptions returns available theme variants
func (s *Settings) GetThemeVariantOptions() []ThemeVariant {
	return []ThemeVariant{ThemeSystem, ThemeLight, ThemeDark}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"pl":     "Polski",
		"en":     "English",
	}
}

func isValidThemeVariant(variant ThemeVariant) bool {
	switch variant {
	case ThemeSystem, ThemeLight, ThemeDark:
		return true
	}
	return false
}
