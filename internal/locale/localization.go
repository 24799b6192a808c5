package locale

import (
	"errors"

	"github.com/ytget/psy/internal/model"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Language codes
const (
	LanguageSystem  = "system"
	LanguagePolish  = "pl"
	LanguageEnglish = "en"

	// DefaultLanguage is used for "system" and as the first lookup
	DefaultLanguage = LanguagePolish
)

// Text keys for localization
const (
	KeyAppTitle       = "app_title"
	KeyInputLabel     = "input_label"
	KeyAddDog         = "add_dog"
	KeySearchDog      = "search_dog"
	KeyEmptyList      = "empty_list"
	KeyErrorBlankName = "error_blank_name"
	KeyErrorDuplicate = "error_duplicate"
	KeySettings       = "settings"
	KeyFile           = "file"
	KeyLanguage       = "language"
	KeyTheme          = "theme"
	KeyThemeSystem    = "theme_system"
	KeyThemeLight     = "theme_light"
	KeyThemeDark      = "theme_dark"
	KeySave           = "save"
	KeyCancel         = "cancel"
	KeySettingsSaved  = "settings_saved"
	KeyHelpKeys       = "help_keys"
	KeyUnknownError   = "unknown_error"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: DefaultLanguage,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == LanguageSystem {
		lang = DefaultLanguage
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts[LanguageEnglish]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// ErrorText returns the message shown under the input for an add error
func (l *Localization) ErrorText(err error) string {
	if err == nil {
		return ""
	}
	if !model.IsAddError(err) {
		return l.GetText(KeyUnknownError) + ": " + err.Error()
	}
	if errors.Is(err, model.ErrBlankName) {
		return l.GetText(KeyErrorBlankName)
	}
	return l.GetText(KeyErrorDuplicate)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		LanguagePolish:  "Polski",
		LanguageEnglish: "English",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// Polish texts
	l.texts[LanguagePolish] = map[string]string{
		KeyAppTitle:       "Pieski",
		KeyInputLabel:     "Poszukaj lub dodaj pieska 🐕",
		KeyAddDog:         "Dodaj pieska",
		KeySearchDog:      "Szukaj pieska",
		KeyEmptyList:      "Brak piesków na liście",
		KeyErrorBlankName: "Imię pieska jest puste!",
		KeyErrorDuplicate: "Piesek już istnieje na liście!",
		KeySettings:       "Ustawienia",
		KeyFile:           "Plik",
		KeyLanguage:       "Język",
		KeyTheme:          "Motyw",
		KeyThemeSystem:    "Systemowy",
		KeyThemeLight:     "Jasny",
		KeyThemeDark:      "Ciemny",
		KeySave:           "Zapisz",
		KeyCancel:         "Anuluj",
		KeySettingsSaved:  "Ustawienia zapisane",
		KeyHelpKeys:       "enter: dodaj · tab: lista · spacja: ulubiony · d: usuń · esc: wyjście",
		KeyUnknownError:   "Błąd",
	}

	// English texts
	l.texts[LanguageEnglish] = map[string]string{
		KeyAppTitle:       "Dogs",
		KeyInputLabel:     "Search or add a dog 🐕",
		KeyAddDog:         "Add dog",
		KeySearchDog:      "Search dog",
		KeyEmptyList:      "No dogs on the list",
		KeyErrorBlankName: "Dog name is blank!",
		KeyErrorDuplicate: "This dog is already on the list!",
		KeySettings:       "Settings",
		KeyFile:           "File",
		KeyLanguage:       "Language",
		KeyTheme:          "Theme",
		KeyThemeSystem:    "System",
		KeyThemeLight:     "Light",
		KeyThemeDark:      "Dark",
		KeySave:           "Save",
		KeyCancel:         "Cancel",
		KeySettingsSaved:  "Settings saved",
		KeyHelpKeys:       "enter: add · tab: list · space: favorite · d: delete · esc: quit",
		KeyUnknownError:   "Error",
	}
}
