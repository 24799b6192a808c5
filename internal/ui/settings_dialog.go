package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/psy/internal/config"
	"github.com/ytget/psy/internal/locale"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *locale.Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	languageSelect *widget.Select
	themeRadio     *widget.RadioGroup

	// display label -> stored value
	languageCodes map[string]string
	themeValues   map[string]config.ThemeVariant
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *locale.Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		localization:  localization,
		window:        window,
		onSaved:       onSaved,
		languageCodes: make(map[string]string),
		themeValues:   make(map[string]config.ThemeVariant),
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	languageLabels := sd.settings.GetLanguageOptions()
	languageOptions := []string{}
	for _, code := range sortedKeys(languageLabels) {
		label := languageLabels[code]
		sd.languageCodes[label] = code
		languageOptions = append(languageOptions, label)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	themeOptions := []string{}
	for _, variant := range sd.settings.GetThemeVariantOptions() {
		label := sd.themeLabel(variant)
		sd.themeValues[label] = variant
		themeOptions = append(themeOptions, label)
	}
	sd.themeRadio = widget.NewRadioGroup(themeOptions, nil)
	sd.themeRadio.Required = true

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(locale.KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(locale.KeyTheme)+":"),
		sd.themeRadio,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(locale.KeySettings),
		sd.localization.GetText(locale.KeySave),
		sd.localization.GetText(locale.KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
	sd.themeRadio.SetSelected(sd.themeLabel(sd.settings.GetThemeVariant()))
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if variant, ok := sd.themeValues[sd.themeRadio.Selected]; ok {
		sd.settings.SetThemeVariant(variant)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

func (sd *SettingsDialog) themeLabel(variant config.ThemeVariant) string {
	switch variant {
	case config.ThemeLight:
		return sd.localization.GetText(locale.KeyThemeLight)
	case config.ThemeDark:
		return sd.localization.GetText(locale.KeyThemeDark)
	default:
		return sd.localization.GetText(locale.KeyThemeSystem)
	}
}

// sortedKeys returns map keys in stable order for menus and selects
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
