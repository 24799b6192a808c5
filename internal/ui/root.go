package ui

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/psy/internal/config"
	"github.com/ytget/psy/internal/doglist"
	"github.com/ytget/psy/internal/locale"
	"github.com/ytget/psy/internal/model"
)

// Error line sizing
const (
	ErrorTextSize   float32 = 14
	CounterTextSize float32 = 18
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	dogs         doglist.Manager
	settings     *config.Settings
	localization *locale.Localization
	mobile       *MobileUI
	version      string

	// Input row
	nameEntry       *widget.Entry
	entryBackground *canvas.Rectangle
	addBtn          *widget.Button
	searchBtn       *widget.Button
	errorText       *canvas.Text

	// List
	counterText *canvas.Text
	emptyLabel  *widget.Label
	dogList     *widget.List

	view           model.View
	lastErr        error
	subscriptionID string
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, dogs doglist.Manager, settings *config.Settings, version string) *RootUI {
	localization := locale.NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		dogs:         dogs,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(),
		version:      version,
		view:         dogs.CurrentView(),
	}

	app.Settings().SetTheme(NewPsyTheme(settings.GetThemeVariant()))
	window.SetTitle(ui.windowTitle())

	ui.setupUI()

	// Re-render whenever the list changes
	ui.subscriptionID = dogs.Subscribe(ui.onViewChanged)

	return ui
}

// Close detaches the UI from the dog list
func (ui *RootUI) Close() {
	if ui.subscriptionID != "" {
		ui.dogs.Unsubscribe(ui.subscriptionID)
		ui.subscriptionID = ""
	}
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Name entry with an error highlight behind it
	ui.nameEntry = ui.mobile.CreateMobileEntry(ui.localization.GetText(locale.KeyInputLabel))
	ui.nameEntry.OnChanged = ui.onInputChanged
	// Add the dog when user presses Enter in the field
	ui.nameEntry.OnSubmitted = func(string) {
		ui.onAddClick()
	}
	ui.entryBackground = canvas.NewRectangle(color.Transparent)
	ui.entryBackground.CornerRadius = theme.InputRadiusSize()

	ui.addBtn = widget.NewButtonWithIcon("", theme.ContentAddIcon(), ui.onAddClick)
	ui.addBtn.Importance = widget.HighImportance
	ui.searchBtn = widget.NewButtonWithIcon("", theme.SearchIcon(), ui.onSearchClick)
	ui.setButtonLabels()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	inputRow := container.NewBorder(
		nil,
		nil,
		nil,
		container.NewHBox(ui.mobile.TouchSized(ui.addBtn), ui.mobile.TouchSized(ui.searchBtn), settingsBtn),
		container.NewStack(ui.entryBackground, ui.nameEntry),
	)

	ui.errorText = canvas.NewText("", themeColor(theme.ColorNameError))
	ui.errorText.TextSize = ErrorTextSize
	ui.errorText.Hide()

	ui.counterText = canvas.NewText("", themeColor(theme.ColorNameForeground))
	ui.counterText.TextSize = CounterTextSize

	ui.emptyLabel = widget.NewLabel(ui.localization.GetText(locale.KeyEmptyList))
	ui.emptyLabel.Alignment = fyne.TextAlignCenter

	ui.dogList = widget.NewList(
		func() int {
			return ui.view.Len()
		},
		func() fyne.CanvasObject { return ui.createDogItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateDogItem(id, obj) },
	)
	ui.dogList.HideSeparators = true

	top := container.NewVBox(
		inputRow,
		ui.errorText,
		ui.mobile.Spacer(),
		ui.counterText,
		ui.mobile.Spacer(),
	)

	content := container.NewBorder(
		top, // top
		nil, // bottom
		nil, // left
		nil, // right
		container.NewStack(ui.emptyLabel, ui.dogList),
	)

	ui.window.SetContent(container.NewPadded(content))

	ui.updateButtons()
	ui.refreshList()

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(locale.KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(locale.KeyLanguage))
	for _, code := range sortedKeys(ui.localization.GetAvailableLanguages()) {
		langCode := code
		langItem := fyne.NewMenuItem(ui.localization.GetAvailableLanguages()[code], func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(locale.KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
	log.Printf("Language changed to %s", langCode)
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.windowTitle())
	ui.nameEntry.SetPlaceHolder(ui.localization.GetText(locale.KeyInputLabel))
	ui.emptyLabel.SetText(ui.localization.GetText(locale.KeyEmptyList))
	ui.setButtonLabels()

	// Re-translate a visible error
	if ui.lastErr != nil {
		ui.showError(ui.lastErr)
	}
}

// setButtonLabels shows text next to the add/search icons on desktop only
func (ui *RootUI) setButtonLabels() {
	if ui.mobile.IsMobileDevice() {
		return
	}
	ui.addBtn.SetText(ui.localization.GetText(locale.KeyAddDog))
	ui.searchBtn.SetText(ui.localization.GetText(locale.KeySearchDog))
}

// windowTitle is the localized app title followed by the version, if known
func (ui *RootUI) windowTitle() string {
	title := ui.localization.GetText(locale.KeyAppTitle)
	if ui.version == "" {
		return title
	}
	return fmt.Sprintf("%s v%s", title, ui.version)
}

// onInputChanged clears the error and enables buttons for non-blank input
func (ui *RootUI) onInputChanged(string) {
	ui.clearError()
	ui.updateButtons()
}

// updateButtons enables add and search only when there is something typed
func (ui *RootUI) updateButtons() {
	if strings.TrimSpace(ui.nameEntry.Text) == "" {
		ui.addBtn.Disable()
		ui.searchBtn.Disable()
		return
	}
	ui.addBtn.Enable()
	ui.searchBtn.Enable()
}

// onAddClick handles the add button click
func (ui *RootUI) onAddClick() {
	_, err := ui.dogs.AddDog(ui.nameEntry.Text)
	if err != nil {
		log.Printf("Add rejected: %v", err)
		ui.showError(err)
		return
	}

	ui.nameEntry.SetText("")
	ui.clearError()
	ui.updateButtons()
}

// onSearchClick handles the search button click
func (ui *RootUI) onSearchClick() {
	ui.dogs.Search(ui.nameEntry.Text)
}

// onToggleFavorite handles the heart button on a row
func (ui *RootUI) onToggleFavorite(name string) {
	ui.dogs.ToggleFavorite(name)
}

// onRemoveDog handles the delete button on a row
func (ui *RootUI) onRemoveDog(name string) {
	ui.dogs.RemoveDog(name)
}

// onViewChanged re-renders after the dog list changed
func (ui *RootUI) onViewChanged(view model.View) {
	ui.view = view
	ui.refreshList()
}

// refreshList updates counters, placeholder and list rows
func (ui *RootUI) refreshList() {
	ui.counterText.Text = formatCounters(ui.view)
	ui.counterText.Color = themeColor(theme.ColorNameForeground)
	ui.counterText.Refresh()

	if ui.view.Len() == 0 {
		ui.emptyLabel.Show()
	} else {
		ui.emptyLabel.Hide()
	}

	ui.dogList.Refresh()
}

// showError displays an add error under the input and highlights the field
func (ui *RootUI) showError(err error) {
	ui.lastErr = err
	ui.errorText.Text = ui.localization.ErrorText(err)
	ui.errorText.Color = themeColor(theme.ColorNameError)
	ui.errorText.Show()
	ui.errorText.Refresh()

	ui.entryBackground.FillColor = themeColor(ColorNameErrorBackground)
	ui.entryBackground.Refresh()
}

// clearError hides the error line
func (ui *RootUI) clearError() {
	if ui.lastErr == nil {
		return
	}
	ui.lastErr = nil
	ui.errorText.Text = ""
	ui.errorText.Hide()

	ui.entryBackground.FillColor = color.Transparent
	ui.entryBackground.Refresh()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.applySettings).Show()
}

// applySettings reloads language and theme after the settings dialog saved
func (ui *RootUI) applySettings() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.app.Settings().SetTheme(NewPsyTheme(ui.settings.GetThemeVariant()))

	ui.refreshUITexts()
	ui.createMenu()
	ui.refreshList()

	ui.app.SendNotification(fyne.NewNotification(
		ui.localization.GetText(locale.KeyAppTitle),
		ui.localization.GetText(locale.KeySettingsSaved),
	))
	log.Printf("Settings applied: language=%s theme=%s", ui.settings.GetLanguage(), ui.settings.GetThemeVariant())
}

// createDogItem creates a new list row
func (ui *RootUI) createDogItem() fyne.CanvasObject {
	row := NewDogRow(model.DogEntry{})
	row.SetCallbacks(ui.onToggleFavorite, ui.onRemoveDog)
	return row
}

// updateDogItem binds a row to the entry at id
func (ui *RootUI) updateDogItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id < 0 || id >= ui.view.Len() {
		return
	}

	if row, ok := item.(*DogRow); ok {
		row.UpdateDog(ui.view.Dogs[id])
	}
}

// formatCounters renders "🐶: n    💜: m"
func formatCounters(view model.View) string {
	return fmt.Sprintf(CounterFormat, IconDog, view.Len()) +
		CounterSeparator +
		fmt.Sprintf(CounterFormat, IconHearts, view.FavoriteCount)
}
