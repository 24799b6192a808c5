package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/psy/internal/config"
	"github.com/ytget/psy/internal/doglist"
	"github.com/ytget/psy/internal/model"
)

func newTestRootUI(t *testing.T) (*RootUI, *doglist.Service) {
	t.Helper()
	return newTestRootUIWithVersion(t, "")
}

func newTestRootUIWithVersion(t *testing.T, version string) (*RootUI, *doglist.Service) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(func() { app.Quit() })

	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	dogs := doglist.NewService()
	ui := NewRootUI(window, app, dogs, config.NewSettings(app.Preferences()), version)
	return ui, dogs
}

func TestNewRootUI(t *testing.T) {
	ui, _ := newTestRootUI(t)

	assert.Equal(t, "Pieski", ui.window.Title())
	assert.Equal(t, "Poszukaj lub dodaj pieska 🐕", ui.nameEntry.PlaceHolder)
	assert.True(t, ui.addBtn.Disabled())
	assert.True(t, ui.searchBtn.Disabled())
	assert.False(t, ui.errorText.Visible())
	assert.True(t, ui.emptyLabel.Visible())
	assert.Equal(t, "🐶: 0    💜: 0", ui.counterText.Text)
	assert.NotEmpty(t, ui.subscriptionID)
	assert.Equal(t, "Dodaj pieska", ui.addBtn.Text)
}

func TestRootUI_AddDog(t *testing.T) {
	ui, dogs := newTestRootUI(t)

	test.Type(ui.nameEntry, "  Fido ")
	assert.False(t, ui.addBtn.Disabled())
	assert.False(t, ui.searchBtn.Disabled())

	test.Tap(ui.addBtn)

	assert.Equal(t, []string{"Fido"}, dogs.CurrentView().Names())
	assert.Equal(t, []string{"Fido"}, ui.view.Names())
	assert.Empty(t, ui.nameEntry.Text)
	assert.True(t, ui.addBtn.Disabled())
	assert.False(t, ui.emptyLabel.Visible())
	assert.Equal(t, "🐶: 1    💜: 0", ui.counterText.Text)
	assert.Equal(t, 1, ui.dogList.Length())
}

func TestRootUI_AddDuplicateShowsError(t *testing.T) {
	ui, dogs := newTestRootUI(t)

	test.Type(ui.nameEntry, "Fido")
	test.Tap(ui.addBtn)
	test.Type(ui.nameEntry, "Fido")
	test.Tap(ui.addBtn)

	assert.Equal(t, 1, dogs.CurrentView().Len())
	assert.True(t, ui.errorText.Visible())
	assert.Equal(t, "Piesek już istnieje na liście!", ui.errorText.Text)
	assert.Equal(t, "Fido", ui.nameEntry.Text, "rejected input stays for editing")
	assert.Equal(t, themeColor(ColorNameErrorBackground), ui.entryBackground.FillColor)

	// Editing the input clears the error
	test.Type(ui.nameEntry, "!")
	assert.False(t, ui.errorText.Visible())
	assert.Nil(t, ui.lastErr)
}

func TestRootUI_SubmitBlankShowsError(t *testing.T) {
	ui, dogs := newTestRootUI(t)

	test.Type(ui.nameEntry, "   ")
	assert.True(t, ui.addBtn.Disabled())

	ui.nameEntry.OnSubmitted(ui.nameEntry.Text)

	assert.Equal(t, 0, dogs.CurrentView().Len())
	assert.Equal(t, "Imię pieska jest puste!", ui.errorText.Text)
}

func TestRootUI_SearchIsNoop(t *testing.T) {
	ui, dogs := newTestRootUI(t)
	_, err := dogs.AddDog("Rex")
	require.NoError(t, err)

	test.Type(ui.nameEntry, "Re")
	test.Tap(ui.searchBtn)

	assert.Equal(t, []string{"Rex"}, ui.view.Names())
	assert.Equal(t, "Re", ui.nameEntry.Text)
}

func TestRootUI_RowActions(t *testing.T) {
	ui, dogs := newTestRootUI(t)
	for _, name := range []string{"Fido", "Buddy"} {
		_, err := dogs.AddDog(name)
		require.NoError(t, err)
	}

	row := ui.createDogItem().(*DogRow)
	ui.updateDogItem(1, row)
	assert.Equal(t, model.DogEntry{Name: "Fido"}, row.Dog())

	test.Tap(row.favoriteBtn)
	assert.Equal(t, []string{"Fido", "Buddy"}, ui.view.Names())
	assert.Equal(t, "🐶: 2    💜: 1", ui.counterText.Text)

	ui.updateDogItem(0, row)
	assert.Equal(t, IconFavorite, row.favoriteBtn.Text)

	test.Tap(row.deleteBtn)
	assert.Equal(t, []string{"Buddy"}, ui.view.Names())
	assert.Equal(t, "🐶: 1    💜: 0", ui.counterText.Text)

	// Out of range ids are ignored
	ui.updateDogItem(5, row)
	assert.Equal(t, "Fido", row.Dog().Name)
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui, _ := newTestRootUI(t)

	test.Type(ui.nameEntry, " ")
	ui.onAddClick()
	require.True(t, ui.errorText.Visible())

	ui.onLanguageChange("en")

	assert.Equal(t, "Dogs", ui.window.Title())
	assert.Equal(t, "Search or add a dog 🐕", ui.nameEntry.PlaceHolder)
	assert.Equal(t, "Dog name is blank!", ui.errorText.Text)
	assert.Equal(t, "Add dog", ui.addBtn.Text)
	assert.Equal(t, "Search dog", ui.searchBtn.Text)
	assert.Equal(t, "en", ui.settings.GetLanguage())
}

func TestRootUI_TitleKeepsVersion(t *testing.T) {
	ui, _ := newTestRootUIWithVersion(t, "1.2.3")
	assert.Equal(t, "Pieski v1.2.3", ui.window.Title())

	ui.onLanguageChange("en")
	assert.Equal(t, "Dogs v1.2.3", ui.window.Title())

	ui.settings.SetLanguage("pl")
	ui.applySettings()
	assert.Equal(t, "Pieski v1.2.3", ui.window.Title())
}

func TestRootUI_ApplySettings(t *testing.T) {
	ui, _ := newTestRootUI(t)

	ui.settings.SetThemeVariant(config.ThemeDark)
	ui.settings.SetLanguage("en")
	test.AssertNotificationSent(t, fyne.NewNotification("Dogs", "Settings saved"), ui.applySettings)

	assert.Equal(t, "en", ui.localization.GetCurrentLanguage())
	current, ok := ui.app.Settings().Theme().(*PsyTheme)
	require.True(t, ok)
	assert.Equal(t, config.ThemeDark, current.variant)
}

func TestRootUI_Close(t *testing.T) {
	ui, dogs := newTestRootUI(t)

	ui.Close()
	assert.Empty(t, ui.subscriptionID)

	_, err := dogs.AddDog("Rex")
	require.NoError(t, err)
	assert.Equal(t, 0, ui.view.Len())

	// Second close is harmless
	ui.Close()
}

func TestFormatCounters(t *testing.T) {
	view := model.View{
		Dogs:          []model.DogEntry{{Name: "A", IsFavorite: true}, {Name: "B"}, {Name: "C"}},
		FavoriteCount: 1,
	}
	assert.Equal(t, "🐶: 3    💜: 1", formatCounters(view))
}

func TestSortedKeys(t *testing.T) {
	keys := sortedKeys(map[string]string{"pl": "Polski", "en": "English", "system": "System"})
	assert.Equal(t, []string{"en", "pl", "system"}, keys)
}
