package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/psy/internal/model"
)

// DogRow is a card with the dog name, a favorite toggle and a delete button.
// On touch screens a left swipe deletes and a long press toggles favorite.
type DogRow struct {
	widget.BaseWidget

	dog model.DogEntry

	// UI components
	background  *canvas.Rectangle
	nameLabel   *widget.Label
	favoriteBtn *widget.Button
	deleteBtn   *widget.Button

	gestures *GestureHandler

	// Callbacks
	onToggleFavorite func(name string)
	onRemove         func(name string)
}

var _ mobile.Touchable = (*DogRow)(nil)

// NewDogRow creates a new dog row widget
func NewDogRow(dog model.DogEntry) *DogRow {
	dr := &DogRow{dog: dog}
	dr.ExtendBaseWidget(dr)
	dr.createUI()
	dr.gestures = NewGestureHandler(dr.onGesture)
	dr.updateFromDog()
	return dr
}

// SetCallbacks sets the action callbacks
func (dr *DogRow) SetCallbacks(onToggleFavorite func(name string), onRemove func(name string)) {
	dr.onToggleFavorite = onToggleFavorite
	dr.onRemove = onRemove
}

// UpdateDog updates the row with new entry data
func (dr *DogRow) UpdateDog(dog model.DogEntry) {
	dr.dog = dog
	dr.updateFromDog()
	dr.Refresh()
}

// Dog returns the entry currently shown
func (dr *DogRow) Dog() model.DogEntry {
	return dr.dog
}

// createUI creates the UI components
func (dr *DogRow) createUI() {
	dr.background = canvas.NewRectangle(themeColor(ColorNameCard))
	dr.background.CornerRadius = RowCornerRound

	dr.nameLabel = widget.NewLabel("")
	dr.nameLabel.Truncation = fyne.TextTruncateEllipsis

	dr.favoriteBtn = widget.NewButton(IconNotFavorite, func() {
		name := dr.dog.Name
		if dr.onToggleFavorite != nil {
			dr.onToggleFavorite(name)
		} else {
			log.Printf("onToggleFavorite callback is nil for dog %q", name)
		}
	})

	dr.deleteBtn = widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		name := dr.dog.Name
		if dr.onRemove != nil {
			dr.onRemove(name)
		} else {
			log.Printf("onRemove callback is nil for dog %q", name)
		}
	})
	dr.deleteBtn.Importance = widget.DangerImportance
}

// updateFromDog updates UI components based on the entry
func (dr *DogRow) updateFromDog() {
	dr.nameLabel.SetText(dr.dog.Name)

	if dr.dog.IsFavorite {
		dr.favoriteBtn.SetText(IconFavorite)
		dr.favoriteBtn.Importance = widget.DangerImportance
	} else {
		dr.favoriteBtn.SetText(IconNotFavorite)
		dr.favoriteBtn.Importance = widget.LowImportance
	}
	dr.favoriteBtn.Refresh()
}

// onGesture maps touch gestures to row actions
func (dr *DogRow) onGesture(gesture GestureType) {
	switch gesture {
	case GestureSwipeLeft:
		if dr.onRemove != nil {
			dr.onRemove(dr.dog.Name)
		}
	case GestureLongPress:
		if dr.onToggleFavorite != nil {
			dr.onToggleFavorite(dr.dog.Name)
		}
	}
}

// TouchDown handles touch down events
func (dr *DogRow) TouchDown(event *mobile.TouchEvent) {
	dr.gestures.TouchDown(event)
}

// TouchUp handles touch up events
func (dr *DogRow) TouchUp(event *mobile.TouchEvent) {
	dr.gestures.TouchUp(event)
}

// TouchCancel handles touch cancel events
func (dr *DogRow) TouchCancel(event *mobile.TouchEvent) {
	dr.gestures.TouchCancel(event)
}

// CreateRenderer creates the widget renderer
func (dr *DogRow) CreateRenderer() fyne.WidgetRenderer {
	return &dogRowRenderer{row: dr}
}

// dogRowRenderer renders the dog row widget
type dogRowRenderer struct {
	row    *DogRow
	layout *fyne.Container
}

// Layout arranges the components
func (r *dogRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *dogRowRenderer) MinSize() fyne.Size {
	if r.layout == nil {
		r.createLayout()
	}
	ms := r.layout.MinSize()
	return fyne.NewSize(fyne.Max(ms.Width, RowMinWidth), fyne.Max(ms.Height, RowMinHeight))
}

// Refresh refreshes the renderer
func (r *dogRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.row.background.FillColor = themeColor(ColorNameCard)
	r.row.background.Refresh()
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *dogRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *dogRowRenderer) Destroy() {}

// createLayout builds card background, name on the left and buttons pinned right
func (r *dogRowRenderer) createLayout() {
	dr := r.row

	actions := container.NewHBox(dr.favoriteBtn, dr.deleteBtn)
	content := container.NewBorder(nil, nil, nil, actions, dr.nameLabel)

	gap := canvas.NewRectangle(color.Transparent)
	gap.SetMinSize(fyne.NewSize(0, RowVerticalGap))

	r.layout = container.NewBorder(
		nil,
		gap,
		nil,
		nil,
		container.NewStack(dr.background, container.NewPadded(content)),
	)
}
