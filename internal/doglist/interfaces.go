package doglist

import (
	"github.com/ytget/psy/internal/model"
)

// Manager defines the interface for the dog list service.
type Manager interface {
	// AddDog trims rawName and puts it at the top of the list.
	// Returns model.ErrBlankName or model.ErrDuplicateName without touching state.
	AddDog(rawName string) (model.View, error)
	ToggleFavorite(name string) model.View
	RemoveDog(name string) model.View

	// Search is a placeholder for the search button; it never changes state.
	Search(query string) model.View
	CurrentView() model.View

	Subscribe(listener func(model.View)) string
	Unsubscribe(id string)
}

var _ Manager = (*Service)(nil)
