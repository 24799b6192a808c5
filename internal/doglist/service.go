package doglist

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/psy/internal/model"
)

// SubscriptionIDPrefix prefixes IDs returned by Subscribe
const SubscriptionIDPrefix = "sub-"

// Service holds the dog list state
type Service struct {
	entries   []string
	favorites map[string]struct{}

	listeners     map[string]func(model.View)
	listenerOrder []string
}

// NewService creates an empty dog list
func NewService() *Service {
	return &Service{
		entries:   make([]string, 0),
		favorites: make(map[string]struct{}),
		listeners: make(map[string]func(model.View)),
	}
}

// AddDog adds a new dog to the top of the list
func (s *Service) AddDog(rawName string) (model.View, error) {
	name := model.NormalizeName(rawName)
	if name == "" {
		return s.CurrentView(), model.ErrBlankName
	}

	if s.indexOf(name) >= 0 {
		return s.CurrentView(), model.DuplicateNameError(name)
	}

	// Newest first; the slice is replaced, never edited in place
	entries := make([]string, 0, len(s.entries)+1)
	entries = append(entries, name)
	entries = append(entries, s.entries...)
	s.entries = entries

	log.Printf("Dog added: %q (total %d)", name, len(s.entries))
	return s.commit(), nil
}

// ToggleFavorite flips the favorite flag of a dog and moves favorites to the top.
// Unknown names are ignored.
func (s *Service) ToggleFavorite(name string) model.View {
	if s.indexOf(name) < 0 {
		return s.CurrentView()
	}

	if s.isFavorite(name) {
		delete(s.favorites, name)
	} else {
		s.favorites[name] = struct{}{}
	}

	s.entries = stablePartition(s.entries, s.isFavorite)

	log.Printf("Dog %q favorite=%v", name, s.isFavorite(name))
	return s.commit()
}

// RemoveDog removes a dog from the list and from favorites.
// Unknown names are ignored.
func (s *Service) RemoveDog(name string) model.View {
	idx := s.indexOf(name)
	if idx < 0 {
		return s.CurrentView()
	}

	entries := make([]string, 0, len(s.entries)-1)
	entries = append(entries, s.entries[:idx]...)
	entries = append(entries, s.entries[idx+1:]...)
	s.entries = entries
	delete(s.favorites, name)

	log.Printf("Dog removed: %q (total %d)", name, len(s.entries))
	return s.commit()
}

// Search does not filter anything yet. It only reports the current list.
func (s *Service) Search(query string) model.View {
	log.Printf("Search requested for %q (not implemented)", model.NormalizeName(query))
	return s.CurrentView()
}

// CurrentView returns a snapshot of the list in display order
func (s *Service) CurrentView() model.View {
	dogs := make([]model.DogEntry, 0, len(s.entries))
	for _, name := range s.entries {
		dogs = append(dogs, model.DogEntry{
			Name:       name,
			IsFavorite: s.isFavorite(name),
		})
	}
	return model.View{
		Dogs:          dogs,
		FavoriteCount: len(s.favorites),
	}
}

// Subscribe registers a listener called after every state change.
// Listeners run synchronously in registration order.
func (s *Service) Subscribe(listener func(model.View)) string {
	if listener == nil {
		return ""
	}
	id := generateSubscriptionID()
	s.listeners[id] = listener
	s.listenerOrder = append(s.listenerOrder, id)
	return id
}

// Unsubscribe removes a listener. Unknown IDs are ignored.
func (s *Service) Unsubscribe(id string) {
	if _, ok := s.listeners[id]; !ok {
		return
	}
	delete(s.listeners, id)

	order := make([]string, 0, len(s.listenerOrder))
	for _, existing := range s.listenerOrder {
		if existing != id {
			order = append(order, existing)
		}
	}
	s.listenerOrder = order
}

// commit takes a snapshot and notifies listeners
func (s *Service) commit() model.View {
	view := s.CurrentView()
	s.notifyUpdate(view)
	return view
}

// notifyUpdate calls every registered listener
func (s *Service) notifyUpdate(view model.View) {
	// Copy the order so listeners may unsubscribe while being notified
	order := append([]string(nil), s.listenerOrder...)
	for _, id := range order {
		if listener, ok := s.listeners[id]; ok {
			listener(view)
		}
	}
}

func (s *Service) indexOf(name string) int {
	for i, existing := range s.entries {
		if existing == name {
			return i
		}
	}
	return -1
}

func (s *Service) isFavorite(name string) bool {
	_, ok := s.favorites[name]
	return ok
}

// stablePartition returns a new slice with matching names first.
// Relative order inside both groups is preserved.
func stablePartition(names []string, first func(string) bool) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if first(name) {
			out = append(out, name)
		}
	}
	for _, name := range names {
		if !first(name) {
			out = append(out, name)
		}
	}
	return out
}

// generateSubscriptionID generates a unique subscription ID using UUID v7
func generateSubscriptionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(SubscriptionIDPrefix+"%d", time.Now().UnixNano())
	}
	return SubscriptionIDPrefix + id.String()
}
