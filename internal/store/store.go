package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/ytget/clubhub/internal/model"
)

// Store keeps the records shown by the three tabs
type Store struct {
	mu            sync.RWMutex
	notifications []*model.Notification
	byID          map[string]*model.Notification
	resources     []model.Resource
	clubs         *model.CategorySet
}

// New creates a store seeded with the given records. Every notification gets
// a fresh ID.
func New(seed Seed) *Store {
	s := &Store{
		notifications: make([]*model.Notification, 0, len(seed.Notifications)),
		byID:          make(map[string]*model.Notification, len(seed.Notifications)),
		resources:     make([]model.Resource, len(seed.Resources)),
		clubs:         model.NewCategorySet(),
	}

	for _, n := range seed.Notifications {
		record := n
		record.ID = generateNotificationID()
		s.notifications = append(s.notifications, &record)
		s.byID[record.ID] = &record
	}

	copy(s.resources, seed.Resources)

	for _, category := range seed.Categories {
		s.clubs.Add(model.Category(category.Name), category.Clubs...)
	}

	return s
}

// Default creates a store from the embedded demo seed
func Default() *Store {
	return New(DefaultSeed())
}

// Notifications returns the notifications in display order
func (s *Store) Notifications() []*model.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// Notification returns a notification by ID
func (s *Store) Notification(id string) (*model.Notification, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, exists := s.byID[id]
	return n, exists
}

// MarkRead marks the notification with id as read. It returns false if no
// such notification exists.
func (s *Store) MarkRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, exists := s.byID[id]
	if !exists {
		return false
	}
	n.MarkRead()
	return true
}

// UnreadCount returns how many notifications are still unread
func (s *Store) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, n := range s.notifications {
		if n.IsUnread() {
			count++
		}
	}
	return count
}

// Resources returns the resources in display order
func (s *Store) Resources() []model.Resource {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Resource, len(s.resources))
	copy(out, s.resources)
	return out
}

// Clubs returns the club categories
func (s *Store) Clubs() *model.CategorySet {
	return s.clubs
}

func generateNotificationID() string {
	return uuid.NewString()
}
