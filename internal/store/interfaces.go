package store

import (
	"github.com/ytget/clubhub/internal/model"
)

// Records defines the read-mostly view of the store used by the UI layer.
type Records interface {
	Notifications() []*model.Notification
	Notification(id string) (*model.Notification, bool)
	MarkRead(id string) bool
	UnreadCount() int
	Resources() []model.Resource
	Clubs() *model.CategorySet
}
