package view

import (
	"github.com/ytget/clubhub/internal/model"
)

// Row is one list entry: thumbnail, button label, optional unread badge and
// the action run when the button is tapped.
type Row struct {
	ID        string
	Label     string
	ImagePath string
	Badge     bool
	OnTap     func()
}

// NotificationRows builds one row per notification. The badge reflects the
// read flag at build time.
func NotificationRows(notifications []*model.Notification, open func(*model.Notification)) []Row {
	rows := make([]Row, 0, len(notifications))
	for _, n := range notifications {
		notification := n
		rows = append(rows, Row{
			ID:        notification.ID,
			Label:     notification.Club,
			ImagePath: notification.ImagePath,
			Badge:     notification.IsUnread(),
			OnTap:     func() { open(notification) },
		})
	}
	return rows
}

// ResourceRows builds one row per resource, labelled by kind
func ResourceRows(resources []model.Resource, open func(model.Resource)) []Row {
	rows := make([]Row, 0, len(resources))
	for i := range resources {
		resource := resources[i]
		rows = append(rows, Row{
			Label:     resource.Kind,
			ImagePath: resource.IconPath,
			OnTap:     func() { open(resource) },
		})
	}
	return rows
}

// ClubRows builds one row per club, labelled by name
func ClubRows(clubs []model.Club, open func(model.Club)) []Row {
	rows := make([]Row, 0, len(clubs))
	for i := range clubs {
		club := clubs[i]
		rows = append(rows, Row{
			Label:     club.Name,
			ImagePath: club.ImagePath,
			OnTap:     func() { open(club) },
		})
	}
	return rows
}

// BadgeCount returns how many rows carry the unread badge
func BadgeCount(rows []Row) int {
	count := 0
	for _, row := range rows {
		if row.Badge {
			count++
		}
	}
	return count
}
