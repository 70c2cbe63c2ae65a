package model

import "strings"

// Notification is a single club announcement shown in the notifications tab
type Notification struct {
	ID        string `yaml:"-"`
	Club      string `yaml:"club"`
	Text      string `yaml:"text"`
	ImagePath string `yaml:"image"`
	Read      bool   `yaml:"read"`
}

// MarkRead flags the notification as read. Calling it again is a no-op.
func (n *Notification) MarkRead() {
	n.Read = true
}

// IsUnread reports whether the unread indicator should be shown
func (n *Notification) IsUnread() bool {
	return !n.Read
}

// Summary returns the first line of the notification text
func (n *Notification) Summary() string {
	if idx := strings.IndexByte(n.Text, '\n'); idx >= 0 {
		return n.Text[:idx]
	}
	return n.Text
}
