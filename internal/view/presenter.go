package view

import (
	"log"

	"github.com/ytget/clubhub/internal/model"
	"github.com/ytget/clubhub/internal/store"
)

// Tab identifies one of the three list views
type Tab int

const (
	TabNotifications Tab = iota
	TabResources
	TabMyPage
)

// String returns a short name used in logs
func (t Tab) String() string {
	switch t {
	case TabNotifications:
		return "notifications"
	case TabResources:
		return "resources"
	case TabMyPage:
		return "mypage"
	default:
		return "unknown"
	}
}

// Surface is the drawing capability the presenter needs from a toolkit
type Surface interface {
	RenderList(tab Tab, rows []Row)
	ShowModal(title, body string)
}

// Presenter turns records into rows and reacts to row taps
type Presenter struct {
	records store.Records
	filter  *FilterController
	surface Surface
}

// NewPresenter creates a presenter drawing onto surface
func NewPresenter(records store.Records, surface Surface) *Presenter {
	return &Presenter{
		records: records,
		filter:  NewFilterController(records.Clubs()),
		surface: surface,
	}
}

// Filter returns the member page filter controller
func (p *Presenter) Filter() *FilterController {
	return p.filter
}

// RenderAll draws every tab from the current store state
func (p *Presenter) RenderAll() {
	p.RenderNotifications()
	p.RenderResources()
	p.RenderClubs()
}

// RenderNotifications redraws the notifications tab
func (p *Presenter) RenderNotifications() {
	p.surface.RenderList(TabNotifications, p.NotificationRows())
}

// RenderResources redraws the resources tab
func (p *Presenter) RenderResources() {
	p.surface.RenderList(TabResources, p.ResourceRows())
}

// RenderClubs redraws the member page list for the current filter
func (p *Presenter) RenderClubs() {
	p.surface.RenderList(TabMyPage, p.ClubRows())
}

// NotificationRows returns the notification rows for the current state
func (p *Presenter) NotificationRows() []Row {
	return NotificationRows(p.records.Notifications(), p.OpenNotification)
}

// ResourceRows returns the resource rows
func (p *Presenter) ResourceRows() []Row {
	return ResourceRows(p.records.Resources(), p.OpenResource)
}

// ClubRows returns the rows for the clubs visible under the current filter
func (p *Presenter) ClubRows() []Row {
	return ClubRows(p.filter.Visible(), p.OpenClub)
}

// SelectCategory switches the member page filter and redraws it
func (p *Presenter) SelectCategory(category model.Category) {
	log.Printf("Filter changed: %s", category)
	p.filter.Select(category)
	p.RenderClubs()
}

// Search narrows the member page list by club name and redraws it
func (p *Presenter) Search(query string) {
	p.filter.SetQuery(query)
	p.RenderClubs()
}

// OpenNotification marks n read, redraws the notifications so its badge
// disappears, then shows its text.
func (p *Presenter) OpenNotification(n *model.Notification) {
	if n == nil {
		return
	}
	if !p.records.MarkRead(n.ID) {
		n.MarkRead()
	}
	log.Printf("Opened notification %s (%s), unread left: %d", n.ID, n.Club, p.records.UnreadCount())
	p.RenderNotifications()
	p.surface.ShowModal(n.Club, n.Text)
}

// OpenResource shows the resource title. Resources have no read state.
func (p *Presenter) OpenResource(r model.Resource) {
	p.surface.ShowModal(r.Kind, r.Title)
}

// OpenClub shows the club detail text
func (p *Presenter) OpenClub(c model.Club) {
	p.surface.ShowModal(c.Name, c.DetailText())
}
