package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/ytget/clubhub/internal/assets"
	"github.com/ytget/clubhub/internal/view"
)

// newScrollableList creates the vertical box rows are rendered into, wrapped
// in a vertical scroller.
func newScrollableList() (*fyne.Container, *container.Scroll) {
	box := container.NewVBox()
	return box, container.NewVScroll(box)
}

// RenderList replaces every child of box with one RecordRow per row, in order.
// Thumbnails are decoded again on every call.
func RenderList(box *fyne.Container, rows []view.Row, loader assets.Loader, size int) {
	box.RemoveAll()
	for _, row := range rows {
		thumb := loader.Thumbnail(row.ImagePath, size)
		box.Add(NewRecordRow(row, thumb, size))
	}
	box.Refresh()
}

// RowsOf returns the RecordRow children of a rendered list
func RowsOf(box *fyne.Container) []*RecordRow {
	rows := make([]*RecordRow, 0, len(box.Objects))
	for _, obj := range box.Objects {
		if rr, ok := obj.(*RecordRow); ok {
			rows = append(rows, rr)
		}
	}
	return rows
}
