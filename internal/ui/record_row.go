package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/clubhub/internal/view"
)

// RecordRow is one list entry: circular thumbnail, a button labelled from the
// record, and an unread indicator on the trailing edge when the row has a badge.
type RecordRow struct {
	widget.BaseWidget

	row view.Row

	thumbnail *canvas.Image
	button    *widget.Button
	badge     *widget.Label
}

// NewRecordRow creates a row widget showing thumb at size x size
func NewRecordRow(row view.Row, thumb image.Image, size int) *RecordRow {
	rr := &RecordRow{row: row}
	rr.ExtendBaseWidget(rr)

	rr.thumbnail = canvas.NewImageFromImage(thumb)
	rr.thumbnail.FillMode = canvas.ImageFillContain
	rr.thumbnail.SetMinSize(fyne.NewSize(float32(size), float32(size)))

	rr.button = widget.NewButton(row.Label, rr.onTapped)

	if row.Badge {
		rr.badge = widget.NewLabel(IconUnread)
		rr.badge.Importance = widget.DangerImportance
	}

	return rr
}

// Label returns the button text
func (rr *RecordRow) Label() string {
	return rr.button.Text
}

// HasBadge reports whether the unread indicator is shown
func (rr *RecordRow) HasBadge() bool {
	return rr.badge != nil
}

// Button returns the row's action button
func (rr *RecordRow) Button() *widget.Button {
	return rr.button
}

func (rr *RecordRow) onTapped() {
	if rr.row.OnTap != nil {
		rr.row.OnTap()
	}
}

// CreateRenderer implements fyne.Widget
func (rr *RecordRow) CreateRenderer() fyne.WidgetRenderer {
	leading := container.NewHBox(rr.thumbnail, rr.button)

	var trailing fyne.CanvasObject
	if rr.badge != nil {
		trailing = rr.badge
	}

	content := container.NewBorder(nil, nil, leading, trailing)
	return widget.NewSimpleRenderer(container.NewPadded(content))
}
