package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// DetailWindow is a standalone window showing one record's full text with a
// single close button. Several may be open at once.
type DetailWindow struct {
	window   fyne.Window
	body     *widget.Label
	closeBtn *widget.Button
	closed   bool
}

// ShowDetail opens a detail window titled title with body wrapped at wrapWidth
func ShowDetail(app fyne.App, texts *Texts, title, body string, wrapWidth int) *DetailWindow {
	dw := &DetailWindow{
		window: app.NewWindow(title),
	}

	dw.body = widget.NewLabel(body)
	dw.body.Wrapping = fyne.TextWrapWord
	dw.body.Alignment = fyne.TextAlignLeading

	dw.closeBtn = widget.NewButton(texts.GetText(KeyClose), dw.Close)

	dw.window.SetContent(container.NewBorder(
		nil,                              // top
		container.NewCenter(dw.closeBtn), // bottom
		nil,                              // left
		nil,                              // right
		container.NewPadded(dw.body),     // center
	))
	dw.window.SetOnClosed(func() { dw.closed = true })
	dw.window.Resize(fyne.NewSize(float32(wrapWidth)+DetailWindowMargin, DetailWindowHeight))
	dw.window.Show()

	return dw
}

// Title returns the window title
func (dw *DetailWindow) Title() string {
	return dw.window.Title()
}

// Body returns the displayed text
func (dw *DetailWindow) Body() string {
	return dw.body.Text
}

// CloseButton returns the dismiss button
func (dw *DetailWindow) CloseButton() *widget.Button {
	return dw.closeBtn
}

// IsClosed reports whether the window has been dismissed
func (dw *DetailWindow) IsClosed() bool {
	return dw.closed
}

// Close dismisses the window
func (dw *DetailWindow) Close() {
	dw.window.Close()
	dw.closed = true
}
