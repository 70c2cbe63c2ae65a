package ui

// Package ui contains the Fyne-based desktop user interface: the three tabs,
// their record rows, detail windows, and the settings dialog. Behaviour lives
// in the view package; this package only draws it. UI strings come from Texts.
