package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconUnread = "🔴"
)

// Window sizing
const (
	MainWindowWidth  float32 = 300
	MainWindowHeight float32 = 500

	DetailWindowHeight float32 = 300
	DetailWindowMargin float32 = 20
)
