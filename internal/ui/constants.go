package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Status icons
const (
	IconError   = "❌"
	IconDone    = "✅"
	IconWorking = "⏳"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	PixelSuffix        = "px"
)

// Layout sizing (history rows / window)
const (
	StatusLabelWidth float32 = 110
	DetailLabelWidth float32 = 150

	RowMinWidth  float32 = 400
	RowMinHeight float32 = 44

	LogoSize float32 = 32

	HistoryMinHeight float32 = 160
)

// Dialog sizing
const (
	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 380
	MessageDialogWidth   float32 = 420
)
