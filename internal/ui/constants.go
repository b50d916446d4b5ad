package ui

import "time"

// Icons
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconRefresh  = "⟳"
	IconMusic    = "🎵"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing
const (
	SplitOffset               = 0.35
	PreviewMinWidth   float32 = 320
	PreviewMinHeight  float32 = 240
	VolumeSliderWidth float32 = 160
)

// Volume slider range, in percent
const (
	VolumeSliderMin  = 0
	VolumeSliderMax  = 100
	VolumeSliderStep = 1
)

// Notification behavior
const (
	NotificationAutoHide = 4 * time.Second
)
