package runner

import (
	"apodwall/pkg/wallpaper"
)

// WallpaperSetter applies an image as the desktop background
type WallpaperSetter interface {
	Apply(path string) wallpaper.Result
}

// Notifier delivers a desktop notification
type Notifier interface {
	Enabled() bool
	Send(title, message string) error
}
