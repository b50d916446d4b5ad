package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/cache-browser/internal/model"
	"github.com/ytget/cache-browser/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyLastDirectory = "last_directory"
	KeyCopyDirectory = "copy_directory"
	KeyVolume        = "volume"
	KeyLanguage      = "app_language"
	KeyAutoRefresh   = "auto_refresh"
)

// Default values
const (
	DefaultVolume      = model.DefaultVolume
	DefaultLanguage    = "system"
	DefaultAutoRefresh = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLastDirectory returns the cache directory opened last, or "" if none
func (s *Settings) GetLastDirectory() string {
	return s.app.Preferences().String(KeyLastDirectory)
}

// SetLastDirectory remembers the opened cache directory
func (s *Settings) SetLastDirectory(dir string) {
	s.app.Preferences().SetString(KeyLastDirectory, dir)
}

// GetCopyDirectory returns where copied files are saved by default
func (s *Settings) GetCopyDirectory() string {
	dir := s.app.Preferences().String(KeyCopyDirectory)
	if dir == "" {
		desktop, err := platform.GetDesktopDir()
		if err != nil {
			return ""
		}
		return desktop
	}
	return dir
}

// SetCopyDirectory remembers the directory of the last copy
func (s *Settings) SetCopyDirectory(dir string) {
	s.app.Preferences().SetString(KeyCopyDirectory, dir)
}

// GetVolume returns the playback volume in [0, 1]
func (s *Settings) GetVolume() float64 {
	return model.ClampVolume(s.app.Preferences().FloatWithFallback(KeyVolume, DefaultVolume))
}

// SetVolume stores the playback volume, clamped to [0, 1]
func (s *Settings) SetVolume(volume float64) {
	s.app.Preferences().SetFloat(KeyVolume, model.ClampVolume(volume))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRefresh returns whether the open directory is watched for changes
func (s *Settings) GetAutoRefresh() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRefresh, DefaultAutoRefresh)
}

// SetAutoRefresh sets whether the open directory is watched for changes
func (s *Settings) SetAutoRefresh(enabled bool) {
	s.app.Preferences().SetBool(KeyAutoRefresh, enabled)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
	}
}
