package config

import (
	"strings"

	"fyne.io/fyne/v2"

	"github.com/ytget/picshift/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyOutputDir      = "output_directory"
	KeyTargetFormat   = "target_format"
	KeySizeSpec       = "size_spec"
	KeyLanguage       = "app_language"
	KeyAutoOpenFolder = "auto_open_folder"
	KeyHistoryLimit   = "history_limit"
)

// Default values
const (
	DefaultTargetFormat   = model.FormatICO
	DefaultSizeSpec       = "64"
	DefaultLanguage       = "system"
	DefaultAutoOpenFolder = true
	DefaultHistoryLimit   = 20

	MinHistoryLimit = 1
	MaxHistoryLimit = 100
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetOutputDirectory returns the configured output directory; empty means next to the input
func (s *Settings) GetOutputDirectory() string {
	return s.app.Preferences().String(KeyOutputDir)
}

// SetOutputDirectory sets the output directory; pass "" to save next to the input
func (s *Settings) SetOutputDirectory(dir string) {
	s.app.Preferences().SetString(KeyOutputDir, strings.TrimSpace(dir))
}

// GetTargetFormat returns the last selected output format
func (s *Settings) GetTargetFormat() model.ImageFormat {
	format, err := model.ParseImageFormat(s.app.Preferences().String(KeyTargetFormat))
	if err != nil {
		s.SetTargetFormat(DefaultTargetFormat)
		return DefaultTargetFormat
	}
	return format
}

// SetTargetFormat sets the output format; unknown formats fall back to the default
func (s *Settings) SetTargetFormat(format model.ImageFormat) {
	if !format.IsValid() {
		format = DefaultTargetFormat
	}
	s.app.Preferences().SetString(KeyTargetFormat, string(format))
}

// GetSizeSpec returns the last size list text
func (s *Settings) GetSizeSpec() string {
	spec := s.app.Preferences().String(KeySizeSpec)
	if spec == "" {
		s.SetSizeSpec(DefaultSizeSpec)
		return DefaultSizeSpec
	}
	return spec
}

// SetSizeSpec stores the size list text as typed; empty text restores the default
func (s *Settings) SetSizeSpec(spec string) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		spec = DefaultSizeSpec
	}
	s.app.Preferences().SetString(KeySizeSpec, spec)
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

// GetAutoOpenFolder returns whether to reveal the output folder after a conversion
func (s *Settings) GetAutoOpenFolder() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoOpenFolder, DefaultAutoOpenFolder)
}

// SetAutoOpenFolder sets whether to reveal the output folder after a conversion
func (s *Settings) SetAutoOpenFolder(autoOpen bool) {
	s.app.Preferences().SetBool(KeyAutoOpenFolder, autoOpen)
}

// GetHistoryLimit returns how many finished conversions the history list shows
func (s *Settings) GetHistoryLimit() int {
	value := s.app.Preferences().Int(KeyHistoryLimit)
	if value <= 0 {
		s.SetHistoryLimit(DefaultHistoryLimit)
		return DefaultHistoryLimit
	}
	return value
}

// SetHistoryLimit sets the history length, clamped to MinHistoryLimit..MaxHistoryLimit
func (s *Settings) SetHistoryLimit(limit int) {
	if limit < MinHistoryLimit {
		limit = MinHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	s.app.Preferences().SetInt(KeyHistoryLimit, limit)
}

// GetFormatOptions returns the selectable output formats
func (s *Settings) GetFormatOptions() []model.ImageFormat {
	return model.AllFormats()
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
