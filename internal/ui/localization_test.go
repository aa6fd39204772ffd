package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalization_Fallbacks(t *testing.T) {
	l := NewLocalization()
	assert.Equal(t, "en", l.GetCurrentLanguage())

	l.SetLanguage("system")
	assert.Equal(t, "en", l.GetCurrentLanguage())

	l.SetLanguage("de")
	assert.Equal(t, "en", l.GetCurrentLanguage(), "unknown languages are ignored")

	assert.Equal(t, "unknown_key", l.GetText("unknown_key"))
	assert.Equal(t, "Selected: logo.png", l.GetTextf(KeySelected, "logo.png"))
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for lang := range l.GetAvailableLanguages() {
		for key := range english {
			_, ok := l.texts[lang][key]
			assert.True(t, ok, "%s is missing %s", lang, key)
		}
	}
}
