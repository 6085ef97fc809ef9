package i18n

import (
	"strings"

	"github.com/cristianoliveira/cbd-helper/internal/colors"
	apperrors "github.com/cristianoliveira/cbd-helper/internal/errors"
	"golang.org/x/text/language"
)

// Localizer resolves a message name to display text. It is total: unknown
// names resolve to the empty string.
type Localizer interface {
	Text(key string, substitutions ...string) string
}

// Translator resolves messages for one locale with fallbacks.
type Translator struct {
	locale language.Tag
	chain  []Messages
	onMiss func(key, locale string)
}

var _ Localizer = (*Translator)(nil)

// Text implements Localizer. The predefined message @@ui_locale returns the
// active locale in extension form (en_US).
func (t *Translator) Text(key string, substitutions ...string) string {
	if key == "@@ui_locale" {
		return t.uiLocale()
	}
	for _, msgs := range t.chain {
		if m, ok := msgs[key]; ok {
			return m.render(substitutions)
		}
	}
	if t.onMiss != nil {
		t.onMiss(key, t.Locale())
	}
	return ""
}

// Locale returns the active locale as a BCP 47 tag.
func (t *Translator) Locale() string {
	return t.locale.String()
}

func (t *Translator) uiLocale() string {
	return strings.ReplaceAll(t.Locale(), "-", "_")
}

// OnMiss replaces the handler called for unknown keys. nil disables it.
func (t *Translator) OnMiss(fn func(key, locale string)) {
	t.onMiss = fn
}

func logMiss(key, locale string) {
	colors.StructuredDebug("i18n", "lookup", "miss", apperrors.ErrLocalizationMiss, key, map[string]any{"locale": locale})
}

// StaticLocalizer resolves keys from a flat map. Handy in tests and for
// callers that already hold resolved strings.
type StaticLocalizer map[string]string

// Text implements Localizer; substitutions are not applied.
func (s StaticLocalizer) Text(key string, _ ...string) string {
	return s[key]
}
