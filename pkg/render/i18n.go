package render

import (
	"errors"
	"strings"
)

// Translator resolves localized text for a key. Implementations are supplied
// by the host application; the framework never ships a message catalog of its
// own.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler decides the string returned when a translation
// cannot be resolved.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

// ErrMissingTranslator is passed to MissingTranslationHandler when no
// Translator is configured at all.
var ErrMissingTranslator = errors.New("render: translator is not configured")

// Translate resolves key through t, falling back to fallback and finally to
// the key itself. Failures are routed through onMissing when provided, so
// hosts can log or substitute placeholders.
func Translate(locale, key, fallback string, t Translator, onMissing MissingTranslationHandler) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}

	if t == nil {
		if onMissing != nil {
			return onMissing(locale, key, nil, ErrMissingTranslator)
		}
		return fallbackOrKey(fallback, key)
	}

	result, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}

	if onMissing != nil {
		return onMissing(locale, key, nil, err)
	}
	return fallbackOrKey(fallback, key)
}

func fallbackOrKey(fallback, key string) string {
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}
