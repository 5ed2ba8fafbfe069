// internal/i18n/language.go
package i18n

import "fmt"

// Language is the closed set of supported UI languages.
type Language string

const (
	Arabic  Language = "ar"
	English Language = "en"
)

// Default is the language served before a visitor picks one.
const Default = Arabic

// Parse converts a raw value into a Language.
func Parse(value string) (Language, error) {
	switch Language(value) {
	case Arabic, English:
		return Language(value), nil
	default:
		return "", fmt.Errorf("unsupported language: %q", value)
	}
}

// IsValid reports whether l is one of the supported languages.
func (l Language) IsValid() bool {
	return l == Arabic || l == English
}

// Direction returns the text direction for the language.
// Direction is derived, never stored.
func (l Language) Direction() string {
	if l == Arabic {
		return "rtl"
	}
	return "ltr"
}

// Text is a bilingual string pair. Both variants are mandatory at
// definition time; an empty variant is a programming error caught by
// catalog validation, not a runtime fallback.
type Text struct {
	AR string `json:"ar"`
	EN string `json:"en"`
}

// Get returns the variant for the given language.
func (t Text) Get(lang Language) string {
	if lang == Arabic {
		return t.AR
	}
	return t.EN
}
