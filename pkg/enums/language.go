package enums

import "fmt"

// Language is a supported translation target for catalog content.
// Content is authored in Turkish; the unsuffixed columns hold the base text.
type Language string

const (
	LanguageEnglish     Language = "en"
	LanguageAzerbaijani Language = "az"
	LanguageRussian     Language = "ru"
)

// SourceLanguage is the fixed base language of authored content.
const SourceLanguage = "tr"

// TargetLanguages lists every language the translation pipeline produces.
func TargetLanguages() []Language {
	return []Language{LanguageEnglish, LanguageAzerbaijani, LanguageRussian}
}

// String implements fmt.Stringer.
func (l Language) String() string {
	return string(l)
}

// IsValid reports whether the value is a known target Language.
func (l Language) IsValid() bool {
	switch l {
	case LanguageEnglish, LanguageAzerbaijani, LanguageRussian:
		return true
	default:
		return false
	}
}

// ParseLanguage converts raw input into a Language.
func ParseLanguage(value string) (Language, error) {
	lang := Language(value)
	if !lang.IsValid() {
		return "", fmt.Errorf("invalid language %q", value)
	}
	return lang, nil
}
