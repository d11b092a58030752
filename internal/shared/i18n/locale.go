// Package i18n negotiates the display locale for bilingual (English/Spanish)
// content such as notification emails.
package i18n

import "golang.org/x/text/language"

// Locale identifies one of the supported content languages.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleSpanish Locale = "es"
)

var supported = []language.Tag{
	language.English, // default
	language.Spanish,
}

var matcher = language.NewMatcher(supported)

// Negotiate resolves the best supported locale from a stored user preference
// and an Accept-Language header, in that order. Falls back to English.
func Negotiate(preference, acceptLanguage string) Locale {
	_, index := language.MatchStrings(matcher, preference, acceptLanguage)
	if supported[index] == language.Spanish {
		return LocaleSpanish
	}
	return LocaleEnglish
}

// Pick returns the variant matching the locale, falling back to the English
// text when the Spanish variant is empty.
func (l Locale) Pick(en, es string) string {
	if l == LocaleSpanish && es != "" {
		return es
	}
	return en
}

func (l Locale) String() string {
	return string(l)
}
