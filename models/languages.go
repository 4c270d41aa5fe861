package models

import "strings"

// DefaultLanguage is the language every unrecognized preference falls
// back to.
const DefaultLanguage = "english"

// SupportedLanguages maps a lowercase language name to its short code.
// Read-only; every request path that accepts a language validates
// against it.
var SupportedLanguages = map[string]string{
	"english":   "en",
	"hindi":     "hi",
	"tamil":     "ta",
	"telugu":    "te",
	"kannada":   "kn",
	"malayalam": "ml",
	"bengali":   "bn",
	"gujarati":  "gu",
	"marathi":   "mr",
	"punjabi":   "pa",
	"urdu":      "ur",
}

// IsSupportedLanguage reports whether name is one of the supported
// language names.
func IsSupportedLanguage(name string) bool {
	_, ok := SupportedLanguages[name]
	return ok
}

// ClampLanguage returns name lowered if supported, otherwise the
// default language.
func ClampLanguage(name string) string {
	lowered := strings.ToLower(name)
	if IsSupportedLanguage(lowered) {
		return lowered
	}
	return DefaultLanguage
}

// LanguageNames returns the supported language names in no particular
// order, for the metadata endpoints.
func LanguageNames() []string {
	names := make([]string, 0, len(SupportedLanguages))
	for name := range SupportedLanguages {
		names = append(names, name)
	}
	return names
}
