package language

import (
	"fmt"

	"github.com/samber/lo"
)

// Language is one of the closed set of languages the UI offers, identified by
// its display name. The same set serves as the source-language hint for
// transcription and as the translation target.
type Language string

const (
	English Language = "English"
	Turkish Language = "Turkish"
	German  Language = "German"
	French  Language = "French"
	Spanish Language = "Spanish"
	Italian Language = "Italian"
	Dutch   Language = "Dutch"
)

var codes = map[Language]string{
	English: "en",
	Turkish: "tr",
	German:  "de",
	French:  "fr",
	Spanish: "es",
	Italian: "it",
	Dutch:   "nl",
}

// All returns the supported languages in display order.
func All() []Language {
	return []Language{English, Turkish, German, French, Spanish, Italian, Dutch}
}

// Parse maps a display name to a Language, rejecting anything outside the set.
func Parse(name string) (Language, error) {
	lang := Language(name)
	if _, ok := codes[lang]; !ok {
		return "", fmt.Errorf("unsupported language: %q", name)
	}
	return lang, nil
}

// Code returns the ISO 639-1 code passed to the speech API as a language hint.
func (l Language) Code() string {
	return codes[l]
}

// String implements fmt.Stringer.
func (l Language) String() string {
	return string(l)
}

// Targets returns the translation targets available for a given source
// language. The source itself is excluded from the list.
func Targets(source Language) []Language {
	return lo.Filter(All(), func(l Language, _ int) bool {
		return l != source
	})
}
