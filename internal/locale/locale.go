// Package locale holds the bilingual message table and the active-language
// handle threaded through the interactive flow. The language is never stored
// in package-level state; callers create a *Messages once per run and pass it
// down, so parallel tests cannot leak languages into each other.
package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Language selects a row of the message catalog.
type Language string

// Supported languages.
const (
	English    Language = "en"
	Portuguese Language = "pt"
)

// DefaultLanguage is the language used before the user picks one.
const DefaultLanguage = English

// Supported returns the languages the catalog is complete for.
func Supported() []Language {
	return []Language{English, Portuguese}
}

// String returns the language code.
func (l Language) String() string {
	return string(l)
}

// DisplayName returns the language's self-name, title-cased for menus
// ("English", "Português").
func (l Language) DisplayName() string {
	tag := language.Make(string(l))
	name := display.Self.Name(tag)
	if name == "" {
		return string(l)
	}
	return cases.Title(tag).String(name)
}

// matchTags must stay aligned with Supported.
var matchTags = []language.Tag{language.English, language.Portuguese}

var matcher = language.NewMatcher(matchTags)

// Parse maps a BCP 47 tag onto a supported Language. Region and script
// variants collapse onto their base ("pt-BR" → pt, "en_US" → en). The second
// return value is false when the tag does not match any supported language.
func Parse(tag string) (Language, bool) {
	tag = strings.TrimSpace(strings.ReplaceAll(tag, "_", "-"))
	if tag == "" {
		return DefaultLanguage, false
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return DefaultLanguage, false
	}
	_, idx, conf := matcher.Match(parsed)
	if conf == language.No {
		return DefaultLanguage, false
	}
	return Supported()[idx], true
}

// Messages is the active-language cell. The first wizard step sets the
// language exactly once; every later lookup reads it.
type Messages struct {
	lang Language
}

// New returns a Messages handle with the given active language.
func New(lang Language) *Messages {
	return &Messages{lang: lang}
}

// SetLanguage switches the active language.
func (m *Messages) SetLanguage(lang Language) {
	m.lang = lang
}

// Language returns the active language.
func (m *Messages) Language() Language {
	if m.lang == "" {
		return DefaultLanguage
	}
	return m.lang
}

// Get returns the active-language string for id. Lookups fall back to the
// English row and finally to the id itself; the catalog totality test keeps
// both fallbacks unreachable for defined ids.
func (m *Messages) Get(id MessageID) string {
	if s, ok := catalog[m.Language()][id]; ok {
		return s
	}
	if s, ok := catalog[English][id]; ok {
		return s
	}
	return string(id)
}

// Getf formats the message for id with fmt.Sprintf.
func (m *Messages) Getf(id MessageID, args ...any) string {
	return fmt.Sprintf(m.Get(id), args...)
}
