package intl

import (
	"time"

	"golang.org/x/text/language"
)

type SupportedLanguage struct {
	Code        string
	VerboseName string
	Tag         language.Tag
}

var (
	// allSupportedLanguages is the master list of all languages the console ships locale files for
	allSupportedLanguages = []SupportedLanguage{
		{
			Code:        "en",
			VerboseName: "English",
			Tag:         language.English,
		},
		{
			Code:        "zh",
			VerboseName: "中文",
			Tag:         language.Chinese,
		},
	}

	// SupportedLanguages is the default list (all languages supported by the runtime).
	SupportedLanguages = allSupportedLanguages
)

// GetSupportedLanguages returns a filtered list of supported languages based on the whitelist.
// If whitelist is nil or empty, returns all supported languages.
// If whitelist is provided, only languages with codes in the whitelist are returned.
func GetSupportedLanguages(whitelist []string) []SupportedLanguage {
	// If no whitelist provided, return all languages (backward compatible)
	if len(whitelist) == 0 {
		return allSupportedLanguages
	}

	// Create a map for fast lookup
	whitelistMap := make(map[string]bool)
	for _, code := range whitelist {
		whitelistMap[code] = true
	}

	// Filter languages based on whitelist
	filtered := make([]SupportedLanguage, 0, len(whitelist))
	for _, lang := range allSupportedLanguages {
		if whitelistMap[lang.Code] {
			filtered = append(filtered, lang)
		}
	}

	return filtered
}

// FormatDate renders t as a short numeric date in the conventions of tag.
func FormatDate(tag language.Tag, t time.Time) string {
	base, _ := tag.Base()
	switch base.String() {
	case "zh":
		return t.Format("2006/1/2")
	default:
		return t.Format("1/2/2006")
	}
}
