package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"github.com/county-directory/console/pkg/application"
	"github.com/county-directory/console/pkg/configuration"
)

// MissingKey is a message defined in some locale but absent from Locale.
type MissingKey struct {
	Locale string
	Key    string
}

// MissingTrKeys lists, per allowed language, the keys other allowed
// languages define and it does not.
func MissingTrKeys(bundle *i18n.Bundle, allowedLanguages []string) ([]MissingKey, error) {
	messages := bundle.Messages()
	tags := make(map[string]language.Tag, len(allowedLanguages))
	all := make(map[string]struct{})
	for _, code := range allowedLanguages {
		tag, err := language.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("invalid allowed language %q: %w", code, err)
		}
		if messages[tag] == nil {
			return nil, fmt.Errorf("allowed language %q (%s) not found in bundle", code, tag)
		}
		tags[code] = tag
		for key := range messages[tag] {
			all[key] = struct{}{}
		}
	}

	var missing []MissingKey
	for code, tag := range tags {
		for key := range all {
			if messages[tag][key] == nil {
				missing = append(missing, MissingKey{Locale: code, Key: key})
			}
		}
	}
	sort.Slice(missing, func(i, j int) bool {
		if missing[i].Locale != missing[j].Locale {
			return missing[i].Locale < missing[j].Locale
		}
		return missing[i].Key < missing[j].Key
	})
	return missing, nil
}

// CheckTrKeys fails when the locales of mods do not define the same keys.
func CheckTrKeys(allowedLanguages []string, mods ...application.Module) error {
	if len(allowedLanguages) == 0 {
		allowedLanguages = []string{"en", "zh"}
	}
	conf := configuration.Use()
	app, err := NewApplication(mods...)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	missing, err := MissingTrKeys(app.Bundle(), allowedLanguages)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		for _, m := range missing {
			conf.Logger().WithFields(logrus.Fields{
				"locale": m.Locale,
				"key":    m.Key,
			}).Error("Translation key missing")
		}
		return fmt.Errorf("%d translation keys are missing", len(missing))
	}

	conf.Logger().WithFields(logrus.Fields{
		"allowed_locales": strings.Join(allowedLanguages, ", "),
	}).Info("All locales define the same translation keys")
	return nil
}
