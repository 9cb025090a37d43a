package intl

import (
	"context"
	"errors"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type ctxKey string

const (
	localizerKey ctxKey = "localizer"
	localeKey    ctxKey = "locale"
)

var ErrNoLocalizer = errors.New("localizer not found in context")

func WithLocalizer(ctx context.Context, l *i18n.Localizer) context.Context {
	return context.WithValue(ctx, localizerKey, l)
}

func UseLocalizer(ctx context.Context) (*i18n.Localizer, bool) {
	l, ok := ctx.Value(localizerKey).(*i18n.Localizer)
	return l, ok && l != nil
}

func WithLocale(ctx context.Context, tag language.Tag) context.Context {
	return context.WithValue(ctx, localeKey, tag)
}

func UseLocale(ctx context.Context) (language.Tag, bool) {
	tag, ok := ctx.Value(localeKey).(language.Tag)
	return tag, ok
}

// MustT translates messageID with the request localizer and panics when the
// localizer is missing or the message is unknown.
func MustT(ctx context.Context, messageID string, data ...map[string]interface{}) string {
	l, ok := UseLocalizer(ctx)
	if !ok {
		panic(ErrNoLocalizer)
	}
	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(data) > 0 {
		cfg.TemplateData = data[0]
	}
	return l.MustLocalize(cfg)
}
