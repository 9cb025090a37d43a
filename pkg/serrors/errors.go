package serrors

import (
	"github.com/go-playground/validator/v10"
	"github.com/iota-uz/go-i18n/v2/i18n"
)

// BaseError is an error with a stable code and an optional locale key used
// when the error is shown to the user.
type BaseError struct {
	Code         string
	Message      string
	LocaleKey    string
	TemplateData map[string]string
}

func NewError(code, message, localeKey string) *BaseError {
	return &BaseError{
		Code:      code,
		Message:   message,
		LocaleKey: localeKey,
	}
}

func (e *BaseError) Error() string {
	return e.Message
}

// Is reports equality by code so wrapped copies still match the sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Localize returns the translated message, falling back to Message when the
// key is missing from the bundle.
func (e *BaseError) Localize(l *i18n.Localizer) string {
	if l == nil || e.LocaleKey == "" {
		return e.Message
	}
	data := make(map[string]string, len(e.TemplateData))
	for k, v := range e.TemplateData {
		data[k] = localizeOr(l, v, v)
	}
	return localizeOr(l, e.LocaleKey, e.Message, data)
}

type ValidationErrors map[string]*BaseError

// ProcessValidatorErrors converts validator output into coded errors keyed by
// struct field name. fieldLocaleKey maps a field to its translated label key.
func ProcessValidatorErrors(errs validator.ValidationErrors, fieldLocaleKey func(field string) string) ValidationErrors {
	out := make(ValidationErrors, len(errs))
	for _, err := range errs {
		field := err.Field()
		label := field
		if fieldLocaleKey != nil {
			if key := fieldLocaleKey(field); key != "" {
				label = key
			}
		}
		out[field] = &BaseError{
			Code:         "VALIDATION_" + err.Tag(),
			Message:      field + " failed on " + err.Tag(),
			LocaleKey:    "ValidationErrors." + err.Tag(),
			TemplateData: map[string]string{"Field": label},
		}
	}
	return out
}

func LocalizeValidationErrors(errs ValidationErrors, l *i18n.Localizer) map[string]string {
	out := make(map[string]string, len(errs))
	for field, err := range errs {
		out[field] = err.Localize(l)
	}
	return out
}

func localizeOr(l *i18n.Localizer, id, fallback string, data ...map[string]string) string {
	cfg := &i18n.LocalizeConfig{MessageID: id}
	if len(data) > 0 {
		cfg.TemplateData = data[0]
	}
	msg, err := l.Localize(cfg)
	if err != nil || msg == "" {
		return fallback
	}
	return msg
}
