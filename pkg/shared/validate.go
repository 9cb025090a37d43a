package shared

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/county-directory/console/pkg/constants"
	"github.com/county-directory/console/pkg/intl"
	"github.com/county-directory/console/pkg/serrors"
)

// ValidateForm runs the validate tags of dto and returns localized messages
// keyed by struct field. Field labels are looked up as "<namespace>.<Field>".
func ValidateForm(ctx context.Context, dto any, namespace string) (map[string]string, bool) {
	err := constants.Validate.Struct(dto)
	if err == nil {
		return map[string]string{}, true
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		panic(err)
	}
	localizer, _ := intl.UseLocalizer(ctx)
	processed := serrors.ProcessValidatorErrors(verrs, func(field string) string {
		return namespace + "." + field
	})
	return serrors.LocalizeValidationErrors(processed, localizer), false
}
