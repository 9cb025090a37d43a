package dtos

import (
	"context"

	"github.com/county-directory/console/pkg/shared"
)

type ChangePasswordDTO struct {
	Username        string `form:"username" validate:"required"`
	Password        string `form:"password" validate:"required"`
	ConfirmPassword string `form:"confirmPassword" validate:"required"`
}

func (d *ChangePasswordDTO) Ok(ctx context.Context) (map[string]string, bool) {
	return shared.ValidateForm(ctx, d, "Account")
}

func (d *ChangePasswordDTO) Matches() bool {
	return d.Password == d.ConfirmPassword
}
