package dtos

import (
	"context"

	"github.com/county-directory/console/pkg/apiclient"
	"github.com/county-directory/console/pkg/shared"
)

// CredentialsDTO is the login and signup form.
type CredentialsDTO struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// Ok validates the form; field labels are read from namespace.
func (d *CredentialsDTO) Ok(ctx context.Context, namespace string) (map[string]string, bool) {
	return shared.ValidateForm(ctx, d, namespace)
}

func (d *CredentialsDTO) ToCredentials() apiclient.Credentials {
	return apiclient.Credentials{Username: d.Username, Password: d.Password}
}
