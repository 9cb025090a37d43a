package dtos

import (
	"context"
	"strconv"
	"strings"

	"github.com/county-directory/console/pkg/apiclient"
	"github.com/county-directory/console/pkg/shared"
)

type CountyDTO struct {
	Name string `form:"name" validate:"required"`
	Code string `form:"code" validate:"required"`
}

// Normalize trims both fields; validation runs on the trimmed values.
func (d *CountyDTO) Normalize() *CountyDTO {
	d.Name = strings.TrimSpace(d.Name)
	d.Code = strings.TrimSpace(d.Code)
	return d
}

func (d *CountyDTO) Ok(ctx context.Context) (map[string]string, bool) {
	return shared.ValidateForm(ctx, d, "Counties.Fields")
}

// ToInput fails when Code is not an integer.
func (d *CountyDTO) ToInput() (apiclient.CountyInput, bool) {
	code, err := strconv.Atoi(d.Code)
	if err != nil {
		return apiclient.CountyInput{}, false
	}
	return apiclient.CountyInput{Name: d.Name, Code: code}, true
}
