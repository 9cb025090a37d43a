package dtos

import (
	"context"
	"strings"
	"time"

	"github.com/county-directory/console/pkg/apiclient"
	"github.com/county-directory/console/pkg/shared"
)

// ContactDTO is the add/edit contact form. Field names follow the form inputs.
type ContactDTO struct {
	Name        string `form:"name" validate:"required"`
	Email       string `form:"email" validate:"required"`
	Phone       string `form:"phone" validate:"required"`
	Gender      string `form:"gender" validate:"required"`
	DateOfBirth string `form:"dateOfBirth" validate:"required"`
	County      string `form:"county" validate:"required"`
	// CountyOptions echoes the county list the form was rendered with, so a
	// rejected submission can be retried without reloading it.
	CountyOptions []string `form:"countyOptions"`
}

// Normalize trims every field; validation runs on the trimmed values.
func (d *ContactDTO) Normalize() *ContactDTO {
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.TrimSpace(d.Email)
	d.Phone = strings.TrimSpace(d.Phone)
	d.Gender = strings.TrimSpace(d.Gender)
	d.DateOfBirth = strings.TrimSpace(d.DateOfBirth)
	d.County = strings.TrimSpace(d.County)
	return d
}

func (d *ContactDTO) Ok(ctx context.Context) (map[string]string, bool) {
	return shared.ValidateForm(ctx, d, "Contacts.Fields")
}

func (d *ContactDTO) ToInput() apiclient.ContactInput {
	return apiclient.ContactInput{
		FullName:    d.Name,
		Email:       d.Email,
		Phone:       d.Phone,
		DateOfBirth: d.DateOfBirth,
		Gender:      apiclient.Gender(d.Gender),
		CountyName:  d.County,
	}
}

func FromContact(c *apiclient.Contact) *ContactDTO {
	return &ContactDTO{
		Name:        c.FullName,
		Email:       c.Email,
		Phone:       c.Phone,
		Gender:      string(c.Gender),
		DateOfBirth: dateInputValue(c.DateOfBirth),
		County:      c.CountyName,
	}
}

// dateInputValue converts an API timestamp to the yyyy-mm-dd value a date
// input expects. Other values pass through.
func dateInputValue(s string) string {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.Format(time.DateOnly)
	}
	return s
}
