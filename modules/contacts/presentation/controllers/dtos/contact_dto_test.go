package dtos

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/county-directory/console/pkg/apiclient"
)

func TestFromContact_DateOfBirth(t *testing.T) {
	cases := map[string]string{
		"1985-02-03T00:00:00Z":        "1985-02-03",
		"1985-02-03T10:11:12.5+03:00": "1985-02-03",
		"1985-02-03":                  "1985-02-03",
		"":                            "",
	}
	for in, want := range cases {
		assert.Equal(t, want, FromContact(&apiclient.Contact{DateOfBirth: in}).DateOfBirth, in)
	}
}

func TestContactDTO_NormalizeTrims(t *testing.T) {
	d := &ContactDTO{Name: "  Jane ", Email: " j@x.io", Phone: "07 ", Gender: "Male", DateOfBirth: " 2000-01-01", County: "Nairobi\t"}
	assert.Equal(t, apiclient.ContactInput{
		FullName: "Jane", Email: "j@x.io", Phone: "07", Gender: apiclient.GenderMale, DateOfBirth: "2000-01-01", CountyName: "Nairobi",
	}, d.Normalize().ToInput())
}
