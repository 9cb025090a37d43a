package mappers

import (
	"strconv"
	"strings"

	"github.com/county-directory/console/modules/contacts/presentation/controllers/dtos"
	"github.com/county-directory/console/modules/contacts/presentation/viewmodels"
	"github.com/county-directory/console/pkg/apiclient"
)

func ContactFormFromDTO(id int64, d *dtos.ContactDTO) *viewmodels.ContactForm {
	vm := &viewmodels.ContactForm{
		Name:        d.Name,
		Email:       d.Email,
		Phone:       d.Phone,
		Gender:      d.Gender,
		DateOfBirth: d.DateOfBirth,
		County:      d.County,
	}
	if id != 0 {
		vm.ID = strconv.FormatInt(id, 10)
	}
	return vm
}

func ContactToForm(c *apiclient.Contact) *viewmodels.ContactForm {
	return ContactFormFromDTO(c.ID, dtos.FromContact(c))
}

func CountiesToViewModels(counties []apiclient.County) []viewmodels.County {
	out := make([]viewmodels.County, len(counties))
	for i, c := range counties {
		out[i] = viewmodels.County{Name: c.Name, Code: strconv.Itoa(c.Code)}
	}
	return out
}

// CountiesFromNames rebuilds county options from the names a form posted
// back. Blank and repeated names are dropped.
func CountiesFromNames(names []string) []viewmodels.County {
	seen := make(map[string]bool, len(names))
	out := make([]viewmodels.County, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, viewmodels.County{Name: n})
	}
	return out
}
