package viewmodels

// ContactForm holds the values shown in the add/edit contact form.
type ContactForm struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	Gender      string
	DateOfBirth string
	County      string
}

type County struct {
	Name string
	Code string
}
