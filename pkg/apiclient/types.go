package apiclient

import (
	"encoding/json"
)

type Gender string

const (
	GenderMale         Gender = "Male"
	GenderFemale       Gender = "Female"
	GenderNotSpecified Gender = "NotSpecified"
)

type Contact struct {
	ID          int64  `json:"id"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      Gender `json:"gender"`
	CountyName  string `json:"countyName"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// Record exposes the contact under its wire field names for table rendering.
func (c Contact) Record() map[string]any {
	rec := map[string]any{
		"id":          c.ID,
		"fullName":    c.FullName,
		"email":       c.Email,
		"phone":       c.Phone,
		"dateOfBirth": c.DateOfBirth,
		"gender":      string(c.Gender),
		"countyName":  c.CountyName,
	}
	if c.CreatedAt != "" {
		rec["createdAt"] = c.CreatedAt
	}
	return rec
}

type ContactInput struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      Gender `json:"gender"`
	CountyName  string `json:"countyName"`
}

type County struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code int    `json:"code"`
}

type CountyInput struct {
	Name string `json:"name"`
	Code int    `json:"code"`
}

// CountyStat is one bar of the top-counties chart.
type CountyStat struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

type GenderStats struct {
	MaleCount    int64 `json:"maleCount"`
	FemaleCount  int64 `json:"femaleCount"`
	NotSpecified int64 `json:"notSpecified"`
}

// UnmarshalJSON accepts both "notSpecified" and "notSpecifiedCount"; the API
// has shipped both names.
func (g *GenderStats) UnmarshalJSON(data []byte) error {
	var wire struct {
		MaleCount         int64  `json:"maleCount"`
		FemaleCount       int64  `json:"femaleCount"`
		NotSpecified      *int64 `json:"notSpecified"`
		NotSpecifiedCount *int64 `json:"notSpecifiedCount"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	g.MaleCount = wire.MaleCount
	g.FemaleCount = wire.FemaleCount
	g.NotSpecified = 0
	switch {
	case wire.NotSpecified != nil:
		g.NotSpecified = *wire.NotSpecified
	case wire.NotSpecifiedCount != nil:
		g.NotSpecified = *wire.NotSpecifiedCount
	}
	return nil
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Category string `json:"category,omitempty"`
	Token    string `json:"token,omitempty"`
	// Raw keeps the undecoded response for the session record.
	Raw json.RawMessage `json:"-"`
}

type UserUpdate struct {
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

// PasswordChange identifies the user by ID when known; Username is used for
// the lookup otherwise and to detect a rename between lookup and update.
type PasswordChange struct {
	UserID   int64
	Username string
	Password string
}

// Document is a binary payload such as a PDF report.
type Document struct {
	ContentType string
	Filename    string
	Body        []byte
}
