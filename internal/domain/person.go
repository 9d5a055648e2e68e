package domain

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Person struct {
	CIN         string     `json:"cin"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	Password    string     `json:"-"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	IsActive    bool       `json:"is_active"`
	IsStaff     bool       `json:"is_staff"`
	IsSuperuser bool       `json:"is_superuser"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	DateJoined  time.Time  `json:"date_joined"`
}

// Validate checks the fields a Person must satisfy before it is persisted.
func (p Person) Validate() error {
	return validation.ValidateStruct(
		&p,
		validation.Field(&p.CIN, validation.Required, CINRule),
		validation.Field(&p.Username, validation.Required, validation.Length(1, UsernameMaxLen)),
		validation.Field(&p.Email, validation.Required, validation.Length(0, EmailMaxLen), EmailRule),
	)
}

func (p Person) String() string {
	return p.Username
}
