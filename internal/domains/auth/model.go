package auth

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// SessionUser is the subset of the user record carried in the
// authenticated session.
type SessionUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// SessionUserPatch is a partial profile update; only provided keys
// override.
type SessionUserPatch struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c Credentials) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Email, validation.Required.Error("email is required"), is.Email),
		validation.Field(&c.Password, validation.Required.Error("password is required")),
	)
}

// Session is the login response: the session user plus a signed token.
type Session struct {
	User  SessionUser `json:"user"`
	Token string      `json:"token"`
}
