package dto

import (
	"net/mail"
	"strings"

	"MedDesk/internal/validation"

	dom "MedDesk/internal/domain"
)

// RegisterRequest is the JSON body for POST /register.
// password2 is only compared against password and never persisted.
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

// Validate checks structural field requirements. Uniqueness and the
// password policy are checked by the account service against the store.
func (r *RegisterRequest) Validate() validation.FieldErrors {
	fe := validation.FieldErrors{}
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)

	if r.Username == "" {
		fe.Add("username", "This field is required.")
	}
	if r.Email == "" {
		fe.Add("email", "This field is required.")
	} else if _, err := mail.ParseAddress(r.Email); err != nil {
		fe.Add("email", "Enter a valid email address.")
	}
	if r.Password == "" {
		fe.Add("password", "This field is required.")
	}
	if r.Password2 == "" {
		fe.Add("password2", "This field is required.")
	}
	return fe
}

// TokenRequest is the JSON body for POST /token.
type TokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshRequest is the JSON body for POST /token/refresh.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// TokenResponse carries an issued token pair. Refresh is omitted on
// refresh-only responses.
type TokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}

// AccountResponse is the public view of an account. The password hash is
// deliberately not part of it.
type AccountResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// NewAccountResponse renders an account for the wire.
func NewAccountResponse(a dom.Account) AccountResponse {
	return AccountResponse{ID: a.ID, Username: a.Username, Email: a.Email}
}
