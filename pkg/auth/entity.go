package auth

import "errors"

var (
	// ErrMissingCredentials — пустой email или пароль; запрос к бэкенду не выполняется.
	ErrMissingCredentials = errors.New("missing credentials")
	// ErrInvalidCredentials is returned when the backend accepted the call
	// but handed back no access token.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Credentials is the login form.
type Credentials struct {
	Email    string `form:"email" json:"email" validate:"required"`
	Password string `form:"password" json:"password" validate:"required"`
}
