package authenticating

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidToken = errors.New("token inválido")
	ErrExpiredToken = errors.New("token expirado")
	ErrMissingToken = errors.New("token ausente")
)

// AuthError é a rejeição de um token, já com o código devolvido pela API
type AuthError struct {
	Err     error
	Code    string
	Details string
}

func (e *AuthError) Error() string {
	if e.Details == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Details)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsAuthorizationError separa tokens rejeitados de falhas internas
func IsAuthorizationError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

func NewAuthError(reason error, code string, details string) *AuthError {
	return &AuthError{Err: reason, Code: code, Details: details}
}
