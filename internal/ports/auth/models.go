package auth

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNoSession    = errors.New("no active session")
	ErrInvalidEmail = errors.New("invalid email")
)

var validate = validator.New()

// Mismo criterio que el formulario de login: algo@algo.algo sin espacios.
var loginEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserContext identifica al usuario dueño de los registros.
// Se pasa explícitamente a cada llamada de repositorio.
type UserContext struct {
	Email string
}

// NewUserContext normaliza (trim + lowercase) y valida el email.
func NewUserContext(email string) (UserContext, error) {
	e := NormalizeEmail(email)
	if e == "" {
		return UserContext{}, ErrNoSession
	}
	if !loginEmail.MatchString(e) {
		return UserContext{}, ErrInvalidEmail
	}
	if err := validate.Var(e, "required,email"); err != nil {
		return UserContext{}, ErrInvalidEmail
	}
	return UserContext{Email: e}, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Valid es false para el valor cero (sin sesión).
func (u UserContext) Valid() bool {
	return u.Email != "" && u.Email == NormalizeEmail(u.Email)
}

// Key deriva la key por usuario: <kind>-<email normalizado>.
func (u UserContext) Key(kind string) string {
	return kind + "-" + NormalizeEmail(u.Email)
}
