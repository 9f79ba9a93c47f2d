package auth

import "context"

// SessionResolver devuelve el usuario de la sesión persistida, si existe.
type SessionResolver interface {
	Current(ctx context.Context) (UserContext, bool, error)
}
