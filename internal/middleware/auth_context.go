package middleware

import (
	"context"
	"net/http"
	"strings"

	"petpal/internal/ports/auth"
)

type ctxKey string

const userKey ctxKey = "user"

// UserHeader permite a un cliente indicar el usuario explícitamente (modo dev / clientes API).
const UserHeader = "X-User-Email"

// AuthContext:
// - Si viene header X-User-Email válido => setea ese usuario.
// - Si no, y resolver != nil => usa el puntero de sesión persistido.
// - Si no hay usuario, el request sigue igual; los handlers decidirán si exigen auth.
func AuthContext(resolver auth.SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if email := strings.TrimSpace(r.Header.Get(UserHeader)); email != "" {
				uc, err := auth.NewUserContext(email)
				if err != nil {
					// Header inválido: no cortamos, el handler responde 401.
					next.ServeHTTP(w, r)
					return
				}
				next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), uc)))
				return
			}

			if resolver == nil {
				next.ServeHTTP(w, r)
				return
			}

			uc, ok, err := resolver.Current(r.Context())
			if err != nil || !ok {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), uc)))
		})
	}
}

func WithUser(ctx context.Context, uc auth.UserContext) context.Context {
	return context.WithValue(ctx, userKey, uc)
}

func GetUser(ctx context.Context) (auth.UserContext, bool) {
	v := ctx.Value(userKey)
	if v == nil {
		return auth.UserContext{}, false
	}
	uc, ok := v.(auth.UserContext)
	if !ok || !uc.Valid() {
		return auth.UserContext{}, false
	}
	return uc, true
}
