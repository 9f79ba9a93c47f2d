package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"petpal/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, d *Dashboard) {
	r.Route("/session", func(sr chi.Router) {
		sr.Get("/", currentSessionHandler(d))
		sr.Post("/login", loginHandler(d))
		sr.Post("/logout", logoutHandler(d))
	})

	r.Route("/dashboard", func(dr chi.Router) {
		dr.Get("/", stateHandler(d))
		dr.Post("/navigate", navigateHandler(d))
		dr.Post("/avatar", avatarHandler(d))
	})
}

type loginRequest struct {
	Email string `json:"email"`
}

type sessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	User          string `json:"user,omitempty"`
}

// Con action se simula el botón del home (+10); con screen, la barra de navegación.
type navigateRequest struct {
	Screen string `json:"screen"`
	Action string `json:"action"`
}

// loginHandler godoc
// @Summary Iniciar sesión
// @Description Persiste el usuario actual y carga perfil, historial y reminders en la vista. Sin perfil completo el usuario es nuevo y va a la pantalla profile.
// @Tags session
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Email del usuario"
// @Success 200 {object} LoginResult
// @Failure 400 {string} string "invalid json / invalid email"
// @Router /session/login [post]
func loginHandler(d *Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		res, err := d.Login(r.Context(), req.Email)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidEmail) || errors.Is(err, auth.ErrNoSession) {
				http.Error(w, "invalid email", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// logoutHandler godoc
// @Summary Cerrar sesión
// @Description Borra el puntero de sesión y deja la vista en cero. Los registros del usuario se conservan.
// @Tags session
// @Success 204 "No Content"
// @Failure 500 {string} string "internal error"
// @Router /session/logout [post]
func logoutHandler(d *Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Logout(r.Context()); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// currentSessionHandler godoc
// @Summary Sesión actual
// @Description Indica si hay un usuario con sesión abierta.
// @Tags session
// @Produce json
// @Success 200 {object} sessionResponse
// @Router /session [get]
func currentSessionHandler(d *Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		uc, ok := d.User()
		writeJSON(w, http.StatusOK, sessionResponse{Authenticated: ok, User: uc.Email})
	}
}

// stateHandler godoc
// @Summary Estado de la vista
// @Description Pantalla activa, perfil, historial, reminders y puntos del usuario actual.
// @Tags dashboard
// @Produce json
// @Success 200 {object} State
// @Router /dashboard [get]
func stateHandler(d *Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, d.State())
	}
}

// navigateHandler godoc
// @Summary Navegar
// @Description Con screen cambia de pantalla; con action simula un botón del home y suma 10 Paw Points.
// @Tags dashboard
// @Accept json
// @Produce json
// @Param payload body navigateRequest true "Pantalla o acción"
// @Success 200 {object} State
// @Failure 400 {string} string "invalid json / unknown screen / unknown action"
// @Failure 401 {string} string "unauthorized"
// @Router /dashboard/navigate [post]
func navigateHandler(d *Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req navigateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var (
			st  State
			err error
		)
		if action := strings.TrimSpace(req.Action); action != "" {
			st, err = d.ClickAction(r.Context(), action)
		} else {
			st, err = d.Navigate(Screen(strings.TrimSpace(req.Screen)))
		}
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, st)
	}
}

// avatarHandler godoc
// @Summary Acariciar mascota
// @Description Abre el avatar y suma 5 Paw Points.
// @Tags dashboard
// @Produce json
// @Success 200 {object} State
// @Failure 401 {string} string "unauthorized"
// @Router /dashboard/avatar [post]
func avatarHandler(d *Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := d.PetAvatar(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, st)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, auth.ErrNoSession):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, ErrUnknownScreen), errors.Is(err, ErrUnknownAction):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
