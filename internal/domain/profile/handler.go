package profile

import (
	"encoding/json"
	"errors"
	"net/http"

	"petpal/internal/middleware"
	"petpal/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

// Listener recibe el perfil recién guardado (p.ej. el estado del dashboard).
type Listener interface {
	OnProfileSaved(uc auth.UserContext, p Profile)
}

func RegisterRoutes(r chi.Router, svc *Service, l Listener) {
	r.Route("/profile", func(pr chi.Router) {
		pr.Get("/", getProfileHandler(svc))
		pr.Put("/", saveProfileHandler(svc, l))
		pr.Get("/breeds", listBreedsHandler())
	})
}

type saveProfileRequest struct {
	Name   string `json:"name"`
	Breed  string `json:"breed"`
	Age    int    `json:"age"`
	Health string `json:"health"`
}

type profileResponse struct {
	Name     string `json:"name"`
	Breed    string `json:"breed"`
	Age      int    `json:"age"`
	Health   string `json:"health"`
	Complete bool   `json:"complete"`
}

// getProfileHandler godoc
// @Summary Perfil de la mascota
// @Description Devuelve el perfil guardado del usuario actual.
// @Tags profile
// @Produce json
// @Param X-User-Email header string false "Email del usuario (modo dev)"
// @Success 200 {object} profileResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "profile not found"
// @Router /profile [get]
func getProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uc, ok := middleware.GetUser(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := svc.Load(r.Context(), uc)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "profile not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toProfileResponse(p))
	}
}

// saveProfileHandler godoc
// @Summary Guardar perfil
// @Description Reemplaza el perfil completo. Nombre y edad positiva son obligatorios; sin raza se usa la primera opción.
// @Tags profile
// @Accept json
// @Produce json
// @Param X-User-Email header string false "Email del usuario (modo dev)"
// @Param payload body saveProfileRequest true "Datos de la mascota"
// @Success 200 {object} profileResponse
// @Failure 400 {string} string "invalid json / name and a positive age are required"
// @Failure 401 {string} string "unauthorized"
// @Router /profile [put]
func saveProfileHandler(svc *Service, l Listener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uc, ok := middleware.GetUser(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req saveProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Save(r.Context(), uc, SaveInput{
			Name:   req.Name,
			Breed:  req.Breed,
			Age:    req.Age,
			Health: req.Health,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "name and a positive age are required", http.StatusBadRequest)
			case errors.Is(err, auth.ErrNoSession):
				http.Error(w, "unauthorized", http.StatusUnauthorized)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		if l != nil {
			l.OnProfileSaved(uc, p)
		}
		writeJSON(w, http.StatusOK, toProfileResponse(p))
	}
}

func listBreedsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, Breeds)
	}
}

func toProfileResponse(p Profile) profileResponse {
	return profileResponse{
		Name:     p.Name,
		Breed:    p.Breed,
		Age:      p.Age,
		Health:   p.Health,
		Complete: p.Complete(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
