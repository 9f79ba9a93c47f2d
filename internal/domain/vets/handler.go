package vets

import (
	"encoding/json"
	"net/http"

	"petpal/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/vets", func(vr chi.Router) {
		vr.Get("/", listClinicsHandler(svc))
		vr.Get("/tip", tipHandler(svc))
	})
}

type tipResponse struct {
	Tip string `json:"tip"`
}

func listClinicsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, svc.Directory())
	}
}

func tipHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uc, _ := middleware.GetUser(r.Context())
		writeJSON(w, http.StatusOK, tipResponse{Tip: svc.Tip(r.Context(), uc)})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
