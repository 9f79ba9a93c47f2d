package tips

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"petpal/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/tips", randomTipHandler(svc))
	r.Get("/tips/categories", listCategoriesHandler())
}

func randomTipHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// sin usuario también responde, sin personalizar
		uc, _ := middleware.GetUser(r.Context())
		category := Category(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("category"))))

		tip, err := svc.Random(r.Context(), uc, category)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "unknown category", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, tip)
	}
}

func listCategoriesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, Categories)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
