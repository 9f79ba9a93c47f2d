package health

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"petpal/internal/middleware"
	"petpal/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

// Listener recibe el historial completo tras cada alta.
type Listener interface {
	OnHealthLogged(uc auth.UserContext, entries []Entry)
}

func RegisterRoutes(r chi.Router, svc *Service, l Listener) {
	r.Route("/health-log", func(hr chi.Router) {
		hr.Get("/", listEntriesHandler(svc))
		hr.Post("/", appendEntryHandler(svc, l))
		hr.Post("/suggest", suggestHandler(svc))
	})
}

type appendEntryRequest struct {
	Date    string `json:"date"` // YYYY-MM-DD, opcional (default hoy)
	Symptom string `json:"symptom"`
	Weight  string `json:"weight"` // opcional
}

type entryResponse struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Symptom   string    `json:"symptom"`
	Weight    string    `json:"weight"`
	CreatedAt time.Time `json:"created_at"`
}

type appendEntryResponse struct {
	Entry   entryResponse   `json:"entry"`
	Advice  Advice          `json:"advice"`
	Entries []entryResponse `json:"entries"`
}

type suggestRequest struct {
	Symptom string `json:"symptom"`
	Weight  string `json:"weight"`
}

// listEntriesHandler godoc
// @Summary Historial de salud
// @Description Devuelve las observaciones del usuario, más nuevas primero. La primera lectura de un usuario nuevo siembra dos ejemplos. Usuario: header `X-User-Email` o sesión persistida.
// @Tags health
// @Produce json
// @Param X-User-Email header string false "Email del usuario (modo dev)"
// @Success 200 {array} entryResponse
// @Failure 401 {string} string "unauthorized"
// @Router /health-log [get]
func listEntriesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uc, ok := middleware.GetUser(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.Load(r.Context(), uc)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toEntryResponses(items))
	}
}

// appendEntryHandler godoc
// @Summary Registrar observación
// @Description Antepone una observación al historial y devuelve el consejo calculado contra las entradas previas.
// @Tags health
// @Accept json
// @Produce json
// @Param X-User-Email header string false "Email del usuario (modo dev)"
// @Param payload body appendEntryRequest true "symptom obligatorio; date YYYY-MM-DD; weight decimal"
// @Success 201 {object} appendEntryResponse
// @Failure 400 {string} string "invalid json / symptom vacío / fecha o peso inválidos"
// @Failure 401 {string} string "unauthorized"
// @Router /health-log [post]
func appendEntryHandler(svc *Service, l Listener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uc, ok := middleware.GetUser(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req appendEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		e, advice, entries, err := svc.Append(r.Context(), uc, AppendInput{
			Date:    req.Date,
			Symptom: req.Symptom,
			Weight:  req.Weight,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "symptom is required; date must be YYYY-MM-DD; weight must be a positive number", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if l != nil {
			l.OnHealthLogged(uc, entries)
		}
		writeJSON(w, http.StatusCreated, appendEntryResponse{
			Entry:   toEntryResponse(e),
			Advice:  advice,
			Entries: toEntryResponses(entries),
		})
	}
}

// suggestHandler godoc
// @Summary Previsualizar consejo
// @Description Evalúa la tabla de consejos (urgente, común, tendencia de peso, genérico) sin registrar nada.
// @Tags health
// @Accept json
// @Produce json
// @Param X-User-Email header string false "Email del usuario (modo dev)"
// @Param payload body suggestRequest true "Síntoma y peso opcional"
// @Success 200 {object} Advice
// @Failure 401 {string} string "unauthorized"
// @Router /health-log/suggest [post]
func suggestHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uc, ok := middleware.GetUser(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req suggestRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		advice, err := svc.Suggest(r.Context(), uc, req.Symptom, req.Weight)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, advice)
	}
}

func toEntryResponse(e Entry) entryResponse {
	return entryResponse{
		ID:        e.ID,
		Date:      e.Date,
		Symptom:   e.Symptom,
		Weight:    e.Weight,
		CreatedAt: e.CreatedAt,
	}
}

func toEntryResponses(items []Entry) []entryResponse {
	out := make([]entryResponse, 0, len(items))
	for _, e := range items {
		out = append(out, toEntryResponse(e))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
