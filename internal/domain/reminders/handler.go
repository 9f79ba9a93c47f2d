package reminders

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"petpal/internal/middleware"
	"petpal/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

// Listener es el canal lateral hacia la vista: cada cambio de la lista y cada premio
// se reenvía con el total ya persistido.
type Listener interface {
	OnRemindersChanged(uc auth.UserContext, items []Reminder)
	OnPointsAwarded(uc auth.UserContext, total int)
}

func RegisterRoutes(r chi.Router, svc *Service, l Listener) {
	r.Route("/reminders", func(rr chi.Router) {
		rr.Get("/", listRemindersHandler(svc))
		rr.Post("/", createReminderHandler(svc, l))
		rr.Get("/suggestions", suggestionsHandler(svc))
		rr.Post("/{reminderID}/complete", completeReminderHandler(svc, l))
		rr.Delete("/{reminderID}", deleteReminderHandler(svc, l))
	})
	r.Get("/points", pointsHandler(svc))
}

type createReminderRequest struct {
	Task string `json:"task"`
	Time string `json:"time"` // HH:MM
}

type reminderResponse struct {
	ID        string    `json:"id"`
	Task      string    `json:"task"`
	Time      string    `json:"time"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

type bookResponse struct {
	Reminders []reminderResponse `json:"reminders"`
	Points    int                `json:"points"`
}

type completionResponse struct {
	Reminder reminderResponse `json:"reminder"`
	Awarded  int              `json:"awarded"`
	Points   int              `json:"points"`
}

type pointsResponse struct {
	Points int `json:"points"`
}

// listRemindersHandler godoc
// @Summary Listar reminders
// @Description Reminders del usuario (más nuevos primero) y su total de Paw Points.
// @Tags reminders
// @Produce json
// @Param X-User-Email header string false "Email del usuario (modo dev)"
// @Success 200 {object} bookResponse
// @Failure 401 {string} string "unauthorized"
// @Router /reminders [get]
func listRemindersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uc, ok := middleware.GetUser(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		b, err := svc.Load(r.Context(), uc)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, bookResponse{
			Reminders: toReminderResponses(b.Reminders),
			Points:    b.Points,
		})
	}
}

// createReminderHandler godoc
// @Summary Crear reminder
// @Tags reminders
// @Accept json
// @Produce json
// @Param X-User-Email header string false "Email del usuario (modo dev)"
// @Param payload body createReminderRequest true "task obligatorio; time HH:MM"
// @Success 201 {object} reminderResponse
// @Failure 400 {string} string "invalid json / task vacío / time inválido"
// @Failure 401 {string} string "unauthorized"
// @Router /reminders [post]
func createReminderHandler(svc *Service, l Listener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uc, ok := middleware.GetUser(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createReminderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rem, err := svc.Create(r.Context(), uc, req.Task, req.Time)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "task is required and time must be HH:MM", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		notifyList(r, svc, l, uc)
		writeJSON(w, http.StatusCreated, toReminderResponse(rem))
	}
}

// completeReminderHandler godoc
// @Summary Completar reminder
// @Description Marca el reminder como completado y suma 10 Paw Points. Repetir la llamada no vuelve a sumar (awarded=0).
// @Tags reminders
// @Produce json
// @Param X-User-Email header string false "Email del usuario (modo dev)"
// @Param reminderID path string true "ID del reminder"
// @Success 200 {object} completionResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "reminder not found"
// @Router /reminders/{reminderID}/complete [post]
func completeReminderHandler(svc *Service, l Listener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uc, ok := middleware.GetUser(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		c, err := svc.Complete(r.Context(), uc, chi.URLParam(r, "reminderID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "reminder not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		notifyList(r, svc, l, uc)
		if l != nil && c.Awarded > 0 {
			l.OnPointsAwarded(uc, c.Points)
		}
		writeJSON(w, http.StatusOK, completionResponse{
			Reminder: toReminderResponse(c.Reminder),
			Awarded:  c.Awarded,
			Points:   c.Points,
		})
	}
}

// deleteReminderHandler godoc
// @Summary Borrar reminder
// @Description Elimina el reminder del usuario. No descuenta puntos.
// @Tags reminders
// @Param X-User-Email header string false "Email del usuario (modo dev)"
// @Param reminderID path string true "ID del reminder"
// @Success 204 "No Content"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "reminder not found"
// @Router /reminders/{reminderID} [delete]
func deleteReminderHandler(svc *Service, l Listener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uc, ok := middleware.GetUser(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), uc, chi.URLParam(r, "reminderID")); err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "reminder not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		notifyList(r, svc, l, uc)
		w.WriteHeader(http.StatusNoContent)
	}
}

func suggestionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uc, _ := middleware.GetUser(r.Context())
		writeJSON(w, http.StatusOK, svc.Suggestions(r.Context(), uc))
	}
}

// pointsHandler godoc
// @Summary Paw Points
// @Description Total de puntos acumulados por el usuario.
// @Tags reminders
// @Produce json
// @Param X-User-Email header string false "Email del usuario (modo dev)"
// @Success 200 {object} pointsResponse
// @Failure 401 {string} string "unauthorized"
// @Router /points [get]
func pointsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uc, ok := middleware.GetUser(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		pts, err := svc.Points(r.Context(), uc)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, pointsResponse{Points: pts})
	}
}

// notifyList relee la lista persistida; si falla, la vista se queda con la anterior.
func notifyList(r *http.Request, svc *Service, l Listener, uc auth.UserContext) {
	if l == nil {
		return
	}
	b, err := svc.Load(r.Context(), uc)
	if err != nil {
		return
	}
	l.OnRemindersChanged(uc, b.Reminders)
}

func toReminderResponse(rem Reminder) reminderResponse {
	return reminderResponse{
		ID:        rem.ID,
		Task:      rem.Task,
		Time:      rem.Time,
		Completed: rem.Completed,
		CreatedAt: rem.CreatedAt,
	}
}

func toReminderResponses(items []Reminder) []reminderResponse {
	out := make([]reminderResponse, 0, len(items))
	for _, rem := range items {
		out = append(out, toReminderResponse(rem))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
