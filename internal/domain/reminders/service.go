package reminders

import (
	"context"
	"errors"
	"strings"
	"time"

	"petpal/internal/platform/metrics"
	"petpal/internal/platform/records"
	"petpal/internal/ports/auth"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("reminder not found")
)

type Service struct {
	repo    Repository
	names   PetNamer
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewService: names y m pueden ser nil.
func NewService(repo Repository, names PetNamer, m *metrics.Metrics) *Service {
	return &Service{
		repo:    repo,
		names:   names,
		metrics: m,
		now:     time.Now,
	}
}

// Load devuelve reminders y puntos. Usuario nuevo: dos ejemplos y 0 puntos.
// Registro corrupto: se reescribe vacío con 0 puntos.
func (s *Service) Load(ctx context.Context, uc auth.UserContext) (Book, error) {
	b, err := s.repo.Load(ctx, uc)
	if err == nil {
		b.Reminders = nonNil(b.Reminders)
		return b, nil
	}
	if !errors.Is(err, records.ErrAbsent) && !records.IsDecodeError(err) {
		return Book{}, err
	}

	b, err = s.repo.Update(ctx, uc, func(cur Book, loadErr error) (Book, error) {
		return s.initial(ctx, uc, cur, loadErr), nil
	})
	if err != nil {
		return Book{}, err
	}
	return b, nil
}

// Create antepone un reminder pendiente. No toca los puntos.
func (s *Service) Create(ctx context.Context, uc auth.UserContext, task, at string) (Reminder, error) {
	if !uc.Valid() {
		return Reminder{}, auth.ErrNoSession
	}

	task = strings.TrimSpace(task)
	at = strings.TrimSpace(at)
	if task == "" {
		return Reminder{}, ErrInvalidInput
	}
	t, err := time.Parse(TimeLayout, at)
	if err != nil {
		return Reminder{}, ErrInvalidInput
	}

	rem := Reminder{
		ID:        uuid.NewString(),
		Task:      task,
		Time:      t.Format(TimeLayout),
		Completed: false,
		CreatedAt: s.now().UTC(),
	}

	_, err = s.repo.Update(ctx, uc, func(cur Book, loadErr error) (Book, error) {
		cur = s.initial(ctx, uc, cur, loadErr)
		next := make([]Reminder, 0, len(cur.Reminders)+1)
		next = append(next, rem)
		cur.Reminders = append(next, cur.Reminders...)
		return cur, nil
	})
	if err != nil {
		return Reminder{}, err
	}
	return rem, nil
}

// Complete marca el reminder y suma 10 puntos en la misma escritura.
// Completar uno ya completado no vuelve a premiar.
func (s *Service) Complete(ctx context.Context, uc auth.UserContext, id string) (Completion, error) {
	if !uc.Valid() {
		return Completion{}, auth.ErrNoSession
	}

	var out Completion
	b, err := s.repo.Update(ctx, uc, func(cur Book, loadErr error) (Book, error) {
		cur = s.initial(ctx, uc, cur, loadErr)

		i := indexOf(cur.Reminders, id)
		if i < 0 {
			return cur, ErrNotFound
		}

		// copia para no mutar el slice leído
		next := make([]Reminder, len(cur.Reminders))
		copy(next, cur.Reminders)

		out = Completion{}
		if !next[i].Completed {
			next[i].Completed = true
			out.Awarded = EventReminderCompleted.Points()
			cur.Points += out.Awarded
		}
		cur.Reminders = next
		out.Reminder = next[i]
		return cur, nil
	})
	if err != nil {
		return Completion{}, err
	}

	out.Points = b.Points
	s.metrics.Award(string(EventReminderCompleted), out.Awarded)
	return out, nil
}

// Delete quita el reminder sin importar su estado. Los puntos no cambian.
func (s *Service) Delete(ctx context.Context, uc auth.UserContext, id string) error {
	if !uc.Valid() {
		return auth.ErrNoSession
	}

	_, err := s.repo.Update(ctx, uc, func(cur Book, loadErr error) (Book, error) {
		cur = s.initial(ctx, uc, cur, loadErr)

		i := indexOf(cur.Reminders, id)
		if i < 0 {
			return cur, ErrNotFound
		}

		next := make([]Reminder, 0, len(cur.Reminders)-1)
		next = append(next, cur.Reminders[:i]...)
		next = append(next, cur.Reminders[i+1:]...)
		cur.Reminders = next
		return cur, nil
	})
	return err
}

// Award suma los puntos fijos del evento y devuelve el total.
func (s *Service) Award(ctx context.Context, uc auth.UserContext, ev Event) (int, error) {
	if !uc.Valid() {
		return 0, auth.ErrNoSession
	}
	pts := ev.Points()
	if pts <= 0 {
		return 0, ErrInvalidInput
	}

	b, err := s.repo.Update(ctx, uc, func(cur Book, loadErr error) (Book, error) {
		cur = s.initial(ctx, uc, cur, loadErr)
		cur.Points += pts
		return cur, nil
	})
	if err != nil {
		return 0, err
	}

	s.metrics.Award(string(ev), pts)
	return b.Points, nil
}

func (s *Service) Points(ctx context.Context, uc auth.UserContext) (int, error) {
	b, err := s.Load(ctx, uc)
	if err != nil {
		return 0, err
	}
	return b.Points, nil
}

var baseTasks = []string{
	"Feed morning meal",
	"Feed evening meal",
	"Morning walk",
	"Evening walk",
	"Brush teeth",
	"Give medication",
	"Playtime",
	"Grooming session",
	"Fresh water refill",
	"Litter box cleaning",
}

// Suggestions devuelve las tareas sugeridas, personalizadas con el nombre de la mascota.
func (s *Service) Suggestions(ctx context.Context, uc auth.UserContext) []string {
	return SuggestedTasks(s.petName(ctx, uc))
}

func SuggestedTasks(name string) []string {
	out := make([]string, 0, len(baseTasks))
	for _, t := range baseTasks {
		out = append(out, personalize(t, name))
	}
	return out
}

func personalize(task, name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return task
	}
	r := strings.NewReplacer(
		"Feed", "Feed "+name,
		"walk", "walk with "+name,
		"Brush teeth", "Brush "+name+"'s teeth",
		"Playtime", "Playtime with "+name,
		"Grooming session", "Grooming session for "+name,
	)
	return r.Replace(task)
}

func (s *Service) petName(ctx context.Context, uc auth.UserContext) string {
	if s.names == nil || !uc.Valid() {
		return ""
	}
	return s.names.PetName(ctx, uc)
}

func (s *Service) initial(ctx context.Context, uc auth.UserContext, cur Book, loadErr error) Book {
	switch {
	case loadErr == nil:
		cur.Reminders = nonNil(cur.Reminders)
		return cur
	case errors.Is(loadErr, records.ErrAbsent):
		return Book{Email: uc.Email, Reminders: s.seed(ctx, uc), Points: 0}
	default:
		return Book{Email: uc.Email, Reminders: []Reminder{}, Points: 0}
	}
}

func (s *Service) seed(ctx context.Context, uc auth.UserContext) []Reminder {
	name := s.petName(ctx, uc)
	now := s.now().UTC()
	return []Reminder{
		{
			ID:        uuid.NewString(),
			Task:      personalize("Feed morning meal", name),
			Time:      "08:00",
			CreatedAt: now.Add(-24 * time.Hour),
		},
		{
			ID:        uuid.NewString(),
			Task:      personalize("Evening walk", name),
			Time:      "18:30",
			CreatedAt: now.Add(-12 * time.Hour),
		},
	}
}

func indexOf(items []Reminder, id string) int {
	for i, r := range items {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func nonNil(in []Reminder) []Reminder {
	if in == nil {
		return []Reminder{}
	}
	return in
}
