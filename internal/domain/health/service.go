package health

import (
	"context"
	"errors"
	"strings"
	"time"

	"petpal/internal/platform/records"
	"petpal/internal/ports/auth"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type AppendInput struct {
	Date    string // YYYY-MM-DD; vacío = hoy
	Symptom string
	Weight  string // decimal; vacío = NotRecorded
}

// Load devuelve el historial, más nuevo primero. Nunca devuelve nil.
// Si la key no existe se siembran dos ejemplos; si está corrupta se reescribe vacía.
func (s *Service) Load(ctx context.Context, uc auth.UserContext) ([]Entry, error) {
	l, err := s.repo.Load(ctx, uc)
	if err == nil {
		return nonNil(l.Logs), nil
	}
	if !errors.Is(err, records.ErrAbsent) && !records.IsDecodeError(err) {
		return nil, err
	}

	l, err = s.repo.Update(ctx, uc, func(cur Log, loadErr error) (Log, error) {
		return s.initial(uc, cur, loadErr), nil
	})
	if err != nil {
		return nil, err
	}
	return nonNil(l.Logs), nil
}

// Append antepone la entrada y persiste la secuencia completa.
// El consejo se calcula contra las entradas previas (sin la nueva).
func (s *Service) Append(ctx context.Context, uc auth.UserContext, in AppendInput) (Entry, Advice, []Entry, error) {
	if !uc.Valid() {
		return Entry{}, Advice{}, nil, auth.ErrNoSession
	}

	now := s.now().UTC()
	e, err := s.newEntry(now, in)
	if err != nil {
		return Entry{}, Advice{}, nil, err
	}

	var advice Advice
	l, err := s.repo.Update(ctx, uc, func(cur Log, loadErr error) (Log, error) {
		cur = s.initial(uc, cur, loadErr)
		advice = Suggest(e.Symptom, in.Weight, cur.Logs)

		next := make([]Entry, 0, len(cur.Logs)+1)
		next = append(next, e)
		next = append(next, cur.Logs...)
		cur.Logs = next
		return cur, nil
	})
	if err != nil {
		return Entry{}, Advice{}, nil, err
	}
	return e, advice, l.Logs, nil
}

// Suggest previsualiza el consejo sin escribir nada.
func (s *Service) Suggest(ctx context.Context, uc auth.UserContext, symptom, weight string) (Advice, error) {
	prior, err := s.Load(ctx, uc)
	if err != nil {
		return Advice{}, err
	}
	return Suggest(symptom, weight, prior), nil
}

func (s *Service) newEntry(now time.Time, in AppendInput) (Entry, error) {
	symptom := strings.TrimSpace(in.Symptom)
	if symptom == "" {
		return Entry{}, ErrInvalidInput
	}

	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = now.Format(DateLayout)
	} else if _, err := time.Parse(DateLayout, date); err != nil {
		return Entry{}, ErrInvalidInput
	}

	weight := strings.TrimSpace(in.Weight)
	if weight == "" {
		weight = NotRecorded
	} else if _, ok := parseWeight(weight); !ok {
		return Entry{}, ErrInvalidInput
	}

	return Entry{
		ID:        uuid.NewString(),
		Date:      date,
		Symptom:   symptom,
		Weight:    weight,
		CreatedAt: now,
	}, nil
}

// initial resuelve el estado de partida según el resultado de la lectura.
func (s *Service) initial(uc auth.UserContext, cur Log, loadErr error) Log {
	switch {
	case loadErr == nil:
		cur.Logs = nonNil(cur.Logs)
		return cur
	case errors.Is(loadErr, records.ErrAbsent):
		return Log{Email: uc.Email, Logs: seedEntries(s.now().UTC())}
	default:
		return Log{Email: uc.Email, Logs: []Entry{}}
	}
}

func seedEntries(now time.Time) []Entry {
	day := 24 * time.Hour
	first := now.Add(-7 * day)
	second := now.Add(-12 * day)
	return []Entry{
		{
			ID:        uuid.NewString(),
			Date:      first.Format(DateLayout),
			Symptom:   "Slight limping on left paw",
			Weight:    "45",
			CreatedAt: first,
		},
		{
			ID:        uuid.NewString(),
			Date:      second.Format(DateLayout),
			Symptom:   "Normal checkup - all good!",
			Weight:    "44.5",
			CreatedAt: second,
		},
	}
}

func nonNil(in []Entry) []Entry {
	if in == nil {
		return []Entry{}
	}
	return in
}
